package service

import (
	"context"
	"time"

	log "github.com/sirupsen/logrus"

	"tokoaing-store/internal/dto"
	"tokoaing-store/internal/model"
	"tokoaing-store/internal/repository"
	"tokoaing-store/internal/store"
)

type IdentityService interface {
	GetUser(ctx context.Context, uid string) (*model.User, error)
	// CreateUser mirrors a fresh identity-provider account into the
	// user collection.
	CreateUser(ctx context.Context, uid, email, nickname string) (*model.User, error)
	// RecordLogin bumps lastLogin at session start.
	RecordLogin(ctx context.Context, uid string) error
	UpdateUser(ctx context.Context, uid string, req *dto.UpdateUserRequest) error
	DeleteUser(ctx context.Context, uid string) error
	ListUsers(ctx context.Context) ([]*model.User, error)
	ListenToUsers(ctx context.Context, callback func([]*model.User)) (func(), error)
}

type identityServiceImpl struct {
	userRepo repository.UserRepository
	notifier *store.Notifier
}

func NewIdentityService(userRepo repository.UserRepository, notifier *store.Notifier) IdentityService {
	return &identityServiceImpl{
		userRepo: userRepo,
		notifier: notifier,
	}
}

func (s *identityServiceImpl) GetUser(ctx context.Context, uid string) (*model.User, error) {
	return s.userRepo.FindByUID(ctx, uid)
}

func (s *identityServiceImpl) CreateUser(ctx context.Context, uid, email, nickname string) (*model.User, error) {
	user := &model.User{
		UID:                uid,
		Nickname:           nickname,
		Email:              email,
		LastLogin:          time.Now(),
		IsActive:           true,
		MysteryBoxAttempts: 0,
		Role:               "user",
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *identityServiceImpl) RecordLogin(ctx context.Context, uid string) error {
	return s.userRepo.RecordLogin(ctx, uid)
}

func (s *identityServiceImpl) UpdateUser(ctx context.Context, uid string, req *dto.UpdateUserRequest) error {
	updates := req.Updates()
	if len(updates) == 0 {
		return nil
	}
	return s.userRepo.Update(ctx, uid, updates)
}

func (s *identityServiceImpl) DeleteUser(ctx context.Context, uid string) error {
	return s.userRepo.Delete(ctx, uid)
}

func (s *identityServiceImpl) ListUsers(ctx context.Context) ([]*model.User, error) {
	return s.userRepo.List(ctx)
}

func (s *identityServiceImpl) ListenToUsers(ctx context.Context, callback func([]*model.User)) (func(), error) {
	users, err := s.userRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	callback(users)

	unsubscribe := s.notifier.Subscribe(store.CollectionUsers, func() {
		users, err := s.userRepo.List(ctx)
		if err != nil {
			log.WithError(err).Warn("user refresh failed, keeping last snapshot")
			return
		}
		callback(users)
	})

	return unsubscribe, nil
}
