package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"tokoaing-store/internal/model"
	"tokoaing-store/internal/repository"
	"tokoaing-store/internal/store"
)

// globalMessagePrefix marks announcements fanned out to every user.
const globalMessagePrefix = "[PENGUMUMAN] "

type MessagingService interface {
	SendPrivateMessage(ctx context.Context, userID, text string) error
	// SendGlobalMessage delivers one private copy of the announcement
	// to every regular (role=user) account.
	SendGlobalMessage(ctx context.Context, text string) error
	ListUserMessages(ctx context.Context, userID string) ([]*model.PrivateMessage, error)
	ListMessages(ctx context.Context) ([]*model.PrivateMessage, error)
	MarkMessageAsRead(ctx context.Context, messageID string) error
	ListenToUserMessages(ctx context.Context, userID string, callback func([]*model.PrivateMessage)) (func(), error)
}

type messagingServiceImpl struct {
	messageRepo repository.MessageRepository
	userRepo    repository.UserRepository
	notifier    *store.Notifier
}

func NewMessagingService(
	messageRepo repository.MessageRepository,
	userRepo repository.UserRepository,
	notifier *store.Notifier,
) MessagingService {
	return &messagingServiceImpl{
		messageRepo: messageRepo,
		userRepo:    userRepo,
		notifier:    notifier,
	}
}

func (s *messagingServiceImpl) SendPrivateMessage(ctx context.Context, userID, text string) error {
	return s.messageRepo.Create(ctx, &model.PrivateMessage{
		ID:        uuid.NewString(),
		UserID:    userID,
		Text:      text,
		Timestamp: time.Now(),
		IsRead:    false,
	})
}

func (s *messagingServiceImpl) SendGlobalMessage(ctx context.Context, text string) error {
	users, err := s.userRepo.List(ctx)
	if err != nil {
		return err
	}

	now := time.Now()
	var messages []*model.PrivateMessage
	for _, user := range users {
		if user.Role != "user" {
			continue
		}
		messages = append(messages, &model.PrivateMessage{
			ID:        uuid.NewString(),
			UserID:    user.UID,
			Text:      globalMessagePrefix + text,
			Timestamp: now,
			IsRead:    false,
		})
	}

	return s.messageRepo.CreateBatch(ctx, messages)
}

func (s *messagingServiceImpl) ListUserMessages(ctx context.Context, userID string) ([]*model.PrivateMessage, error) {
	return s.messageRepo.ListByUser(ctx, userID)
}

func (s *messagingServiceImpl) ListMessages(ctx context.Context) ([]*model.PrivateMessage, error) {
	return s.messageRepo.List(ctx)
}

func (s *messagingServiceImpl) MarkMessageAsRead(ctx context.Context, messageID string) error {
	return s.messageRepo.MarkRead(ctx, messageID)
}

func (s *messagingServiceImpl) ListenToUserMessages(ctx context.Context, userID string, callback func([]*model.PrivateMessage)) (func(), error) {
	messages, err := s.messageRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	callback(messages)

	unsubscribe := s.notifier.Subscribe(store.CollectionPrivateMessages, func() {
		messages, err := s.messageRepo.ListByUser(ctx, userID)
		if err != nil {
			log.WithError(err).Warn("message refresh failed, keeping last snapshot")
			return
		}
		callback(messages)
	})

	return unsubscribe, nil
}
