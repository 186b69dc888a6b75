package service

import (
	"context"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"tokoaing-store/internal/dto"
	"tokoaing-store/internal/model"
	"tokoaing-store/internal/repository"
	"tokoaing-store/internal/store"
)

type ButtonService interface {
	ListCustomButtons(ctx context.Context) ([]*model.CustomButton, error)
	AddCustomButton(ctx context.Context, req *dto.CreateButtonRequest) (*model.CustomButton, error)
	UpdateCustomButton(ctx context.Context, buttonID string, req *dto.UpdateButtonRequest) error
	DeleteCustomButton(ctx context.Context, buttonID string) error
	ListenToCustomButtons(ctx context.Context, callback func([]*model.CustomButton)) (func(), error)
}

type buttonServiceImpl struct {
	buttonRepo repository.ButtonRepository
	notifier   *store.Notifier
}

func NewButtonService(buttonRepo repository.ButtonRepository, notifier *store.Notifier) ButtonService {
	return &buttonServiceImpl{
		buttonRepo: buttonRepo,
		notifier:   notifier,
	}
}

func (s *buttonServiceImpl) ListCustomButtons(ctx context.Context) ([]*model.CustomButton, error) {
	return s.buttonRepo.List(ctx)
}

func (s *buttonServiceImpl) AddCustomButton(ctx context.Context, req *dto.CreateButtonRequest) (*model.CustomButton, error) {
	button := &model.CustomButton{
		ID:       uuid.NewString(),
		Name:     req.Name,
		URL:      req.URL,
		Icon:     req.Icon,
		IsActive: req.IsActive,
	}

	if err := s.buttonRepo.Create(ctx, button); err != nil {
		return nil, err
	}
	return button, nil
}

func (s *buttonServiceImpl) UpdateCustomButton(ctx context.Context, buttonID string, req *dto.UpdateButtonRequest) error {
	updates := req.Updates()
	if len(updates) == 0 {
		return nil
	}
	return s.buttonRepo.Update(ctx, buttonID, updates)
}

func (s *buttonServiceImpl) DeleteCustomButton(ctx context.Context, buttonID string) error {
	return s.buttonRepo.Delete(ctx, buttonID)
}

func (s *buttonServiceImpl) ListenToCustomButtons(ctx context.Context, callback func([]*model.CustomButton)) (func(), error) {
	buttons, err := s.buttonRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	callback(buttons)

	unsubscribe := s.notifier.Subscribe(store.CollectionCustomButtons, func() {
		buttons, err := s.buttonRepo.List(ctx)
		if err != nil {
			log.WithError(err).Warn("custom button refresh failed, keeping last snapshot")
			return
		}
		callback(buttons)
	})

	return unsubscribe, nil
}
