package repository

import (
	"context"

	"gorm.io/gorm"

	"tokoaing-store/internal/model"
	"tokoaing-store/internal/store"
)

type ButtonRepository interface {
	Create(ctx context.Context, button *model.CustomButton) error
	List(ctx context.Context) ([]*model.CustomButton, error)
	Update(ctx context.Context, buttonID string, updates map[string]interface{}) error
	Delete(ctx context.Context, buttonID string) error
}

type buttonRepoImpl struct {
	db       *gorm.DB
	notifier *store.Notifier
}

func NewButtonRepository(db *gorm.DB, notifier *store.Notifier) ButtonRepository {
	return &buttonRepoImpl{
		db:       db,
		notifier: notifier,
	}
}

func (r *buttonRepoImpl) Create(ctx context.Context, button *model.CustomButton) error {
	if err := r.db.WithContext(ctx).Create(button).Error; err != nil {
		return store.WriteError("create custom button", err)
	}

	r.notifier.Publish(store.CollectionCustomButtons)
	return nil
}

func (r *buttonRepoImpl) List(ctx context.Context) ([]*model.CustomButton, error) {
	var buttons []*model.CustomButton
	err := r.db.WithContext(ctx).Find(&buttons).Error
	if err != nil {
		return nil, store.ReadError("list custom buttons", err)
	}

	return buttons, nil
}

func (r *buttonRepoImpl) Update(ctx context.Context, buttonID string, updates map[string]interface{}) error {
	err := r.db.WithContext(ctx).Model(&model.CustomButton{}).
		Where("id = ?", buttonID).
		Updates(updates).Error
	if err != nil {
		return store.WriteError("update custom button", err)
	}

	r.notifier.Publish(store.CollectionCustomButtons)
	return nil
}

func (r *buttonRepoImpl) Delete(ctx context.Context, buttonID string) error {
	err := r.db.WithContext(ctx).
		Where("id = ?", buttonID).
		Delete(&model.CustomButton{}).Error
	if err != nil {
		return store.WriteError("delete custom button", err)
	}

	r.notifier.Publish(store.CollectionCustomButtons)
	return nil
}
