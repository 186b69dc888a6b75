package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"tokoaing-store/internal/model"
	"tokoaing-store/internal/store"
)

type MessageRepository interface {
	Create(ctx context.Context, message *model.PrivateMessage) error
	CreateBatch(ctx context.Context, messages []*model.PrivateMessage) error
	// ListByUser returns a recipient's messages newest first.
	ListByUser(ctx context.Context, userID string) ([]*model.PrivateMessage, error)
	List(ctx context.Context) ([]*model.PrivateMessage, error)
	MarkRead(ctx context.Context, messageID string) error
	// DeleteReadOlderThan removes read messages with a timestamp before
	// the cutoff and reports how many were purged.
	DeleteReadOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}

type messageRepoImpl struct {
	db       *gorm.DB
	notifier *store.Notifier
}

func NewMessageRepository(db *gorm.DB, notifier *store.Notifier) MessageRepository {
	return &messageRepoImpl{
		db:       db,
		notifier: notifier,
	}
}

func (r *messageRepoImpl) Create(ctx context.Context, message *model.PrivateMessage) error {
	if err := r.db.WithContext(ctx).Create(message).Error; err != nil {
		return store.WriteError("create message", err)
	}

	r.notifier.Publish(store.CollectionPrivateMessages)
	return nil
}

func (r *messageRepoImpl) CreateBatch(ctx context.Context, messages []*model.PrivateMessage) error {
	if len(messages) == 0 {
		return nil
	}

	if err := r.db.WithContext(ctx).Create(&messages).Error; err != nil {
		return store.WriteError("create messages", err)
	}

	r.notifier.Publish(store.CollectionPrivateMessages)
	return nil
}

func (r *messageRepoImpl) ListByUser(ctx context.Context, userID string) ([]*model.PrivateMessage, error) {
	var messages []*model.PrivateMessage
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("timestamp DESC").
		Find(&messages).Error
	if err != nil {
		return nil, store.ReadError("list user messages", err)
	}

	return messages, nil
}

func (r *messageRepoImpl) List(ctx context.Context) ([]*model.PrivateMessage, error) {
	var messages []*model.PrivateMessage
	err := r.db.WithContext(ctx).
		Order("timestamp DESC").
		Find(&messages).Error
	if err != nil {
		return nil, store.ReadError("list messages", err)
	}

	return messages, nil
}

func (r *messageRepoImpl) MarkRead(ctx context.Context, messageID string) error {
	err := r.db.WithContext(ctx).Model(&model.PrivateMessage{}).
		Where("id = ?", messageID).
		Update("is_read", true).Error
	if err != nil {
		return store.WriteError("mark message read", err)
	}

	r.notifier.Publish(store.CollectionPrivateMessages)
	return nil
}

func (r *messageRepoImpl) DeleteReadOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("is_read = ? AND timestamp < ?", true, cutoff).
		Delete(&model.PrivateMessage{})

	if result.Error != nil {
		return 0, store.WriteError("purge read messages", result.Error)
	}

	if result.RowsAffected > 0 {
		r.notifier.Publish(store.CollectionPrivateMessages)
	}
	return result.RowsAffected, nil
}
