package repository

import (
	"context"

	"gorm.io/gorm"

	"tokoaing-store/internal/model"
	"tokoaing-store/internal/store"
)

type ReviewRepository interface {
	Create(ctx context.Context, review *model.Review) error
	// List returns reviews newest first.
	List(ctx context.Context) ([]*model.Review, error)
	Update(ctx context.Context, reviewID string, updates map[string]interface{}) error
	Delete(ctx context.Context, reviewID string) error
}

type reviewRepoImpl struct {
	db       *gorm.DB
	notifier *store.Notifier
}

func NewReviewRepository(db *gorm.DB, notifier *store.Notifier) ReviewRepository {
	return &reviewRepoImpl{
		db:       db,
		notifier: notifier,
	}
}

func (r *reviewRepoImpl) Create(ctx context.Context, review *model.Review) error {
	if err := r.db.WithContext(ctx).Create(review).Error; err != nil {
		return store.WriteError("create review", err)
	}

	r.notifier.Publish(store.CollectionReviews)
	return nil
}

func (r *reviewRepoImpl) List(ctx context.Context) ([]*model.Review, error) {
	var reviews []*model.Review
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&reviews).Error
	if err != nil {
		return nil, store.ReadError("list reviews", err)
	}

	return reviews, nil
}

func (r *reviewRepoImpl) Update(ctx context.Context, reviewID string, updates map[string]interface{}) error {
	err := r.db.WithContext(ctx).Model(&model.Review{}).
		Where("id = ?", reviewID).
		Updates(updates).Error
	if err != nil {
		return store.WriteError("update review", err)
	}

	r.notifier.Publish(store.CollectionReviews)
	return nil
}

func (r *reviewRepoImpl) Delete(ctx context.Context, reviewID string) error {
	err := r.db.WithContext(ctx).
		Where("id = ?", reviewID).
		Delete(&model.Review{}).Error
	if err != nil {
		return store.WriteError("delete review", err)
	}

	r.notifier.Publish(store.CollectionReviews)
	return nil
}
