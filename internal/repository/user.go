package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"tokoaing-store/internal/model"
	"tokoaing-store/internal/store"
)

type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	FindByUID(ctx context.Context, uid string) (*model.User, error)
	List(ctx context.Context) ([]*model.User, error)
	Update(ctx context.Context, uid string, updates map[string]interface{}) error
	Delete(ctx context.Context, uid string) error
	RecordLogin(ctx context.Context, uid string) error
	// IncrementMysteryBoxAttempts bumps the attempt counter by one.
	// The arithmetic runs in a single UPDATE so concurrent purchases by
	// the same user never lose an increment. A missing user row leaves
	// the counter untouched. Runs inside the caller's transaction.
	IncrementMysteryBoxAttempts(ctx context.Context, tx *gorm.DB, uid string) error
}

type userRepoImpl struct {
	db       *gorm.DB
	notifier *store.Notifier
}

func NewUserRepository(db *gorm.DB, notifier *store.Notifier) UserRepository {
	return &userRepoImpl{
		db:       db,
		notifier: notifier,
	}
}

func (r *userRepoImpl) Create(ctx context.Context, user *model.User) error {
	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		return store.WriteError("create user", err)
	}

	r.notifier.Publish(store.CollectionUsers)
	return nil
}

func (r *userRepoImpl) FindByUID(ctx context.Context, uid string) (*model.User, error) {
	var user model.User
	err := r.db.WithContext(ctx).
		Where("uid = ?", uid).
		First(&user).Error

	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, store.ErrNotFound
		}
		return nil, store.ReadError("find user", err)
	}

	return &user, nil
}

func (r *userRepoImpl) List(ctx context.Context) ([]*model.User, error) {
	var users []*model.User
	err := r.db.WithContext(ctx).Find(&users).Error
	if err != nil {
		return nil, store.ReadError("list users", err)
	}

	return users, nil
}

func (r *userRepoImpl) Update(ctx context.Context, uid string, updates map[string]interface{}) error {
	err := r.db.WithContext(ctx).Model(&model.User{}).
		Where("uid = ?", uid).
		Updates(updates).Error
	if err != nil {
		return store.WriteError("update user", err)
	}

	r.notifier.Publish(store.CollectionUsers)
	return nil
}

func (r *userRepoImpl) Delete(ctx context.Context, uid string) error {
	// The identity-provider account itself is not touched here.
	err := r.db.WithContext(ctx).
		Where("uid = ?", uid).
		Delete(&model.User{}).Error
	if err != nil {
		return store.WriteError("delete user", err)
	}

	r.notifier.Publish(store.CollectionUsers)
	return nil
}

func (r *userRepoImpl) RecordLogin(ctx context.Context, uid string) error {
	return r.Update(ctx, uid, map[string]interface{}{
		"last_login": time.Now(),
	})
}

func (r *userRepoImpl) IncrementMysteryBoxAttempts(ctx context.Context, tx *gorm.DB, uid string) error {
	err := tx.WithContext(ctx).Model(&model.User{}).
		Where("uid = ?", uid).
		Update("mystery_box_attempts", gorm.Expr("mystery_box_attempts + 1")).Error
	if err != nil {
		return store.WriteError("increment mystery box attempts", err)
	}

	return nil
}
