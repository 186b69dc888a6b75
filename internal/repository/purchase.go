package repository

import (
	"context"

	"gorm.io/gorm"

	"tokoaing-store/internal/model"
	"tokoaing-store/internal/store"
)

type PurchaseRepository interface {
	Create(ctx context.Context, tx *gorm.DB, item *model.PurchaseHistoryItem) error
	FindByID(ctx context.Context, purchaseID string) (*model.PurchaseHistoryItem, error)
	// List returns the ledger sorted newest first. An empty userID
	// returns every user's history.
	List(ctx context.Context, userID string) ([]*model.PurchaseHistoryItem, error)
	// ListChronological returns the whole ledger oldest first, the
	// order leaderboard prizes are accumulated in.
	ListChronological(ctx context.Context) ([]*model.PurchaseHistoryItem, error)
	// TransitionFromPending applies the status change only while the
	// record is still pending. Returns whether the transition was
	// applied; a missing or already-terminal record reports false with
	// no error. Runs inside the caller's transaction.
	TransitionFromPending(ctx context.Context, tx *gorm.DB, purchaseID string, updates map[string]interface{}) (bool, error)
	SetOpened(ctx context.Context, purchaseID string) error
	Delete(ctx context.Context, purchaseID string) error
}

type purchaseRepoImpl struct {
	db       *gorm.DB
	notifier *store.Notifier
}

func NewPurchaseRepository(db *gorm.DB, notifier *store.Notifier) PurchaseRepository {
	return &purchaseRepoImpl{
		db:       db,
		notifier: notifier,
	}
}

func (r *purchaseRepoImpl) Create(ctx context.Context, tx *gorm.DB, item *model.PurchaseHistoryItem) error {
	if err := tx.WithContext(ctx).Create(item).Error; err != nil {
		return store.WriteError("create purchase", err)
	}

	return nil
}

func (r *purchaseRepoImpl) FindByID(ctx context.Context, purchaseID string) (*model.PurchaseHistoryItem, error) {
	var item model.PurchaseHistoryItem
	err := r.db.WithContext(ctx).
		Where("id = ?", purchaseID).
		First(&item).Error

	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, store.ErrNotFound
		}
		return nil, store.ReadError("find purchase", err)
	}

	return &item, nil
}

func (r *purchaseRepoImpl) List(ctx context.Context, userID string) ([]*model.PurchaseHistoryItem, error) {
	var items []*model.PurchaseHistoryItem

	query := r.db.WithContext(ctx).Order("timestamp DESC")
	if userID != "" {
		query = query.Where("user_id = ?", userID)
	}

	if err := query.Find(&items).Error; err != nil {
		return nil, store.ReadError("list purchases", err)
	}

	return items, nil
}

func (r *purchaseRepoImpl) ListChronological(ctx context.Context) ([]*model.PurchaseHistoryItem, error) {
	var items []*model.PurchaseHistoryItem
	err := r.db.WithContext(ctx).
		Order("timestamp ASC, id ASC").
		Find(&items).Error
	if err != nil {
		return nil, store.ReadError("list ledger", err)
	}

	return items, nil
}

func (r *purchaseRepoImpl) TransitionFromPending(ctx context.Context, tx *gorm.DB, purchaseID string, updates map[string]interface{}) (bool, error) {
	result := tx.WithContext(ctx).Model(&model.PurchaseHistoryItem{}).
		Where("id = ? AND status = ?", purchaseID, model.PurchaseStatusPending).
		Updates(updates)

	if result.Error != nil {
		return false, store.WriteError("transition purchase status", result.Error)
	}

	return result.RowsAffected > 0, nil
}

func (r *purchaseRepoImpl) SetOpened(ctx context.Context, purchaseID string) error {
	err := r.db.WithContext(ctx).Model(&model.PurchaseHistoryItem{}).
		Where("id = ?", purchaseID).
		Update("is_opened", true).Error
	if err != nil {
		return store.WriteError("mark mystery box opened", err)
	}

	r.notifier.Publish(store.CollectionPurchaseHistory)
	return nil
}

func (r *purchaseRepoImpl) Delete(ctx context.Context, purchaseID string) error {
	err := r.db.WithContext(ctx).
		Where("id = ?", purchaseID).
		Delete(&model.PurchaseHistoryItem{}).Error
	if err != nil {
		return store.WriteError("delete purchase", err)
	}

	r.notifier.Publish(store.CollectionPurchaseHistory)
	return nil
}
