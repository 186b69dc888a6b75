package repository

import (
	"context"

	"gorm.io/gorm"

	"tokoaing-store/internal/model"
	"tokoaing-store/internal/store"
)

type ProductRepository interface {
	Create(ctx context.Context, product *model.Product) error
	FindByID(ctx context.Context, productID string) (*model.Product, error)
	List(ctx context.Context) ([]*model.Product, error)
	Update(ctx context.Context, productID string, updates map[string]interface{}) error
	Delete(ctx context.Context, productID string) error
	// DecrementStock takes one unit off the product's stock, floored at
	// zero. The WHERE guard makes concurrent decrements converge without
	// ever going negative. Runs inside the caller's transaction.
	DecrementStock(ctx context.Context, tx *gorm.DB, productID string) error
}

type productRepoImpl struct {
	db       *gorm.DB
	notifier *store.Notifier
}

func NewProductRepository(db *gorm.DB, notifier *store.Notifier) ProductRepository {
	return &productRepoImpl{
		db:       db,
		notifier: notifier,
	}
}

func (r *productRepoImpl) Create(ctx context.Context, product *model.Product) error {
	if err := r.db.WithContext(ctx).Create(product).Error; err != nil {
		return store.WriteError("create product", err)
	}

	r.notifier.Publish(store.CollectionProducts)
	return nil
}

func (r *productRepoImpl) FindByID(ctx context.Context, productID string) (*model.Product, error) {
	var product model.Product
	err := r.db.WithContext(ctx).
		Where("id = ?", productID).
		First(&product).Error

	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, store.ErrNotFound
		}
		return nil, store.ReadError("find product", err)
	}

	return &product, nil
}

func (r *productRepoImpl) List(ctx context.Context) ([]*model.Product, error) {
	var products []*model.Product
	err := r.db.WithContext(ctx).Find(&products).Error
	if err != nil {
		return nil, store.ReadError("list products", err)
	}

	return products, nil
}

func (r *productRepoImpl) Update(ctx context.Context, productID string, updates map[string]interface{}) error {
	err := r.db.WithContext(ctx).Model(&model.Product{}).
		Where("id = ?", productID).
		Updates(updates).Error
	if err != nil {
		return store.WriteError("update product", err)
	}

	r.notifier.Publish(store.CollectionProducts)
	return nil
}

func (r *productRepoImpl) Delete(ctx context.Context, productID string) error {
	err := r.db.WithContext(ctx).
		Where("id = ?", productID).
		Delete(&model.Product{}).Error
	if err != nil {
		return store.WriteError("delete product", err)
	}

	r.notifier.Publish(store.CollectionProducts)
	return nil
}

func (r *productRepoImpl) DecrementStock(ctx context.Context, tx *gorm.DB, productID string) error {
	err := tx.WithContext(ctx).Model(&model.Product{}).
		Where("id = ? AND stock > 0", productID).
		Update("stock", gorm.Expr("stock - 1")).Error
	if err != nil {
		return store.WriteError("decrement stock", err)
	}

	return nil
}
