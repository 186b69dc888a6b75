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

type CatalogService interface {
	ListProducts(ctx context.Context) ([]*model.Product, error)
	AddProduct(ctx context.Context, req *dto.CreateProductRequest) (*model.Product, error)
	UpdateProduct(ctx context.Context, productID string, req *dto.UpdateProductRequest) error
	DeleteProduct(ctx context.Context, productID string) error
	ListenToProducts(ctx context.Context, callback func([]*model.Product)) (func(), error)
}

type catalogServiceImpl struct {
	productRepo repository.ProductRepository
	notifier    *store.Notifier
}

func NewCatalogService(productRepo repository.ProductRepository, notifier *store.Notifier) CatalogService {
	return &catalogServiceImpl{
		productRepo: productRepo,
		notifier:    notifier,
	}
}

func (s *catalogServiceImpl) ListProducts(ctx context.Context) ([]*model.Product, error) {
	return s.productRepo.List(ctx)
}

func (s *catalogServiceImpl) AddProduct(ctx context.Context, req *dto.CreateProductRequest) (*model.Product, error) {
	product := &model.Product{
		ID:          uuid.NewString(),
		Name:        req.Name,
		Price:       req.Price,
		Stock:       req.Stock,
		MaxStock:    req.Stock, // frozen at creation for the sold-percentage bar
		IsActive:    req.IsActive,
		Category:    req.Category,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		BuyLink:     req.BuyLink,
	}

	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

func (s *catalogServiceImpl) UpdateProduct(ctx context.Context, productID string, req *dto.UpdateProductRequest) error {
	updates := req.Updates()
	if len(updates) == 0 {
		return nil
	}
	return s.productRepo.Update(ctx, productID, updates)
}

func (s *catalogServiceImpl) DeleteProduct(ctx context.Context, productID string) error {
	// Existing purchase records keep their denormalized product name;
	// no referential cleanup happens here.
	return s.productRepo.Delete(ctx, productID)
}

func (s *catalogServiceImpl) ListenToProducts(ctx context.Context, callback func([]*model.Product)) (func(), error) {
	products, err := s.productRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	callback(products)

	unsubscribe := s.notifier.Subscribe(store.CollectionProducts, func() {
		products, err := s.productRepo.List(ctx)
		if err != nil {
			log.WithError(err).Warn("product refresh failed, keeping last snapshot")
			return
		}
		callback(products)
	})

	return unsubscribe, nil
}
