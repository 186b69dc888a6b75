package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"tokoaing-store/internal/dto"
	"tokoaing-store/internal/model"
	"tokoaing-store/internal/repository"
	"tokoaing-store/internal/store"
)

type PurchaseService interface {
	// CreatePurchase records a pending purchase and returns its id.
	// Mystery-box purchases also bump the buyer's attempt counter.
	CreatePurchase(ctx context.Context, userID string, item *dto.PurchaseItem) (string, error)
	// UpdatePurchaseStatus moves a pending purchase to success or
	// rejected. A missing or already-decided purchase is a no-op.
	// Approving a product purchase decrements the product's stock,
	// floored at zero; approving a mystery box records the prize.
	UpdatePurchaseStatus(ctx context.Context, purchaseID string, newStatus model.PurchaseStatus, prize string) error
	OpenMysteryBox(ctx context.Context, purchaseID string) error
	DeletePurchaseHistoryItem(ctx context.Context, purchaseID string) error
	ListPurchases(ctx context.Context, userID string) ([]*model.PurchaseHistoryItem, error)
	// ListenToUserPurchaseHistory delivers the (optionally per-user)
	// ledger newest first, once immediately and again on every change.
	ListenToUserPurchaseHistory(ctx context.Context, userID string, callback func([]*model.PurchaseHistoryItem)) (func(), error)
}

type purchaseServiceImpl struct {
	db           *gorm.DB
	notifier     *store.Notifier
	purchaseRepo repository.PurchaseRepository
	productRepo  repository.ProductRepository
	userRepo     repository.UserRepository
	messageRepo  repository.MessageRepository
}

func NewPurchaseService(
	db *gorm.DB,
	notifier *store.Notifier,
	purchaseRepo repository.PurchaseRepository,
	productRepo repository.ProductRepository,
	userRepo repository.UserRepository,
	messageRepo repository.MessageRepository,
) PurchaseService {
	return &purchaseServiceImpl{
		db:           db,
		notifier:     notifier,
		purchaseRepo: purchaseRepo,
		productRepo:  productRepo,
		userRepo:     userRepo,
		messageRepo:  messageRepo,
	}
}

func (s *purchaseServiceImpl) CreatePurchase(ctx context.Context, userID string, item *dto.PurchaseItem) (string, error) {
	if item.Type != model.PurchaseTypeProduct && item.Type != model.PurchaseTypeMysteryBox {
		return "", fmt.Errorf("unknown purchase type %q", item.Type)
	}
	if item.Type == model.PurchaseTypeProduct && item.ProductID == "" {
		return "", fmt.Errorf("product purchase requires a product id")
	}

	record := &model.PurchaseHistoryItem{
		ID:          uuid.NewString(),
		UserID:      userID,
		Type:        item.Type,
		ProductName: item.ProductName,
		Timestamp:   time.Now(),
		Status:      model.PurchaseStatusPending,
		ProductID:   item.ProductID,
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.purchaseRepo.Create(ctx, tx, record); err != nil {
			return err
		}

		if item.Type == model.PurchaseTypeMysteryBox {
			return s.userRepo.IncrementMysteryBoxAttempts(ctx, tx, userID)
		}
		return nil
	})
	if err != nil {
		return "", err
	}

	s.notifier.Publish(store.CollectionPurchaseHistory)
	if item.Type == model.PurchaseTypeMysteryBox {
		s.notifier.Publish(store.CollectionUsers)
	}

	return record.ID, nil
}

func (s *purchaseServiceImpl) UpdatePurchaseStatus(ctx context.Context, purchaseID string, newStatus model.PurchaseStatus, prize string) error {
	if newStatus != model.PurchaseStatusSuccess && newStatus != model.PurchaseStatusRejected {
		return fmt.Errorf("invalid target status %q", newStatus)
	}

	record, err := s.purchaseRepo.FindByID(ctx, purchaseID)
	if errors.Is(err, store.ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	updates := map[string]interface{}{"status": newStatus}
	if record.Type == model.PurchaseTypeMysteryBox && newStatus == model.PurchaseStatusSuccess && prize != "" {
		updates["prize"] = prize
	}

	decrementStock := record.Type == model.PurchaseTypeProduct &&
		record.ProductID != "" &&
		newStatus == model.PurchaseStatusSuccess

	applied := false
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		applied, err = s.purchaseRepo.TransitionFromPending(ctx, tx, purchaseID, updates)
		if err != nil {
			return err
		}
		if !applied || !decrementStock {
			return nil
		}

		// Stock only moves when the transition actually happened, so a
		// second approval of the same purchase cannot decrement twice.
		return s.productRepo.DecrementStock(ctx, tx, record.ProductID)
	})
	if err != nil {
		return err
	}
	if !applied {
		return nil
	}

	s.notifier.Publish(store.CollectionPurchaseHistory)
	if decrementStock {
		s.notifier.Publish(store.CollectionProducts)
	}

	s.notifyBuyer(ctx, record, newStatus)
	return nil
}

// notifyBuyer drops a private message about the decision into the
// buyer's inbox. Failure to deliver never fails the transition itself.
func (s *purchaseServiceImpl) notifyBuyer(ctx context.Context, record *model.PurchaseHistoryItem, newStatus model.PurchaseStatus) {
	text := fmt.Sprintf("Your purchase of %q was approved.", record.ProductName)
	if newStatus == model.PurchaseStatusRejected {
		text = fmt.Sprintf("Your purchase of %q was rejected.", record.ProductName)
	}

	err := s.messageRepo.Create(ctx, &model.PrivateMessage{
		ID:        uuid.NewString(),
		UserID:    record.UserID,
		Text:      text,
		Timestamp: time.Now(),
		IsRead:    false,
	})
	if err != nil {
		log.WithError(err).WithField("purchase_id", record.ID).
			Warn("purchase decided but buyer notification failed")
	}
}

func (s *purchaseServiceImpl) OpenMysteryBox(ctx context.Context, purchaseID string) error {
	return s.purchaseRepo.SetOpened(ctx, purchaseID)
}

func (s *purchaseServiceImpl) DeletePurchaseHistoryItem(ctx context.Context, purchaseID string) error {
	return s.purchaseRepo.Delete(ctx, purchaseID)
}

func (s *purchaseServiceImpl) ListPurchases(ctx context.Context, userID string) ([]*model.PurchaseHistoryItem, error) {
	return s.purchaseRepo.List(ctx, userID)
}

func (s *purchaseServiceImpl) ListenToUserPurchaseHistory(ctx context.Context, userID string, callback func([]*model.PurchaseHistoryItem)) (func(), error) {
	items, err := s.purchaseRepo.List(ctx, userID)
	if err != nil {
		return nil, err
	}
	callback(items)

	unsubscribe := s.notifier.Subscribe(store.CollectionPurchaseHistory, func() {
		items, err := s.purchaseRepo.List(ctx, userID)
		if err != nil {
			log.WithError(err).Warn("purchase history refresh failed, keeping last snapshot")
			return
		}
		callback(items)
	})

	return unsubscribe, nil
}
