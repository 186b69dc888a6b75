package service

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"tokoaing-store/internal/model"
	"tokoaing-store/internal/repository"
	"tokoaing-store/internal/store"
)

type testEnv struct {
	db       *gorm.DB
	notifier *store.Notifier

	productRepo  repository.ProductRepository
	userRepo     repository.UserRepository
	purchaseRepo repository.PurchaseRepository
	reviewRepo   repository.ReviewRepository
	messageRepo  repository.MessageRepository
	buttonRepo   repository.ButtonRepository
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&model.Product{},
		&model.User{},
		&model.PurchaseHistoryItem{},
		&model.Review{},
		&model.PrivateMessage{},
		&model.CustomButton{},
	))

	notifier := store.NewNotifier()
	return &testEnv{
		db:           db,
		notifier:     notifier,
		productRepo:  repository.NewProductRepository(db, notifier),
		userRepo:     repository.NewUserRepository(db, notifier),
		purchaseRepo: repository.NewPurchaseRepository(db, notifier),
		reviewRepo:   repository.NewReviewRepository(db, notifier),
		messageRepo:  repository.NewMessageRepository(db, notifier),
		buttonRepo:   repository.NewButtonRepository(db, notifier),
	}
}

func (e *testEnv) purchaseService() PurchaseService {
	return NewPurchaseService(e.db, e.notifier, e.purchaseRepo, e.productRepo, e.userRepo, e.messageRepo)
}
