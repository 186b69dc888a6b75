package repository

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"tokoaing-store/internal/model"
	"tokoaing-store/internal/store"
)

// newTestDB opens a fresh in-memory database confined to a single
// connection so every test sees the same data.
func newTestDB(t *testing.T) (*gorm.DB, *store.Notifier) {
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

	return db, store.NewNotifier()
}
