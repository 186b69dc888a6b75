package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tokoaing-store/internal/model"
)

func TestUserRepository_IncrementMysteryBoxAttempts(t *testing.T) {
	db, notifier := newTestDB(t)
	repo := NewUserRepository(db, notifier)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &model.User{
		UID:      "u1",
		Nickname: "one",
		Email:    "one@example.com",
		IsActive: true,
		Role:     "user",
	}))
	require.NoError(t, repo.Create(ctx, &model.User{
		UID:      "u2",
		Nickname: "two",
		Email:    "two@example.com",
		IsActive: true,
		Role:     "user",
	}))

	for i := 0; i < 3; i++ {
		require.NoError(t, repo.IncrementMysteryBoxAttempts(ctx, db, "u1"))
	}
	require.NoError(t, repo.IncrementMysteryBoxAttempts(ctx, db, "u2"))

	u1, err := repo.FindByUID(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, 3, u1.MysteryBoxAttempts)

	u2, err := repo.FindByUID(ctx, "u2")
	require.NoError(t, err)
	assert.Equal(t, 1, u2.MysteryBoxAttempts)
}

func TestUserRepository_IncrementMissingUserIsNoop(t *testing.T) {
	db, notifier := newTestDB(t)
	repo := NewUserRepository(db, notifier)

	assert.NoError(t, repo.IncrementMysteryBoxAttempts(context.Background(), db, "ghost"))
}

func TestUserRepository_RecordLogin(t *testing.T) {
	db, notifier := newTestDB(t)
	repo := NewUserRepository(db, notifier)
	ctx := context.Background()

	old := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, repo.Create(ctx, &model.User{
		UID:       "u1",
		Nickname:  "one",
		Email:     "one@example.com",
		LastLogin: old,
		IsActive:  true,
		Role:      "user",
	}))

	require.NoError(t, repo.RecordLogin(ctx, "u1"))

	got, err := repo.FindByUID(ctx, "u1")
	require.NoError(t, err)
	assert.True(t, got.LastLogin.After(old))
}
