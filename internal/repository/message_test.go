package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tokoaing-store/internal/model"
)

func TestMessageRepository_DeleteReadOlderThan(t *testing.T) {
	db, notifier := newTestDB(t)
	repo := NewMessageRepository(db, notifier)
	ctx := context.Background()

	now := time.Now()
	old := now.Add(-48 * time.Hour)
	messages := []*model.PrivateMessage{
		{ID: "m1", UserID: "u1", Text: "old read", Timestamp: old, IsRead: true},
		{ID: "m2", UserID: "u1", Text: "old unread", Timestamp: old, IsRead: false},
		{ID: "m3", UserID: "u1", Text: "fresh read", Timestamp: now, IsRead: true},
	}
	for _, m := range messages {
		require.NoError(t, repo.Create(ctx, m))
	}

	purged, err := repo.DeleteReadOlderThan(ctx, now.Add(-24*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, int64(1), purged)

	remaining, err := repo.ListByUser(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, remaining, 2)

	ids := []string{remaining[0].ID, remaining[1].ID}
	assert.ElementsMatch(t, []string{"m2", "m3"}, ids)
}

func TestMessageRepository_ListByUserNewestFirst(t *testing.T) {
	db, notifier := newTestDB(t)
	repo := NewMessageRepository(db, notifier)
	ctx := context.Background()

	base := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, repo.Create(ctx, &model.PrivateMessage{ID: "m1", UserID: "u1", Text: "first", Timestamp: base}))
	require.NoError(t, repo.Create(ctx, &model.PrivateMessage{ID: "m2", UserID: "u1", Text: "second", Timestamp: base.Add(time.Hour)}))
	require.NoError(t, repo.Create(ctx, &model.PrivateMessage{ID: "m3", UserID: "u2", Text: "other user", Timestamp: base.Add(2 * time.Hour)}))

	got, err := repo.ListByUser(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "m2", got[0].ID)
	assert.Equal(t, "m1", got[1].ID)
}
