package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tokoaing-store/internal/dto"
	"tokoaing-store/internal/model"
)

func TestListenToLeaderboard_RecomputesOnLedgerChange(t *testing.T) {
	env := newTestEnv(t)
	purchases := env.purchaseService()
	leaderboard := NewLeaderboardService(env.userRepo, env.purchaseRepo, env.notifier)
	ctx := context.Background()

	seedUser(t, env, "u1")

	var last []*model.LeaderboardEntry
	unsubscribe, err := leaderboard.ListenToLeaderboard(ctx, func(entries []*model.LeaderboardEntry) {
		last = entries
	})
	require.NoError(t, err)
	defer unsubscribe()

	assert.Empty(t, last)

	id, err := purchases.CreatePurchase(ctx, "u1", &dto.PurchaseItem{
		Type:        model.PurchaseTypeMysteryBox,
		ProductName: "Mystery Box",
	})
	require.NoError(t, err)

	// pending purchases never count
	assert.Empty(t, last)

	require.NoError(t, purchases.UpdatePurchaseStatus(ctx, id, model.PurchaseStatusSuccess, "Hat"))

	require.Len(t, last, 1)
	assert.Equal(t, "u1", last[0].UID)
	assert.Equal(t, 1, last[0].Rank)
	assert.Equal(t, []string{"Hat"}, last[0].ObtainedItems)

	// deleting the user drops the entry on the next recompute
	require.NoError(t, env.userRepo.Delete(ctx, "u1"))
	assert.Empty(t, last)
}
