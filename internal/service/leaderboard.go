package service

import (
	"context"
	"sort"
	"sync"

	log "github.com/sirupsen/logrus"

	"tokoaing-store/internal/model"
	"tokoaing-store/internal/repository"
	"tokoaing-store/internal/store"
)

type LeaderboardService interface {
	// Leaderboard computes the current standings from scratch.
	Leaderboard(ctx context.Context) ([]*model.LeaderboardEntry, error)
	// ListenToLeaderboard recomputes and redelivers the standings
	// whenever users or the purchase ledger change.
	ListenToLeaderboard(ctx context.Context, callback func([]*model.LeaderboardEntry)) (func(), error)
}

type leaderboardServiceImpl struct {
	userRepo     repository.UserRepository
	purchaseRepo repository.PurchaseRepository
	notifier     *store.Notifier
}

func NewLeaderboardService(
	userRepo repository.UserRepository,
	purchaseRepo repository.PurchaseRepository,
	notifier *store.Notifier,
) LeaderboardService {
	return &leaderboardServiceImpl{
		userRepo:     userRepo,
		purchaseRepo: purchaseRepo,
		notifier:     notifier,
	}
}

// ComputeLeaderboard ranks users by mystery-box wins. A win is a
// ledger record with type mysterybox, status success and a non-empty
// prize; prizes accumulate in ledger order. Users missing from the
// user set are skipped. Ordering is items obtained descending; ties
// keep the order of each user's first win in the ledger, so ranking
// is deterministic for a given ledger.
func ComputeLeaderboard(users []*model.User, ledger []*model.PurchaseHistoryItem) []*model.LeaderboardEntry {
	usersByUID := make(map[string]*model.User, len(users))
	for _, u := range users {
		usersByUID[u.UID] = u
	}

	prizesByUser := make(map[string][]string)
	var firstWinOrder []string
	for _, item := range ledger {
		if item.Type != model.PurchaseTypeMysteryBox ||
			item.Status != model.PurchaseStatusSuccess ||
			item.Prize == "" {
			continue
		}
		if _, seen := prizesByUser[item.UserID]; !seen {
			firstWinOrder = append(firstWinOrder, item.UserID)
		}
		prizesByUser[item.UserID] = append(prizesByUser[item.UserID], item.Prize)
	}

	entries := make([]*model.LeaderboardEntry, 0, len(firstWinOrder))
	for _, uid := range firstWinOrder {
		user, ok := usersByUID[uid]
		if !ok {
			continue
		}
		prizes := prizesByUser[uid]
		entries = append(entries, &model.LeaderboardEntry{
			UID:           user.UID,
			Nickname:      user.Nickname,
			Email:         user.Email,
			LastLogin:     user.LastLogin,
			ItemsObtained: len(prizes),
			ObtainedItems: prizes,
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].ItemsObtained > entries[j].ItemsObtained
	})
	for i, entry := range entries {
		entry.Rank = i + 1
	}

	return entries
}

func (s *leaderboardServiceImpl) Leaderboard(ctx context.Context) ([]*model.LeaderboardEntry, error) {
	users, err := s.userRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	ledger, err := s.purchaseRepo.ListChronological(ctx)
	if err != nil {
		return nil, err
	}

	return ComputeLeaderboard(users, ledger), nil
}

func (s *leaderboardServiceImpl) ListenToLeaderboard(ctx context.Context, callback func([]*model.LeaderboardEntry)) (func(), error) {
	var mu sync.Mutex

	recompute := func() ([]*model.LeaderboardEntry, error) {
		mu.Lock()
		defer mu.Unlock()
		return s.Leaderboard(ctx)
	}

	entries, err := recompute()
	if err != nil {
		return nil, err
	}
	callback(entries)

	refresh := func() {
		entries, err := recompute()
		if err != nil {
			log.WithError(err).Warn("leaderboard recompute failed, keeping last snapshot")
			return
		}
		callback(entries)
	}

	unsubUsers := s.notifier.Subscribe(store.CollectionUsers, refresh)
	unsubLedger := s.notifier.Subscribe(store.CollectionPurchaseHistory, refresh)

	return func() {
		unsubUsers()
		unsubLedger()
	}, nil
}
