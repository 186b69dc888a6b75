package handler

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	log "github.com/sirupsen/logrus"

	"tokoaing-store/internal/model"
	"tokoaing-store/internal/service"
)

// WatchHandler exposes the live-subscription side of the store as
// server-sent events. Every event carries a full collection snapshot,
// one on connect and one per change, mirroring the Listen contract.
type WatchHandler struct {
	catalogService     service.CatalogService
	reviewService      service.ReviewService
	buttonService      service.ButtonService
	leaderboardService service.LeaderboardService
	purchaseService    service.PurchaseService
	messagingService   service.MessagingService
}

func NewWatchHandler(
	catalogService service.CatalogService,
	reviewService service.ReviewService,
	buttonService service.ButtonService,
	leaderboardService service.LeaderboardService,
	purchaseService service.PurchaseService,
	messagingService service.MessagingService,
) *WatchHandler {
	return &WatchHandler{
		catalogService:     catalogService,
		reviewService:      reviewService,
		buttonService:      buttonService,
		leaderboardService: leaderboardService,
		purchaseService:    purchaseService,
		messagingService:   messagingService,
	}
}

func (h *WatchHandler) WatchProducts(c echo.Context) error {
	return streamSnapshots(c, func(send func(v interface{})) (func(), error) {
		return h.catalogService.ListenToProducts(c.Request().Context(), func(products []*model.Product) {
			send(products)
		})
	})
}

func (h *WatchHandler) WatchReviews(c echo.Context) error {
	return streamSnapshots(c, func(send func(v interface{})) (func(), error) {
		return h.reviewService.ListenToReviews(c.Request().Context(), func(reviews []*model.Review) {
			send(reviews)
		})
	})
}

func (h *WatchHandler) WatchCustomButtons(c echo.Context) error {
	return streamSnapshots(c, func(send func(v interface{})) (func(), error) {
		return h.buttonService.ListenToCustomButtons(c.Request().Context(), func(buttons []*model.CustomButton) {
			send(buttons)
		})
	})
}

func (h *WatchHandler) WatchLeaderboard(c echo.Context) error {
	return streamSnapshots(c, func(send func(v interface{})) (func(), error) {
		return h.leaderboardService.ListenToLeaderboard(c.Request().Context(), func(entries []*model.LeaderboardEntry) {
			send(entries)
		})
	})
}

func (h *WatchHandler) WatchMyPurchases(c echo.Context) error {
	uid := c.Get("user_id").(string)
	return streamSnapshots(c, func(send func(v interface{})) (func(), error) {
		return h.purchaseService.ListenToUserPurchaseHistory(c.Request().Context(), uid, func(items []*model.PurchaseHistoryItem) {
			send(items)
		})
	})
}

func (h *WatchHandler) WatchMyMessages(c echo.Context) error {
	uid := c.Get("user_id").(string)
	return streamSnapshots(c, func(send func(v interface{})) (func(), error) {
		return h.messagingService.ListenToUserMessages(c.Request().Context(), uid, func(messages []*model.PrivateMessage) {
			send(messages)
		})
	})
}

// streamSnapshots pumps JSON snapshots from a Listen subscription out
// as SSE data events until the client disconnects. Snapshots are
// complete states, so dropping an intermediate one under backpressure
// only skips a frame the next event supersedes.
func streamSnapshots(c echo.Context, subscribe func(send func(v interface{})) (func(), error)) error {
	resp := c.Response()
	resp.Header().Set(echo.HeaderContentType, "text/event-stream")
	resp.Header().Set("Cache-Control", "no-cache")
	resp.Header().Set("Connection", "keep-alive")

	snapshots := make(chan []byte, 8)
	send := func(v interface{}) {
		data, err := json.Marshal(v)
		if err != nil {
			log.WithError(err).Warn("snapshot marshal failed")
			return
		}
		select {
		case snapshots <- data:
		default:
			// slow consumer, skip this frame
		}
	}

	unsubscribe, err := subscribe(send)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "subscription failed")
	}
	defer unsubscribe()

	ctx := c.Request().Context()
	for {
		select {
		case <-ctx.Done():
			return nil
		case data := <-snapshots:
			if _, err := fmt.Fprintf(resp, "data: %s\n\n", data); err != nil {
				return nil
			}
			resp.Flush()
		}
	}
}
