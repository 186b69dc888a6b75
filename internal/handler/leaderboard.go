package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"tokoaing-store/internal/service"
)

type LeaderboardHandler struct {
	leaderboardService service.LeaderboardService
}

func NewLeaderboardHandler(leaderboardService service.LeaderboardService) *LeaderboardHandler {
	return &LeaderboardHandler{
		leaderboardService: leaderboardService,
	}
}

func (h *LeaderboardHandler) GetLeaderboard(c echo.Context) error {
	ctx := c.Request().Context()

	entries, err := h.leaderboardService.Leaderboard(ctx)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, entries)
}
