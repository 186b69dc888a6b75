package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"tokoaing-store/internal/dto"
	"tokoaing-store/internal/service"
)

type MessageHandler struct {
	messagingService service.MessagingService
}

func NewMessageHandler(messagingService service.MessagingService) *MessageHandler {
	return &MessageHandler{
		messagingService: messagingService,
	}
}

func (h *MessageHandler) ListMyMessages(c echo.Context) error {
	ctx := c.Request().Context()
	uid := c.Get("user_id").(string)

	messages, err := h.messagingService.ListUserMessages(ctx, uid)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, messages)
}

func (h *MessageHandler) MarkMessageAsRead(c echo.Context) error {
	ctx := c.Request().Context()

	if err := h.messagingService.MarkMessageAsRead(ctx, c.Param("id")); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}

func (h *MessageHandler) ListAllMessages(c echo.Context) error {
	ctx := c.Request().Context()

	messages, err := h.messagingService.ListMessages(ctx)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, messages)
}

func (h *MessageHandler) SendPrivateMessage(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.SendMessageRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.UserID == "" || req.Text == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "userId and text are required")
	}

	if err := h.messagingService.SendPrivateMessage(ctx, req.UserID, req.Text); err != nil {
		return err
	}

	return c.NoContent(http.StatusCreated)
}

func (h *MessageHandler) SendGlobalMessage(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.SendGlobalMessageRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.Text == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "text is required")
	}

	if err := h.messagingService.SendGlobalMessage(ctx, req.Text); err != nil {
		return err
	}

	return c.NoContent(http.StatusCreated)
}
