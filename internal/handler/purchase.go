package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"tokoaing-store/internal/dto"
	"tokoaing-store/internal/service"
)

type PurchaseHandler struct {
	purchaseService service.PurchaseService
}

func NewPurchaseHandler(purchaseService service.PurchaseService) *PurchaseHandler {
	return &PurchaseHandler{
		purchaseService: purchaseService,
	}
}

func (h *PurchaseHandler) CreatePurchase(c echo.Context) error {
	ctx := c.Request().Context()
	uid := c.Get("user_id").(string)

	var req dto.PurchaseItem
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	id, err := h.purchaseService.CreatePurchase(ctx, uid, &req)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, dto.CreatePurchaseResponse{ID: id})
}

func (h *PurchaseHandler) ListMyPurchases(c echo.Context) error {
	ctx := c.Request().Context()
	uid := c.Get("user_id").(string)

	items, err := h.purchaseService.ListPurchases(ctx, uid)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, items)
}

func (h *PurchaseHandler) OpenMysteryBox(c echo.Context) error {
	ctx := c.Request().Context()

	if err := h.purchaseService.OpenMysteryBox(ctx, c.Param("id")); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}

func (h *PurchaseHandler) DeletePurchase(c echo.Context) error {
	ctx := c.Request().Context()

	if err := h.purchaseService.DeletePurchaseHistoryItem(ctx, c.Param("id")); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}

// ListAllPurchases backs the admin fulfillment queue.
func (h *PurchaseHandler) ListAllPurchases(c echo.Context) error {
	ctx := c.Request().Context()

	items, err := h.purchaseService.ListPurchases(ctx, "")
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, items)
}

// UpdatePurchaseStatus approves or rejects a pending purchase. An
// already-decided or missing purchase leaves everything unchanged.
func (h *PurchaseHandler) UpdatePurchaseStatus(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.UpdatePurchaseStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	if err := h.purchaseService.UpdatePurchaseStatus(ctx, c.Param("id"), req.Status, req.Prize); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}
