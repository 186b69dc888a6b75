package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"tokoaing-store/internal/dto"
	"tokoaing-store/internal/service"
)

type ButtonHandler struct {
	buttonService service.ButtonService
}

func NewButtonHandler(buttonService service.ButtonService) *ButtonHandler {
	return &ButtonHandler{
		buttonService: buttonService,
	}
}

func (h *ButtonHandler) ListCustomButtons(c echo.Context) error {
	ctx := c.Request().Context()

	buttons, err := h.buttonService.ListCustomButtons(ctx)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, buttons)
}

func (h *ButtonHandler) AddCustomButton(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.CreateButtonRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	button, err := h.buttonService.AddCustomButton(ctx, &req)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, button)
}

func (h *ButtonHandler) UpdateCustomButton(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.UpdateButtonRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	if err := h.buttonService.UpdateCustomButton(ctx, c.Param("id"), &req); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}

func (h *ButtonHandler) DeleteCustomButton(c echo.Context) error {
	ctx := c.Request().Context()

	if err := h.buttonService.DeleteCustomButton(ctx, c.Param("id")); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}
