package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"tokoaing-store/internal/dto"
	"tokoaing-store/internal/service"
	"tokoaing-store/internal/store"
)

type UserHandler struct {
	identityService service.IdentityService
}

func NewUserHandler(identityService service.IdentityService) *UserHandler {
	return &UserHandler{
		identityService: identityService,
	}
}

// Register mirrors a freshly created identity-provider account.
func (h *UserHandler) Register(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.CreateUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.UID == "" || req.Email == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "uid and email are required")
	}

	user, err := h.identityService.CreateUser(ctx, req.UID, req.Email, req.Nickname)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, user)
}

func (h *UserHandler) Me(c echo.Context) error {
	ctx := c.Request().Context()
	uid := c.Get("user_id").(string)

	user, err := h.identityService.GetUser(ctx, uid)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "user not found")
		}
		return err
	}

	return c.JSON(http.StatusOK, user)
}

// RecordLogin bumps lastLogin at session start.
func (h *UserHandler) RecordLogin(c echo.Context) error {
	ctx := c.Request().Context()
	uid := c.Get("user_id").(string)

	if err := h.identityService.RecordLogin(ctx, uid); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}

func (h *UserHandler) ListUsers(c echo.Context) error {
	ctx := c.Request().Context()

	users, err := h.identityService.ListUsers(ctx)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, users)
}

func (h *UserHandler) UpdateUser(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.UpdateUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	if err := h.identityService.UpdateUser(ctx, c.Param("uid"), &req); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}

func (h *UserHandler) DeleteUser(c echo.Context) error {
	ctx := c.Request().Context()

	if err := h.identityService.DeleteUser(ctx, c.Param("uid")); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}
