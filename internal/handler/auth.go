package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"tokoaing-store/internal/dto"
	"tokoaing-store/internal/service"
)

type AuthHandler struct {
	authService service.AdminAuthService
}

func NewAuthHandler(authService service.AdminAuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

func (h *AuthHandler) AdminLogin(c echo.Context) error {
	var req dto.AdminLoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	token, err := h.authService.Login(req.Password)
	if err != nil {
		if errors.Is(err, service.ErrWrongPassword) {
			return echo.NewHTTPError(http.StatusUnauthorized, "wrong password")
		}
		return err
	}

	return c.JSON(http.StatusOK, dto.AdminLoginResponse{Token: token})
}
