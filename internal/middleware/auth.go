package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"tokoaing-store/internal/service"
)

// UserIdentity resolves the acting user from the X-User-ID header set
// by the identity-provider edge. Demo-grade, like the rest of the
// user-facing auth; later we can expand this to verified IdP tokens.
func UserIdentity() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			uid := c.Request().Header.Get("X-User-ID")
			if uid == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing user identity")
			}
			c.Set("user_id", uid)
			return next(c)
		}
	}
}

// AdminAuth gates the admin panel routes behind a bearer token issued
// by the admin login endpoint.
func AdminAuth(authService service.AdminAuthService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get("Authorization")
			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || token == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing admin token")
			}

			if err := authService.VerifyToken(token); err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid admin token")
			}

			return next(c)
		}
	}
}
