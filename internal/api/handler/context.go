package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/cargopanel/dashboard-gateway/internal/core/domain"
)

// ctxSession rebuilds the caller's session from the claims injected by the
// Auth middleware. A non-empty role proves the middleware ran; an
// unrecognised role means the token was minted by something else entirely.
func ctxSession(c echo.Context) (domain.Session, error) {
	raw, _ := c.Get("role").(string)
	if raw == "" {
		return domain.Session{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	role, err := domain.ParseRole(raw)
	if err != nil {
		return domain.Session{}, echo.NewHTTPError(http.StatusUnauthorized, "unknown role")
	}

	token, _ := c.Get("token").(string)
	return domain.Session{Token: token, Role: role}, nil
}
