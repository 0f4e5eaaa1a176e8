package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/cargopanel/dashboard-gateway/internal/core/domain"
	"github.com/cargopanel/dashboard-gateway/internal/gateway"
)

// errorResponse is the canonical error envelope for all API errors.
type errorResponse struct {
	Error string `json:"error"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps known domain errors to their appropriate HTTP status codes.
//   - Surfaces backend failures as 502 without leaking internals.
//   - Logs unexpected errors internally and renders a consistent JSON
//     envelope: {"error": "<message>"}.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, msg := resolveError(err, log, c)
		_ = c.JSON(code, errorResponse{Error: msg})
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string) {
	// Echo's own errors (bind failures, 404 from router, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	// Known domain errors → deterministic HTTP codes. A route excluded by
	// role and a route that does not exist share one answer on purpose.
	switch {
	case errors.Is(err, domain.ErrRouteNotFound):
		return http.StatusNotFound, "not found"
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound, "not found"
	case errors.Is(err, domain.ErrLoginRequired):
		return http.StatusUnauthorized, "login required"
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized, "invalid credentials"
	case errors.Is(err, domain.ErrInvalidRole):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound, "user not found"
	case errors.Is(err, domain.ErrUserExists):
		return http.StatusConflict, "user already exists"
	case errors.Is(err, domain.ErrUnauthorized):
		// The gateway's own backend session expired; recovery runs async.
		return http.StatusBadGateway, "backend session expired, retry shortly"
	}

	// Other upstream failures surface as bad gateway with the status kept
	// out of the message body.
	var se *gateway.StatusError
	if errors.As(err, &se) {
		log.Warn().
			Int("upstream_status", se.StatusCode).
			Str("method", c.Request().Method).
			Str("path", c.Path()).
			Msg("upstream request failed")
		return http.StatusBadGateway, "backend request failed"
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, "internal server error"
}
