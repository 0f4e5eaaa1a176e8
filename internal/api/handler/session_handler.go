package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/cargopanel/dashboard-gateway/internal/core/service"
	"github.com/cargopanel/dashboard-gateway/internal/core/session"
)

// SessionHandler exposes the gateway's own backend session: its state, the UI
// locale stored alongside it, and admin controls to re-establish or drop it.
type SessionHandler struct {
	store   *session.Store
	backend *service.BackendAuthService
}

func NewSessionHandler(store *session.Store, backend *service.BackendAuthService) *SessionHandler {
	return &SessionHandler{store: store, backend: backend}
}

type sessionResponse struct {
	Authenticated bool   `json:"authenticated"`
	Role          string `json:"role,omitempty"`
	Lang          string `json:"lang"`
}

type langRequest struct {
	Lang string `json:"lang" validate:"required,bcp47_language_tag"`
}

func (h *SessionHandler) snapshot() sessionResponse {
	sess := h.store.Current()
	return sessionResponse{
		Authenticated: sess.IsAuthenticated(),
		Role:          string(sess.Role),
		Lang:          sess.Lang,
	}
}

// Current reports whether the gateway holds a live backend session. The token
// itself never leaves the process.
//
// @Summary      Backend session state
// @Tags         session
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  sessionResponse
// @Router       /session [get]
func (h *SessionHandler) Current(c echo.Context) error {
	return c.JSON(http.StatusOK, h.snapshot())
}

// SetLanguage stores a new UI locale. The locale outlives logins and logouts.
//
// @Summary      Switch UI language
// @Tags         session
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      langRequest  true  "Locale"
// @Success      200   {object}  sessionResponse
// @Failure      400   {object}  map[string]string
// @Router       /session/lang [put]
func (h *SessionHandler) SetLanguage(c echo.Context) error {
	var req langRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	h.store.SetLanguage(req.Lang)
	return c.JSON(http.StatusOK, h.snapshot())
}

// Login forces a fresh login against the cargo backend, replacing whatever
// session is currently held. Admin only.
//
// @Summary      Re-establish the backend session
// @Tags         session
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  sessionResponse
// @Failure      502  {object}  map[string]string
// @Router       /session/login [post]
func (h *SessionHandler) Login(c echo.Context) error {
	if err := h.backend.Login(c.Request().Context()); err != nil {
		return echo.NewHTTPError(http.StatusBadGateway, err.Error())
	}
	return c.JSON(http.StatusOK, h.snapshot())
}

// Logout drops the backend session. Subsequent proxied requests will fail
// until an admin logs back in or the 401 recovery hook does. Admin only.
//
// @Summary      Drop the backend session
// @Tags         session
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  sessionResponse
// @Router       /session/logout [post]
func (h *SessionHandler) Logout(c echo.Context) error {
	h.store.Logout()
	return c.JSON(http.StatusOK, h.snapshot())
}
