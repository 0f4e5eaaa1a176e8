package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/cargopanel/dashboard-gateway/internal/core/domain"
	"github.com/cargopanel/dashboard-gateway/internal/core/routes"
)

// NavHandler serves the role-filtered route table to the front-end shell:
// which views exist for this operator, what goes on the sidebar, and which
// view a path resolves to.
type NavHandler struct {
	gate *routes.Gate
}

func NewNavHandler(gate *routes.Gate) *NavHandler {
	return &NavHandler{gate: gate}
}

type routesResponse struct {
	Routes []domain.RouteDescriptor `json:"routes"`
}

type menuResponse struct {
	Items []routes.MenuItem `json:"items"`
}

type resolveResponse struct {
	Route domain.RouteDescriptor `json:"route"`
}

// Routes returns every route reachable by the caller's role, in declaration
// order. Routes excluded by role are simply absent.
//
// @Summary      List reachable routes
// @Tags         nav
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  routesResponse
// @Router       /nav/routes [get]
func (h *NavHandler) Routes(c echo.Context) error {
	sess, err := ctxSession(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, routesResponse{Routes: h.gate.Filtered(sess.Role)})
}

// Menu returns the sidebar entries for the caller's role with active-item
// flags computed against the path query parameter.
//
// @Summary      Sidebar menu with highlighting
// @Tags         nav
// @Produce      json
// @Security     BearerAuth
// @Param        path  query     string  false  "Current front-end path"
// @Success      200   {object}  menuResponse
// @Router       /nav/menu [get]
func (h *NavHandler) Menu(c echo.Context) error {
	sess, err := ctxSession(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, menuResponse{Items: h.gate.ActiveMenu(sess.Role, c.QueryParam("path"))})
}

// Resolve maps a front-end path to the view that should render there.
// A path outside the caller's filtered table yields 404 whether the route
// exists for another role or not at all.
//
// @Summary      Resolve a path to a view
// @Tags         nav
// @Produce      json
// @Security     BearerAuth
// @Param        path  query     string  true  "Front-end path to resolve"
// @Success      200   {object}  resolveResponse
// @Failure      404   {object}  map[string]string
// @Router       /nav/resolve [get]
func (h *NavHandler) Resolve(c echo.Context) error {
	sess, err := ctxSession(c)
	if err != nil {
		return err
	}

	route, err := h.gate.Resolve(c.QueryParam("path"), sess)
	if err != nil {
		if errors.Is(err, domain.ErrLoginRequired) {
			return c.JSON(http.StatusUnauthorized, map[string]string{"redirect": routes.LoginPath})
		}
		return err
	}
	return c.JSON(http.StatusOK, resolveResponse{Route: route})
}
