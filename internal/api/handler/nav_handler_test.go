package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/cargopanel/dashboard-gateway/internal/core/domain"
	"github.com/cargopanel/dashboard-gateway/internal/core/routes"
)

func navContext(t *testing.T, target, role string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := newTestEcho()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if role != "" {
		c.Set("role", role)
		c.Set("token", "tok")
	}
	return c, rec
}

func adminTable() []domain.RouteDescriptor {
	table := routes.Table()
	table = append(table, domain.RouteDescriptor{
		Path:  "/clients",
		View:  "Clients",
		Roles: []domain.Role{domain.RoleAdmin},
	})
	return table
}

func TestNavHandler_Routes_FilteredByRole(t *testing.T) {
	h := NewNavHandler(routes.NewGate(adminTable()))

	c, rec := navContext(t, "/nav/routes", "worker")
	if err := h.Routes(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp routesResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	for _, r := range resp.Routes {
		if r.Path == "/clients" {
			t.Fatalf("worker must not see admin-only route")
		}
	}
}

func TestNavHandler_Routes_MissingClaims(t *testing.T) {
	h := NewNavHandler(routes.NewGate(routes.Table()))

	c, _ := navContext(t, "/nav/routes", "")
	err := h.Routes(c)

	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}

func TestNavHandler_Menu_MarksActive(t *testing.T) {
	h := NewNavHandler(routes.NewGate(routes.Table()))

	c, rec := navContext(t, "/nav/menu?path=/parties/edit/42", "admin")
	if err := h.Menu(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp menuResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	found := false
	for _, item := range resp.Items {
		if item.Path == "/parties" {
			found = true
			if !item.Active {
				t.Fatalf("parties entry should be active for /parties/edit/42")
			}
		} else if item.Active {
			t.Fatalf("unexpected active entry %s", item.Path)
		}
	}
	if !found {
		t.Fatalf("menu should contain /parties")
	}
}

func TestNavHandler_Resolve_ExcludedLooksLikeMissing(t *testing.T) {
	h := NewNavHandler(routes.NewGate(adminTable()))

	for _, path := range []string{"/clients", "/no-such-route"} {
		c, _ := navContext(t, "/nav/resolve?path="+path, "worker")
		err := h.Resolve(c)
		if !errors.Is(err, domain.ErrRouteNotFound) {
			t.Fatalf("path %s: expected ErrRouteNotFound, got %v", path, err)
		}
	}
}

func TestNavHandler_Resolve_ParamRoute(t *testing.T) {
	h := NewNavHandler(routes.NewGate(routes.Table()))

	c, rec := navContext(t, "/nav/resolve?path=/packets/view/77", "worker")
	if err := h.Resolve(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp resolveResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.Route.View != "PacketView" {
		t.Fatalf("expected PacketView, got %s", resp.Route.View)
	}
}
