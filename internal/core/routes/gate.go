package routes

import (
	"github.com/cargopanel/dashboard-gateway/internal/core/domain"
)

// Gate decides, per navigation attempt, whether a route may render for the
// current session, and builds the role-filtered navigation menu.
type Gate struct {
	table []domain.RouteDescriptor
}

// NewGate wraps a route table. The table is treated as immutable.
func NewGate(table []domain.RouteDescriptor) *Gate {
	return &Gate{table: table}
}

// Filtered returns the routes reachable by the given role, in table order.
func (g *Gate) Filtered(role domain.Role) []domain.RouteDescriptor {
	out := make([]domain.RouteDescriptor, 0, len(g.table))
	for _, d := range g.table {
		if d.Allows(role) {
			out = append(out, d)
		}
	}
	return out
}

// Menu returns the sidebar entries for the given role, in table order.
func (g *Gate) Menu(role domain.Role) []domain.RouteDescriptor {
	out := make([]domain.RouteDescriptor, 0, len(g.table))
	for _, d := range g.Filtered(role) {
		if d.OnMenu {
			out = append(out, d)
		}
	}
	return out
}

// Resolve maps a navigation attempt to a route descriptor.
//
// The login route is public. Every other path requires an authenticated
// session; without one, ErrLoginRequired tells the caller to redirect. An
// authenticated session sees only its role's routes: a path whose route
// exists but excludes the role resolves to ErrRouteNotFound, exactly like a
// path that matches nothing. No distinct "forbidden" outcome exists.
func (g *Gate) Resolve(path string, sess domain.Session) (domain.RouteDescriptor, error) {
	if path == LoginPath {
		return LoginRoute, nil
	}
	if !sess.IsAuthenticated() {
		return domain.RouteDescriptor{}, domain.ErrLoginRequired
	}
	for _, d := range g.Filtered(sess.Role) {
		if d.Matches(path) {
			return d, nil
		}
	}
	return domain.RouteDescriptor{}, domain.ErrRouteNotFound
}

// MenuItem is a menu entry plus its highlighting state for the current path.
type MenuItem struct {
	domain.RouteDescriptor
	Active bool `json:"active"`
}

// ActiveMenu returns the menu for the role with each entry's Active flag
// computed against currentPath. Highlighting has no authorization effect.
func (g *Gate) ActiveMenu(role domain.Role, currentPath string) []MenuItem {
	menu := g.Menu(role)
	out := make([]MenuItem, 0, len(menu))
	for _, d := range menu {
		out = append(out, MenuItem{RouteDescriptor: d, Active: d.IsActive(currentPath)})
	}
	return out
}
