// Package routes holds the static dashboard route table and the
// authorization gate that filters it by role.
package routes

import "github.com/cargopanel/dashboard-gateway/internal/core/domain"

const (
	LoginPath     = "/login"
	DashboardPath = "/dashboard"
)

// LoginRoute is the only public route; it never appears in the table of
// guarded routes.
var LoginRoute = domain.RouteDescriptor{
	Path: LoginPath,
	View: "Login",
}

var allRoles = []domain.Role{domain.RoleAdmin, domain.RoleWorker}

// Table returns the guarded route table in menu order. The bare "/" entry
// renders the same view as /dashboard and is aliased to it for highlighting.
func Table() []domain.RouteDescriptor {
	return []domain.RouteDescriptor{
		{
			Path:  "/",
			View:  "Dashboard",
			Roles: allRoles,
		},
		{
			Path:       DashboardPath,
			View:       "Dashboard",
			Title:      "dashboard",
			Icon:       "dashboard",
			OnMenu:     true,
			Roles:      allRoles,
			AliasPaths: []string{"/"},
		},
		{
			Path:   "/parties",
			View:   "Parties",
			Title:  "parties",
			Icon:   "truck",
			OnMenu: true,
			Roles:  allRoles,
		},
		{
			Path:  "/parties/create",
			View:  "PartyCreate",
			Roles: allRoles,
		},
		{
			Path:  "/parties/edit/:id",
			View:  "PartyEdit",
			Roles: allRoles,
		},
		{
			Path:   "/packets",
			View:   "Packets",
			Title:  "packets",
			Icon:   "inbox",
			OnMenu: true,
			Roles:  allRoles,
		},
		{
			Path:  "/packets/view/:packetId",
			View:  "PacketView",
			Roles: allRoles,
		},
		{
			Path:   "/products",
			View:   "Products",
			Title:  "products",
			Icon:   "appstore",
			OnMenu: true,
			Roles:  allRoles,
		},
	}
}
