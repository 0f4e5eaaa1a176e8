package routes

import (
	"errors"
	"testing"

	"github.com/cargopanel/dashboard-gateway/internal/core/domain"
)

func workerSession() domain.Session {
	return domain.Session{Token: "tok123", Role: domain.RoleWorker}
}

func TestFiltered_MatchesRoleMembership(t *testing.T) {
	table := []domain.RouteDescriptor{
		{Path: "/a", Roles: []domain.Role{domain.RoleAdmin, domain.RoleWorker}},
		{Path: "/b", Roles: []domain.Role{domain.RoleAdmin}},
		{Path: "/c", Roles: []domain.Role{domain.RoleWorker}},
	}
	g := NewGate(table)

	worker := g.Filtered(domain.RoleWorker)
	if len(worker) != 2 || worker[0].Path != "/a" || worker[1].Path != "/c" {
		t.Fatalf("unexpected worker routes: %+v", worker)
	}

	admin := g.Filtered(domain.RoleAdmin)
	if len(admin) != 2 || admin[0].Path != "/a" || admin[1].Path != "/b" {
		t.Fatalf("unexpected admin routes: %+v", admin)
	}
}

func TestFiltered_WorkerSeesFullDefaultTable(t *testing.T) {
	g := NewGate(Table())

	got := map[string]bool{}
	for _, d := range g.Filtered(domain.RoleWorker) {
		got[d.Path] = true
	}
	for _, path := range []string{DashboardPath, "/parties", "/packets", "/products"} {
		if !got[path] {
			t.Fatalf("worker should reach %s, filtered table: %v", path, got)
		}
	}
}

func TestMenu_OnlyMenuRoutesInTableOrder(t *testing.T) {
	g := NewGate(Table())

	menu := g.Menu(domain.RoleAdmin)
	want := []string{DashboardPath, "/parties", "/packets", "/products"}
	if len(menu) != len(want) {
		t.Fatalf("expected %d menu items, got %d", len(want), len(menu))
	}
	for i, d := range menu {
		if d.Path != want[i] {
			t.Fatalf("menu[%d] = %s, want %s", i, d.Path, want[i])
		}
	}
}

func TestResolve_Unauthenticated(t *testing.T) {
	g := NewGate(Table())

	if _, err := g.Resolve("/parties", domain.Session{}); !errors.Is(err, domain.ErrLoginRequired) {
		t.Fatalf("expected ErrLoginRequired, got %v", err)
	}

	// Login is public even without a session.
	d, err := g.Resolve(LoginPath, domain.Session{})
	if err != nil {
		t.Fatalf("login route must be public: %v", err)
	}
	if d.View != "Login" {
		t.Fatalf("unexpected view %q", d.View)
	}
}

func TestResolve_MatchesParamRoutes(t *testing.T) {
	g := NewGate(Table())

	d, err := g.Resolve("/parties/edit/42", workerSession())
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	if d.View != "PartyEdit" {
		t.Fatalf("unexpected view %q", d.View)
	}

	d, err = g.Resolve("/packets/view/p-9", workerSession())
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	if d.View != "PacketView" {
		t.Fatalf("unexpected view %q", d.View)
	}
}

func TestResolve_UnknownPath(t *testing.T) {
	g := NewGate(Table())
	if _, err := g.Resolve("/no/such/page", workerSession()); !errors.Is(err, domain.ErrRouteNotFound) {
		t.Fatalf("expected ErrRouteNotFound, got %v", err)
	}
}

func TestResolve_RoleExcludedLooksLikeMissing(t *testing.T) {
	// A route the role cannot see must resolve exactly like a nonexistent
	// one, so hidden routes cannot be probed.
	table := append(Table(), domain.RouteDescriptor{
		Path:  "/clients",
		View:  "Clients",
		Roles: []domain.Role{domain.RoleAdmin},
	})
	g := NewGate(table)

	_, errExcluded := g.Resolve("/clients", workerSession())
	_, errMissing := g.Resolve("/definitely/not/there", workerSession())

	if !errors.Is(errExcluded, domain.ErrRouteNotFound) {
		t.Fatalf("expected ErrRouteNotFound for excluded route, got %v", errExcluded)
	}
	if !errors.Is(errExcluded, errMissing) && errExcluded.Error() != errMissing.Error() {
		t.Fatalf("excluded and missing must be indistinguishable: %v vs %v", errExcluded, errMissing)
	}

	// The admin still resolves it.
	if _, err := g.Resolve("/clients", domain.Session{Token: "t", Role: domain.RoleAdmin}); err != nil {
		t.Fatalf("admin should resolve /clients: %v", err)
	}
}

func TestActiveMenu_PrefixAndAliasHighlighting(t *testing.T) {
	g := NewGate(Table())

	active := func(items []MenuItem) []string {
		var out []string
		for _, it := range items {
			if it.Active {
				out = append(out, it.Path)
			}
		}
		return out
	}

	// Sub-path highlights its section.
	got := active(g.ActiveMenu(domain.RoleWorker, "/parties/create"))
	if len(got) != 1 || got[0] != "/parties" {
		t.Fatalf("expected /parties active for /parties/create, got %v", got)
	}

	// The bare root highlights dashboard via its alias.
	got = active(g.ActiveMenu(domain.RoleWorker, "/"))
	if len(got) != 1 || got[0] != DashboardPath {
		t.Fatalf("expected %s active for /, got %v", DashboardPath, got)
	}

	got = active(g.ActiveMenu(domain.RoleWorker, DashboardPath))
	if len(got) != 1 || got[0] != DashboardPath {
		t.Fatalf("expected %s active, got %v", DashboardPath, got)
	}
}
