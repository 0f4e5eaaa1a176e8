package domain

import "strings"

// RouteDescriptor binds a navigable dashboard path to a view and the roles
// allowed to reach it. The table of descriptors is static data: views are
// referenced by name and instantiated by the front-end, never constructed
// here.
type RouteDescriptor struct {
	Path string `json:"path"`
	View string `json:"view"`
	// Title and Icon are navigation metadata; both empty for routes that
	// never appear on the menu.
	Title string `json:"title,omitempty"`
	Icon  string `json:"icon,omitempty"`
	// OnMenu marks the route as a sidebar entry.
	OnMenu bool `json:"on_menu,omitempty"`
	// Roles is the set of roles that may reach this route.
	Roles []Role `json:"roles"`
	// AliasPaths are alternate paths treated as equivalent for active-item
	// highlighting only; they carry no authorization meaning.
	AliasPaths []string `json:"alias_paths,omitempty"`
}

// Allows reports whether the given role may reach this route.
func (d RouteDescriptor) Allows(role Role) bool {
	for _, r := range d.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// IsActive reports whether this route should be highlighted for the current
// path: either the current path starts with the route's path, or it equals
// one of the alias paths exactly.
func (d RouteDescriptor) IsActive(currentPath string) bool {
	if strings.HasPrefix(currentPath, d.Path) {
		return true
	}
	for _, alias := range d.AliasPaths {
		if currentPath == alias {
			return true
		}
	}
	return false
}

// Matches reports whether a concrete path matches the descriptor's path
// pattern. Pattern segments starting with ':' match any single non-empty
// segment ("/parties/edit/:id" matches "/parties/edit/42").
func (d RouteDescriptor) Matches(path string) bool {
	pat := strings.Split(strings.Trim(d.Path, "/"), "/")
	got := strings.Split(strings.Trim(path, "/"), "/")
	if len(pat) != len(got) {
		return false
	}
	for i, seg := range pat {
		if strings.HasPrefix(seg, ":") {
			if got[i] == "" {
				return false
			}
			continue
		}
		if seg != got[i] {
			return false
		}
	}
	return true
}
