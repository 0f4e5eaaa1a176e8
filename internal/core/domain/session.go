package domain

// DefaultLang is the UI locale used until the operator picks one.
const DefaultLang = "uz"

// Session is the authentication state against the cargo backend.
//
// Invariant: a session is authenticated exactly when Token is non-empty,
// and Role is set exactly when the session is authenticated. Lang survives
// logout.
type Session struct {
	Token string `json:"-"`
	Role  Role   `json:"role,omitempty"`
	Lang  string `json:"lang,omitempty"`
}

// IsAuthenticated reports whether the session holds credentials.
func (s Session) IsAuthenticated() bool {
	return s.Token != ""
}

// IsAdmin reports whether the session carries the admin role.
func (s Session) IsAdmin() bool {
	return s.IsAuthenticated() && s.Role == RoleAdmin
}

// Normalized repairs torn persisted state so the session invariant holds:
// a token without a role (or a role without a token) degrades to the
// unauthenticated state rather than a half-authenticated one.
func (s Session) Normalized() Session {
	if s.Token == "" || s.Role == "" {
		s.Token = ""
		s.Role = ""
	}
	if _, err := ParseRole(string(s.Role)); s.Role != "" && err != nil {
		s.Token = ""
		s.Role = ""
	}
	return s
}
