package domain

import "errors"

var (
	// ErrInvalidCredentials covers bad login payloads and password mismatches.
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidRole        = errors.New("invalid role")
	ErrUserNotFound       = errors.New("user not found")
	ErrUserExists         = errors.New("user already exists")

	// ErrLoginRequired is returned when an unauthenticated session tries to
	// resolve a guarded route; the caller redirects to the login route.
	ErrLoginRequired = errors.New("login required")
	// ErrRouteNotFound is returned both for paths that do not exist and for
	// paths the current role is not allowed to see. The two cases are
	// deliberately indistinguishable.
	ErrRouteNotFound = errors.New("route not found")

	// ErrUnauthorized signals a 401 from the cargo backend; the gateway has
	// already cleared the stored credentials by the time callers see it.
	ErrUnauthorized = errors.New("backend session unauthorized")
	// ErrNotFound signals a 404 from the cargo backend for a named resource.
	ErrNotFound = errors.New("resource not found")
)
