package ports

import (
	"context"

	"github.com/cargopanel/dashboard-gateway/internal/core/domain"
)

// SessionRepository persists the backend session across restarts.
// Clear removes credentials but keeps the language preference.
type SessionRepository interface {
	Load(ctx context.Context) (domain.Session, error)
	Save(ctx context.Context, sess domain.Session) error
	Clear(ctx context.Context) error
}

// Navigator receives navigation side effects, such as the forced move to the
// login route after a logout.
type Navigator interface {
	NavigateTo(path string)
}

// NavigatorFunc adapts a plain function to the Navigator interface.
type NavigatorFunc func(path string)

func (f NavigatorFunc) NavigateTo(path string) { f(path) }
