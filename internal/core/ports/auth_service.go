package ports

import (
	"context"

	"github.com/cargopanel/dashboard-gateway/internal/core/domain"
)

// AuthService authenticates dashboard operators and mints access tokens.
type AuthService interface {
	Register(ctx context.Context, username, password, email string, role domain.Role) (*domain.User, error)
	Login(ctx context.Context, username, password string) (string, *domain.User, error)
}
