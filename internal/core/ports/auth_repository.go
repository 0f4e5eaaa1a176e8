package ports

import (
	"context"

	"github.com/cargopanel/dashboard-gateway/internal/core/domain"
)

// AuthRepository defines persistence for dashboard operator accounts.
type AuthRepository interface {
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
}
