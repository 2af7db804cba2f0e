package ports

import (
	"context"

	"github.com/littlelemon/restaurant-system/internal/core/domain"
)

// AuthService issues, verifies and revokes auth tokens.
type AuthService interface {
	Login(ctx context.Context, username, password string) (string, error)
	Logout(ctx context.Context, token string) error
	// Authenticate resolves a raw token to an active user or returns
	// domain.ErrUnauthorized.
	Authenticate(ctx context.Context, token string) (*domain.User, error)
}
