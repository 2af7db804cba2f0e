package ports

import (
	"context"

	"github.com/littlelemon/restaurant-system/internal/core/domain"
)

// UserRepository defines persistence operations for user accounts.
// Create and Update return domain.ErrUserExists on a username collision.
type UserRepository interface {
	// List returns active users ordered by id.
	List(ctx context.Context) ([]*domain.User, error)
	Create(ctx context.Context, user *domain.User) error
	FindByID(ctx context.Context, id int64) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) error
}
