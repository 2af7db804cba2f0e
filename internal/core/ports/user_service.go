package ports

import (
	"context"

	"github.com/littlelemon/restaurant-system/internal/core/domain"
)

// SignupInput is the DTO for account creation.
type SignupInput struct {
	Username string
	Password string
	Email    string
}

// UserUpdateInput carries a full profile replacement. An empty Password
// keeps the current credential; a nil Groups keeps the current memberships.
type UserUpdateInput struct {
	Username string
	Email    string
	Password string
	Groups   []string
}

// UserPatch carries the subset of profile fields sent in a partial update.
type UserPatch struct {
	Username *string
	Email    *string
	Password *string
	Groups   *[]string
}

// UserService defines account operations.
type UserService interface {
	Signup(ctx context.Context, in SignupInput) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
	Get(ctx context.Context, id int64) (*domain.User, error)
	Update(ctx context.Context, id int64, in UserUpdateInput) (*domain.User, error)
	PartialUpdate(ctx context.Context, id int64, patch UserPatch) (*domain.User, error)
	// Deactivate disables the account and revokes its tokens. Users are never
	// hard-deleted so usernames stay reserved.
	Deactivate(ctx context.Context, id int64) error
}
