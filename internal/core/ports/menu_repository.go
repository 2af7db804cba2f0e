package ports

import (
	"context"

	"github.com/littlelemon/restaurant-system/internal/core/domain"
)

// MenuItemRepository defines persistence operations for menu items.
// Implementations assign sequential ids on Create and return rows in id order.
type MenuItemRepository interface {
	List(ctx context.Context) ([]*domain.MenuItem, error)
	Create(ctx context.Context, item *domain.MenuItem) error
	FindByID(ctx context.Context, id int64) (*domain.MenuItem, error)
	// Update replaces every field of the stored item with the same ID.
	Update(ctx context.Context, item *domain.MenuItem) error
	Delete(ctx context.Context, id int64) error
}
