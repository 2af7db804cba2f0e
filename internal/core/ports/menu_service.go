package ports

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/littlelemon/restaurant-system/internal/core/domain"
)

// MenuItemInput carries every field of a menu item for create and full update.
type MenuItemInput struct {
	Title     string
	Price     decimal.Decimal
	Inventory int
}

// MenuItemPatch carries the subset of fields sent in a partial update.
// Nil fields are left unchanged.
type MenuItemPatch struct {
	Title     *string
	Price     *decimal.Decimal
	Inventory *int
}

// MenuService defines use-case operations for the menu catalog.
type MenuService interface {
	List(ctx context.Context) ([]*domain.MenuItem, error)
	Create(ctx context.Context, in MenuItemInput) (*domain.MenuItem, error)
	Get(ctx context.Context, id int64) (*domain.MenuItem, error)
	Update(ctx context.Context, id int64, in MenuItemInput) (*domain.MenuItem, error)
	PartialUpdate(ctx context.Context, id int64, patch MenuItemPatch) (*domain.MenuItem, error)
	Delete(ctx context.Context, id int64) error
}
