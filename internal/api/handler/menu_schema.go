package handler

import (
	"github.com/shopspring/decimal"

	"github.com/littlelemon/restaurant-system/internal/core/domain"
	"github.com/littlelemon/restaurant-system/internal/core/ports"
)

// --- Request types ---

// menuItemRequest is the body of POST and PUT. Price accepts a JSON number
// or a decimal string, inventory a JSON number or a numeric string.
type menuItemRequest struct {
	Title     *string          `json:"title"     validate:"required,max=255"`
	Price     *decimal.Decimal `json:"price"     validate:"required,gte=0"`
	Inventory *flexInt         `json:"inventory" validate:"required,gte=0,max=2147483647"`
}

func (r menuItemRequest) toInput() ports.MenuItemInput {
	return ports.MenuItemInput{Title: *r.Title, Price: *r.Price, Inventory: int(*r.Inventory)}
}

type menuItemPatchRequest struct {
	Title     *string          `json:"title"     validate:"omitempty,max=255"`
	Price     *decimal.Decimal `json:"price"     validate:"omitempty,gte=0"`
	Inventory *flexInt         `json:"inventory" validate:"omitempty,gte=0,max=2147483647"`
}

func (r menuItemPatchRequest) toPatch() ports.MenuItemPatch {
	return ports.MenuItemPatch{Title: r.Title, Price: r.Price, Inventory: r.Inventory.intPtr()}
}

// --- Response types ---

type menuItemResponse struct {
	ID        int64  `json:"id"`
	Title     string `json:"title"`
	Price     string `json:"price"`
	Inventory int    `json:"inventory"`
}

func toMenuItemResponse(m *domain.MenuItem) menuItemResponse {
	return menuItemResponse{
		ID:        m.ID,
		Title:     m.Title,
		Price:     m.Price.StringFixed(domain.PriceScale),
		Inventory: m.Inventory,
	}
}

func toMenuItemResponses(items []*domain.MenuItem) []menuItemResponse {
	out := make([]menuItemResponse, 0, len(items))
	for _, m := range items {
		out = append(out, toMenuItemResponse(m))
	}
	return out
}
