package domain

import (
	"strings"
	"unicode/utf8"

	"github.com/shopspring/decimal"
)

const (
	MaxTitleLength = 255
	PriceScale     = 2
)

// MaxPrice is the largest price a menu item may carry (NUMERIC(10,2)).
var MaxPrice = decimal.RequireFromString("99999999.99")

// MenuItem is a dish or drink offered on the restaurant menu.
type MenuItem struct {
	ID        int64
	Title     string
	Price     decimal.Decimal
	Inventory int
}

// String renders the item as "<title> : <price>".
func (m MenuItem) String() string {
	return m.Title + " : " + m.Price.StringFixed(PriceScale)
}

// Validate checks the invariants every persisted menu item must hold.
func (m *MenuItem) Validate() error {
	ve := &ValidationError{}
	if strings.TrimSpace(m.Title) == "" {
		ve.Add("title", "this field may not be blank")
	} else if utf8.RuneCountInString(m.Title) > MaxTitleLength {
		ve.Add("title", "ensure this field has no more than 255 characters")
	}
	if m.Price.IsNegative() {
		ve.Add("price", "ensure this value is greater than or equal to 0")
	} else if m.Price.GreaterThan(MaxPrice) {
		ve.Add("price", "ensure there are no more than 10 digits in total")
	} else if !m.Price.Equal(m.Price.Round(PriceScale)) {
		ve.Add("price", "ensure there are no more than 2 decimal places")
	}
	if m.Inventory < 0 {
		ve.Add("inventory", "ensure this value is greater than or equal to 0")
	} else if m.Inventory > MaxInteger {
		ve.Add("inventory", "ensure this value is less than or equal to 2147483647")
	}
	return ve.OrNil()
}
