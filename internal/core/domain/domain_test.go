package domain

import (
	"errors"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
)

func TestMenuItem_String(t *testing.T) {
	m := MenuItem{Title: "Spaghetti", Price: decimal.RequireFromString("10.49"), Inventory: 25}
	if got := m.String(); got != "Spaghetti : 10.49" {
		t.Fatalf("unexpected string: %q", got)
	}

	m.Price = decimal.RequireFromString("10.5")
	if got := m.String(); got != "Spaghetti : 10.50" {
		t.Fatalf("expected two decimals, got %q", got)
	}
}

func TestMenuItem_Validate(t *testing.T) {
	cases := []struct {
		name    string
		item    MenuItem
		wantErr string // field expected in the error, "" for valid
	}{
		{"valid", MenuItem{Title: "Pasta", Price: decimal.RequireFromString("12.50"), Inventory: 10}, ""},
		{"zero price and stock", MenuItem{Title: "Water", Price: decimal.Zero, Inventory: 0}, ""},
		{"blank title", MenuItem{Title: "  ", Price: decimal.NewFromInt(1)}, "title"},
		{"long title", MenuItem{Title: strings.Repeat("a", 256), Price: decimal.NewFromInt(1)}, "title"},
		{"negative price", MenuItem{Title: "Pasta", Price: decimal.NewFromInt(-1)}, "price"},
		{"too many decimals", MenuItem{Title: "Pasta", Price: decimal.RequireFromString("1.005")}, "price"},
		{"price too large", MenuItem{Title: "Pasta", Price: decimal.RequireFromString("100000000")}, "price"},
		{"negative inventory", MenuItem{Title: "Pasta", Price: decimal.NewFromInt(1), Inventory: -1}, "inventory"},
		{"inventory at int32 limit", MenuItem{Title: "Pasta", Price: decimal.NewFromInt(1), Inventory: MaxInteger}, ""},
		{"inventory past int32 limit", MenuItem{Title: "Pasta", Price: decimal.NewFromInt(1), Inventory: MaxInteger + 1}, "inventory"},
	}

	for _, tc := range cases {
		err := tc.item.Validate()
		if tc.wantErr == "" {
			if err != nil {
				t.Errorf("%s: unexpected error: %v", tc.name, err)
			}
			continue
		}
		var ve *ValidationError
		if !errors.As(err, &ve) {
			t.Errorf("%s: expected ValidationError, got %v", tc.name, err)
			continue
		}
		if _, ok := ve.Fields[tc.wantErr]; !ok {
			t.Errorf("%s: expected error on %q, got %v", tc.name, tc.wantErr, ve.Fields)
		}
	}
}

func TestBooking_Validate(t *testing.T) {
	b := Booking{Name: "Ada Lovelace", NoOfGuests: 3}
	if err := b.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if b.String() != "Ada Lovelace" {
		t.Fatalf("unexpected string: %q", b.String())
	}

	b = Booking{Name: "", NoOfGuests: 0}
	var ve *ValidationError
	if !errors.As(b.Validate(), &ve) {
		t.Fatal("expected ValidationError")
	}
	if len(ve.Fields["name"]) == 0 || len(ve.Fields["no_of_guests"]) == 0 {
		t.Fatalf("expected name and no_of_guests errors, got %v", ve.Fields)
	}

	b = Booking{Name: "Ada Lovelace", NoOfGuests: MaxInteger + 1}
	if !errors.As(b.Validate(), &ve) || len(ve.Fields["no_of_guests"]) == 0 {
		t.Fatalf("expected no_of_guests upper bound error, got %v", b.Validate())
	}
}

func TestValidUsername(t *testing.T) {
	for _, ok := range []string{"alice", "script_user", "a.b+c-d@e"} {
		if !ValidUsername(ok) {
			t.Errorf("expected %q to be valid", ok)
		}
	}
	for _, bad := range []string{"", "has space", "semi;colon", strings.Repeat("x", 151)} {
		if ValidUsername(bad) {
			t.Errorf("expected %q to be invalid", bad)
		}
	}
}

func TestValidationError_OrNil(t *testing.T) {
	ve := &ValidationError{}
	if ve.OrNil() != nil {
		t.Fatal("empty ValidationError must convert to nil")
	}
	ve.Add("title", "required")
	if ve.OrNil() == nil {
		t.Fatal("non-empty ValidationError must not be nil")
	}
	if !strings.Contains(ve.Error(), "title: required") {
		t.Fatalf("unexpected message: %q", ve.Error())
	}
}
