package domain

import (
	"strings"
	"time"
	"unicode/utf8"
)

const (
	MaxNameLength = 255
	// MaxInteger is the largest value an INTEGER column accepts.
	MaxInteger = 2147483647
)

// Booking is a table reservation made by a party.
type Booking struct {
	ID          int64
	Name        string
	NoOfGuests  int
	BookingDate *time.Time // optional
}

func (b Booking) String() string {
	return b.Name
}

// Validate checks the invariants every persisted booking must hold.
func (b *Booking) Validate() error {
	ve := &ValidationError{}
	if strings.TrimSpace(b.Name) == "" {
		ve.Add("name", "this field may not be blank")
	} else if utf8.RuneCountInString(b.Name) > MaxNameLength {
		ve.Add("name", "ensure this field has no more than 255 characters")
	}
	if b.NoOfGuests <= 0 {
		ve.Add("no_of_guests", "ensure this value is greater than 0")
	} else if b.NoOfGuests > MaxInteger {
		ve.Add("no_of_guests", "ensure this value is less than or equal to 2147483647")
	}
	return ve.OrNil()
}
