package ports

import (
	"context"
	"time"

	"github.com/littlelemon/restaurant-system/internal/core/domain"
)

// BookingInput carries every field of a booking for create and full update.
type BookingInput struct {
	Name        string
	NoOfGuests  int
	BookingDate *time.Time
}

// BookingPatch carries the subset of fields sent in a partial update.
// SetBookingDate distinguishes "clear the date" from "leave it alone".
type BookingPatch struct {
	Name           *string
	NoOfGuests     *int
	BookingDate    *time.Time
	SetBookingDate bool
}

// BookingService defines use-case operations for table bookings.
type BookingService interface {
	List(ctx context.Context) ([]*domain.Booking, error)
	Create(ctx context.Context, in BookingInput) (*domain.Booking, error)
	Get(ctx context.Context, id int64) (*domain.Booking, error)
	Update(ctx context.Context, id int64, in BookingInput) (*domain.Booking, error)
	PartialUpdate(ctx context.Context, id int64, patch BookingPatch) (*domain.Booking, error)
	Delete(ctx context.Context, id int64) error
}
