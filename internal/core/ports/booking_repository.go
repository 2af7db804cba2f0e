package ports

import (
	"context"

	"github.com/littlelemon/restaurant-system/internal/core/domain"
)

// BookingRepository defines persistence operations for table bookings.
type BookingRepository interface {
	List(ctx context.Context) ([]*domain.Booking, error)
	Create(ctx context.Context, booking *domain.Booking) error
	FindByID(ctx context.Context, id int64) (*domain.Booking, error)
	Update(ctx context.Context, booking *domain.Booking) error
	Delete(ctx context.Context, id int64) error
}
