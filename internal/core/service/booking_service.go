package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/littlelemon/restaurant-system/internal/core/domain"
	"github.com/littlelemon/restaurant-system/internal/core/ports"
)

type BookingService struct {
	repo   ports.BookingRepository
	logger zerolog.Logger
}

func NewBookingService(repo ports.BookingRepository, logger zerolog.Logger) *BookingService {
	return &BookingService{repo: repo, logger: logger}
}

func (s *BookingService) List(ctx context.Context) ([]*domain.Booking, error) {
	bookings, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	return bookings, nil
}

func (s *BookingService) Create(ctx context.Context, in ports.BookingInput) (*domain.Booking, error) {
	booking := &domain.Booking{
		Name:        in.Name,
		NoOfGuests:  in.NoOfGuests,
		BookingDate: utcPtr(in.BookingDate),
	}
	if err := booking.Validate(); err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, booking); err != nil {
		s.logger.Error().Err(err).Str("name", booking.Name).Msg("failed to create booking")
		return nil, fmt.Errorf("create booking: %w", err)
	}

	s.logger.Info().
		Int64("booking_id", booking.ID).
		Str("name", booking.Name).
		Int("guests", booking.NoOfGuests).
		Msg("booking created")
	return booking, nil
}

func (s *BookingService) Get(ctx context.Context, id int64) (*domain.Booking, error) {
	return s.repo.FindByID(ctx, id)
}

// Update replaces every field of an existing booking. A nil BookingDate
// clears the stored date.
func (s *BookingService) Update(ctx context.Context, id int64, in ports.BookingInput) (*domain.Booking, error) {
	booking, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	booking.Name = in.Name
	booking.NoOfGuests = in.NoOfGuests
	booking.BookingDate = utcPtr(in.BookingDate)
	return s.save(ctx, booking)
}

func (s *BookingService) PartialUpdate(ctx context.Context, id int64, patch ports.BookingPatch) (*domain.Booking, error) {
	booking, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if patch.Name != nil {
		booking.Name = *patch.Name
	}
	if patch.NoOfGuests != nil {
		booking.NoOfGuests = *patch.NoOfGuests
	}
	if patch.SetBookingDate {
		booking.BookingDate = utcPtr(patch.BookingDate)
	}
	return s.save(ctx, booking)
}

func (s *BookingService) save(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	if err := booking.Validate(); err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, booking); err != nil {
		return nil, fmt.Errorf("update booking %d: %w", booking.ID, err)
	}

	s.logger.Info().Int64("booking_id", booking.ID).Msg("booking updated")
	return booking, nil
}

// Delete cancels a booking.
func (s *BookingService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete booking %d: %w", id, err)
	}
	s.logger.Info().Int64("booking_id", id).Msg("booking cancelled")
	return nil
}

// utcPtr normalises an optional timestamp to UTC with second precision.
func utcPtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	u := t.UTC().Truncate(time.Second)
	return &u
}
