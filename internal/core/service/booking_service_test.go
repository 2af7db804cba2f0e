package service

import (
	"context"
	"errors"
	"sort"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/littlelemon/restaurant-system/internal/core/domain"
	"github.com/littlelemon/restaurant-system/internal/core/ports"
)

type stubBookingRepo struct {
	bookings map[int64]*domain.Booking
	nextID   int64
}

func newStubBookingRepo() *stubBookingRepo {
	return &stubBookingRepo{bookings: make(map[int64]*domain.Booking)}
}

func (r *stubBookingRepo) List(_ context.Context) ([]*domain.Booking, error) {
	out := make([]*domain.Booking, 0, len(r.bookings))
	for _, b := range r.bookings {
		clone := *b
		out = append(out, &clone)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *stubBookingRepo) Create(_ context.Context, b *domain.Booking) error {
	r.nextID++
	b.ID = r.nextID
	clone := *b
	r.bookings[b.ID] = &clone
	return nil
}

func (r *stubBookingRepo) FindByID(_ context.Context, id int64) (*domain.Booking, error) {
	b, ok := r.bookings[id]
	if !ok {
		return nil, domain.ErrBookingNotFound
	}
	clone := *b
	return &clone, nil
}

func (r *stubBookingRepo) Update(_ context.Context, b *domain.Booking) error {
	if _, ok := r.bookings[b.ID]; !ok {
		return domain.ErrBookingNotFound
	}
	clone := *b
	r.bookings[b.ID] = &clone
	return nil
}

func (r *stubBookingRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.bookings[id]; !ok {
		return domain.ErrBookingNotFound
	}
	delete(r.bookings, id)
	return nil
}

func TestBookingService_Scenario_CreateListDelete(t *testing.T) {
	repo := newStubBookingRepo()
	svc := NewBookingService(repo, zerolog.Nop())
	ctx := context.Background()

	created, err := svc.Create(ctx, ports.BookingInput{Name: "Jane Smith", NoOfGuests: 4})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if created.BookingDate != nil {
		t.Errorf("expected nil booking date, got %v", created.BookingDate)
	}

	list, _ := svc.List(ctx)
	if len(list) != 1 || list[0].Name != "Jane Smith" {
		t.Fatalf("expected exactly Jane Smith, got %+v", list)
	}

	if err := svc.Delete(ctx, created.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	list, _ = svc.List(ctx)
	if len(list) != 0 {
		t.Fatalf("expected empty list, got %d", len(list))
	}
	if _, err := svc.Get(ctx, created.ID); !errors.Is(err, domain.ErrBookingNotFound) {
		t.Fatalf("expected ErrBookingNotFound, got %v", err)
	}
}

func TestBookingService_Create_Validation(t *testing.T) {
	repo := newStubBookingRepo()
	svc := NewBookingService(repo, zerolog.Nop())

	_, err := svc.Create(context.Background(), ports.BookingInput{Name: "John", NoOfGuests: 0})
	var ve *domain.ValidationError
	if !errors.As(err, &ve) || len(ve.Fields["no_of_guests"]) == 0 {
		t.Fatalf("expected no_of_guests ValidationError, got %v", err)
	}
	if len(repo.bookings) != 0 {
		t.Fatal("invalid booking must not be persisted")
	}
}

func TestBookingService_Create_NormalisesDateToUTC(t *testing.T) {
	svc := NewBookingService(newStubBookingRepo(), zerolog.Nop())

	loc := time.FixedZone("CEST", 2*60*60)
	date := time.Date(2025, 4, 20, 20, 30, 0, 500, loc)
	created, err := svc.Create(context.Background(), ports.BookingInput{Name: "John Doe", NoOfGuests: 4, BookingDate: &date})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	want := time.Date(2025, 4, 20, 18, 30, 0, 0, time.UTC)
	if created.BookingDate == nil || !created.BookingDate.Equal(want) || created.BookingDate.Location() != time.UTC {
		t.Fatalf("expected %v, got %v", want, created.BookingDate)
	}
}

func TestBookingService_Update(t *testing.T) {
	repo := newStubBookingRepo()
	svc := NewBookingService(repo, zerolog.Nop())
	ctx := context.Background()

	date := time.Date(2025, 4, 20, 18, 30, 0, 0, time.UTC)
	created, _ := svc.Create(ctx, ports.BookingInput{Name: "John Doe", NoOfGuests: 2, BookingDate: &date})

	updated, err := svc.Update(ctx, created.ID, ports.BookingInput{Name: "John Updated", NoOfGuests: 3})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.Name != "John Updated" || updated.NoOfGuests != 3 {
		t.Fatalf("unexpected booking: %+v", updated)
	}
	if repo.bookings[created.ID].BookingDate != nil {
		t.Fatal("full update without booking_date must clear it")
	}
}

func TestBookingService_PartialUpdate(t *testing.T) {
	repo := newStubBookingRepo()
	svc := NewBookingService(repo, zerolog.Nop())
	ctx := context.Background()

	date := time.Date(2025, 4, 20, 18, 30, 0, 0, time.UTC)
	created, _ := svc.Create(ctx, ports.BookingInput{Name: "John Doe", NoOfGuests: 2, BookingDate: &date})

	if _, err := svc.PartialUpdate(ctx, created.ID, ports.BookingPatch{NoOfGuests: intPtr(6)}); err != nil {
		t.Fatalf("partial update failed: %v", err)
	}
	stored := repo.bookings[created.ID]
	if stored.Name != "John Doe" || stored.NoOfGuests != 6 || stored.BookingDate == nil {
		t.Fatalf("unexpected booking after patch: %+v", stored)
	}

	if _, err := svc.PartialUpdate(ctx, created.ID, ports.BookingPatch{SetBookingDate: true}); err != nil {
		t.Fatalf("clearing date failed: %v", err)
	}
	if repo.bookings[created.ID].BookingDate != nil {
		t.Fatal("expected booking date to be cleared")
	}
}

func TestBookingService_NotFound(t *testing.T) {
	svc := NewBookingService(newStubBookingRepo(), zerolog.Nop())
	ctx := context.Background()

	if _, err := svc.Update(ctx, 7, ports.BookingInput{Name: "x", NoOfGuests: 1}); !errors.Is(err, domain.ErrBookingNotFound) {
		t.Errorf("update: expected ErrBookingNotFound, got %v", err)
	}
	if _, err := svc.PartialUpdate(ctx, 7, ports.BookingPatch{}); !errors.Is(err, domain.ErrBookingNotFound) {
		t.Errorf("partial update: expected ErrBookingNotFound, got %v", err)
	}
	if err := svc.Delete(ctx, 7); !errors.Is(err, domain.ErrBookingNotFound) {
		t.Errorf("delete: expected ErrBookingNotFound, got %v", err)
	}
}
