package sqldb

import (
	"context"
	"database/sql"
	"errors"

	"github.com/littlelemon/restaurant-system/internal/core/domain"
)

type BookingRepository struct {
	db *DB
}

func NewBookingRepository(db *DB) *BookingRepository {
	return &BookingRepository{db: db}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanBooking(row rowScanner) (*domain.Booking, error) {
	var (
		b    domain.Booking
		date sql.NullTime
	)
	if err := row.Scan(&b.ID, &b.Name, &b.NoOfGuests, &date); err != nil {
		return nil, err
	}
	b.BookingDate = timePtr(date)
	return &b, nil
}

func (r *BookingRepository) List(ctx context.Context) ([]*domain.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	rows, err := r.db.sql.QueryContext(ctx, `SELECT id, name, no_of_guests, booking_date FROM bookings ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	bookings := make([]*domain.Booking, 0)
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, err
		}
		bookings = append(bookings, b)
	}
	return bookings, rows.Err()
}

func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	q := r.db.rebind(`INSERT INTO bookings (name, no_of_guests, booking_date) VALUES ($1, $2, $3) RETURNING id`)
	return r.db.sql.QueryRowContext(ctx, q, b.Name, b.NoOfGuests, nullTime(b.BookingDate)).Scan(&b.ID)
}

func (r *BookingRepository) FindByID(ctx context.Context, id int64) (*domain.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	q := r.db.rebind(`SELECT id, name, no_of_guests, booking_date FROM bookings WHERE id = $1`)
	b, err := scanBooking(r.db.sql.QueryRowContext(ctx, q, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, err
	}
	return b, nil
}

func (r *BookingRepository) Update(ctx context.Context, b *domain.Booking) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	q := r.db.rebind(`UPDATE bookings SET name = $1, no_of_guests = $2, booking_date = $3 WHERE id = $4`)
	res, err := r.db.sql.ExecContext(ctx, q, b.Name, b.NoOfGuests, nullTime(b.BookingDate), b.ID)
	if err != nil {
		return err
	}
	return requireRow(res, domain.ErrBookingNotFound)
}

func (r *BookingRepository) Delete(ctx context.Context, id int64) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.db.sql.ExecContext(ctx, r.db.rebind(`DELETE FROM bookings WHERE id = $1`), id)
	if err != nil {
		return err
	}
	return requireRow(res, domain.ErrBookingNotFound)
}
