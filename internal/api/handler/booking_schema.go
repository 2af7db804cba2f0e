package handler

import (
	"bytes"
	"encoding/json"
	"time"

	"github.com/littlelemon/restaurant-system/internal/core/domain"
	"github.com/littlelemon/restaurant-system/internal/core/ports"
)

// --- Request types ---

// bookingRequest is the body of POST and PUT. no_of_guests accepts a JSON
// number or a numeric string.
type bookingRequest struct {
	Name        *string  `json:"name"         validate:"required,max=255"`
	NoOfGuests  *flexInt `json:"no_of_guests" validate:"required,gt=0,max=2147483647"`
	BookingDate *isoTime `json:"booking_date"`
}

func (r bookingRequest) toInput() ports.BookingInput {
	return ports.BookingInput{Name: *r.Name, NoOfGuests: int(*r.NoOfGuests), BookingDate: r.BookingDate.timePtr()}
}

// optionalTime records whether a timestamp key was present in a JSON body,
// so an explicit null can be told apart from an omitted field.
type optionalTime struct {
	Set   bool
	Value *time.Time
}

func (o *optionalTime) UnmarshalJSON(data []byte) error {
	o.Set = true
	if bytes.Equal(data, []byte("null")) {
		o.Value = nil
		return nil
	}
	var t isoTime
	if err := json.Unmarshal(data, &t); err != nil {
		return err
	}
	o.Value = t.timePtr()
	return nil
}

type bookingPatchRequest struct {
	Name        *string      `json:"name"         validate:"omitempty,max=255"`
	NoOfGuests  *flexInt     `json:"no_of_guests" validate:"omitempty,gt=0,max=2147483647"`
	BookingDate optionalTime `json:"booking_date"`
}

func (r bookingPatchRequest) toPatch() ports.BookingPatch {
	return ports.BookingPatch{
		Name:           r.Name,
		NoOfGuests:     r.NoOfGuests.intPtr(),
		BookingDate:    r.BookingDate.Value,
		SetBookingDate: r.BookingDate.Set,
	}
}

// --- Response types ---

type bookingResponse struct {
	ID          int64      `json:"id"`
	Name        string     `json:"name"`
	NoOfGuests  int        `json:"no_of_guests"`
	BookingDate *time.Time `json:"booking_date"`
}

func toBookingResponse(b *domain.Booking) bookingResponse {
	return bookingResponse{ID: b.ID, Name: b.Name, NoOfGuests: b.NoOfGuests, BookingDate: b.BookingDate}
}

func toBookingResponses(bookings []*domain.Booking) []bookingResponse {
	out := make([]bookingResponse, 0, len(bookings))
	for _, b := range bookings {
		out = append(out, toBookingResponse(b))
	}
	return out
}
