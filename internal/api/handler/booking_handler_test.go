package handler

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/littlelemon/restaurant-system/internal/core/domain"
	"github.com/littlelemon/restaurant-system/internal/core/ports"
)

type stubBookingService struct {
	bookings  map[int64]*domain.Booking
	lastPatch ports.BookingPatch
}

func newStubBookingService(bookings ...*domain.Booking) *stubBookingService {
	s := &stubBookingService{bookings: make(map[int64]*domain.Booking)}
	for _, b := range bookings {
		s.bookings[b.ID] = b
	}
	return s
}

func (s *stubBookingService) List(context.Context) ([]*domain.Booking, error) {
	out := make([]*domain.Booking, 0, len(s.bookings))
	for id := int64(1); len(out) < len(s.bookings); id++ {
		if b, ok := s.bookings[id]; ok {
			out = append(out, b)
		}
	}
	return out, nil
}

func (s *stubBookingService) Create(_ context.Context, in ports.BookingInput) (*domain.Booking, error) {
	b := &domain.Booking{ID: int64(len(s.bookings) + 1), Name: in.Name, NoOfGuests: in.NoOfGuests, BookingDate: in.BookingDate}
	s.bookings[b.ID] = b
	return b, nil
}

func (s *stubBookingService) Get(_ context.Context, id int64) (*domain.Booking, error) {
	b, ok := s.bookings[id]
	if !ok {
		return nil, domain.ErrBookingNotFound
	}
	return b, nil
}

func (s *stubBookingService) Update(_ context.Context, id int64, in ports.BookingInput) (*domain.Booking, error) {
	if _, ok := s.bookings[id]; !ok {
		return nil, domain.ErrBookingNotFound
	}
	b := &domain.Booking{ID: id, Name: in.Name, NoOfGuests: in.NoOfGuests, BookingDate: in.BookingDate}
	s.bookings[id] = b
	return b, nil
}

func (s *stubBookingService) PartialUpdate(_ context.Context, id int64, patch ports.BookingPatch) (*domain.Booking, error) {
	s.lastPatch = patch
	b, ok := s.bookings[id]
	if !ok {
		return nil, domain.ErrBookingNotFound
	}
	if patch.Name != nil {
		b.Name = *patch.Name
	}
	if patch.NoOfGuests != nil {
		b.NoOfGuests = *patch.NoOfGuests
	}
	if patch.SetBookingDate {
		b.BookingDate = patch.BookingDate
	}
	return b, nil
}

func (s *stubBookingService) Delete(_ context.Context, id int64) error {
	if _, ok := s.bookings[id]; !ok {
		return domain.ErrBookingNotFound
	}
	delete(s.bookings, id)
	return nil
}

func janeSmith() *domain.Booking {
	d := time.Date(2025, time.April, 20, 18, 30, 0, 0, time.UTC)
	return &domain.Booking{ID: 1, Name: "Jane Smith", NoOfGuests: 2, BookingDate: &d}
}

func TestBookingHandler_Create(t *testing.T) {
	h := NewBookingHandler(newStubBookingService())

	c, rec := newTestContext(http.MethodPost, "/restaurant/booking/tables", echo.MIMEApplicationJSON,
		strings.NewReader(`{"name":"John Doe","no_of_guests":4,"booking_date":"2025-04-20T18:30:00Z"}`))
	if err := h.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp bookingResponse
	decodeBody(t, rec, &resp)
	want := time.Date(2025, time.April, 20, 18, 30, 0, 0, time.UTC)
	if resp.Name != "John Doe" || resp.NoOfGuests != 4 || resp.BookingDate == nil || !resp.BookingDate.Equal(want) {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestBookingHandler_Create_WithoutDate(t *testing.T) {
	h := NewBookingHandler(newStubBookingService())

	c, rec := newTestContext(http.MethodPost, "/restaurant/booking/tables", echo.MIMEApplicationJSON,
		strings.NewReader(`{"name":"Walk-in","no_of_guests":1}`))
	if err := h.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !strings.Contains(rec.Body.String(), `"booking_date":null`) {
		t.Fatalf("expected booking_date null, got %s", rec.Body.String())
	}
}

func TestBookingHandler_Create_ValidationFailure(t *testing.T) {
	tests := []struct {
		name  string
		body  string
		field string
	}{
		{"missing name", `{"no_of_guests":2}`, "name"},
		{"missing guests", `{"name":"Ann"}`, "no_of_guests"},
		{"zero guests", `{"name":"Ann","no_of_guests":0}`, "no_of_guests"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newStubBookingService()
			h := NewBookingHandler(svc)

			c, _ := newTestContext(http.MethodPost, "/restaurant/booking/tables", echo.MIMEApplicationJSON, strings.NewReader(tt.body))
			err := h.Create(c)

			var ve *domain.ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			if _, ok := ve.Fields[tt.field]; !ok {
				t.Fatalf("expected error on %q, got %v", tt.field, ve.Fields)
			}
			if len(svc.bookings) != 0 {
				t.Fatal("invalid payload must not be persisted")
			}
		})
	}
}

func TestBookingHandler_Create_ISODates(t *testing.T) {
	april20 := time.Date(2025, time.April, 20, 18, 30, 0, 0, time.UTC)
	tests := []struct {
		name string
		date string
		want time.Time
	}{
		{"utc designator", "2025-04-20T18:30:00Z", april20},
		{"extended offset", "2025-04-20T20:30:00+02:00", april20},
		{"basic offset", "2025-04-20T20:30:00+0200", april20},
		{"fractional seconds", "2025-04-20T18:30:00.000Z", april20},
		{"naive is utc", "2025-04-20T18:30:00", april20},
		{"naive fractional", "2025-04-20T18:30:00.000000", april20},
		{"minute precision", "2025-04-20T18:30", april20},
		{"minute precision with offset", "2025-04-20T20:30+02:00", april20},
		{"space separator", "2025-04-20 18:30:00", april20},
		{"space separator with offset", "2025-04-20 13:30:00-05:00", april20},
		{"space separator minutes", "2025-04-20 18:30", april20},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewBookingHandler(newStubBookingService())

			body := `{"name":"Ann","no_of_guests":2,"booking_date":"` + tt.date + `"}`
			c, rec := newTestContext(http.MethodPost, "/restaurant/booking/tables", echo.MIMEApplicationJSON, strings.NewReader(body))
			if err := h.Create(c); err != nil {
				t.Fatalf("handler error: %v", err)
			}

			var resp bookingResponse
			decodeBody(t, rec, &resp)
			if resp.BookingDate == nil || !resp.BookingDate.Equal(tt.want) {
				t.Fatalf("booking_date = %v, want %v", resp.BookingDate, tt.want)
			}
		})
	}
}

func TestBookingHandler_Create_DecodeErrors(t *testing.T) {
	tests := []struct {
		name  string
		body  string
		field string
	}{
		{"words for a date", `{"name":"Ann","no_of_guests":2,"booking_date":"next tuesday"}`, "booking_date"},
		{"numeric date", `{"name":"Ann","no_of_guests":2,"booking_date":1745173800}`, "booking_date"},
		{"words for guests", `{"name":"Ann","no_of_guests":"two"}`, "no_of_guests"},
		{"fractional guests", `{"name":"Ann","no_of_guests":2.5}`, "no_of_guests"},
		{"numeric name", `{"name":42,"no_of_guests":2}`, "name"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newStubBookingService()
			h := NewBookingHandler(svc)

			c, _ := newTestContext(http.MethodPost, "/restaurant/booking/tables", echo.MIMEApplicationJSON, strings.NewReader(tt.body))
			err := h.Create(c)

			var ve *domain.ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			if len(ve.Fields[tt.field]) == 0 {
				t.Fatalf("expected error on %q, got %v", tt.field, ve.Fields)
			}
			if len(svc.bookings) != 0 {
				t.Fatal("invalid payload must not be persisted")
			}
		})
	}
}

func TestBookingHandler_Create_MalformedJSON(t *testing.T) {
	h := NewBookingHandler(newStubBookingService())

	c, _ := newTestContext(http.MethodPost, "/restaurant/booking/tables", echo.MIMEApplicationJSON,
		strings.NewReader(`{"name":"Ann",`))

	var he *echo.HTTPError
	if err := h.Create(c); !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 HTTPError, got %v", err)
	}
}

func TestBookingHandler_Create_GuestsAsString(t *testing.T) {
	svc := newStubBookingService()
	h := NewBookingHandler(svc)

	c, _ := newTestContext(http.MethodPost, "/restaurant/booking/tables", echo.MIMEApplicationJSON,
		strings.NewReader(`{"name":"Ann","no_of_guests":"6"}`))
	if err := h.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if b := svc.bookings[1]; b == nil || b.NoOfGuests != 6 {
		t.Fatalf("unexpected booking: %+v", b)
	}
}

func TestBookingHandler_Create_GuestsUpperBound(t *testing.T) {
	tests := []struct {
		name    string
		guests  string
		wantErr bool
	}{
		{"at limit", `2147483647`, false},
		{"past limit", `2147483648`, true},
		{"past limit as string", `"99999999999"`, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewBookingHandler(newStubBookingService())

			body := `{"name":"Ann","no_of_guests":` + tt.guests + `}`
			c, _ := newTestContext(http.MethodPost, "/restaurant/booking/tables", echo.MIMEApplicationJSON, strings.NewReader(body))
			err := h.Create(c)

			if !tt.wantErr {
				if err != nil {
					t.Fatalf("handler error: %v", err)
				}
				return
			}
			var ve *domain.ValidationError
			if !errors.As(err, &ve) || len(ve.Fields["no_of_guests"]) == 0 {
				t.Fatalf("expected no_of_guests error, got %v", err)
			}
		})
	}
}

func TestBookingHandler_List(t *testing.T) {
	h := NewBookingHandler(newStubBookingService(janeSmith()))

	c, rec := newTestContext(http.MethodGet, "/restaurant/booking/tables", "", nil)
	if err := h.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp []bookingResponse
	decodeBody(t, rec, &resp)
	if len(resp) != 1 || resp[0].Name != "Jane Smith" || resp[0].NoOfGuests != 2 {
		t.Fatalf("unexpected list: %+v", resp)
	}
}

func TestBookingHandler_Get_NotFound(t *testing.T) {
	h := NewBookingHandler(newStubBookingService(janeSmith()))

	c, _ := newTestContext(http.MethodGet, "/restaurant/booking/tables/7", "", nil)
	c.SetParamNames("id")
	c.SetParamValues("7")
	if err := h.Get(c); !errors.Is(err, domain.ErrBookingNotFound) {
		t.Fatalf("expected ErrBookingNotFound, got %v", err)
	}
}

func TestBookingHandler_Update(t *testing.T) {
	h := NewBookingHandler(newStubBookingService(janeSmith()))

	c, rec := newTestContext(http.MethodPut, "/restaurant/booking/tables/1", echo.MIMEApplicationJSON,
		strings.NewReader(`{"name":"Jane Smith","no_of_guests":6}`))
	c.SetParamNames("id")
	c.SetParamValues("1")
	if err := h.Update(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp bookingResponse
	decodeBody(t, rec, &resp)
	if resp.NoOfGuests != 6 || resp.BookingDate != nil {
		t.Fatalf("full update must replace every field, got %+v", resp)
	}
}

func TestBookingHandler_PartialUpdate(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		wantSet   bool
		wantDate  bool
		wantGuest int
	}{
		{"guests only keeps date", `{"no_of_guests":3}`, false, true, 3},
		{"explicit null clears date", `{"booking_date":null}`, true, false, 2},
		{"new date", `{"booking_date":"2025-05-01T12:00:00Z"}`, true, true, 2},
		{"naive date", `{"booking_date":"2025-05-01 12:00"}`, true, true, 2},
		{"guests as string", `{"no_of_guests":"5"}`, false, true, 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newStubBookingService(janeSmith())
			h := NewBookingHandler(svc)

			c, rec := newTestContext(http.MethodPatch, "/restaurant/booking/tables/1", echo.MIMEApplicationJSON, strings.NewReader(tt.body))
			c.SetParamNames("id")
			c.SetParamValues("1")
			if err := h.PartialUpdate(c); err != nil {
				t.Fatalf("handler error: %v", err)
			}

			if svc.lastPatch.SetBookingDate != tt.wantSet {
				t.Fatalf("SetBookingDate = %v, want %v", svc.lastPatch.SetBookingDate, tt.wantSet)
			}
			var resp bookingResponse
			decodeBody(t, rec, &resp)
			if (resp.BookingDate != nil) != tt.wantDate {
				t.Fatalf("booking_date presence = %v, want %v", resp.BookingDate != nil, tt.wantDate)
			}
			if resp.NoOfGuests != tt.wantGuest {
				t.Fatalf("no_of_guests = %d, want %d", resp.NoOfGuests, tt.wantGuest)
			}
		})
	}
}

func TestBookingHandler_PartialUpdate_BadDate(t *testing.T) {
	svc := newStubBookingService(janeSmith())
	h := NewBookingHandler(svc)

	c, _ := newTestContext(http.MethodPatch, "/restaurant/booking/tables/1", echo.MIMEApplicationJSON,
		strings.NewReader(`{"booking_date":"soon"}`))
	c.SetParamNames("id")
	c.SetParamValues("1")

	var ve *domain.ValidationError
	if err := h.PartialUpdate(c); !errors.As(err, &ve) || len(ve.Fields["booking_date"]) == 0 {
		t.Fatalf("expected booking_date error, got %v", err)
	}
	if svc.bookings[1].BookingDate == nil {
		t.Fatal("rejected patch must not clear the date")
	}
}

func TestBookingHandler_Delete(t *testing.T) {
	svc := newStubBookingService(janeSmith())
	h := NewBookingHandler(svc)

	c, rec := newTestContext(http.MethodDelete, "/restaurant/booking/tables/1", "", nil)
	c.SetParamNames("id")
	c.SetParamValues("1")
	if err := h.Delete(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusNoContent || len(svc.bookings) != 0 {
		t.Fatalf("expected 204 and deletion, got %d with %d left", rec.Code, len(svc.bookings))
	}
}
