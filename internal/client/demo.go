package client

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// DefaultMenu is created when the menu is empty.
var DefaultMenu = []MenuItem{
	{Title: "Spaghetti", Price: "10.50", Inventory: 20},
	{Title: "Cheeseburger", Price: "8.99", Inventory: 15},
	{Title: "Caesar Salad", Price: "7.25", Inventory: 10},
	{Title: "Grilled Salmon", Price: "14.75", Inventory: 8},
	{Title: "Chicken Tacos", Price: "9.50", Inventory: 12},
}

// DemoBooking is the reservation the demo places.
var DemoBooking = Booking{
	Name:        "John Doe",
	NoOfGuests:  4,
	BookingDate: timePtr(time.Date(2025, time.April, 20, 18, 30, 0, 0, time.UTC)),
}

// Credentials identify the demo account.
type Credentials struct {
	Username string
	Password string
	Email    string
}

// Report summarises what a demo run observed. Counts are -1 when the
// request that would produce them failed.
type Report struct {
	UserCreated   bool
	Authenticated bool
	Me            string
	MenuCount     int
	MenuCreated   int
	Booking       *Booking
	Bookings      []Booking
}

// RunDemo walks the API end to end. Failed requests are logged and the run
// continues; the only returned error is a cancelled context.
func RunDemo(ctx context.Context, c *Client, creds Credentials, log zerolog.Logger) (*Report, error) {
	rep := &Report{MenuCount: -1}

	if _, err := c.Signup(ctx, creds.Username, creds.Password, creds.Email); err != nil {
		if alreadyExists(err) {
			log.Warn().Str("username", creds.Username).Msg("user already exists")
		} else {
			log.Error().Err(err).Str("username", creds.Username).Msg("user creation failed")
		}
	} else {
		rep.UserCreated = true
		log.Info().Str("username", creds.Username).Msg("user created")
	}
	if err := ctx.Err(); err != nil {
		return rep, err
	}

	token, err := c.Login(ctx, creds.Username, creds.Password)
	if err != nil {
		log.Error().Err(err).Msg("authentication failed")
	} else {
		rep.Authenticated = true
		log.Info().Msg("authentication successful")
	}

	if me, err := c.Me(ctx, token); err != nil {
		log.Error().Err(err).Msg("fetching current user failed")
	} else {
		rep.Me = me.Username
		log.Info().Str("username", me.Username).Msg("authenticated user")
	}

	rep.MenuCount = countMenu(ctx, c, token, log)
	if rep.MenuCount == 0 {
		for _, item := range DefaultMenu {
			if _, err := c.CreateMenuItem(ctx, token, item); err != nil {
				log.Error().Err(err).Str("title", item.Title).Msg("menu item creation failed")
				continue
			}
			rep.MenuCreated++
			log.Info().Str("title", item.Title).Msg("menu item created")
		}
		rep.MenuCount = countMenu(ctx, c, token, log)
	}
	if err := ctx.Err(); err != nil {
		return rep, err
	}

	if b, err := c.CreateBooking(ctx, token, DemoBooking); err != nil {
		log.Error().Err(err).Msg("table booking failed")
	} else {
		rep.Booking = b
		log.Info().Int64("id", b.ID).Str("name", b.Name).Int("guests", b.NoOfGuests).Msg("table booking added")
	}

	bookings, err := c.ListBookings(ctx, token)
	if err != nil {
		log.Error().Err(err).Msg("listing bookings failed")
		return rep, ctx.Err()
	}
	rep.Bookings = bookings
	log.Info().Int("count", len(bookings)).Msg("bookings found")
	for _, b := range bookings {
		log.Info().Str("name", b.Name).Int("guests", b.NoOfGuests).Msg("booking")
	}
	return rep, ctx.Err()
}

func countMenu(ctx context.Context, c *Client, token string, log zerolog.Logger) int {
	items, err := c.ListMenu(ctx, token)
	if err != nil {
		log.Error().Err(err).Msg("fetching menu failed")
		return -1
	}
	log.Info().Int("count", len(items)).Msg("menu items on the restaurant menu")
	return len(items)
}

// alreadyExists reports whether err is the 400 a duplicate signup returns.
func alreadyExists(err error) bool {
	var apiErr *APIError
	if !errors.As(err, &apiErr) || apiErr.StatusCode != http.StatusBadRequest {
		return false
	}
	for _, msg := range apiErr.Fields()["username"] {
		if strings.Contains(msg, "already exists") {
			return true
		}
	}
	return false
}

func timePtr(t time.Time) *time.Time { return &t }
