// Package client is a small HTTP client for the restaurant API and the demo
// procedure run by cmd/client.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// APIError is returned for any non-2xx response.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("unexpected status %d: %s", e.StatusCode, e.Body)
}

// Fields decodes the "fields" map of the error envelope, if any.
func (e *APIError) Fields() map[string][]string {
	var env struct {
		Fields map[string][]string `json:"fields"`
	}
	_ = json.Unmarshal([]byte(e.Body), &env)
	return env.Fields
}

type User struct {
	ID       int64    `json:"id"`
	URL      string   `json:"url"`
	Username string   `json:"username"`
	Email    string   `json:"email"`
	Groups   []string `json:"groups"`
}

type MenuItem struct {
	ID        int64  `json:"id,omitempty"`
	Title     string `json:"title"`
	Price     string `json:"price"`
	Inventory int    `json:"inventory"`
}

type Booking struct {
	ID          int64      `json:"id,omitempty"`
	Name        string     `json:"name"`
	NoOfGuests  int        `json:"no_of_guests"`
	BookingDate *time.Time `json:"booking_date"`
}

// Client talks to one API instance. Authenticated calls take the token
// returned by Login.
type Client struct {
	baseURL string
	http    *http.Client
}

func New(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

// Signup creates an account.
func (c *Client) Signup(ctx context.Context, username, password, email string) (*User, error) {
	body := map[string]string{"username": username, "password": password, "email": email}
	var out User
	if err := c.doJSON(ctx, http.MethodPost, "/auth/users/", "", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Login posts form-encoded credentials and returns the auth token.
func (c *Client) Login(ctx context.Context, username, password string) (string, error) {
	form := url.Values{"username": {username}, "password": {password}}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/auth/token/login/", strings.NewReader(form.Encode()))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	var out struct {
		AuthToken string `json:"auth_token"`
	}
	if err := c.send(req, &out); err != nil {
		return "", err
	}
	return out.AuthToken, nil
}

// Me returns the account the token belongs to.
func (c *Client) Me(ctx context.Context, token string) (*User, error) {
	var out User
	if err := c.doJSON(ctx, http.MethodGet, "/auth/users/me/", token, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ListMenu(ctx context.Context, token string) ([]MenuItem, error) {
	var out []MenuItem
	if err := c.doJSON(ctx, http.MethodGet, "/restaurant/menu/", token, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateMenuItem(ctx context.Context, token string, item MenuItem) (*MenuItem, error) {
	var out MenuItem
	if err := c.doJSON(ctx, http.MethodPost, "/restaurant/menu/", token, item, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateBooking(ctx context.Context, token string, b Booking) (*Booking, error) {
	var out Booking
	if err := c.doJSON(ctx, http.MethodPost, "/restaurant/booking/tables/", token, b, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ListBookings(ctx context.Context, token string) ([]Booking, error) {
	var out []Booking
	if err := c.doJSON(ctx, http.MethodGet, "/restaurant/booking/tables/", token, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) doJSON(ctx context.Context, method, path, token string, body, out any) error {
	var r io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		r = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, r)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Token "+token)
	}
	return c.send(req, out)
}

func (c *Client) send(req *http.Request, out any) error {
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", req.Method, req.URL.Path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &APIError{StatusCode: resp.StatusCode, Body: string(data)}
	}
	if out == nil || len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
