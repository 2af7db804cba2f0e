package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/littlelemon/restaurant-system/internal/core/domain"
)

type stubAuthService struct {
	users map[string]*domain.User
	err   error
}

func (s *stubAuthService) Login(context.Context, string, string) (string, error) {
	return "", errors.New("not implemented")
}

func (s *stubAuthService) Logout(context.Context, string) error {
	return errors.New("not implemented")
}

func (s *stubAuthService) Authenticate(_ context.Context, token string) (*domain.User, error) {
	if s.err != nil {
		return nil, s.err
	}
	u, ok := s.users[token]
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	return u, nil
}

func runAuth(t *testing.T, svc *stubAuthService, header string) (echo.Context, bool, error) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	handler := Auth(svc)(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})
	err := handler(c)
	return c, called, err
}

func assertStatus(t *testing.T, err error, want int) {
	t.Helper()
	var he *echo.HTTPError
	if !errors.As(err, &he) {
		t.Fatalf("expected HTTPError, got %v", err)
	}
	if he.Code != want {
		t.Fatalf("expected %d, got %d", want, he.Code)
	}
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	alice := &domain.User{ID: 1, Username: "alice", IsActive: true}
	svc := &stubAuthService{users: map[string]*domain.User{"tok": alice}}

	c, called, err := runAuth(t, svc, "Token tok")
	if err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next not called")
	}
	if c.Get(ContextKeyUser) != alice {
		t.Fatalf("user not set on context")
	}
	if c.Get(ContextKeyToken) != "tok" {
		t.Fatalf("token not set on context")
	}
}

func TestAuthMiddleware_SchemeIsCaseInsensitive(t *testing.T) {
	svc := &stubAuthService{users: map[string]*domain.User{"tok": {ID: 1}}}

	if _, called, err := runAuth(t, svc, "token tok"); err != nil || !called {
		t.Fatalf("expected lowercase scheme to be accepted, err=%v", err)
	}
}

func TestAuthMiddleware_Rejects(t *testing.T) {
	svc := &stubAuthService{users: map[string]*domain.User{"tok": {ID: 1}}}

	tests := []struct {
		name   string
		header string
	}{
		{"missing header", ""},
		{"bearer scheme", "Bearer tok"},
		{"no token", "Token "},
		{"no scheme", "tok"},
		{"unknown token", "Token nope"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, called, err := runAuth(t, svc, tt.header)
			if called {
				t.Fatalf("next must not be called")
			}
			assertStatus(t, err, http.StatusUnauthorized)
		})
	}
}

func TestAuthMiddleware_BackendErrorPropagates(t *testing.T) {
	backendErr := errors.New("redis down")
	svc := &stubAuthService{err: backendErr}

	_, called, err := runAuth(t, svc, "Token tok")
	if called {
		t.Fatalf("next must not be called")
	}
	if !errors.Is(err, backendErr) {
		t.Fatalf("expected backend error, got %v", err)
	}
}
