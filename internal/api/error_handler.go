package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/littlelemon/restaurant-system/internal/api/handler"
	"github.com/littlelemon/restaurant-system/internal/core/domain"
)

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps known domain errors to their appropriate HTTP status codes.
//   - Logs unexpected errors internally without leaking details to the client.
//   - Renders a consistent JSON envelope: {"error": "<message>", "fields": {...}}.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, body := resolveError(err, log, c)
		if c.Request().Method == http.MethodHead {
			_ = c.NoContent(code)
			return
		}
		_ = c.JSON(code, body)
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, handler.ErrorResponse) {
	// Echo's own errors (bind failures, 404 from router, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, handler.ErrorResponse{Error: fmt.Sprintf("%v", he.Message)}
	}

	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		return http.StatusBadRequest, handler.ErrorResponse{Error: "validation failed", Fields: ve.Fields}
	}

	// Known domain errors → deterministic HTTP codes.
	switch {
	case errors.Is(err, domain.ErrUserExists):
		return http.StatusBadRequest, fieldError("username", domain.ErrUserExists)
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusBadRequest, fieldError(domain.NonFieldErrors, domain.ErrInvalidCredentials)
	case errors.Is(err, domain.ErrInactiveUser):
		return http.StatusBadRequest, fieldError(domain.NonFieldErrors, domain.ErrInactiveUser)
	case errors.Is(err, domain.ErrUnauthorized):
		return http.StatusUnauthorized, handler.ErrorResponse{Error: domain.ErrUnauthorized.Error()}
	case errors.Is(err, domain.ErrMenuItemNotFound),
		errors.Is(err, domain.ErrBookingNotFound),
		errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound, handler.ErrorResponse{Error: notFoundMessage(err)}
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, handler.ErrorResponse{Error: "internal server error"}
}

func fieldError(field string, err error) handler.ErrorResponse {
	return handler.ErrorResponse{
		Error:  "validation failed",
		Fields: map[string][]string{field: {err.Error()}},
	}
}

func notFoundMessage(err error) string {
	for _, target := range []error{domain.ErrMenuItemNotFound, domain.ErrBookingNotFound, domain.ErrUserNotFound} {
		if errors.Is(err, target) {
			return target.Error()
		}
	}
	return "not found"
}
