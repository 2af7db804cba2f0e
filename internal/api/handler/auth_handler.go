package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/littlelemon/restaurant-system/internal/api/metrics"
	"github.com/littlelemon/restaurant-system/internal/api/middleware"
	"github.com/littlelemon/restaurant-system/internal/core/domain"
	"github.com/littlelemon/restaurant-system/internal/core/ports"
)

type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Login exchanges credentials for an auth token. The body may be JSON or
// form-encoded.
//
// @Summary      Obtain an auth token
// @Tags         auth
// @Accept       json
// @Accept       x-www-form-urlencoded
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  tokenResponse
// @Failure      400   {object}  ErrorResponse
// @Router       /auth/token/login/ [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	token, err := h.authService.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) || errors.Is(err, domain.ErrInactiveUser) {
			metrics.LoginsTotal.WithLabelValues("invalid_credentials").Inc()
		} else {
			metrics.LoginsTotal.WithLabelValues("error").Inc()
		}
		return err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	return c.JSON(http.StatusOK, tokenResponse{AuthToken: token})
}

// Logout revokes the token used to authenticate the request.
//
// @Summary      Revoke the current auth token
// @Tags         auth
// @Security     TokenAuth
// @Success      204
// @Failure      401  {object}  ErrorResponse
// @Router       /auth/token/logout/ [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	token, _ := c.Get(middleware.ContextKeyToken).(string)
	if token == "" {
		return domain.ErrUnauthorized
	}

	if err := h.authService.Logout(c.Request().Context(), token); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
