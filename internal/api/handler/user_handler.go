package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/littlelemon/restaurant-system/internal/api/metrics"
	"github.com/littlelemon/restaurant-system/internal/core/domain"
	"github.com/littlelemon/restaurant-system/internal/core/ports"
)

// UserHandler handles account endpoints under /auth/users/.
type UserHandler struct {
	service ports.UserService
}

func NewUserHandler(service ports.UserService) *UserHandler {
	return &UserHandler{service: service}
}

// Signup handles POST /auth/users/. No token is required.
//
// @Summary      Create an account
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      signupRequest  true  "Account details"
// @Success      201   {object}  userResponse
// @Failure      400   {object}  ErrorResponse
// @Router       /auth/users/ [post]
func (h *UserHandler) Signup(c echo.Context) error {
	var req signupRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	user, err := h.service.Signup(c.Request().Context(), ports.SignupInput{
		Username: req.Username,
		Password: req.Password,
		Email:    req.Email,
	})
	if err != nil {
		return err
	}

	metrics.UsersRegisteredTotal.Inc()
	return c.JSON(http.StatusCreated, toUserResponse(baseURL(c), user))
}

// List handles GET /auth/users/.
//
// @Summary      List active accounts
// @Tags         users
// @Produce      json
// @Security     TokenAuth
// @Success      200  {array}   userResponse
// @Failure      401  {object}  ErrorResponse
// @Router       /auth/users/ [get]
func (h *UserHandler) List(c echo.Context) error {
	users, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toUserResponses(baseURL(c), users))
}

// Get handles GET /auth/users/:id/.
//
// @Summary      Retrieve an account
// @Tags         users
// @Produce      json
// @Security     TokenAuth
// @Param        id   path      int  true  "User id"
// @Success      200  {object}  userResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /auth/users/{id}/ [get]
func (h *UserHandler) Get(c echo.Context) error {
	id, err := pathID(c, domain.ErrUserNotFound)
	if err != nil {
		return err
	}
	return h.render(c, id)
}

// Update handles PUT /auth/users/:id/.
//
// @Summary      Replace an account profile
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     TokenAuth
// @Param        id    path      int                true  "User id"
// @Param        body  body      userUpdateRequest  true  "Profile"
// @Success      200   {object}  userResponse
// @Failure      400   {object}  ErrorResponse
// @Failure      401   {object}  ErrorResponse
// @Failure      404   {object}  ErrorResponse
// @Router       /auth/users/{id}/ [put]
func (h *UserHandler) Update(c echo.Context) error {
	id, err := pathID(c, domain.ErrUserNotFound)
	if err != nil {
		return err
	}
	return h.update(c, id)
}

// PartialUpdate handles PATCH /auth/users/:id/.
//
// @Summary      Update some profile fields
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     TokenAuth
// @Param        id    path      int               true  "User id"
// @Param        body  body      userPatchRequest  true  "Fields to change"
// @Success      200   {object}  userResponse
// @Failure      400   {object}  ErrorResponse
// @Failure      401   {object}  ErrorResponse
// @Failure      404   {object}  ErrorResponse
// @Router       /auth/users/{id}/ [patch]
func (h *UserHandler) PartialUpdate(c echo.Context) error {
	id, err := pathID(c, domain.ErrUserNotFound)
	if err != nil {
		return err
	}
	return h.partialUpdate(c, id)
}

// Delete handles DELETE /auth/users/:id/. The account is deactivated, not
// removed.
//
// @Summary      Deactivate an account
// @Tags         users
// @Security     TokenAuth
// @Param        id   path  int  true  "User id"
// @Success      204
// @Failure      401  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /auth/users/{id}/ [delete]
func (h *UserHandler) Delete(c echo.Context) error {
	id, err := pathID(c, domain.ErrUserNotFound)
	if err != nil {
		return err
	}
	if err := h.service.Deactivate(c.Request().Context(), id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// Me handles GET /auth/users/me/.
//
// @Summary      Retrieve the caller's account
// @Tags         users
// @Produce      json
// @Security     TokenAuth
// @Success      200  {object}  userResponse
// @Failure      401  {object}  ErrorResponse
// @Router       /auth/users/me/ [get]
func (h *UserHandler) Me(c echo.Context) error {
	user, err := ctxUser(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toUserResponse(baseURL(c), user))
}

// UpdateMe handles PUT /auth/users/me/.
//
// @Summary      Replace the caller's profile
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     TokenAuth
// @Param        body  body      userUpdateRequest  true  "Profile"
// @Success      200   {object}  userResponse
// @Failure      400   {object}  ErrorResponse
// @Failure      401   {object}  ErrorResponse
// @Router       /auth/users/me/ [put]
func (h *UserHandler) UpdateMe(c echo.Context) error {
	user, err := ctxUser(c)
	if err != nil {
		return err
	}
	return h.update(c, user.ID)
}

// PartialUpdateMe handles PATCH /auth/users/me/.
//
// @Summary      Update some of the caller's profile fields
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     TokenAuth
// @Param        body  body      userPatchRequest  true  "Fields to change"
// @Success      200   {object}  userResponse
// @Failure      400   {object}  ErrorResponse
// @Failure      401   {object}  ErrorResponse
// @Router       /auth/users/me/ [patch]
func (h *UserHandler) PartialUpdateMe(c echo.Context) error {
	user, err := ctxUser(c)
	if err != nil {
		return err
	}
	return h.partialUpdate(c, user.ID)
}

func (h *UserHandler) render(c echo.Context, id int64) error {
	user, err := h.service.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toUserResponse(baseURL(c), user))
}

func (h *UserHandler) update(c echo.Context, id int64) error {
	var req userUpdateRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	user, err := h.service.Update(c.Request().Context(), id, req.toInput())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toUserResponse(baseURL(c), user))
}

func (h *UserHandler) partialUpdate(c echo.Context, id int64) error {
	var req userPatchRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	user, err := h.service.PartialUpdate(c.Request().Context(), id, req.toPatch())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toUserResponse(baseURL(c), user))
}
