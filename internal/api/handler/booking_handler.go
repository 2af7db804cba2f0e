package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/littlelemon/restaurant-system/internal/api/metrics"
	"github.com/littlelemon/restaurant-system/internal/core/domain"
	"github.com/littlelemon/restaurant-system/internal/core/ports"
)

// BookingHandler handles HTTP requests for table bookings. Every route is
// registered behind the Auth middleware.
type BookingHandler struct {
	service ports.BookingService
}

func NewBookingHandler(service ports.BookingService) *BookingHandler {
	return &BookingHandler{service: service}
}

// List handles GET /restaurant/booking/tables/.
//
// @Summary      List bookings
// @Tags         bookings
// @Produce      json
// @Security     TokenAuth
// @Success      200  {array}   bookingResponse
// @Failure      401  {object}  ErrorResponse
// @Router       /restaurant/booking/tables/ [get]
func (h *BookingHandler) List(c echo.Context) error {
	bookings, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toBookingResponses(bookings))
}

// Create handles POST /restaurant/booking/tables/.
//
// @Summary      Book a table
// @Tags         bookings
// @Accept       json
// @Produce      json
// @Security     TokenAuth
// @Param        body  body      bookingRequest  true  "Booking"
// @Success      201   {object}  bookingResponse
// @Failure      400   {object}  ErrorResponse
// @Failure      401   {object}  ErrorResponse
// @Router       /restaurant/booking/tables/ [post]
func (h *BookingHandler) Create(c echo.Context) error {
	var req bookingRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	booking, err := h.service.Create(c.Request().Context(), req.toInput())
	if err != nil {
		return err
	}

	metrics.BookingOperationsTotal.WithLabelValues("create").Inc()
	metrics.BookingGuests.Observe(float64(booking.NoOfGuests))
	return c.JSON(http.StatusCreated, toBookingResponse(booking))
}

// Get handles GET /restaurant/booking/tables/:id/.
//
// @Summary      Retrieve a booking
// @Tags         bookings
// @Produce      json
// @Security     TokenAuth
// @Param        id   path      int  true  "Booking id"
// @Success      200  {object}  bookingResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /restaurant/booking/tables/{id}/ [get]
func (h *BookingHandler) Get(c echo.Context) error {
	id, err := pathID(c, domain.ErrBookingNotFound)
	if err != nil {
		return err
	}

	booking, err := h.service.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toBookingResponse(booking))
}

// Update handles PUT /restaurant/booking/tables/:id/.
//
// @Summary      Replace a booking
// @Tags         bookings
// @Accept       json
// @Produce      json
// @Security     TokenAuth
// @Param        id    path      int             true  "Booking id"
// @Param        body  body      bookingRequest  true  "Booking"
// @Success      200   {object}  bookingResponse
// @Failure      400   {object}  ErrorResponse
// @Failure      401   {object}  ErrorResponse
// @Failure      404   {object}  ErrorResponse
// @Router       /restaurant/booking/tables/{id}/ [put]
func (h *BookingHandler) Update(c echo.Context) error {
	id, err := pathID(c, domain.ErrBookingNotFound)
	if err != nil {
		return err
	}

	var req bookingRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	booking, err := h.service.Update(c.Request().Context(), id, req.toInput())
	if err != nil {
		return err
	}

	metrics.BookingOperationsTotal.WithLabelValues("update").Inc()
	return c.JSON(http.StatusOK, toBookingResponse(booking))
}

// PartialUpdate handles PATCH /restaurant/booking/tables/:id/.
// An explicit "booking_date": null clears the date.
//
// @Summary      Update some fields of a booking
// @Tags         bookings
// @Accept       json
// @Produce      json
// @Security     TokenAuth
// @Param        id    path      int                  true  "Booking id"
// @Param        body  body      bookingPatchRequest  true  "Fields to change"
// @Success      200   {object}  bookingResponse
// @Failure      400   {object}  ErrorResponse
// @Failure      401   {object}  ErrorResponse
// @Failure      404   {object}  ErrorResponse
// @Router       /restaurant/booking/tables/{id}/ [patch]
func (h *BookingHandler) PartialUpdate(c echo.Context) error {
	id, err := pathID(c, domain.ErrBookingNotFound)
	if err != nil {
		return err
	}

	var req bookingPatchRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	booking, err := h.service.PartialUpdate(c.Request().Context(), id, req.toPatch())
	if err != nil {
		return err
	}

	metrics.BookingOperationsTotal.WithLabelValues("partial_update").Inc()
	return c.JSON(http.StatusOK, toBookingResponse(booking))
}

// Delete handles DELETE /restaurant/booking/tables/:id/.
//
// @Summary      Cancel a booking
// @Tags         bookings
// @Security     TokenAuth
// @Param        id   path  int  true  "Booking id"
// @Success      204
// @Failure      401  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /restaurant/booking/tables/{id}/ [delete]
func (h *BookingHandler) Delete(c echo.Context) error {
	id, err := pathID(c, domain.ErrBookingNotFound)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		return err
	}

	metrics.BookingOperationsTotal.WithLabelValues("delete").Inc()
	return c.NoContent(http.StatusNoContent)
}
