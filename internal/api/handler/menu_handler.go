package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/littlelemon/restaurant-system/internal/api/metrics"
	"github.com/littlelemon/restaurant-system/internal/core/domain"
	"github.com/littlelemon/restaurant-system/internal/core/ports"
)

// MenuHandler handles HTTP requests for the menu catalog.
type MenuHandler struct {
	service ports.MenuService
}

func NewMenuHandler(service ports.MenuService) *MenuHandler {
	return &MenuHandler{service: service}
}

// List handles GET /restaurant/menu/.
//
// @Summary      List menu items
// @Tags         menu
// @Produce      json
// @Success      200  {array}   menuItemResponse
// @Router       /restaurant/menu/ [get]
func (h *MenuHandler) List(c echo.Context) error {
	items, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toMenuItemResponses(items))
}

// Create handles POST /restaurant/menu/.
//
// @Summary      Create a menu item
// @Tags         menu
// @Accept       json
// @Produce      json
// @Security     TokenAuth
// @Param        body  body      menuItemRequest  true  "Menu item"
// @Success      201   {object}  menuItemResponse
// @Failure      400   {object}  ErrorResponse
// @Failure      401   {object}  ErrorResponse
// @Router       /restaurant/menu/ [post]
func (h *MenuHandler) Create(c echo.Context) error {
	var req menuItemRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	item, err := h.service.Create(c.Request().Context(), req.toInput())
	if err != nil {
		return err
	}

	metrics.MenuItemOperationsTotal.WithLabelValues("create").Inc()
	return c.JSON(http.StatusCreated, toMenuItemResponse(item))
}

// Get handles GET /restaurant/menu/:id/.
//
// @Summary      Retrieve a menu item
// @Tags         menu
// @Produce      json
// @Param        id   path      int  true  "Menu item id"
// @Success      200  {object}  menuItemResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /restaurant/menu/{id}/ [get]
func (h *MenuHandler) Get(c echo.Context) error {
	id, err := pathID(c, domain.ErrMenuItemNotFound)
	if err != nil {
		return err
	}

	item, err := h.service.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toMenuItemResponse(item))
}

// Update handles PUT /restaurant/menu/:id/.
//
// @Summary      Replace a menu item
// @Tags         menu
// @Accept       json
// @Produce      json
// @Security     TokenAuth
// @Param        id    path      int              true  "Menu item id"
// @Param        body  body      menuItemRequest  true  "Menu item"
// @Success      200   {object}  menuItemResponse
// @Failure      400   {object}  ErrorResponse
// @Failure      401   {object}  ErrorResponse
// @Failure      404   {object}  ErrorResponse
// @Router       /restaurant/menu/{id}/ [put]
func (h *MenuHandler) Update(c echo.Context) error {
	id, err := pathID(c, domain.ErrMenuItemNotFound)
	if err != nil {
		return err
	}

	var req menuItemRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	item, err := h.service.Update(c.Request().Context(), id, req.toInput())
	if err != nil {
		return err
	}

	metrics.MenuItemOperationsTotal.WithLabelValues("update").Inc()
	return c.JSON(http.StatusOK, toMenuItemResponse(item))
}

// PartialUpdate handles PATCH /restaurant/menu/:id/.
//
// @Summary      Update some fields of a menu item
// @Tags         menu
// @Accept       json
// @Produce      json
// @Security     TokenAuth
// @Param        id    path      int                   true  "Menu item id"
// @Param        body  body      menuItemPatchRequest  true  "Fields to change"
// @Success      200   {object}  menuItemResponse
// @Failure      400   {object}  ErrorResponse
// @Failure      401   {object}  ErrorResponse
// @Failure      404   {object}  ErrorResponse
// @Router       /restaurant/menu/{id}/ [patch]
func (h *MenuHandler) PartialUpdate(c echo.Context) error {
	id, err := pathID(c, domain.ErrMenuItemNotFound)
	if err != nil {
		return err
	}

	var req menuItemPatchRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	item, err := h.service.PartialUpdate(c.Request().Context(), id, req.toPatch())
	if err != nil {
		return err
	}

	metrics.MenuItemOperationsTotal.WithLabelValues("partial_update").Inc()
	return c.JSON(http.StatusOK, toMenuItemResponse(item))
}

// Delete handles DELETE /restaurant/menu/:id/.
//
// @Summary      Delete a menu item
// @Tags         menu
// @Security     TokenAuth
// @Param        id   path  int  true  "Menu item id"
// @Success      204
// @Failure      401  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /restaurant/menu/{id}/ [delete]
func (h *MenuHandler) Delete(c echo.Context) error {
	id, err := pathID(c, domain.ErrMenuItemNotFound)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		return err
	}

	metrics.MenuItemOperationsTotal.WithLabelValues("delete").Inc()
	return c.NoContent(http.StatusNoContent)
}
