package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/alexsagar/teantea-api/internal/application/dto"
	"github.com/alexsagar/teantea-api/internal/application/usecase"
	"github.com/alexsagar/teantea-api/internal/domain/repository"
)

// MenuHandler menu item endpoints.
type MenuHandler struct {
	uc *usecase.MenuUseCase
}

// NewMenuHandler builds the handler.
func NewMenuHandler(uc *usecase.MenuUseCase) *MenuHandler {
	return &MenuHandler{uc: uc}
}

// Create godoc
// @Summary      Create a menu item
// @Tags         menu
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        request body dto.CreateMenuItemRequest true "Menu item data"
// @Success      201 {object} dto.MenuItemResponse
// @Failure      400 {object} dto.ErrorResponse
// @Router       /api/menu [post]
func (h *MenuHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateMenuItemRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c)
	}
	res, err := h.uc.Create(c.Context(), GetShopID(c), req)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(res)
}

// List godoc
// @Summary      List menu items
// @Tags         menu
// @Security     BearerAuth
// @Produce      json
// @Param        category  query string false "Category filter"
// @Param        available query bool   false "Only available items"
// @Param        limit     query int    false "Page size"
// @Param        offset    query int    false "Page offset"
// @Success      200 {object} dto.MenuListResponse
// @Router       /api/menu [get]
func (h *MenuHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return badBody(c)
	}
	filter := repository.MenuFilter{
		Category:      c.Query("category"),
		OnlyAvailable: c.QueryBool("available"),
	}
	res, err := h.uc.List(c.Context(), GetShopID(c), filter, page)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(res)
}

// Get godoc
// @Summary      Get one menu item
// @Tags         menu
// @Security     BearerAuth
// @Produce      json
// @Param        id path string true "Menu item id"
// @Success      200 {object} dto.MenuItemResponse
// @Failure      404 {object} dto.ErrorResponse
// @Router       /api/menu/{id} [get]
func (h *MenuHandler) Get(c *fiber.Ctx) error {
	res, err := h.uc.GetByID(c.Context(), GetShopID(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(res)
}

// Update godoc
// @Summary      Update a menu item
// @Tags         menu
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id      path string                    true "Menu item id"
// @Param        request body dto.UpdateMenuItemRequest true "Fields to change"
// @Success      200 {object} dto.MenuItemResponse
// @Failure      404 {object} dto.ErrorResponse
// @Router       /api/menu/{id} [put]
func (h *MenuHandler) Update(c *fiber.Ctx) error {
	var req dto.UpdateMenuItemRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c)
	}
	res, err := h.uc.Update(c.Context(), GetShopID(c), c.Params("id"), req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(res)
}

// SetAvailability godoc
// @Summary      Toggle a menu item's availability
// @Tags         menu
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id      path string                     true "Menu item id"
// @Param        request body dto.SetAvailabilityRequest true "Availability flag"
// @Success      200 {object} dto.MenuItemResponse
// @Failure      404 {object} dto.ErrorResponse
// @Router       /api/menu/{id}/availability [patch]
func (h *MenuHandler) SetAvailability(c *fiber.Ctx) error {
	var req dto.SetAvailabilityRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c)
	}
	res, err := h.uc.SetAvailability(c.Context(), GetShopID(c), c.Params("id"), req.IsAvailable)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(res)
}

// Delete godoc
// @Summary      Delete a menu item
// @Tags         menu
// @Security     BearerAuth
// @Param        id path string true "Menu item id"
// @Success      204 "Deleted"
// @Failure      404 {object} dto.ErrorResponse
// @Router       /api/menu/{id} [delete]
func (h *MenuHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), GetShopID(c), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
