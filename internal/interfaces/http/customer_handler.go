package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/alexsagar/teantea-api/internal/application/dto"
	"github.com/alexsagar/teantea-api/internal/application/usecase"
)

// CustomerHandler customer and loyalty endpoints.
type CustomerHandler struct {
	uc *usecase.CustomerUseCase
}

// NewCustomerHandler builds the handler.
func NewCustomerHandler(uc *usecase.CustomerUseCase) *CustomerHandler {
	return &CustomerHandler{uc: uc}
}

// Create godoc
// @Summary      Register a customer
// @Tags         customers
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        request body dto.CreateCustomerRequest true "Customer data"
// @Success      201 {object} dto.CustomerResponse
// @Failure      409 {object} dto.ErrorResponse
// @Router       /api/customers [post]
func (h *CustomerHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateCustomerRequest
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
// @Summary      List customers
// @Tags         customers
// @Security     BearerAuth
// @Produce      json
// @Param        search query string false "Name or phone search"
// @Param        limit  query int    false "Page size"
// @Param        offset query int    false "Page offset"
// @Success      200 {object} dto.CustomerListResponse
// @Router       /api/customers [get]
func (h *CustomerHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return badBody(c)
	}
	res, err := h.uc.List(c.Context(), GetShopID(c), c.Query("search"), page)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(res)
}

// Get godoc
// @Summary      Get one customer
// @Tags         customers
// @Security     BearerAuth
// @Produce      json
// @Param        id path string true "Customer id"
// @Success      200 {object} dto.CustomerResponse
// @Failure      404 {object} dto.ErrorResponse
// @Router       /api/customers/{id} [get]
func (h *CustomerHandler) Get(c *fiber.Ctx) error {
	res, err := h.uc.GetByID(c.Context(), GetShopID(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(res)
}

// Update godoc
// @Summary      Update a customer
// @Tags         customers
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id      path string                    true "Customer id"
// @Param        request body dto.UpdateCustomerRequest true "Fields to change"
// @Success      200 {object} dto.CustomerResponse
// @Failure      404 {object} dto.ErrorResponse
// @Router       /api/customers/{id} [put]
func (h *CustomerHandler) Update(c *fiber.Ctx) error {
	var req dto.UpdateCustomerRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c)
	}
	res, err := h.uc.Update(c.Context(), GetShopID(c), c.Params("id"), req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(res)
}

// AdjustLoyalty godoc
// @Summary      Add or subtract loyalty points
// @Tags         customers
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id      path string                   true "Customer id"
// @Param        request body dto.AdjustLoyaltyRequest true "Points and operation"
// @Success      200 {object} dto.CustomerResponse
// @Failure      400 {object} dto.ErrorResponse
// @Router       /api/customers/{id}/loyalty [patch]
func (h *CustomerHandler) AdjustLoyalty(c *fiber.Ctx) error {
	var req dto.AdjustLoyaltyRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c)
	}
	res, err := h.uc.AdjustLoyalty(c.Context(), GetShopID(c), c.Params("id"), req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(res)
}

// Delete godoc
// @Summary      Delete a customer
// @Tags         customers
// @Security     BearerAuth
// @Param        id path string true "Customer id"
// @Success      204 "Deleted"
// @Failure      404 {object} dto.ErrorResponse
// @Router       /api/customers/{id} [delete]
func (h *CustomerHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), GetShopID(c), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
