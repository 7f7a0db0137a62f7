package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/alexsagar/teantea-api/internal/application/dto"
	"github.com/alexsagar/teantea-api/internal/application/usecase"
)

// StaffHandler staff administration endpoints. Staff creation lives under
// /auth/register because it issues credentials.
type StaffHandler struct {
	uc *usecase.StaffUseCase
}

// NewStaffHandler builds the handler.
func NewStaffHandler(uc *usecase.StaffUseCase) *StaffHandler {
	return &StaffHandler{uc: uc}
}

// List godoc
// @Summary      List staff
// @Tags         staff
// @Security     BearerAuth
// @Produce      json
// @Param        limit  query int false "Page size"
// @Param        offset query int false "Page offset"
// @Success      200 {object} dto.UserListResponse
// @Router       /api/staff [get]
func (h *StaffHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return badBody(c)
	}
	res, err := h.uc.List(c.Context(), GetShopID(c), page)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(res)
}

// Get godoc
// @Summary      Get one staff member
// @Tags         staff
// @Security     BearerAuth
// @Produce      json
// @Param        id path string true "User id"
// @Success      200 {object} dto.UserResponse
// @Failure      404 {object} dto.ErrorResponse
// @Router       /api/staff/{id} [get]
func (h *StaffHandler) Get(c *fiber.Ctx) error {
	res, err := h.uc.GetByID(c.Context(), GetShopID(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(res)
}

// Update godoc
// @Summary      Update a staff member
// @Tags         staff
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id      path string                 true "User id"
// @Param        request body dto.UpdateStaffRequest true "Fields to change"
// @Success      200 {object} dto.UserResponse
// @Failure      404 {object} dto.ErrorResponse
// @Router       /api/staff/{id} [put]
func (h *StaffHandler) Update(c *fiber.Ctx) error {
	var req dto.UpdateStaffRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c)
	}
	res, err := h.uc.Update(c.Context(), GetShopID(c), c.Params("id"), req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(res)
}

// UpdatePermissions godoc
// @Summary      Replace a staff member's permissions
// @Tags         staff
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id      path string                       true "User id"
// @Param        request body dto.UpdatePermissionsRequest true "Permission set"
// @Success      200 {object} dto.UserResponse
// @Failure      404 {object} dto.ErrorResponse
// @Router       /api/staff/{id}/permissions [patch]
func (h *StaffHandler) UpdatePermissions(c *fiber.Ctx) error {
	var req dto.UpdatePermissionsRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c)
	}
	res, err := h.uc.UpdatePermissions(c.Context(), GetShopID(c), c.Params("id"), req.Permissions)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(res)
}

// Deactivate godoc
// @Summary      Deactivate a staff member
// @Tags         staff
// @Security     BearerAuth
// @Param        id path string true "User id"
// @Success      204 "Deactivated"
// @Failure      404 {object} dto.ErrorResponse
// @Router       /api/staff/{id} [delete]
func (h *StaffHandler) Deactivate(c *fiber.Ctx) error {
	if err := h.uc.Deactivate(c.Context(), GetShopID(c), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
