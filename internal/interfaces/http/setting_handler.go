package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/alexsagar/teantea-api/internal/application/dto"
	"github.com/alexsagar/teantea-api/internal/application/usecase"
)

// SettingHandler per-shop settings and notification template endpoints.
type SettingHandler struct {
	uc *usecase.SettingUseCase
}

// NewSettingHandler builds the handler.
func NewSettingHandler(uc *usecase.SettingUseCase) *SettingHandler {
	return &SettingHandler{uc: uc}
}

// Get godoc
// @Summary      Get the shop's settings document
// @Tags         settings
// @Security     BearerAuth
// @Produce      json
// @Success      200 {object} dto.SettingResponse
// @Router       /api/settings [get]
func (h *SettingHandler) Get(c *fiber.Ctx) error {
	res, err := h.uc.Get(c.Context(), GetShopID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(res)
}

// PatchSection godoc
// @Summary      Merge a patch into one settings section
// @Tags         settings
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        section path string                  true "Section name"
// @Param        request body dto.PatchSectionRequest true "Patch object"
// @Success      200 {object} dto.SettingResponse
// @Failure      400 {object} dto.ErrorResponse
// @Router       /api/settings/{section} [patch]
func (h *SettingHandler) PatchSection(c *fiber.Ctx) error {
	var req dto.PatchSectionRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c)
	}
	res, err := h.uc.PatchSection(c.Context(), GetShopID(c), c.Params("section"), req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(res)
}

// GetTemplates godoc
// @Summary      Get the shop's notification templates
// @Tags         settings
// @Security     BearerAuth
// @Produce      json
// @Success      200 {object} dto.NotificationTemplateResponse
// @Router       /api/notifications/templates [get]
func (h *SettingHandler) GetTemplates(c *fiber.Ctx) error {
	res, err := h.uc.GetTemplates(c.Context(), GetShopID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(res)
}

// PatchTemplates godoc
// @Summary      Merge notification templates over the stored ones
// @Tags         settings
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        request body dto.PatchTemplatesRequest true "Templates to merge"
// @Success      200 {object} dto.NotificationTemplateResponse
// @Failure      400 {object} dto.ErrorResponse
// @Router       /api/notifications/templates [put]
func (h *SettingHandler) PatchTemplates(c *fiber.Ctx) error {
	var req dto.PatchTemplatesRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c)
	}
	res, err := h.uc.PatchTemplates(c.Context(), GetShopID(c), req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(res)
}
