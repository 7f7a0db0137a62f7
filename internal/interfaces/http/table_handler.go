package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/alexsagar/teantea-api/internal/application/dto"
	"github.com/alexsagar/teantea-api/internal/application/usecase"
)

// TableHandler dining table endpoints.
type TableHandler struct {
	uc *usecase.TableUseCase
}

// NewTableHandler builds the handler.
func NewTableHandler(uc *usecase.TableUseCase) *TableHandler {
	return &TableHandler{uc: uc}
}

// Create godoc
// @Summary      Create a table
// @Tags         tables
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        request body dto.CreateTableRequest true "Table data"
// @Success      201 {object} dto.TableResponse
// @Failure      409 {object} dto.ErrorResponse
// @Router       /api/tables [post]
func (h *TableHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateTableRequest
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
// @Summary      List tables
// @Tags         tables
// @Security     BearerAuth
// @Produce      json
// @Param        status query string false "Status filter"
// @Success      200 {array} dto.TableResponse
// @Router       /api/tables [get]
func (h *TableHandler) List(c *fiber.Ctx) error {
	res, err := h.uc.List(c.Context(), GetShopID(c), c.Query("status"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(res)
}

// Get godoc
// @Summary      Get one table
// @Tags         tables
// @Security     BearerAuth
// @Produce      json
// @Param        id path string true "Table id"
// @Success      200 {object} dto.TableResponse
// @Failure      404 {object} dto.ErrorResponse
// @Router       /api/tables/{id} [get]
func (h *TableHandler) Get(c *fiber.Ctx) error {
	res, err := h.uc.GetByID(c.Context(), GetShopID(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(res)
}

// Update godoc
// @Summary      Update a table
// @Tags         tables
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id      path string                 true "Table id"
// @Param        request body dto.UpdateTableRequest true "Fields to change"
// @Success      200 {object} dto.TableResponse
// @Failure      404 {object} dto.ErrorResponse
// @Router       /api/tables/{id} [put]
func (h *TableHandler) Update(c *fiber.Ctx) error {
	var req dto.UpdateTableRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c)
	}
	res, err := h.uc.Update(c.Context(), GetShopID(c), c.Params("id"), req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(res)
}

// SetStatus godoc
// @Summary      Set a table's status
// @Tags         tables
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id      path string                       true "Table id"
// @Param        request body dto.UpdateTableStatusRequest true "New status"
// @Success      200 {object} dto.TableResponse
// @Failure      400 {object} dto.ErrorResponse
// @Router       /api/tables/{id}/status [patch]
func (h *TableHandler) SetStatus(c *fiber.Ctx) error {
	var req dto.UpdateTableStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c)
	}
	res, err := h.uc.SetStatus(c.Context(), GetShopID(c), c.Params("id"), req.Status)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(res)
}

// Reserve godoc
// @Summary      Attach a reservation to a table
// @Tags         tables
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id      path string                  true "Table id"
// @Param        request body dto.ReserveTableRequest true "Reservation data"
// @Success      200 {object} dto.TableResponse
// @Failure      400 {object} dto.ErrorResponse
// @Router       /api/tables/{id}/reservation [post]
func (h *TableHandler) Reserve(c *fiber.Ctx) error {
	var req dto.ReserveTableRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c)
	}
	res, err := h.uc.Reserve(c.Context(), GetShopID(c), c.Params("id"), req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(res)
}

// ClearReservation godoc
// @Summary      Remove a table's reservation
// @Tags         tables
// @Security     BearerAuth
// @Produce      json
// @Param        id path string true "Table id"
// @Success      200 {object} dto.TableResponse
// @Failure      404 {object} dto.ErrorResponse
// @Router       /api/tables/{id}/reservation [delete]
func (h *TableHandler) ClearReservation(c *fiber.Ctx) error {
	res, err := h.uc.ClearReservation(c.Context(), GetShopID(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(res)
}

// Delete godoc
// @Summary      Delete a table
// @Tags         tables
// @Security     BearerAuth
// @Param        id path string true "Table id"
// @Success      204 "Deleted"
// @Failure      404 {object} dto.ErrorResponse
// @Router       /api/tables/{id} [delete]
func (h *TableHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), GetShopID(c), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
