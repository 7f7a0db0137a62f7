package http

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/alexsagar/teantea-api/internal/application/dto"
	"github.com/alexsagar/teantea-api/internal/application/inventory"
	"github.com/alexsagar/teantea-api/internal/domain"
)

// InventoryHandler inventory item, stock adjustment and goods-receipt endpoints.
type InventoryHandler struct {
	uc *inventory.UseCase
}

// NewInventoryHandler builds the handler.
func NewInventoryHandler(uc *inventory.UseCase) *InventoryHandler {
	return &InventoryHandler{uc: uc}
}

// Create godoc
// @Summary      Create an inventory item
// @Tags         inventory
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        request body dto.CreateInventoryItemRequest true "Item data"
// @Success      201 {object} dto.InventoryItemResponse
// @Failure      400 {object} dto.ErrorResponse
// @Router       /api/inventory [post]
func (h *InventoryHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateInventoryItemRequest
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
// @Summary      List inventory items
// @Tags         inventory
// @Security     BearerAuth
// @Produce      json
// @Param        category query string false "Category filter"
// @Param        limit    query int    false "Page size"
// @Param        offset   query int    false "Page offset"
// @Success      200 {object} dto.InventoryListResponse
// @Router       /api/inventory [get]
func (h *InventoryHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return badBody(c)
	}
	res, err := h.uc.List(c.Context(), GetShopID(c), c.Query("category"), page)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(res)
}

// LowStock godoc
// @Summary      List items at or below their minimum stock
// @Tags         inventory
// @Security     BearerAuth
// @Produce      json
// @Success      200 {array} dto.InventoryItemResponse
// @Router       /api/inventory/alerts/low-stock [get]
func (h *InventoryHandler) LowStock(c *fiber.Ctx) error {
	res, err := h.uc.ListLowStock(c.Context(), GetShopID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(res)
}

// Get godoc
// @Summary      Get one inventory item
// @Tags         inventory
// @Security     BearerAuth
// @Produce      json
// @Param        id path string true "Item id"
// @Success      200 {object} dto.InventoryItemResponse
// @Failure      404 {object} dto.ErrorResponse
// @Router       /api/inventory/{id} [get]
func (h *InventoryHandler) Get(c *fiber.Ctx) error {
	res, err := h.uc.GetByID(c.Context(), GetShopID(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(res)
}

// Update godoc
// @Summary      Update an inventory item's descriptive fields
// @Tags         inventory
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id      path string                         true "Item id"
// @Param        request body dto.UpdateInventoryItemRequest true "Fields to change"
// @Success      200 {object} dto.InventoryItemResponse
// @Failure      404 {object} dto.ErrorResponse
// @Router       /api/inventory/{id} [put]
func (h *InventoryHandler) Update(c *fiber.Ctx) error {
	var req dto.UpdateInventoryItemRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c)
	}
	res, err := h.uc.Update(c.Context(), GetShopID(c), c.Params("id"), req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(res)
}

// AdjustStock godoc
// @Summary      Adjust an item's stock level
// @Tags         inventory
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id      path string                 true "Item id"
// @Param        request body dto.AdjustStockRequest true "Quantity and operation"
// @Success      200 {object} dto.InventoryItemResponse
// @Failure      400 {object} dto.ErrorResponse
// @Router       /api/inventory/{id}/stock [patch]
func (h *InventoryHandler) AdjustStock(c *fiber.Ctx) error {
	var req dto.AdjustStockRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c)
	}
	res, err := h.uc.Adjust(c.Context(), GetShopID(c), c.Params("id"), req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(res)
}

// Delete godoc
// @Summary      Delete an inventory item
// @Tags         inventory
// @Security     BearerAuth
// @Param        id path string true "Item id"
// @Success      204 "Deleted"
// @Failure      404 {object} dto.ErrorResponse
// @Router       /api/inventory/{id} [delete]
func (h *InventoryHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), GetShopID(c), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// StockIn godoc
// @Summary      Record a goods receipt and increase stock
// @Tags         stockin
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        request body dto.CreateStockInRequest true "Receipt data"
// @Success      201 {object} dto.StockInResponse
// @Failure      400 {object} dto.ErrorResponse
// @Router       /api/stockin [post]
func (h *InventoryHandler) StockIn(c *fiber.Ctx) error {
	var req dto.CreateStockInRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c)
	}
	res, err := h.uc.StockIn(c.Context(), GetShopID(c), GetUserID(c), req)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(res)
}

// ListStockIns godoc
// @Summary      List goods receipts
// @Tags         stockin
// @Security     BearerAuth
// @Produce      json
// @Param        startDate query string false "Start date (YYYY-MM-DD)"
// @Param        endDate   query string false "End date, inclusive (YYYY-MM-DD)"
// @Param        limit     query int    false "Page size"
// @Param        offset    query int    false "Page offset"
// @Success      200 {object} dto.StockInListResponse
// @Router       /api/stockin [get]
func (h *InventoryHandler) ListStockIns(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return badBody(c)
	}
	var from, to time.Time
	if v := c.Query("startDate"); v != "" {
		t, err := time.Parse("2006-01-02", v)
		if err != nil {
			return respondError(c, fmt.Errorf("%w: startDate", domain.ErrInvalidInput))
		}
		from = t
	}
	if v := c.Query("endDate"); v != "" {
		t, err := time.Parse("2006-01-02", v)
		if err != nil {
			return respondError(c, fmt.Errorf("%w: endDate", domain.ErrInvalidInput))
		}
		to = t.AddDate(0, 0, 1)
	}
	res, err := h.uc.ListStockIns(c.Context(), GetShopID(c), from, to, page)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(res)
}

// GetStockIn godoc
// @Summary      Get one goods receipt
// @Tags         stockin
// @Security     BearerAuth
// @Produce      json
// @Param        id path string true "Receipt id"
// @Success      200 {object} dto.StockInResponse
// @Failure      404 {object} dto.ErrorResponse
// @Router       /api/stockin/{id} [get]
func (h *InventoryHandler) GetStockIn(c *fiber.Ctx) error {
	res, err := h.uc.GetStockIn(c.Context(), GetShopID(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(res)
}
