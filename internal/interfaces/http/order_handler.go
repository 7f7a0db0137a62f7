package http

import (
	"context"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/alexsagar/teantea-api/internal/application/dto"
	"github.com/alexsagar/teantea-api/internal/application/order"
	"github.com/alexsagar/teantea-api/internal/domain"
	"github.com/alexsagar/teantea-api/internal/domain/entity"
	"github.com/alexsagar/teantea-api/internal/domain/repository"
)

// ReceiptGenerator renders an order receipt as a PDF document.
type ReceiptGenerator interface {
	GenerateReceipt(ctx context.Context, order *entity.Order, shop *entity.Shop, customer *entity.Customer) ([]byte, error)
}

// OrderHandler order lifecycle endpoints plus the printable receipt.
type OrderHandler struct {
	uc        *order.UseCase
	shops     repository.ShopRepository
	customers repository.CustomerRepository
	receipts  ReceiptGenerator
}

// NewOrderHandler builds the handler.
func NewOrderHandler(uc *order.UseCase, shops repository.ShopRepository, customers repository.CustomerRepository, receipts ReceiptGenerator) *OrderHandler {
	return &OrderHandler{uc: uc, shops: shops, customers: customers, receipts: receipts}
}

// Create godoc
// @Summary      Create an order
// @Tags         orders
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        request body dto.CreateOrderRequest true "Order data"
// @Success      201 {object} dto.OrderResponse
// @Failure      400 {object} dto.ErrorResponse
// @Router       /api/orders [post]
func (h *OrderHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateOrderRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c)
	}
	res, err := h.uc.Create(c.Context(), GetShopID(c), GetUserID(c), req)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(res)
}

// List godoc
// @Summary      List orders
// @Tags         orders
// @Security     BearerAuth
// @Produce      json
// @Param        status    query string false "Status filter"
// @Param        type      query string false "Order type filter"
// @Param        tableId   query string false "Table filter"
// @Param        startDate query string false "Start date (YYYY-MM-DD)"
// @Param        endDate   query string false "End date, inclusive (YYYY-MM-DD)"
// @Param        limit     query int    false "Page size"
// @Param        offset    query int    false "Page offset"
// @Success      200 {object} dto.OrderListResponse
// @Router       /api/orders [get]
func (h *OrderHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return badBody(c)
	}
	filter := repository.OrderFilter{
		Status:    c.Query("status"),
		OrderType: c.Query("type"),
		TableID:   c.Query("tableId"),
	}
	if v := c.Query("startDate"); v != "" {
		from, err := time.Parse("2006-01-02", v)
		if err != nil {
			return respondError(c, fmt.Errorf("%w: startDate", domain.ErrInvalidInput))
		}
		filter.From = from
	}
	if v := c.Query("endDate"); v != "" {
		end, err := time.Parse("2006-01-02", v)
		if err != nil {
			return respondError(c, fmt.Errorf("%w: endDate", domain.ErrInvalidInput))
		}
		filter.To = end.AddDate(0, 0, 1)
	}
	res, err := h.uc.List(c.Context(), GetShopID(c), filter, page)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(res)
}

// Get godoc
// @Summary      Get one order
// @Tags         orders
// @Security     BearerAuth
// @Produce      json
// @Param        id path string true "Order id"
// @Success      200 {object} dto.OrderResponse
// @Failure      404 {object} dto.ErrorResponse
// @Router       /api/orders/{id} [get]
func (h *OrderHandler) Get(c *fiber.Ctx) error {
	res, err := h.uc.GetByID(c.Context(), GetShopID(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(res)
}

// Update godoc
// @Summary      Update an order
// @Tags         orders
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id      path string                 true "Order id"
// @Param        request body dto.UpdateOrderRequest true "Fields to change"
// @Success      200 {object} dto.OrderResponse
// @Failure      404 {object} dto.ErrorResponse
// @Router       /api/orders/{id} [put]
func (h *OrderHandler) Update(c *fiber.Ctx) error {
	var req dto.UpdateOrderRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c)
	}
	res, err := h.uc.Update(c.Context(), GetShopID(c), c.Params("id"), req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(res)
}

// UpdateStatus godoc
// @Summary      Advance an order's status
// @Tags         orders
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id      path string                       true "Order id"
// @Param        request body dto.UpdateOrderStatusRequest true "New status"
// @Success      200 {object} dto.OrderResponse
// @Failure      400 {object} dto.ErrorResponse
// @Router       /api/orders/{id}/status [patch]
func (h *OrderHandler) UpdateStatus(c *fiber.Ctx) error {
	var req dto.UpdateOrderStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c)
	}
	res, err := h.uc.UpdateStatus(c.Context(), GetShopID(c), c.Params("id"), req.Status)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(res)
}

// Cancel godoc
// @Summary      Cancel an order
// @Tags         orders
// @Security     BearerAuth
// @Produce      json
// @Param        id path string true "Order id"
// @Success      200 {object} dto.OrderResponse
// @Failure      404 {object} dto.ErrorResponse
// @Router       /api/orders/{id} [delete]
func (h *OrderHandler) Cancel(c *fiber.Ctx) error {
	res, err := h.uc.Cancel(c.Context(), GetShopID(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(res)
}

// PermanentDelete godoc
// @Summary      Permanently delete a cancelled order
// @Tags         orders
// @Security     BearerAuth
// @Param        id path string true "Order id"
// @Success      204 "Deleted"
// @Failure      400 {object} dto.ErrorResponse
// @Router       /api/orders/{id}/permanent [delete]
func (h *OrderHandler) PermanentDelete(c *fiber.Ctx) error {
	if err := h.uc.PermanentDelete(c.Context(), GetShopID(c), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Receipt godoc
// @Summary      Download the order receipt as PDF
// @Tags         orders
// @Security     BearerAuth
// @Produce      application/pdf
// @Param        id path string true "Order id"
// @Success      200 {file} binary
// @Failure      404 {object} dto.ErrorResponse
// @Router       /api/orders/{id}/receipt [get]
func (h *OrderHandler) Receipt(c *fiber.Ctx) error {
	shopID := GetShopID(c)
	ord, err := h.uc.Get(c.Context(), shopID, c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	shop, err := h.shops.GetByID(c.Context(), shopID)
	if err != nil {
		return respondError(c, err)
	}
	if shop == nil {
		return respondError(c, domain.ErrNotFound)
	}
	var customer *entity.Customer
	if ord.CustomerID != nil {
		customer, err = h.customers.GetByID(c.Context(), shopID, *ord.CustomerID)
		if err != nil {
			return respondError(c, err)
		}
	}
	pdfBytes, err := h.receipts.GenerateReceipt(c.Context(), ord, shop, customer)
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", "receipt-"+ord.OrderNumber+".pdf"))
	return c.Send(pdfBytes)
}
