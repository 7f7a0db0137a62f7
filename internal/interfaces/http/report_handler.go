package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/alexsagar/teantea-api/internal/application/dto"
	"github.com/alexsagar/teantea-api/internal/application/usecase"
)

// ReportHandler read-only report endpoints.
type ReportHandler struct {
	uc *usecase.ReportUseCase
}

// NewReportHandler builds the handler.
func NewReportHandler(uc *usecase.ReportUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

func parseRange(c *fiber.Ctx) dto.DateRangeRequest {
	return dto.DateRangeRequest{
		StartDate: c.Query("startDate"),
		EndDate:   c.Query("endDate"),
	}
}

// Sales godoc
// @Summary      Sales report
// @Tags         reports
// @Security     BearerAuth
// @Produce      json
// @Param        startDate query string false "Start date (YYYY-MM-DD)"
// @Param        endDate   query string false "End date, inclusive (YYYY-MM-DD)"
// @Success      200 {object} dto.SalesReportResponse
// @Failure      400 {object} dto.ErrorResponse
// @Router       /api/reports/sales [get]
func (h *ReportHandler) Sales(c *fiber.Ctx) error {
	res, err := h.uc.Sales(c.Context(), GetShopID(c), parseRange(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(res)
}

// Products godoc
// @Summary      Product performance report
// @Tags         reports
// @Security     BearerAuth
// @Produce      json
// @Param        startDate query string false "Start date (YYYY-MM-DD)"
// @Param        endDate   query string false "End date, inclusive (YYYY-MM-DD)"
// @Success      200 {object} dto.ProductReportResponse
// @Router       /api/reports/products [get]
func (h *ReportHandler) Products(c *fiber.Ctx) error {
	res, err := h.uc.Products(c.Context(), GetShopID(c), parseRange(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(res)
}

// Customers godoc
// @Summary      Customer analytics report
// @Tags         reports
// @Security     BearerAuth
// @Produce      json
// @Param        startDate query string false "Start date (YYYY-MM-DD)"
// @Param        endDate   query string false "End date, inclusive (YYYY-MM-DD)"
// @Success      200 {object} dto.CustomerReportResponse
// @Router       /api/reports/customers [get]
func (h *ReportHandler) Customers(c *fiber.Ctx) error {
	res, err := h.uc.Customers(c.Context(), GetShopID(c), parseRange(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(res)
}

// Inventory godoc
// @Summary      Inventory valuation report
// @Tags         reports
// @Security     BearerAuth
// @Produce      json
// @Success      200 {object} dto.InventoryReportResponse
// @Router       /api/reports/inventory [get]
func (h *ReportHandler) Inventory(c *fiber.Ctx) error {
	res, err := h.uc.Inventory(c.Context(), GetShopID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(res)
}

// Financial godoc
// @Summary      Financial summary report
// @Tags         reports
// @Security     BearerAuth
// @Produce      json
// @Param        startDate query string false "Start date (YYYY-MM-DD)"
// @Param        endDate   query string false "End date, inclusive (YYYY-MM-DD)"
// @Success      200 {object} dto.FinancialReportResponse
// @Router       /api/reports/financial [get]
func (h *ReportHandler) Financial(c *fiber.Ctx) error {
	res, err := h.uc.Financial(c.Context(), GetShopID(c), parseRange(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(res)
}
