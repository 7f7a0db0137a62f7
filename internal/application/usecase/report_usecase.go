package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/alexsagar/teantea-api/internal/application/dto"
	"github.com/alexsagar/teantea-api/internal/domain"
	"github.com/alexsagar/teantea-api/internal/domain/repository"
)

// Ranking sizes for the report endpoints.
const (
	topProductsLimit  = 10
	topCustomersLimit = 10
)

// ReportUseCase read-only aggregations. Date ranges default to the last 30
// days; the end date is inclusive (queries use an exclusive upper bound one
// day past it).
type ReportUseCase struct {
	reports   repository.ReportRepository
	inventory repository.InventoryRepository
}

// NewReportUseCase builds the usecase.
func NewReportUseCase(reports repository.ReportRepository, inventory repository.InventoryRepository) *ReportUseCase {
	return &ReportUseCase{reports: reports, inventory: inventory}
}

// ParseDateRange resolves a startDate/endDate pair (YYYY-MM-DD) into the
// [from, to) query window. Empty values default to the last 30 days.
func ParseDateRange(in dto.DateRangeRequest) (from, to time.Time, err error) {
	now := time.Now()
	to = now.Truncate(24 * time.Hour).Add(24 * time.Hour)
	from = to.AddDate(0, 0, -30)

	if in.StartDate != "" {
		from, err = time.Parse("2006-01-02", in.StartDate)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("%w: startDate", domain.ErrInvalidInput)
		}
	}
	if in.EndDate != "" {
		end, err := time.Parse("2006-01-02", in.EndDate)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("%w: endDate", domain.ErrInvalidInput)
		}
		to = end.AddDate(0, 0, 1)
	}
	if !from.Before(to) {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: empty date range", domain.ErrInvalidInput)
	}
	return from, to, nil
}

func rangeStrings(from, to time.Time) (string, string) {
	return from.Format("2006-01-02"), to.AddDate(0, 0, -1).Format("2006-01-02")
}

// Sales builds the sales report: summary plus category, payment-method, daily
// and top-product breakdowns.
func (uc *ReportUseCase) Sales(ctx context.Context, shopID string, in dto.DateRangeRequest) (*dto.SalesReportResponse, error) {
	from, to, err := ParseDateRange(in)
	if err != nil {
		return nil, err
	}
	summary, err := uc.reports.SalesSummary(ctx, shopID, from, to)
	if err != nil {
		return nil, err
	}
	byCategory, err := uc.reports.SalesByCategory(ctx, shopID, from, to)
	if err != nil {
		return nil, err
	}
	byPayment, err := uc.reports.SalesByPaymentMethod(ctx, shopID, from, to)
	if err != nil {
		return nil, err
	}
	byDay, err := uc.reports.SalesByDay(ctx, shopID, from, to)
	if err != nil {
		return nil, err
	}
	topProducts, err := uc.reports.ProductRanking(ctx, shopID, from, to, topProductsLimit)
	if err != nil {
		return nil, err
	}

	start, end := rangeStrings(from, to)
	out := &dto.SalesReportResponse{
		StartDate:       start,
		EndDate:         end,
		TotalRevenue:    summary.Revenue,
		CompletedOrders: summary.CompletedCount,
		AverageOrder:    summary.AverageOrder,
		ByCategory:      make([]dto.CategorySalesRow, 0, len(byCategory)),
		ByPaymentMethod: make([]dto.PaymentMethodRow, 0, len(byPayment)),
		ByDay:           make([]dto.DailySalesRow, 0, len(byDay)),
		TopProducts:     toProductRows(topProducts),
	}
	for _, c := range byCategory {
		out.ByCategory = append(out.ByCategory, dto.CategorySalesRow{
			Category: c.Category, Quantity: c.Quantity, Revenue: c.Revenue,
		})
	}
	for _, p := range byPayment {
		out.ByPaymentMethod = append(out.ByPaymentMethod, dto.PaymentMethodRow{
			PaymentMethod: p.PaymentMethod, OrderCount: p.OrderCount, Revenue: p.Revenue,
		})
	}
	for _, d := range byDay {
		out.ByDay = append(out.ByDay, dto.DailySalesRow{
			Date: d.Day.Format("2006-01-02"), OrderCount: d.OrderCount, Revenue: d.Revenue,
		})
	}
	return out, nil
}

// Products builds the per-product performance ranking.
func (uc *ReportUseCase) Products(ctx context.Context, shopID string, in dto.DateRangeRequest) (*dto.ProductReportResponse, error) {
	from, to, err := ParseDateRange(in)
	if err != nil {
		return nil, err
	}
	ranking, err := uc.reports.ProductRanking(ctx, shopID, from, to, topProductsLimit)
	if err != nil {
		return nil, err
	}
	start, end := rangeStrings(from, to)
	return &dto.ProductReportResponse{
		StartDate: start,
		EndDate:   end,
		Products:  toProductRows(ranking),
	}, nil
}

// Customers builds the customer analytics report.
func (uc *ReportUseCase) Customers(ctx context.Context, shopID string, in dto.DateRangeRequest) (*dto.CustomerReportResponse, error) {
	from, to, err := ParseDateRange(in)
	if err != nil {
		return nil, err
	}
	top, err := uc.reports.TopCustomers(ctx, shopID, from, to, topCustomersLimit)
	if err != nil {
		return nil, err
	}
	monthly, err := uc.reports.NewCustomersByMonth(ctx, shopID, from, to)
	if err != nil {
		return nil, err
	}
	histogram, err := uc.reports.LoyaltyHistogram(ctx, shopID)
	if err != nil {
		return nil, err
	}

	start, end := rangeStrings(from, to)
	out := &dto.CustomerReportResponse{
		StartDate:           start,
		EndDate:             end,
		TopCustomers:        make([]dto.TopCustomerRow, 0, len(top)),
		NewCustomersByMonth: make([]dto.MonthlyCountRow, 0, len(monthly)),
		LoyaltyDistribution: make([]dto.LoyaltyBucketRow, 0, len(histogram)),
	}
	for _, t := range top {
		out.TopCustomers = append(out.TopCustomers, dto.TopCustomerRow{
			CustomerID: t.CustomerID, Name: t.Name, OrderCount: t.OrderCount, TotalSpent: t.TotalSpent,
		})
	}
	for _, m := range monthly {
		out.NewCustomersByMonth = append(out.NewCustomersByMonth, dto.MonthlyCountRow{
			Month: m.Month.Format("2006-01"), Count: m.Count,
		})
	}
	for _, b := range histogram {
		out.LoyaltyDistribution = append(out.LoyaltyDistribution, dto.LoyaltyBucketRow{
			Bucket: b.Bucket, Count: b.Count,
		})
	}
	return out, nil
}

// Inventory builds the stock valuation report with the low-stock list.
func (uc *ReportUseCase) Inventory(ctx context.Context, shopID string) (*dto.InventoryReportResponse, error) {
	valuation, err := uc.reports.InventoryValuation(ctx, shopID)
	if err != nil {
		return nil, err
	}
	lowStock, err := uc.inventory.ListLowStock(ctx, shopID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.InventoryItemResponse, 0, len(lowStock))
	for _, i := range lowStock {
		items = append(items, dto.InventoryItemResponse{
			ID:            i.ID,
			ShopID:        i.ShopID,
			Name:          i.Name,
			Category:      i.Category,
			CurrentStock:  i.CurrentStock,
			MinStock:      i.MinStock,
			MaxStock:      i.MaxStock,
			Unit:          i.Unit,
			CostPerUnit:   i.CostPerUnit,
			SupplierID:    i.SupplierID,
			ExpiryDate:    i.ExpiryDate,
			BatchNumber:   i.BatchNumber,
			Location:      i.Location,
			LastRestocked: i.LastRestocked,
			IsLowStock:    true,
			CreatedAt:     i.CreatedAt,
			UpdatedAt:     i.UpdatedAt,
		})
	}
	return &dto.InventoryReportResponse{
		ItemCount:     valuation.ItemCount,
		LowStockCount: valuation.LowStockCount,
		TotalValue:    valuation.TotalValue,
		LowStockItems: items,
	}, nil
}

// Financial builds the financial summary. TotalOrders counts every status;
// the revenue figures only completed orders.
func (uc *ReportUseCase) Financial(ctx context.Context, shopID string, in dto.DateRangeRequest) (*dto.FinancialReportResponse, error) {
	from, to, err := ParseDateRange(in)
	if err != nil {
		return nil, err
	}
	summary, err := uc.reports.FinancialSummary(ctx, shopID, from, to)
	if err != nil {
		return nil, err
	}
	monthly, err := uc.reports.MonthlyRevenue(ctx, shopID, from, to)
	if err != nil {
		return nil, err
	}
	start, end := rangeStrings(from, to)
	out := &dto.FinancialReportResponse{
		StartDate:       start,
		EndDate:         end,
		Revenue:         summary.Revenue,
		Tax:             summary.Tax,
		Discount:        summary.Discount,
		TotalOrders:     summary.TotalOrders,
		CompletedOrders: summary.CompletedCount,
		MonthlyRevenue:  make([]dto.MonthlyRevenueRow, 0, len(monthly)),
	}
	for _, m := range monthly {
		out.MonthlyRevenue = append(out.MonthlyRevenue, dto.MonthlyRevenueRow{
			Month: m.Month.Format("2006-01"), Revenue: m.Revenue,
		})
	}
	return out, nil
}

func toProductRows(in []repository.ProductSalesResult) []dto.ProductPerformanceRow {
	rows := make([]dto.ProductPerformanceRow, 0, len(in))
	for _, p := range in {
		rows = append(rows, dto.ProductPerformanceRow{
			MenuItemID:   p.MenuItemID,
			Name:         p.Name,
			QuantitySold: p.QuantitySold,
			Revenue:      p.Revenue,
			AveragePrice: p.AveragePrice,
		})
	}
	return rows
}
