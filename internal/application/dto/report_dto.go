package dto

import "github.com/shopspring/decimal"

// DateRangeRequest query-string date range for reports, YYYY-MM-DD.
// Empty values default to the last 30 days.
type DateRangeRequest struct {
	StartDate string `query:"startDate"`
	EndDate   string `query:"endDate"`
}

// SalesReportResponse sales aggregations for a period.
type SalesReportResponse struct {
	StartDate       string                  `json:"startDate"`
	EndDate         string                  `json:"endDate"`
	TotalRevenue    decimal.Decimal         `json:"totalRevenue"`
	CompletedOrders int                     `json:"completedOrders"`
	AverageOrder    decimal.Decimal         `json:"averageOrder"`
	ByCategory      []CategorySalesRow      `json:"byCategory"`
	ByPaymentMethod []PaymentMethodRow      `json:"byPaymentMethod"`
	ByDay           []DailySalesRow         `json:"byDay"`
	TopProducts     []ProductPerformanceRow `json:"topProducts"`
}

// CategorySalesRow revenue per menu category.
type CategorySalesRow struct {
	Category string          `json:"category"`
	Quantity int             `json:"quantity"`
	Revenue  decimal.Decimal `json:"revenue"`
}

// PaymentMethodRow revenue per payment method.
type PaymentMethodRow struct {
	PaymentMethod string          `json:"paymentMethod"`
	OrderCount    int             `json:"orderCount"`
	Revenue       decimal.Decimal `json:"revenue"`
}

// DailySalesRow revenue per calendar day.
type DailySalesRow struct {
	Date       string          `json:"date"` // YYYY-MM-DD
	OrderCount int             `json:"orderCount"`
	Revenue    decimal.Decimal `json:"revenue"`
}

// ProductPerformanceRow per-product ranking row.
type ProductPerformanceRow struct {
	MenuItemID   string          `json:"menuItemId"`
	Name         string          `json:"name"`
	QuantitySold int             `json:"quantitySold"`
	Revenue      decimal.Decimal `json:"revenue"`
	AveragePrice decimal.Decimal `json:"averagePrice"`
}

// ProductReportResponse product performance ranking for a period.
type ProductReportResponse struct {
	StartDate string                  `json:"startDate"`
	EndDate   string                  `json:"endDate"`
	Products  []ProductPerformanceRow `json:"products"`
}

// CustomerReportResponse customer analytics for a period.
type CustomerReportResponse struct {
	StartDate           string             `json:"startDate"`
	EndDate             string             `json:"endDate"`
	TopCustomers        []TopCustomerRow   `json:"topCustomers"`
	NewCustomersByMonth []MonthlyCountRow  `json:"newCustomersByMonth"`
	LoyaltyDistribution []LoyaltyBucketRow `json:"loyaltyDistribution"`
}

// TopCustomerRow customer ranking row by spend.
type TopCustomerRow struct {
	CustomerID string          `json:"customerId"`
	Name       string          `json:"name"`
	OrderCount int             `json:"orderCount"`
	TotalSpent decimal.Decimal `json:"totalSpent"`
}

// MonthlyCountRow month/count pair.
type MonthlyCountRow struct {
	Month string `json:"month"` // YYYY-MM
	Count int    `json:"count"`
}

// LoyaltyBucketRow loyalty-points histogram bucket.
type LoyaltyBucketRow struct {
	Bucket string `json:"bucket"`
	Count  int    `json:"count"`
}

// InventoryReportResponse stock levels and valuation.
type InventoryReportResponse struct {
	ItemCount     int                     `json:"itemCount"`
	LowStockCount int                     `json:"lowStockCount"`
	TotalValue    decimal.Decimal         `json:"totalValue"`
	LowStockItems []InventoryItemResponse `json:"lowStockItems"`
}

// FinancialReportResponse revenue figures for a period. TotalOrders counts
// every status; revenue fields only completed orders.
type FinancialReportResponse struct {
	StartDate       string              `json:"startDate"`
	EndDate         string              `json:"endDate"`
	Revenue         decimal.Decimal     `json:"revenue"`
	Tax             decimal.Decimal     `json:"tax"`
	Discount        decimal.Decimal     `json:"discount"`
	TotalOrders     int                 `json:"totalOrders"`
	CompletedOrders int                 `json:"completedOrders"`
	MonthlyRevenue  []MonthlyRevenueRow `json:"monthlyRevenue"`
}

// MonthlyRevenueRow month/revenue pair.
type MonthlyRevenueRow struct {
	Month   string          `json:"month"` // YYYY-MM
	Revenue decimal.Decimal `json:"revenue"`
}
