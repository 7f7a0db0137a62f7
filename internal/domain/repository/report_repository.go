package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// Raw aggregation results produced by the DB; usecases shape them into DTOs.
// Revenue figures count completed orders only. Where an order count deliberately
// includes every status, the field name says so.

// SalesSummaryResult totals for completed orders in a period.
type SalesSummaryResult struct {
	Revenue        decimal.Decimal
	CompletedCount int
	AverageOrder   decimal.Decimal
}

// CategorySalesResult revenue per menu category.
type CategorySalesResult struct {
	Category string
	Quantity int
	Revenue  decimal.Decimal
}

// PaymentMethodSalesResult revenue per payment method.
type PaymentMethodSalesResult struct {
	PaymentMethod string
	OrderCount    int
	Revenue       decimal.Decimal
}

// DailySalesResult revenue per calendar day.
type DailySalesResult struct {
	Day        time.Time
	OrderCount int
	Revenue    decimal.Decimal
}

// ProductSalesResult per-product ranking row.
type ProductSalesResult struct {
	MenuItemID   string
	Name         string
	QuantitySold int
	Revenue      decimal.Decimal
	AveragePrice decimal.Decimal
}

// TopCustomerResult customer ranking row by spend in the period.
type TopCustomerResult struct {
	CustomerID string
	Name       string
	OrderCount int
	TotalSpent decimal.Decimal
}

// MonthlyCountResult generic month/count pair (new customers, etc.).
type MonthlyCountResult struct {
	Month time.Time
	Count int
}

// LoyaltyBucketResult histogram bucket of customers by loyalty points.
type LoyaltyBucketResult struct {
	Bucket string // "0-99", "100-499", "500-999", "1000-4999", "5000+"
	Count  int
}

// InventoryValuationResult stock valuation totals.
type InventoryValuationResult struct {
	ItemCount     int
	LowStockCount int
	TotalValue    decimal.Decimal // sum(current_stock * cost_per_unit)
}

// FinancialSummaryResult revenue figures from completed orders plus the order
// count across ALL statuses (intentional asymmetry, kept per endpoint).
type FinancialSummaryResult struct {
	Revenue        decimal.Decimal
	Tax            decimal.Decimal
	Discount       decimal.Decimal
	TotalOrders    int // every status
	CompletedCount int
}

// MonthlyRevenueResult month/revenue pair for the trend chart data.
type MonthlyRevenueResult struct {
	Month   time.Time
	Revenue decimal.Decimal
}

// ReportRepository defines the read-only aggregation queries. Implementations
// never modify data and always filter by shopID.
type ReportRepository interface {
	SalesSummary(ctx context.Context, shopID string, from, to time.Time) (*SalesSummaryResult, error)
	SalesByCategory(ctx context.Context, shopID string, from, to time.Time) ([]CategorySalesResult, error)
	SalesByPaymentMethod(ctx context.Context, shopID string, from, to time.Time) ([]PaymentMethodSalesResult, error)
	SalesByDay(ctx context.Context, shopID string, from, to time.Time) ([]DailySalesResult, error)

	ProductRanking(ctx context.Context, shopID string, from, to time.Time, limit int) ([]ProductSalesResult, error)

	TopCustomers(ctx context.Context, shopID string, from, to time.Time, limit int) ([]TopCustomerResult, error)
	NewCustomersByMonth(ctx context.Context, shopID string, from, to time.Time) ([]MonthlyCountResult, error)
	LoyaltyHistogram(ctx context.Context, shopID string) ([]LoyaltyBucketResult, error)

	InventoryValuation(ctx context.Context, shopID string) (*InventoryValuationResult, error)

	FinancialSummary(ctx context.Context, shopID string, from, to time.Time) (*FinancialSummaryResult, error)
	MonthlyRevenue(ctx context.Context, shopID string, from, to time.Time) ([]MonthlyRevenueResult, error)
}
