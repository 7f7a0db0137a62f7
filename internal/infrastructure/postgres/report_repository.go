package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/alexsagar/teantea-api/internal/domain/entity"
	"github.com/alexsagar/teantea-api/internal/domain/repository"
)

var _ repository.ReportRepository = (*ReportRepo)(nil)

// ReportRepo implements the read-only aggregation queries. Every query filters
// by shop_id; revenue figures come from completed orders only.
type ReportRepo struct {
	pool *pgxpool.Pool
}

// NewReportRepository builds the reporting adapter.
func NewReportRepository(pool *pgxpool.Pool) *ReportRepo {
	return &ReportRepo{pool: pool}
}

// SalesSummary totals completed orders in [from, to).
func (r *ReportRepo) SalesSummary(ctx context.Context, shopID string, from, to time.Time) (*repository.SalesSummaryResult, error) {
	query := `
		SELECT COALESCE(SUM(total), 0), COUNT(*), COALESCE(AVG(total), 0)
		FROM orders
		WHERE shop_id = $1 AND status = $2 AND created_at >= $3 AND created_at < $4`
	var res repository.SalesSummaryResult
	err := r.pool.QueryRow(ctx, query, shopID, entity.OrderCompleted, from, to).
		Scan(&res.Revenue, &res.CompletedCount, &res.AverageOrder)
	if err != nil {
		return nil, fmt.Errorf("sales summary: %w", err)
	}
	return &res, nil
}

// SalesByCategory groups completed order lines by the menu item's category.
func (r *ReportRepo) SalesByCategory(ctx context.Context, shopID string, from, to time.Time) ([]repository.CategorySalesResult, error) {
	query := `
		SELECT m.category, COALESCE(SUM(oi.quantity), 0), COALESCE(SUM(oi.quantity * oi.price), 0)
		FROM order_items oi
		JOIN orders o ON o.id = oi.order_id
		JOIN menu_items m ON m.id = oi.menu_item_id
		WHERE o.shop_id = $1 AND o.status = $2 AND o.created_at >= $3 AND o.created_at < $4
		GROUP BY m.category
		ORDER BY 3 DESC`
	rows, err := r.pool.Query(ctx, query, shopID, entity.OrderCompleted, from, to)
	if err != nil {
		return nil, fmt.Errorf("sales by category: %w", err)
	}
	defer rows.Close()
	var out []repository.CategorySalesResult
	for rows.Next() {
		var c repository.CategorySalesResult
		if err := rows.Scan(&c.Category, &c.Quantity, &c.Revenue); err != nil {
			return nil, fmt.Errorf("scan category sales: %w", err)
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// SalesByPaymentMethod groups completed orders by payment method.
func (r *ReportRepo) SalesByPaymentMethod(ctx context.Context, shopID string, from, to time.Time) ([]repository.PaymentMethodSalesResult, error) {
	query := `
		SELECT payment_method, COUNT(*), COALESCE(SUM(total), 0)
		FROM orders
		WHERE shop_id = $1 AND status = $2 AND created_at >= $3 AND created_at < $4
		GROUP BY payment_method
		ORDER BY 3 DESC`
	rows, err := r.pool.Query(ctx, query, shopID, entity.OrderCompleted, from, to)
	if err != nil {
		return nil, fmt.Errorf("sales by payment method: %w", err)
	}
	defer rows.Close()
	var out []repository.PaymentMethodSalesResult
	for rows.Next() {
		var p repository.PaymentMethodSalesResult
		if err := rows.Scan(&p.PaymentMethod, &p.OrderCount, &p.Revenue); err != nil {
			return nil, fmt.Errorf("scan payment method sales: %w", err)
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// SalesByDay buckets completed orders per calendar day.
func (r *ReportRepo) SalesByDay(ctx context.Context, shopID string, from, to time.Time) ([]repository.DailySalesResult, error) {
	query := `
		SELECT date_trunc('day', created_at) AS day, COUNT(*), COALESCE(SUM(total), 0)
		FROM orders
		WHERE shop_id = $1 AND status = $2 AND created_at >= $3 AND created_at < $4
		GROUP BY day
		ORDER BY day`
	rows, err := r.pool.Query(ctx, query, shopID, entity.OrderCompleted, from, to)
	if err != nil {
		return nil, fmt.Errorf("sales by day: %w", err)
	}
	defer rows.Close()
	var out []repository.DailySalesResult
	for rows.Next() {
		var d repository.DailySalesResult
		if err := rows.Scan(&d.Day, &d.OrderCount, &d.Revenue); err != nil {
			return nil, fmt.Errorf("scan daily sales: %w", err)
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

// ProductRanking ranks menu items by revenue in completed orders.
func (r *ReportRepo) ProductRanking(ctx context.Context, shopID string, from, to time.Time, limit int) ([]repository.ProductSalesResult, error) {
	query := `
		SELECT oi.menu_item_id, oi.name,
		       COALESCE(SUM(oi.quantity), 0),
		       COALESCE(SUM(oi.quantity * oi.price), 0),
		       COALESCE(AVG(oi.price), 0)
		FROM order_items oi
		JOIN orders o ON o.id = oi.order_id
		WHERE o.shop_id = $1 AND o.status = $2 AND o.created_at >= $3 AND o.created_at < $4
		GROUP BY oi.menu_item_id, oi.name
		ORDER BY 4 DESC
		LIMIT $5`
	rows, err := r.pool.Query(ctx, query, shopID, entity.OrderCompleted, from, to, limit)
	if err != nil {
		return nil, fmt.Errorf("product ranking: %w", err)
	}
	defer rows.Close()
	var out []repository.ProductSalesResult
	for rows.Next() {
		var p repository.ProductSalesResult
		if err := rows.Scan(&p.MenuItemID, &p.Name, &p.QuantitySold, &p.Revenue, &p.AveragePrice); err != nil {
			return nil, fmt.Errorf("scan product ranking: %w", err)
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// TopCustomers ranks customers by completed-order spend in the period.
func (r *ReportRepo) TopCustomers(ctx context.Context, shopID string, from, to time.Time, limit int) ([]repository.TopCustomerResult, error) {
	query := `
		SELECT c.id, c.name, COUNT(o.id), COALESCE(SUM(o.total), 0)
		FROM orders o
		JOIN customers c ON c.id = o.customer_id
		WHERE o.shop_id = $1 AND o.status = $2 AND o.created_at >= $3 AND o.created_at < $4
		GROUP BY c.id, c.name
		ORDER BY 4 DESC
		LIMIT $5`
	rows, err := r.pool.Query(ctx, query, shopID, entity.OrderCompleted, from, to, limit)
	if err != nil {
		return nil, fmt.Errorf("top customers: %w", err)
	}
	defer rows.Close()
	var out []repository.TopCustomerResult
	for rows.Next() {
		var t repository.TopCustomerResult
		if err := rows.Scan(&t.CustomerID, &t.Name, &t.OrderCount, &t.TotalSpent); err != nil {
			return nil, fmt.Errorf("scan top customers: %w", err)
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

// NewCustomersByMonth counts customer signups per month.
func (r *ReportRepo) NewCustomersByMonth(ctx context.Context, shopID string, from, to time.Time) ([]repository.MonthlyCountResult, error) {
	query := `
		SELECT date_trunc('month', created_at) AS month, COUNT(*)
		FROM customers
		WHERE shop_id = $1 AND created_at >= $2 AND created_at < $3
		GROUP BY month
		ORDER BY month`
	rows, err := r.pool.Query(ctx, query, shopID, from, to)
	if err != nil {
		return nil, fmt.Errorf("new customers by month: %w", err)
	}
	defer rows.Close()
	var out []repository.MonthlyCountResult
	for rows.Next() {
		var m repository.MonthlyCountResult
		if err := rows.Scan(&m.Month, &m.Count); err != nil {
			return nil, fmt.Errorf("scan monthly customers: %w", err)
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

// LoyaltyHistogram buckets customers by loyalty points.
func (r *ReportRepo) LoyaltyHistogram(ctx context.Context, shopID string) ([]repository.LoyaltyBucketResult, error) {
	query := `
		SELECT CASE
		         WHEN loyalty_points < 100 THEN '0-99'
		         WHEN loyalty_points < 500 THEN '100-499'
		         WHEN loyalty_points < 1000 THEN '500-999'
		         WHEN loyalty_points < 5000 THEN '1000-4999'
		         ELSE '5000+'
		       END AS bucket,
		       COUNT(*)
		FROM customers
		WHERE shop_id = $1
		GROUP BY bucket
		ORDER BY MIN(loyalty_points)`
	rows, err := r.pool.Query(ctx, query, shopID)
	if err != nil {
		return nil, fmt.Errorf("loyalty histogram: %w", err)
	}
	defer rows.Close()
	var out []repository.LoyaltyBucketResult
	for rows.Next() {
		var b repository.LoyaltyBucketResult
		if err := rows.Scan(&b.Bucket, &b.Count); err != nil {
			return nil, fmt.Errorf("scan loyalty bucket: %w", err)
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

// InventoryValuation totals current stock value and low-stock items.
func (r *ReportRepo) InventoryValuation(ctx context.Context, shopID string) (*repository.InventoryValuationResult, error) {
	query := `
		SELECT COUNT(*),
		       COUNT(*) FILTER (WHERE current_stock <= min_stock),
		       COALESCE(SUM(current_stock * cost_per_unit), 0)
		FROM inventory
		WHERE shop_id = $1`
	var res repository.InventoryValuationResult
	err := r.pool.QueryRow(ctx, query, shopID).Scan(&res.ItemCount, &res.LowStockCount, &res.TotalValue)
	if err != nil {
		return nil, fmt.Errorf("inventory valuation: %w", err)
	}
	return &res, nil
}

// FinancialSummary reports revenue and tax from completed orders, plus the
// order count across every status.
func (r *ReportRepo) FinancialSummary(ctx context.Context, shopID string, from, to time.Time) (*repository.FinancialSummaryResult, error) {
	query := `
		SELECT COALESCE(SUM(total) FILTER (WHERE status = $2), 0),
		       COALESCE(SUM(tax) FILTER (WHERE status = $2), 0),
		       COALESCE(SUM(subtotal + tax - total) FILTER (WHERE status = $2), 0),
		       COUNT(*),
		       COUNT(*) FILTER (WHERE status = $2)
		FROM orders
		WHERE shop_id = $1 AND created_at >= $3 AND created_at < $4`
	var res repository.FinancialSummaryResult
	err := r.pool.QueryRow(ctx, query, shopID, entity.OrderCompleted, from, to).
		Scan(&res.Revenue, &res.Tax, &res.Discount, &res.TotalOrders, &res.CompletedCount)
	if err != nil {
		return nil, fmt.Errorf("financial summary: %w", err)
	}
	return &res, nil
}

// MonthlyRevenue buckets completed-order revenue per month.
func (r *ReportRepo) MonthlyRevenue(ctx context.Context, shopID string, from, to time.Time) ([]repository.MonthlyRevenueResult, error) {
	query := `
		SELECT date_trunc('month', created_at) AS month, COALESCE(SUM(total), 0)
		FROM orders
		WHERE shop_id = $1 AND status = $2 AND created_at >= $3 AND created_at < $4
		GROUP BY month
		ORDER BY month`
	rows, err := r.pool.Query(ctx, query, shopID, entity.OrderCompleted, from, to)
	if err != nil {
		return nil, fmt.Errorf("monthly revenue: %w", err)
	}
	defer rows.Close()
	var out []repository.MonthlyRevenueResult
	for rows.Next() {
		var m repository.MonthlyRevenueResult
		if err := rows.Scan(&m.Month, &m.Revenue); err != nil {
			return nil, fmt.Errorf("scan monthly revenue: %w", err)
		}
		out = append(out, m)
	}
	return out, rows.Err()
}
