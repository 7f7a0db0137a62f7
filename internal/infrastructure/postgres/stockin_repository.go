package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/alexsagar/teantea-api/internal/domain/entity"
	"github.com/alexsagar/teantea-api/internal/domain/repository"
)

var _ repository.StockInRepository = (*StockInRepo)(nil)

const stockInColumns = `id, shop_id, supplier_id, product_id, quantity, unit, unit_price, total_price, invoice_number, purchase_date, notes, created_by, created_at`

// StockInRepo implements StockInRepository over PostgreSQL (usable with pool
// or tx). Receipts are append-only.
type StockInRepo struct {
	q Querier
}

// NewStockInRepository builds the stock-in persistence adapter. Pass pool or tx.
func NewStockInRepository(q Querier) *StockInRepo {
	return &StockInRepo{q: q}
}

func scanStockIn(row pgx.Row) (*entity.StockIn, error) {
	var s entity.StockIn
	err := row.Scan(&s.ID, &s.ShopID, &s.SupplierID, &s.ProductID, &s.Quantity, &s.Unit,
		&s.UnitPrice, &s.TotalPrice, &s.InvoiceNumber, &s.PurchaseDate, &s.Notes,
		&s.CreatedBy, &s.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan stock-in: %w", err)
	}
	return &s, nil
}

// Create persists a receipt record.
func (r *StockInRepo) Create(ctx context.Context, rec *entity.StockIn) error {
	query := `
		INSERT INTO stock_ins (` + stockInColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.q.Exec(ctx, query,
		rec.ID, rec.ShopID, rec.SupplierID, rec.ProductID, rec.Quantity, rec.Unit,
		rec.UnitPrice, rec.TotalPrice, rec.InvoiceNumber, rec.PurchaseDate, rec.Notes,
		rec.CreatedBy, rec.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert stock-in: %w", err)
	}
	return nil
}

// GetByID fetches a receipt within the shop.
func (r *StockInRepo) GetByID(ctx context.Context, shopID, id string) (*entity.StockIn, error) {
	query := `SELECT ` + stockInColumns + ` FROM stock_ins WHERE shop_id = $1 AND id = $2`
	return scanStockIn(r.q.QueryRow(ctx, query, shopID, id))
}

// ListByShop lists receipts in a purchase-date range.
func (r *StockInRepo) ListByShop(ctx context.Context, shopID string, from, to time.Time, limit, offset int) ([]*entity.StockIn, error) {
	query := `
		SELECT ` + stockInColumns + ` FROM stock_ins
		WHERE shop_id = $1 AND purchase_date BETWEEN $2 AND $3
		ORDER BY purchase_date DESC LIMIT $4 OFFSET $5`
	rows, err := r.q.Query(ctx, query, shopID, from, to, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list stock-ins: %w", err)
	}
	defer rows.Close()
	var list []*entity.StockIn
	for rows.Next() {
		s, err := scanStockIn(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, s)
	}
	return list, rows.Err()
}
