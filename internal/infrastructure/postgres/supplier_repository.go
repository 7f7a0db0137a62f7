package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/alexsagar/teantea-api/internal/domain"
	"github.com/alexsagar/teantea-api/internal/domain/entity"
	"github.com/alexsagar/teantea-api/internal/domain/repository"
)

var _ repository.SupplierRepository = (*SupplierRepo)(nil)

const supplierColumns = `id, shop_id, name, contact_person, phone, email, address, products, total_orders, total_amount, last_order, created_at, updated_at`

// SupplierRepo implements SupplierRepository over PostgreSQL (usable with pool
// or tx: stock-in updates supplier stats inside a transaction).
type SupplierRepo struct {
	q Querier
}

// NewSupplierRepository builds the supplier persistence adapter. Pass pool or tx.
func NewSupplierRepository(q Querier) *SupplierRepo {
	return &SupplierRepo{q: q}
}

func scanSupplier(row pgx.Row) (*entity.Supplier, error) {
	var s entity.Supplier
	err := row.Scan(&s.ID, &s.ShopID, &s.Name, &s.ContactPerson, &s.Phone, &s.Email,
		&s.Address, &s.Products, &s.TotalOrders, &s.TotalAmount, &s.LastOrder,
		&s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan supplier: %w", err)
	}
	return &s, nil
}

// Create persists a new supplier.
func (r *SupplierRepo) Create(ctx context.Context, supplier *entity.Supplier) error {
	query := `
		INSERT INTO suppliers (` + supplierColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.q.Exec(ctx, query,
		supplier.ID, supplier.ShopID, supplier.Name, supplier.ContactPerson, supplier.Phone,
		supplier.Email, supplier.Address, supplier.Products, supplier.TotalOrders,
		supplier.TotalAmount, supplier.LastOrder, supplier.CreatedAt, supplier.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert supplier: %w", err)
	}
	return nil
}

// GetByID fetches a supplier within the shop.
func (r *SupplierRepo) GetByID(ctx context.Context, shopID, id string) (*entity.Supplier, error) {
	query := `SELECT ` + supplierColumns + ` FROM suppliers WHERE shop_id = $1 AND id = $2`
	return scanSupplier(r.q.QueryRow(ctx, query, shopID, id))
}

// ListByShop lists suppliers with pagination.
func (r *SupplierRepo) ListByShop(ctx context.Context, shopID string, limit, offset int) ([]*entity.Supplier, error) {
	query := `
		SELECT ` + supplierColumns + ` FROM suppliers
		WHERE shop_id = $1 ORDER BY name LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(ctx, query, shopID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list suppliers: %w", err)
	}
	defer rows.Close()
	var list []*entity.Supplier
	for rows.Next() {
		s, err := scanSupplier(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, s)
	}
	return list, rows.Err()
}

// Update updates a supplier's contact fields and catalog. Purchase statistics
// only move through RecordPurchase.
func (r *SupplierRepo) Update(ctx context.Context, supplier *entity.Supplier) error {
	query := `
		UPDATE suppliers
		SET name = $3, contact_person = $4, phone = $5, email = $6, address = $7,
		    products = $8, updated_at = $9
		WHERE shop_id = $1 AND id = $2`
	cmd, err := r.q.Exec(ctx, query,
		supplier.ShopID, supplier.ID, supplier.Name, supplier.ContactPerson, supplier.Phone,
		supplier.Email, supplier.Address, supplier.Products, supplier.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update supplier: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete removes a supplier.
func (r *SupplierRepo) Delete(ctx context.Context, shopID, id string) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM suppliers WHERE shop_id = $1 AND id = $2`, shopID, id)
	if err != nil {
		return fmt.Errorf("delete supplier: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// RecordPurchase bumps the purchase statistics atomically (field-level
// increments, no read-then-write).
func (r *SupplierRepo) RecordPurchase(ctx context.Context, shopID, id string, amount decimal.Decimal, at time.Time) error {
	query := `
		UPDATE suppliers
		SET total_orders = total_orders + 1,
		    total_amount = total_amount + $3,
		    last_order = $4,
		    updated_at = now()
		WHERE shop_id = $1 AND id = $2`
	cmd, err := r.q.Exec(ctx, query, shopID, id, amount, at)
	if err != nil {
		return fmt.Errorf("record supplier purchase: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
