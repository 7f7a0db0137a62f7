package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/alexsagar/teantea-api/internal/domain"
	"github.com/alexsagar/teantea-api/internal/domain/entity"
	"github.com/alexsagar/teantea-api/internal/domain/repository"
)

var _ repository.InventoryRepository = (*InventoryRepo)(nil)

const inventoryColumns = `id, shop_id, name, category, current_stock, min_stock, max_stock, unit, cost_per_unit, supplier_id, expiry_date, batch_number, location, last_restocked, created_at, updated_at`

// InventoryRepo implements InventoryRepository over PostgreSQL (usable with
// pool or tx: stock-in runs it inside a transaction).
type InventoryRepo struct {
	q Querier
}

// NewInventoryRepository builds the inventory persistence adapter. Pass pool or tx.
func NewInventoryRepository(q Querier) *InventoryRepo {
	return &InventoryRepo{q: q}
}

func scanInventory(row pgx.Row) (*entity.Inventory, error) {
	var i entity.Inventory
	err := row.Scan(&i.ID, &i.ShopID, &i.Name, &i.Category, &i.CurrentStock, &i.MinStock,
		&i.MaxStock, &i.Unit, &i.CostPerUnit, &i.SupplierID, &i.ExpiryDate, &i.BatchNumber,
		&i.Location, &i.LastRestocked, &i.CreatedAt, &i.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan inventory item: %w", err)
	}
	return &i, nil
}

// Create persists a new inventory item.
func (r *InventoryRepo) Create(ctx context.Context, item *entity.Inventory) error {
	query := `
		INSERT INTO inventory (` + inventoryColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`
	_, err := r.q.Exec(ctx, query,
		item.ID, item.ShopID, item.Name, item.Category, item.CurrentStock, item.MinStock,
		item.MaxStock, item.Unit, item.CostPerUnit, item.SupplierID, item.ExpiryDate,
		item.BatchNumber, item.Location, item.LastRestocked, item.CreatedAt, item.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert inventory item: %w", err)
	}
	return nil
}

// GetByID fetches an inventory item within the shop.
func (r *InventoryRepo) GetByID(ctx context.Context, shopID, id string) (*entity.Inventory, error) {
	query := `SELECT ` + inventoryColumns + ` FROM inventory WHERE shop_id = $1 AND id = $2`
	return scanInventory(r.q.QueryRow(ctx, query, shopID, id))
}

// ListByShop lists inventory items with an optional category filter.
func (r *InventoryRepo) ListByShop(ctx context.Context, shopID, category string, limit, offset int) ([]*entity.Inventory, error) {
	query := `
		SELECT ` + inventoryColumns + ` FROM inventory
		WHERE shop_id = $1 AND ($2 = '' OR category = $2)
		ORDER BY name LIMIT $3 OFFSET $4`
	rows, err := r.q.Query(ctx, query, shopID, category, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list inventory: %w", err)
	}
	defer rows.Close()
	var list []*entity.Inventory
	for rows.Next() {
		i, err := scanInventory(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, i)
	}
	return list, rows.Err()
}

// ListLowStock lists items at or below their minimum level.
func (r *InventoryRepo) ListLowStock(ctx context.Context, shopID string) ([]*entity.Inventory, error) {
	query := `
		SELECT ` + inventoryColumns + ` FROM inventory
		WHERE shop_id = $1 AND current_stock <= min_stock
		ORDER BY current_stock / NULLIF(min_stock, 0) NULLS FIRST`
	rows, err := r.q.Query(ctx, query, shopID)
	if err != nil {
		return nil, fmt.Errorf("list low stock: %w", err)
	}
	defer rows.Close()
	var list []*entity.Inventory
	for rows.Next() {
		i, err := scanInventory(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, i)
	}
	return list, rows.Err()
}

// Update updates an inventory item's descriptive fields. Stock moves only
// through AdjustStock.
func (r *InventoryRepo) Update(ctx context.Context, item *entity.Inventory) error {
	query := `
		UPDATE inventory
		SET name = $3, category = $4, min_stock = $5, max_stock = $6, unit = $7,
		    cost_per_unit = $8, supplier_id = $9, expiry_date = $10, batch_number = $11,
		    location = $12, updated_at = $13
		WHERE shop_id = $1 AND id = $2`
	cmd, err := r.q.Exec(ctx, query,
		item.ShopID, item.ID, item.Name, item.Category, item.MinStock, item.MaxStock,
		item.Unit, item.CostPerUnit, item.SupplierID, item.ExpiryDate, item.BatchNumber,
		item.Location, item.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update inventory item: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete removes an inventory item.
func (r *InventoryRepo) Delete(ctx context.Context, shopID, id string) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM inventory WHERE shop_id = $1 AND id = $2`, shopID, id)
	if err != nil {
		return fmt.Errorf("delete inventory item: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// AdjustStock applies a signed delta as a single atomic UPDATE. The guard in
// the WHERE clause keeps current_stock non-negative under concurrency; there is
// no read-then-write window for lost updates.
func (r *InventoryRepo) AdjustStock(ctx context.Context, shopID, id string, delta decimal.Decimal, touchRestocked bool) (*entity.Inventory, error) {
	query := `
		UPDATE inventory
		SET current_stock = current_stock + $3,
		    last_restocked = CASE WHEN $4 THEN now() ELSE last_restocked END,
		    updated_at = now()
		WHERE shop_id = $1 AND id = $2 AND current_stock + $3 >= 0
		RETURNING ` + inventoryColumns
	item, err := scanInventory(r.q.QueryRow(ctx, query, shopID, id, delta, touchRestocked))
	if err != nil {
		return nil, fmt.Errorf("adjust stock: %w", err)
	}
	if item == nil {
		existing, err := r.GetByID(ctx, shopID, id)
		if err != nil {
			return nil, err
		}
		if existing == nil {
			return nil, domain.ErrNotFound
		}
		return nil, domain.ErrInsufficientStock
	}
	return item, nil
}
