package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/alexsagar/teantea-api/internal/domain"
	"github.com/alexsagar/teantea-api/internal/domain/entity"
	"github.com/alexsagar/teantea-api/internal/domain/repository"
)

var _ repository.MenuRepository = (*MenuRepo)(nil)

const menuColumns = `id, shop_id, name, category, price, cost, is_available, ingredients, preparation_time, created_at, updated_at`

// MenuRepo implements MenuRepository over PostgreSQL. Ingredients are stored
// as JSONB; they reference inventory items but never touch stock.
type MenuRepo struct {
	pool *pgxpool.Pool
}

// NewMenuRepository builds the menu persistence adapter.
func NewMenuRepository(pool *pgxpool.Pool) *MenuRepo {
	return &MenuRepo{pool: pool}
}

func scanMenuItem(row pgx.Row) (*entity.MenuItem, error) {
	var m entity.MenuItem
	err := row.Scan(&m.ID, &m.ShopID, &m.Name, &m.Category, &m.Price, &m.Cost,
		&m.IsAvailable, &m.Ingredients, &m.PreparationTime, &m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan menu item: %w", err)
	}
	return &m, nil
}

// Create persists a new menu item.
func (r *MenuRepo) Create(ctx context.Context, item *entity.MenuItem) error {
	query := `
		INSERT INTO menu_items (` + menuColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.pool.Exec(ctx, query,
		item.ID, item.ShopID, item.Name, item.Category, item.Price, item.Cost,
		item.IsAvailable, item.Ingredients, item.PreparationTime, item.CreatedAt, item.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert menu item: %w", err)
	}
	return nil
}

// GetByID fetches a menu item within the shop.
func (r *MenuRepo) GetByID(ctx context.Context, shopID, id string) (*entity.MenuItem, error) {
	query := `SELECT ` + menuColumns + ` FROM menu_items WHERE shop_id = $1 AND id = $2`
	return scanMenuItem(r.pool.QueryRow(ctx, query, shopID, id))
}

// ListByShop lists menu items with optional category/availability filters.
func (r *MenuRepo) ListByShop(ctx context.Context, shopID string, filter repository.MenuFilter, limit, offset int) ([]*entity.MenuItem, error) {
	query := `
		SELECT ` + menuColumns + ` FROM menu_items
		WHERE shop_id = $1
		  AND ($2 = '' OR category = $2)
		  AND (NOT $3 OR is_available)
		ORDER BY category, name LIMIT $4 OFFSET $5`
	rows, err := r.pool.Query(ctx, query, shopID, filter.Category, filter.OnlyAvailable, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list menu items: %w", err)
	}
	defer rows.Close()
	var list []*entity.MenuItem
	for rows.Next() {
		m, err := scanMenuItem(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, m)
	}
	return list, rows.Err()
}

// Update updates a menu item.
func (r *MenuRepo) Update(ctx context.Context, item *entity.MenuItem) error {
	query := `
		UPDATE menu_items
		SET name = $3, category = $4, price = $5, cost = $6, is_available = $7,
		    ingredients = $8, preparation_time = $9, updated_at = $10
		WHERE shop_id = $1 AND id = $2`
	cmd, err := r.pool.Exec(ctx, query,
		item.ShopID, item.ID, item.Name, item.Category, item.Price, item.Cost,
		item.IsAvailable, item.Ingredients, item.PreparationTime, item.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update menu item: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// SetAvailability flips the is_available flag.
func (r *MenuRepo) SetAvailability(ctx context.Context, shopID, id string, available bool) error {
	query := `UPDATE menu_items SET is_available = $3, updated_at = now() WHERE shop_id = $1 AND id = $2`
	cmd, err := r.pool.Exec(ctx, query, shopID, id, available)
	if err != nil {
		return fmt.Errorf("set menu availability: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete removes a menu item. Historical order lines keep their snapshots.
func (r *MenuRepo) Delete(ctx context.Context, shopID, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM menu_items WHERE shop_id = $1 AND id = $2`, shopID, id)
	if err != nil {
		return fmt.Errorf("delete menu item: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
