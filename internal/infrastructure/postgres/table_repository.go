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

var _ repository.TableRepository = (*TableRepo)(nil)

const tableColumns = `id, shop_id, number, capacity, status, location, current_order_id, reservation, created_at, updated_at`

// TableRepo implements TableRepository over PostgreSQL. The reservation is a
// JSONB blob; NULL means no reservation.
type TableRepo struct {
	pool *pgxpool.Pool
}

// NewTableRepository builds the table persistence adapter.
func NewTableRepository(pool *pgxpool.Pool) *TableRepo {
	return &TableRepo{pool: pool}
}

func scanTable(row pgx.Row) (*entity.Table, error) {
	var t entity.Table
	err := row.Scan(&t.ID, &t.ShopID, &t.Number, &t.Capacity, &t.Status, &t.Location,
		&t.CurrentOrderID, &t.Reservation, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan table: %w", err)
	}
	return &t, nil
}

// Create persists a new table. ErrDuplicate on a taken number.
func (r *TableRepo) Create(ctx context.Context, table *entity.Table) error {
	query := `
		INSERT INTO tables (` + tableColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.pool.Exec(ctx, query,
		table.ID, table.ShopID, table.Number, table.Capacity, table.Status, table.Location,
		table.CurrentOrderID, table.Reservation, table.CreatedAt, table.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert table: %w", err)
	}
	return nil
}

// GetByID fetches a table within the shop.
func (r *TableRepo) GetByID(ctx context.Context, shopID, id string) (*entity.Table, error) {
	query := `SELECT ` + tableColumns + ` FROM tables WHERE shop_id = $1 AND id = $2`
	return scanTable(r.pool.QueryRow(ctx, query, shopID, id))
}

// ListByShop lists tables, optionally filtered by status.
func (r *TableRepo) ListByShop(ctx context.Context, shopID, status string) ([]*entity.Table, error) {
	query := `
		SELECT ` + tableColumns + ` FROM tables
		WHERE shop_id = $1 AND ($2 = '' OR status = $2)
		ORDER BY number`
	rows, err := r.pool.Query(ctx, query, shopID, status)
	if err != nil {
		return nil, fmt.Errorf("list tables: %w", err)
	}
	defer rows.Close()
	var list []*entity.Table
	for rows.Next() {
		t, err := scanTable(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, t)
	}
	return list, rows.Err()
}

// Update updates a table's fields.
func (r *TableRepo) Update(ctx context.Context, table *entity.Table) error {
	query := `
		UPDATE tables
		SET number = $3, capacity = $4, status = $5, location = $6, updated_at = $7
		WHERE shop_id = $1 AND id = $2`
	cmd, err := r.pool.Exec(ctx, query,
		table.ShopID, table.ID, table.Number, table.Capacity, table.Status, table.Location,
		table.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update table: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete removes a table.
func (r *TableRepo) Delete(ctx context.Context, shopID, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM tables WHERE shop_id = $1 AND id = $2`, shopID, id)
	if err != nil {
		return fmt.Errorf("delete table: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// SetStatus updates only the status.
func (r *TableRepo) SetStatus(ctx context.Context, shopID, id, status string) error {
	query := `UPDATE tables SET status = $3, updated_at = now() WHERE shop_id = $1 AND id = $2`
	cmd, err := r.pool.Exec(ctx, query, shopID, id, status)
	if err != nil {
		return fmt.Errorf("set table status: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// SetCurrentOrder links or clears the table's active order.
func (r *TableRepo) SetCurrentOrder(ctx context.Context, shopID, id string, orderID *string) error {
	query := `UPDATE tables SET current_order_id = $3, updated_at = now() WHERE shop_id = $1 AND id = $2`
	cmd, err := r.pool.Exec(ctx, query, shopID, id, orderID)
	if err != nil {
		return fmt.Errorf("set table current order: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// SetReservation stores or clears (nil) the reservation blob.
func (r *TableRepo) SetReservation(ctx context.Context, shopID, id string, res *entity.Reservation) error {
	query := `UPDATE tables SET reservation = $3, updated_at = now() WHERE shop_id = $1 AND id = $2`
	cmd, err := r.pool.Exec(ctx, query, shopID, id, res)
	if err != nil {
		return fmt.Errorf("set table reservation: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
