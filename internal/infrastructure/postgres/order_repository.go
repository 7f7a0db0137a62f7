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

var _ repository.OrderRepository = (*OrderRepo)(nil)

const orderColumns = `id, shop_id, order_number, customer_id, table_id, order_type, status, subtotal, tax, total, payment_method, payment_status, staff_id, notes, created_at, updated_at`

// OrderRepo implements OrderRepository over PostgreSQL. The order row and its
// lines (order_items) are written in one transaction.
type OrderRepo struct {
	pool *pgxpool.Pool
}

// NewOrderRepository builds the order persistence adapter.
func NewOrderRepository(pool *pgxpool.Pool) *OrderRepo {
	return &OrderRepo{pool: pool}
}

func scanOrder(row pgx.Row) (*entity.Order, error) {
	var o entity.Order
	err := row.Scan(&o.ID, &o.ShopID, &o.OrderNumber, &o.CustomerID, &o.TableID,
		&o.OrderType, &o.Status, &o.Subtotal, &o.Tax, &o.Total, &o.PaymentMethod,
		&o.PaymentStatus, &o.StaffID, &o.Notes, &o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan order: %w", err)
	}
	return &o, nil
}

func insertItems(ctx context.Context, tx pgx.Tx, order *entity.Order) error {
	query := `
		INSERT INTO order_items (order_id, position, menu_item_id, name, quantity, price, special_instructions)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	for i, it := range order.Items {
		if _, err := tx.Exec(ctx, query,
			order.ID, i, it.MenuItemID, it.Name, it.Quantity, it.Price, it.SpecialInstructions,
		); err != nil {
			return fmt.Errorf("insert order item: %w", err)
		}
	}
	return nil
}

// Create persists the order and its lines atomically. ErrDuplicate on an
// order-number collision (unique per shop) so the caller can regenerate.
func (r *OrderRepo) Create(ctx context.Context, order *entity.Order) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	query := `
		INSERT INTO orders (` + orderColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`
	_, err = tx.Exec(ctx, query,
		order.ID, order.ShopID, order.OrderNumber, order.CustomerID, order.TableID,
		order.OrderType, order.Status, order.Subtotal, order.Tax, order.Total,
		order.PaymentMethod, order.PaymentStatus, order.StaffID, order.Notes,
		order.CreatedAt, order.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert order: %w", err)
	}
	if err := insertItems(ctx, tx, order); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

func (r *OrderRepo) loadItems(ctx context.Context, orderIDs []string) (map[string][]entity.OrderItem, error) {
	query := `
		SELECT order_id, menu_item_id, name, quantity, price, special_instructions
		FROM order_items WHERE order_id = ANY($1) ORDER BY order_id, position`
	rows, err := r.pool.Query(ctx, query, orderIDs)
	if err != nil {
		return nil, fmt.Errorf("load order items: %w", err)
	}
	defer rows.Close()
	out := make(map[string][]entity.OrderItem, len(orderIDs))
	for rows.Next() {
		var orderID string
		var it entity.OrderItem
		if err := rows.Scan(&orderID, &it.MenuItemID, &it.Name, &it.Quantity, &it.Price, &it.SpecialInstructions); err != nil {
			return nil, fmt.Errorf("scan order item: %w", err)
		}
		out[orderID] = append(out[orderID], it)
	}
	return out, rows.Err()
}

// GetByID fetches an order with its lines within the shop.
func (r *OrderRepo) GetByID(ctx context.Context, shopID, id string) (*entity.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE shop_id = $1 AND id = $2`
	o, err := scanOrder(r.pool.QueryRow(ctx, query, shopID, id))
	if err != nil || o == nil {
		return o, err
	}
	items, err := r.loadItems(ctx, []string{o.ID})
	if err != nil {
		return nil, err
	}
	o.Items = items[o.ID]
	return o, nil
}

// ListByShop lists orders with filters, newest first, lines populated.
func (r *OrderRepo) ListByShop(ctx context.Context, shopID string, filter repository.OrderFilter, limit, offset int) ([]*entity.Order, error) {
	query := `
		SELECT ` + orderColumns + ` FROM orders
		WHERE shop_id = $1
		  AND ($2 = '' OR status = $2)
		  AND ($3 = '' OR order_type = $3)
		  AND ($4 = '' OR table_id = $4)
		  AND ($5::timestamptz IS NULL OR created_at >= $5)
		  AND ($6::timestamptz IS NULL OR created_at < $6)
		ORDER BY created_at DESC LIMIT $7 OFFSET $8`
	var from, to any
	if !filter.From.IsZero() {
		from = filter.From
	}
	if !filter.To.IsZero() {
		to = filter.To
	}
	var tableID any = filter.TableID
	if filter.TableID == "" {
		tableID = ""
	}
	rows, err := r.pool.Query(ctx, query, shopID, filter.Status, filter.OrderType, tableID, from, to, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()
	var list []*entity.Order
	var ids []string
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, o)
		ids = append(ids, o.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(ids) > 0 {
		items, err := r.loadItems(ctx, ids)
		if err != nil {
			return nil, err
		}
		for _, o := range list {
			o.Items = items[o.ID]
		}
	}
	return list, nil
}

// Update replaces the order's fields and lines in one transaction.
func (r *OrderRepo) Update(ctx context.Context, order *entity.Order) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	query := `
		UPDATE orders
		SET customer_id = $3, table_id = $4, order_type = $5, status = $6, subtotal = $7,
		    tax = $8, total = $9, payment_method = $10, payment_status = $11, notes = $12,
		    updated_at = $13
		WHERE shop_id = $1 AND id = $2`
	cmd, err := tx.Exec(ctx, query,
		order.ShopID, order.ID, order.CustomerID, order.TableID, order.OrderType,
		order.Status, order.Subtotal, order.Tax, order.Total, order.PaymentMethod,
		order.PaymentStatus, order.Notes, order.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update order: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	if _, err := tx.Exec(ctx, `DELETE FROM order_items WHERE order_id = $1`, order.ID); err != nil {
		return fmt.Errorf("clear order items: %w", err)
	}
	if err := insertItems(ctx, tx, order); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// UpdateStatus sets only the status.
func (r *OrderRepo) UpdateStatus(ctx context.Context, shopID, id, status string) error {
	query := `UPDATE orders SET status = $3, updated_at = now() WHERE shop_id = $1 AND id = $2`
	cmd, err := r.pool.Exec(ctx, query, shopID, id, status)
	if err != nil {
		return fmt.Errorf("update order status: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete removes the order; lines go with it (ON DELETE CASCADE).
func (r *OrderRepo) Delete(ctx context.Context, shopID, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM orders WHERE shop_id = $1 AND id = $2`, shopID, id)
	if err != nil {
		return fmt.Errorf("delete order: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
