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

var _ repository.CustomerRepository = (*CustomerRepo)(nil)

const customerColumns = `id, shop_id, name, phone, email, address, loyalty_points, total_spent, visit_count, preferences, created_at, updated_at`

// CustomerRepo implements CustomerRepository over PostgreSQL.
type CustomerRepo struct {
	pool *pgxpool.Pool
}

// NewCustomerRepository builds the customer persistence adapter.
func NewCustomerRepository(pool *pgxpool.Pool) *CustomerRepo {
	return &CustomerRepo{pool: pool}
}

func scanCustomer(row pgx.Row) (*entity.Customer, error) {
	var c entity.Customer
	err := row.Scan(&c.ID, &c.ShopID, &c.Name, &c.Phone, &c.Email, &c.Address,
		&c.LoyaltyPoints, &c.TotalSpent, &c.VisitCount, &c.Preferences, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan customer: %w", err)
	}
	return &c, nil
}

// Create persists a new customer. ErrDuplicate on a phone already registered
// in the shop.
func (r *CustomerRepo) Create(ctx context.Context, customer *entity.Customer) error {
	query := `
		INSERT INTO customers (` + customerColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.pool.Exec(ctx, query,
		customer.ID, customer.ShopID, customer.Name, customer.Phone, customer.Email,
		customer.Address, customer.LoyaltyPoints, customer.TotalSpent, customer.VisitCount,
		customer.Preferences, customer.CreatedAt, customer.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert customer: %w", err)
	}
	return nil
}

// GetByID fetches a customer within the shop.
func (r *CustomerRepo) GetByID(ctx context.Context, shopID, id string) (*entity.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers WHERE shop_id = $1 AND id = $2`
	return scanCustomer(r.pool.QueryRow(ctx, query, shopID, id))
}

// ListByShop lists customers, optionally filtered by a name/phone search term.
func (r *CustomerRepo) ListByShop(ctx context.Context, shopID, search string, limit, offset int) ([]*entity.Customer, error) {
	query := `
		SELECT ` + customerColumns + ` FROM customers
		WHERE shop_id = $1 AND ($2 = '' OR name ILIKE '%' || $2 || '%' OR phone LIKE '%' || $2 || '%')
		ORDER BY created_at DESC LIMIT $3 OFFSET $4`
	rows, err := r.pool.Query(ctx, query, shopID, search, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	defer rows.Close()
	var list []*entity.Customer
	for rows.Next() {
		c, err := scanCustomer(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

// Update updates a customer's profile.
func (r *CustomerRepo) Update(ctx context.Context, customer *entity.Customer) error {
	query := `
		UPDATE customers
		SET name = $3, phone = $4, email = $5, address = $6, preferences = $7, updated_at = $8
		WHERE shop_id = $1 AND id = $2`
	cmd, err := r.pool.Exec(ctx, query,
		customer.ShopID, customer.ID, customer.Name, customer.Phone, customer.Email,
		customer.Address, customer.Preferences, customer.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update customer: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete removes a customer.
func (r *CustomerRepo) Delete(ctx context.Context, shopID, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM customers WHERE shop_id = $1 AND id = $2`, shopID, id)
	if err != nil {
		return fmt.Errorf("delete customer: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// AdjustLoyaltyPoints applies a signed delta atomically. The WHERE guard keeps
// the balance non-negative: a subtract beyond the balance matches no row and
// leaves the points untouched.
func (r *CustomerRepo) AdjustLoyaltyPoints(ctx context.Context, shopID, id string, delta int) (*entity.Customer, error) {
	query := `
		UPDATE customers
		SET loyalty_points = loyalty_points + $3, updated_at = now()
		WHERE shop_id = $1 AND id = $2 AND loyalty_points + $3 >= 0
		RETURNING ` + customerColumns
	c, err := scanCustomer(r.pool.QueryRow(ctx, query, shopID, id, delta))
	if err != nil {
		return nil, fmt.Errorf("adjust loyalty points: %w", err)
	}
	if c == nil {
		// Either the customer does not exist in this shop or the guard failed;
		// distinguish so the caller can report the right error.
		existing, err := r.GetByID(ctx, shopID, id)
		if err != nil {
			return nil, err
		}
		if existing == nil {
			return nil, domain.ErrNotFound
		}
		return nil, domain.ErrInsufficientPoints
	}
	return c, nil
}
