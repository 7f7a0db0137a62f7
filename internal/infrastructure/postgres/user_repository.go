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

var _ repository.UserRepository = (*UserRepo)(nil)

const userColumns = `id, shop_id, name, email, password_hash, role, permissions, is_active, phone, address, created_at, updated_at`

// UserRepo implements UserRepository over PostgreSQL. Every predicate conjoins
// shop_id, so a foreign tenant's row is never reachable.
type UserRepo struct {
	pool *pgxpool.Pool
}

// NewUserRepository builds the user persistence adapter.
func NewUserRepository(pool *pgxpool.Pool) *UserRepo {
	return &UserRepo{pool: pool}
}

func scanUser(row pgx.Row) (*entity.User, error) {
	var u entity.User
	err := row.Scan(&u.ID, &u.ShopID, &u.Name, &u.Email, &u.PasswordHash, &u.Role,
		&u.Permissions, &u.IsActive, &u.Phone, &u.Address, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan user: %w", err)
	}
	return &u, nil
}

// Create persists a new staff user. ErrEmailAlreadyExists on a duplicate email
// within the shop.
func (r *UserRepo) Create(ctx context.Context, user *entity.User) error {
	query := `
		INSERT INTO users (` + userColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.pool.Exec(ctx, query,
		user.ID, user.ShopID, user.Name, user.Email, user.PasswordHash, user.Role,
		user.Permissions, user.IsActive, user.Phone, user.Address, user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// GetByID fetches a user within the shop.
func (r *UserRepo) GetByID(ctx context.Context, shopID, id string) (*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE shop_id = $1 AND id = $2`
	return scanUser(r.pool.QueryRow(ctx, query, shopID, id))
}

// GetByEmail fetches a user by email within the shop.
func (r *UserRepo) GetByEmail(ctx context.Context, shopID, email string) (*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE shop_id = $1 AND email = $2`
	return scanUser(r.pool.QueryRow(ctx, query, shopID, email))
}

// ListByShop lists staff with pagination.
func (r *UserRepo) ListByShop(ctx context.Context, shopID string, limit, offset int) ([]*entity.User, error) {
	query := `
		SELECT ` + userColumns + ` FROM users
		WHERE shop_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.pool.Query(ctx, query, shopID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()
	var list []*entity.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, u)
	}
	return list, rows.Err()
}

// Update updates a user's profile fields and role.
func (r *UserRepo) Update(ctx context.Context, user *entity.User) error {
	query := `
		UPDATE users
		SET name = $3, email = $4, password_hash = $5, role = $6, is_active = $7,
		    phone = $8, address = $9, updated_at = $10
		WHERE shop_id = $1 AND id = $2`
	cmd, err := r.pool.Exec(ctx, query,
		user.ShopID, user.ID, user.Name, user.Email, user.PasswordHash, user.Role,
		user.IsActive, user.Phone, user.Address, user.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("update user: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// UpdatePermissions replaces the permission set of a user.
func (r *UserRepo) UpdatePermissions(ctx context.Context, shopID, id string, perms entity.PermissionSet) error {
	query := `UPDATE users SET permissions = $3, updated_at = now() WHERE shop_id = $1 AND id = $2`
	cmd, err := r.pool.Exec(ctx, query, shopID, id, perms)
	if err != nil {
		return fmt.Errorf("update user permissions: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Deactivate soft-deletes a user.
func (r *UserRepo) Deactivate(ctx context.Context, shopID, id string) error {
	query := `UPDATE users SET is_active = false, updated_at = now() WHERE shop_id = $1 AND id = $2`
	cmd, err := r.pool.Exec(ctx, query, shopID, id)
	if err != nil {
		return fmt.Errorf("deactivate user: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
