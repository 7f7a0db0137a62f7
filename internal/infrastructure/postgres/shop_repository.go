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

var _ repository.ShopRepository = (*ShopRepo)(nil)

// ShopRepo implements ShopRepository over PostgreSQL.
type ShopRepo struct {
	pool *pgxpool.Pool
}

// NewShopRepository builds the shop persistence adapter.
func NewShopRepository(pool *pgxpool.Pool) *ShopRepo {
	return &ShopRepo{pool: pool}
}

// Create persists a new shop. ErrDuplicate signals a taken 4-digit code.
func (r *ShopRepo) Create(ctx context.Context, shop *entity.Shop) error {
	query := `
		INSERT INTO shops (id, name, address, created_at)
		VALUES ($1, $2, $3, $4)`
	_, err := r.pool.Exec(ctx, query, shop.ID, shop.Name, shop.Address, shop.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert shop: %w", err)
	}
	return nil
}

// GetByID fetches a shop by its 4-digit code.
func (r *ShopRepo) GetByID(ctx context.Context, id string) (*entity.Shop, error) {
	query := `SELECT id, name, address, created_at FROM shops WHERE id = $1`
	var s entity.Shop
	err := r.pool.QueryRow(ctx, query, id).Scan(&s.ID, &s.Name, &s.Address, &s.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get shop: %w", err)
	}
	return &s, nil
}

// Update updates the shop profile.
func (r *ShopRepo) Update(ctx context.Context, shop *entity.Shop) error {
	query := `UPDATE shops SET name = $2, address = $3 WHERE id = $1`
	_, err := r.pool.Exec(ctx, query, shop.ID, shop.Name, shop.Address)
	if err != nil {
		return fmt.Errorf("update shop: %w", err)
	}
	return nil
}
