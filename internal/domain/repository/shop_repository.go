package repository

import (
	"context"

	"github.com/alexsagar/teantea-api/internal/domain/entity"
)

// ShopRepository defines the persistence port for Shop.
type ShopRepository interface {
	// Create persists a new shop. Returns domain.ErrDuplicate when the 4-digit
	// code is already taken, so the caller can retry with a fresh code.
	Create(ctx context.Context, shop *entity.Shop) error
	GetByID(ctx context.Context, id string) (*entity.Shop, error)
	Update(ctx context.Context, shop *entity.Shop) error
}
