package repository

import (
	"context"

	"github.com/alexsagar/teantea-api/internal/domain/entity"
)

// MenuFilter narrows menu listings.
type MenuFilter struct {
	Category      string
	OnlyAvailable bool
}

// MenuRepository defines the persistence port for MenuItem.
type MenuRepository interface {
	Create(ctx context.Context, item *entity.MenuItem) error
	GetByID(ctx context.Context, shopID, id string) (*entity.MenuItem, error)
	ListByShop(ctx context.Context, shopID string, filter MenuFilter, limit, offset int) ([]*entity.MenuItem, error)
	Update(ctx context.Context, item *entity.MenuItem) error
	SetAvailability(ctx context.Context, shopID, id string, available bool) error
	Delete(ctx context.Context, shopID, id string) error
}
