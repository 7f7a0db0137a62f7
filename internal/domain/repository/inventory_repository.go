package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/alexsagar/teantea-api/internal/domain/entity"
)

// InventoryRepository defines the persistence port for Inventory items.
type InventoryRepository interface {
	Create(ctx context.Context, item *entity.Inventory) error
	GetByID(ctx context.Context, shopID, id string) (*entity.Inventory, error)
	ListByShop(ctx context.Context, shopID, category string, limit, offset int) ([]*entity.Inventory, error)
	ListLowStock(ctx context.Context, shopID string) ([]*entity.Inventory, error)
	Update(ctx context.Context, item *entity.Inventory) error
	Delete(ctx context.Context, shopID, id string) error
	// AdjustStock applies a signed delta as an atomic field update
	// (current_stock = current_stock + delta), never read-then-write.
	// A negative delta exceeding the current stock fails with
	// domain.ErrInsufficientStock and changes nothing. When touchRestocked is
	// true the last_restocked timestamp is refreshed. Returns the item after
	// the mutation.
	AdjustStock(ctx context.Context, shopID, id string, delta decimal.Decimal, touchRestocked bool) (*entity.Inventory, error)
}
