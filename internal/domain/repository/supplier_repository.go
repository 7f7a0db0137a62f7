package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/alexsagar/teantea-api/internal/domain/entity"
)

// SupplierRepository defines the persistence port for Supplier.
type SupplierRepository interface {
	Create(ctx context.Context, supplier *entity.Supplier) error
	GetByID(ctx context.Context, shopID, id string) (*entity.Supplier, error)
	ListByShop(ctx context.Context, shopID string, limit, offset int) ([]*entity.Supplier, error)
	Update(ctx context.Context, supplier *entity.Supplier) error
	Delete(ctx context.Context, shopID, id string) error
	// RecordPurchase bumps total_orders by one, total_amount by amount and sets
	// last_order, atomically. Only the stock-in path calls this.
	RecordPurchase(ctx context.Context, shopID, id string, amount decimal.Decimal, at time.Time) error
}
