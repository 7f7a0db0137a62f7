package repository

import (
	"context"
	"time"

	"github.com/alexsagar/teantea-api/internal/domain/entity"
)

// StockInRepository defines the persistence port for the immutable goods-receipt
// records. There is no update or delete: receipts are append-only.
type StockInRepository interface {
	Create(ctx context.Context, rec *entity.StockIn) error
	GetByID(ctx context.Context, shopID, id string) (*entity.StockIn, error)
	ListByShop(ctx context.Context, shopID string, from, to time.Time, limit, offset int) ([]*entity.StockIn, error)
}
