package repository

import (
	"context"

	"github.com/alexsagar/teantea-api/internal/domain/entity"
)

// TableRepository defines the persistence port for dining tables.
type TableRepository interface {
	// Create returns domain.ErrDuplicate when the table number is taken.
	Create(ctx context.Context, table *entity.Table) error
	GetByID(ctx context.Context, shopID, id string) (*entity.Table, error)
	ListByShop(ctx context.Context, shopID, status string) ([]*entity.Table, error)
	Update(ctx context.Context, table *entity.Table) error
	Delete(ctx context.Context, shopID, id string) error
	SetStatus(ctx context.Context, shopID, id, status string) error
	// SetCurrentOrder links/unlinks the table's active order (nil clears it).
	SetCurrentOrder(ctx context.Context, shopID, id string, orderID *string) error
	SetReservation(ctx context.Context, shopID, id string, res *entity.Reservation) error
}
