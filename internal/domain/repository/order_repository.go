package repository

import (
	"context"
	"time"

	"github.com/alexsagar/teantea-api/internal/domain/entity"
)

// OrderFilter narrows order listings.
type OrderFilter struct {
	Status    string
	OrderType string
	TableID   string
	From      time.Time
	To        time.Time
}

// OrderRepository defines the persistence port for orders and their lines.
// Implementations write the order row and its items atomically.
type OrderRepository interface {
	// Create returns domain.ErrDuplicate on an order-number collision so the
	// caller can regenerate and retry.
	Create(ctx context.Context, order *entity.Order) error
	GetByID(ctx context.Context, shopID, id string) (*entity.Order, error)
	ListByShop(ctx context.Context, shopID string, filter OrderFilter, limit, offset int) ([]*entity.Order, error)
	// Update replaces the stored fields and lines of the order.
	Update(ctx context.Context, order *entity.Order) error
	UpdateStatus(ctx context.Context, shopID, id, status string) error
	// Delete removes the record permanently. The cancelled-only guard lives in
	// the usecase, not here.
	Delete(ctx context.Context, shopID, id string) error
}
