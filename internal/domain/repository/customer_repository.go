package repository

import (
	"context"

	"github.com/alexsagar/teantea-api/internal/domain/entity"
)

// CustomerRepository defines the persistence port for Customer.
type CustomerRepository interface {
	// Create returns domain.ErrDuplicate when the phone number is already
	// registered in the shop.
	Create(ctx context.Context, customer *entity.Customer) error
	GetByID(ctx context.Context, shopID, id string) (*entity.Customer, error)
	ListByShop(ctx context.Context, shopID, search string, limit, offset int) ([]*entity.Customer, error)
	Update(ctx context.Context, customer *entity.Customer) error
	Delete(ctx context.Context, shopID, id string) error
	// AdjustLoyaltyPoints applies a signed delta atomically. A subtract that
	// would take the balance below zero fails with domain.ErrInsufficientPoints
	// and leaves the balance unchanged.
	AdjustLoyaltyPoints(ctx context.Context, shopID, id string, delta int) (*entity.Customer, error)
}
