package repository

import (
	"context"

	"github.com/alexsagar/teantea-api/internal/domain/entity"
)

// UserRepository defines the persistence port for staff users. Every lookup
// conjoins shopID; a foreign tenant's user is indistinguishable from a missing one.
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, shopID, id string) (*entity.User, error)
	GetByEmail(ctx context.Context, shopID, email string) (*entity.User, error)
	ListByShop(ctx context.Context, shopID string, limit, offset int) ([]*entity.User, error)
	Update(ctx context.Context, user *entity.User) error
	UpdatePermissions(ctx context.Context, shopID, id string, perms entity.PermissionSet) error
	// Deactivate is the soft delete (is_active=false).
	Deactivate(ctx context.Context, shopID, id string) error
}
