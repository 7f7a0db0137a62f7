package usecase

import (
	"context"
	"time"

	"github.com/alexsagar/teantea-api/internal/application/dto"
	"github.com/alexsagar/teantea-api/internal/domain"
	"github.com/alexsagar/teantea-api/internal/domain/entity"
	"github.com/alexsagar/teantea-api/internal/domain/repository"
)

// StaffUseCase staff listing and administration. Creation lives in the auth
// usecase (it hashes the password); removal is deactivation, never a row delete.
type StaffUseCase struct {
	repo repository.UserRepository
}

// NewStaffUseCase builds the usecase.
func NewStaffUseCase(repo repository.UserRepository) *StaffUseCase {
	return &StaffUseCase{repo: repo}
}

// GetByID returns one staff member.
func (uc *StaffUseCase) GetByID(ctx context.Context, shopID, id string) (*dto.UserResponse, error) {
	user, err := uc.repo.GetByID(ctx, shopID, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrNotFound
	}
	return toStaffResponse(user), nil
}

// List lists the shop's staff.
func (uc *StaffUseCase) List(ctx context.Context, shopID string, page dto.PageRequest) (*dto.UserListResponse, error) {
	page.DefaultPage()
	list, err := uc.repo.ListByShop(ctx, shopID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.UserResponse, 0, len(list))
	for _, u := range list {
		items = append(items, *toStaffResponse(u))
	}
	return &dto.UserListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

// Update edits a staff member's role and profile fields.
func (uc *StaffUseCase) Update(ctx context.Context, shopID, id string, in dto.UpdateStaffRequest) (*dto.UserResponse, error) {
	user, err := uc.repo.GetByID(ctx, shopID, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		user.Name = *in.Name
	}
	if in.Role != nil {
		if !entity.ValidRole(*in.Role) {
			return nil, domain.ErrInvalidInput
		}
		user.Role = *in.Role
	}
	if in.Phone != nil {
		user.Phone = *in.Phone
	}
	if in.Address != nil {
		user.Address = *in.Address
	}
	if in.IsActive != nil {
		user.IsActive = *in.IsActive
	}
	user.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, user); err != nil {
		return nil, err
	}
	return toStaffResponse(user), nil
}

// UpdatePermissions replaces the permission set.
func (uc *StaffUseCase) UpdatePermissions(ctx context.Context, shopID, id string, perms entity.PermissionSet) (*dto.UserResponse, error) {
	if perms == nil {
		return nil, domain.ErrInvalidInput
	}
	if err := uc.repo.UpdatePermissions(ctx, shopID, id, perms); err != nil {
		return nil, err
	}
	return uc.GetByID(ctx, shopID, id)
}

// Deactivate soft-deletes a staff member. Their tokens stop working at the
// next request because the middleware reloads the user.
func (uc *StaffUseCase) Deactivate(ctx context.Context, shopID, id string) error {
	return uc.repo.Deactivate(ctx, shopID, id)
}

func toStaffResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:          u.ID,
		ShopID:      u.ShopID,
		Name:        u.Name,
		Email:       u.Email,
		Role:        u.Role,
		Permissions: u.Permissions,
		IsActive:    u.IsActive,
		Phone:       u.Phone,
		Address:     u.Address,
		CreatedAt:   u.CreatedAt,
		UpdatedAt:   u.UpdatedAt,
	}
}
