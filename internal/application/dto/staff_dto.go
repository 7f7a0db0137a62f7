package dto

import (
	"time"

	"github.com/alexsagar/teantea-api/internal/domain/entity"
)

// CreateStaffRequest registers a staff member (admin only). Permissions accept
// both legacy wire shapes; entity.PermissionSet normalizes on unmarshal.
type CreateStaffRequest struct {
	Name        string               `json:"name" validate:"required,min=1,max=200"`
	Email       string               `json:"email" validate:"required,email"`
	Password    string               `json:"password" validate:"required,min=6"`
	Role        string               `json:"role" validate:"required"`
	Phone       string               `json:"phone"`
	Address     string               `json:"address"`
	Permissions entity.PermissionSet `json:"permissions"`
}

// UpdateStaffRequest partial staff edit.
type UpdateStaffRequest struct {
	Name     *string `json:"name" validate:"omitempty,min=1,max=200"`
	Role     *string `json:"role"`
	Phone    *string `json:"phone"`
	Address  *string `json:"address"`
	IsActive *bool   `json:"isActive"`
}

// UpdatePermissionsRequest replaces a staff member's permission set.
type UpdatePermissionsRequest struct {
	Permissions entity.PermissionSet `json:"permissions" validate:"required"`
}

// UserResponse staff output. The password hash never leaves the server.
type UserResponse struct {
	ID          string               `json:"id"`
	ShopID      string               `json:"shopId"`
	Name        string               `json:"name"`
	Email       string               `json:"email"`
	Role        string               `json:"role"`
	Permissions entity.PermissionSet `json:"permissions"`
	IsActive    bool                 `json:"isActive"`
	Phone       string               `json:"phone"`
	Address     string               `json:"address"`
	CreatedAt   time.Time            `json:"createdAt"`
	UpdatedAt   time.Time            `json:"updatedAt"`
}

// UserListResponse paginated staff list.
type UserListResponse struct {
	Items []UserResponse `json:"items"`
	Page  PageResponse   `json:"page"`
}
