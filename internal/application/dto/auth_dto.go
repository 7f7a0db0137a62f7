package dto

import "time"

// SignupRequest registers a shop together with its first admin user.
type SignupRequest struct {
	ShopName string `json:"shopName" validate:"required,min=1,max=200"`
	Address  string `json:"address"`
	Name     string `json:"ownerName" validate:"required,min=1,max=200"`
	Email    string `json:"ownerEmail" validate:"required,email"`
	Password string `json:"ownerPassword" validate:"required,min=6"`
}

// LoginRequest authenticates a user of one shop. The shop code scopes the
// email lookup; the same email may exist in different shops.
type LoginRequest struct {
	ShopID   string `json:"shopId" validate:"required,len=4"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// AuthResponse successful signup/login payload.
type AuthResponse struct {
	Token string        `json:"token"`
	User  UserResponse  `json:"user"`
	Shop  *ShopResponse `json:"shop,omitempty"`
}

// ShopResponse shop output.
type ShopResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Address   string    `json:"address"`
	CreatedAt time.Time `json:"createdAt"`
}

// UpdateProfileRequest self-service profile edit.
type UpdateProfileRequest struct {
	Name    *string `json:"name" validate:"omitempty,min=1,max=200"`
	Phone   *string `json:"phone"`
	Address *string `json:"address"`
}

// ChangePasswordRequest self-service password change.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"required,min=6"`
}
