package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/alexsagar/teantea-api/internal/domain/entity"
)

// CreateSupplierRequest input to register a supplier.
type CreateSupplierRequest struct {
	Name          string                   `json:"name" validate:"required,min=1,max=200"`
	ContactPerson string                   `json:"contactPerson"`
	Phone         string                   `json:"phone"`
	Email         string                   `json:"email" validate:"omitempty,email"`
	Address       string                   `json:"address"`
	Products      []entity.SupplierProduct `json:"products"`
}

// UpdateSupplierRequest partial supplier edit. Purchase statistics move only
// through stock-in.
type UpdateSupplierRequest struct {
	Name          *string                  `json:"name" validate:"omitempty,min=1,max=200"`
	ContactPerson *string                  `json:"contactPerson"`
	Phone         *string                  `json:"phone"`
	Email         *string                  `json:"email" validate:"omitempty,email"`
	Address       *string                  `json:"address"`
	Products      []entity.SupplierProduct `json:"products"`
}

// SupplierResponse supplier output.
type SupplierResponse struct {
	ID            string                   `json:"id"`
	ShopID        string                   `json:"shopId"`
	Name          string                   `json:"name"`
	ContactPerson string                   `json:"contactPerson,omitempty"`
	Phone         string                   `json:"phone,omitempty"`
	Email         string                   `json:"email,omitempty"`
	Address       string                   `json:"address,omitempty"`
	Products      []entity.SupplierProduct `json:"products"`
	TotalOrders   int                      `json:"totalOrders"`
	TotalAmount   decimal.Decimal          `json:"totalAmount"`
	LastOrder     *time.Time               `json:"lastOrder"`
	CreatedAt     time.Time                `json:"createdAt"`
	UpdatedAt     time.Time                `json:"updatedAt"`
}

// SupplierListResponse paginated supplier listing.
type SupplierListResponse struct {
	Items []SupplierResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}
