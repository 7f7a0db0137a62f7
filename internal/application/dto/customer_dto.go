package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateCustomerRequest input to register a customer.
type CreateCustomerRequest struct {
	Name        string   `json:"name" validate:"required,min=1,max=200"`
	Phone       string   `json:"phone" validate:"required"`
	Email       string   `json:"email" validate:"omitempty,email"`
	Address     string   `json:"address"`
	Preferences []string `json:"preferences"`
}

// UpdateCustomerRequest partial customer edit. Loyalty points move only
// through the dedicated loyalty operation.
type UpdateCustomerRequest struct {
	Name        *string  `json:"name" validate:"omitempty,min=1,max=200"`
	Phone       *string  `json:"phone"`
	Email       *string  `json:"email" validate:"omitempty,email"`
	Address     *string  `json:"address"`
	Preferences []string `json:"preferences"`
}

// AdjustLoyaltyRequest adds or subtracts loyalty points.
type AdjustLoyaltyRequest struct {
	Points    int    `json:"points" validate:"required,min=1"`
	Operation string `json:"operation" validate:"required,oneof=add subtract"`
}

// CustomerResponse customer output.
type CustomerResponse struct {
	ID            string          `json:"id"`
	ShopID        string          `json:"shopId"`
	Name          string          `json:"name"`
	Phone         string          `json:"phone"`
	Email         string          `json:"email,omitempty"`
	Address       string          `json:"address,omitempty"`
	LoyaltyPoints int             `json:"loyaltyPoints"`
	TotalSpent    decimal.Decimal `json:"totalSpent"`
	VisitCount    int             `json:"visitCount"`
	Preferences   []string        `json:"preferences"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
}

// CustomerListResponse paginated customer listing.
type CustomerListResponse struct {
	Items []CustomerResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}
