package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderItemRequest one requested order line. Price is ignored on input; the
// current menu price is snapshotted server-side.
type OrderItemRequest struct {
	MenuItemID          string `json:"menuItem" validate:"required"`
	Quantity            int    `json:"quantity" validate:"required,min=1"`
	SpecialInstructions string `json:"specialInstructions"`
}

// CreateOrderRequest input to create an order.
type CreateOrderRequest struct {
	Items         []OrderItemRequest `json:"items" validate:"required,min=1"`
	CustomerID    *string            `json:"customerId"`
	TableID       *string            `json:"tableId"`
	OrderType     string             `json:"orderType" validate:"required"`
	PaymentMethod string             `json:"paymentMethod" validate:"required"`
	Notes         string             `json:"notes"`
}

// UpdateOrderRequest partial order edit. Replacing Items recomputes totals
// from the current menu prices.
type UpdateOrderRequest struct {
	Items         []OrderItemRequest `json:"items"`
	CustomerID    *string            `json:"customerId"`
	PaymentMethod *string            `json:"paymentMethod"`
	PaymentStatus *string            `json:"paymentStatus"`
	Notes         *string            `json:"notes"`
}

// UpdateOrderStatusRequest sets the order status.
type UpdateOrderStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// OrderItemResponse one order line as stored.
type OrderItemResponse struct {
	MenuItemID          string          `json:"menuItemId"`
	Name                string          `json:"name"`
	Quantity            int             `json:"quantity"`
	Price               decimal.Decimal `json:"price"`
	Subtotal            decimal.Decimal `json:"subtotal"`
	SpecialInstructions string          `json:"specialInstructions,omitempty"`
}

// OrderResponse order output.
type OrderResponse struct {
	ID            string              `json:"id"`
	ShopID        string              `json:"shopId"`
	OrderNumber   string              `json:"orderNumber"`
	CustomerID    *string             `json:"customerId"`
	Items         []OrderItemResponse `json:"items"`
	TableID       *string             `json:"tableId"`
	OrderType     string              `json:"orderType"`
	Status        string              `json:"status"`
	Subtotal      decimal.Decimal     `json:"subtotal"`
	Tax           decimal.Decimal     `json:"tax"`
	Total         decimal.Decimal     `json:"total"`
	PaymentMethod string              `json:"paymentMethod"`
	PaymentStatus string              `json:"paymentStatus"`
	StaffID       string              `json:"staffId"`
	Notes         string              `json:"notes,omitempty"`
	CreatedAt     time.Time           `json:"createdAt"`
	UpdatedAt     time.Time           `json:"updatedAt"`
}

// OrderListResponse paginated order listing.
type OrderListResponse struct {
	Items []OrderResponse `json:"items"`
	Page  PageResponse    `json:"page"`
}
