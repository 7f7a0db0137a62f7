package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order statuses. Any status is reachable via an explicit update; cancelled is
// terminal except for the permanent-delete operation.
const (
	OrderPending   = "pending"
	OrderConfirmed = "confirmed"
	OrderPreparing = "preparing"
	OrderReady     = "ready"
	OrderServed    = "served"
	OrderCompleted = "completed"
	OrderCancelled = "cancelled"
)

// Order types.
const (
	OrderDineIn   = "dine-in"
	OrderTakeaway = "takeaway"
	OrderDelivery = "delivery"
)

// Payment methods.
const (
	PaymentCash   = "cash"
	PaymentCard   = "card"
	PaymentQR     = "qr"
	PaymentOnline = "online"
)

// Payment statuses.
const (
	PaymentPending  = "pending"
	PaymentPaid     = "paid"
	PaymentRefunded = "refunded"
)

// ValidOrderStatus reports whether s is a known order status.
func ValidOrderStatus(s string) bool {
	switch s {
	case OrderPending, OrderConfirmed, OrderPreparing, OrderReady,
		OrderServed, OrderCompleted, OrderCancelled:
		return true
	}
	return false
}

// ValidOrderType reports whether s is a known order type.
func ValidOrderType(s string) bool {
	switch s {
	case OrderDineIn, OrderTakeaway, OrderDelivery:
		return true
	}
	return false
}

// ValidPaymentMethod reports whether s is a known payment method.
func ValidPaymentMethod(s string) bool {
	switch s {
	case PaymentCash, PaymentCard, PaymentQR, PaymentOnline:
		return true
	}
	return false
}

// OrderItem is one order line. Name and Price are snapshots taken from the
// menu item at create/update time; later menu edits never touch them.
type OrderItem struct {
	MenuItemID          string
	Name                string
	Quantity            int // >= 1
	Price               decimal.Decimal
	SpecialInstructions string
}

// LineTotal returns Price * Quantity.
func (it OrderItem) LineTotal() decimal.Decimal {
	return it.Price.Mul(decimal.NewFromInt(int64(it.Quantity)))
}

// Order is a customer order. Tax is always zero (no tax policy is applied);
// the column exists for forward compatibility, so Total == Subtotal.
type Order struct {
	ID            string
	ShopID        string
	OrderNumber   string // unique per shop, e.g. ORD2608319204
	CustomerID    *string
	Items         []OrderItem
	TableID       *string
	OrderType     string
	Status        string
	Subtotal      decimal.Decimal
	Tax           decimal.Decimal
	Total         decimal.Decimal
	PaymentMethod string
	PaymentStatus string
	StaffID       string
	Notes         string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
