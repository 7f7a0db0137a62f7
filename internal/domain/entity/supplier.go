package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// SupplierProduct is a catalog entry offered by a supplier.
type SupplierProduct struct {
	Name         string          `json:"name"`
	Category     string          `json:"category"`
	PricePerUnit decimal.Decimal `json:"pricePerUnit"`
	Unit         string          `json:"unit"`
}

// Supplier contact and purchase statistics. TotalOrders, TotalAmount and
// LastOrder are mutated only by stock-in creation.
type Supplier struct {
	ID            string
	ShopID        string
	Name          string
	ContactPerson string
	Phone         string
	Email         string
	Address       string
	Products      []SupplierProduct
	TotalOrders   int
	TotalAmount   decimal.Decimal
	LastOrder     *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
