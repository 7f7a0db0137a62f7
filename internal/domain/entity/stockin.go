package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// StockIn is an immutable goods-receipt record. Creating one is the only path
// that increments inventory stock and supplier purchase statistics together.
type StockIn struct {
	ID            string
	ShopID        string
	SupplierID    string
	ProductID     string          // inventory item
	Quantity      decimal.Decimal // > 0
	Unit          string
	UnitPrice     decimal.Decimal // >= 0
	TotalPrice    decimal.Decimal // >= 0
	InvoiceNumber string
	PurchaseDate  time.Time
	Notes         string
	CreatedBy     string // acting user
	CreatedAt     time.Time
}
