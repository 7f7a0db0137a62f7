package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Inventory is a stocked ingredient or supply. CurrentStock never goes below
// zero; the repository enforces that with a guarded atomic update.
type Inventory struct {
	ID            string
	ShopID        string
	Name          string
	Category      string
	CurrentStock  decimal.Decimal // >= 0
	MinStock      decimal.Decimal
	MaxStock      decimal.Decimal
	Unit          string
	CostPerUnit   decimal.Decimal // >= 0
	SupplierID    *string
	ExpiryDate    *time.Time
	BatchNumber   string
	Location      string
	LastRestocked *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// LowStock reports whether the item is at or below its minimum level.
func (i *Inventory) LowStock() bool {
	return i.CurrentStock.Cmp(i.MinStock) <= 0
}
