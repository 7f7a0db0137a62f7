package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Customer profile. Phone is unique per shop. LoyaltyPoints only changes
// through the explicit add/subtract operation.
type Customer struct {
	ID            string
	ShopID        string
	Name          string
	Phone         string
	Email         string
	Address       string
	LoyaltyPoints int // never negative
	TotalSpent    decimal.Decimal
	VisitCount    int
	Preferences   []string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
