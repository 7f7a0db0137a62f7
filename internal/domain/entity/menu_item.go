package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Ingredient is a reference from a menu item to an inventory item. It is
// informational only: ordering never deducts stock through it.
type Ingredient struct {
	IngredientID string          `json:"ingredientId"`
	Quantity     decimal.Decimal `json:"quantity"`
	Unit         string          `json:"unit"`
}

// MenuItem is a sellable item. Price is read at order time and snapshotted
// into the order line.
type MenuItem struct {
	ID              string
	ShopID          string
	Name            string
	Category        string
	Price           decimal.Decimal // >= 0
	Cost            decimal.Decimal // >= 0
	IsAvailable     bool
	Ingredients     []Ingredient
	PreparationTime int // minutes
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
