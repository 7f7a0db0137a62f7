package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/alexsagar/teantea-api/internal/domain/entity"
)

// CreateMenuItemRequest input to create a menu item.
type CreateMenuItemRequest struct {
	Name            string              `json:"name" validate:"required,min=1,max=200"`
	Category        string              `json:"category" validate:"required"`
	Price           decimal.Decimal     `json:"price"`
	Cost            decimal.Decimal     `json:"cost"`
	IsAvailable     *bool               `json:"isAvailable"`
	Ingredients     []entity.Ingredient `json:"ingredients"`
	PreparationTime int                 `json:"preparationTime"`
}

// UpdateMenuItemRequest partial menu item edit.
type UpdateMenuItemRequest struct {
	Name            *string             `json:"name" validate:"omitempty,min=1,max=200"`
	Category        *string             `json:"category"`
	Price           *decimal.Decimal    `json:"price"`
	Cost            *decimal.Decimal    `json:"cost"`
	IsAvailable     *bool               `json:"isAvailable"`
	Ingredients     []entity.Ingredient `json:"ingredients"`
	PreparationTime *int                `json:"preparationTime"`
}

// SetAvailabilityRequest toggles an item on or off the menu.
type SetAvailabilityRequest struct {
	IsAvailable bool `json:"isAvailable"`
}

// MenuItemResponse menu item output.
type MenuItemResponse struct {
	ID              string              `json:"id"`
	ShopID          string              `json:"shopId"`
	Name            string              `json:"name"`
	Category        string              `json:"category"`
	Price           decimal.Decimal     `json:"price"`
	Cost            decimal.Decimal     `json:"cost"`
	IsAvailable     bool                `json:"isAvailable"`
	Ingredients     []entity.Ingredient `json:"ingredients"`
	PreparationTime int                 `json:"preparationTime"`
	CreatedAt       time.Time           `json:"createdAt"`
	UpdatedAt       time.Time           `json:"updatedAt"`
}

// MenuListResponse paginated menu listing.
type MenuListResponse struct {
	Items []MenuItemResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}
