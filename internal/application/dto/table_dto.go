package dto

import (
	"time"

	"github.com/alexsagar/teantea-api/internal/domain/entity"
)

// CreateTableRequest input to create a dining table.
type CreateTableRequest struct {
	Number   int    `json:"number" validate:"required,min=1"`
	Capacity int    `json:"capacity" validate:"required,min=1"`
	Location string `json:"location"`
}

// UpdateTableRequest partial table edit.
type UpdateTableRequest struct {
	Number   *int    `json:"number" validate:"omitempty,min=1"`
	Capacity *int    `json:"capacity" validate:"omitempty,min=1"`
	Location *string `json:"location"`
}

// UpdateTableStatusRequest sets the table status.
type UpdateTableStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// ReserveTableRequest attaches a reservation. A nil body on the clear route
// removes it.
type ReserveTableRequest struct {
	Customer        string    `json:"customer" validate:"required"`
	ReservationTime time.Time `json:"reservationTime" validate:"required"`
	Duration        int       `json:"duration" validate:"min=1"`
	SpecialRequests string    `json:"specialRequests"`
}

// TableResponse table output.
type TableResponse struct {
	ID             string              `json:"id"`
	ShopID         string              `json:"shopId"`
	Number         int                 `json:"number"`
	Capacity       int                 `json:"capacity"`
	Status         string              `json:"status"`
	Location       string              `json:"location,omitempty"`
	CurrentOrderID *string             `json:"currentOrderId"`
	Reservation    *entity.Reservation `json:"reservation"`
	CreatedAt      time.Time           `json:"createdAt"`
	UpdatedAt      time.Time           `json:"updatedAt"`
}
