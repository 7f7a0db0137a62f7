package entity

import "time"

// Table statuses.
const (
	TableAvailable   = "available"
	TableOccupied    = "occupied"
	TableReserved    = "reserved"
	TableMaintenance = "maintenance"
)

// ValidTableStatus reports whether s is a known table status.
func ValidTableStatus(s string) bool {
	switch s {
	case TableAvailable, TableOccupied, TableReserved, TableMaintenance:
		return true
	}
	return false
}

// Reservation details attached to a reserved table.
type Reservation struct {
	Customer        string    `json:"customer"`
	ReservationTime time.Time `json:"reservationTime"`
	Duration        int       `json:"duration"` // minutes
	SpecialRequests string    `json:"specialRequests,omitempty"`
}

// Table is a dining table. Number is unique per shop.
type Table struct {
	ID             string
	ShopID         string
	Number         int // unique per shop
	Capacity       int // >= 1
	Status         string
	Location       string
	CurrentOrderID *string
	Reservation    *Reservation
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
