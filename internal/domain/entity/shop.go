package entity

import "time"

// Shop is the tenant anchor. ID is the public 4-digit shop code generated at
// signup; it never changes and every other entity carries it as shop_id.
type Shop struct {
	ID        string // 4-digit code, unique
	Name      string
	Address   string
	CreatedAt time.Time
}
