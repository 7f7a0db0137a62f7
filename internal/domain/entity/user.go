package entity

import "time"

// Valid roles for User.
const (
	RoleAdmin   = "admin"
	RoleManager = "manager"
	RoleStaff   = "staff"
	RoleCashier = "cashier"
	RoleKitchen = "kitchen"
)

// ValidRole reports whether s is a known role.
func ValidRole(s string) bool {
	switch s {
	case RoleAdmin, RoleManager, RoleStaff, RoleCashier, RoleKitchen:
		return true
	}
	return false
}

// User is a staff member of a shop. Deactivation (IsActive=false) is the soft
// delete; rows are never removed.
type User struct {
	ID           string
	ShopID       string
	Name         string
	Email        string // unique within shop
	PasswordHash string // bcrypt hash, never plaintext past the auth usecase
	Role         string
	Permissions  PermissionSet
	IsActive     bool
	Phone        string
	Address      string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Can is the single authorization decision point: admin bypasses the declared
// permission list entirely, everyone else needs an explicit (module, action) grant.
func (u *User) Can(module, action string) bool {
	if u.Role == RoleAdmin {
		return true
	}
	return u.Permissions.Allows(module, action)
}
