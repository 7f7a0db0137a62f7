package domain

import "errors"

// Domain errors (no external dependencies). Handlers map these to HTTP statuses;
// nothing below the HTTP layer knows about status codes.
var (
	ErrUnauthenticated    = errors.New("no credential presented")
	ErrInvalidCredential  = errors.New("invalid credential")
	ErrForbidden          = errors.New("access denied")
	ErrNotFound           = errors.New("resource not found")
	ErrDuplicate          = errors.New("duplicate resource")
	ErrEmailAlreadyExists = errors.New("email already registered")
	ErrInvalidInput       = errors.New("invalid input")
	ErrInvalidState       = errors.New("operation not allowed in current state")
	ErrUnavailable        = errors.New("menu item not available")
	ErrInsufficientStock  = errors.New("insufficient stock")
	ErrInsufficientPoints = errors.New("insufficient loyalty points")
)
