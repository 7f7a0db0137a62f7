package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/alexsagar/teantea-api/internal/application/dto"
	"github.com/alexsagar/teantea-api/internal/domain"
)

// respondError translates a domain error into the HTTP error body. Unknown
// errors are logged with detail and surface as a generic 500.
func respondError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrUnauthenticated):
		return respond(c, fiber.StatusUnauthorized, "UNAUTHENTICATED", "authentication required")
	case errors.Is(err, domain.ErrInvalidCredential):
		return respond(c, fiber.StatusUnauthorized, "INVALID_CREDENTIAL", "invalid credentials")
	case errors.Is(err, domain.ErrForbidden):
		return respond(c, fiber.StatusForbidden, "FORBIDDEN", "permission denied")
	case errors.Is(err, domain.ErrNotFound):
		return respond(c, fiber.StatusNotFound, "NOT_FOUND", "resource not found")
	case errors.Is(err, domain.ErrEmailAlreadyExists):
		return respond(c, fiber.StatusConflict, "DUPLICATE", "email already registered")
	case errors.Is(err, domain.ErrDuplicate):
		return respond(c, fiber.StatusConflict, "DUPLICATE", "duplicate value")
	case errors.Is(err, domain.ErrInvalidState):
		return respond(c, fiber.StatusBadRequest, "INVALID_STATE", "operation not allowed in current state")
	case errors.Is(err, domain.ErrInsufficientStock):
		return respond(c, fiber.StatusBadRequest, "INSUFFICIENT_STOCK", "insufficient stock")
	case errors.Is(err, domain.ErrInsufficientPoints):
		return respond(c, fiber.StatusBadRequest, "INSUFFICIENT_POINTS", "insufficient loyalty points")
	case errors.Is(err, domain.ErrUnavailable):
		return respond(c, fiber.StatusBadRequest, "UNAVAILABLE", "item not available")
	case errors.Is(err, domain.ErrInvalidInput):
		return respond(c, fiber.StatusBadRequest, "VALIDATION", "invalid input")
	default:
		log.Error().Err(err).Str("path", c.Path()).Msg("request failed")
		return respond(c, fiber.StatusInternalServerError, "INTERNAL", "internal error")
	}
}

func respond(c *fiber.Ctx, status int, code, message string) error {
	return c.Status(status).JSON(dto.ErrorResponse{Code: code, Message: message})
}

// badBody is the response for an unparseable request body.
func badBody(c *fiber.Ctx) error {
	return respond(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
}
