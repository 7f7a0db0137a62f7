package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/alexsagar/teantea-api/internal/domain"
	"github.com/alexsagar/teantea-api/internal/domain/entity"
	"github.com/alexsagar/teantea-api/internal/domain/repository"
	"github.com/alexsagar/teantea-api/pkg/jwt"
)

// Locals keys set by AuthMiddleware.
const (
	LocalUserID = "user_id"
	LocalShopID = "shop_id"
	LocalUser   = "user"
)

// AuthMiddleware validates the bearer token, reloads the user from the store
// and puts the identity into Locals. The header value may be "Bearer <token>"
// or the raw token (legacy clients). A missing credential is Unauthenticated;
// everything else (bad token, unknown or inactive user) is InvalidCredential,
// one indistinguishable surface.
func AuthMiddleware(jwtSecret string, users repository.UserRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return respondError(c, domain.ErrUnauthenticated)
		}
		tokenString := authHeader
		if parts := strings.SplitN(authHeader, " ", 2); len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
			tokenString = strings.TrimSpace(parts[1])
		}
		if tokenString == "" {
			return respondError(c, domain.ErrUnauthenticated)
		}
		userID, shopID, _, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return respondError(c, domain.ErrInvalidCredential)
		}
		user, err := users.GetByID(c.Context(), shopID, userID)
		if err != nil {
			return respondError(c, err)
		}
		if user == nil || !user.IsActive {
			return respondError(c, domain.ErrInvalidCredential)
		}
		c.Locals(LocalUserID, user.ID)
		c.Locals(LocalShopID, user.ShopID)
		c.Locals(LocalUser, user)
		return c.Next()
	}
}

// RequirePermission gates a route group on (module, action). Admin always
// passes; the check itself lives in entity.User.Can.
func RequirePermission(module, action string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user := GetUser(c)
		if user == nil {
			return respondError(c, domain.ErrUnauthenticated)
		}
		if !user.Can(module, action) {
			return respondError(c, domain.ErrForbidden)
		}
		return c.Next()
	}
}

// RequireAdmin gates a route on the admin role itself. Permission grants on
// other roles do not satisfy it.
func RequireAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		user := GetUser(c)
		if user == nil {
			return respondError(c, domain.ErrUnauthenticated)
		}
		if user.Role != entity.RoleAdmin {
			return respondError(c, domain.ErrForbidden)
		}
		return c.Next()
	}
}

// GetUserID returns the authenticated user's id from Locals.
func GetUserID(c *fiber.Ctx) string {
	s, _ := c.Locals(LocalUserID).(string)
	return s
}

// GetShopID returns the tenant id from Locals.
func GetShopID(c *fiber.Ctx) string {
	s, _ := c.Locals(LocalShopID).(string)
	return s
}

// GetUser returns the authenticated user loaded by AuthMiddleware.
func GetUser(c *fiber.Ctx) *entity.User {
	u, _ := c.Locals(LocalUser).(*entity.User)
	return u
}
