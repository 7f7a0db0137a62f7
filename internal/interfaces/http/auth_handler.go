package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/alexsagar/teantea-api/internal/application/auth"
	"github.com/alexsagar/teantea-api/internal/application/dto"
)

// AuthHandler authentication and self-service profile endpoints.
type AuthHandler struct {
	uc *auth.AuthUseCase
}

// NewAuthHandler builds the handler.
func NewAuthHandler(uc *auth.AuthUseCase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// Signup godoc
// @Summary      Register a shop with its first admin user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body dto.SignupRequest true "Shop and owner data"
// @Success      201 {object} dto.AuthResponse
// @Failure      400 {object} dto.ErrorResponse
// @Failure      409 {object} dto.ErrorResponse
// @Router       /api/auth/signup-shop [post]
func (h *AuthHandler) Signup(c *fiber.Ctx) error {
	var req dto.SignupRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c)
	}
	res, err := h.uc.Signup(c.Context(), req)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(res)
}

// Login godoc
// @Summary      Authenticate with shop code, email and password
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body dto.LoginRequest true "Credentials"
// @Success      200 {object} dto.AuthResponse
// @Failure      401 {object} dto.ErrorResponse
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c)
	}
	res, err := h.uc.Login(c.Context(), req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(res)
}

// Register godoc
// @Summary      Register a staff user in the authenticated shop (admin only)
// @Tags         auth
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        request body dto.CreateStaffRequest true "Staff data"
// @Success      201 {object} dto.UserResponse
// @Failure      400 {object} dto.ErrorResponse
// @Failure      409 {object} dto.ErrorResponse
// @Router       /api/auth/register [post]
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req dto.CreateStaffRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c)
	}
	res, err := h.uc.RegisterStaff(c.Context(), GetShopID(c), req)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(res)
}

// Me godoc
// @Summary      Current user profile
// @Tags         auth
// @Security     BearerAuth
// @Produce      json
// @Success      200 {object} dto.UserResponse
// @Failure      401 {object} dto.ErrorResponse
// @Router       /api/auth/me [get]
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	res, err := h.uc.Me(c.Context(), GetShopID(c), GetUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(res)
}

// UpdateProfile godoc
// @Summary      Update own profile
// @Tags         auth
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        request body dto.UpdateProfileRequest true "Profile fields"
// @Success      200 {object} dto.UserResponse
// @Failure      400 {object} dto.ErrorResponse
// @Router       /api/auth/profile [put]
func (h *AuthHandler) UpdateProfile(c *fiber.Ctx) error {
	var req dto.UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c)
	}
	res, err := h.uc.UpdateProfile(c.Context(), GetShopID(c), GetUserID(c), req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(res)
}

// ChangePassword godoc
// @Summary      Change own password
// @Tags         auth
// @Security     BearerAuth
// @Accept       json
// @Success      204 "Password changed"
// @Failure      401 {object} dto.ErrorResponse
// @Router       /api/auth/password [put]
func (h *AuthHandler) ChangePassword(c *fiber.Ctx) error {
	var req dto.ChangePasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c)
	}
	if err := h.uc.ChangePassword(c.Context(), GetShopID(c), GetUserID(c), req); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
