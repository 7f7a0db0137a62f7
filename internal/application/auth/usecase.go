package auth

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/alexsagar/teantea-api/internal/application/dto"
	"github.com/alexsagar/teantea-api/internal/domain"
	"github.com/alexsagar/teantea-api/internal/domain/entity"
	"github.com/alexsagar/teantea-api/internal/domain/repository"
	"github.com/alexsagar/teantea-api/pkg/jwt"
)

// shopIDAttempts bounds the retry loop on 4-digit code collisions.
const shopIDAttempts = 5

// JWTConfig token generation settings.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase authentication flows: shop signup, login, staff registration and
// self-service profile operations. Passwords are bcrypt-hashed here, before
// anything touches a repository.
type AuthUseCase struct {
	userRepo repository.UserRepository
	shopRepo repository.ShopRepository
	jwtCfg   JWTConfig
}

// NewAuthUseCase builds the auth usecase.
func NewAuthUseCase(userRepo repository.UserRepository, shopRepo repository.ShopRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, shopRepo: shopRepo, jwtCfg: jwtCfg}
}

// newShopID returns a random 4-digit shop code.
func newShopID() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(10000))
	if err != nil {
		return "", fmt.Errorf("generate shop id: %w", err)
	}
	return fmt.Sprintf("%04d", n.Int64()), nil
}

// Signup creates a shop with a fresh 4-digit code and its first admin user,
// then returns a signed token. Code collisions retry with a new code.
func (uc *AuthUseCase) Signup(ctx context.Context, in dto.SignupRequest) (*dto.AuthResponse, error) {
	if in.ShopName == "" || in.Email == "" || in.Password == "" {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now()
	var shop *entity.Shop
	for attempt := 0; attempt < shopIDAttempts; attempt++ {
		id, err := newShopID()
		if err != nil {
			return nil, err
		}
		candidate := &entity.Shop{ID: id, Name: in.ShopName, Address: in.Address, CreatedAt: now}
		err = uc.shopRepo.Create(ctx, candidate)
		if err == nil {
			shop = candidate
			break
		}
		if !errors.Is(err, domain.ErrDuplicate) {
			return nil, err
		}
	}
	if shop == nil {
		return nil, fmt.Errorf("shop id space exhausted: %w", domain.ErrDuplicate)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	admin := &entity.User{
		ID:           uuid.New().String(),
		ShopID:       shop.ID,
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: string(hash),
		Role:         entity.RoleAdmin,
		Permissions:  entity.PermissionSet{},
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.userRepo.Create(ctx, admin); err != nil {
		return nil, err
	}

	token, err := jwt.Generate(uc.jwtCfg.Secret, admin.ID, shop.ID, admin.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.AuthResponse{
		Token: token,
		User:  *toUserResponse(admin),
		Shop:  toShopResponse(shop),
	}, nil
}

// Login verifies shop code + email + password and returns a signed token.
// Wrong shop, unknown email, bad password and inactive account all collapse
// into ErrInvalidCredential; callers cannot probe which part failed.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := uc.userRepo.GetByEmail(ctx, in.ShopID, in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil || !user.IsActive {
		return nil, domain.ErrInvalidCredential
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrInvalidCredential
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.ShopID, user.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	shop, err := uc.shopRepo.GetByID(ctx, user.ShopID)
	if err != nil {
		return nil, err
	}
	return &dto.AuthResponse{
		Token: token,
		User:  *toUserResponse(user),
		Shop:  toShopResponse(shop),
	}, nil
}

// RegisterStaff creates a staff user in the shop (admin gate is at the route).
// ErrEmailAlreadyExists when the email is taken within the shop.
func (uc *AuthUseCase) RegisterStaff(ctx context.Context, shopID string, in dto.CreateStaffRequest) (*dto.UserResponse, error) {
	if !entity.ValidRole(in.Role) {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.userRepo.GetByEmail(ctx, shopID, in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	perms := in.Permissions
	if perms == nil {
		perms = entity.PermissionSet{}
	}
	now := time.Now()
	user := &entity.User{
		ID:           uuid.New().String(),
		ShopID:       shopID,
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: string(hash),
		Role:         in.Role,
		Permissions:  perms,
		IsActive:     true,
		Phone:        in.Phone,
		Address:      in.Address,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return nil, domain.ErrEmailAlreadyExists
		}
		return nil, err
	}
	return toUserResponse(user), nil
}

// Me returns the authenticated user's profile.
func (uc *AuthUseCase) Me(ctx context.Context, shopID, userID string) (*dto.UserResponse, error) {
	user, err := uc.userRepo.GetByID(ctx, shopID, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrNotFound
	}
	return toUserResponse(user), nil
}

// UpdateProfile edits the authenticated user's own fields.
func (uc *AuthUseCase) UpdateProfile(ctx context.Context, shopID, userID string, in dto.UpdateProfileRequest) (*dto.UserResponse, error) {
	user, err := uc.userRepo.GetByID(ctx, shopID, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		user.Name = *in.Name
	}
	if in.Phone != nil {
		user.Phone = *in.Phone
	}
	if in.Address != nil {
		user.Address = *in.Address
	}
	user.UpdatedAt = time.Now()
	if err := uc.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// ChangePassword verifies the current password and stores a new hash.
func (uc *AuthUseCase) ChangePassword(ctx context.Context, shopID, userID string, in dto.ChangePasswordRequest) error {
	user, err := uc.userRepo.GetByID(ctx, shopID, userID)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.CurrentPassword)); err != nil {
		return domain.ErrInvalidCredential
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	user.PasswordHash = string(hash)
	user.UpdatedAt = time.Now()
	return uc.userRepo.Update(ctx, user)
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:          u.ID,
		ShopID:      u.ShopID,
		Name:        u.Name,
		Email:       u.Email,
		Role:        u.Role,
		Permissions: u.Permissions,
		IsActive:    u.IsActive,
		Phone:       u.Phone,
		Address:     u.Address,
		CreatedAt:   u.CreatedAt,
		UpdatedAt:   u.UpdatedAt,
	}
}

func toShopResponse(s *entity.Shop) *dto.ShopResponse {
	if s == nil {
		return nil
	}
	return &dto.ShopResponse{
		ID:        s.ID,
		Name:      s.Name,
		Address:   s.Address,
		CreatedAt: s.CreatedAt,
	}
}
