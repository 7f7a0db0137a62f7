package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/alexsagar/teantea-api/internal/application/dto"
	"github.com/alexsagar/teantea-api/internal/domain"
	"github.com/alexsagar/teantea-api/internal/domain/entity"
	"github.com/alexsagar/teantea-api/internal/domain/repository"
)

// CustomerUseCase customer profiles and the loyalty-point operation.
type CustomerUseCase struct {
	repo repository.CustomerRepository
}

// NewCustomerUseCase builds the usecase.
func NewCustomerUseCase(repo repository.CustomerRepository) *CustomerUseCase {
	return &CustomerUseCase{repo: repo}
}

// Create registers a customer. The phone number is unique within the shop.
func (uc *CustomerUseCase) Create(ctx context.Context, shopID string, in dto.CreateCustomerRequest) (*dto.CustomerResponse, error) {
	if in.Name == "" || in.Phone == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	customer := &entity.Customer{
		ID:          uuid.New().String(),
		ShopID:      shopID,
		Name:        in.Name,
		Phone:       in.Phone,
		Email:       in.Email,
		Address:     in.Address,
		Preferences: in.Preferences,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(ctx, customer); err != nil {
		return nil, err
	}
	return toCustomerResponse(customer), nil
}

// GetByID returns one customer.
func (uc *CustomerUseCase) GetByID(ctx context.Context, shopID, id string) (*dto.CustomerResponse, error) {
	customer, err := uc.repo.GetByID(ctx, shopID, id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrNotFound
	}
	return toCustomerResponse(customer), nil
}

// List lists customers, optionally filtered by a name/phone search term.
func (uc *CustomerUseCase) List(ctx context.Context, shopID, search string, page dto.PageRequest) (*dto.CustomerListResponse, error) {
	page.DefaultPage()
	list, err := uc.repo.ListByShop(ctx, shopID, search, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CustomerResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *toCustomerResponse(c))
	}
	return &dto.CustomerListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

// Update edits a customer profile. Loyalty points only move through AdjustLoyalty.
func (uc *CustomerUseCase) Update(ctx context.Context, shopID, id string, in dto.UpdateCustomerRequest) (*dto.CustomerResponse, error) {
	customer, err := uc.repo.GetByID(ctx, shopID, id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		customer.Name = *in.Name
	}
	if in.Phone != nil {
		customer.Phone = *in.Phone
	}
	if in.Email != nil {
		customer.Email = *in.Email
	}
	if in.Address != nil {
		customer.Address = *in.Address
	}
	if in.Preferences != nil {
		customer.Preferences = in.Preferences
	}
	customer.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, customer); err != nil {
		return nil, err
	}
	return toCustomerResponse(customer), nil
}

// Delete removes a customer.
func (uc *CustomerUseCase) Delete(ctx context.Context, shopID, id string) error {
	return uc.repo.Delete(ctx, shopID, id)
}

// AdjustLoyalty adds or subtracts points atomically. A subtract beyond the
// balance fails with ErrInsufficientPoints and the balance is unchanged.
func (uc *CustomerUseCase) AdjustLoyalty(ctx context.Context, shopID, id string, in dto.AdjustLoyaltyRequest) (*dto.CustomerResponse, error) {
	if in.Points <= 0 {
		return nil, domain.ErrInvalidInput
	}
	var delta int
	switch in.Operation {
	case "add":
		delta = in.Points
	case "subtract":
		delta = -in.Points
	default:
		return nil, domain.ErrInvalidInput
	}
	customer, err := uc.repo.AdjustLoyaltyPoints(ctx, shopID, id, delta)
	if err != nil {
		return nil, err
	}
	return toCustomerResponse(customer), nil
}

func toCustomerResponse(c *entity.Customer) *dto.CustomerResponse {
	if c == nil {
		return nil
	}
	return &dto.CustomerResponse{
		ID:            c.ID,
		ShopID:        c.ShopID,
		Name:          c.Name,
		Phone:         c.Phone,
		Email:         c.Email,
		Address:       c.Address,
		LoyaltyPoints: c.LoyaltyPoints,
		TotalSpent:    c.TotalSpent,
		VisitCount:    c.VisitCount,
		Preferences:   c.Preferences,
		CreatedAt:     c.CreatedAt,
		UpdatedAt:     c.UpdatedAt,
	}
}
