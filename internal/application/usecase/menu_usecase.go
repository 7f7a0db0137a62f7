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

// MenuUseCase CRUD for menu items. Ingredients are informational references;
// nothing here touches inventory stock.
type MenuUseCase struct {
	repo repository.MenuRepository
}

// NewMenuUseCase builds the usecase.
func NewMenuUseCase(repo repository.MenuRepository) *MenuUseCase {
	return &MenuUseCase{repo: repo}
}

// Create adds a menu item. New items default to available.
func (uc *MenuUseCase) Create(ctx context.Context, shopID string, in dto.CreateMenuItemRequest) (*dto.MenuItemResponse, error) {
	if in.Name == "" || in.Category == "" || in.Price.IsNegative() || in.Cost.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	available := true
	if in.IsAvailable != nil {
		available = *in.IsAvailable
	}
	now := time.Now()
	item := &entity.MenuItem{
		ID:              uuid.New().String(),
		ShopID:          shopID,
		Name:            in.Name,
		Category:        in.Category,
		Price:           in.Price,
		Cost:            in.Cost,
		IsAvailable:     available,
		Ingredients:     in.Ingredients,
		PreparationTime: in.PreparationTime,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := uc.repo.Create(ctx, item); err != nil {
		return nil, err
	}
	return toMenuItemResponse(item), nil
}

// GetByID returns one menu item.
func (uc *MenuUseCase) GetByID(ctx context.Context, shopID, id string) (*dto.MenuItemResponse, error) {
	item, err := uc.repo.GetByID(ctx, shopID, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	return toMenuItemResponse(item), nil
}

// List lists menu items with filters.
func (uc *MenuUseCase) List(ctx context.Context, shopID string, filter repository.MenuFilter, page dto.PageRequest) (*dto.MenuListResponse, error) {
	page.DefaultPage()
	list, err := uc.repo.ListByShop(ctx, shopID, filter, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.MenuItemResponse, 0, len(list))
	for _, i := range list {
		items = append(items, *toMenuItemResponse(i))
	}
	return &dto.MenuListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

// Update edits a menu item.
func (uc *MenuUseCase) Update(ctx context.Context, shopID, id string, in dto.UpdateMenuItemRequest) (*dto.MenuItemResponse, error) {
	item, err := uc.repo.GetByID(ctx, shopID, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		item.Name = *in.Name
	}
	if in.Category != nil {
		item.Category = *in.Category
	}
	if in.Price != nil {
		if in.Price.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		item.Price = *in.Price
	}
	if in.Cost != nil {
		if in.Cost.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		item.Cost = *in.Cost
	}
	if in.IsAvailable != nil {
		item.IsAvailable = *in.IsAvailable
	}
	if in.Ingredients != nil {
		item.Ingredients = in.Ingredients
	}
	if in.PreparationTime != nil {
		item.PreparationTime = *in.PreparationTime
	}
	item.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, item); err != nil {
		return nil, err
	}
	return toMenuItemResponse(item), nil
}

// SetAvailability toggles an item on or off the menu.
func (uc *MenuUseCase) SetAvailability(ctx context.Context, shopID, id string, available bool) (*dto.MenuItemResponse, error) {
	if err := uc.repo.SetAvailability(ctx, shopID, id, available); err != nil {
		return nil, err
	}
	return uc.GetByID(ctx, shopID, id)
}

// Delete removes a menu item. Existing order lines keep their snapshots.
func (uc *MenuUseCase) Delete(ctx context.Context, shopID, id string) error {
	return uc.repo.Delete(ctx, shopID, id)
}

func toMenuItemResponse(i *entity.MenuItem) *dto.MenuItemResponse {
	if i == nil {
		return nil
	}
	return &dto.MenuItemResponse{
		ID:              i.ID,
		ShopID:          i.ShopID,
		Name:            i.Name,
		Category:        i.Category,
		Price:           i.Price,
		Cost:            i.Cost,
		IsAvailable:     i.IsAvailable,
		Ingredients:     i.Ingredients,
		PreparationTime: i.PreparationTime,
		CreatedAt:       i.CreatedAt,
		UpdatedAt:       i.UpdatedAt,
	}
}
