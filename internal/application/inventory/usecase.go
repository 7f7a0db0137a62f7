// Package inventory implements stock management: item CRUD, the atomic
// add/subtract adjustment and the transactional stock-in receipt.
package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/alexsagar/teantea-api/internal/application/dto"
	"github.com/alexsagar/teantea-api/internal/domain"
	"github.com/alexsagar/teantea-api/internal/domain/entity"
	"github.com/alexsagar/teantea-api/internal/domain/event"
	"github.com/alexsagar/teantea-api/internal/domain/repository"
)

// TxRunner runs the stock-in write set in one transaction: all three effects
// commit together or none do.
type TxRunner interface {
	RunStockIn(ctx context.Context, fn func(
		invRepo repository.InventoryRepository,
		supplierRepo repository.SupplierRepository,
		stockInRepo repository.StockInRepository,
	) error) error
}

// UseCase inventory operations.
type UseCase struct {
	items     repository.InventoryRepository
	suppliers repository.SupplierRepository
	stockIns  repository.StockInRepository
	tx        TxRunner
	publisher event.Publisher
}

// NewUseCase builds the inventory usecase.
func NewUseCase(items repository.InventoryRepository, suppliers repository.SupplierRepository, stockIns repository.StockInRepository, tx TxRunner, publisher event.Publisher) *UseCase {
	return &UseCase{items: items, suppliers: suppliers, stockIns: stockIns, tx: tx, publisher: publisher}
}

// Create registers a new inventory item.
func (uc *UseCase) Create(ctx context.Context, shopID string, in dto.CreateInventoryItemRequest) (*dto.InventoryItemResponse, error) {
	if in.Name == "" || in.Unit == "" || in.CurrentStock.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	item := &entity.Inventory{
		ID:           uuid.New().String(),
		ShopID:       shopID,
		Name:         in.Name,
		Category:     in.Category,
		CurrentStock: in.CurrentStock,
		MinStock:     in.MinStock,
		MaxStock:     in.MaxStock,
		Unit:         in.Unit,
		CostPerUnit:  in.CostPerUnit,
		SupplierID:   in.SupplierID,
		ExpiryDate:   in.ExpiryDate,
		BatchNumber:  in.BatchNumber,
		Location:     in.Location,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.items.Create(ctx, item); err != nil {
		return nil, err
	}
	return toInventoryResponse(item), nil
}

// GetByID returns one inventory item.
func (uc *UseCase) GetByID(ctx context.Context, shopID, id string) (*dto.InventoryItemResponse, error) {
	item, err := uc.items.GetByID(ctx, shopID, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	return toInventoryResponse(item), nil
}

// List lists inventory with an optional category filter.
func (uc *UseCase) List(ctx context.Context, shopID, category string, page dto.PageRequest) (*dto.InventoryListResponse, error) {
	page.DefaultPage()
	list, err := uc.items.ListByShop(ctx, shopID, category, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.InventoryItemResponse, 0, len(list))
	for _, i := range list {
		items = append(items, *toInventoryResponse(i))
	}
	return &dto.InventoryListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

// ListLowStock lists items at or below their minimum level.
func (uc *UseCase) ListLowStock(ctx context.Context, shopID string) ([]dto.InventoryItemResponse, error) {
	list, err := uc.items.ListLowStock(ctx, shopID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.InventoryItemResponse, 0, len(list))
	for _, i := range list {
		items = append(items, *toInventoryResponse(i))
	}
	return items, nil
}

// Update edits descriptive fields. Stock is untouchable here.
func (uc *UseCase) Update(ctx context.Context, shopID, id string, in dto.UpdateInventoryItemRequest) (*dto.InventoryItemResponse, error) {
	item, err := uc.items.GetByID(ctx, shopID, id)
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
	if in.MinStock != nil {
		item.MinStock = *in.MinStock
	}
	if in.MaxStock != nil {
		item.MaxStock = *in.MaxStock
	}
	if in.Unit != nil {
		item.Unit = *in.Unit
	}
	if in.CostPerUnit != nil {
		item.CostPerUnit = *in.CostPerUnit
	}
	if in.SupplierID != nil {
		item.SupplierID = in.SupplierID
	}
	if in.ExpiryDate != nil {
		item.ExpiryDate = in.ExpiryDate
	}
	if in.BatchNumber != nil {
		item.BatchNumber = *in.BatchNumber
	}
	if in.Location != nil {
		item.Location = *in.Location
	}
	item.UpdatedAt = time.Now()
	if err := uc.items.Update(ctx, item); err != nil {
		return nil, err
	}
	return toInventoryResponse(item), nil
}

// Delete removes an inventory item.
func (uc *UseCase) Delete(ctx context.Context, shopID, id string) error {
	return uc.items.Delete(ctx, shopID, id)
}

// Adjust applies an add or subtract movement as one atomic update. A subtract
// beyond the current stock fails with ErrInsufficientStock and changes nothing.
// Falling to or below the minimum emits a low-stock-alert event.
func (uc *UseCase) Adjust(ctx context.Context, shopID, id string, in dto.AdjustStockRequest) (*dto.InventoryItemResponse, error) {
	if !in.Quantity.IsPositive() {
		return nil, domain.ErrInvalidInput
	}
	var delta decimal.Decimal
	var touchRestocked bool
	switch in.Operation {
	case "add":
		delta = in.Quantity
		touchRestocked = true
	case "subtract":
		delta = in.Quantity.Neg()
	default:
		return nil, domain.ErrInvalidInput
	}
	item, err := uc.items.AdjustStock(ctx, shopID, id, delta, touchRestocked)
	if err != nil {
		return nil, err
	}
	if item.LowStock() {
		uc.publisher.Publish(ctx, shopID, event.New(event.TypeLowStockAlert, map[string]any{
			"itemId":       item.ID,
			"name":         item.Name,
			"currentStock": item.CurrentStock,
			"minStock":     item.MinStock,
			"unit":         item.Unit,
		}))
	}
	return toInventoryResponse(item), nil
}

// StockIn records a goods receipt: inventory increment, supplier statistics
// and the immutable receipt row commit in a single transaction.
func (uc *UseCase) StockIn(ctx context.Context, shopID, createdBy string, in dto.CreateStockInRequest) (*dto.StockInResponse, error) {
	if !in.Quantity.IsPositive() || in.UnitPrice.IsNegative() || in.TotalPrice.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	totalPrice := in.TotalPrice
	if totalPrice.IsZero() {
		totalPrice = in.UnitPrice.Mul(in.Quantity)
	}
	now := time.Now()
	purchaseDate := now
	if in.PurchaseDate != nil {
		purchaseDate = *in.PurchaseDate
	}
	rec := &entity.StockIn{
		ID:            uuid.New().String(),
		ShopID:        shopID,
		SupplierID:    in.SupplierID,
		ProductID:     in.ProductID,
		Quantity:      in.Quantity,
		Unit:          in.Unit,
		UnitPrice:     in.UnitPrice,
		TotalPrice:    totalPrice,
		InvoiceNumber: in.InvoiceNumber,
		PurchaseDate:  purchaseDate,
		Notes:         in.Notes,
		CreatedBy:     createdBy,
		CreatedAt:     now,
	}

	err := uc.tx.RunStockIn(ctx, func(
		invRepo repository.InventoryRepository,
		supplierRepo repository.SupplierRepository,
		stockInRepo repository.StockInRepository,
	) error {
		item, err := invRepo.AdjustStock(ctx, shopID, in.ProductID, in.Quantity, true)
		if err != nil {
			return err
		}
		if rec.Unit == "" {
			rec.Unit = item.Unit
		}
		if err := supplierRepo.RecordPurchase(ctx, shopID, in.SupplierID, totalPrice, purchaseDate); err != nil {
			return err
		}
		return stockInRepo.Create(ctx, rec)
	})
	if err != nil {
		return nil, err
	}
	return toStockInResponse(rec), nil
}

// GetStockIn returns one receipt.
func (uc *UseCase) GetStockIn(ctx context.Context, shopID, id string) (*dto.StockInResponse, error) {
	rec, err := uc.stockIns.GetByID(ctx, shopID, id)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, domain.ErrNotFound
	}
	return toStockInResponse(rec), nil
}

// ListStockIns lists receipts in a purchase-date range.
func (uc *UseCase) ListStockIns(ctx context.Context, shopID string, from, to time.Time, page dto.PageRequest) (*dto.StockInListResponse, error) {
	page.DefaultPage()
	list, err := uc.stockIns.ListByShop(ctx, shopID, from, to, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.StockInResponse, 0, len(list))
	for _, r := range list {
		items = append(items, *toStockInResponse(r))
	}
	return &dto.StockInListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

func toInventoryResponse(i *entity.Inventory) *dto.InventoryItemResponse {
	if i == nil {
		return nil
	}
	return &dto.InventoryItemResponse{
		ID:            i.ID,
		ShopID:        i.ShopID,
		Name:          i.Name,
		Category:      i.Category,
		CurrentStock:  i.CurrentStock,
		MinStock:      i.MinStock,
		MaxStock:      i.MaxStock,
		Unit:          i.Unit,
		CostPerUnit:   i.CostPerUnit,
		SupplierID:    i.SupplierID,
		ExpiryDate:    i.ExpiryDate,
		BatchNumber:   i.BatchNumber,
		Location:      i.Location,
		LastRestocked: i.LastRestocked,
		IsLowStock:    i.LowStock(),
		CreatedAt:     i.CreatedAt,
		UpdatedAt:     i.UpdatedAt,
	}
}

func toStockInResponse(r *entity.StockIn) *dto.StockInResponse {
	if r == nil {
		return nil
	}
	return &dto.StockInResponse{
		ID:            r.ID,
		ShopID:        r.ShopID,
		SupplierID:    r.SupplierID,
		ProductID:     r.ProductID,
		Quantity:      r.Quantity,
		Unit:          r.Unit,
		UnitPrice:     r.UnitPrice,
		TotalPrice:    r.TotalPrice,
		InvoiceNumber: r.InvoiceNumber,
		PurchaseDate:  r.PurchaseDate,
		Notes:         r.Notes,
		CreatedBy:     r.CreatedBy,
		CreatedAt:     r.CreatedAt,
	}
}
