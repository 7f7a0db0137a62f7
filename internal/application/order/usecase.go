// Package order implements the order lifecycle: create, update, status moves,
// soft cancel and the guarded permanent delete.
package order

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/alexsagar/teantea-api/internal/application/dto"
	"github.com/alexsagar/teantea-api/internal/domain"
	"github.com/alexsagar/teantea-api/internal/domain/entity"
	"github.com/alexsagar/teantea-api/internal/domain/event"
	"github.com/alexsagar/teantea-api/internal/domain/repository"
)

// orderNumberAttempts bounds the retry loop on order-number collisions.
const orderNumberAttempts = 5

// UseCase order lifecycle operations. Totals are always recomputed server-side
// from current menu prices and snapshotted into the lines.
type UseCase struct {
	orders    repository.OrderRepository
	menu      repository.MenuRepository
	tables    repository.TableRepository
	publisher event.Publisher
}

// NewUseCase builds the order usecase.
func NewUseCase(orders repository.OrderRepository, menu repository.MenuRepository, tables repository.TableRepository, publisher event.Publisher) *UseCase {
	return &UseCase{orders: orders, menu: menu, tables: tables, publisher: publisher}
}

// newOrderNumber returns ORD<yymmdd><4 random digits>.
func newOrderNumber(now time.Time) (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(10000))
	if err != nil {
		return "", fmt.Errorf("generate order number: %w", err)
	}
	return fmt.Sprintf("ORD%s%04d", now.Format("060102"), n.Int64()), nil
}

// buildLines resolves the requested items against the menu, snapshotting name
// and price. Missing item -> ErrNotFound, unavailable -> ErrUnavailable.
func (uc *UseCase) buildLines(ctx context.Context, shopID string, items []dto.OrderItemRequest) ([]entity.OrderItem, decimal.Decimal, error) {
	if len(items) == 0 {
		return nil, decimal.Zero, domain.ErrInvalidInput
	}
	lines := make([]entity.OrderItem, 0, len(items))
	subtotal := decimal.Zero
	for _, it := range items {
		if it.Quantity < 1 {
			return nil, decimal.Zero, domain.ErrInvalidInput
		}
		menuItem, err := uc.menu.GetByID(ctx, shopID, it.MenuItemID)
		if err != nil {
			return nil, decimal.Zero, err
		}
		if menuItem == nil {
			return nil, decimal.Zero, domain.ErrNotFound
		}
		if !menuItem.IsAvailable {
			return nil, decimal.Zero, domain.ErrUnavailable
		}
		line := entity.OrderItem{
			MenuItemID:          menuItem.ID,
			Name:                menuItem.Name,
			Quantity:            it.Quantity,
			Price:               menuItem.Price,
			SpecialInstructions: it.SpecialInstructions,
		}
		lines = append(lines, line)
		subtotal = subtotal.Add(line.LineTotal())
	}
	return lines, subtotal, nil
}

// Create builds and persists a new order. Dine-in orders with a table also
// occupy the table and link it to the order.
func (uc *UseCase) Create(ctx context.Context, shopID, staffID string, in dto.CreateOrderRequest) (*dto.OrderResponse, error) {
	if !entity.ValidOrderType(in.OrderType) || !entity.ValidPaymentMethod(in.PaymentMethod) {
		return nil, domain.ErrInvalidInput
	}
	lines, subtotal, err := uc.buildLines(ctx, shopID, in.Items)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	order := &entity.Order{
		ID:            uuid.New().String(),
		ShopID:        shopID,
		CustomerID:    in.CustomerID,
		Items:         lines,
		TableID:       in.TableID,
		OrderType:     in.OrderType,
		Status:        entity.OrderPending,
		Subtotal:      subtotal,
		Tax:           decimal.Zero, // no tax policy applied; total == subtotal
		Total:         subtotal,
		PaymentMethod: in.PaymentMethod,
		PaymentStatus: entity.PaymentPending,
		StaffID:       staffID,
		Notes:         in.Notes,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	for attempt := 0; attempt < orderNumberAttempts; attempt++ {
		number, err := newOrderNumber(now)
		if err != nil {
			return nil, err
		}
		order.OrderNumber = number
		err = uc.orders.Create(ctx, order)
		if err == nil {
			break
		}
		if !errors.Is(err, domain.ErrDuplicate) {
			return nil, err
		}
		if attempt == orderNumberAttempts-1 {
			return nil, fmt.Errorf("order number space exhausted: %w", domain.ErrDuplicate)
		}
	}

	if order.OrderType == entity.OrderDineIn && order.TableID != nil {
		uc.occupyTable(ctx, shopID, *order.TableID, order.ID)
	}

	uc.publisher.Publish(ctx, shopID, event.New(event.TypeNewOrder, toOrderResponse(order)))
	return toOrderResponse(order), nil
}

// occupyTable links the table to the order and flips it to occupied. The
// order is already committed at this point, so table sync is best-effort.
func (uc *UseCase) occupyTable(ctx context.Context, shopID, tableID, orderID string) {
	if err := uc.tables.SetCurrentOrder(ctx, shopID, tableID, &orderID); err != nil {
		return
	}
	if err := uc.tables.SetStatus(ctx, shopID, tableID, entity.TableOccupied); err != nil {
		return
	}
	uc.publisher.Publish(ctx, shopID, event.New(event.TypeTableStatusUpdate, map[string]any{
		"tableId": tableID,
		"status":  entity.TableOccupied,
		"orderId": orderID,
	}))
}

// releaseTable clears the table's order link and frees it.
func (uc *UseCase) releaseTable(ctx context.Context, shopID, tableID string) {
	if err := uc.tables.SetCurrentOrder(ctx, shopID, tableID, nil); err != nil {
		return
	}
	if err := uc.tables.SetStatus(ctx, shopID, tableID, entity.TableAvailable); err != nil {
		return
	}
	uc.publisher.Publish(ctx, shopID, event.New(event.TypeTableStatusUpdate, map[string]any{
		"tableId": tableID,
		"status":  entity.TableAvailable,
	}))
}

// GetByID returns one order.
func (uc *UseCase) GetByID(ctx context.Context, shopID, id string) (*dto.OrderResponse, error) {
	order, err := uc.orders.GetByID(ctx, shopID, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	return toOrderResponse(order), nil
}

// Get returns the raw entity for internal consumers (receipt rendering).
func (uc *UseCase) Get(ctx context.Context, shopID, id string) (*entity.Order, error) {
	order, err := uc.orders.GetByID(ctx, shopID, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	return order, nil
}

// List lists orders with filters and pagination.
func (uc *UseCase) List(ctx context.Context, shopID string, filter repository.OrderFilter, page dto.PageRequest) (*dto.OrderListResponse, error) {
	page.DefaultPage()
	list, err := uc.orders.ListByShop(ctx, shopID, filter, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.OrderResponse, 0, len(list))
	for _, o := range list {
		items = append(items, *toOrderResponse(o))
	}
	return &dto.OrderListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

// Update edits an order. Replacing Items recomputes totals from the current
// menu prices and takes fresh snapshots.
func (uc *UseCase) Update(ctx context.Context, shopID, id string, in dto.UpdateOrderRequest) (*dto.OrderResponse, error) {
	order, err := uc.orders.GetByID(ctx, shopID, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	if in.Items != nil {
		lines, subtotal, err := uc.buildLines(ctx, shopID, in.Items)
		if err != nil {
			return nil, err
		}
		order.Items = lines
		order.Subtotal = subtotal
		order.Tax = decimal.Zero
		order.Total = subtotal
	}
	if in.CustomerID != nil {
		order.CustomerID = in.CustomerID
	}
	if in.PaymentMethod != nil {
		if !entity.ValidPaymentMethod(*in.PaymentMethod) {
			return nil, domain.ErrInvalidInput
		}
		order.PaymentMethod = *in.PaymentMethod
	}
	if in.PaymentStatus != nil {
		order.PaymentStatus = *in.PaymentStatus
	}
	if in.Notes != nil {
		order.Notes = *in.Notes
	}
	order.UpdatedAt = time.Now()
	if err := uc.orders.Update(ctx, order); err != nil {
		return nil, err
	}
	return toOrderResponse(order), nil
}

// UpdateStatus sets the status and publishes order-status-update. Completing
// or cancelling a dine-in order frees its table.
func (uc *UseCase) UpdateStatus(ctx context.Context, shopID, id, status string) (*dto.OrderResponse, error) {
	if !entity.ValidOrderStatus(status) {
		return nil, domain.ErrInvalidInput
	}
	order, err := uc.orders.GetByID(ctx, shopID, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	if err := uc.orders.UpdateStatus(ctx, shopID, id, status); err != nil {
		return nil, err
	}
	order.Status = status
	order.UpdatedAt = time.Now()

	if order.TableID != nil && (status == entity.OrderCompleted || status == entity.OrderCancelled) {
		uc.releaseTable(ctx, shopID, *order.TableID)
	}

	uc.publisher.Publish(ctx, shopID, event.New(event.TypeOrderStatusUpdate, map[string]any{
		"orderId":     order.ID,
		"orderNumber": order.OrderNumber,
		"status":      status,
	}))
	return toOrderResponse(order), nil
}

// Cancel is the soft delete: status moves to cancelled and the record stays.
func (uc *UseCase) Cancel(ctx context.Context, shopID, id string) (*dto.OrderResponse, error) {
	order, err := uc.orders.GetByID(ctx, shopID, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	if err := uc.orders.UpdateStatus(ctx, shopID, id, entity.OrderCancelled); err != nil {
		return nil, err
	}
	order.Status = entity.OrderCancelled
	order.UpdatedAt = time.Now()

	if order.TableID != nil {
		uc.releaseTable(ctx, shopID, *order.TableID)
	}

	uc.publisher.Publish(ctx, shopID, event.New(event.TypeOrderCancelled, map[string]any{
		"orderId":     order.ID,
		"orderNumber": order.OrderNumber,
	}))
	return toOrderResponse(order), nil
}

// PermanentDelete removes a cancelled order for good. Any other status is
// ErrInvalidState and the order remains.
func (uc *UseCase) PermanentDelete(ctx context.Context, shopID, id string) error {
	order, err := uc.orders.GetByID(ctx, shopID, id)
	if err != nil {
		return err
	}
	if order == nil {
		return domain.ErrNotFound
	}
	if order.Status != entity.OrderCancelled {
		return domain.ErrInvalidState
	}
	if err := uc.orders.Delete(ctx, shopID, id); err != nil {
		return err
	}
	uc.publisher.Publish(ctx, shopID, event.New(event.TypeOrderDeleted, map[string]any{
		"orderId":     order.ID,
		"orderNumber": order.OrderNumber,
	}))
	return nil
}

func toOrderResponse(o *entity.Order) *dto.OrderResponse {
	if o == nil {
		return nil
	}
	items := make([]dto.OrderItemResponse, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, dto.OrderItemResponse{
			MenuItemID:          it.MenuItemID,
			Name:                it.Name,
			Quantity:            it.Quantity,
			Price:               it.Price,
			Subtotal:            it.LineTotal(),
			SpecialInstructions: it.SpecialInstructions,
		})
	}
	return &dto.OrderResponse{
		ID:            o.ID,
		ShopID:        o.ShopID,
		OrderNumber:   o.OrderNumber,
		CustomerID:    o.CustomerID,
		Items:         items,
		TableID:       o.TableID,
		OrderType:     o.OrderType,
		Status:        o.Status,
		Subtotal:      o.Subtotal,
		Tax:           o.Tax,
		Total:         o.Total,
		PaymentMethod: o.PaymentMethod,
		PaymentStatus: o.PaymentStatus,
		StaffID:       o.StaffID,
		Notes:         o.Notes,
		CreatedAt:     o.CreatedAt,
		UpdatedAt:     o.UpdatedAt,
	}
}
