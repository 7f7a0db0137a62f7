package order_test

import (
	"context"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexsagar/teantea-api/internal/application/dto"
	"github.com/alexsagar/teantea-api/internal/application/order"
	"github.com/alexsagar/teantea-api/internal/domain"
	"github.com/alexsagar/teantea-api/internal/domain/entity"
	"github.com/alexsagar/teantea-api/internal/domain/event"
	"github.com/alexsagar/teantea-api/internal/domain/repository"
)

const testShop = "4821"

// fakeOrderRepo in-memory order store. failCreates makes the first N creates
// fail with ErrDuplicate to exercise the order-number retry.
type fakeOrderRepo struct {
	orders      map[string]*entity.Order
	failCreates int
	created     []string // order numbers in create order
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{orders: map[string]*entity.Order{}}
}

func (r *fakeOrderRepo) Create(_ context.Context, o *entity.Order) error {
	if r.failCreates > 0 {
		r.failCreates--
		return domain.ErrDuplicate
	}
	cp := *o
	r.orders[o.ID] = &cp
	r.created = append(r.created, o.OrderNumber)
	return nil
}

func (r *fakeOrderRepo) GetByID(_ context.Context, shopID, id string) (*entity.Order, error) {
	o, ok := r.orders[id]
	if !ok || o.ShopID != shopID {
		return nil, nil
	}
	cp := *o
	return &cp, nil
}

func (r *fakeOrderRepo) ListByShop(_ context.Context, shopID string, _ repository.OrderFilter, _, _ int) ([]*entity.Order, error) {
	var out []*entity.Order
	for _, o := range r.orders {
		if o.ShopID == shopID {
			out = append(out, o)
		}
	}
	return out, nil
}

func (r *fakeOrderRepo) Update(_ context.Context, o *entity.Order) error {
	if _, ok := r.orders[o.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *o
	r.orders[o.ID] = &cp
	return nil
}

func (r *fakeOrderRepo) UpdateStatus(_ context.Context, shopID, id, status string) error {
	o, ok := r.orders[id]
	if !ok || o.ShopID != shopID {
		return domain.ErrNotFound
	}
	o.Status = status
	return nil
}

func (r *fakeOrderRepo) Delete(_ context.Context, shopID, id string) error {
	o, ok := r.orders[id]
	if !ok || o.ShopID != shopID {
		return domain.ErrNotFound
	}
	delete(r.orders, id)
	return nil
}

// fakeMenuRepo serves a fixed menu; only GetByID matters here.
type fakeMenuRepo struct {
	items map[string]*entity.MenuItem
}

func (r *fakeMenuRepo) Create(context.Context, *entity.MenuItem) error { return nil }
func (r *fakeMenuRepo) GetByID(_ context.Context, shopID, id string) (*entity.MenuItem, error) {
	it, ok := r.items[id]
	if !ok || it.ShopID != shopID {
		return nil, nil
	}
	return it, nil
}
func (r *fakeMenuRepo) ListByShop(context.Context, string, repository.MenuFilter, int, int) ([]*entity.MenuItem, error) {
	return nil, nil
}
func (r *fakeMenuRepo) Update(context.Context, *entity.MenuItem) error { return nil }
func (r *fakeMenuRepo) SetAvailability(context.Context, string, string, bool) error {
	return nil
}
func (r *fakeMenuRepo) Delete(context.Context, string, string) error { return nil }

// fakeTableRepo records the order link and status writes.
type fakeTableRepo struct {
	currentOrder map[string]*string
	status       map[string]string
}

func newFakeTableRepo() *fakeTableRepo {
	return &fakeTableRepo{currentOrder: map[string]*string{}, status: map[string]string{}}
}

func (r *fakeTableRepo) Create(context.Context, *entity.Table) error { return nil }
func (r *fakeTableRepo) GetByID(context.Context, string, string) (*entity.Table, error) {
	return nil, nil
}
func (r *fakeTableRepo) ListByShop(context.Context, string, string) ([]*entity.Table, error) {
	return nil, nil
}
func (r *fakeTableRepo) Update(context.Context, *entity.Table) error { return nil }
func (r *fakeTableRepo) Delete(context.Context, string, string) error {
	return nil
}
func (r *fakeTableRepo) SetStatus(_ context.Context, _, id, status string) error {
	r.status[id] = status
	return nil
}
func (r *fakeTableRepo) SetCurrentOrder(_ context.Context, _, id string, orderID *string) error {
	r.currentOrder[id] = orderID
	return nil
}
func (r *fakeTableRepo) SetReservation(context.Context, string, string, *entity.Reservation) error {
	return nil
}

// capturePublisher collects the published events.
type capturePublisher struct {
	events []event.Event
}

func (p *capturePublisher) Publish(_ context.Context, _ string, ev event.Event) {
	p.events = append(p.events, ev)
}

func (p *capturePublisher) types() []string {
	out := make([]string, 0, len(p.events))
	for _, ev := range p.events {
		out = append(out, ev.Type)
	}
	return out
}

func testMenu() *fakeMenuRepo {
	return &fakeMenuRepo{items: map[string]*entity.MenuItem{
		"tea": {
			ID: "tea", ShopID: testShop, Name: "Milk Tea",
			Price: decimal.RequireFromString("3.50"), IsAvailable: true,
		},
		"cake": {
			ID: "cake", ShopID: testShop, Name: "Cheesecake",
			Price: decimal.RequireFromString("5.25"), IsAvailable: true,
		},
		"off-menu": {
			ID: "off-menu", ShopID: testShop, Name: "Seasonal Special",
			Price: decimal.RequireFromString("9.99"), IsAvailable: false,
		},
	}}
}

func TestCreate_ComputesTotalsFromMenuSnapshots(t *testing.T) {
	repo := newFakeOrderRepo()
	pub := &capturePublisher{}
	uc := order.NewUseCase(repo, testMenu(), newFakeTableRepo(), pub)

	res, err := uc.Create(context.Background(), testShop, "staff-1", dto.CreateOrderRequest{
		Items: []dto.OrderItemRequest{
			{MenuItemID: "tea", Quantity: 2},
			{MenuItemID: "cake", Quantity: 1, SpecialInstructions: "no sugar"},
		},
		OrderType:     entity.OrderTakeaway,
		PaymentMethod: entity.PaymentCash,
	})
	require.NoError(t, err)

	// 2 * 3.50 + 5.25 = 12.25, no tax applied.
	assert.True(t, res.Subtotal.Equal(decimal.RequireFromString("12.25")), "subtotal %s", res.Subtotal)
	assert.True(t, res.Tax.IsZero())
	assert.True(t, res.Total.Equal(res.Subtotal))
	assert.Equal(t, entity.OrderPending, res.Status)
	assert.Equal(t, entity.PaymentPending, res.PaymentStatus)
	assert.Equal(t, "staff-1", res.StaffID)

	// Name and price are snapshotted from the menu.
	require.Len(t, res.Items, 2)
	assert.Equal(t, "Milk Tea", res.Items[0].Name)
	assert.True(t, res.Items[0].Subtotal.Equal(decimal.RequireFromString("7.00")))

	require.True(t, strings.HasPrefix(res.OrderNumber, "ORD"))
	assert.Len(t, res.OrderNumber, 3+6+4)

	assert.Equal(t, []string{event.TypeNewOrder}, pub.types())
}

func TestCreate_UnavailableItem(t *testing.T) {
	uc := order.NewUseCase(newFakeOrderRepo(), testMenu(), newFakeTableRepo(), event.Noop{})

	_, err := uc.Create(context.Background(), testShop, "staff-1", dto.CreateOrderRequest{
		Items:         []dto.OrderItemRequest{{MenuItemID: "off-menu", Quantity: 1}},
		OrderType:     entity.OrderTakeaway,
		PaymentMethod: entity.PaymentCard,
	})
	assert.ErrorIs(t, err, domain.ErrUnavailable)
}

func TestCreate_UnknownItemAndBadQuantity(t *testing.T) {
	uc := order.NewUseCase(newFakeOrderRepo(), testMenu(), newFakeTableRepo(), event.Noop{})

	_, err := uc.Create(context.Background(), testShop, "staff-1", dto.CreateOrderRequest{
		Items:         []dto.OrderItemRequest{{MenuItemID: "nope", Quantity: 1}},
		OrderType:     entity.OrderTakeaway,
		PaymentMethod: entity.PaymentCash,
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = uc.Create(context.Background(), testShop, "staff-1", dto.CreateOrderRequest{
		Items:         []dto.OrderItemRequest{{MenuItemID: "tea", Quantity: 0}},
		OrderType:     entity.OrderTakeaway,
		PaymentMethod: entity.PaymentCash,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCreate_RetriesOrderNumberOnCollision(t *testing.T) {
	repo := newFakeOrderRepo()
	repo.failCreates = 2
	uc := order.NewUseCase(repo, testMenu(), newFakeTableRepo(), event.Noop{})

	res, err := uc.Create(context.Background(), testShop, "staff-1", dto.CreateOrderRequest{
		Items:         []dto.OrderItemRequest{{MenuItemID: "tea", Quantity: 1}},
		OrderType:     entity.OrderTakeaway,
		PaymentMethod: entity.PaymentCash,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, res.OrderNumber)
	assert.Len(t, repo.created, 1)
}

func TestCreate_DineInOccupiesTable(t *testing.T) {
	repo := newFakeOrderRepo()
	tables := newFakeTableRepo()
	pub := &capturePublisher{}
	uc := order.NewUseCase(repo, testMenu(), tables, pub)

	tableID := "t1"
	res, err := uc.Create(context.Background(), testShop, "staff-1", dto.CreateOrderRequest{
		Items:         []dto.OrderItemRequest{{MenuItemID: "tea", Quantity: 1}},
		TableID:       &tableID,
		OrderType:     entity.OrderDineIn,
		PaymentMethod: entity.PaymentCash,
	})
	require.NoError(t, err)

	require.NotNil(t, tables.currentOrder["t1"])
	assert.Equal(t, res.ID, *tables.currentOrder["t1"])
	assert.Equal(t, entity.TableOccupied, tables.status["t1"])
	assert.Equal(t, []string{event.TypeTableStatusUpdate, event.TypeNewOrder}, pub.types())
}

func TestUpdateStatus_CompletedFreesTable(t *testing.T) {
	repo := newFakeOrderRepo()
	tables := newFakeTableRepo()
	pub := &capturePublisher{}
	uc := order.NewUseCase(repo, testMenu(), tables, pub)

	tableID := "t7"
	res, err := uc.Create(context.Background(), testShop, "staff-1", dto.CreateOrderRequest{
		Items:         []dto.OrderItemRequest{{MenuItemID: "cake", Quantity: 1}},
		TableID:       &tableID,
		OrderType:     entity.OrderDineIn,
		PaymentMethod: entity.PaymentCard,
	})
	require.NoError(t, err)

	updated, err := uc.UpdateStatus(context.Background(), testShop, res.ID, entity.OrderCompleted)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderCompleted, updated.Status)

	assert.Nil(t, tables.currentOrder["t7"])
	assert.Equal(t, entity.TableAvailable, tables.status["t7"])
}

func TestUpdateStatus_RejectsUnknownStatus(t *testing.T) {
	uc := order.NewUseCase(newFakeOrderRepo(), testMenu(), newFakeTableRepo(), event.Noop{})

	_, err := uc.UpdateStatus(context.Background(), testShop, "any", "shipped")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestPermanentDelete_OnlyFromCancelled(t *testing.T) {
	repo := newFakeOrderRepo()
	uc := order.NewUseCase(repo, testMenu(), newFakeTableRepo(), event.Noop{})

	res, err := uc.Create(context.Background(), testShop, "staff-1", dto.CreateOrderRequest{
		Items:         []dto.OrderItemRequest{{MenuItemID: "tea", Quantity: 1}},
		OrderType:     entity.OrderTakeaway,
		PaymentMethod: entity.PaymentCash,
	})
	require.NoError(t, err)

	// Still pending: the delete must refuse and leave the order in place.
	err = uc.PermanentDelete(context.Background(), testShop, res.ID)
	assert.ErrorIs(t, err, domain.ErrInvalidState)
	got, err := uc.GetByID(context.Background(), testShop, res.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderPending, got.Status)

	_, err = uc.Cancel(context.Background(), testShop, res.ID)
	require.NoError(t, err)

	require.NoError(t, uc.PermanentDelete(context.Background(), testShop, res.ID))
	_, err = uc.GetByID(context.Background(), testShop, res.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// A caller scoped to another shop must not read or mutate the order, even
// when it holds the order's real id.
func TestForeignShop_CannotReadOrMutateOrder(t *testing.T) {
	repo := newFakeOrderRepo()
	uc := order.NewUseCase(repo, testMenu(), newFakeTableRepo(), event.Noop{})

	res, err := uc.Create(context.Background(), testShop, "staff-1", dto.CreateOrderRequest{
		Items:         []dto.OrderItemRequest{{MenuItemID: "tea", Quantity: 1}},
		OrderType:     entity.OrderTakeaway,
		PaymentMethod: entity.PaymentCash,
	})
	require.NoError(t, err)

	const foreignShop = "9999"

	_, err = uc.GetByID(context.Background(), foreignShop, res.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = uc.UpdateStatus(context.Background(), foreignShop, res.ID, entity.OrderCompleted)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = uc.Cancel(context.Background(), foreignShop, res.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	err = uc.PermanentDelete(context.Background(), foreignShop, res.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	// The owning shop still sees the order, untouched.
	got, err := uc.GetByID(context.Background(), testShop, res.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderPending, got.Status)
}

func TestUpdate_ReplacingItemsRecomputesTotals(t *testing.T) {
	repo := newFakeOrderRepo()
	uc := order.NewUseCase(repo, testMenu(), newFakeTableRepo(), event.Noop{})

	res, err := uc.Create(context.Background(), testShop, "staff-1", dto.CreateOrderRequest{
		Items:         []dto.OrderItemRequest{{MenuItemID: "tea", Quantity: 1}},
		OrderType:     entity.OrderTakeaway,
		PaymentMethod: entity.PaymentCash,
	})
	require.NoError(t, err)

	updated, err := uc.Update(context.Background(), testShop, res.ID, dto.UpdateOrderRequest{
		Items: []dto.OrderItemRequest{{MenuItemID: "cake", Quantity: 3}},
	})
	require.NoError(t, err)
	assert.True(t, updated.Subtotal.Equal(decimal.RequireFromString("15.75")), "subtotal %s", updated.Subtotal)
	assert.True(t, updated.Total.Equal(updated.Subtotal))
	require.Len(t, updated.Items, 1)
	assert.Equal(t, "Cheesecake", updated.Items[0].Name)
}

func TestCreate_RejectsBadTypeAndPayment(t *testing.T) {
	uc := order.NewUseCase(newFakeOrderRepo(), testMenu(), newFakeTableRepo(), event.Noop{})

	_, err := uc.Create(context.Background(), testShop, "staff-1", dto.CreateOrderRequest{
		Items:         []dto.OrderItemRequest{{MenuItemID: "tea", Quantity: 1}},
		OrderType:     "drive-through",
		PaymentMethod: entity.PaymentCash,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Create(context.Background(), testShop, "staff-1", dto.CreateOrderRequest{
		Items:         []dto.OrderItemRequest{{MenuItemID: "tea", Quantity: 1}},
		OrderType:     entity.OrderTakeaway,
		PaymentMethod: "crypto",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
