package inventory_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexsagar/teantea-api/internal/application/dto"
	"github.com/alexsagar/teantea-api/internal/application/inventory"
	"github.com/alexsagar/teantea-api/internal/domain"
	"github.com/alexsagar/teantea-api/internal/domain/entity"
	"github.com/alexsagar/teantea-api/internal/domain/event"
	"github.com/alexsagar/teantea-api/internal/domain/repository"
)

const testShop = "4821"

// fakeInventoryRepo in-memory item store with the same atomic-adjust semantics
// as the SQL implementation.
type fakeInventoryRepo struct {
	items map[string]*entity.Inventory
}

func newFakeInventoryRepo(items ...*entity.Inventory) *fakeInventoryRepo {
	r := &fakeInventoryRepo{items: map[string]*entity.Inventory{}}
	for _, it := range items {
		r.items[it.ID] = it
	}
	return r
}

func (r *fakeInventoryRepo) Create(_ context.Context, it *entity.Inventory) error {
	r.items[it.ID] = it
	return nil
}

func (r *fakeInventoryRepo) GetByID(_ context.Context, shopID, id string) (*entity.Inventory, error) {
	it, ok := r.items[id]
	if !ok || it.ShopID != shopID {
		return nil, nil
	}
	return it, nil
}

func (r *fakeInventoryRepo) ListByShop(context.Context, string, string, int, int) ([]*entity.Inventory, error) {
	return nil, nil
}

func (r *fakeInventoryRepo) ListLowStock(_ context.Context, shopID string) ([]*entity.Inventory, error) {
	var out []*entity.Inventory
	for _, it := range r.items {
		if it.ShopID == shopID && it.LowStock() {
			out = append(out, it)
		}
	}
	return out, nil
}

func (r *fakeInventoryRepo) Update(_ context.Context, it *entity.Inventory) error {
	r.items[it.ID] = it
	return nil
}

func (r *fakeInventoryRepo) Delete(_ context.Context, shopID, id string) error {
	it, ok := r.items[id]
	if !ok || it.ShopID != shopID {
		return domain.ErrNotFound
	}
	delete(r.items, id)
	return nil
}

func (r *fakeInventoryRepo) AdjustStock(_ context.Context, shopID, id string, delta decimal.Decimal, touchRestocked bool) (*entity.Inventory, error) {
	it, ok := r.items[id]
	if !ok || it.ShopID != shopID {
		return nil, domain.ErrNotFound
	}
	next := it.CurrentStock.Add(delta)
	if next.IsNegative() {
		return nil, domain.ErrInsufficientStock
	}
	it.CurrentStock = next
	if touchRestocked {
		now := time.Now()
		it.LastRestocked = &now
	}
	cp := *it
	return &cp, nil
}

// fakeSupplierRepo captures RecordPurchase calls.
type fakeSupplierRepo struct {
	purchases int
	lastID    string
	lastAmt   decimal.Decimal
}

func (r *fakeSupplierRepo) Create(context.Context, *entity.Supplier) error { return nil }
func (r *fakeSupplierRepo) GetByID(context.Context, string, string) (*entity.Supplier, error) {
	return nil, nil
}
func (r *fakeSupplierRepo) ListByShop(context.Context, string, int, int) ([]*entity.Supplier, error) {
	return nil, nil
}
func (r *fakeSupplierRepo) Update(context.Context, *entity.Supplier) error { return nil }
func (r *fakeSupplierRepo) Delete(context.Context, string, string) error {
	return nil
}
func (r *fakeSupplierRepo) RecordPurchase(_ context.Context, _, id string, amount decimal.Decimal, _ time.Time) error {
	r.purchases++
	r.lastID = id
	r.lastAmt = amount
	return nil
}

// fakeStockInRepo captures created receipts.
type fakeStockInRepo struct {
	recs map[string]*entity.StockIn
}

func newFakeStockInRepo() *fakeStockInRepo {
	return &fakeStockInRepo{recs: map[string]*entity.StockIn{}}
}

func (r *fakeStockInRepo) Create(_ context.Context, rec *entity.StockIn) error {
	cp := *rec
	r.recs[rec.ID] = &cp
	return nil
}

func (r *fakeStockInRepo) GetByID(_ context.Context, shopID, id string) (*entity.StockIn, error) {
	rec, ok := r.recs[id]
	if !ok || rec.ShopID != shopID {
		return nil, nil
	}
	return rec, nil
}

func (r *fakeStockInRepo) ListByShop(context.Context, string, time.Time, time.Time, int, int) ([]*entity.StockIn, error) {
	return nil, nil
}

// fakeTxRunner hands the same fakes back to the callback; a callback error
// stands in for a rollback.
type fakeTxRunner struct {
	inv      repository.InventoryRepository
	sup      repository.SupplierRepository
	stockIns repository.StockInRepository
}

func (t *fakeTxRunner) RunStockIn(_ context.Context, fn func(
	repository.InventoryRepository,
	repository.SupplierRepository,
	repository.StockInRepository,
) error) error {
	return fn(t.inv, t.sup, t.stockIns)
}

type capturePublisher struct {
	events []event.Event
}

func (p *capturePublisher) Publish(_ context.Context, _ string, ev event.Event) {
	p.events = append(p.events, ev)
}

func testItem(stock, min string) *entity.Inventory {
	return &entity.Inventory{
		ID:           "sugar",
		ShopID:       testShop,
		Name:         "Sugar",
		Category:     "dry-goods",
		CurrentStock: decimal.RequireFromString(stock),
		MinStock:     decimal.RequireFromString(min),
		Unit:         "kg",
	}
}

func newTestUseCase(items *fakeInventoryRepo, pub event.Publisher) (*inventory.UseCase, *fakeSupplierRepo, *fakeStockInRepo) {
	suppliers := &fakeSupplierRepo{}
	stockIns := newFakeStockInRepo()
	tx := &fakeTxRunner{inv: items, sup: suppliers, stockIns: stockIns}
	return inventory.NewUseCase(items, suppliers, stockIns, tx, pub), suppliers, stockIns
}

func TestAdjust_SubtractBeyondStock(t *testing.T) {
	items := newFakeInventoryRepo(testItem("5", "1"))
	uc, _, _ := newTestUseCase(items, event.Noop{})

	_, err := uc.Adjust(context.Background(), testShop, "sugar", dto.AdjustStockRequest{
		Quantity:  decimal.RequireFromString("7"),
		Operation: "subtract",
	})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	// The failed subtract must not change the stored stock.
	it, err := uc.GetByID(context.Background(), testShop, "sugar")
	require.NoError(t, err)
	assert.True(t, it.CurrentStock.Equal(decimal.RequireFromString("5")))
}

func TestAdjust_SubtractToMinEmitsLowStockAlert(t *testing.T) {
	items := newFakeInventoryRepo(testItem("5", "2"))
	pub := &capturePublisher{}
	uc, _, _ := newTestUseCase(items, pub)

	res, err := uc.Adjust(context.Background(), testShop, "sugar", dto.AdjustStockRequest{
		Quantity:  decimal.RequireFromString("3"),
		Operation: "subtract",
	})
	require.NoError(t, err)
	assert.True(t, res.CurrentStock.Equal(decimal.RequireFromString("2")))
	assert.True(t, res.IsLowStock)

	require.Len(t, pub.events, 1)
	assert.Equal(t, event.TypeLowStockAlert, pub.events[0].Type)
}

func TestAdjust_AddTouchesLastRestocked(t *testing.T) {
	items := newFakeInventoryRepo(testItem("5", "1"))
	uc, _, _ := newTestUseCase(items, event.Noop{})

	res, err := uc.Adjust(context.Background(), testShop, "sugar", dto.AdjustStockRequest{
		Quantity:  decimal.RequireFromString("10"),
		Operation: "add",
	})
	require.NoError(t, err)
	assert.True(t, res.CurrentStock.Equal(decimal.RequireFromString("15")))
	assert.NotNil(t, res.LastRestocked)
	assert.False(t, res.IsLowStock)
}

func TestAdjust_RejectsBadInput(t *testing.T) {
	items := newFakeInventoryRepo(testItem("5", "1"))
	uc, _, _ := newTestUseCase(items, event.Noop{})

	_, err := uc.Adjust(context.Background(), testShop, "sugar", dto.AdjustStockRequest{
		Quantity:  decimal.RequireFromString("-1"),
		Operation: "add",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Adjust(context.Background(), testShop, "sugar", dto.AdjustStockRequest{
		Quantity:  decimal.RequireFromString("1"),
		Operation: "multiply",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// A foreign shop with the item's real id gets not-found and no stock change.
func TestAdjust_ForeignShopIsNotFound(t *testing.T) {
	items := newFakeInventoryRepo(testItem("5", "1"))
	uc, _, _ := newTestUseCase(items, event.Noop{})

	_, err := uc.Adjust(context.Background(), "9999", "sugar", dto.AdjustStockRequest{
		Quantity:  decimal.RequireFromString("2"),
		Operation: "subtract",
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	it, err := uc.GetByID(context.Background(), testShop, "sugar")
	require.NoError(t, err)
	assert.True(t, it.CurrentStock.Equal(decimal.RequireFromString("5")))
}

func TestStockIn_AppliesAllThreeEffects(t *testing.T) {
	items := newFakeInventoryRepo(testItem("5", "1"))
	uc, suppliers, stockIns := newTestUseCase(items, event.Noop{})

	res, err := uc.StockIn(context.Background(), testShop, "user-9", dto.CreateStockInRequest{
		SupplierID: "sup-1",
		ProductID:  "sugar",
		Quantity:   decimal.RequireFromString("20"),
		UnitPrice:  decimal.RequireFromString("1.50"),
	})
	require.NoError(t, err)

	// Stock went up.
	it, err := uc.GetByID(context.Background(), testShop, "sugar")
	require.NoError(t, err)
	assert.True(t, it.CurrentStock.Equal(decimal.RequireFromString("25")))

	// Total defaults to unit price * quantity; unit defaults from the item.
	assert.True(t, res.TotalPrice.Equal(decimal.RequireFromString("30")))
	assert.Equal(t, "kg", res.Unit)
	assert.Equal(t, "user-9", res.CreatedBy)

	// Supplier statistics recorded once with the receipt total.
	assert.Equal(t, 1, suppliers.purchases)
	assert.Equal(t, "sup-1", suppliers.lastID)
	assert.True(t, suppliers.lastAmt.Equal(decimal.RequireFromString("30")))

	// The receipt row is stored and retrievable.
	assert.Len(t, stockIns.recs, 1)
	got, err := uc.GetStockIn(context.Background(), testShop, res.ID)
	require.NoError(t, err)
	assert.True(t, got.Quantity.Equal(decimal.RequireFromString("20")))
}

func TestStockIn_UnknownProductFails(t *testing.T) {
	items := newFakeInventoryRepo(testItem("5", "1"))
	uc, suppliers, stockIns := newTestUseCase(items, event.Noop{})

	_, err := uc.StockIn(context.Background(), testShop, "user-9", dto.CreateStockInRequest{
		SupplierID: "sup-1",
		ProductID:  "nope",
		Quantity:   decimal.RequireFromString("2"),
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Zero(t, suppliers.purchases)
	assert.Empty(t, stockIns.recs)
}

func TestStockIn_RejectsNonPositiveQuantity(t *testing.T) {
	items := newFakeInventoryRepo(testItem("5", "1"))
	uc, _, _ := newTestUseCase(items, event.Noop{})

	_, err := uc.StockIn(context.Background(), testShop, "user-9", dto.CreateStockInRequest{
		SupplierID: "sup-1",
		ProductID:  "sugar",
		Quantity:   decimal.Zero,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
