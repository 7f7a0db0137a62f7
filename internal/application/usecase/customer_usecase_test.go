package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexsagar/teantea-api/internal/application/dto"
	"github.com/alexsagar/teantea-api/internal/application/usecase"
	"github.com/alexsagar/teantea-api/internal/domain"
	"github.com/alexsagar/teantea-api/internal/domain/entity"
)

const testShop = "4821"

// fakeCustomerRepo in-memory customer store with the same atomic loyalty
// semantics as the SQL implementation.
type fakeCustomerRepo struct {
	customers map[string]*entity.Customer
	phones    map[string]bool
}

func newFakeCustomerRepo() *fakeCustomerRepo {
	return &fakeCustomerRepo{customers: map[string]*entity.Customer{}, phones: map[string]bool{}}
}

func (r *fakeCustomerRepo) Create(_ context.Context, c *entity.Customer) error {
	if r.phones[c.Phone] {
		return domain.ErrDuplicate
	}
	r.phones[c.Phone] = true
	cp := *c
	r.customers[c.ID] = &cp
	return nil
}

func (r *fakeCustomerRepo) GetByID(_ context.Context, shopID, id string) (*entity.Customer, error) {
	c, ok := r.customers[id]
	if !ok || c.ShopID != shopID {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (r *fakeCustomerRepo) ListByShop(context.Context, string, string, int, int) ([]*entity.Customer, error) {
	return nil, nil
}

func (r *fakeCustomerRepo) Update(_ context.Context, c *entity.Customer) error {
	cp := *c
	r.customers[c.ID] = &cp
	return nil
}

func (r *fakeCustomerRepo) Delete(_ context.Context, shopID, id string) error {
	c, ok := r.customers[id]
	if !ok || c.ShopID != shopID {
		return domain.ErrNotFound
	}
	delete(r.customers, id)
	return nil
}

func (r *fakeCustomerRepo) AdjustLoyaltyPoints(_ context.Context, shopID, id string, delta int) (*entity.Customer, error) {
	c, ok := r.customers[id]
	if !ok || c.ShopID != shopID {
		return nil, domain.ErrNotFound
	}
	next := c.LoyaltyPoints + delta
	if next < 0 {
		return nil, domain.ErrInsufficientPoints
	}
	c.LoyaltyPoints = next
	cp := *c
	return &cp, nil
}

func createCustomer(t *testing.T, uc *usecase.CustomerUseCase) *dto.CustomerResponse {
	t.Helper()
	res, err := uc.Create(context.Background(), testShop, dto.CreateCustomerRequest{
		Name:  "Aayush",
		Phone: "9800000001",
	})
	require.NoError(t, err)
	return res
}

func TestAdjustLoyalty_AddAndSubtract(t *testing.T) {
	uc := usecase.NewCustomerUseCase(newFakeCustomerRepo())
	c := createCustomer(t, uc)

	res, err := uc.AdjustLoyalty(context.Background(), testShop, c.ID, dto.AdjustLoyaltyRequest{
		Points: 120, Operation: "add",
	})
	require.NoError(t, err)
	assert.Equal(t, 120, res.LoyaltyPoints)

	res, err = uc.AdjustLoyalty(context.Background(), testShop, c.ID, dto.AdjustLoyaltyRequest{
		Points: 50, Operation: "subtract",
	})
	require.NoError(t, err)
	assert.Equal(t, 70, res.LoyaltyPoints)
}

func TestAdjustLoyalty_SubtractBeyondBalance(t *testing.T) {
	uc := usecase.NewCustomerUseCase(newFakeCustomerRepo())
	c := createCustomer(t, uc)

	_, err := uc.AdjustLoyalty(context.Background(), testShop, c.ID, dto.AdjustLoyaltyRequest{
		Points: 10, Operation: "subtract",
	})
	assert.ErrorIs(t, err, domain.ErrInsufficientPoints)

	// Balance unchanged after the failed subtract.
	got, err := uc.GetByID(context.Background(), testShop, c.ID)
	require.NoError(t, err)
	assert.Zero(t, got.LoyaltyPoints)
}

func TestAdjustLoyalty_RejectsBadInput(t *testing.T) {
	uc := usecase.NewCustomerUseCase(newFakeCustomerRepo())
	c := createCustomer(t, uc)

	_, err := uc.AdjustLoyalty(context.Background(), testShop, c.ID, dto.AdjustLoyaltyRequest{
		Points: 0, Operation: "add",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.AdjustLoyalty(context.Background(), testShop, c.ID, dto.AdjustLoyaltyRequest{
		Points: 5, Operation: "set",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// Another shop holding the customer's real id must get not-found, and the
// balance must stay put.
func TestAdjustLoyalty_ForeignShopIsNotFound(t *testing.T) {
	uc := usecase.NewCustomerUseCase(newFakeCustomerRepo())
	c := createCustomer(t, uc)

	_, err := uc.AdjustLoyalty(context.Background(), testShop, c.ID, dto.AdjustLoyaltyRequest{
		Points: 100, Operation: "add",
	})
	require.NoError(t, err)

	_, err = uc.AdjustLoyalty(context.Background(), "9999", c.ID, dto.AdjustLoyaltyRequest{
		Points: 10, Operation: "subtract",
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = uc.GetByID(context.Background(), "9999", c.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	got, err := uc.GetByID(context.Background(), testShop, c.ID)
	require.NoError(t, err)
	assert.Equal(t, 100, got.LoyaltyPoints)
}

func TestCreateCustomer_DuplicatePhone(t *testing.T) {
	uc := usecase.NewCustomerUseCase(newFakeCustomerRepo())
	createCustomer(t, uc)

	_, err := uc.Create(context.Background(), testShop, dto.CreateCustomerRequest{
		Name:  "Someone Else",
		Phone: "9800000001",
	})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}
