package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/alexsagar/teantea-api/internal/application/dto"
	"github.com/alexsagar/teantea-api/internal/domain"
	"github.com/alexsagar/teantea-api/internal/domain/entity"
	"github.com/alexsagar/teantea-api/internal/domain/event"
	"github.com/alexsagar/teantea-api/internal/domain/repository"
)

// TableUseCase dining-table management and reservations. Status changes fan
// out as table-status-update events.
type TableUseCase struct {
	repo      repository.TableRepository
	publisher event.Publisher
}

// NewTableUseCase builds the usecase.
func NewTableUseCase(repo repository.TableRepository, publisher event.Publisher) *TableUseCase {
	return &TableUseCase{repo: repo, publisher: publisher}
}

// Create adds a table. The number is unique within the shop.
func (uc *TableUseCase) Create(ctx context.Context, shopID string, in dto.CreateTableRequest) (*dto.TableResponse, error) {
	if in.Number < 1 || in.Capacity < 1 {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	table := &entity.Table{
		ID:        uuid.New().String(),
		ShopID:    shopID,
		Number:    in.Number,
		Capacity:  in.Capacity,
		Status:    entity.TableAvailable,
		Location:  in.Location,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(ctx, table); err != nil {
		return nil, err
	}
	return toTableResponse(table), nil
}

// GetByID returns one table.
func (uc *TableUseCase) GetByID(ctx context.Context, shopID, id string) (*dto.TableResponse, error) {
	table, err := uc.repo.GetByID(ctx, shopID, id)
	if err != nil {
		return nil, err
	}
	if table == nil {
		return nil, domain.ErrNotFound
	}
	return toTableResponse(table), nil
}

// List lists tables, optionally filtered by status.
func (uc *TableUseCase) List(ctx context.Context, shopID, status string) ([]dto.TableResponse, error) {
	if status != "" && !entity.ValidTableStatus(status) {
		return nil, domain.ErrInvalidInput
	}
	list, err := uc.repo.ListByShop(ctx, shopID, status)
	if err != nil {
		return nil, err
	}
	items := make([]dto.TableResponse, 0, len(list))
	for _, t := range list {
		items = append(items, *toTableResponse(t))
	}
	return items, nil
}

// Update edits a table's number, capacity or location.
func (uc *TableUseCase) Update(ctx context.Context, shopID, id string, in dto.UpdateTableRequest) (*dto.TableResponse, error) {
	table, err := uc.repo.GetByID(ctx, shopID, id)
	if err != nil {
		return nil, err
	}
	if table == nil {
		return nil, domain.ErrNotFound
	}
	if in.Number != nil {
		if *in.Number < 1 {
			return nil, domain.ErrInvalidInput
		}
		table.Number = *in.Number
	}
	if in.Capacity != nil {
		if *in.Capacity < 1 {
			return nil, domain.ErrInvalidInput
		}
		table.Capacity = *in.Capacity
	}
	if in.Location != nil {
		table.Location = *in.Location
	}
	table.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, table); err != nil {
		return nil, err
	}
	return toTableResponse(table), nil
}

// Delete removes a table.
func (uc *TableUseCase) Delete(ctx context.Context, shopID, id string) error {
	return uc.repo.Delete(ctx, shopID, id)
}

// SetStatus sets the table status and publishes the update.
func (uc *TableUseCase) SetStatus(ctx context.Context, shopID, id, status string) (*dto.TableResponse, error) {
	if !entity.ValidTableStatus(status) {
		return nil, domain.ErrInvalidInput
	}
	if err := uc.repo.SetStatus(ctx, shopID, id, status); err != nil {
		return nil, err
	}
	uc.publisher.Publish(ctx, shopID, event.New(event.TypeTableStatusUpdate, map[string]any{
		"tableId": id,
		"status":  status,
	}))
	return uc.GetByID(ctx, shopID, id)
}

// Reserve attaches a reservation and marks the table reserved.
func (uc *TableUseCase) Reserve(ctx context.Context, shopID, id string, in dto.ReserveTableRequest) (*dto.TableResponse, error) {
	if in.Customer == "" || in.ReservationTime.IsZero() {
		return nil, domain.ErrInvalidInput
	}
	res := &entity.Reservation{
		Customer:        in.Customer,
		ReservationTime: in.ReservationTime,
		Duration:        in.Duration,
		SpecialRequests: in.SpecialRequests,
	}
	if err := uc.repo.SetReservation(ctx, shopID, id, res); err != nil {
		return nil, err
	}
	return uc.SetStatus(ctx, shopID, id, entity.TableReserved)
}

// ClearReservation removes the reservation and frees the table.
func (uc *TableUseCase) ClearReservation(ctx context.Context, shopID, id string) (*dto.TableResponse, error) {
	if err := uc.repo.SetReservation(ctx, shopID, id, nil); err != nil {
		return nil, err
	}
	return uc.SetStatus(ctx, shopID, id, entity.TableAvailable)
}

func toTableResponse(t *entity.Table) *dto.TableResponse {
	if t == nil {
		return nil
	}
	return &dto.TableResponse{
		ID:             t.ID,
		ShopID:         t.ShopID,
		Number:         t.Number,
		Capacity:       t.Capacity,
		Status:         t.Status,
		Location:       t.Location,
		CurrentOrderID: t.CurrentOrderID,
		Reservation:    t.Reservation,
		CreatedAt:      t.CreatedAt,
		UpdatedAt:      t.UpdatedAt,
	}
}
