package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/alexsagar/teantea-api/internal/application/inventory"
	"github.com/alexsagar/teantea-api/internal/domain/repository"
)

// Ensure TxRunner implements the stock-in transaction port.
var _ inventory.TxRunner = (*TxRunner)(nil)

// TxRunner executes callbacks inside a PostgreSQL transaction with tx-bound
// repositories. Used by the stock-in receipt, the only multi-entity write in
// the system: inventory increment, supplier statistics and the receipt insert
// commit or roll back together.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner builds the runner over the pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// RunStockIn begins a transaction, runs fn with repos bound to it, and commits
// or rolls back depending on fn's result.
func (r *TxRunner) RunStockIn(ctx context.Context, fn func(
	invRepo repository.InventoryRepository,
	supplierRepo repository.SupplierRepository,
	stockInRepo repository.StockInRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewInventoryRepository(tx), NewSupplierRepository(tx), NewStockInRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
