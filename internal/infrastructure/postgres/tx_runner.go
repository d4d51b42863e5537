package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/costeo-api/internal/application/consumption"
)

// Ensure TxRunner implements consumption.TxRunner.
var _ consumption.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con repos atados a la tx y hace Commit o Rollback.
func (r *TxRunner) Run(ctx context.Context, fn func(repos consumption.Repositories) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewRepositories(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// NewRepositories construye todos los repositorios del costeo sobre q (pool o tx).
func NewRepositories(q Querier) consumption.Repositories {
	return consumption.Repositories{
		InventoryItems: NewInventoryItemRepository(q),
		Transactions:   NewInventoryTransactionRepository(q),
		Recipes:        NewRecipeRepository(q),
		Orders:         NewOrderRepository(q),
		Consumptions:   NewPeriodicConsumptionRepository(q),
		WorkPeriods:    NewWorkPeriodRepository(q),
		Menu:           NewMenuCatalog(q),
	}
}
