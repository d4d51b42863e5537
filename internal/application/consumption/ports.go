package consumption

import (
	"context"

	"github.com/jhoicas/costeo-api/internal/domain/entity"
	"github.com/jhoicas/costeo-api/internal/domain/repository"
)

// Repositories agrupa los repositorios atados a una misma transacción.
type Repositories struct {
	InventoryItems repository.InventoryItemRepository
	Transactions   repository.InventoryTransactionRepository
	Recipes        repository.RecipeRepository
	Orders         repository.OrderRepository
	Consumptions   repository.PeriodicConsumptionRepository
	WorkPeriods    repository.WorkPeriodRepository
	Menu           repository.MenuCatalog
}

// TxRunner ejecuta una función dentro de una transacción de BD, pasando repositorios atados a esa tx.
// Si fn retorna error se hace Rollback; si no, Commit.
type TxRunner interface {
	Run(ctx context.Context, fn func(repos Repositories) error) error
}

// ReportGenerator genera la representación PDF de un registro de consumo.
type ReportGenerator interface {
	GenerateConsumptionReport(ctx context.Context, pc *entity.PeriodicConsumption) ([]byte, error)
}
