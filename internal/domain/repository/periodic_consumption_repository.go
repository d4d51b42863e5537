package repository

import (
	"context"

	"github.com/jhoicas/costeo-api/internal/domain/entity"
)

// PeriodicConsumptionRepository define el puerto de persistencia para registros de consumo.
// Existe a lo sumo un registro por período de trabajo.
type PeriodicConsumptionRepository interface {
	// GetByWorkPeriod carga el registro con Items y CostItems; nil, nil si no existe.
	GetByWorkPeriod(ctx context.Context, workPeriodID string) (*entity.PeriodicConsumption, error)
	// Create asigna IDs vacíos y persiste registro, ítems y costos.
	// Devuelve domain.ErrDuplicate si el período ya tiene registro.
	Create(ctx context.Context, pc *entity.PeriodicConsumption) error
	// Update guarda cantidades de ítems y costos; inserta CostItems sin ID.
	Update(ctx context.Context, pc *entity.PeriodicConsumption) error
	ExistsForInventoryItem(ctx context.Context, inventoryItemID string) (bool, error)
}
