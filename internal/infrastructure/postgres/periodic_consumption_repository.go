package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/costeo-api/internal/domain"
	"github.com/jhoicas/costeo-api/internal/domain/entity"
	"github.com/jhoicas/costeo-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

var _ repository.PeriodicConsumptionRepository = (*PeriodicConsumptionRepo)(nil)

// PeriodicConsumptionRepo persistencia de registros de consumo con sus ítems y costos (usable con pool o tx).
type PeriodicConsumptionRepo struct {
	q Querier
}

// NewPeriodicConsumptionRepository construye el adaptador. Pasar pool o tx (Querier).
func NewPeriodicConsumptionRepository(q Querier) *PeriodicConsumptionRepo {
	return &PeriodicConsumptionRepo{q: q}
}

// GetByWorkPeriod carga el registro del período con ítems y costos; nil si no existe.
func (r *PeriodicConsumptionRepo) GetByWorkPeriod(ctx context.Context, workPeriodID string) (*entity.PeriodicConsumption, error) {
	var (
		pc  entity.PeriodicConsumption
		end *time.Time
	)
	err := r.q.QueryRow(ctx, `
		SELECT id, work_period_id, name, start_date, end_date, created_at, updated_at
		FROM periodic_consumptions WHERE work_period_id = $1`, workPeriodID).
		Scan(&pc.ID, &pc.WorkPeriodID, &pc.Name, &pc.StartDate, &end, &pc.CreatedAt, &pc.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get periodic consumption: %w", err)
	}
	pc.EndDate = derefTime(end)

	if pc.Items, err = r.loadItems(ctx, pc.ID); err != nil {
		return nil, err
	}
	if pc.CostItems, err = r.loadCostItems(ctx, pc.ID); err != nil {
		return nil, err
	}
	return &pc, nil
}

func (r *PeriodicConsumptionRepo) loadItems(ctx context.Context, pcID string) ([]entity.PeriodicConsumptionItem, error) {
	rows, err := r.q.Query(ctx, `
		SELECT id, inventory_item_id, inventory_item_name, group_code, base_unit, unit_multiplier,
		       in_stock, purchase, consumption, physical_inventory, cost
		FROM periodic_consumption_items
		WHERE periodic_consumption_id = $1
		ORDER BY inventory_item_name, id`, pcID)
	if err != nil {
		return nil, fmt.Errorf("list consumption items: %w", err)
	}
	defer rows.Close()
	var items []entity.PeriodicConsumptionItem
	for rows.Next() {
		var (
			it       entity.PeriodicConsumptionItem
			physical decimal.NullDecimal
		)
		if err := rows.Scan(&it.ID, &it.InventoryItemID, &it.InventoryItemName, &it.GroupCode, &it.BaseUnit,
			&it.UnitMultiplier, &it.InStock, &it.Purchase, &it.Consumption, &physical, &it.Cost); err != nil {
			return nil, fmt.Errorf("scan consumption item: %w", err)
		}
		if physical.Valid {
			v := physical.Decimal
			it.PhysicalInventory = &v
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

func (r *PeriodicConsumptionRepo) loadCostItems(ctx context.Context, pcID string) ([]entity.CostItem, error) {
	rows, err := r.q.Query(ctx, `
		SELECT id, name, portion_id, portion_name, menu_item_id, quantity, cost_prediction, cost
		FROM cost_items
		WHERE periodic_consumption_id = $1
		ORDER BY name, portion_name`, pcID)
	if err != nil {
		return nil, fmt.Errorf("list cost items: %w", err)
	}
	defer rows.Close()
	var list []entity.CostItem
	for rows.Next() {
		var ci entity.CostItem
		if err := rows.Scan(&ci.ID, &ci.Name, &ci.PortionID, &ci.PortionName, &ci.MenuItemID,
			&ci.Quantity, &ci.CostPrediction, &ci.Cost); err != nil {
			return nil, fmt.Errorf("scan cost item: %w", err)
		}
		list = append(list, ci)
	}
	return list, rows.Err()
}

// Create persiste el registro con sus ítems y costos. Asigna IDs vacíos.
// Devuelve domain.ErrDuplicate si el período ya tiene registro.
func (r *PeriodicConsumptionRepo) Create(ctx context.Context, pc *entity.PeriodicConsumption) error {
	if pc.ID == "" {
		pc.ID = uuid.New().String()
	}
	now := time.Now()
	pc.CreatedAt, pc.UpdatedAt = now, now
	_, err := r.q.Exec(ctx, `
		INSERT INTO periodic_consumptions (id, work_period_id, name, start_date, end_date, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		pc.ID, pc.WorkPeriodID, pc.Name, pc.StartDate, nullTime(pc.EndDate), pc.CreatedAt, pc.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert periodic consumption: %w", err)
	}

	b := &pgx.Batch{}
	for i := range pc.Items {
		queueInsertItem(b, pc.ID, &pc.Items[i])
	}
	for i := range pc.CostItems {
		queueInsertCostItem(b, pc.ID, &pc.CostItems[i])
	}
	return execBatch(ctx, r.q, b, "insert consumption lines")
}

// Update guarda cantidades, conteos y costos. CostItems sin ID se insertan.
func (r *PeriodicConsumptionRepo) Update(ctx context.Context, pc *entity.PeriodicConsumption) error {
	pc.UpdatedAt = time.Now()
	cmd, err := r.q.Exec(ctx,
		`UPDATE periodic_consumptions SET name = $2, end_date = $3, updated_at = $4 WHERE id = $1`,
		pc.ID, pc.Name, nullTime(pc.EndDate), pc.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update periodic consumption: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}

	b := &pgx.Batch{}
	for i := range pc.Items {
		it := &pc.Items[i]
		if it.ID == "" {
			queueInsertItem(b, pc.ID, it)
			continue
		}
		b.Queue(`
			UPDATE periodic_consumption_items
			SET in_stock = $2, purchase = $3, consumption = $4, physical_inventory = $5, cost = $6
			WHERE id = $1`,
			it.ID, it.InStock, it.Purchase, it.Consumption, it.PhysicalInventory, it.Cost)
	}
	for i := range pc.CostItems {
		ci := &pc.CostItems[i]
		if ci.ID == "" {
			queueInsertCostItem(b, pc.ID, ci)
			continue
		}
		b.Queue(`UPDATE cost_items SET quantity = $2, cost_prediction = $3, cost = $4 WHERE id = $1`,
			ci.ID, ci.Quantity, ci.CostPrediction, ci.Cost)
	}
	return execBatch(ctx, r.q, b, "update consumption lines")
}

// ExistsForInventoryItem indica si algún registro de consumo referencia el insumo.
func (r *PeriodicConsumptionRepo) ExistsForInventoryItem(ctx context.Context, inventoryItemID string) (bool, error) {
	var exists bool
	err := r.q.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM periodic_consumption_items WHERE inventory_item_id = $1)`,
		inventoryItemID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check inventory item usage: %w", err)
	}
	return exists, nil
}

func queueInsertItem(b *pgx.Batch, pcID string, it *entity.PeriodicConsumptionItem) {
	if it.ID == "" {
		it.ID = uuid.New().String()
	}
	b.Queue(`
		INSERT INTO periodic_consumption_items
		    (id, periodic_consumption_id, inventory_item_id, inventory_item_name, group_code, base_unit,
		     unit_multiplier, in_stock, purchase, consumption, physical_inventory, cost)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
		it.ID, pcID, it.InventoryItemID, it.InventoryItemName, it.GroupCode, it.BaseUnit,
		it.UnitMultiplier, it.InStock, it.Purchase, it.Consumption, it.PhysicalInventory, it.Cost)
}

func queueInsertCostItem(b *pgx.Batch, pcID string, ci *entity.CostItem) {
	if ci.ID == "" {
		ci.ID = uuid.New().String()
	}
	b.Queue(`
		INSERT INTO cost_items
		    (id, periodic_consumption_id, name, portion_id, portion_name, menu_item_id, quantity, cost_prediction, cost)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		ci.ID, pcID, ci.Name, ci.PortionID, ci.PortionName, ci.MenuItemID, ci.Quantity, ci.CostPrediction, ci.Cost)
}
