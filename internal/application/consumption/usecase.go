package consumption

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/costeo-api/internal/domain"
	"github.com/jhoicas/costeo-api/internal/domain/costing"
	"github.com/jhoicas/costeo-api/internal/domain/entity"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// ConsumptionUseCase orquesta el costeo de un período: construye el registro de consumo,
// aplica las ventas por receta y concilia el costo real. Cada operación corre en una sola
// transacción; si algo falla no queda nada persistido y el siguiente disparo recalcula.
type ConsumptionUseCase struct {
	tx      TxRunner
	reports ReportGenerator
	log     zerolog.Logger
}

// NewConsumptionUseCase construye el caso de uso. reports puede ser nil si no se exponen reportes.
func NewConsumptionUseCase(tx TxRunner, reports ReportGenerator, log zerolog.Logger) *ConsumptionUseCase {
	return &ConsumptionUseCase{
		tx:      tx,
		reports: reports,
		log:     log.With().Str("component", "consumption").Logger(),
	}
}

// GetOrCreateCurrent devuelve el registro del período actual y lo crea si aún no existe.
// Retorna domain.ErrNoWorkPeriod si nunca se ha iniciado un período.
func (uc *ConsumptionUseCase) GetOrCreateCurrent(ctx context.Context) (*entity.PeriodicConsumption, error) {
	var out *entity.PeriodicConsumption
	err := uc.tx.Run(ctx, func(r Repositories) error {
		period, err := r.WorkPeriods.Current(ctx)
		if err != nil {
			return fmt.Errorf("consumo: período actual: %w", err)
		}
		if period == nil {
			return domain.ErrNoWorkPeriod
		}
		out, err = uc.getOrCreate(ctx, r, period)
		return err
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// GetPrevious devuelve el registro del período anterior al actual o nil si no existe.
func (uc *ConsumptionUseCase) GetPrevious(ctx context.Context) (*entity.PeriodicConsumption, error) {
	var out *entity.PeriodicConsumption
	err := uc.tx.Run(ctx, func(r Repositories) error {
		prev, err := previousPeriod(ctx, r)
		if err != nil || prev == nil {
			return err
		}
		out, err = r.Consumptions.GetByWorkPeriod(ctx, prev.ID)
		if err != nil {
			return fmt.Errorf("consumo: registro anterior: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// RecalculateCost concilia el costo real de pc con las ventas de period y persiste el resultado.
func (uc *ConsumptionUseCase) RecalculateCost(ctx context.Context, pc *entity.PeriodicConsumption, period *entity.WorkPeriod) error {
	if pc == nil || period == nil {
		return domain.ErrInvalidInput
	}
	return uc.tx.Run(ctx, func(r Repositories) error {
		return uc.recalculate(ctx, r, pc, period)
	})
}

// RecalculatePrevious concilia el registro del período anterior al actual.
// Devuelve nil, nil si no hay período anterior o este no tiene registro.
func (uc *ConsumptionUseCase) RecalculatePrevious(ctx context.Context) (*entity.PeriodicConsumption, error) {
	var out *entity.PeriodicConsumption
	err := uc.tx.Run(ctx, func(r Repositories) error {
		prev, err := previousPeriod(ctx, r)
		if err != nil || prev == nil {
			return err
		}
		pc, err := r.Consumptions.GetByWorkPeriod(ctx, prev.ID)
		if err != nil {
			return fmt.Errorf("consumo: registro anterior: %w", err)
		}
		if pc == nil {
			return nil
		}
		if err := uc.recalculate(ctx, r, pc, prev); err != nil {
			return err
		}
		out = pc
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// UpdatePhysicalInventory registra el conteo físico de cierre de un insumo.
// qty nil borra el conteo. El costo real se recalcula al conciliar.
func (uc *ConsumptionUseCase) UpdatePhysicalInventory(
	ctx context.Context,
	workPeriodID, inventoryItemID string,
	qty *decimal.Decimal,
) (*entity.PeriodicConsumption, error) {
	if workPeriodID == "" || inventoryItemID == "" {
		return nil, domain.ErrInvalidInput
	}
	if qty != nil && qty.IsNegative() {
		return nil, domain.NewValidationError("el inventario físico no puede ser negativo")
	}
	var out *entity.PeriodicConsumption
	err := uc.tx.Run(ctx, func(r Repositories) error {
		pc, err := r.Consumptions.GetByWorkPeriod(ctx, workPeriodID)
		if err != nil {
			return fmt.Errorf("consumo: obtener registro: %w", err)
		}
		if pc == nil {
			return domain.ErrNotFound
		}
		item := pc.Item(inventoryItemID)
		if item == nil {
			return domain.ErrNotFound
		}
		if qty == nil {
			item.PhysicalInventory = nil
		} else {
			v := *qty
			item.PhysicalInventory = &v
		}
		if err := r.Consumptions.Update(ctx, pc); err != nil {
			return fmt.Errorf("consumo: guardar conteo físico: %w", err)
		}
		out = pc
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// RenderReport genera el PDF del registro de consumo de un período.
func (uc *ConsumptionUseCase) RenderReport(ctx context.Context, workPeriodID string) (pdf []byte, filename string, err error) {
	if uc.reports == nil {
		return nil, "", fmt.Errorf("consumo: generador de reportes no configurado")
	}
	var pc *entity.PeriodicConsumption
	err = uc.tx.Run(ctx, func(r Repositories) error {
		var err error
		pc, err = r.Consumptions.GetByWorkPeriod(ctx, workPeriodID)
		return err
	})
	if err != nil {
		return nil, "", fmt.Errorf("consumo: obtener registro: %w", err)
	}
	if pc == nil {
		return nil, "", domain.ErrNotFound
	}
	pdf, err = uc.reports.GenerateConsumptionReport(ctx, pc)
	if err != nil {
		return nil, "", err
	}
	return pdf, "consumo-" + pc.StartDate.Format("20060102-1504") + ".pdf", nil
}

// HasRecipes indica si existe al menos una receta; sin recetas no hay nada que costear.
func (uc *ConsumptionUseCase) HasRecipes(ctx context.Context) (bool, error) {
	var n int
	err := uc.tx.Run(ctx, func(r Repositories) error {
		var err error
		n, err = r.Recipes.Count(ctx)
		return err
	})
	if err != nil {
		return false, fmt.Errorf("consumo: contar recetas: %w", err)
	}
	return n > 0, nil
}

func (uc *ConsumptionUseCase) getOrCreate(ctx context.Context, r Repositories, period *entity.WorkPeriod) (*entity.PeriodicConsumption, error) {
	pc, err := r.Consumptions.GetByWorkPeriod(ctx, period.ID)
	if err != nil {
		return nil, fmt.Errorf("consumo: obtener registro: %w", err)
	}
	if pc != nil {
		if err := uc.refreshHeader(ctx, r, period, pc); err != nil {
			return nil, err
		}
		return pc, nil
	}

	pc, err = uc.build(ctx, r, period)
	if err != nil {
		return nil, err
	}
	if err := r.Consumptions.Create(ctx, pc); err != nil {
		return nil, fmt.Errorf("consumo: crear registro: %w", err)
	}
	uc.log.Info().
		Str("work_period_id", period.ID).
		Int("items", len(pc.Items)).
		Int("cost_items", len(pc.CostItems)).
		Msg("registro de consumo creado")
	return pc, nil
}

// refreshHeader completa fecha de fin y nombre de un registro creado con el período abierto.
// Las cantidades no se tocan.
func (uc *ConsumptionUseCase) refreshHeader(ctx context.Context, r Repositories, period *entity.WorkPeriod, pc *entity.PeriodicConsumption) error {
	if period.IsOpen() || !(pc.EndDate.IsZero() || pc.EndDate.Equal(pc.StartDate)) {
		return nil
	}
	pc.EndDate = period.EndDate
	pc.Name = costing.PeriodName(period)
	if err := r.Consumptions.Update(ctx, pc); err != nil {
		return fmt.Errorf("consumo: actualizar encabezado: %w", err)
	}
	uc.log.Info().Str("work_period_id", period.ID).Msg("encabezado de registro actualizado al cierre")
	return nil
}

// build arma un registro nuevo: arrastre del período anterior, compras, ventas por receta
// y una primera conciliación para que Cost no quede en cero.
func (uc *ConsumptionUseCase) build(ctx context.Context, r Repositories, period *entity.WorkPeriod) (*entity.PeriodicConsumption, error) {
	var previous *entity.PeriodicConsumption
	prevPeriod, err := r.WorkPeriods.Previous(ctx, period)
	if err != nil {
		return nil, fmt.Errorf("consumo: período anterior: %w", err)
	}
	if prevPeriod != nil {
		previous, err = r.Consumptions.GetByWorkPeriod(ctx, prevPeriod.ID)
		if err != nil {
			return nil, fmt.Errorf("consumo: registro anterior: %w", err)
		}
		// Un período anterior sin registro se crea primero, hacia atrás hasta el último existente.
		if previous == nil {
			previous, err = uc.getOrCreate(ctx, r, prevPeriod)
			if err != nil {
				return nil, err
			}
		}
	}

	items, err := r.InventoryItems.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("consumo: listar insumos: %w", err)
	}
	txItems, err := r.Transactions.ListItemsSince(ctx, period.StartDate, periodEnd(period))
	if err != nil {
		return nil, fmt.Errorf("consumo: listar compras: %w", err)
	}
	pc := costing.BuildPeriodicConsumption(period, items, previous, costing.NewTransactionLines(txItems))

	recipes, err := r.Recipes.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("consumo: listar recetas: %w", err)
	}
	sales, err := uc.sales(ctx, r, period, recipes)
	if err != nil {
		return nil, err
	}

	warnings, err := costing.ApplySales(pc, sales, recipes)
	uc.logWarnings(period.ID, warnings)
	if err != nil {
		uc.log.Error().Err(err).Str("work_period_id", period.ID).Msg("cálculo de consumo abortado")
		return nil, err
	}
	uc.logWarnings(period.ID, costing.Reconcile(pc, sales, recipes))
	return pc, nil
}

func (uc *ConsumptionUseCase) recalculate(ctx context.Context, r Repositories, pc *entity.PeriodicConsumption, period *entity.WorkPeriod) error {
	recipes, err := r.Recipes.ListAll(ctx)
	if err != nil {
		return fmt.Errorf("consumo: listar recetas: %w", err)
	}
	sales, err := uc.sales(ctx, r, period, recipes)
	if err != nil {
		return err
	}
	uc.logWarnings(period.ID, costing.Reconcile(pc, sales, recipes))
	if err := r.Consumptions.Update(ctx, pc); err != nil {
		return fmt.Errorf("consumo: guardar conciliación: %w", err)
	}
	uc.log.Info().Str("work_period_id", period.ID).Msg("costo conciliado")
	return nil
}

func (uc *ConsumptionUseCase) sales(ctx context.Context, r Repositories, period *entity.WorkPeriod, recipes []entity.Recipe) ([]entity.SalesData, error) {
	orders, err := r.Orders.ListSoldWithRecipes(ctx, period.StartDate, periodEnd(period))
	if err != nil {
		return nil, fmt.Errorf("consumo: listar ventas: %w", err)
	}
	sales, warnings, err := costing.AggregateSales(ctx, orders, costing.RecipeMenuItems(recipes), r.Menu)
	uc.logWarnings(period.ID, warnings)
	if err != nil {
		return nil, fmt.Errorf("consumo: agregar ventas: %w", err)
	}
	return sales, nil
}

func (uc *ConsumptionUseCase) logWarnings(workPeriodID string, warnings []costing.Warning) {
	for _, w := range warnings {
		uc.log.Warn().
			Str("work_period_id", workPeriodID).
			Str("code", w.Code).
			Str("menu_item_id", w.MenuItemID).
			Str("portion", w.PortionName).
			Str("inventory_item_id", w.InventoryItemID).
			Msg(w.Message)
	}
}

func previousPeriod(ctx context.Context, r Repositories) (*entity.WorkPeriod, error) {
	current, err := r.WorkPeriods.Current(ctx)
	if err != nil {
		return nil, fmt.Errorf("consumo: período actual: %w", err)
	}
	if current == nil {
		return nil, nil
	}
	prev, err := r.WorkPeriods.Previous(ctx, current)
	if err != nil {
		return nil, fmt.Errorf("consumo: período anterior: %w", err)
	}
	return prev, nil
}

// periodEnd límite superior de las consultas: cero mientras el período está abierto.
func periodEnd(period *entity.WorkPeriod) time.Time {
	if period.IsOpen() {
		return time.Time{}
	}
	return period.EndDate
}
