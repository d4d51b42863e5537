package costing

import (
	"fmt"

	"github.com/jhoicas/costeo-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// Reconcile recalcula el costo real de cada porción vendida cuando el consumo real es conocible
// (conteos físicos). El costo teórico de cada insumo se escala por consumoReal / consumoPrevisto.
//
// Solo actualiza CostItems existentes; nunca los crea. Las ventas se recalculan por el
// llamador para el período objetivo; si la cantidad difiere de la guardada se emite una advertencia.
func Reconcile(pc *entity.PeriodicConsumption, sales []entity.SalesData, recipes []entity.Recipe) []Warning {
	idx := IndexRecipes(recipes)
	var warnings []Warning

	for _, sale := range sales {
		recipe := idx.Find(sale)
		if recipe == nil {
			continue
		}

		total := recipe.FixedCost
		for _, ri := range recipe.ConsumingItems() {
			pci := pc.Item(ri.InventoryItem.ID)
			if pci == nil {
				continue
			}
			predicted := pci.PredictedConsumption()
			if !predicted.GreaterThan(decimal.Zero) {
				continue
			}
			unitCost := ri.Quantity.Mul(pci.Cost.Div(pci.UnitMultiplier))
			total = total.Add(unitCost.Mul(pci.ActualConsumption()).Div(predicted))
		}

		ci := pc.CostItemFor(recipe.Portion.ID)
		if ci == nil {
			continue
		}
		if !ci.Quantity.Equal(sale.Total) {
			warnings = append(warnings, Warning{
				Code:        WarnSalesQuantityDrift,
				MenuItemID:  sale.MenuItemID,
				PortionName: sale.PortionName,
				Message:     fmt.Sprintf("ventas recalculadas %s difieren de las registradas %s", sale.Total.String(), ci.Quantity.String()),
			})
		}
		ci.Cost = total.RoundBank(CostPlaces)
	}
	return warnings
}
