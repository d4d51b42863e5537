package costing

import (
	"fmt"

	"github.com/jhoicas/costeo-api/internal/domain"
	"github.com/jhoicas/costeo-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// ApplySales recorre las ventas por sus recetas, acumula el consumo teórico por insumo
// y registra un CostItem por porción con el costo previsto.
//
// Ventas sin receta se omiten. Un insumo de receta sin ítem en el registro
// devuelve ErrConsumptionItemMissing: el registro no debe persistirse.
func ApplySales(pc *entity.PeriodicConsumption, sales []entity.SalesData, recipes []entity.Recipe) ([]Warning, error) {
	idx := IndexRecipes(recipes)
	var warnings []Warning

	for _, sale := range sales {
		recipe := idx.Find(sale)
		if recipe == nil {
			continue
		}

		cost := recipe.FixedCost
		for _, ri := range recipe.ConsumingItems() {
			pci := pc.Item(ri.InventoryItem.ID)
			if pci == nil {
				return warnings, fmt.Errorf("%w: insumo %s en receta %s", domain.ErrConsumptionItemMissing, ri.InventoryItem.ID, recipe.Name)
			}
			pci.Consumption = pci.Consumption.Add(ri.Quantity.Mul(sale.Total).Div(pci.UnitMultiplier))
			if !pci.Consumption.GreaterThan(decimal.Zero) {
				warnings = append(warnings, Warning{
					Code:            WarnNonPositiveConsumed,
					MenuItemID:      sale.MenuItemID,
					PortionName:     sale.PortionName,
					InventoryItemID: pci.InventoryItemID,
					Message:         fmt.Sprintf("consumo %s no positivo tras venta de %s", pci.Consumption.String(), sale.Total.String()),
				})
			}
			cost = cost.Add(ri.Quantity.Mul(pci.Cost.Div(pci.UnitMultiplier)))
		}

		upsertCostItem(pc, recipe.Portion, sale, cost)
	}
	return warnings, nil
}

func upsertCostItem(pc *entity.PeriodicConsumption, portion *entity.MenuItemPortion, sale entity.SalesData, prediction decimal.Decimal) {
	if ci := pc.CostItemFor(portion.ID); ci != nil {
		ci.Quantity = ci.Quantity.Add(sale.Total)
		ci.CostPrediction = prediction
		return
	}
	pc.CostItems = append(pc.CostItems, entity.CostItem{
		Name:           sale.MenuItemName,
		PortionID:      portion.ID,
		PortionName:    portion.Name,
		MenuItemID:     portion.MenuItemID,
		Quantity:       sale.Total,
		CostPrediction: prediction,
		Cost:           decimal.Zero,
	})
}
