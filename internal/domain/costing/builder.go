package costing

import (
	"fmt"

	"github.com/jhoicas/costeo-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

const periodNameLayout = "2006-01-02 15:04"

// PeriodName nombre visible del registro de consumo de un período.
func PeriodName(period *entity.WorkPeriod) string {
	if period.IsOpen() {
		return period.StartDate.Format(periodNameLayout) + " - "
	}
	return fmt.Sprintf("%s - %s", period.StartDate.Format(periodNameLayout), period.EndDate.Format(periodNameLayout))
}

// BuildPeriodicConsumption crea el registro del período con un ítem por cada insumo conocido
// (no solo los vendidos). La existencia inicial y el costo se arrastran del registro anterior;
// previous puede ser nil (primer período).
func BuildPeriodicConsumption(
	period *entity.WorkPeriod,
	inventoryItems []entity.InventoryItem,
	previous *entity.PeriodicConsumption,
	lines TransactionLines,
) *entity.PeriodicConsumption {
	pc := &entity.PeriodicConsumption{
		WorkPeriodID: period.ID,
		Name:         PeriodName(period),
		StartDate:    period.StartDate,
		EndDate:      period.EndDate,
		Items:        make([]entity.PeriodicConsumptionItem, 0, len(inventoryItems)),
	}
	for _, inv := range inventoryItems {
		pc.Items = append(pc.Items, buildItem(inv, previous, lines))
	}
	return pc
}

func buildItem(inv entity.InventoryItem, previous *entity.PeriodicConsumption, lines TransactionLines) entity.PeriodicConsumptionItem {
	pci := entity.PeriodicConsumptionItem{
		InventoryItemID:   inv.ID,
		InventoryItemName: inv.Name,
		GroupCode:         inv.GroupCode,
		BaseUnit:          inv.BaseUnit,
		UnitMultiplier:    inv.UnitMultiplier(),
		InStock:           decimal.Zero,
		Purchase:          decimal.Zero,
		Consumption:       decimal.Zero,
		Cost:              decimal.Zero,
	}

	previousUnitCost := decimal.Zero
	if previous != nil {
		if prev := previous.Item(inv.ID); prev != nil {
			pci.InStock = prev.PhysicalStock()
			previousUnitCost = prev.Cost
		}
	}

	pci.Purchase = lines.PurchasedQuantity(inv.ID).Div(pci.UnitMultiplier)
	totalPrice := lines.TotalPrice(inv.ID)

	if cost, ok := MovingAverageCost(pci.InStock, previousUnitCost, pci.Purchase, totalPrice); ok {
		pci.Cost = cost
	}
	return pci
}
