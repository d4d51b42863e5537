package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// PeriodicConsumption registro de consumo y costo de un período de trabajo.
// Existe a lo sumo uno por WorkPeriodID; se crea una sola vez y luego solo se actualiza.
type PeriodicConsumption struct {
	ID           string
	WorkPeriodID string
	Name         string
	StartDate    time.Time
	EndDate      time.Time
	Items        []PeriodicConsumptionItem
	CostItems    []CostItem
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Item devuelve el registro del insumo o nil si el período no lo tiene.
func (p *PeriodicConsumption) Item(inventoryItemID string) *PeriodicConsumptionItem {
	for i := range p.Items {
		if p.Items[i].InventoryItemID == inventoryItemID {
			return &p.Items[i]
		}
	}
	return nil
}

// CostItemFor devuelve el costo de la porción o nil.
func (p *PeriodicConsumption) CostItemFor(portionID string) *CostItem {
	for i := range p.CostItems {
		if p.CostItems[i].PortionID == portionID {
			return &p.CostItems[i]
		}
	}
	return nil
}

// PeriodicConsumptionItem existencias, compras, consumo y costo promedio de un insumo en el período.
// Todas las cantidades están en unidad de compra (divididas por UnitMultiplier).
type PeriodicConsumptionItem struct {
	ID                string
	InventoryItemID   string
	InventoryItemName string
	GroupCode         string
	BaseUnit          string
	UnitMultiplier    decimal.Decimal
	InStock           decimal.Decimal  // existencia inicial
	Purchase          decimal.Decimal  // compras del período
	Consumption       decimal.Decimal  // consumo teórico según recetas
	PhysicalInventory *decimal.Decimal // conteo físico de cierre (opcional)
	Cost              decimal.Decimal  // costo promedio ponderado unitario
}

// PredictedConsumption consumo teórico calculado desde ventas y recetas.
func (i *PeriodicConsumptionItem) PredictedConsumption() decimal.Decimal {
	return i.Consumption
}

// InventoryPrediction existencia de cierre esperada: InStock + Purchase - Consumption.
func (i *PeriodicConsumptionItem) InventoryPrediction() decimal.Decimal {
	return i.InStock.Add(i.Purchase).Sub(i.Consumption)
}

// PhysicalStock existencia de cierre: el conteo físico si existe, si no la esperada.
func (i *PeriodicConsumptionItem) PhysicalStock() decimal.Decimal {
	if i.PhysicalInventory != nil {
		return *i.PhysicalInventory
	}
	return i.InventoryPrediction()
}

// ActualConsumption consumo real: InStock + Purchase - existencia de cierre.
// Sin conteo físico coincide con el consumo teórico.
func (i *PeriodicConsumptionItem) ActualConsumption() decimal.Decimal {
	return i.InStock.Add(i.Purchase).Sub(i.PhysicalStock())
}

// CostItem costo de una porción vendida en el período.
// CostPrediction se calcula al construir el registro; Cost al conciliar.
type CostItem struct {
	ID             string
	Name           string
	PortionID      string
	PortionName    string
	MenuItemID     string
	Quantity       decimal.Decimal
	CostPrediction decimal.Decimal
	Cost           decimal.Decimal
}
