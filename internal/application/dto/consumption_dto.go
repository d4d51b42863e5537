package dto

import (
	"time"

	"github.com/jhoicas/costeo-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// PeriodicConsumptionResponse salida de un registro de consumo del período.
type PeriodicConsumptionResponse struct {
	ID           string                    `json:"id"`
	WorkPeriodID string                    `json:"work_period_id"`
	Name         string                    `json:"name"`
	StartDate    time.Time                 `json:"start_date"`
	EndDate      *time.Time                `json:"end_date,omitempty"`
	Items        []ConsumptionItemResponse `json:"items"`
	CostItems    []CostItemResponse        `json:"cost_items"`
}

// ConsumptionItemResponse insumo del registro con sus valores derivados.
type ConsumptionItemResponse struct {
	ID                   string           `json:"id"`
	InventoryItemID      string           `json:"inventory_item_id"`
	InventoryItemName    string           `json:"inventory_item_name"`
	GroupCode            string           `json:"group_code"`
	BaseUnit             string           `json:"base_unit"`
	UnitMultiplier       decimal.Decimal  `json:"unit_multiplier"`
	InStock              decimal.Decimal  `json:"in_stock"`
	Purchase             decimal.Decimal  `json:"purchase"`
	Consumption          decimal.Decimal  `json:"consumption"`
	PhysicalInventory    *decimal.Decimal `json:"physical_inventory"`
	Cost                 decimal.Decimal  `json:"cost"`
	InventoryPrediction  decimal.Decimal  `json:"inventory_prediction"`
	ActualConsumption    decimal.Decimal  `json:"actual_consumption"`
	PredictedConsumption decimal.Decimal  `json:"predicted_consumption"`
}

// CostItemResponse costo de una porción vendida.
type CostItemResponse struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	MenuItemID     string          `json:"menu_item_id"`
	PortionID      string          `json:"portion_id"`
	PortionName    string          `json:"portion_name"`
	Quantity       decimal.Decimal `json:"quantity"`
	CostPrediction decimal.Decimal `json:"cost_prediction"`
	Cost           decimal.Decimal `json:"cost"`
}

// UpdatePhysicalInventoryRequest conteo físico de cierre; null lo borra.
type UpdatePhysicalInventoryRequest struct {
	PhysicalInventory *decimal.Decimal `json:"physical_inventory"`
}

// NewPeriodicConsumptionResponse mapea la entidad a la salida HTTP.
func NewPeriodicConsumptionResponse(pc *entity.PeriodicConsumption) *PeriodicConsumptionResponse {
	if pc == nil {
		return nil
	}
	out := &PeriodicConsumptionResponse{
		ID:           pc.ID,
		WorkPeriodID: pc.WorkPeriodID,
		Name:         pc.Name,
		StartDate:    pc.StartDate,
		Items:        make([]ConsumptionItemResponse, 0, len(pc.Items)),
		CostItems:    make([]CostItemResponse, 0, len(pc.CostItems)),
	}
	if !pc.EndDate.IsZero() {
		end := pc.EndDate
		out.EndDate = &end
	}
	for i := range pc.Items {
		it := &pc.Items[i]
		out.Items = append(out.Items, ConsumptionItemResponse{
			ID:                   it.ID,
			InventoryItemID:      it.InventoryItemID,
			InventoryItemName:    it.InventoryItemName,
			GroupCode:            it.GroupCode,
			BaseUnit:             it.BaseUnit,
			UnitMultiplier:       it.UnitMultiplier,
			InStock:              it.InStock,
			Purchase:             it.Purchase,
			Consumption:          it.Consumption,
			PhysicalInventory:    it.PhysicalInventory,
			Cost:                 it.Cost,
			InventoryPrediction:  it.InventoryPrediction(),
			ActualConsumption:    it.ActualConsumption(),
			PredictedConsumption: it.PredictedConsumption(),
		})
	}
	for _, ci := range pc.CostItems {
		out.CostItems = append(out.CostItems, CostItemResponse{
			ID:             ci.ID,
			Name:           ci.Name,
			MenuItemID:     ci.MenuItemID,
			PortionID:      ci.PortionID,
			PortionName:    ci.PortionName,
			Quantity:       ci.Quantity,
			CostPrediction: ci.CostPrediction,
			Cost:           ci.Cost,
		})
	}
	return out
}
