package costing

import (
	"github.com/jhoicas/costeo-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// TransactionLines líneas de recepción de un período, sin agrupar.
// La suma por insumo la hace el constructor del consumo periódico.
type TransactionLines struct {
	byItem map[string][]entity.InventoryTransactionItem
	count  int
}

// NewTransactionLines indexa las líneas por insumo.
func NewTransactionLines(items []entity.InventoryTransactionItem) TransactionLines {
	byItem := make(map[string][]entity.InventoryTransactionItem)
	for _, it := range items {
		byItem[it.InventoryItemID] = append(byItem[it.InventoryItemID], it)
	}
	return TransactionLines{byItem: byItem, count: len(items)}
}

// Len número total de líneas.
func (t TransactionLines) Len() int { return t.count }

// ForItem líneas de un insumo.
func (t TransactionLines) ForItem(inventoryItemID string) []entity.InventoryTransactionItem {
	return t.byItem[inventoryItemID]
}

// PurchasedQuantity Σ Quantity × Multiplier del insumo (unidades base).
func (t TransactionLines) PurchasedQuantity(inventoryItemID string) decimal.Decimal {
	total := decimal.Zero
	for _, it := range t.byItem[inventoryItemID] {
		total = total.Add(it.Quantity.Mul(it.Multiplier))
	}
	return total
}

// TotalPrice Σ Price × Quantity del insumo.
func (t TransactionLines) TotalPrice(inventoryItemID string) decimal.Decimal {
	total := decimal.Zero
	for _, it := range t.byItem[inventoryItemID] {
		total = total.Add(it.Price.Mul(it.Quantity))
	}
	return total
}
