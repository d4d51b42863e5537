package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// InventoryItem representa un insumo de inventario (ingrediente, envase, etc.).
// TransactionUnitMultiplier convierte la unidad de compra a la unidad de consumo
// (ej. 1 caja = 24 unidades). Cero o negativo se interpreta como 1.
type InventoryItem struct {
	ID                        string
	Name                      string
	GroupCode                 string
	BaseUnit                  string // unidad de consumo (receta)
	TransactionUnit           string // unidad de compra
	TransactionUnitMultiplier decimal.Decimal
	CreatedAt                 time.Time
	UpdatedAt                 time.Time
}

// UnitMultiplier devuelve el multiplicador de unidad de compra, o 1 si no es positivo.
func (i InventoryItem) UnitMultiplier() decimal.Decimal {
	if i.TransactionUnitMultiplier.GreaterThan(decimal.Zero) {
		return i.TransactionUnitMultiplier
	}
	return decimal.NewFromInt(1)
}
