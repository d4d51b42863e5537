package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// InventoryTransaction es una recepción de mercancía fechada (compras).
// La crea el módulo de compras; el costeo solo la lee.
type InventoryTransaction struct {
	ID    string
	Name  string
	Date  time.Time
	Items []InventoryTransactionItem
}

// InventoryTransactionItem línea de una recepción.
// Quantity está en unidades de compra; Multiplier la lleva a unidades base
// y Price es el precio por unidad de compra.
type InventoryTransactionItem struct {
	ID              string
	TransactionID   string
	InventoryItemID string
	Date            time.Time
	Quantity        decimal.Decimal
	Multiplier      decimal.Decimal
	Price           decimal.Decimal
}
