package entity

import "github.com/shopspring/decimal"

// SalesData unidades vendidas de un (producto, porción) en un período,
// incluyendo las aportadas por tags.
type SalesData struct {
	MenuItemID   string
	MenuItemName string
	PortionName  string
	Total        decimal.Decimal
}
