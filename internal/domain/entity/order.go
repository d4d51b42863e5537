package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order línea vendida de un ticket.
type Order struct {
	ID                string
	TicketID          string
	Date              time.Time
	MenuItemID        string
	MenuItemName      string
	PortionName       string
	Quantity          decimal.Decimal
	DecreaseInventory bool
	TagValues         []OrderTagValue
}

// OrderTagValue modificador con cantidad. Si MenuItemID no está vacío el tag
// representa otro producto vendible (adicional o sustitución); si está vacío
// es solo una etiqueta.
type OrderTagValue struct {
	Name        string
	MenuItemID  string
	PortionName string
	Quantity    decimal.Decimal
}
