package entity

import "github.com/shopspring/decimal"

// MenuItem producto vendible del menú con sus porciones ordenadas.
type MenuItem struct {
	ID        string
	Name      string
	GroupCode string
	Portions  []MenuItemPortion // orden de presentación; la primera es la porción por defecto
}

// MenuItemPortion variante vendible de un producto (tamaño, presentación).
type MenuItemPortion struct {
	ID         string
	MenuItemID string
	Name       string
	Multiplier decimal.Decimal
}

// Portion devuelve la porción con el nombre indicado o, si no existe, la primera.
// Devuelve nil solo cuando el producto no tiene porciones.
func (m *MenuItem) Portion(name string) *MenuItemPortion {
	for i := range m.Portions {
		if m.Portions[i].Name == name {
			return &m.Portions[i]
		}
	}
	if len(m.Portions) == 0 {
		return nil
	}
	return &m.Portions[0]
}
