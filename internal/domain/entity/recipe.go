package entity

import "github.com/shopspring/decimal"

// Recipe lista de materiales de una porción: qué insumos consume cada unidad vendida.
// Una porción tiene a lo sumo una receta.
type Recipe struct {
	ID        string
	Name      string
	Portion   *MenuItemPortion
	FixedCost decimal.Decimal
	Items     []RecipeItem
}

// RecipeItem insumo y cantidad (en unidad base) de una receta.
// InventoryItem puede ser nil en recetas a medio editar.
type RecipeItem struct {
	ID            string
	InventoryItem *InventoryItem
	Quantity      decimal.Decimal
}

// ConsumingItems devuelve los ítems que participan en el cálculo de consumo:
// con insumo asignado y cantidad positiva.
func (r *Recipe) ConsumingItems() []RecipeItem {
	out := make([]RecipeItem, 0, len(r.Items))
	for _, ri := range r.Items {
		if ri.InventoryItem == nil || !ri.Quantity.GreaterThan(decimal.Zero) {
			continue
		}
		out = append(out, ri)
	}
	return out
}
