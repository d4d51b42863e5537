package costing

import (
	"context"
	"fmt"

	"github.com/jhoicas/costeo-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// MenuLookup resuelve productos del menú con sus porciones ordenadas.
// Devuelve nil, nil si el producto no existe.
type MenuLookup interface {
	GetMenuItem(ctx context.Context, id string) (*entity.MenuItem, error)
}

type salesKey struct {
	menuItemID  string
	portionName string
}

// salesBook acumula SalesData por (producto, porción) conservando el orden de aparición.
type salesBook struct {
	index map[salesKey]int
	rows  []entity.SalesData
}

func newSalesBook() *salesBook {
	return &salesBook{index: make(map[salesKey]int)}
}

func (b *salesBook) add(menuItemID, menuItemName, portionName string, qty decimal.Decimal) {
	k := salesKey{menuItemID: menuItemID, portionName: portionName}
	if i, ok := b.index[k]; ok {
		b.rows[i].Total = b.rows[i].Total.Add(qty)
		return
	}
	b.index[k] = len(b.rows)
	b.rows = append(b.rows, entity.SalesData{
		MenuItemID:   menuItemID,
		MenuItemName: menuItemName,
		PortionName:  portionName,
		Total:        qty,
	})
}

// AggregateSales reduce las órdenes del período a unidades vendidas por (producto, porción).
//
// Solo cuentan órdenes que descuentan inventario y cuyo producto tiene receta
// (recipeMenuItems). A las ventas directas se suman los tags con producto propio:
// cada grupo (producto del tag, porción del tag) aporta Σ cantidadTag × cantidadOrden
// a la porción resuelta del producto del tag (la primera si el nombre no existe).
func AggregateSales(
	ctx context.Context,
	orders []entity.Order,
	recipeMenuItems map[string]struct{},
	menu MenuLookup,
) ([]entity.SalesData, []Warning, error) {
	book := newSalesBook()

	tagTotals := make(map[salesKey]decimal.Decimal)
	var tagKeys []salesKey

	for _, o := range orders {
		if !o.DecreaseInventory {
			continue
		}
		if _, ok := recipeMenuItems[o.MenuItemID]; !ok {
			continue
		}
		book.add(o.MenuItemID, o.MenuItemName, o.PortionName, o.Quantity)

		for _, tv := range o.TagValues {
			if tv.MenuItemID == "" {
				continue
			}
			k := salesKey{menuItemID: tv.MenuItemID, portionName: tv.PortionName}
			if _, seen := tagTotals[k]; !seen {
				tagKeys = append(tagKeys, k)
				tagTotals[k] = decimal.Zero
			}
			tagTotals[k] = tagTotals[k].Add(tv.Quantity.Mul(o.Quantity))
		}
	}

	var warnings []Warning
	for _, k := range tagKeys {
		mi, err := menu.GetMenuItem(ctx, k.menuItemID)
		if err != nil {
			return nil, warnings, fmt.Errorf("resolver producto del tag %s: %w", k.menuItemID, err)
		}
		var portion *entity.MenuItemPortion
		if mi != nil {
			portion = mi.Portion(k.portionName)
		}
		if portion == nil {
			warnings = append(warnings, Warning{
				Code:        WarnUnknownTagMenuItem,
				MenuItemID:  k.menuItemID,
				PortionName: k.portionName,
				Message:     "tag con producto inexistente o sin porciones; se omite",
			})
			continue
		}
		book.add(mi.ID, mi.Name, portion.Name, tagTotals[k])
	}

	return book.rows, warnings, nil
}

// RecipeMenuItems conjunto de productos que tienen al menos una receta con porción.
func RecipeMenuItems(recipes []entity.Recipe) map[string]struct{} {
	out := make(map[string]struct{}, len(recipes))
	for _, r := range recipes {
		if r.Portion == nil {
			continue
		}
		out[r.Portion.MenuItemID] = struct{}{}
	}
	return out
}
