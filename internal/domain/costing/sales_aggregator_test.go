package costing_test

import (
	"context"
	"testing"

	"github.com/jhoicas/costeo-api/internal/domain/costing"
	"github.com/jhoicas/costeo-api/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func recipeSet(ids ...string) map[string]struct{} {
	out := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		out[id] = struct{}{}
	}
	return out
}

func burgerOrder(qty string, tags ...entity.OrderTagValue) entity.Order {
	return entity.Order{
		MenuItemID: "mi-burger", MenuItemName: "Hamburguesa", PortionName: "Regular",
		Quantity: dec(qty), DecreaseInventory: true, TagValues: tags,
	}
}

func findSale(t *testing.T, sales []entity.SalesData, menuItemID, portion string) entity.SalesData {
	t.Helper()
	for _, s := range sales {
		if s.MenuItemID == menuItemID && s.PortionName == portion {
			return s
		}
	}
	require.Failf(t, "venta no encontrada", "%s/%s", menuItemID, portion)
	return entity.SalesData{}
}

func TestAggregateSales_AgrupaPorProductoYPorcion(t *testing.T) {
	orders := []entity.Order{
		burgerOrder("2"),
		burgerOrder("3"),
		{MenuItemID: "mi-burger", MenuItemName: "Hamburguesa", PortionName: "Doble", Quantity: dec("1"), DecreaseInventory: true},
	}

	sales, warnings, err := costing.AggregateSales(context.Background(), orders, recipeSet("mi-burger"), burgerMenu())

	require.NoError(t, err)
	assert.Empty(t, warnings)
	require.Len(t, sales, 2)
	assert.Equal(t, "Regular", sales[0].PortionName, "orden de aparición estable")
	assertDec(t, "5", findSale(t, sales, "mi-burger", "Regular").Total)
	assertDec(t, "1", findSale(t, sales, "mi-burger", "Doble").Total)
	assert.Equal(t, "Hamburguesa", sales[0].MenuItemName)
}

func TestAggregateSales_FiltraSinDescuentoYSinReceta(t *testing.T) {
	noDecrease := burgerOrder("7")
	noDecrease.DecreaseInventory = false
	orders := []entity.Order{
		burgerOrder("1"),
		noDecrease,
		{MenuItemID: "mi-soda", MenuItemName: "Gaseosa", PortionName: "Lata", Quantity: dec("4"), DecreaseInventory: true},
	}

	sales, _, err := costing.AggregateSales(context.Background(), orders, recipeSet("mi-burger"), burgerMenu())

	require.NoError(t, err)
	require.Len(t, sales, 1)
	assertDec(t, "1", sales[0].Total)
}

func TestAggregateSales_TagConProductoSumaCantidadPorOrden(t *testing.T) {
	orders := []entity.Order{
		burgerOrder("4"),
		burgerOrder("3", entity.OrderTagValue{Name: "+Carne", MenuItemID: "mi-extra-beef", PortionName: "Normal", Quantity: dec("2")}),
		burgerOrder("1", entity.OrderTagValue{Name: "+Carne", MenuItemID: "mi-extra-beef", PortionName: "Normal", Quantity: dec("1")}),
		burgerOrder("5", entity.OrderTagValue{Name: "Sin cebolla", Quantity: dec("1")}),
	}

	sales, warnings, err := costing.AggregateSales(context.Background(), orders, recipeSet("mi-burger"), burgerMenu())

	require.NoError(t, err)
	assert.Empty(t, warnings)
	require.Len(t, sales, 2, "el tag sin producto es solo etiqueta")
	assertDec(t, "13", findSale(t, sales, "mi-burger", "Regular").Total)
	extra := findSale(t, sales, "mi-extra-beef", "Normal")
	assertDec(t, "7", extra.Total, "2×3 + 1×1")
	assert.Equal(t, "Carne Extra", extra.MenuItemName, "el nombre viene del catálogo")
}

func TestAggregateSales_TagConPorcionDesconocidaUsaLaPrimera(t *testing.T) {
	orders := []entity.Order{
		burgerOrder("2", entity.OrderTagValue{MenuItemID: "mi-extra-beef", PortionName: "Inexistente", Quantity: dec("1")}),
		burgerOrder("1", entity.OrderTagValue{MenuItemID: "mi-extra-beef", PortionName: "Normal", Quantity: dec("1")}),
	}

	sales, _, err := costing.AggregateSales(context.Background(), orders, recipeSet("mi-burger"), burgerMenu())

	require.NoError(t, err)
	require.Len(t, sales, 2, "ambos grupos de tags terminan en la misma porción")
	assertDec(t, "3", findSale(t, sales, "mi-extra-beef", "Normal").Total)
}

func TestAggregateSales_TagQueCoincideConVentaDirectaNoDuplica(t *testing.T) {
	orders := []entity.Order{
		burgerOrder("2"),
		{
			MenuItemID: "mi-extra-beef", MenuItemName: "Carne Extra", PortionName: "Normal", Quantity: dec("1"), DecreaseInventory: true,
			TagValues: []entity.OrderTagValue{{MenuItemID: "mi-burger", PortionName: "Regular", Quantity: dec("1")}},
		},
	}

	sales, _, err := costing.AggregateSales(context.Background(), orders, recipeSet("mi-burger", "mi-extra-beef"), burgerMenu())

	require.NoError(t, err)
	require.Len(t, sales, 2)
	assertDec(t, "3", findSale(t, sales, "mi-burger", "Regular").Total)
	assertDec(t, "1", findSale(t, sales, "mi-extra-beef", "Normal").Total)
}

func TestAggregateSales_ResuelveCadaGrupoDeTagsUnaVez(t *testing.T) {
	tag := entity.OrderTagValue{MenuItemID: "mi-extra-beef", PortionName: "Normal", Quantity: dec("1")}
	orders := []entity.Order{burgerOrder("1", tag), burgerOrder("1", tag), burgerOrder("1", tag)}
	menu := burgerMenu()

	_, _, err := costing.AggregateSales(context.Background(), orders, recipeSet("mi-burger"), menu)

	require.NoError(t, err)
	assert.Equal(t, 1, menu.calls)
}

func TestAggregateSales_TagConProductoInexistenteAdvierte(t *testing.T) {
	orders := []entity.Order{
		burgerOrder("1", entity.OrderTagValue{MenuItemID: "mi-borrado", PortionName: "Normal", Quantity: dec("1")}),
	}

	sales, warnings, err := costing.AggregateSales(context.Background(), orders, recipeSet("mi-burger"), burgerMenu())

	require.NoError(t, err)
	require.Len(t, sales, 1)
	require.Len(t, warnings, 1)
	assert.Equal(t, costing.WarnUnknownTagMenuItem, warnings[0].Code)
	assert.Equal(t, "mi-borrado", warnings[0].MenuItemID)
}

func TestAggregateSales_ErrorDelCatalogo(t *testing.T) {
	orders := []entity.Order{
		burgerOrder("1", entity.OrderTagValue{MenuItemID: "mi-extra-beef", Quantity: dec("1")}),
	}
	menu := &fakeMenu{err: errCatalog}

	_, _, err := costing.AggregateSales(context.Background(), orders, recipeSet("mi-burger"), menu)

	require.Error(t, err)
	assert.ErrorIs(t, err, errCatalog)
}

func TestRecipeMenuItems(t *testing.T) {
	recipes := append(burgerRecipes(), entity.Recipe{ID: "sin-porcion"})

	set := costing.RecipeMenuItems(recipes)

	assert.Len(t, set, 2)
	assert.Contains(t, set, "mi-burger")
	assert.Contains(t, set, "mi-extra-beef")
}
