package costing_test

import (
	"context"
	"errors"
	"testing"

	"github.com/jhoicas/costeo-api/internal/domain/entity"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func decPtr(s string) *decimal.Decimal {
	d := dec(s)
	return &d
}

// assertDec compara por valor (decimal.Equal), no por representación interna.
func assertDec(t *testing.T, want string, got decimal.Decimal, msgAndArgs ...interface{}) {
	t.Helper()
	assert.Truef(t, dec(want).Equal(got), "esperado %s, obtenido %s %v", want, got.String(), msgAndArgs)
}

// fakeMenu catálogo de menú en memoria.
type fakeMenu struct {
	items map[string]*entity.MenuItem
	err   error
	calls int
}

func (f *fakeMenu) GetMenuItem(_ context.Context, id string) (*entity.MenuItem, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.items[id], nil
}

var errCatalog = errors.New("catálogo no disponible")

// ── Fixture hamburguesa ───────────────────────────────────────────────────────

var (
	bun  = entity.InventoryItem{ID: "inv-bun", Name: "Pan", GroupCode: "Panadería", BaseUnit: "und", TransactionUnitMultiplier: dec("1")}
	beef = entity.InventoryItem{ID: "inv-beef", Name: "Carne", GroupCode: "Cárnicos", BaseUnit: "kg"}

	burgerRegular  = entity.MenuItemPortion{ID: "por-burger-reg", MenuItemID: "mi-burger", Name: "Regular"}
	burgerDouble   = entity.MenuItemPortion{ID: "por-burger-dbl", MenuItemID: "mi-burger", Name: "Doble"}
	extraBeefNorm  = entity.MenuItemPortion{ID: "por-extra-norm", MenuItemID: "mi-extra-beef", Name: "Normal"}
	extraBeefLarge = entity.MenuItemPortion{ID: "por-extra-large", MenuItemID: "mi-extra-beef", Name: "Grande"}
)

func burgerMenu() *fakeMenu {
	return &fakeMenu{items: map[string]*entity.MenuItem{
		"mi-burger":     {ID: "mi-burger", Name: "Hamburguesa", Portions: []entity.MenuItemPortion{burgerRegular, burgerDouble}},
		"mi-extra-beef": {ID: "mi-extra-beef", Name: "Carne Extra", Portions: []entity.MenuItemPortion{extraBeefNorm, extraBeefLarge}},
	}}
}

func burgerRecipes() []entity.Recipe {
	b, m := bun, beef
	return []entity.Recipe{
		{
			ID: "rec-burger", Name: "Hamburguesa Regular", Portion: &burgerRegular, FixedCost: dec("0.10"),
			Items: []entity.RecipeItem{
				{ID: "ri-1", InventoryItem: &b, Quantity: dec("1")},
				{ID: "ri-2", InventoryItem: &m, Quantity: dec("0.2")},
			},
		},
		{
			ID: "rec-extra", Name: "Carne Extra Normal", Portion: &extraBeefNorm, FixedCost: decimal.Zero,
			Items: []entity.RecipeItem{
				{ID: "ri-3", InventoryItem: &m, Quantity: dec("0.2")},
			},
		},
	}
}

// burgerConsumption registro con Pan a 0.50 y Carne a 8.00 recién construido.
func burgerConsumption() *entity.PeriodicConsumption {
	return &entity.PeriodicConsumption{
		WorkPeriodID: "wp-2",
		Items: []entity.PeriodicConsumptionItem{
			{InventoryItemID: bun.ID, UnitMultiplier: dec("1"), Purchase: dec("100"), Cost: dec("0.50")},
			{InventoryItemID: beef.ID, UnitMultiplier: dec("1"), Purchase: dec("10"), Cost: dec("8.00")},
		},
	}
}
