package costing

import "github.com/jhoicas/costeo-api/internal/domain/entity"

// RecipeIndex búsqueda de receta por (producto, nombre de porción).
type RecipeIndex map[salesKey]*entity.Recipe

// IndexRecipes indexa las recetas con porción. Ante duplicados conserva la primera;
// la unicidad por porción se valida al guardar la receta.
func IndexRecipes(recipes []entity.Recipe) RecipeIndex {
	idx := make(RecipeIndex, len(recipes))
	for i := range recipes {
		r := &recipes[i]
		if r.Portion == nil {
			continue
		}
		k := salesKey{menuItemID: r.Portion.MenuItemID, portionName: r.Portion.Name}
		if _, dup := idx[k]; dup {
			continue
		}
		idx[k] = r
	}
	return idx
}

// Find receta de la venta o nil.
func (idx RecipeIndex) Find(sale entity.SalesData) *entity.Recipe {
	return idx[salesKey{menuItemID: sale.MenuItemID, portionName: sale.PortionName}]
}
