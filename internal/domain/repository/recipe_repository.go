package repository

import (
	"context"

	"github.com/jhoicas/costeo-api/internal/domain/entity"
)

// RecipeRepository define el puerto de persistencia para recetas.
type RecipeRepository interface {
	// ListAll carga recetas con porción, ítems e insumos.
	ListAll(ctx context.Context) ([]entity.Recipe, error)
	Count(ctx context.Context) (int, error)
	// GetByPortion devuelve nil, nil si la porción no tiene receta.
	GetByPortion(ctx context.Context, portionID string) (*entity.Recipe, error)
	// Save crea o reemplaza la receta y sus ítems.
	Save(ctx context.Context, recipe *entity.Recipe) error
}
