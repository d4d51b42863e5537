package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jhoicas/costeo-api/internal/application/dto"
	"github.com/jhoicas/costeo-api/internal/domain"
	"github.com/jhoicas/costeo-api/internal/domain/entity"
	"github.com/jhoicas/costeo-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

// RecipeUseCase alta y edición de recetas con sus reglas de validación.
type RecipeUseCase struct {
	recipes repository.RecipeRepository
	items   repository.InventoryItemRepository
	menu    repository.MenuCatalog
}

// NewRecipeUseCase construye el caso de uso.
func NewRecipeUseCase(
	recipes repository.RecipeRepository,
	items repository.InventoryItemRepository,
	menu repository.MenuCatalog,
) *RecipeUseCase {
	return &RecipeUseCase{recipes: recipes, items: items, menu: menu}
}

// Save crea o reemplaza una receta.
// Errores de validación (*domain.ValidationError): sin porción, líneas sin insumo o con
// cantidad no positiva, y porción ya usada por otra receta.
func (uc *RecipeUseCase) Save(ctx context.Context, in dto.SaveRecipeRequest) (*dto.RecipeResponse, error) {
	portion, err := uc.resolvePortion(ctx, in.MenuItemID, in.PortionID)
	if err != nil {
		return nil, err
	}
	if in.FixedCost.IsNegative() {
		return nil, domain.NewValidationError("el costo fijo no puede ser negativo")
	}

	recipe := &entity.Recipe{
		ID:        in.ID,
		Name:      in.Name,
		Portion:   portion,
		FixedCost: in.FixedCost,
		Items:     make([]entity.RecipeItem, 0, len(in.Items)),
	}
	for _, line := range in.Items {
		if line.InventoryItemID == "" {
			return nil, domain.NewValidationError("todas las líneas de la receta deben tener un insumo")
		}
		if !line.Quantity.GreaterThan(decimal.Zero) {
			return nil, domain.NewValidationError("la cantidad de cada línea debe ser mayor que cero")
		}
		inv, err := uc.items.GetByID(ctx, line.InventoryItemID)
		if err != nil {
			return nil, fmt.Errorf("obtener insumo: %w", err)
		}
		if inv == nil {
			return nil, domain.NewValidationError(fmt.Sprintf("el insumo %s no existe", line.InventoryItemID))
		}
		recipe.Items = append(recipe.Items, entity.RecipeItem{
			ID:            uuid.New().String(),
			InventoryItem: inv,
			Quantity:      line.Quantity,
		})
	}

	existing, err := uc.recipes.GetByPortion(ctx, portion.ID)
	if err != nil {
		return nil, fmt.Errorf("buscar receta de la porción: %w", err)
	}
	if existing != nil && existing.ID != recipe.ID {
		return nil, domain.NewConflictError(fmt.Sprintf("la porción %s ya está asignada a la receta %q", portion.Name, existing.Name))
	}

	if recipe.ID == "" {
		recipe.ID = uuid.New().String()
	}
	if recipe.Name == "" {
		recipe.Name = portion.Name
	}
	if err := uc.recipes.Save(ctx, recipe); err != nil {
		return nil, fmt.Errorf("guardar receta: %w", err)
	}
	return toRecipeResponse(recipe), nil
}

func (uc *RecipeUseCase) resolvePortion(ctx context.Context, menuItemID, portionID string) (*entity.MenuItemPortion, error) {
	if menuItemID == "" || portionID == "" {
		return nil, domain.NewValidationError("la receta debe tener una porción")
	}
	mi, err := uc.menu.GetMenuItem(ctx, menuItemID)
	if err != nil {
		return nil, fmt.Errorf("obtener producto: %w", err)
	}
	if mi == nil {
		return nil, domain.NewValidationError("la receta debe tener una porción")
	}
	for i := range mi.Portions {
		if mi.Portions[i].ID == portionID {
			p := mi.Portions[i]
			return &p, nil
		}
	}
	return nil, domain.NewValidationError("la receta debe tener una porción")
}

func toRecipeResponse(r *entity.Recipe) *dto.RecipeResponse {
	out := &dto.RecipeResponse{
		ID:        r.ID,
		Name:      r.Name,
		FixedCost: r.FixedCost,
		Items:     make([]dto.RecipeItemResponse, 0, len(r.Items)),
	}
	if r.Portion != nil {
		out.PortionID = r.Portion.ID
		out.PortionName = r.Portion.Name
		out.MenuItemID = r.Portion.MenuItemID
	}
	for _, ri := range r.Items {
		item := dto.RecipeItemResponse{ID: ri.ID, Quantity: ri.Quantity}
		if ri.InventoryItem != nil {
			item.InventoryItemID = ri.InventoryItem.ID
			item.InventoryItemName = ri.InventoryItem.Name
		}
		out.Items = append(out.Items, item)
	}
	return out
}
