package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/costeo-api/internal/domain"
	"github.com/jhoicas/costeo-api/internal/domain/entity"
	"github.com/jhoicas/costeo-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

var _ repository.RecipeRepository = (*RecipeRepo)(nil)

// RecipeRepo implementación de RecipeRepository (usable con pool o tx).
type RecipeRepo struct {
	q Querier
}

// NewRecipeRepository construye el adaptador. Pasar pool o tx (Querier).
func NewRecipeRepository(q Querier) *RecipeRepo {
	return &RecipeRepo{q: q}
}

const recipeSelect = `
	SELECT r.id, r.name, r.fixed_cost, p.id, p.menu_item_id, p.name, p.multiplier
	FROM recipes r
	JOIN menu_item_portions p ON p.id = r.portion_id`

func scanRecipe(row pgx.Row) (*entity.Recipe, error) {
	var rec entity.Recipe
	var p entity.MenuItemPortion
	if err := row.Scan(&rec.ID, &rec.Name, &rec.FixedCost, &p.ID, &p.MenuItemID, &p.Name, &p.Multiplier); err != nil {
		return nil, err
	}
	rec.Portion = &p
	return &rec, nil
}

// ListAll carga todas las recetas con su porción, ítems e insumos.
func (r *RecipeRepo) ListAll(ctx context.Context) ([]entity.Recipe, error) {
	rows, err := r.q.Query(ctx, recipeSelect+` ORDER BY r.name`)
	if err != nil {
		return nil, fmt.Errorf("list recipes: %w", err)
	}
	var list []entity.Recipe
	index := make(map[string]int)
	for rows.Next() {
		rec, err := scanRecipe(rows)
		if err != nil {
			rows.Close()
			return nil, fmt.Errorf("scan recipe: %w", err)
		}
		index[rec.ID] = len(list)
		list = append(list, *rec)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list recipes: %w", err)
	}

	items, err := r.loadItems(ctx, "")
	if err != nil {
		return nil, err
	}
	for recipeID, its := range items {
		if i, ok := index[recipeID]; ok {
			list[i].Items = its
		}
	}
	return list, nil
}

// Count número de recetas.
func (r *RecipeRepo) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.q.QueryRow(ctx, `SELECT count(*) FROM recipes`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count recipes: %w", err)
	}
	return n, nil
}

// GetByPortion receta de la porción o nil.
func (r *RecipeRepo) GetByPortion(ctx context.Context, portionID string) (*entity.Recipe, error) {
	rec, err := scanRecipe(r.q.QueryRow(ctx, recipeSelect+` WHERE r.portion_id = $1`, portionID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get recipe by portion: %w", err)
	}
	items, err := r.loadItems(ctx, rec.ID)
	if err != nil {
		return nil, err
	}
	rec.Items = items[rec.ID]
	return rec, nil
}

// Save inserta o reemplaza la receta y todas sus líneas.
func (r *RecipeRepo) Save(ctx context.Context, recipe *entity.Recipe) error {
	if recipe.Portion == nil {
		return domain.ErrInvalidInput
	}
	if recipe.ID == "" {
		recipe.ID = uuid.New().String()
	}
	_, err := r.q.Exec(ctx, `
		INSERT INTO recipes (id, name, portion_id, fixed_cost)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (id) DO UPDATE SET name = EXCLUDED.name, portion_id = EXCLUDED.portion_id, fixed_cost = EXCLUDED.fixed_cost`,
		recipe.ID, recipe.Name, recipe.Portion.ID, recipe.FixedCost,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("save recipe: %w", domain.ErrConflict)
		}
		return fmt.Errorf("save recipe: %w", err)
	}

	b := &pgx.Batch{}
	b.Queue(`DELETE FROM recipe_items WHERE recipe_id = $1`, recipe.ID)
	for i := range recipe.Items {
		ri := &recipe.Items[i]
		if ri.ID == "" {
			ri.ID = uuid.New().String()
		}
		var invID *string
		if ri.InventoryItem != nil {
			invID = &ri.InventoryItem.ID
		}
		b.Queue(`INSERT INTO recipe_items (id, recipe_id, inventory_item_id, quantity) VALUES ($1, $2, $3, $4)`,
			ri.ID, recipe.ID, invID, ri.Quantity)
	}
	return execBatch(ctx, r.q, b, "save recipe items")
}

// loadItems carga las líneas agrupadas por receta; recipeID vacío trae todas.
func (r *RecipeRepo) loadItems(ctx context.Context, recipeID string) (map[string][]entity.RecipeItem, error) {
	query := `
		SELECT ri.id, ri.recipe_id, ri.quantity,
		       i.id, i.name, i.group_code, i.base_unit, i.transaction_unit, i.transaction_unit_multiplier
		FROM recipe_items ri
		LEFT JOIN inventory_items i ON i.id = ri.inventory_item_id
		WHERE ($1::text = '' OR ri.recipe_id::text = $1::text)
		ORDER BY ri.recipe_id, ri.id`
	rows, err := r.q.Query(ctx, query, recipeID)
	if err != nil {
		return nil, fmt.Errorf("list recipe items: %w", err)
	}
	defer rows.Close()
	out := make(map[string][]entity.RecipeItem)
	for rows.Next() {
		var (
			ri                               entity.RecipeItem
			rid                              string
			invID, name, group, base, txUnit *string
			mult                             decimal.NullDecimal
		)
		if err := rows.Scan(&ri.ID, &rid, &ri.Quantity, &invID, &name, &group, &base, &txUnit, &mult); err != nil {
			return nil, fmt.Errorf("scan recipe item: %w", err)
		}
		if invID != nil {
			ri.InventoryItem = &entity.InventoryItem{
				ID:                        *invID,
				Name:                      derefStr(name),
				GroupCode:                 derefStr(group),
				BaseUnit:                  derefStr(base),
				TransactionUnit:           derefStr(txUnit),
				TransactionUnitMultiplier: mult.Decimal,
			}
		}
		out[rid] = append(out[rid], ri)
	}
	return out, rows.Err()
}
