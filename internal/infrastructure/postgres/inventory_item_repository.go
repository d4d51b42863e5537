package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/costeo-api/internal/domain"
	"github.com/jhoicas/costeo-api/internal/domain/entity"
	"github.com/jhoicas/costeo-api/internal/domain/repository"
)

var _ repository.InventoryItemRepository = (*InventoryItemRepo)(nil)

// InventoryItemRepo implementación de InventoryItemRepository sobre PostgreSQL (usable con pool o tx).
type InventoryItemRepo struct {
	q Querier
}

// NewInventoryItemRepository construye el adaptador. Pasar pool o tx (Querier).
func NewInventoryItemRepository(q Querier) *InventoryItemRepo {
	return &InventoryItemRepo{q: q}
}

const inventoryItemColumns = `id, name, group_code, base_unit, transaction_unit, transaction_unit_multiplier, created_at, updated_at`

func scanInventoryItem(row pgx.Row, it *entity.InventoryItem) error {
	return row.Scan(&it.ID, &it.Name, &it.GroupCode, &it.BaseUnit, &it.TransactionUnit,
		&it.TransactionUnitMultiplier, &it.CreatedAt, &it.UpdatedAt)
}

// ListAll lista todos los insumos ordenados por nombre.
func (r *InventoryItemRepo) ListAll(ctx context.Context) ([]entity.InventoryItem, error) {
	rows, err := r.q.Query(ctx, `SELECT `+inventoryItemColumns+` FROM inventory_items ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list inventory items: %w", err)
	}
	defer rows.Close()
	var list []entity.InventoryItem
	for rows.Next() {
		var it entity.InventoryItem
		if err := scanInventoryItem(rows, &it); err != nil {
			return nil, fmt.Errorf("scan inventory item: %w", err)
		}
		list = append(list, it)
	}
	return list, rows.Err()
}

// GetByID obtiene un insumo por ID.
func (r *InventoryItemRepo) GetByID(ctx context.Context, id string) (*entity.InventoryItem, error) {
	var it entity.InventoryItem
	err := scanInventoryItem(r.q.QueryRow(ctx, `SELECT `+inventoryItemColumns+` FROM inventory_items WHERE id = $1`, id), &it)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get inventory item: %w", err)
	}
	return &it, nil
}

// Delete elimina un insumo. Si otra tabla lo referencia devuelve domain.ErrInventoryItemInUse.
func (r *InventoryItemRepo) Delete(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM inventory_items WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("delete inventory item: %w", domain.ErrInventoryItemInUse)
		}
		return fmt.Errorf("delete inventory item: %w", err)
	}
	return nil
}

// ListDistinctNames nombres de insumos sin repetir.
func (r *InventoryItemRepo) ListDistinctNames(ctx context.Context) ([]string, error) {
	return r.distinct(ctx, `SELECT DISTINCT name FROM inventory_items`)
}

// ListDistinctGroupCodes códigos de grupo no vacíos sin repetir.
func (r *InventoryItemRepo) ListDistinctGroupCodes(ctx context.Context) ([]string, error) {
	return r.distinct(ctx, `SELECT DISTINCT group_code FROM inventory_items WHERE group_code <> ''`)
}

func (r *InventoryItemRepo) distinct(ctx context.Context, query string) ([]string, error) {
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list distinct: %w", err)
	}
	out, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, fmt.Errorf("scan distinct: %w", err)
	}
	return out, nil
}
