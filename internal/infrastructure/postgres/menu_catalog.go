package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/costeo-api/internal/domain/entity"
	"github.com/jhoicas/costeo-api/internal/domain/repository"
)

var _ repository.MenuCatalog = (*MenuCatalog)(nil)

// MenuCatalog consulta de productos del menú con sus porciones.
type MenuCatalog struct {
	q Querier
}

// NewMenuCatalog construye el adaptador. Pasar pool o tx (Querier).
func NewMenuCatalog(q Querier) *MenuCatalog {
	return &MenuCatalog{q: q}
}

// GetMenuItem producto con porciones en orden de presentación; nil si no existe.
func (c *MenuCatalog) GetMenuItem(ctx context.Context, id string) (*entity.MenuItem, error) {
	var mi entity.MenuItem
	err := c.q.QueryRow(ctx, `SELECT id, name, group_code FROM menu_items WHERE id = $1`, id).
		Scan(&mi.ID, &mi.Name, &mi.GroupCode)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get menu item: %w", err)
	}

	rows, err := c.q.Query(ctx, `
		SELECT id, menu_item_id, name, multiplier
		FROM menu_item_portions
		WHERE menu_item_id = $1
		ORDER BY sort_order, name`, id)
	if err != nil {
		return nil, fmt.Errorf("list portions: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var p entity.MenuItemPortion
		if err := rows.Scan(&p.ID, &p.MenuItemID, &p.Name, &p.Multiplier); err != nil {
			return nil, fmt.Errorf("scan portion: %w", err)
		}
		mi.Portions = append(mi.Portions, p)
	}
	return &mi, rows.Err()
}
