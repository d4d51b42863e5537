package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/costeo-api/internal/domain/entity"
	"github.com/jhoicas/costeo-api/internal/domain/repository"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

// OrderRepo lectura de órdenes vendidas.
type OrderRepo struct {
	q Querier
}

// NewOrderRepository construye el adaptador. Pasar pool o tx (Querier).
func NewOrderRepository(q Querier) *OrderRepo {
	return &OrderRepo{q: q}
}

// ListSoldWithRecipes órdenes que descuentan inventario, de productos con receta,
// en tickets con fecha en (start, end]. Incluye los tags de cada orden.
func (r *OrderRepo) ListSoldWithRecipes(ctx context.Context, start, end time.Time) ([]entity.Order, error) {
	query := `
		SELECT o.id, o.ticket_id, t.date, o.menu_item_id, o.menu_item_name, o.portion_name, o.quantity, o.decrease_inventory
		FROM orders o
		JOIN tickets t ON t.id = o.ticket_id
		WHERE o.decrease_inventory
		  AND t.date > $1 AND ($2::timestamptz IS NULL OR t.date <= $2)
		  AND EXISTS (
		      SELECT 1 FROM recipes rc
		      JOIN menu_item_portions p ON p.id = rc.portion_id
		      WHERE p.menu_item_id = o.menu_item_id)
		ORDER BY t.date, o.id`
	rows, err := r.q.Query(ctx, query, start, nullTime(end))
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	var (
		orders []entity.Order
		ids    []string
	)
	index := make(map[string]int)
	for rows.Next() {
		var o entity.Order
		if err := rows.Scan(&o.ID, &o.TicketID, &o.Date, &o.MenuItemID, &o.MenuItemName,
			&o.PortionName, &o.Quantity, &o.DecreaseInventory); err != nil {
			rows.Close()
			return nil, fmt.Errorf("scan order: %w", err)
		}
		index[o.ID] = len(orders)
		ids = append(ids, o.ID)
		orders = append(orders, o)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	if len(ids) == 0 {
		return orders, nil
	}

	tagRows, err := r.q.Query(ctx, `
		SELECT order_id, name, COALESCE(menu_item_id::text, ''), portion_name, quantity
		FROM order_tag_values
		WHERE order_id = ANY($1::uuid[])
		ORDER BY order_id, id`, ids)
	if err != nil {
		return nil, fmt.Errorf("list order tags: %w", err)
	}
	defer tagRows.Close()
	for tagRows.Next() {
		var (
			orderID string
			tv      entity.OrderTagValue
		)
		if err := tagRows.Scan(&orderID, &tv.Name, &tv.MenuItemID, &tv.PortionName, &tv.Quantity); err != nil {
			return nil, fmt.Errorf("scan order tag: %w", err)
		}
		if i, ok := index[orderID]; ok {
			orders[i].TagValues = append(orders[i].TagValues, tv)
		}
	}
	return orders, tagRows.Err()
}
