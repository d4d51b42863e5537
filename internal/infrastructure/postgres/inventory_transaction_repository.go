package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/costeo-api/internal/domain/entity"
	"github.com/jhoicas/costeo-api/internal/domain/repository"
)

var _ repository.InventoryTransactionRepository = (*InventoryTransactionRepo)(nil)

// InventoryTransactionRepo lectura de recepciones de mercancía.
type InventoryTransactionRepo struct {
	q Querier
}

// NewInventoryTransactionRepository construye el adaptador. Pasar pool o tx (Querier).
func NewInventoryTransactionRepository(q Querier) *InventoryTransactionRepo {
	return &InventoryTransactionRepo{q: q}
}

// ListItemsSince líneas de transacciones con fecha en (start, end]; end cero no acota.
func (r *InventoryTransactionRepo) ListItemsSince(ctx context.Context, start, end time.Time) ([]entity.InventoryTransactionItem, error) {
	query := `
		SELECT ti.id, ti.transaction_id, ti.inventory_item_id, t.date, ti.quantity, ti.multiplier, ti.price
		FROM inventory_transaction_items ti
		JOIN inventory_transactions t ON t.id = ti.transaction_id
		WHERE t.date > $1 AND ($2::timestamptz IS NULL OR t.date <= $2)
		ORDER BY t.date, ti.id`
	rows, err := r.q.Query(ctx, query, start, nullTime(end))
	if err != nil {
		return nil, fmt.Errorf("list transaction items: %w", err)
	}
	defer rows.Close()
	var list []entity.InventoryTransactionItem
	for rows.Next() {
		var ti entity.InventoryTransactionItem
		if err := rows.Scan(&ti.ID, &ti.TransactionID, &ti.InventoryItemID, &ti.Date,
			&ti.Quantity, &ti.Multiplier, &ti.Price); err != nil {
			return nil, fmt.Errorf("scan transaction item: %w", err)
		}
		list = append(list, ti)
	}
	return list, rows.Err()
}
