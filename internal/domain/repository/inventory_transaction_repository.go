package repository

import (
	"context"
	"time"

	"github.com/jhoicas/costeo-api/internal/domain/entity"
)

// InventoryTransactionRepository lectura de recepciones de mercancía.
type InventoryTransactionRepository interface {
	// ListItemsSince líneas de transacciones con fecha posterior a start.
	// Si end no es cero, excluye las posteriores a end.
	ListItemsSince(ctx context.Context, start, end time.Time) ([]entity.InventoryTransactionItem, error)
}
