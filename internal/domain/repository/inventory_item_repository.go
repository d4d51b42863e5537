package repository

import (
	"context"

	"github.com/jhoicas/costeo-api/internal/domain/entity"
)

// InventoryItemRepository define el puerto de persistencia para InventoryItem (DIP).
type InventoryItemRepository interface {
	ListAll(ctx context.Context) ([]entity.InventoryItem, error)
	GetByID(ctx context.Context, id string) (*entity.InventoryItem, error)
	Delete(ctx context.Context, id string) error
	// ListDistinctNames nombres sin repetir, sin orden garantizado (el caso de uso los ordena).
	ListDistinctNames(ctx context.Context) ([]string, error)
	ListDistinctGroupCodes(ctx context.Context) ([]string, error)
}
