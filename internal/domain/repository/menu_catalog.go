package repository

import (
	"context"

	"github.com/jhoicas/costeo-api/internal/domain/entity"
)

// MenuCatalog consulta del menú. Las porciones vienen en orden de presentación.
type MenuCatalog interface {
	// GetMenuItem devuelve nil, nil si el producto no existe.
	GetMenuItem(ctx context.Context, id string) (*entity.MenuItem, error)
}
