package repository

import (
	"context"
	"time"

	"github.com/jhoicas/costeo-api/internal/domain/entity"
)

// OrderRepository lectura de ventas registradas.
type OrderRepository interface {
	// ListSoldWithRecipes órdenes que descuentan inventario, de productos con receta,
	// en tickets con fecha posterior a start (y no posterior a end si no es cero).
	// Incluye TagValues.
	ListSoldWithRecipes(ctx context.Context, start, end time.Time) ([]entity.Order, error)
}
