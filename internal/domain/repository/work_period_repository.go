package repository

import (
	"context"
	"time"

	"github.com/jhoicas/costeo-api/internal/domain/entity"
)

// WorkPeriodRepository estado de los períodos de trabajo.
type WorkPeriodRepository interface {
	// Current último período iniciado (abierto o cerrado); nil, nil si no hay ninguno.
	Current(ctx context.Context) (*entity.WorkPeriod, error)
	// Previous último período iniciado antes de period; nil, nil si no hay.
	Previous(ctx context.Context, period *entity.WorkPeriod) (*entity.WorkPeriod, error)
	Create(ctx context.Context, period *entity.WorkPeriod) error
	Close(ctx context.Context, id string, endDate time.Time, description string) error
}
