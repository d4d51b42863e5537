package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/costeo-api/internal/domain"
	"github.com/jhoicas/costeo-api/internal/domain/entity"
	"github.com/jhoicas/costeo-api/internal/domain/repository"
)

var _ repository.WorkPeriodRepository = (*WorkPeriodRepo)(nil)

// WorkPeriodRepo persistencia de períodos de trabajo.
type WorkPeriodRepo struct {
	q Querier
}

// NewWorkPeriodRepository construye el adaptador. Pasar pool o tx (Querier).
func NewWorkPeriodRepository(q Querier) *WorkPeriodRepo {
	return &WorkPeriodRepo{q: q}
}

const workPeriodColumns = `id, start_date, end_date, start_description, end_description`

func (r *WorkPeriodRepo) getOne(ctx context.Context, query string, args ...any) (*entity.WorkPeriod, error) {
	var (
		p   entity.WorkPeriod
		end *time.Time
	)
	err := r.q.QueryRow(ctx, query, args...).Scan(&p.ID, &p.StartDate, &end, &p.StartDescription, &p.EndDescription)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	p.EndDate = derefTime(end)
	return &p, nil
}

// Current último período iniciado.
func (r *WorkPeriodRepo) Current(ctx context.Context) (*entity.WorkPeriod, error) {
	p, err := r.getOne(ctx, `SELECT `+workPeriodColumns+` FROM work_periods ORDER BY start_date DESC LIMIT 1`)
	if err != nil {
		return nil, fmt.Errorf("get current work period: %w", err)
	}
	return p, nil
}

// Previous último período iniciado antes de period.
func (r *WorkPeriodRepo) Previous(ctx context.Context, period *entity.WorkPeriod) (*entity.WorkPeriod, error) {
	p, err := r.getOne(ctx,
		`SELECT `+workPeriodColumns+` FROM work_periods WHERE start_date < $1 ORDER BY start_date DESC LIMIT 1`,
		period.StartDate)
	if err != nil {
		return nil, fmt.Errorf("get previous work period: %w", err)
	}
	return p, nil
}

// Create persiste un período nuevo.
func (r *WorkPeriodRepo) Create(ctx context.Context, period *entity.WorkPeriod) error {
	if period.ID == "" {
		period.ID = uuid.New().String()
	}
	_, err := r.q.Exec(ctx, `
		INSERT INTO work_periods (id, start_date, end_date, start_description, end_description)
		VALUES ($1, $2, $3, $4, $5)`,
		period.ID, period.StartDate, nullTime(period.EndDate), period.StartDescription, period.EndDescription,
	)
	if err != nil {
		return fmt.Errorf("insert work period: %w", err)
	}
	return nil
}

// Close registra la fecha de cierre del período.
func (r *WorkPeriodRepo) Close(ctx context.Context, id string, endDate time.Time, description string) error {
	cmd, err := r.q.Exec(ctx,
		`UPDATE work_periods SET end_date = $2, end_description = $3 WHERE id = $1`,
		id, endDate, description,
	)
	if err != nil {
		return fmt.Errorf("close work period: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
