package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/costeo-api/internal/application/consumption"
	"github.com/jhoicas/costeo-api/internal/application/dto"
	"github.com/jhoicas/costeo-api/internal/domain"
	"github.com/jhoicas/costeo-api/internal/domain/entity"
	"github.com/jhoicas/costeo-api/internal/domain/repository"
	"github.com/rs/zerolog"
)

// PeriodEventPublisher publica cambios de estado de período.
type PeriodEventPublisher interface {
	Publish(ctx context.Context, ev consumption.PeriodStatusChanged) error
}

// WorkPeriodUseCase inicia y cierra períodos de trabajo y avisa del cambio a los suscriptores.
type WorkPeriodUseCase struct {
	periods repository.WorkPeriodRepository
	events  PeriodEventPublisher
	now     func() time.Time
	log     zerolog.Logger
}

// NewWorkPeriodUseCase construye el caso de uso.
func NewWorkPeriodUseCase(periods repository.WorkPeriodRepository, events PeriodEventPublisher, log zerolog.Logger) *WorkPeriodUseCase {
	return &WorkPeriodUseCase{
		periods: periods,
		events:  events,
		now:     time.Now,
		log:     log.With().Str("component", "work_period").Logger(),
	}
}

// WithClock reemplaza el reloj (pruebas).
func (uc *WorkPeriodUseCase) WithClock(now func() time.Time) *WorkPeriodUseCase {
	uc.now = now
	return uc
}

// Current devuelve el último período iniciado o domain.ErrNoWorkPeriod.
func (uc *WorkPeriodUseCase) Current(ctx context.Context) (*dto.WorkPeriodResponse, error) {
	p, err := uc.periods.Current(ctx)
	if err != nil {
		return nil, fmt.Errorf("período actual: %w", err)
	}
	if p == nil {
		return nil, domain.ErrNoWorkPeriod
	}
	return toWorkPeriodResponse(p), nil
}

// Start abre un período nuevo. Falla con domain.ErrPeriodIsOpen si ya hay uno abierto.
func (uc *WorkPeriodUseCase) Start(ctx context.Context, description string) (*dto.WorkPeriodResponse, error) {
	current, err := uc.periods.Current(ctx)
	if err != nil {
		return nil, fmt.Errorf("período actual: %w", err)
	}
	if current != nil && current.IsOpen() {
		return nil, domain.ErrPeriodIsOpen
	}

	now := uc.now()
	p := &entity.WorkPeriod{
		ID:               uuid.New().String(),
		StartDate:        now,
		StartDescription: description,
	}
	if err := uc.periods.Create(ctx, p); err != nil {
		return nil, fmt.Errorf("crear período: %w", err)
	}
	uc.log.Info().Str("work_period_id", p.ID).Msg("período iniciado")

	uc.publish(ctx, consumption.PeriodStatusChanged{
		PeriodID:   p.ID,
		OldStatus:  consumption.PeriodClosed,
		NewStatus:  consumption.PeriodOpened,
		OccurredAt: now,
	})
	return toWorkPeriodResponse(p), nil
}

// End cierra el período abierto. Falla con domain.ErrNoOpenPeriod si no hay ninguno.
func (uc *WorkPeriodUseCase) End(ctx context.Context, description string) (*dto.WorkPeriodResponse, error) {
	current, err := uc.periods.Current(ctx)
	if err != nil {
		return nil, fmt.Errorf("período actual: %w", err)
	}
	if current == nil || !current.IsOpen() {
		return nil, domain.ErrNoOpenPeriod
	}

	now := uc.now()
	if !now.After(current.StartDate) {
		return nil, domain.NewValidationError("el cierre debe ser posterior al inicio del período")
	}
	if err := uc.periods.Close(ctx, current.ID, now, description); err != nil {
		return nil, fmt.Errorf("cerrar período: %w", err)
	}
	current.EndDate = now
	current.EndDescription = description
	uc.log.Info().Str("work_period_id", current.ID).Msg("período cerrado")

	uc.publish(ctx, consumption.PeriodStatusChanged{
		PeriodID:   current.ID,
		OldStatus:  consumption.PeriodOpened,
		NewStatus:  consumption.PeriodClosed,
		OccurredAt: now,
	})
	return toWorkPeriodResponse(current), nil
}

// publish no revierte la transición: el costeo se recalcula en el siguiente disparo.
func (uc *WorkPeriodUseCase) publish(ctx context.Context, ev consumption.PeriodStatusChanged) {
	if uc.events == nil {
		return
	}
	if err := uc.events.Publish(ctx, ev); err != nil {
		uc.log.Error().Err(err).Str("work_period_id", ev.PeriodID).Str("status", string(ev.NewStatus)).Msg("procesar cambio de período")
	}
}

func toWorkPeriodResponse(p *entity.WorkPeriod) *dto.WorkPeriodResponse {
	out := &dto.WorkPeriodResponse{
		ID:               p.ID,
		StartDate:        p.StartDate,
		StartDescription: p.StartDescription,
		EndDescription:   p.EndDescription,
		Open:             p.IsOpen(),
	}
	if !p.IsOpen() {
		end := p.EndDate
		out.EndDate = &end
	}
	return out
}
