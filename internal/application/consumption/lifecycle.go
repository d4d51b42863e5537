package consumption

import (
	"context"

	"github.com/rs/zerolog"
)

// LifecycleOrchestrator engancha el costeo a las transiciones de período:
// al cerrar crea el registro del período; al abrir concilia el anterior.
type LifecycleOrchestrator struct {
	uc  *ConsumptionUseCase
	log zerolog.Logger
}

// NewLifecycleOrchestrator construye el orquestador.
func NewLifecycleOrchestrator(uc *ConsumptionUseCase, log zerolog.Logger) *LifecycleOrchestrator {
	return &LifecycleOrchestrator{uc: uc, log: log.With().Str("component", "consumption_lifecycle").Logger()}
}

// Register suscribe el orquestador al dispatcher.
func (o *LifecycleOrchestrator) Register(d *PeriodEventDispatcher) {
	d.Subscribe(o.HandlePeriodStatusChanged)
}

// HandlePeriodStatusChanged ejecuta el costeo que corresponde al nuevo estado.
// Sin recetas no hace nada.
func (o *LifecycleOrchestrator) HandlePeriodStatusChanged(ctx context.Context, ev PeriodStatusChanged) error {
	has, err := o.uc.HasRecipes(ctx)
	if err != nil {
		return err
	}
	if !has {
		o.log.Debug().Str("work_period_id", ev.PeriodID).Msg("sin recetas, se omite el costeo")
		return nil
	}

	switch ev.NewStatus {
	case PeriodClosed:
		pc, err := o.uc.GetOrCreateCurrent(ctx)
		if err != nil {
			o.log.Error().Err(err).Str("work_period_id", ev.PeriodID).Msg("crear registro de consumo")
			return err
		}
		o.log.Info().Str("work_period_id", pc.WorkPeriodID).Str("name", pc.Name).Msg("consumo del período listo")
	case PeriodOpened:
		pc, err := o.uc.RecalculatePrevious(ctx)
		if err != nil {
			o.log.Error().Err(err).Str("work_period_id", ev.PeriodID).Msg("conciliar período anterior")
			return err
		}
		if pc == nil {
			o.log.Debug().Str("work_period_id", ev.PeriodID).Msg("sin registro anterior que conciliar")
		}
	}
	return nil
}
