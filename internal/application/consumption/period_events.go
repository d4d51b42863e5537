package consumption

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// PeriodStatus estado de un período de trabajo.
type PeriodStatus string

const (
	PeriodOpened PeriodStatus = "opened"
	PeriodClosed PeriodStatus = "closed"
)

// PeriodStatusChanged se publica al iniciar o cerrar un período de trabajo.
type PeriodStatusChanged struct {
	PeriodID   string
	OldStatus  PeriodStatus
	NewStatus  PeriodStatus
	OccurredAt time.Time
}

// PeriodEventHandler reacciona a un cambio de estado de período.
type PeriodEventHandler func(ctx context.Context, ev PeriodStatusChanged) error

// PeriodEventDispatcher entrega eventos de período en forma síncrona, en orden de registro
// y de a uno a la vez. Un handler que falla o entra en pánico no impide que corran los demás.
// Un handler puede llamar a Subscribe; el nuevo handler recibe recién el evento siguiente.
// Un handler no debe llamar a Publish sobre el mismo dispatcher.
type PeriodEventDispatcher struct {
	mu       sync.Mutex // protege handlers
	publish  sync.Mutex // serializa las entregas
	handlers []PeriodEventHandler
	log      zerolog.Logger
}

// NewPeriodEventDispatcher construye el dispatcher.
func NewPeriodEventDispatcher(log zerolog.Logger) *PeriodEventDispatcher {
	return &PeriodEventDispatcher{log: log.With().Str("component", "period_events").Logger()}
}

// Subscribe registra un handler.
func (d *PeriodEventDispatcher) Subscribe(h PeriodEventHandler) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.handlers = append(d.handlers, h)
}

// Publish entrega ev a todos los handlers y devuelve sus errores combinados.
func (d *PeriodEventDispatcher) Publish(ctx context.Context, ev PeriodStatusChanged) error {
	d.publish.Lock()
	defer d.publish.Unlock()

	d.mu.Lock()
	handlers := append([]PeriodEventHandler(nil), d.handlers...)
	d.mu.Unlock()

	var errs []error
	for _, h := range handlers {
		if err := d.dispatch(ctx, h, ev); err != nil {
			d.log.Error().Err(err).
				Str("work_period_id", ev.PeriodID).
				Str("status", string(ev.NewStatus)).
				Msg("handler de período falló")
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (d *PeriodEventDispatcher) dispatch(ctx context.Context, h PeriodEventHandler, ev PeriodStatusChanged) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic en handler de período: %v", r)
		}
	}()
	return h(ctx, ev)
}
