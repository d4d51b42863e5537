package entity

import "time"

// WorkPeriod intervalo de operación (normalmente un día de negocio).
// Un período abierto tiene EndDate en cero o igual a StartDate.
type WorkPeriod struct {
	ID               string
	StartDate        time.Time
	EndDate          time.Time
	StartDescription string
	EndDescription   string
}

// IsOpen indica si el período sigue abierto.
func (w *WorkPeriod) IsOpen() bool {
	return w.EndDate.IsZero() || w.EndDate.Equal(w.StartDate)
}
