package dto

import "time"

// WorkPeriodRequest descripción opcional al iniciar o cerrar un período.
type WorkPeriodRequest struct {
	Description string `json:"description"`
}

// WorkPeriodResponse salida de un período de trabajo.
type WorkPeriodResponse struct {
	ID               string     `json:"id"`
	StartDate        time.Time  `json:"start_date"`
	EndDate          *time.Time `json:"end_date,omitempty"`
	StartDescription string     `json:"start_description"`
	EndDescription   string     `json:"end_description"`
	Open             bool       `json:"open"`
}
