package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrConflict           = errors.New("conflicto con el estado actual")
	ErrNoOpenPeriod       = errors.New("no hay un período de trabajo abierto")
	ErrPeriodIsOpen       = errors.New("ya existe un período de trabajo abierto")
	ErrNoWorkPeriod       = errors.New("no existe ningún período de trabajo")
	ErrInventoryItemInUse = errors.New("el artículo de inventario está en uso en un consumo periódico")

	// ErrConsumptionItemMissing indica que una receta referencia un artículo sin
	// PeriodicConsumptionItem en el período. Es fatal para el lote: continuar
	// dejaría los totales de consumo y costo incompletos.
	ErrConsumptionItemMissing = errors.New("artículo de receta sin registro de consumo en el período")
)

// ValidationError es un error recuperable con un mensaje para el usuario.
// Bloquea el guardado o borrado sin modificar el estado.
type ValidationError struct {
	Message string
	Kind    error // ErrInvalidInput o ErrConflict
}

// NewValidationError construye un error de validación de entrada.
func NewValidationError(msg string) *ValidationError {
	return &ValidationError{Message: msg, Kind: ErrInvalidInput}
}

// NewConflictError construye un error de validación por conflicto con datos existentes.
func NewConflictError(msg string) *ValidationError {
	return &ValidationError{Message: msg, Kind: ErrConflict}
}

func (e *ValidationError) Error() string { return e.Message }

func (e *ValidationError) Unwrap() error { return e.Kind }
