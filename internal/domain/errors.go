package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrConflict           = errors.New("conflicto con el estado actual")
	ErrInsufficientStock  = errors.New("stock insuficiente")
	ErrInvalidTransition  = errors.New("transición de estado inválida")
)

// InvalidTransitionError indica un cambio de estado fuera de la tabla de
// transiciones. From y To llevan las etiquetas legibles de ambos estados.
type InvalidTransitionError struct {
	From string
	To   string
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("no se puede pasar del estado %q al estado %q", e.From, e.To)
}

// Is permite errors.Is(err, ErrInvalidTransition).
func (e *InvalidTransitionError) Is(target error) bool {
	return target == ErrInvalidTransition
}

// InsufficientStockError indica que la cantidad solicitada supera el stock
// disponible del artículo.
type InsufficientStockError struct {
	Item      string
	Available int64
	Requested int64
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("stock insuficiente: %s (disponible: %d, solicitado: %d)", e.Item, e.Available, e.Requested)
}

// Is permite errors.Is(err, ErrInsufficientStock).
func (e *InsufficientStockError) Is(target error) bool {
	return target == ErrInsufficientStock
}
