package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrItemNotFound      = errors.New("artículo no encontrado")
	ErrUserNotFound      = errors.New("usuario no encontrado")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrDuplicate         = errors.New("recurso duplicado")
	ErrUnauthorized      = errors.New("no autorizado")
	ErrForbidden         = errors.New("acceso denegado")
	ErrConflict          = errors.New("conflicto con el estado actual")
	ErrInsufficientStock = errors.New("stock insuficiente")
	ErrInvalidParameter  = errors.New("parámetro inválido")
)

// InsufficientStockError rechazo de un movimiento de salida que dejaría el stock en negativo.
// Reporta stock actual y cantidad solicitada para que el caller pueda explicar el rechazo.
type InsufficientStockError struct {
	ItemID       string
	CurrentStock int64
	Requested    int64
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("stock insuficiente para el artículo %s: disponible %d, solicitado %d",
		e.ItemID, e.CurrentStock, e.Requested)
}

// Is permite errors.Is(err, ErrInsufficientStock).
func (e *InsufficientStockError) Is(target error) bool {
	return target == ErrInsufficientStock
}

// InvalidParameterError entrada de un calculador de planificación que viola su precondición.
type InvalidParameterError struct {
	Name   string
	Reason string
}

func (e *InvalidParameterError) Error() string {
	return fmt.Sprintf("parámetro inválido %q: %s", e.Name, e.Reason)
}

// Is permite errors.Is(err, ErrInvalidParameter).
func (e *InvalidParameterError) Is(target error) bool {
	return target == ErrInvalidParameter
}
