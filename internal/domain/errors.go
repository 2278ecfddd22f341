package domain

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
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
	ErrConflict           = errors.New("conflicto con referencias existentes")
	ErrInsufficientStock  = errors.New("stock insuficiente")
	ErrOrderTerminal      = errors.New("la orden está en estado terminal")
	ErrProductUnavailable = errors.New("producto no disponible")
)

// Shortage describe el faltante de un ingrediente para cumplir una orden.
type Shortage struct {
	IngredientID   string          `json:"ingredient_id"`
	IngredientName string          `json:"ingredient_name"`
	Unit           string          `json:"unit"`
	Required       decimal.Decimal `json:"required"`
	Available      decimal.Decimal `json:"available"`
	Shortage       decimal.Decimal `json:"shortage"`
}

// InsufficientStockError error tipado con el detalle de faltantes por ingrediente,
// para que el caller pueda mostrar un mensaje accionable (qué falta y cuánto).
type InsufficientStockError struct {
	Shortages []Shortage
}

func (e *InsufficientStockError) Error() string {
	if len(e.Shortages) == 1 {
		s := e.Shortages[0]
		return fmt.Sprintf("stock insuficiente: %s (falta %s %s)", s.IngredientName, s.Shortage.String(), s.Unit)
	}
	return fmt.Sprintf("stock insuficiente en %d ingredientes", len(e.Shortages))
}

// Is permite errors.Is(err, ErrInsufficientStock).
func (e *InsufficientStockError) Is(target error) bool {
	return target == ErrInsufficientStock
}

// InvalidTransitionError transición de estado de orden fuera de la tabla permitida.
type InvalidTransitionError struct {
	From string
	To   string
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("transición de estado inválida: %s -> %s", e.From, e.To)
}
