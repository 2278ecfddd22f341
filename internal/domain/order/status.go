package order

import (
	"github.com/tu-usuario/panaderia-pos/internal/domain"
	"github.com/tu-usuario/panaderia-pos/internal/domain/entity"
)

// transitions tabla de transiciones legales del ciclo de vida de una orden.
// completed y cancelled son terminales (sin salidas).
var transitions = map[string][]string{
	entity.OrderStatusPending:    {entity.OrderStatusProcessing, entity.OrderStatusCancelled},
	entity.OrderStatusProcessing: {entity.OrderStatusCompleted, entity.OrderStatusCancelled},
	entity.OrderStatusCompleted:  {},
	entity.OrderStatusCancelled:  {},
}

// IsValidStatus indica si el estado existe en la tabla.
func IsValidStatus(status string) bool {
	_, ok := transitions[status]
	return ok
}

// ValidateTransition valida from→to contra la tabla. Cualquier arista fuera
// de la tabla retorna InvalidTransitionError y el estado no debe cambiar.
func ValidateTransition(from, to string) error {
	allowed, ok := transitions[from]
	if !ok || !IsValidStatus(to) {
		return &domain.InvalidTransitionError{From: from, To: to}
	}
	for _, s := range allowed {
		if s == to {
			return nil
		}
	}
	return &domain.InvalidTransitionError{From: from, To: to}
}
