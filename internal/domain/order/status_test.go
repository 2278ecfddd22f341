package order_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/panaderia-pos/internal/domain"
	"github.com/tu-usuario/panaderia-pos/internal/domain/entity"
	"github.com/tu-usuario/panaderia-pos/internal/domain/order"
)

// ──────────────────────────────────────────────────────────────────────────────
// Tabla de transiciones del ciclo de vida de una orden:
//
//	pending    → processing | cancelled
//	processing → completed  | cancelled
//	completed  → (terminal)
//	cancelled  → (terminal)
//
// Cualquier arista fuera de la tabla debe rechazarse con InvalidTransitionError.
// ──────────────────────────────────────────────────────────────────────────────

func TestValidateTransition_AristasLegales(t *testing.T) {
	legales := []struct{ from, to string }{
		{entity.OrderStatusPending, entity.OrderStatusProcessing},
		{entity.OrderStatusPending, entity.OrderStatusCancelled},
		{entity.OrderStatusProcessing, entity.OrderStatusCompleted},
		{entity.OrderStatusProcessing, entity.OrderStatusCancelled},
	}
	for _, c := range legales {
		assert.NoError(t, order.ValidateTransition(c.from, c.to),
			"la transición %s → %s debe ser legal", c.from, c.to)
	}
}

func TestValidateTransition_EstadosTerminalesSinSalidas(t *testing.T) {
	destinos := []string{
		entity.OrderStatusPending,
		entity.OrderStatusProcessing,
		entity.OrderStatusCompleted,
		entity.OrderStatusCancelled,
	}
	for _, terminal := range []string{entity.OrderStatusCompleted, entity.OrderStatusCancelled} {
		for _, to := range destinos {
			err := order.ValidateTransition(terminal, to)
			assert.Error(t, err, "desde %s no debe existir transición a %s", terminal, to)
		}
	}
}

func TestValidateTransition_SaltoPendingACompleted(t *testing.T) {
	err := order.ValidateTransition(entity.OrderStatusPending, entity.OrderStatusCompleted)
	require.Error(t, err, "pending → completed salta processing y debe rechazarse")

	var invalidErr *domain.InvalidTransitionError
	require.True(t, errors.As(err, &invalidErr), "el error debe ser InvalidTransitionError")
	assert.Equal(t, entity.OrderStatusPending, invalidErr.From)
	assert.Equal(t, entity.OrderStatusCompleted, invalidErr.To)
}

func TestValidateTransition_EstadoDesconocido(t *testing.T) {
	assert.Error(t, order.ValidateTransition("shipped", entity.OrderStatusCompleted),
		"un estado origen fuera de la tabla debe rechazarse")
	assert.Error(t, order.ValidateTransition(entity.OrderStatusPending, "archived"),
		"un estado destino fuera de la tabla debe rechazarse")
}

func TestIsValidStatus(t *testing.T) {
	for _, s := range []string{"pending", "processing", "completed", "cancelled"} {
		assert.True(t, order.IsValidStatus(s), "%s es un estado válido", s)
	}
	assert.False(t, order.IsValidStatus("draft"))
	assert.False(t, order.IsValidStatus(""))
}
