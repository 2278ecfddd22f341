package repository

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/panaderia-pos/internal/domain/entity"
)

// StockMovementRepository puerto del libro de movimientos (append-only).
// No existen operaciones de actualización ni borrado: los asientos son inmutables.
type StockMovementRepository interface {
	Create(movement *entity.StockMovement) error
	ListByIngredient(ingredientID string, from, to *time.Time, limit, offset int) ([]*entity.StockMovement, error)
	ListByReference(referenceType, referenceID string) ([]*entity.StockMovement, error)
	// ExistsByReference guarda de idempotencia: ¿ya se aplicó esta referencia?
	ExistsByReference(referenceType, referenceID string) (bool, error)
	// SumByIngredient suma de cantidades con signo (verificación de conservación).
	SumByIngredient(ingredientID string) (decimal.Decimal, error)
}
