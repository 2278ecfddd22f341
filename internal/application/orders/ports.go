package orders

import (
	"context"
	"time"

	"github.com/tu-usuario/panaderia-pos/internal/application/dto"
	"github.com/tu-usuario/panaderia-pos/internal/domain/entity"
	"github.com/tu-usuario/panaderia-pos/internal/domain/repository"
	domstock "github.com/tu-usuario/panaderia-pos/internal/domain/stock"
)

// OrderTxRunner ejecuta un callback con todos los repositorios que participan
// en una mutación de orden atados a una misma transacción SQL.
type OrderTxRunner interface {
	RunOrder(ctx context.Context, fn func(
		orderRepo repository.OrderRepository,
		revisionRepo repository.OrderRevisionRepository,
		counterRepo repository.OrderCounterRepository,
		ingredientRepo repository.IngredientRepository,
		movementRepo repository.StockMovementRepository,
	) error) error
}

// StockService contrato del motor de stock que consume el servicio de órdenes.
// Implementado por stock.UseCase; las variantes *InTx operan con los
// repositorios de la transacción del caller.
type StockService interface {
	AggregateForLines(lines []domstock.Line) ([]domstock.Requirement, error)
	CheckOrderStock(ctx context.Context, lines []domstock.Line) (*dto.CheckStockResponse, error)
	DeductInTx(
		ingredientRepo repository.IngredientRepository,
		movementRepo repository.StockMovementRepository,
		orderID string,
		reqs []domstock.Requirement,
		notes string,
		now time.Time,
	) ([]*entity.StockMovement, error)
	ReturnInTx(
		ingredientRepo repository.IngredientRepository,
		movementRepo repository.StockMovementRepository,
		referenceType, referenceID string,
		reqs []domstock.Requirement,
		notes string,
		now time.Time,
	) ([]*entity.StockMovement, error)
}
