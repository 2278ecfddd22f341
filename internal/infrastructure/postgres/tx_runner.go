package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tu-usuario/panaderia-pos/internal/application/orders"
	"github.com/tu-usuario/panaderia-pos/internal/application/stock"
	"github.com/tu-usuario/panaderia-pos/internal/domain/repository"
)

var _ stock.TxRunner = (*TxRunner)(nil)
var _ orders.OrderTxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con repos atados a la tx y hace Commit o Rollback.
func (r *TxRunner) Run(ctx context.Context, fn func(
	ingredientRepo repository.IngredientRepository,
	movementRepo repository.StockMovementRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	ingredientRepo := NewIngredientRepository(tx)
	movementRepo := NewStockMovementRepository(tx)

	if err := fn(ingredientRepo, movementRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunOrder inicia una transacción con todos los repos que participan en una
// mutación de orden (creación, edición, cancelación, transición de estado).
func (r *TxRunner) RunOrder(ctx context.Context, fn func(
	orderRepo repository.OrderRepository,
	revisionRepo repository.OrderRevisionRepository,
	counterRepo repository.OrderCounterRepository,
	ingredientRepo repository.IngredientRepository,
	movementRepo repository.StockMovementRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	orderRepo := NewOrderRepository(tx)
	revisionRepo := NewOrderRevisionRepository(tx)
	counterRepo := NewOrderCounterRepository(tx)
	ingredientRepo := NewIngredientRepository(tx)
	movementRepo := NewStockMovementRepository(tx)

	if err := fn(orderRepo, revisionRepo, counterRepo, ingredientRepo, movementRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
