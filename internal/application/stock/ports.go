package stock

import (
	"context"

	"github.com/tu-usuario/panaderia-pos/internal/domain/repository"
)

// TxRunner ejecuta un callback con repositorios atados a una misma transacción
// SQL (Commit si fn retorna nil, Rollback si retorna error).
type TxRunner interface {
	Run(ctx context.Context, fn func(
		ingredientRepo repository.IngredientRepository,
		movementRepo repository.StockMovementRepository,
	) error) error
}
