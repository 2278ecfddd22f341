package repository

import (
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/panaderia-pos/internal/domain/entity"
)

// IngredientRepository puerto de persistencia para ingredientes (DIP).
// UpdateStock solo debe invocarse desde casos de uso transaccionales de stock.
type IngredientRepository interface {
	Create(ingredient *entity.Ingredient) error
	GetByID(id string) (*entity.Ingredient, error)
	GetByIDs(ids []string) (map[string]*entity.Ingredient, error)
	// GetByIDForUpdate bloquea la fila (SELECT FOR UPDATE) dentro de una transacción.
	GetByIDForUpdate(id string) (*entity.Ingredient, error)
	GetByName(name string) (*entity.Ingredient, error)
	Update(ingredient *entity.Ingredient) error
	UpdateStock(id string, quantity decimal.Decimal) error
	List(limit, offset int) ([]*entity.Ingredient, error)
	// ListLowStock ingredientes con stock en o por debajo de su umbral.
	ListLowStock() ([]*entity.Ingredient, error)
	Delete(id string) error
}
