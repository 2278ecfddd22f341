package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// RecipeItem es la arista producto→ingrediente: cuánta materia prima
// consume producir una unidad del producto. Par (product, ingredient) único.
type RecipeItem struct {
	ID             string
	ProductID      string
	IngredientID   string
	QuantityNeeded decimal.Decimal // por unidad de producto, > 0
	CreatedAt      time.Time
}
