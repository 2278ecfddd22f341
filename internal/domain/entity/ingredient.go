package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Ingredient representa una materia prima del inventario.
// StockQuantity solo se muta vía los casos de uso de stock (ajustes, deducción, devolución);
// toda modificación deja un asiento en stock_movements.
type Ingredient struct {
	ID                string
	Name              string // único
	Unit              string // kg, gram, liter, pcs...
	StockQuantity     decimal.Decimal // nunca negativo
	MinStockThreshold decimal.Decimal
	UnitPrice         decimal.Decimal // precio por unidad de medida
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// IsLowStock indica si el stock está en o por debajo del umbral de reposición.
func (i *Ingredient) IsLowStock() bool {
	return i.StockQuantity.LessThanOrEqual(i.MinStockThreshold)
}
