package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto vendible del catálogo.
// CostPrice es derivado: lo calcula y persiste el caso de uso de costeo
// a partir de la receta; nunca se edita directamente.
type Product struct {
	ID           string
	Name         string // único
	Description  string
	SellingPrice decimal.Decimal
	CostPrice    decimal.Decimal // Σ(receta.cantidad × ingrediente.precio), 2 decimales
	IsAvailable  bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
