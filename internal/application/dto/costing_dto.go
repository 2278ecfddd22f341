package dto

import (
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/panaderia-pos/internal/domain/costing"
)

// ProductCostResponse costo calculado de un producto con desglose por ingrediente.
type ProductCostResponse struct {
	ProductID string                  `json:"product_id"`
	CostPrice decimal.Decimal         `json:"cost_price"`
	Breakdown []costing.ComponentCost `json:"breakdown"`
	NoRecipe  bool                    `json:"no_recipe"`
}

// RecalculatedProduct producto cuyo costo fue recalculado por un cambio de precio.
type RecalculatedProduct struct {
	ProductID string          `json:"product_id"`
	Name      string          `json:"name"`
	OldCost   decimal.Decimal `json:"old_cost"`
	NewCost   decimal.Decimal `json:"new_cost"`
}
