// Package costing implementa el cálculo de costo de producto a partir de su
// receta (servicio de dominio puro).
package costing

import (
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/panaderia-pos/internal/domain/entity"
)

// ComponentCost detalle de costo por ingrediente de la receta.
type ComponentCost struct {
	IngredientID   string          `json:"ingredient_id"`
	IngredientName string          `json:"ingredient_name"`
	Quantity       decimal.Decimal `json:"quantity"`
	UnitPrice      decimal.Decimal `json:"unit_price"`
	Subtotal       decimal.Decimal `json:"subtotal"`
}

// ProductCost resultado del cálculo: costo total redondeado a 2 decimales
// y desglose por componente. NoRecipe marca productos sin receta (costo 0).
type ProductCost struct {
	CostPrice decimal.Decimal `json:"cost_price"`
	Breakdown []ComponentCost `json:"breakdown"`
	NoRecipe  bool            `json:"no_recipe"`
}

// Calculate costo = Σ(receta.cantidad × ingrediente.precioUnitario),
// redondeo half-up a 2 decimales aplicado una sola vez sobre la suma.
func Calculate(recipe []entity.RecipeItem, ingredients map[string]*entity.Ingredient) ProductCost {
	if len(recipe) == 0 {
		return ProductCost{CostPrice: decimal.Zero, NoRecipe: true}
	}
	total := decimal.Zero
	breakdown := make([]ComponentCost, 0, len(recipe))
	for _, item := range recipe {
		ing, ok := ingredients[item.IngredientID]
		if !ok {
			continue
		}
		subtotal := item.QuantityNeeded.Mul(ing.UnitPrice)
		total = total.Add(subtotal)
		breakdown = append(breakdown, ComponentCost{
			IngredientID:   ing.ID,
			IngredientName: ing.Name,
			Quantity:       item.QuantityNeeded,
			UnitPrice:      ing.UnitPrice,
			Subtotal:       subtotal,
		})
	}
	return ProductCost{CostPrice: total.Round(2), Breakdown: breakdown}
}
