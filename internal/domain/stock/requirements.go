// Package stock contiene la lógica pura de suficiencia de inventario:
// expansión de líneas de orden vía recetas, agregación de requerimientos
// por ingrediente y cálculo de faltantes. Sin I/O ni mutaciones.
package stock

import (
	"sort"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/panaderia-pos/internal/domain"
	"github.com/tu-usuario/panaderia-pos/internal/domain/entity"
)

// UnlimitedQuantity sentinela para productos sin receta (capacidad sin límite).
const UnlimitedQuantity = -1

// Line línea de orden a evaluar: producto y cantidad solicitada.
type Line struct {
	ProductID string
	Quantity  int
}

// Requirement requerimiento agregado de un ingrediente a través de todas las líneas.
type Requirement struct {
	IngredientID string
	Quantity     decimal.Decimal
}

// AggregateRequirements expande cada línea por su receta y suma el requerimiento
// por ingrediente. Un producto sin receta no restringe stock y se omite.
// El resultado viene ordenado por IngredientID para que los bloqueos de fila
// se tomen siempre en el mismo orden (evita deadlocks).
func AggregateRequirements(lines []Line, recipes map[string][]entity.RecipeItem) []Requirement {
	totals := make(map[string]decimal.Decimal)
	for _, line := range lines {
		if line.Quantity <= 0 {
			continue
		}
		qty := decimal.NewFromInt(int64(line.Quantity))
		for _, item := range recipes[line.ProductID] {
			totals[item.IngredientID] = totals[item.IngredientID].Add(item.QuantityNeeded.Mul(qty))
		}
	}
	reqs := make([]Requirement, 0, len(totals))
	for id, qty := range totals {
		reqs = append(reqs, Requirement{IngredientID: id, Quantity: qty})
	}
	sort.Slice(reqs, func(i, j int) bool { return reqs[i].IngredientID < reqs[j].IngredientID })
	return reqs
}

// ComputeShortages compara los requerimientos agregados contra el stock actual
// y devuelve el faltante por ingrediente insuficiente (vacío si todo alcanza).
func ComputeShortages(reqs []Requirement, ingredients map[string]*entity.Ingredient) []domain.Shortage {
	var shortages []domain.Shortage
	for _, req := range reqs {
		ing, ok := ingredients[req.IngredientID]
		if !ok {
			// Ingrediente desaparecido entre lectura de receta y de stock: faltante total.
			shortages = append(shortages, domain.Shortage{
				IngredientID: req.IngredientID,
				Required:     req.Quantity,
				Available:    decimal.Zero,
				Shortage:     req.Quantity,
			})
			continue
		}
		if ing.StockQuantity.LessThan(req.Quantity) {
			shortages = append(shortages, domain.Shortage{
				IngredientID:   ing.ID,
				IngredientName: ing.Name,
				Unit:           ing.Unit,
				Required:       req.Quantity,
				Available:      ing.StockQuantity,
				Shortage:       req.Quantity.Sub(ing.StockQuantity),
			})
		}
	}
	return shortages
}

// MaxOrderable cantidad máxima producible de un producto con el stock actual:
// min(floor(stock / cantidadPorUnidad)) sobre los ingredientes de la receta.
// Receta vacía → UnlimitedQuantity y sin ingredientes limitantes.
func MaxOrderable(recipe []entity.RecipeItem, ingredients map[string]*entity.Ingredient) (int64, []string) {
	if len(recipe) == 0 {
		return UnlimitedQuantity, nil
	}
	max := int64(-1)
	var limiting []string
	for _, item := range recipe {
		if !item.QuantityNeeded.IsPositive() {
			continue
		}
		ing, ok := ingredients[item.IngredientID]
		available := decimal.Zero
		if ok {
			available = ing.StockQuantity
		}
		units := available.Div(item.QuantityNeeded).Floor().IntPart()
		switch {
		case max < 0 || units < max:
			max = units
			limiting = []string{item.IngredientID}
		case units == max:
			limiting = append(limiting, item.IngredientID)
		}
	}
	if max < 0 {
		return UnlimitedQuantity, nil
	}
	return max, limiting
}
