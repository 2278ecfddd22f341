package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateIngredientRequest alta de ingrediente.
type CreateIngredientRequest struct {
	Name              string          `json:"name"`
	Unit              string          `json:"unit"`
	StockQuantity     decimal.Decimal `json:"stock_quantity"`
	MinStockThreshold decimal.Decimal `json:"min_stock_threshold"`
	UnitPrice         decimal.Decimal `json:"unit_price"`
}

// UpdateIngredientRequest edición de ingrediente. Campos nil = sin cambio.
// StockQuantity no se edita por aquí: el stock solo se mueve vía ajustes.
type UpdateIngredientRequest struct {
	Name              *string          `json:"name"`
	Unit              *string          `json:"unit"`
	MinStockThreshold *decimal.Decimal `json:"min_stock_threshold"`
	UnitPrice         *decimal.Decimal `json:"unit_price"`
}

// IngredientResponse representación pública de un ingrediente.
type IngredientResponse struct {
	ID                string          `json:"id"`
	Name              string          `json:"name"`
	Unit              string          `json:"unit"`
	StockQuantity     decimal.Decimal `json:"stock_quantity"`
	MinStockThreshold decimal.Decimal `json:"min_stock_threshold"`
	UnitPrice         decimal.Decimal `json:"unit_price"`
	LowStock          bool            `json:"low_stock"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}

// LowStockItem ingrediente bajo umbral con sugerencia de reposición.
type LowStockItem struct {
	Ingredient IngredientResponse `json:"ingredient"`
	// SuggestedTopUp cantidad sugerida para volver al umbral.
	SuggestedTopUp decimal.Decimal `json:"suggested_top_up"`
}

// CreateProductRequest alta de producto. CostPrice no se recibe: es derivado.
type CreateProductRequest struct {
	Name         string          `json:"name"`
	Description  string          `json:"description"`
	SellingPrice decimal.Decimal `json:"selling_price"`
	IsAvailable  *bool           `json:"is_available"`
}

// UpdateProductRequest edición de producto. Campos nil = sin cambio.
type UpdateProductRequest struct {
	Name         *string          `json:"name"`
	Description  *string          `json:"description"`
	SellingPrice *decimal.Decimal `json:"selling_price"`
	IsAvailable  *bool            `json:"is_available"`
}

// ProductResponse representación pública de un producto.
type ProductResponse struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Description  string          `json:"description"`
	SellingPrice decimal.Decimal `json:"selling_price"`
	CostPrice    decimal.Decimal `json:"cost_price"`
	IsAvailable  bool            `json:"is_available"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// RecipeEntryInput una entrada de receta (ingrediente y cantidad por unidad).
type RecipeEntryInput struct {
	IngredientID   string          `json:"ingredient_id"`
	QuantityNeeded decimal.Decimal `json:"quantity_needed"`
}

// SetRecipeRequest reemplaza la receta completa de un producto.
type SetRecipeRequest struct {
	Items []RecipeEntryInput `json:"items"`
}

// RecipeEntryResponse entrada de receta con datos del ingrediente.
type RecipeEntryResponse struct {
	IngredientID   string          `json:"ingredient_id"`
	IngredientName string          `json:"ingredient_name"`
	Unit           string          `json:"unit"`
	QuantityNeeded decimal.Decimal `json:"quantity_needed"`
}
