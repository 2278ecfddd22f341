package dto

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/panaderia-pos/internal/domain"
)

// OrderLineInput línea (producto, cantidad) para verificación o creación de orden.
type OrderLineInput struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

// CheckStockRequest verificación de suficiencia (lectura pura).
type CheckStockRequest struct {
	Lines []OrderLineInput `json:"lines"`
}

// RequirementDTO requerimiento agregado de un ingrediente.
type RequirementDTO struct {
	IngredientID   string          `json:"ingredient_id"`
	IngredientName string          `json:"ingredient_name"`
	Unit           string          `json:"unit"`
	Required       decimal.Decimal `json:"required"`
	Available      decimal.Decimal `json:"available"`
}

// CheckStockResponse resultado de la verificación de suficiencia.
type CheckStockResponse struct {
	CanFulfill   bool              `json:"can_fulfill"`
	Shortages    []domain.Shortage `json:"shortages"`
	Requirements []RequirementDTO  `json:"requirements"`
}

// AdjustStockRequest ajuste manual de stock (compra, corrección).
// El signo lo impone el tipo: in → positivo, out → negativo, adjustment → tal cual.
type AdjustStockRequest struct {
	Quantity      decimal.Decimal `json:"quantity"`
	Type          string          `json:"type"`           // in, out, adjustment
	ReferenceType string          `json:"reference_type"` // purchase, manual (default según tipo)
	Notes         string          `json:"notes"`
}

// StockMovementResponse asiento del libro de movimientos.
type StockMovementResponse struct {
	ID            string          `json:"id"`
	IngredientID  string          `json:"ingredient_id"`
	Quantity      decimal.Decimal `json:"quantity"`
	Type          string          `json:"type"`
	ReferenceType string          `json:"reference_type"`
	ReferenceID   string          `json:"reference_id,omitempty"`
	Notes         string          `json:"notes,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
}

// AdjustStockResponse resultado de un ajuste: ingrediente actualizado + asiento.
type AdjustStockResponse struct {
	Ingredient IngredientResponse    `json:"ingredient"`
	Movement   StockMovementResponse `json:"movement"`
}

// MaxOrderableResponse capacidad máxima producible de un producto.
// MaxQuantity -1 = sin límite (producto sin receta).
type MaxOrderableResponse struct {
	ProductID           string   `json:"product_id"`
	MaxQuantity         int64    `json:"max_quantity"`
	Unlimited           bool     `json:"unlimited"`
	LimitingIngredients []string `json:"limiting_ingredients,omitempty"`
}
