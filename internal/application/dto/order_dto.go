package dto

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// CreateOrderRequest creación de orden.
type CreateOrderRequest struct {
	CustomerID string           `json:"customer_id"`
	Lines      []OrderLineInput `json:"lines"`
	Notes      string           `json:"notes"`
}

// UpdateOrderRequest edición de orden. Campos nil = sin cambio.
type UpdateOrderRequest struct {
	Lines *[]OrderLineInput `json:"lines"`
	Notes *string           `json:"notes"`
}

// UpdateOrderStatusRequest transición de estado.
type UpdateOrderStatusRequest struct {
	Status string `json:"status"`
}

// CancelOrderRequest cancelación con motivo opcional.
type CancelOrderRequest struct {
	Reason string `json:"reason"`
}

// OrderItemRequest alta/baja de una línea puntual.
type OrderItemRequest struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

// OrderLineResponse línea de orden con precio congelado.
type OrderLineResponse struct {
	ID        string          `json:"id"`
	ProductID string          `json:"product_id"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}

// OrderResponse representación pública de una orden.
type OrderResponse struct {
	ID          string              `json:"id"`
	OrderNumber string              `json:"order_number"`
	CustomerID  string              `json:"customer_id"`
	TotalAmount decimal.Decimal     `json:"total_amount"`
	Status      string              `json:"status"`
	Notes       string              `json:"notes,omitempty"`
	Items       []OrderLineResponse `json:"items"`
	CreatedAt   time.Time           `json:"created_at"`
	UpdatedAt   time.Time           `json:"updated_at"`
}

// OrderRevisionResponse revisión de auditoría de una orden.
type OrderRevisionResponse struct {
	ID        string          `json:"id"`
	OrderID   string          `json:"order_id"`
	Type      string          `json:"type"`
	OldValue  json.RawMessage `json:"old_value,omitempty"`
	NewValue  json.RawMessage `json:"new_value,omitempty"`
	ActorID   string          `json:"actor_id"`
	CreatedAt time.Time       `json:"created_at"`
}
