package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados del ciclo de vida de una orden.
const (
	OrderStatusPending    = "pending"
	OrderStatusProcessing = "processing"
	OrderStatusCompleted  = "completed"
	OrderStatusCancelled  = "cancelled"
)

// Order orden de venta. TotalAmount se captura al crear la orden (suma de subtotales
// con precios congelados); cambios posteriores de precio de producto no la alteran.
type Order struct {
	ID          string
	OrderNumber string // legible, secuencial por día: ORD-YYYYMMDD-NNN
	CustomerID  string
	TotalAmount decimal.Decimal
	Status      string
	Notes       string
	Items       []OrderItem
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// IsTerminal indica si la orden ya no admite mutaciones (completed o cancelled).
func (o *Order) IsTerminal() bool {
	return o.Status == OrderStatusCompleted || o.Status == OrderStatusCancelled
}

// OrderItem línea de la orden. UnitPrice es el precio congelado al momento de
// agregar la línea; Subtotal = Quantity × UnitPrice.
type OrderItem struct {
	ID        string
	OrderID   string
	ProductID string
	Quantity  int
	UnitPrice decimal.Decimal
	Subtotal  decimal.Decimal
}
