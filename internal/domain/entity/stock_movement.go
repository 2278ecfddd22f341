package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de movimiento de stock.
const (
	MovementTypeIn         = "in"
	MovementTypeOut        = "out"
	MovementTypeAdjustment = "adjustment"
)

// Tipos de referencia: qué originó el movimiento.
const (
	ReferenceOrder       = "order"        // consumo por orden
	ReferenceOrderCancel = "order_cancel" // reversión por cancelación
	ReferenceOrderEdit   = "order_edit"   // reversión por edición de líneas
	ReferencePurchase    = "purchase"     // compra de materia prima
	ReferenceManual      = "manual"       // corrección manual
)

// StockMovement asiento inmutable del libro de movimientos de stock.
// Quantity es con signo: positivo = entrada, negativo = salida.
// Invariante: la suma de Quantity por ingrediente desde su creación
// es igual a su stock actual menos el inicial.
type StockMovement struct {
	ID            string
	IngredientID  string
	Quantity      decimal.Decimal
	Type          string // in, out, adjustment
	ReferenceType string // order, order_cancel, order_edit, purchase, manual
	ReferenceID   string
	Notes         string
	CreatedAt     time.Time
}
