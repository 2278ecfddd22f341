package entity

import (
	"encoding/json"
	"time"
)

// Tipos de revisión de orden (auditoría de mutaciones).
const (
	RevisionAddItem        = "add_item"
	RevisionRemoveItem     = "remove_item"
	RevisionUpdateQuantity = "update_quantity"
	RevisionCancelOrder    = "cancel_order"
	RevisionUpdateStatus   = "update_status"
)

// OrderRevision registro inmutable de una mutación aplicada a una orden.
// OldValue/NewValue son snapshots estructurados (JSON); nunca se actualiza ni borra.
type OrderRevision struct {
	ID        string
	OrderID   string
	Type      string
	OldValue  json.RawMessage
	NewValue  json.RawMessage
	ActorID   string
	CreatedAt time.Time
}
