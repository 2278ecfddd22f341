package repository

import (
	"time"

	"github.com/tu-usuario/panaderia-pos/internal/domain/entity"
)

// OrderRepository puerto de persistencia para órdenes y sus líneas.
type OrderRepository interface {
	Create(order *entity.Order) error
	GetByID(id string) (*entity.Order, error)
	// GetByIDForUpdate bloquea la fila de la orden (SELECT FOR UPDATE) para
	// serializar cancelaciones/ediciones concurrentes de la misma orden.
	GetByIDForUpdate(id string) (*entity.Order, error)
	Update(order *entity.Order) error
	// ReplaceItems reemplaza las líneas de una orden (ediciones).
	ReplaceItems(orderID string, items []entity.OrderItem) error
	List(status string, limit, offset int) ([]*entity.Order, error)
}

// OrderRevisionRepository puerto para el historial inmutable de revisiones.
type OrderRevisionRepository interface {
	Create(revision *entity.OrderRevision) error
	ListByOrder(orderID string) ([]*entity.OrderRevision, error)
}

// OrderCounterRepository secuencia atómica por día para números de orden.
// Next debe ser correcto ante procesos concurrentes (incremento en la DB).
type OrderCounterRepository interface {
	Next(date time.Time) (int, error)
}
