package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/tu-usuario/panaderia-pos/internal/domain/repository"
)

var _ repository.OrderCounterRepository = (*OrderCounterRepo)(nil)

// OrderCounterRepo secuencia atómica por día para números de orden.
type OrderCounterRepo struct {
	q Querier
}

// NewOrderCounterRepository construye el adaptador. Pasar pool o tx (Querier).
func NewOrderCounterRepository(q Querier) *OrderCounterRepo {
	return &OrderCounterRepo{q: q}
}

// Next incrementa y devuelve el contador del día. El upsert con RETURNING
// hace el incremento en la base de datos, correcto ante procesos concurrentes.
func (r *OrderCounterRepo) Next(date time.Time) (int, error) {
	day := date.Format("2006-01-02")
	var value int
	err := r.q.QueryRow(context.Background(), `
		INSERT INTO order_counters (day, value) VALUES ($1, 1)
		ON CONFLICT (day) DO UPDATE SET value = order_counters.value + 1
		RETURNING value`, day,
	).Scan(&value)
	if err != nil {
		return 0, fmt.Errorf("next order number: %w", err)
	}
	return value, nil
}
