package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/tu-usuario/panaderia-pos/internal/domain/entity"
	"github.com/tu-usuario/panaderia-pos/internal/domain/repository"
)

var _ repository.OrderRevisionRepository = (*OrderRevisionRepo)(nil)

// OrderRevisionRepo historial inmutable de revisiones de orden sobre PostgreSQL.
// Append-only: solo INSERT y SELECT.
type OrderRevisionRepo struct {
	q Querier
}

// NewOrderRevisionRepository construye el adaptador. Pasar pool o tx (Querier).
func NewOrderRevisionRepository(q Querier) *OrderRevisionRepo {
	return &OrderRevisionRepo{q: q}
}

// Create asienta una revisión.
func (r *OrderRevisionRepo) Create(rev *entity.OrderRevision) error {
	if rev.ID == "" {
		rev.ID = uuid.New().String()
	}
	query := `
		INSERT INTO order_revisions (id, order_id, revision_type, old_value, new_value, actor_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	actorID := (*string)(nil)
	if rev.ActorID != "" {
		actorID = &rev.ActorID
	}
	_, err := r.q.Exec(context.Background(), query,
		rev.ID, rev.OrderID, rev.Type, rev.OldValue, rev.NewValue, actorID, rev.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("create order revision: %w", err)
	}
	return nil
}

// ListByOrder revisiones de una orden en orden cronológico.
func (r *OrderRevisionRepo) ListByOrder(orderID string) ([]*entity.OrderRevision, error) {
	query := `
		SELECT id, order_id, revision_type, old_value, new_value, actor_id, created_at
		FROM order_revisions WHERE order_id = $1 ORDER BY created_at`
	rows, err := r.q.Query(context.Background(), query, orderID)
	if err != nil {
		return nil, fmt.Errorf("list order revisions: %w", err)
	}
	defer rows.Close()
	var list []*entity.OrderRevision
	for rows.Next() {
		var rev entity.OrderRevision
		var actorID *string
		if err := rows.Scan(&rev.ID, &rev.OrderID, &rev.Type,
			&rev.OldValue, &rev.NewValue, &actorID, &rev.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan order revision: %w", err)
		}
		if actorID != nil {
			rev.ActorID = *actorID
		}
		list = append(list, &rev)
	}
	return list, rows.Err()
}
