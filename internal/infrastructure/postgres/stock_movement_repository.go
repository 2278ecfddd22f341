package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/panaderia-pos/internal/domain/entity"
	"github.com/tu-usuario/panaderia-pos/internal/domain/repository"
)

var _ repository.StockMovementRepository = (*StockMovementRepo)(nil)

// StockMovementRepo libro de movimientos sobre PostgreSQL (usable con pool o tx).
// Append-only: solo INSERT y SELECT, nunca UPDATE ni DELETE.
type StockMovementRepo struct {
	q Querier
}

// NewStockMovementRepository construye el adaptador. Pasar pool o tx (Querier).
func NewStockMovementRepository(q Querier) *StockMovementRepo {
	return &StockMovementRepo{q: q}
}

// Create asienta un movimiento.
func (r *StockMovementRepo) Create(m *entity.StockMovement) error {
	if m.ID == "" {
		m.ID = uuid.New().String()
	}
	query := `
		INSERT INTO stock_movements (id, ingredient_id, quantity, movement_type, reference_type, reference_id, notes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	referenceID := (*string)(nil)
	if m.ReferenceID != "" {
		referenceID = &m.ReferenceID
	}
	_, err := r.q.Exec(context.Background(), query,
		m.ID, m.IngredientID, m.Quantity, m.Type, m.ReferenceType, referenceID, m.Notes, m.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("create stock movement: %w", err)
	}
	return nil
}

// ListByIngredient historial de un ingrediente en un rango de fechas,
// ordenado por fecha de asiento descendente.
func (r *StockMovementRepo) ListByIngredient(ingredientID string, from, to *time.Time, limit, offset int) ([]*entity.StockMovement, error) {
	query := `
		SELECT id, ingredient_id, quantity, movement_type, reference_type, reference_id, notes, created_at
		FROM stock_movements WHERE ingredient_id = $1`
	args := []any{ingredientID}
	pos := 2
	if from != nil {
		query += fmt.Sprintf(" AND created_at >= $%d", pos)
		args = append(args, *from)
		pos++
	}
	if to != nil {
		query += fmt.Sprintf(" AND created_at <= $%d", pos)
		args = append(args, *to)
		pos++
	}
	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d", pos, pos+1)
	args = append(args, limit, offset)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list movements: %w", err)
	}
	defer rows.Close()
	return collectMovements(rows)
}

// ListByReference movimientos originados por una referencia (ej. una orden).
func (r *StockMovementRepo) ListByReference(referenceType, referenceID string) ([]*entity.StockMovement, error) {
	query := `
		SELECT id, ingredient_id, quantity, movement_type, reference_type, reference_id, notes, created_at
		FROM stock_movements WHERE reference_type = $1 AND reference_id = $2
		ORDER BY created_at`
	rows, err := r.q.Query(context.Background(), query, referenceType, referenceID)
	if err != nil {
		return nil, fmt.Errorf("list movements by reference: %w", err)
	}
	defer rows.Close()
	return collectMovements(rows)
}

// ExistsByReference guarda de idempotencia: ¿ya hay asientos de esta referencia?
func (r *StockMovementRepo) ExistsByReference(referenceType, referenceID string) (bool, error) {
	var exists bool
	err := r.q.QueryRow(context.Background(),
		`SELECT EXISTS(SELECT 1 FROM stock_movements WHERE reference_type = $1 AND reference_id = $2)`,
		referenceType, referenceID,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("exists by reference: %w", err)
	}
	return exists, nil
}

// SumByIngredient suma de cantidades con signo (verificación de conservación).
func (r *StockMovementRepo) SumByIngredient(ingredientID string) (decimal.Decimal, error) {
	var sum decimal.Decimal
	err := r.q.QueryRow(context.Background(),
		`SELECT COALESCE(SUM(quantity), 0) FROM stock_movements WHERE ingredient_id = $1`,
		ingredientID,
	).Scan(&sum)
	if err != nil {
		return decimal.Zero, fmt.Errorf("sum movements: %w", err)
	}
	return sum, nil
}

func collectMovements(rows pgx.Rows) ([]*entity.StockMovement, error) {
	var list []*entity.StockMovement
	for rows.Next() {
		var m entity.StockMovement
		var referenceID *string
		if err := rows.Scan(&m.ID, &m.IngredientID, &m.Quantity, &m.Type,
			&m.ReferenceType, &referenceID, &m.Notes, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan movement: %w", err)
		}
		if referenceID != nil {
			m.ReferenceID = *referenceID
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}
