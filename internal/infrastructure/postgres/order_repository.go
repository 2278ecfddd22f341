package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/panaderia-pos/internal/domain"
	"github.com/tu-usuario/panaderia-pos/internal/domain/entity"
	"github.com/tu-usuario/panaderia-pos/internal/domain/repository"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

const orderColumns = "id, order_number, customer_id, total_amount, status, notes, created_at, updated_at"

// OrderRepo implementación del puerto OrderRepository sobre PostgreSQL (usable con pool o tx).
type OrderRepo struct {
	q Querier
}

// NewOrderRepository construye el adaptador. Pasar pool o tx (Querier).
func NewOrderRepository(q Querier) *OrderRepo {
	return &OrderRepo{q: q}
}

// Create persiste la orden y sus líneas.
func (r *OrderRepo) Create(order *entity.Order) error {
	ctx := context.Background()
	query := `
		INSERT INTO orders (id, order_number, customer_id, total_amount, status, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(ctx, query,
		order.ID, order.OrderNumber, order.CustomerID, order.TotalAmount,
		order.Status, order.Notes, order.CreatedAt, order.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert order: %w", err)
	}
	return r.insertItems(ctx, order.ID, order.Items)
}

// GetByID obtiene una orden con sus líneas.
func (r *OrderRepo) GetByID(id string) (*entity.Order, error) {
	return r.getByID(id, false)
}

// GetByIDForUpdate obtiene la orden bloqueando la fila (SELECT FOR UPDATE).
// Serializa cancelaciones y ediciones concurrentes de la misma orden.
func (r *OrderRepo) GetByIDForUpdate(id string) (*entity.Order, error) {
	return r.getByID(id, true)
}

func (r *OrderRepo) getByID(id string, forUpdate bool) (*entity.Order, error) {
	ctx := context.Background()
	query := `SELECT ` + orderColumns + ` FROM orders WHERE id = $1`
	if forUpdate {
		query += ` FOR UPDATE`
	}
	var o entity.Order
	err := r.q.QueryRow(ctx, query, id).Scan(&o.ID, &o.OrderNumber, &o.CustomerID,
		&o.TotalAmount, &o.Status, &o.Notes, &o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get order: %w", err)
	}
	items, err := r.loadItems(ctx, o.ID)
	if err != nil {
		return nil, err
	}
	o.Items = items
	return &o, nil
}

// Update actualiza cabecera de la orden (estado, notas, total).
func (r *OrderRepo) Update(order *entity.Order) error {
	query := `
		UPDATE orders
		SET total_amount = $2, status = $3, notes = $4, updated_at = $5
		WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query,
		order.ID, order.TotalAmount, order.Status, order.Notes, order.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update order: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ReplaceItems reemplaza las líneas de una orden (delete + insert).
func (r *OrderRepo) ReplaceItems(orderID string, items []entity.OrderItem) error {
	ctx := context.Background()
	if _, err := r.q.Exec(ctx, `DELETE FROM order_lines WHERE order_id = $1`, orderID); err != nil {
		return fmt.Errorf("clear order lines: %w", err)
	}
	return r.insertItems(ctx, orderID, items)
}

// List lista órdenes más recientes primero; status vacío trae todas.
func (r *OrderRepo) List(status string, limit, offset int) ([]*entity.Order, error) {
	ctx := context.Background()
	query := `SELECT ` + orderColumns + ` FROM orders`
	args := []any{}
	pos := 1
	if status != "" {
		query += fmt.Sprintf(" WHERE status = $%d", pos)
		args = append(args, status)
		pos++
	}
	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d", pos, pos+1)
	args = append(args, limit, offset)

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()

	var list []*entity.Order
	byID := make(map[string]*entity.Order)
	var ids []string
	for rows.Next() {
		var o entity.Order
		if err := rows.Scan(&o.ID, &o.OrderNumber, &o.CustomerID, &o.TotalAmount,
			&o.Status, &o.Notes, &o.CreatedAt, &o.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		list = append(list, &o)
		byID[o.ID] = &o
		ids = append(ids, o.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return list, nil
	}

	// Carga de líneas en una sola consulta para evitar N+1.
	lineRows, err := r.q.Query(ctx,
		`SELECT id, order_id, product_id, quantity, unit_price, subtotal
		 FROM order_lines WHERE order_id = ANY($1) ORDER BY order_id, product_id`, ids)
	if err != nil {
		return nil, fmt.Errorf("list order lines: %w", err)
	}
	defer lineRows.Close()
	for lineRows.Next() {
		var item entity.OrderItem
		if err := lineRows.Scan(&item.ID, &item.OrderID, &item.ProductID,
			&item.Quantity, &item.UnitPrice, &item.Subtotal); err != nil {
			return nil, fmt.Errorf("scan order line: %w", err)
		}
		if o, ok := byID[item.OrderID]; ok {
			o.Items = append(o.Items, item)
		}
	}
	return list, lineRows.Err()
}

func (r *OrderRepo) insertItems(ctx context.Context, orderID string, items []entity.OrderItem) error {
	query := `
		INSERT INTO order_lines (id, order_id, product_id, quantity, unit_price, subtotal)
		VALUES ($1, $2, $3, $4, $5, $6)`
	for _, item := range items {
		_, err := r.q.Exec(ctx, query,
			item.ID, orderID, item.ProductID, item.Quantity, item.UnitPrice, item.Subtotal)
		if err != nil {
			if isForeignKeyViolation(err) {
				return domain.ErrNotFound
			}
			return fmt.Errorf("insert order line: %w", err)
		}
	}
	return nil
}

func (r *OrderRepo) loadItems(ctx context.Context, orderID string) ([]entity.OrderItem, error) {
	rows, err := r.q.Query(ctx,
		`SELECT id, order_id, product_id, quantity, unit_price, subtotal
		 FROM order_lines WHERE order_id = $1 ORDER BY product_id`, orderID)
	if err != nil {
		return nil, fmt.Errorf("load order lines: %w", err)
	}
	defer rows.Close()
	var items []entity.OrderItem
	for rows.Next() {
		var item entity.OrderItem
		if err := rows.Scan(&item.ID, &item.OrderID, &item.ProductID,
			&item.Quantity, &item.UnitPrice, &item.Subtotal); err != nil {
			return nil, fmt.Errorf("scan order line: %w", err)
		}
		items = append(items, item)
	}
	return items, rows.Err()
}
