package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/panaderia-pos/internal/domain"
	"github.com/tu-usuario/panaderia-pos/internal/domain/entity"
	"github.com/tu-usuario/panaderia-pos/internal/domain/repository"
)

var _ repository.IngredientRepository = (*IngredientRepo)(nil)

const ingredientColumns = "id, name, unit, stock_quantity, min_stock_threshold, unit_price, created_at, updated_at"

// IngredientRepo implementación del puerto IngredientRepository sobre PostgreSQL (usable con pool o tx).
type IngredientRepo struct {
	q Querier
}

// NewIngredientRepository construye el adaptador. Pasar pool o tx (Querier).
func NewIngredientRepository(q Querier) *IngredientRepo {
	return &IngredientRepo{q: q}
}

// Create persiste un nuevo ingrediente.
func (r *IngredientRepo) Create(ing *entity.Ingredient) error {
	query := `
		INSERT INTO ingredients (id, name, unit, stock_quantity, min_stock_threshold, unit_price, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		ing.ID, ing.Name, ing.Unit, ing.StockQuantity, ing.MinStockThreshold,
		ing.UnitPrice, ing.CreatedAt, ing.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert ingredient: %w", err)
	}
	return nil
}

// GetByID obtiene un ingrediente por ID.
func (r *IngredientRepo) GetByID(id string) (*entity.Ingredient, error) {
	query := `SELECT ` + ingredientColumns + ` FROM ingredients WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id), "get ingredient")
}

// GetByIDForUpdate obtiene el ingrediente y bloquea la fila (SELECT FOR UPDATE).
func (r *IngredientRepo) GetByIDForUpdate(id string) (*entity.Ingredient, error) {
	query := `SELECT ` + ingredientColumns + ` FROM ingredients WHERE id = $1 FOR UPDATE`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id), "get ingredient for update")
}

// GetByName obtiene un ingrediente por nombre (único).
func (r *IngredientRepo) GetByName(name string) (*entity.Ingredient, error) {
	query := `SELECT ` + ingredientColumns + ` FROM ingredients WHERE name = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, name), "get ingredient by name")
}

// GetByIDs obtiene varios ingredientes en una sola consulta.
func (r *IngredientRepo) GetByIDs(ids []string) (map[string]*entity.Ingredient, error) {
	result := make(map[string]*entity.Ingredient, len(ids))
	if len(ids) == 0 {
		return result, nil
	}
	query := `SELECT ` + ingredientColumns + ` FROM ingredients WHERE id = ANY($1)`
	rows, err := r.q.Query(context.Background(), query, ids)
	if err != nil {
		return nil, fmt.Errorf("get ingredients: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		ing, err := scanIngredient(rows)
		if err != nil {
			return nil, err
		}
		result[ing.ID] = ing
	}
	return result, rows.Err()
}

// Update actualiza nombre, unidad, umbral y precio (no el stock).
func (r *IngredientRepo) Update(ing *entity.Ingredient) error {
	query := `
		UPDATE ingredients
		SET name = $2, unit = $3, min_stock_threshold = $4, unit_price = $5, updated_at = $6
		WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query,
		ing.ID, ing.Name, ing.Unit, ing.MinStockThreshold, ing.UnitPrice, ing.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update ingredient: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// UpdateStock escribe la nueva cantidad en stock. El CHECK (stock_quantity >= 0)
// de la tabla es la última línea de defensa del invariante.
func (r *IngredientRepo) UpdateStock(id string, quantity decimal.Decimal) error {
	query := `UPDATE ingredients SET stock_quantity = $2, updated_at = now() WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query, id, quantity)
	if err != nil {
		return fmt.Errorf("update stock: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List lista ingredientes ordenados por nombre.
func (r *IngredientRepo) List(limit, offset int) ([]*entity.Ingredient, error) {
	query := `SELECT ` + ingredientColumns + ` FROM ingredients ORDER BY name LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list ingredients: %w", err)
	}
	defer rows.Close()
	return collectIngredients(rows)
}

// ListLowStock ingredientes con stock en o por debajo de su umbral.
func (r *IngredientRepo) ListLowStock() ([]*entity.Ingredient, error) {
	query := `SELECT ` + ingredientColumns + ` FROM ingredients WHERE stock_quantity <= min_stock_threshold ORDER BY name`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list low stock: %w", err)
	}
	defer rows.Close()
	return collectIngredients(rows)
}

// Delete borra un ingrediente. FK RESTRICT desde recipes → ErrConflict.
func (r *IngredientRepo) Delete(id string) error {
	tag, err := r.q.Exec(context.Background(), `DELETE FROM ingredients WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("delete ingredient: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *IngredientRepo) scanOne(row pgx.Row, op string) (*entity.Ingredient, error) {
	var ing entity.Ingredient
	err := row.Scan(&ing.ID, &ing.Name, &ing.Unit, &ing.StockQuantity,
		&ing.MinStockThreshold, &ing.UnitPrice, &ing.CreatedAt, &ing.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &ing, nil
}

func scanIngredient(rows pgx.Rows) (*entity.Ingredient, error) {
	var ing entity.Ingredient
	if err := rows.Scan(&ing.ID, &ing.Name, &ing.Unit, &ing.StockQuantity,
		&ing.MinStockThreshold, &ing.UnitPrice, &ing.CreatedAt, &ing.UpdatedAt); err != nil {
		return nil, fmt.Errorf("scan ingredient: %w", err)
	}
	return &ing, nil
}

func collectIngredients(rows pgx.Rows) ([]*entity.Ingredient, error) {
	var list []*entity.Ingredient
	for rows.Next() {
		ing, err := scanIngredient(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, ing)
	}
	return list, rows.Err()
}
