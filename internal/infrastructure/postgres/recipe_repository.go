package postgres

import (
	"context"
	"fmt"

	"github.com/tu-usuario/panaderia-pos/internal/domain"
	"github.com/tu-usuario/panaderia-pos/internal/domain/entity"
	"github.com/tu-usuario/panaderia-pos/internal/domain/repository"
)

var _ repository.RecipeRepository = (*RecipeRepo)(nil)

// RecipeRepo implementación del índice de recetas sobre PostgreSQL (usable con pool o tx).
type RecipeRepo struct {
	q Querier
}

// NewRecipeRepository construye el adaptador. Pasar pool o tx (Querier).
func NewRecipeRepository(q Querier) *RecipeRepo {
	return &RecipeRepo{q: q}
}

// ReplaceForProduct reemplaza la receta completa de un producto (delete + insert).
func (r *RecipeRepo) ReplaceForProduct(productID string, items []entity.RecipeItem) error {
	ctx := context.Background()
	if _, err := r.q.Exec(ctx, `DELETE FROM recipes WHERE product_id = $1`, productID); err != nil {
		return fmt.Errorf("clear recipe: %w", err)
	}
	query := `
		INSERT INTO recipes (id, product_id, ingredient_id, quantity_needed, created_at)
		VALUES ($1, $2, $3, $4, $5)`
	for _, item := range items {
		_, err := r.q.Exec(ctx, query,
			item.ID, item.ProductID, item.IngredientID, item.QuantityNeeded, item.CreatedAt)
		if err != nil {
			if isUniqueViolation(err) {
				return domain.ErrDuplicate
			}
			if isForeignKeyViolation(err) {
				return domain.ErrNotFound
			}
			return fmt.Errorf("insert recipe item: %w", err)
		}
	}
	return nil
}

// ListByProduct receta de un producto.
func (r *RecipeRepo) ListByProduct(productID string) ([]entity.RecipeItem, error) {
	query := `
		SELECT id, product_id, ingredient_id, quantity_needed, created_at
		FROM recipes WHERE product_id = $1 ORDER BY ingredient_id`
	rows, err := r.q.Query(context.Background(), query, productID)
	if err != nil {
		return nil, fmt.Errorf("list recipe: %w", err)
	}
	defer rows.Close()
	var list []entity.RecipeItem
	for rows.Next() {
		var item entity.RecipeItem
		if err := rows.Scan(&item.ID, &item.ProductID, &item.IngredientID,
			&item.QuantityNeeded, &item.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan recipe item: %w", err)
		}
		list = append(list, item)
	}
	return list, rows.Err()
}

// ListByProducts expansión masiva: recetas de varios productos en una consulta.
func (r *RecipeRepo) ListByProducts(productIDs []string) (map[string][]entity.RecipeItem, error) {
	result := make(map[string][]entity.RecipeItem, len(productIDs))
	if len(productIDs) == 0 {
		return result, nil
	}
	query := `
		SELECT id, product_id, ingredient_id, quantity_needed, created_at
		FROM recipes WHERE product_id = ANY($1) ORDER BY product_id, ingredient_id`
	rows, err := r.q.Query(context.Background(), query, productIDs)
	if err != nil {
		return nil, fmt.Errorf("list recipes: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var item entity.RecipeItem
		if err := rows.Scan(&item.ID, &item.ProductID, &item.IngredientID,
			&item.QuantityNeeded, &item.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan recipe item: %w", err)
		}
		result[item.ProductID] = append(result[item.ProductID], item)
	}
	return result, rows.Err()
}

// ListProductIDsByIngredient conjunto afectado para la propagación de costos.
func (r *RecipeRepo) ListProductIDsByIngredient(ingredientID string) ([]string, error) {
	query := `SELECT DISTINCT product_id FROM recipes WHERE ingredient_id = $1 ORDER BY product_id`
	rows, err := r.q.Query(context.Background(), query, ingredientID)
	if err != nil {
		return nil, fmt.Errorf("list products by ingredient: %w", err)
	}
	defer rows.Close()
	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan product id: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// ExistsByIngredient indica si alguna receta referencia al ingrediente.
func (r *RecipeRepo) ExistsByIngredient(ingredientID string) (bool, error) {
	var exists bool
	err := r.q.QueryRow(context.Background(),
		`SELECT EXISTS(SELECT 1 FROM recipes WHERE ingredient_id = $1)`, ingredientID,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("exists by ingredient: %w", err)
	}
	return exists, nil
}
