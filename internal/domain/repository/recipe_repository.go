package repository

import "github.com/tu-usuario/panaderia-pos/internal/domain/entity"

// RecipeRepository puerto para el índice de recetas (producto → ingredientes).
type RecipeRepository interface {
	// ReplaceForProduct reemplaza la receta completa de un producto.
	ReplaceForProduct(productID string, items []entity.RecipeItem) error
	ListByProduct(productID string) ([]entity.RecipeItem, error)
	// ListByProducts expansión masiva para la verificación de órdenes.
	ListByProducts(productIDs []string) (map[string][]entity.RecipeItem, error)
	// ListProductIDsByIngredient conjunto afectado para la propagación de costos.
	ListProductIDsByIngredient(ingredientID string) ([]string, error)
	ExistsByIngredient(ingredientID string) (bool, error)
}
