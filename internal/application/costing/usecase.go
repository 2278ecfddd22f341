package costing

import (
	"context"

	"github.com/tu-usuario/panaderia-pos/internal/application/dto"
	"github.com/tu-usuario/panaderia-pos/internal/domain"
	domcosting "github.com/tu-usuario/panaderia-pos/internal/domain/costing"
	"github.com/tu-usuario/panaderia-pos/internal/domain/entity"
	"github.com/tu-usuario/panaderia-pos/internal/domain/repository"
	"github.com/tu-usuario/panaderia-pos/pkg/logger"
)

// UseCase calculadora de costos: deriva el costo de un producto de su receta
// y propaga cambios de precio de ingrediente al conjunto afectado de productos.
type UseCase struct {
	productRepo    repository.ProductRepository
	recipeRepo     repository.RecipeRepository
	ingredientRepo repository.IngredientRepository
	log            *logger.Logger
}

// NewUseCase construye la calculadora de costos.
func NewUseCase(
	productRepo repository.ProductRepository,
	recipeRepo repository.RecipeRepository,
	ingredientRepo repository.IngredientRepository,
	log *logger.Logger,
) *UseCase {
	return &UseCase{
		productRepo:    productRepo,
		recipeRepo:     recipeRepo,
		ingredientRepo: ingredientRepo,
		log:            log,
	}
}

// CalculateProductCost calcula (sin persistir) el costo de un producto:
// Σ(receta.cantidad × ingrediente.precio), 2 decimales. Producto sin receta →
// costo 0 con bandera de diagnóstico.
func (uc *UseCase) CalculateProductCost(ctx context.Context, productID string) (*dto.ProductCostResponse, error) {
	product, err := uc.productRepo.GetByID(productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	cost, err := uc.costFor(productID)
	if err != nil {
		return nil, err
	}
	return &dto.ProductCostResponse{
		ProductID: productID,
		CostPrice: cost.CostPrice,
		Breakdown: cost.Breakdown,
		NoRecipe:  cost.NoRecipe,
	}, nil
}

// UpdateProductCost recalcula y persiste el costo del producto.
func (uc *UseCase) UpdateProductCost(ctx context.Context, productID string) (*dto.ProductCostResponse, error) {
	resp, err := uc.CalculateProductCost(ctx, productID)
	if err != nil {
		return nil, err
	}
	if err := uc.productRepo.UpdateCost(productID, resp.CostPrice); err != nil {
		return nil, err
	}
	return resp, nil
}

// RecalculateByIngredient propagación de un cambio de precio de ingrediente:
// consulta el conjunto afectado (productos cuya receta lo referencia) y
// recalcula en un lote acotado, devolviendo costo viejo y nuevo por producto.
func (uc *UseCase) RecalculateByIngredient(ctx context.Context, ingredientID string) ([]dto.RecalculatedProduct, error) {
	ing, err := uc.ingredientRepo.GetByID(ingredientID)
	if err != nil {
		return nil, err
	}
	if ing == nil {
		return nil, domain.ErrNotFound
	}
	productIDs, err := uc.recipeRepo.ListProductIDsByIngredient(ingredientID)
	if err != nil {
		return nil, err
	}
	updated := make([]dto.RecalculatedProduct, 0, len(productIDs))
	for _, productID := range productIDs {
		product, err := uc.productRepo.GetByID(productID)
		if err != nil {
			return nil, err
		}
		if product == nil {
			continue
		}
		// Se captura antes de persistir: un repo puede devolver estado compartido.
		oldCost := product.CostPrice
		cost, err := uc.costFor(productID)
		if err != nil {
			return nil, err
		}
		if err := uc.productRepo.UpdateCost(productID, cost.CostPrice); err != nil {
			return nil, err
		}
		updated = append(updated, dto.RecalculatedProduct{
			ProductID: productID,
			Name:      product.Name,
			OldCost:   oldCost,
			NewCost:   cost.CostPrice,
		})
	}
	uc.log.Info().
		Str("ingredient_id", ingredientID).
		Int("products", len(updated)).
		Msg("costos recalculados por cambio de ingrediente")
	return updated, nil
}

func (uc *UseCase) costFor(productID string) (domcosting.ProductCost, error) {
	recipe, err := uc.recipeRepo.ListByProduct(productID)
	if err != nil {
		return domcosting.ProductCost{}, err
	}
	ingredients := map[string]*entity.Ingredient{}
	if len(recipe) > 0 {
		ids := make([]string, 0, len(recipe))
		for _, item := range recipe {
			ids = append(ids, item.IngredientID)
		}
		ingredients, err = uc.ingredientRepo.GetByIDs(ids)
		if err != nil {
			return domcosting.ProductCost{}, err
		}
	}
	return domcosting.Calculate(recipe, ingredients), nil
}
