package catalog

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/panaderia-pos/internal/application/dto"
	"github.com/tu-usuario/panaderia-pos/internal/application/stock"
	"github.com/tu-usuario/panaderia-pos/internal/domain"
	"github.com/tu-usuario/panaderia-pos/internal/domain/entity"
	"github.com/tu-usuario/panaderia-pos/internal/domain/repository"
)

// CostRecalculator contrato mínimo hacia la calculadora de costos: al cambiar
// el precio de un ingrediente se recalculan los productos afectados.
type CostRecalculator interface {
	RecalculateByIngredient(ctx context.Context, ingredientID string) ([]dto.RecalculatedProduct, error)
	UpdateProductCost(ctx context.Context, productID string) (*dto.ProductCostResponse, error)
}

// IngredientUseCase CRUD de ingredientes. El stock no se edita por aquí:
// solo se mueve vía ajustes del motor de stock (queda asentado en el libro).
type IngredientUseCase struct {
	repo       repository.IngredientRepository
	recipeRepo repository.RecipeRepository
	costing    CostRecalculator
}

// NewIngredientUseCase construye el caso de uso.
func NewIngredientUseCase(repo repository.IngredientRepository, recipeRepo repository.RecipeRepository, costing CostRecalculator) *IngredientUseCase {
	return &IngredientUseCase{repo: repo, recipeRepo: recipeRepo, costing: costing}
}

// Create alta de ingrediente. Nombre duplicado → ErrDuplicate.
func (uc *IngredientUseCase) Create(ctx context.Context, in dto.CreateIngredientRequest) (*dto.IngredientResponse, error) {
	if in.Name == "" || in.Unit == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.StockQuantity.IsNegative() || in.MinStockThreshold.IsNegative() || in.UnitPrice.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	existing, _ := uc.repo.GetByName(in.Name)
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	ing := &entity.Ingredient{
		ID:                uuid.New().String(),
		Name:              in.Name,
		Unit:              in.Unit,
		StockQuantity:     in.StockQuantity,
		MinStockThreshold: in.MinStockThreshold,
		UnitPrice:         in.UnitPrice,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	if err := uc.repo.Create(ing); err != nil {
		return nil, err
	}
	resp := stock.ToIngredientResponse(ing)
	return &resp, nil
}

// Update edita nombre, unidad, umbral y/o precio. Un cambio de precio
// dispara la propagación de costos a los productos que usan el ingrediente.
func (uc *IngredientUseCase) Update(ctx context.Context, id string, in dto.UpdateIngredientRequest) (*dto.IngredientResponse, error) {
	ing, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if ing == nil {
		return nil, domain.ErrNotFound
	}
	priceChanged := false
	if in.Name != nil && *in.Name != ing.Name {
		if *in.Name == "" {
			return nil, domain.ErrInvalidInput
		}
		existing, _ := uc.repo.GetByName(*in.Name)
		if existing != nil && existing.ID != id {
			return nil, domain.ErrDuplicate
		}
		ing.Name = *in.Name
	}
	if in.Unit != nil {
		if *in.Unit == "" {
			return nil, domain.ErrInvalidInput
		}
		ing.Unit = *in.Unit
	}
	if in.MinStockThreshold != nil {
		if in.MinStockThreshold.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		ing.MinStockThreshold = *in.MinStockThreshold
	}
	if in.UnitPrice != nil && !in.UnitPrice.Equal(ing.UnitPrice) {
		if in.UnitPrice.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		ing.UnitPrice = *in.UnitPrice
		priceChanged = true
	}
	ing.UpdatedAt = time.Now()
	if err := uc.repo.Update(ing); err != nil {
		return nil, err
	}
	if priceChanged {
		if _, err := uc.costing.RecalculateByIngredient(ctx, id); err != nil {
			return nil, err
		}
	}
	resp := stock.ToIngredientResponse(ing)
	return &resp, nil
}

// Delete borra un ingrediente no referenciado. Si alguna receta lo usa,
// se rechaza con ErrConflict (también lo garantiza la FK RESTRICT).
func (uc *IngredientUseCase) Delete(ctx context.Context, id string) error {
	ing, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if ing == nil {
		return domain.ErrNotFound
	}
	used, err := uc.recipeRepo.ExistsByIngredient(id)
	if err != nil {
		return err
	}
	if used {
		return domain.ErrConflict
	}
	return uc.repo.Delete(id)
}

// Get obtiene un ingrediente por ID.
func (uc *IngredientUseCase) Get(ctx context.Context, id string) (*dto.IngredientResponse, error) {
	ing, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if ing == nil {
		return nil, domain.ErrNotFound
	}
	resp := stock.ToIngredientResponse(ing)
	return &resp, nil
}

// List lista ingredientes.
func (uc *IngredientUseCase) List(ctx context.Context, limit, offset int) ([]dto.IngredientResponse, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	ingredients, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.IngredientResponse, 0, len(ingredients))
	for _, ing := range ingredients {
		out = append(out, stock.ToIngredientResponse(ing))
	}
	return out, nil
}

// ListLowStock ingredientes en o bajo umbral, con cantidad sugerida de
// reposición para volver al umbral.
func (uc *IngredientUseCase) ListLowStock(ctx context.Context) ([]dto.LowStockItem, error) {
	ingredients, err := uc.repo.ListLowStock()
	if err != nil {
		return nil, err
	}
	out := make([]dto.LowStockItem, 0, len(ingredients))
	for _, ing := range ingredients {
		out = append(out, dto.LowStockItem{
			Ingredient:     stock.ToIngredientResponse(ing),
			SuggestedTopUp: ing.MinStockThreshold.Sub(ing.StockQuantity),
		})
	}
	return out, nil
}
