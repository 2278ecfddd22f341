package catalog

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/panaderia-pos/internal/application/dto"
	"github.com/tu-usuario/panaderia-pos/internal/domain"
	"github.com/tu-usuario/panaderia-pos/internal/domain/entity"
	"github.com/tu-usuario/panaderia-pos/internal/domain/repository"
)

// ProductUseCase CRUD de productos y gestión de su receta.
// CostPrice es derivado: lo escribe la calculadora de costos, nunca este CRUD.
type ProductUseCase struct {
	repo           repository.ProductRepository
	recipeRepo     repository.RecipeRepository
	ingredientRepo repository.IngredientRepository
	costing        CostRecalculator
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(
	repo repository.ProductRepository,
	recipeRepo repository.RecipeRepository,
	ingredientRepo repository.IngredientRepository,
	costing CostRecalculator,
) *ProductUseCase {
	return &ProductUseCase{repo: repo, recipeRepo: recipeRepo, ingredientRepo: ingredientRepo, costing: costing}
}

// Create alta de producto. CostPrice inicia en 0 hasta que tenga receta.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if in.Name == "" || in.SellingPrice.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	existing, _ := uc.repo.GetByName(in.Name)
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	available := true
	if in.IsAvailable != nil {
		available = *in.IsAvailable
	}
	now := time.Now()
	product := &entity.Product{
		ID:           uuid.New().String(),
		Name:         in.Name,
		Description:  in.Description,
		SellingPrice: in.SellingPrice,
		CostPrice:    decimal.Zero,
		IsAvailable:  available,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// Update edita el producto. El precio de venta afecta solo órdenes futuras:
// las líneas existentes conservan su precio congelado.
func (uc *ProductUseCase) Update(ctx context.Context, id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil && *in.Name != product.Name {
		if *in.Name == "" {
			return nil, domain.ErrInvalidInput
		}
		existing, _ := uc.repo.GetByName(*in.Name)
		if existing != nil && existing.ID != id {
			return nil, domain.ErrDuplicate
		}
		product.Name = *in.Name
	}
	if in.Description != nil {
		product.Description = *in.Description
	}
	if in.SellingPrice != nil {
		if in.SellingPrice.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		product.SellingPrice = *in.SellingPrice
	}
	if in.IsAvailable != nil {
		product.IsAvailable = *in.IsAvailable
	}
	product.UpdatedAt = time.Now()
	if err := uc.repo.Update(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// Delete borra el producto; las entradas de receta caen en cascada (FK).
func (uc *ProductUseCase) Delete(ctx context.Context, id string) error {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

// Get obtiene un producto por ID.
func (uc *ProductUseCase) Get(ctx context.Context, id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	return toProductResponse(product), nil
}

// List lista productos (opcionalmente solo disponibles).
func (uc *ProductUseCase) List(ctx context.Context, onlyAvailable bool, limit, offset int) ([]*dto.ProductResponse, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	products, err := uc.repo.List(onlyAvailable, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, toProductResponse(p))
	}
	return out, nil
}

// SetRecipe reemplaza la receta completa del producto (pares ingrediente,
// cantidad por unidad) y recalcula su costo.
func (uc *ProductUseCase) SetRecipe(ctx context.Context, productID string, in dto.SetRecipeRequest) (*dto.ProductCostResponse, error) {
	product, err := uc.repo.GetByID(productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	seen := make(map[string]bool, len(in.Items))
	items := make([]entity.RecipeItem, 0, len(in.Items))
	now := time.Now()
	for _, entry := range in.Items {
		if entry.IngredientID == "" || !entry.QuantityNeeded.IsPositive() {
			return nil, domain.ErrInvalidInput
		}
		if seen[entry.IngredientID] {
			return nil, domain.ErrDuplicate
		}
		seen[entry.IngredientID] = true
		ing, err := uc.ingredientRepo.GetByID(entry.IngredientID)
		if err != nil {
			return nil, err
		}
		if ing == nil {
			return nil, domain.ErrNotFound
		}
		items = append(items, entity.RecipeItem{
			ID:             uuid.New().String(),
			ProductID:      productID,
			IngredientID:   entry.IngredientID,
			QuantityNeeded: entry.QuantityNeeded,
			CreatedAt:      now,
		})
	}
	if err := uc.recipeRepo.ReplaceForProduct(productID, items); err != nil {
		return nil, err
	}
	return uc.costing.UpdateProductCost(ctx, productID)
}

// GetRecipe receta del producto con datos de cada ingrediente.
func (uc *ProductUseCase) GetRecipe(ctx context.Context, productID string) ([]dto.RecipeEntryResponse, error) {
	product, err := uc.repo.GetByID(productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	recipe, err := uc.recipeRepo.ListByProduct(productID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.RecipeEntryResponse, 0, len(recipe))
	if len(recipe) == 0 {
		return out, nil
	}
	ids := make([]string, 0, len(recipe))
	for _, item := range recipe {
		ids = append(ids, item.IngredientID)
	}
	ingredients, err := uc.ingredientRepo.GetByIDs(ids)
	if err != nil {
		return nil, err
	}
	for _, item := range recipe {
		entry := dto.RecipeEntryResponse{
			IngredientID:   item.IngredientID,
			QuantityNeeded: item.QuantityNeeded,
		}
		if ing, ok := ingredients[item.IngredientID]; ok {
			entry.IngredientName = ing.Name
			entry.Unit = ing.Unit
		}
		out = append(out, entry)
	}
	return out, nil
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	return &dto.ProductResponse{
		ID:           p.ID,
		Name:         p.Name,
		Description:  p.Description,
		SellingPrice: p.SellingPrice,
		CostPrice:    p.CostPrice,
		IsAvailable:  p.IsAvailable,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}
