package stock

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/panaderia-pos/internal/application/dto"
	"github.com/tu-usuario/panaderia-pos/internal/domain"
	"github.com/tu-usuario/panaderia-pos/internal/domain/entity"
	"github.com/tu-usuario/panaderia-pos/internal/domain/repository"
	domstock "github.com/tu-usuario/panaderia-pos/internal/domain/stock"
)

// UseCase motor de suficiencia/deducción/devolución de stock.
// La verificación es una lectura pura; deducción y devolución se ejecutan
// dentro de la transacción del caller (patrón *InTx) con bloqueo de filas.
type UseCase struct {
	txRunner       TxRunner
	ingredientRepo repository.IngredientRepository
	productRepo    repository.ProductRepository
	recipeRepo     repository.RecipeRepository
	movementRepo   repository.StockMovementRepository
}

// NewUseCase construye el caso de uso de stock.
func NewUseCase(
	txRunner TxRunner,
	ingredientRepo repository.IngredientRepository,
	productRepo repository.ProductRepository,
	recipeRepo repository.RecipeRepository,
	movementRepo repository.StockMovementRepository,
) *UseCase {
	return &UseCase{
		txRunner:       txRunner,
		ingredientRepo: ingredientRepo,
		productRepo:    productRepo,
		recipeRepo:     recipeRepo,
		movementRepo:   movementRepo,
	}
}

// AggregateForLines expande líneas de orden por sus recetas y devuelve el
// requerimiento agregado por ingrediente (ordenado por ID de ingrediente).
func (uc *UseCase) AggregateForLines(lines []domstock.Line) ([]domstock.Requirement, error) {
	if len(lines) == 0 {
		return nil, domain.ErrInvalidInput
	}
	productIDs := make([]string, 0, len(lines))
	for _, line := range lines {
		if line.ProductID == "" || line.Quantity <= 0 {
			return nil, domain.ErrInvalidInput
		}
		productIDs = append(productIDs, line.ProductID)
	}
	recipes, err := uc.recipeRepo.ListByProducts(productIDs)
	if err != nil {
		return nil, err
	}
	return domstock.AggregateRequirements(lines, recipes), nil
}

// CheckOrderStock verificación de suficiencia (lectura pura, sin mutaciones).
// Segura de invocar repetidamente para validación o consultas de capacidad.
func (uc *UseCase) CheckOrderStock(ctx context.Context, lines []domstock.Line) (*dto.CheckStockResponse, error) {
	reqs, err := uc.AggregateForLines(lines)
	if err != nil {
		return nil, err
	}
	ingredients, err := uc.ingredientsFor(reqs)
	if err != nil {
		return nil, err
	}
	shortages := domstock.ComputeShortages(reqs, ingredients)
	resp := &dto.CheckStockResponse{
		CanFulfill: len(shortages) == 0,
		Shortages:  shortages,
	}
	for _, req := range reqs {
		r := dto.RequirementDTO{IngredientID: req.IngredientID, Required: req.Quantity}
		if ing, ok := ingredients[req.IngredientID]; ok {
			r.IngredientName = ing.Name
			r.Unit = ing.Unit
			r.Available = ing.StockQuantity
		}
		resp.Requirements = append(resp.Requirements, r)
	}
	return resp, nil
}

// DeductInTx descuenta los requerimientos agregados de una orden usando los
// repositorios de la transacción del caller. Re-verifica la suficiencia bajo
// bloqueo de fila (nunca confía en una verificación previa): primero bloquea
// y valida todos los ingredientes, recién después muta. Si algo falta retorna
// InsufficientStockError con la lista completa y el caller hace rollback, de
// modo que una deducción parcial jamás es observable.
func (uc *UseCase) DeductInTx(
	ingredientRepo repository.IngredientRepository,
	movementRepo repository.StockMovementRepository,
	orderID string,
	reqs []domstock.Requirement,
	notes string,
	now time.Time,
) ([]*entity.StockMovement, error) {
	locked := make([]*entity.Ingredient, 0, len(reqs))
	var shortages []domain.Shortage
	for _, req := range reqs {
		// reqs viene ordenado por IngredientID: los locks se toman siempre
		// en el mismo orden entre transacciones concurrentes.
		ing, err := ingredientRepo.GetByIDForUpdate(req.IngredientID)
		if err != nil {
			return nil, err
		}
		if ing == nil {
			return nil, domain.ErrNotFound
		}
		if ing.StockQuantity.LessThan(req.Quantity) {
			shortages = append(shortages, domain.Shortage{
				IngredientID:   ing.ID,
				IngredientName: ing.Name,
				Unit:           ing.Unit,
				Required:       req.Quantity,
				Available:      ing.StockQuantity,
				Shortage:       req.Quantity.Sub(ing.StockQuantity),
			})
		}
		locked = append(locked, ing)
	}
	if len(shortages) > 0 {
		return nil, &domain.InsufficientStockError{Shortages: shortages}
	}

	movements := make([]*entity.StockMovement, 0, len(reqs))
	for i, req := range reqs {
		ing := locked[i]
		if err := ingredientRepo.UpdateStock(ing.ID, ing.StockQuantity.Sub(req.Quantity)); err != nil {
			return nil, err
		}
		mov := &entity.StockMovement{
			ID:            uuid.New().String(),
			IngredientID:  ing.ID,
			Quantity:      req.Quantity.Neg(),
			Type:          entity.MovementTypeOut,
			ReferenceType: entity.ReferenceOrder,
			ReferenceID:   orderID,
			Notes:         notes,
			CreatedAt:     now,
		}
		if err := movementRepo.Create(mov); err != nil {
			return nil, err
		}
		movements = append(movements, mov)
	}
	return movements, nil
}

// ReturnInTx inverso de la deducción: acredita los requerimientos y asienta
// entradas con la referencia dada (order_cancel u order_edit). Para
// cancelaciones es idempotente por construcción: si ya existe un asiento
// order_cancel de la misma orden retorna ErrConflict en lugar de acreditar
// stock dos veces.
func (uc *UseCase) ReturnInTx(
	ingredientRepo repository.IngredientRepository,
	movementRepo repository.StockMovementRepository,
	referenceType, referenceID string,
	reqs []domstock.Requirement,
	notes string,
	now time.Time,
) ([]*entity.StockMovement, error) {
	if referenceType == entity.ReferenceOrderCancel {
		exists, err := movementRepo.ExistsByReference(entity.ReferenceOrderCancel, referenceID)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, domain.ErrConflict
		}
	}
	movements := make([]*entity.StockMovement, 0, len(reqs))
	for _, req := range reqs {
		ing, err := ingredientRepo.GetByIDForUpdate(req.IngredientID)
		if err != nil {
			return nil, err
		}
		if ing == nil {
			return nil, domain.ErrNotFound
		}
		if err := ingredientRepo.UpdateStock(ing.ID, ing.StockQuantity.Add(req.Quantity)); err != nil {
			return nil, err
		}
		mov := &entity.StockMovement{
			ID:            uuid.New().String(),
			IngredientID:  ing.ID,
			Quantity:      req.Quantity,
			Type:          entity.MovementTypeIn,
			ReferenceType: referenceType,
			ReferenceID:   referenceID,
			Notes:         notes,
			CreatedAt:     now,
		}
		if err := movementRepo.Create(mov); err != nil {
			return nil, err
		}
		movements = append(movements, mov)
	}
	return movements, nil
}

// AdjustStock entrada manual (compra o corrección). El signo lo impone el tipo:
// in fuerza positivo, out fuerza negativo, adjustment pasa tal cual. Rechaza
// con InsufficientStockError cualquier ajuste que dejaría el stock negativo,
// antes de mutar nada.
func (uc *UseCase) AdjustStock(ctx context.Context, ingredientID string, in dto.AdjustStockRequest) (*dto.AdjustStockResponse, error) {
	if in.Quantity.IsZero() {
		return nil, domain.ErrInvalidInput
	}
	var signed decimal.Decimal
	switch in.Type {
	case entity.MovementTypeIn:
		signed = in.Quantity.Abs()
	case entity.MovementTypeOut:
		signed = in.Quantity.Abs().Neg()
	case entity.MovementTypeAdjustment:
		signed = in.Quantity
	default:
		return nil, domain.ErrInvalidInput
	}
	referenceType := in.ReferenceType
	switch referenceType {
	case "":
		if in.Type == entity.MovementTypeIn {
			referenceType = entity.ReferencePurchase
		} else {
			referenceType = entity.ReferenceManual
		}
	case entity.ReferencePurchase, entity.ReferenceManual:
	default:
		return nil, domain.ErrInvalidInput
	}

	now := time.Now()
	var resp *dto.AdjustStockResponse
	err := uc.txRunner.Run(ctx, func(
		ingredientRepo repository.IngredientRepository,
		movementRepo repository.StockMovementRepository,
	) error {
		ing, err := ingredientRepo.GetByIDForUpdate(ingredientID)
		if err != nil {
			return err
		}
		if ing == nil {
			return domain.ErrNotFound
		}
		newQty := ing.StockQuantity.Add(signed)
		if newQty.IsNegative() {
			return &domain.InsufficientStockError{Shortages: []domain.Shortage{{
				IngredientID:   ing.ID,
				IngredientName: ing.Name,
				Unit:           ing.Unit,
				Required:       signed.Abs(),
				Available:      ing.StockQuantity,
				Shortage:       newQty.Neg(),
			}}}
		}
		if err := ingredientRepo.UpdateStock(ing.ID, newQty); err != nil {
			return err
		}
		mov := &entity.StockMovement{
			ID:            uuid.New().String(),
			IngredientID:  ing.ID,
			Quantity:      signed,
			Type:          in.Type,
			ReferenceType: referenceType,
			Notes:         in.Notes,
			CreatedAt:     now,
		}
		if err := movementRepo.Create(mov); err != nil {
			return err
		}
		ing.StockQuantity = newQty
		ing.UpdatedAt = now
		resp = &dto.AdjustStockResponse{
			Ingredient: ToIngredientResponse(ing),
			Movement:   ToMovementResponse(mov),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// GetMaxOrderableQuantity capacidad máxima producible de un producto con el
// stock actual. Producto sin receta → sin límite (sentinela -1).
func (uc *UseCase) GetMaxOrderableQuantity(ctx context.Context, productID string) (*dto.MaxOrderableResponse, error) {
	product, err := uc.productRepo.GetByID(productID)
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
	ids := make([]string, 0, len(recipe))
	for _, item := range recipe {
		ids = append(ids, item.IngredientID)
	}
	ingredients := map[string]*entity.Ingredient{}
	if len(ids) > 0 {
		ingredients, err = uc.ingredientRepo.GetByIDs(ids)
		if err != nil {
			return nil, err
		}
	}
	max, limiting := domstock.MaxOrderable(recipe, ingredients)
	return &dto.MaxOrderableResponse{
		ProductID:           productID,
		MaxQuantity:         max,
		Unlimited:           max == domstock.UnlimitedQuantity,
		LimitingIngredients: limiting,
	}, nil
}

// ListMovements historial de movimientos de un ingrediente.
func (uc *UseCase) ListMovements(ctx context.Context, ingredientID string, from, to *time.Time, limit, offset int) ([]dto.StockMovementResponse, error) {
	ing, err := uc.ingredientRepo.GetByID(ingredientID)
	if err != nil {
		return nil, err
	}
	if ing == nil {
		return nil, domain.ErrNotFound
	}
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	movements, err := uc.movementRepo.ListByIngredient(ingredientID, from, to, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.StockMovementResponse, 0, len(movements))
	for _, m := range movements {
		out = append(out, ToMovementResponse(m))
	}
	return out, nil
}

func (uc *UseCase) ingredientsFor(reqs []domstock.Requirement) (map[string]*entity.Ingredient, error) {
	if len(reqs) == 0 {
		return map[string]*entity.Ingredient{}, nil
	}
	ids := make([]string, 0, len(reqs))
	for _, req := range reqs {
		ids = append(ids, req.IngredientID)
	}
	return uc.ingredientRepo.GetByIDs(ids)
}

// ToIngredientResponse mapea la entidad a su representación pública.
func ToIngredientResponse(ing *entity.Ingredient) dto.IngredientResponse {
	return dto.IngredientResponse{
		ID:                ing.ID,
		Name:              ing.Name,
		Unit:              ing.Unit,
		StockQuantity:     ing.StockQuantity,
		MinStockThreshold: ing.MinStockThreshold,
		UnitPrice:         ing.UnitPrice,
		LowStock:          ing.IsLowStock(),
		CreatedAt:         ing.CreatedAt,
		UpdatedAt:         ing.UpdatedAt,
	}
}

// ToMovementResponse mapea un asiento a su representación pública.
func ToMovementResponse(m *entity.StockMovement) dto.StockMovementResponse {
	return dto.StockMovementResponse{
		ID:            m.ID,
		IngredientID:  m.IngredientID,
		Quantity:      m.Quantity,
		Type:          m.Type,
		ReferenceType: m.ReferenceType,
		ReferenceID:   m.ReferenceID,
		Notes:         m.Notes,
		CreatedAt:     m.CreatedAt,
	}
}
