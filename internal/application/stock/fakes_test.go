package stock_test

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/panaderia-pos/internal/domain/entity"
	"github.com/tu-usuario/panaderia-pos/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Repositorios en memoria para los tests del caso de uso. El runner de
// transacciones simula Commit/Rollback con snapshots: si el callback falla,
// el estado vuelve exactamente al previo, igual que un ROLLBACK real.
// ──────────────────────────────────────────────────────────────────────────────

type fakeIngredientRepo struct {
	items map[string]*entity.Ingredient
}

var _ repository.IngredientRepository = (*fakeIngredientRepo)(nil)

func newFakeIngredientRepo(ings ...*entity.Ingredient) *fakeIngredientRepo {
	r := &fakeIngredientRepo{items: make(map[string]*entity.Ingredient)}
	for _, ing := range ings {
		cp := *ing
		r.items[ing.ID] = &cp
	}
	return r
}

func (r *fakeIngredientRepo) snapshot() map[string]*entity.Ingredient {
	snap := make(map[string]*entity.Ingredient, len(r.items))
	for id, ing := range r.items {
		cp := *ing
		snap[id] = &cp
	}
	return snap
}

func (r *fakeIngredientRepo) restore(snap map[string]*entity.Ingredient) {
	r.items = snap
}

func (r *fakeIngredientRepo) Create(ing *entity.Ingredient) error {
	cp := *ing
	r.items[ing.ID] = &cp
	return nil
}

func (r *fakeIngredientRepo) GetByID(id string) (*entity.Ingredient, error) {
	ing, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	cp := *ing
	return &cp, nil
}

func (r *fakeIngredientRepo) GetByIDs(ids []string) (map[string]*entity.Ingredient, error) {
	out := make(map[string]*entity.Ingredient)
	for _, id := range ids {
		if ing, ok := r.items[id]; ok {
			cp := *ing
			out[id] = &cp
		}
	}
	return out, nil
}

func (r *fakeIngredientRepo) GetByIDForUpdate(id string) (*entity.Ingredient, error) {
	return r.GetByID(id)
}

func (r *fakeIngredientRepo) GetByName(name string) (*entity.Ingredient, error) {
	for _, ing := range r.items {
		if ing.Name == name {
			cp := *ing
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeIngredientRepo) Update(ing *entity.Ingredient) error {
	cp := *ing
	r.items[ing.ID] = &cp
	return nil
}

func (r *fakeIngredientRepo) UpdateStock(id string, quantity decimal.Decimal) error {
	r.items[id].StockQuantity = quantity
	return nil
}

func (r *fakeIngredientRepo) List(limit, offset int) ([]*entity.Ingredient, error) {
	out := make([]*entity.Ingredient, 0, len(r.items))
	for _, ing := range r.items {
		cp := *ing
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeIngredientRepo) ListLowStock() ([]*entity.Ingredient, error) {
	var out []*entity.Ingredient
	for _, ing := range r.items {
		if ing.IsLowStock() {
			cp := *ing
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeIngredientRepo) Delete(id string) error {
	delete(r.items, id)
	return nil
}

// ── libro de movimientos ──────────────────────────────────────────────────────

type fakeMovementRepo struct {
	entries []*entity.StockMovement
}

var _ repository.StockMovementRepository = (*fakeMovementRepo)(nil)

func (r *fakeMovementRepo) snapshot() []*entity.StockMovement {
	snap := make([]*entity.StockMovement, len(r.entries))
	copy(snap, r.entries)
	return snap
}

func (r *fakeMovementRepo) restore(snap []*entity.StockMovement) {
	r.entries = snap
}

func (r *fakeMovementRepo) Create(m *entity.StockMovement) error {
	cp := *m
	r.entries = append(r.entries, &cp)
	return nil
}

func (r *fakeMovementRepo) ListByIngredient(ingredientID string, from, to *time.Time, limit, offset int) ([]*entity.StockMovement, error) {
	var out []*entity.StockMovement
	for _, m := range r.entries {
		if m.IngredientID != ingredientID {
			continue
		}
		if from != nil && m.CreatedAt.Before(*from) {
			continue
		}
		if to != nil && m.CreatedAt.After(*to) {
			continue
		}
		out = append(out, m)
	}
	return out, nil
}

func (r *fakeMovementRepo) ListByReference(referenceType, referenceID string) ([]*entity.StockMovement, error) {
	var out []*entity.StockMovement
	for _, m := range r.entries {
		if m.ReferenceType == referenceType && m.ReferenceID == referenceID {
			out = append(out, m)
		}
	}
	return out, nil
}

func (r *fakeMovementRepo) ExistsByReference(referenceType, referenceID string) (bool, error) {
	list, _ := r.ListByReference(referenceType, referenceID)
	return len(list) > 0, nil
}

func (r *fakeMovementRepo) SumByIngredient(ingredientID string) (decimal.Decimal, error) {
	sum := decimal.Zero
	for _, m := range r.entries {
		if m.IngredientID == ingredientID {
			sum = sum.Add(m.Quantity)
		}
	}
	return sum, nil
}

// ── productos y recetas ───────────────────────────────────────────────────────

type fakeProductRepo struct {
	items map[string]*entity.Product
}

var _ repository.ProductRepository = (*fakeProductRepo)(nil)

func newFakeProductRepo(products ...*entity.Product) *fakeProductRepo {
	r := &fakeProductRepo{items: make(map[string]*entity.Product)}
	for _, p := range products {
		cp := *p
		r.items[p.ID] = &cp
	}
	return r
}

func (r *fakeProductRepo) Create(p *entity.Product) error {
	cp := *p
	r.items[p.ID] = &cp
	return nil
}

func (r *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	p, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *fakeProductRepo) GetByIDs(ids []string) (map[string]*entity.Product, error) {
	out := make(map[string]*entity.Product)
	for _, id := range ids {
		if p, ok := r.items[id]; ok {
			cp := *p
			out[id] = &cp
		}
	}
	return out, nil
}

func (r *fakeProductRepo) GetByName(name string) (*entity.Product, error) {
	for _, p := range r.items {
		if p.Name == name {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeProductRepo) Update(p *entity.Product) error {
	cp := *p
	r.items[p.ID] = &cp
	return nil
}

func (r *fakeProductRepo) UpdateCost(productID string, cost decimal.Decimal) error {
	if p, ok := r.items[productID]; ok {
		p.CostPrice = cost
	}
	return nil
}

func (r *fakeProductRepo) List(onlyAvailable bool, limit, offset int) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range r.items {
		if onlyAvailable && !p.IsAvailable {
			continue
		}
		cp := *p
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeProductRepo) Delete(id string) error {
	delete(r.items, id)
	return nil
}

type fakeRecipeRepo struct {
	byProduct map[string][]entity.RecipeItem
}

var _ repository.RecipeRepository = (*fakeRecipeRepo)(nil)

func (r *fakeRecipeRepo) ReplaceForProduct(productID string, items []entity.RecipeItem) error {
	r.byProduct[productID] = items
	return nil
}

func (r *fakeRecipeRepo) ListByProduct(productID string) ([]entity.RecipeItem, error) {
	return r.byProduct[productID], nil
}

func (r *fakeRecipeRepo) ListByProducts(productIDs []string) (map[string][]entity.RecipeItem, error) {
	out := make(map[string][]entity.RecipeItem)
	for _, id := range productIDs {
		if items, ok := r.byProduct[id]; ok {
			out[id] = items
		}
	}
	return out, nil
}

func (r *fakeRecipeRepo) ListProductIDsByIngredient(ingredientID string) ([]string, error) {
	var out []string
	for productID, items := range r.byProduct {
		for _, item := range items {
			if item.IngredientID == ingredientID {
				out = append(out, productID)
				break
			}
		}
	}
	return out, nil
}

func (r *fakeRecipeRepo) ExistsByIngredient(ingredientID string) (bool, error) {
	ids, _ := r.ListProductIDsByIngredient(ingredientID)
	return len(ids) > 0, nil
}

// ── runner de transacciones ───────────────────────────────────────────────────

type fakeTxRunner struct {
	ingredients *fakeIngredientRepo
	movements   *fakeMovementRepo
}

func (r *fakeTxRunner) Run(ctx context.Context, fn func(
	ingredientRepo repository.IngredientRepository,
	movementRepo repository.StockMovementRepository,
) error) error {
	ingSnap := r.ingredients.snapshot()
	movSnap := r.movements.snapshot()
	if err := fn(r.ingredients, r.movements); err != nil {
		r.ingredients.restore(ingSnap)
		r.movements.restore(movSnap)
		return err
	}
	return nil
}
