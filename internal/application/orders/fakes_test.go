package orders_test

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/panaderia-pos/internal/domain/entity"
	"github.com/tu-usuario/panaderia-pos/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Repositorios en memoria. El runner de transacciones simula Commit/Rollback
// con snapshots de todos los repos participantes: un error del callback
// restaura el estado exacto previo, igual que un ROLLBACK real. El motor de
// stock se usa de verdad (no un doble), para ejercitar deducción, devolución
// y guardas del libro junto con el ciclo de vida de la orden.
// ──────────────────────────────────────────────────────────────────────────────

type fakeIngredientRepo struct {
	items map[string]*entity.Ingredient
	// lockLog registra el orden en que se pidieron locks de fila.
	lockLog []string
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
	r.lockLog = append(r.lockLog, id)
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

func (r *fakeMovementRepo) Create(m *entity.StockMovement) error {
	cp := *m
	r.entries = append(r.entries, &cp)
	return nil
}

func (r *fakeMovementRepo) ListByIngredient(ingredientID string, from, to *time.Time, limit, offset int) ([]*entity.StockMovement, error) {
	var out []*entity.StockMovement
	for _, m := range r.entries {
		if m.IngredientID == ingredientID {
			out = append(out, m)
		}
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

// ── órdenes, revisiones y contador ────────────────────────────────────────────

func cloneOrder(o *entity.Order) *entity.Order {
	cp := *o
	cp.Items = append([]entity.OrderItem(nil), o.Items...)
	return &cp
}

type fakeOrderRepo struct {
	items map[string]*entity.Order
}

var _ repository.OrderRepository = (*fakeOrderRepo)(nil)

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{items: make(map[string]*entity.Order)}
}

func (r *fakeOrderRepo) snapshot() map[string]*entity.Order {
	snap := make(map[string]*entity.Order, len(r.items))
	for id, o := range r.items {
		snap[id] = cloneOrder(o)
	}
	return snap
}

func (r *fakeOrderRepo) Create(order *entity.Order) error {
	r.items[order.ID] = cloneOrder(order)
	return nil
}

func (r *fakeOrderRepo) GetByID(id string) (*entity.Order, error) {
	o, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	return cloneOrder(o), nil
}

func (r *fakeOrderRepo) GetByIDForUpdate(id string) (*entity.Order, error) {
	return r.GetByID(id)
}

func (r *fakeOrderRepo) Update(order *entity.Order) error {
	stored, ok := r.items[order.ID]
	if !ok {
		return nil
	}
	stored.TotalAmount = order.TotalAmount
	stored.Status = order.Status
	stored.Notes = order.Notes
	stored.UpdatedAt = order.UpdatedAt
	return nil
}

func (r *fakeOrderRepo) ReplaceItems(orderID string, items []entity.OrderItem) error {
	if stored, ok := r.items[orderID]; ok {
		stored.Items = append([]entity.OrderItem(nil), items...)
	}
	return nil
}

func (r *fakeOrderRepo) List(status string, limit, offset int) ([]*entity.Order, error) {
	var out []*entity.Order
	for _, o := range r.items {
		if status != "" && o.Status != status {
			continue
		}
		out = append(out, cloneOrder(o))
	}
	return out, nil
}

type fakeRevisionRepo struct {
	entries []*entity.OrderRevision
}

var _ repository.OrderRevisionRepository = (*fakeRevisionRepo)(nil)

func (r *fakeRevisionRepo) Create(revision *entity.OrderRevision) error {
	cp := *revision
	r.entries = append(r.entries, &cp)
	return nil
}

func (r *fakeRevisionRepo) ListByOrder(orderID string) ([]*entity.OrderRevision, error) {
	var out []*entity.OrderRevision
	for _, rev := range r.entries {
		if rev.OrderID == orderID {
			out = append(out, rev)
		}
	}
	return out, nil
}

type fakeCounterRepo struct {
	values map[string]int
}

var _ repository.OrderCounterRepository = (*fakeCounterRepo)(nil)

func (r *fakeCounterRepo) Next(date time.Time) (int, error) {
	key := date.Format("2006-01-02")
	r.values[key]++
	return r.values[key], nil
}

// ── runner de transacciones ───────────────────────────────────────────────────

type fakeOrderTxRunner struct {
	orders      *fakeOrderRepo
	revisions   *fakeRevisionRepo
	counters    *fakeCounterRepo
	ingredients *fakeIngredientRepo
	movements   *fakeMovementRepo
}

func (r *fakeOrderTxRunner) RunOrder(ctx context.Context, fn func(
	orderRepo repository.OrderRepository,
	revisionRepo repository.OrderRevisionRepository,
	counterRepo repository.OrderCounterRepository,
	ingredientRepo repository.IngredientRepository,
	movementRepo repository.StockMovementRepository,
) error) error {
	orderSnap := r.orders.snapshot()
	revSnap := append([]*entity.OrderRevision(nil), r.revisions.entries...)
	counterSnap := make(map[string]int, len(r.counters.values))
	for k, v := range r.counters.values {
		counterSnap[k] = v
	}
	ingSnap := r.ingredients.snapshot()
	movSnap := append([]*entity.StockMovement(nil), r.movements.entries...)

	if err := fn(r.orders, r.revisions, r.counters, r.ingredients, r.movements); err != nil {
		r.orders.items = orderSnap
		r.revisions.entries = revSnap
		r.counters.values = counterSnap
		r.ingredients.items = ingSnap
		r.movements.entries = movSnap
		return err
	}
	return nil
}

// Run satisface el runner del motor de stock (ajustes manuales).
func (r *fakeOrderTxRunner) Run(ctx context.Context, fn func(
	ingredientRepo repository.IngredientRepository,
	movementRepo repository.StockMovementRepository,
) error) error {
	ingSnap := r.ingredients.snapshot()
	movSnap := append([]*entity.StockMovement(nil), r.movements.entries...)
	if err := fn(r.ingredients, r.movements); err != nil {
		r.ingredients.items = ingSnap
		r.movements.entries = movSnap
		return err
	}
	return nil
}
