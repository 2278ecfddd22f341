package orders_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/panaderia-pos/internal/application/dto"
	"github.com/tu-usuario/panaderia-pos/internal/application/orders"
	"github.com/tu-usuario/panaderia-pos/internal/application/stock"
	"github.com/tu-usuario/panaderia-pos/internal/domain"
	"github.com/tu-usuario/panaderia-pos/internal/domain/entity"
	"github.com/tu-usuario/panaderia-pos/pkg/logger"
)

const testActor = "cajero-1"

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

type orderFixture struct {
	uc          *orders.UseCase
	orders      *fakeOrderRepo
	revisions   *fakeRevisionRepo
	ingredients *fakeIngredientRepo
	movements   *fakeMovementRepo
	products    *fakeProductRepo
}

// buildOrderFixture arma el servicio de órdenes contra el motor de stock real:
//
//	pan       $12000  (60g harina, 2g levadura por unidad)
//	croissant $15000  (100g harina, 60g mantequilla)
//	cafe      $6000   (sin receta, capacidad ilimitada)
//	torta     $10000  (no disponible)
//
// Stock inicial: harina 1000, levadura 100, mantequilla 500.
func buildOrderFixture(t *testing.T) *orderFixture {
	t.Helper()
	ingredients := newFakeIngredientRepo(
		&entity.Ingredient{ID: "harina", Name: "Harina de trigo", Unit: "g", StockQuantity: dec("1000")},
		&entity.Ingredient{ID: "levadura", Name: "Levadura", Unit: "g", StockQuantity: dec("100")},
		&entity.Ingredient{ID: "mantequilla", Name: "Mantequilla", Unit: "g", StockQuantity: dec("500")},
	)
	movements := &fakeMovementRepo{}
	products := newFakeProductRepo(
		&entity.Product{ID: "pan", Name: "Pan de la casa", SellingPrice: dec("12000"), IsAvailable: true},
		&entity.Product{ID: "croissant", Name: "Croissant", SellingPrice: dec("15000"), IsAvailable: true},
		&entity.Product{ID: "cafe", Name: "Café", SellingPrice: dec("6000"), IsAvailable: true},
		&entity.Product{ID: "torta", Name: "Torta", SellingPrice: dec("10000"), IsAvailable: false},
	)
	recipes := &fakeRecipeRepo{byProduct: map[string][]entity.RecipeItem{
		"pan": {
			{IngredientID: "harina", QuantityNeeded: dec("60")},
			{IngredientID: "levadura", QuantityNeeded: dec("2")},
		},
		"croissant": {
			{IngredientID: "harina", QuantityNeeded: dec("100")},
			{IngredientID: "mantequilla", QuantityNeeded: dec("60")},
		},
	}}
	orderRepo := newFakeOrderRepo()
	revisionRepo := &fakeRevisionRepo{}
	counterRepo := &fakeCounterRepo{values: make(map[string]int)}
	txRunner := &fakeOrderTxRunner{
		orders:      orderRepo,
		revisions:   revisionRepo,
		counters:    counterRepo,
		ingredients: ingredients,
		movements:   movements,
	}
	stockUC := stock.NewUseCase(txRunner, ingredients, products, recipes, movements)
	uc := orders.NewUseCase(txRunner, stockUC, orderRepo, revisionRepo, products, logger.Nop())
	return &orderFixture{
		uc:          uc,
		orders:      orderRepo,
		revisions:   revisionRepo,
		ingredients: ingredients,
		movements:   movements,
		products:    products,
	}
}

func (f *orderFixture) stockOf(t *testing.T, id string) decimal.Decimal {
	t.Helper()
	ing, err := f.ingredients.GetByID(id)
	require.NoError(t, err)
	require.NotNil(t, ing)
	return ing.StockQuantity
}

func (f *orderFixture) createOrder(t *testing.T, lines ...dto.OrderLineInput) *dto.OrderResponse {
	t.Helper()
	resp, err := f.uc.CreateOrder(context.Background(), testActor, dto.CreateOrderRequest{Lines: lines})
	require.NoError(t, err)
	return resp
}

// ── CreateOrder ───────────────────────────────────────────────────────────────

func TestCreateOrder_CongelaPreciosYDescuentaStock(t *testing.T) {
	f := buildOrderFixture(t)

	resp := f.createOrder(t,
		dto.OrderLineInput{ProductID: "pan", Quantity: 2},
		dto.OrderLineInput{ProductID: "cafe", Quantity: 1},
	)

	expectedNumber := fmt.Sprintf("ORD-%s-001", time.Now().Format("20060102"))
	assert.Equal(t, expectedNumber, resp.OrderNumber)
	assert.Equal(t, entity.OrderStatusPending, resp.Status)
	assert.True(t, resp.TotalAmount.Equal(dec("30000")), "2×12000 + 6000")
	require.Len(t, resp.Items, 2)
	assert.True(t, resp.Items[0].UnitPrice.Equal(dec("12000")))
	assert.True(t, resp.Items[0].Subtotal.Equal(dec("24000")))

	// Stock descontado: 2 panes = 120g harina, 4g levadura; el café no consume.
	assert.True(t, f.stockOf(t, "harina").Equal(dec("880")))
	assert.True(t, f.stockOf(t, "levadura").Equal(dec("96")))
	assert.True(t, f.stockOf(t, "mantequilla").Equal(dec("500")))

	consumos, err := f.movements.ListByReference(entity.ReferenceOrder, resp.ID)
	require.NoError(t, err)
	assert.Len(t, consumos, 2, "un asiento de salida por ingrediente consumido")

	stored, err := f.orders.GetByID(resp.ID)
	require.NoError(t, err)
	require.NotNil(t, stored, "la orden quedó persistida")
	assert.Len(t, stored.Items, 2)
}

func TestCreateOrder_NumeroSecuencialPorDia(t *testing.T) {
	f := buildOrderFixture(t)

	first := f.createOrder(t, dto.OrderLineInput{ProductID: "pan", Quantity: 1})
	second := f.createOrder(t, dto.OrderLineInput{ProductID: "pan", Quantity: 1})

	day := time.Now().Format("20060102")
	assert.Equal(t, fmt.Sprintf("ORD-%s-001", day), first.OrderNumber)
	assert.Equal(t, fmt.Sprintf("ORD-%s-002", day), second.OrderNumber)
}

func TestCreateOrder_AcumulaLineasRepetidas(t *testing.T) {
	f := buildOrderFixture(t)

	resp := f.createOrder(t,
		dto.OrderLineInput{ProductID: "pan", Quantity: 1},
		dto.OrderLineInput{ProductID: "pan", Quantity: 2},
	)

	require.Len(t, resp.Items, 1, "líneas del mismo producto se acumulan")
	assert.Equal(t, 3, resp.Items[0].Quantity)
	assert.True(t, resp.TotalAmount.Equal(dec("36000")))
}

func TestCreateOrder_PrecioCongeladoAnteCambios(t *testing.T) {
	f := buildOrderFixture(t)
	resp := f.createOrder(t, dto.OrderLineInput{ProductID: "pan", Quantity: 2})

	// Sube el precio del producto después de crear la orden.
	pan, err := f.products.GetByID("pan")
	require.NoError(t, err)
	pan.SellingPrice = dec("20000")
	require.NoError(t, f.products.Update(pan))

	// La orden existente conserva el precio congelado.
	got, err := f.uc.GetOrder(context.Background(), resp.ID)
	require.NoError(t, err)
	assert.True(t, got.TotalAmount.Equal(dec("24000")))
	assert.True(t, got.Items[0].UnitPrice.Equal(dec("12000")))

	// Una orden nueva toma el precio vigente.
	nueva := f.createOrder(t, dto.OrderLineInput{ProductID: "pan", Quantity: 1})
	assert.True(t, nueva.TotalAmount.Equal(dec("20000")))
}

func TestCreateOrder_FaltanteNoPersisteNada(t *testing.T) {
	f := buildOrderFixture(t)

	// 20 panes piden 1200g de harina y solo hay 1000g.
	_, err := f.uc.CreateOrder(context.Background(), testActor, dto.CreateOrderRequest{
		Lines: []dto.OrderLineInput{{ProductID: "pan", Quantity: 20}},
	})

	var insufficient *domain.InsufficientStockError
	require.True(t, errors.As(err, &insufficient))
	require.Len(t, insufficient.Shortages, 1)
	assert.Equal(t, "harina", insufficient.Shortages[0].IngredientID)
	assert.True(t, insufficient.Shortages[0].Shortage.Equal(dec("200")))

	// Nada observable: ni orden, ni asientos, ni stock tocado.
	list, err := f.orders.List("", 50, 0)
	require.NoError(t, err)
	assert.Empty(t, list)
	assert.Empty(t, f.movements.entries)
	assert.True(t, f.stockOf(t, "harina").Equal(dec("1000")))
}

func TestCreateOrder_ProductoNoDisponible(t *testing.T) {
	f := buildOrderFixture(t)
	_, err := f.uc.CreateOrder(context.Background(), testActor, dto.CreateOrderRequest{
		Lines: []dto.OrderLineInput{{ProductID: "torta", Quantity: 1}},
	})
	assert.ErrorIs(t, err, domain.ErrProductUnavailable)
}

func TestCreateOrder_ProductoInexistente(t *testing.T) {
	f := buildOrderFixture(t)
	_, err := f.uc.CreateOrder(context.Background(), testActor, dto.CreateOrderRequest{
		Lines: []dto.OrderLineInput{{ProductID: "fantasma", Quantity: 1}},
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCreateOrder_SinLineas(t *testing.T) {
	f := buildOrderFixture(t)
	_, err := f.uc.CreateOrder(context.Background(), testActor, dto.CreateOrderRequest{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ── CancelOrder ───────────────────────────────────────────────────────────────

func TestCancelOrder_DevuelveStockYAudita(t *testing.T) {
	f := buildOrderFixture(t)
	created := f.createOrder(t, dto.OrderLineInput{ProductID: "pan", Quantity: 2})
	require.True(t, f.stockOf(t, "harina").Equal(dec("880")))

	resp, err := f.uc.CancelOrder(context.Background(), created.ID, testActor, "cliente se arrepintió")

	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusCancelled, resp.Status)
	assert.True(t, f.stockOf(t, "harina").Equal(dec("1000")), "la cancelación devuelve todo el consumo")
	assert.True(t, f.stockOf(t, "levadura").Equal(dec("100")))

	devoluciones, err := f.movements.ListByReference(entity.ReferenceOrderCancel, created.ID)
	require.NoError(t, err)
	assert.Len(t, devoluciones, 2)

	revs, err := f.uc.ListRevisions(context.Background(), created.ID)
	require.NoError(t, err)
	require.Len(t, revs, 1)
	assert.Equal(t, entity.RevisionCancelOrder, revs[0].Type)
	assert.Equal(t, testActor, revs[0].ActorID)
	assert.Contains(t, string(revs[0].NewValue), "cliente se arrepintió")
}

func TestCancelOrder_SegundaCancelacionNoDuplicaCredito(t *testing.T) {
	f := buildOrderFixture(t)
	created := f.createOrder(t, dto.OrderLineInput{ProductID: "pan", Quantity: 2})

	_, err := f.uc.CancelOrder(context.Background(), created.ID, testActor, "")
	require.NoError(t, err)

	_, err = f.uc.CancelOrder(context.Background(), created.ID, testActor, "")
	assert.ErrorIs(t, err, domain.ErrOrderTerminal)

	// El stock se acreditó exactamente una vez.
	assert.True(t, f.stockOf(t, "harina").Equal(dec("1000")))
	devoluciones, err := f.movements.ListByReference(entity.ReferenceOrderCancel, created.ID)
	require.NoError(t, err)
	assert.Len(t, devoluciones, 2, "solo los asientos de la primera cancelación")
}

func TestCancelOrder_OrdenCompletadaEsTerminal(t *testing.T) {
	f := buildOrderFixture(t)
	created := f.createOrder(t, dto.OrderLineInput{ProductID: "pan", Quantity: 1})
	ctx := context.Background()

	_, err := f.uc.UpdateOrderStatus(ctx, created.ID, testActor, entity.OrderStatusProcessing)
	require.NoError(t, err)
	_, err = f.uc.UpdateOrderStatus(ctx, created.ID, testActor, entity.OrderStatusCompleted)
	require.NoError(t, err)

	_, err = f.uc.CancelOrder(ctx, created.ID, testActor, "")
	assert.ErrorIs(t, err, domain.ErrOrderTerminal, "una orden entregada no se cancela")
	assert.True(t, f.stockOf(t, "harina").Equal(dec("940")), "el consumo queda firme")
}

// ── UpdateOrderStatus ─────────────────────────────────────────────────────────

func TestUpdateOrderStatus_FlujoCompleto(t *testing.T) {
	f := buildOrderFixture(t)
	created := f.createOrder(t, dto.OrderLineInput{ProductID: "pan", Quantity: 1})
	ctx := context.Background()

	resp, err := f.uc.UpdateOrderStatus(ctx, created.ID, testActor, entity.OrderStatusProcessing)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusProcessing, resp.Status)

	resp, err = f.uc.UpdateOrderStatus(ctx, created.ID, testActor, entity.OrderStatusCompleted)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusCompleted, resp.Status)

	revs, err := f.uc.ListRevisions(ctx, created.ID)
	require.NoError(t, err)
	require.Len(t, revs, 2)
	assert.Equal(t, entity.RevisionUpdateStatus, revs[0].Type)
	assert.Contains(t, string(revs[0].OldValue), "pending")
	assert.Contains(t, string(revs[0].NewValue), "processing")
}

func TestUpdateOrderStatus_TransicionIlegal(t *testing.T) {
	f := buildOrderFixture(t)
	created := f.createOrder(t, dto.OrderLineInput{ProductID: "pan", Quantity: 1})
	ctx := context.Background()

	_, err := f.uc.UpdateOrderStatus(ctx, created.ID, testActor, entity.OrderStatusCompleted)

	var invalid *domain.InvalidTransitionError
	require.True(t, errors.As(err, &invalid), "pending → completed salta processing")
	assert.Equal(t, entity.OrderStatusPending, invalid.From)

	got, err := f.uc.GetOrder(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusPending, got.Status, "el estado no cambió")
}

func TestUpdateOrderStatus_ACancelledDevuelveStock(t *testing.T) {
	f := buildOrderFixture(t)
	created := f.createOrder(t, dto.OrderLineInput{ProductID: "pan", Quantity: 2})

	resp, err := f.uc.UpdateOrderStatus(context.Background(), created.ID, testActor, entity.OrderStatusCancelled)

	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusCancelled, resp.Status)
	assert.True(t, f.stockOf(t, "harina").Equal(dec("1000")),
		"cancelar vía transición de estado también devuelve el stock")
}

func TestUpdateOrderStatus_EstadoFueraDeVocabulario(t *testing.T) {
	f := buildOrderFixture(t)
	created := f.createOrder(t, dto.OrderLineInput{ProductID: "pan", Quantity: 1})
	_, err := f.uc.UpdateOrderStatus(context.Background(), created.ID, testActor, "shipped")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ── UpdateOrder (edición de líneas) ───────────────────────────────────────────

func TestUpdateOrder_ReemplazaLineasConservandoPrecioCongelado(t *testing.T) {
	f := buildOrderFixture(t)
	created := f.createOrder(t, dto.OrderLineInput{ProductID: "pan", Quantity: 2})
	ctx := context.Background()

	// El precio del pan sube después de crear la orden.
	pan, err := f.products.GetByID("pan")
	require.NoError(t, err)
	pan.SellingPrice = dec("99999")
	require.NoError(t, f.products.Update(pan))

	lines := []dto.OrderLineInput{
		{ProductID: "pan", Quantity: 1},
		{ProductID: "croissant", Quantity: 1},
	}
	resp, err := f.uc.UpdateOrder(ctx, created.ID, testActor, dto.UpdateOrderRequest{Lines: &lines})

	require.NoError(t, err)
	require.Len(t, resp.Items, 2)
	assert.True(t, resp.Items[0].UnitPrice.Equal(dec("12000")),
		"el producto ya presente conserva su precio congelado")
	assert.True(t, resp.Items[1].UnitPrice.Equal(dec("15000")),
		"el producto nuevo entra al precio vigente")
	assert.True(t, resp.TotalAmount.Equal(dec("27000")))

	// Stock neto: devolvió 2 panes y descontó 1 pan + 1 croissant.
	assert.True(t, f.stockOf(t, "harina").Equal(dec("840")))
	assert.True(t, f.stockOf(t, "levadura").Equal(dec("98")))
	assert.True(t, f.stockOf(t, "mantequilla").Equal(dec("440")))

	revs, err := f.uc.ListRevisions(ctx, created.ID)
	require.NoError(t, err)
	require.Len(t, revs, 1)
	assert.Equal(t, entity.RevisionUpdateQuantity, revs[0].Type)
	assert.Contains(t, string(revs[0].OldValue), "24000")
	assert.Contains(t, string(revs[0].NewValue), "27000")
}

func TestUpdateOrder_BloqueaIngredientesEnOrdenGlobal(t *testing.T) {
	f := buildOrderFixture(t)
	created := f.createOrder(t, dto.OrderLineInput{ProductID: "pan", Quantity: 2})
	f.ingredients.lockLog = nil

	// La edición toca ingredientes salientes (levadura) y entrantes
	// (mantequilla) además del compartido (harina). Los primeros locks deben
	// cubrir la unión completa en orden ascendente, antes de devolver o
	// descontar nada.
	lines := []dto.OrderLineInput{{ProductID: "croissant", Quantity: 1}}
	_, err := f.uc.UpdateOrder(context.Background(), created.ID, testActor, dto.UpdateOrderRequest{Lines: &lines})

	require.NoError(t, err)
	require.GreaterOrEqual(t, len(f.ingredients.lockLog), 3)
	assert.Equal(t, []string{"harina", "levadura", "mantequilla"}, f.ingredients.lockLog[:3],
		"dos ediciones concurrentes deben pedir los locks en el mismo orden")
}

func TestUpdateOrder_FaltanteRestauraEstadoExacto(t *testing.T) {
	f := buildOrderFixture(t)
	created := f.createOrder(t, dto.OrderLineInput{ProductID: "pan", Quantity: 2})
	movimientosAntes := len(f.movements.entries)

	// 10 croissants piden 600g de mantequilla y solo hay 500g.
	lines := []dto.OrderLineInput{{ProductID: "croissant", Quantity: 10}}
	_, err := f.uc.UpdateOrder(context.Background(), created.ID, testActor, dto.UpdateOrderRequest{Lines: &lines})

	var insufficient *domain.InsufficientStockError
	require.True(t, errors.As(err, &insufficient))
	require.Len(t, insufficient.Shortages, 1)
	assert.Equal(t, "mantequilla", insufficient.Shortages[0].IngredientID)

	// El rollback restaura líneas, stock y libro tal como estaban.
	got, err := f.uc.GetOrder(context.Background(), created.ID)
	require.NoError(t, err)
	require.Len(t, got.Items, 1)
	assert.Equal(t, "pan", got.Items[0].ProductID)
	assert.Equal(t, 2, got.Items[0].Quantity)
	assert.True(t, f.stockOf(t, "harina").Equal(dec("880")))
	assert.True(t, f.stockOf(t, "mantequilla").Equal(dec("500")))
	assert.Len(t, f.movements.entries, movimientosAntes,
		"ni la devolución intermedia ni la deducción fallida dejan asientos")
}

func TestUpdateOrder_SoloNotas(t *testing.T) {
	f := buildOrderFixture(t)
	created := f.createOrder(t, dto.OrderLineInput{ProductID: "pan", Quantity: 1})
	movimientosAntes := len(f.movements.entries)

	notas := "sin azúcar espolvoreada"
	resp, err := f.uc.UpdateOrder(context.Background(), created.ID, testActor, dto.UpdateOrderRequest{Notes: &notas})

	require.NoError(t, err)
	assert.Equal(t, notas, resp.Notes)
	require.Len(t, resp.Items, 1)
	assert.Len(t, f.movements.entries, movimientosAntes, "editar notas no toca el stock")

	revs, err := f.uc.ListRevisions(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Empty(t, revs, "las notas están fuera del vocabulario de revisiones")
}

func TestUpdateOrder_OrdenTerminal(t *testing.T) {
	f := buildOrderFixture(t)
	created := f.createOrder(t, dto.OrderLineInput{ProductID: "pan", Quantity: 1})
	_, err := f.uc.CancelOrder(context.Background(), created.ID, testActor, "")
	require.NoError(t, err)

	notas := "tarde"
	_, err = f.uc.UpdateOrder(context.Background(), created.ID, testActor, dto.UpdateOrderRequest{Notes: &notas})
	assert.ErrorIs(t, err, domain.ErrOrderTerminal)
}

func TestUpdateOrder_SinCambios(t *testing.T) {
	f := buildOrderFixture(t)
	created := f.createOrder(t, dto.OrderLineInput{ProductID: "pan", Quantity: 1})
	_, err := f.uc.UpdateOrder(context.Background(), created.ID, testActor, dto.UpdateOrderRequest{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ── AddOrderItem / RemoveOrderItem ────────────────────────────────────────────

func TestAddOrderItem_AgregaYAudita(t *testing.T) {
	f := buildOrderFixture(t)
	created := f.createOrder(t, dto.OrderLineInput{ProductID: "pan", Quantity: 1})
	ctx := context.Background()

	resp, err := f.uc.AddOrderItem(ctx, created.ID, testActor, dto.OrderItemRequest{ProductID: "cafe", Quantity: 2})

	require.NoError(t, err)
	require.Len(t, resp.Items, 2)
	assert.True(t, resp.TotalAmount.Equal(dec("24000")), "12000 + 2×6000")

	revs, err := f.uc.ListRevisions(ctx, created.ID)
	require.NoError(t, err)
	require.Len(t, revs, 2, "revisión add_item más el snapshot de líneas")
	assert.Equal(t, entity.RevisionAddItem, revs[0].Type)
	assert.Equal(t, entity.RevisionUpdateQuantity, revs[1].Type)
}

func TestAddOrderItem_AcumulaProductoExistente(t *testing.T) {
	f := buildOrderFixture(t)
	created := f.createOrder(t, dto.OrderLineInput{ProductID: "pan", Quantity: 1})

	resp, err := f.uc.AddOrderItem(context.Background(), created.ID, testActor, dto.OrderItemRequest{ProductID: "pan", Quantity: 2})

	require.NoError(t, err)
	require.Len(t, resp.Items, 1)
	assert.Equal(t, 3, resp.Items[0].Quantity)
	assert.True(t, f.stockOf(t, "harina").Equal(dec("820")), "el stock refleja las 3 unidades")
}

func TestRemoveOrderItem_Quita(t *testing.T) {
	f := buildOrderFixture(t)
	created := f.createOrder(t,
		dto.OrderLineInput{ProductID: "pan", Quantity: 2},
		dto.OrderLineInput{ProductID: "cafe", Quantity: 1},
	)

	resp, err := f.uc.RemoveOrderItem(context.Background(), created.ID, testActor, "cafe")

	require.NoError(t, err)
	require.Len(t, resp.Items, 1)
	assert.Equal(t, "pan", resp.Items[0].ProductID)
	assert.True(t, resp.TotalAmount.Equal(dec("24000")))
}

func TestRemoveOrderItem_UltimaLineaNoSeQuita(t *testing.T) {
	f := buildOrderFixture(t)
	created := f.createOrder(t, dto.OrderLineInput{ProductID: "pan", Quantity: 1})

	_, err := f.uc.RemoveOrderItem(context.Background(), created.ID, testActor, "pan")
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "para vaciar la orden está la cancelación")
}

func TestRemoveOrderItem_ProductoNoPresente(t *testing.T) {
	f := buildOrderFixture(t)
	created := f.createOrder(t, dto.OrderLineInput{ProductID: "pan", Quantity: 1})

	_, err := f.uc.RemoveOrderItem(context.Background(), created.ID, testActor, "croissant")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ── Consultas ─────────────────────────────────────────────────────────────────

func TestListOrders_FiltraPorEstado(t *testing.T) {
	f := buildOrderFixture(t)
	first := f.createOrder(t, dto.OrderLineInput{ProductID: "pan", Quantity: 1})
	f.createOrder(t, dto.OrderLineInput{ProductID: "cafe", Quantity: 1})
	ctx := context.Background()

	_, err := f.uc.CancelOrder(ctx, first.ID, testActor, "")
	require.NoError(t, err)

	cancelled, err := f.uc.ListOrders(ctx, entity.OrderStatusCancelled, 50, 0)
	require.NoError(t, err)
	require.Len(t, cancelled, 1)
	assert.Equal(t, first.ID, cancelled[0].ID)

	all, err := f.uc.ListOrders(ctx, "", 50, 0)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	_, err = f.uc.ListOrders(ctx, "shipped", 50, 0)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestGetOrder_Inexistente(t *testing.T) {
	f := buildOrderFixture(t)
	_, err := f.uc.GetOrder(context.Background(), "fantasma")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestListRevisions_OrdenInexistente(t *testing.T) {
	f := buildOrderFixture(t)
	_, err := f.uc.ListRevisions(context.Background(), "fantasma")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
