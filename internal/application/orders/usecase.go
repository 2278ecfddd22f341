package orders

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/panaderia-pos/internal/application/dto"
	"github.com/tu-usuario/panaderia-pos/internal/domain"
	"github.com/tu-usuario/panaderia-pos/internal/domain/entity"
	domorder "github.com/tu-usuario/panaderia-pos/internal/domain/order"
	"github.com/tu-usuario/panaderia-pos/internal/domain/repository"
	domstock "github.com/tu-usuario/panaderia-pos/internal/domain/stock"
	"github.com/tu-usuario/panaderia-pos/pkg/logger"
)

// UseCase orquestador del ciclo de vida de órdenes: creación (con precios
// congelados y deducción de stock), ediciones, transiciones de estado y
// cancelación, dejando una revisión de auditoría por cada mutación.
type UseCase struct {
	txRunner    OrderTxRunner
	stockSvc    StockService
	orderRepo   repository.OrderRepository
	revRepo     repository.OrderRevisionRepository
	productRepo repository.ProductRepository
	log         *logger.Logger
}

// NewUseCase construye el caso de uso de órdenes.
func NewUseCase(
	txRunner OrderTxRunner,
	stockSvc StockService,
	orderRepo repository.OrderRepository,
	revRepo repository.OrderRevisionRepository,
	productRepo repository.ProductRepository,
	log *logger.Logger,
) *UseCase {
	return &UseCase{
		txRunner:    txRunner,
		stockSvc:    stockSvc,
		orderRepo:   orderRepo,
		revRepo:     revRepo,
		productRepo: productRepo,
		log:         log,
	}
}

// lineSnapshot snapshot estructurado de líneas para las revisiones.
type lineSnapshot struct {
	Items       []dto.OrderLineResponse `json:"items"`
	TotalAmount decimal.Decimal         `json:"total_amount"`
}

func snapshotOf(items []entity.OrderItem, total decimal.Decimal) json.RawMessage {
	snap := lineSnapshot{TotalAmount: total, Items: make([]dto.OrderLineResponse, 0, len(items))}
	for _, it := range items {
		snap.Items = append(snap.Items, toLineResponse(it))
	}
	raw, _ := json.Marshal(snap)
	return raw
}

// CreateOrder crea una orden: valida productos, congela precios de línea,
// verifica suficiencia de stock (fail fast, con faltantes detallados) y en una
// sola transacción genera el número de orden, persiste orden y líneas y
// descuenta el stock. Si la deducción falla no queda orden persistida.
func (uc *UseCase) CreateOrder(ctx context.Context, actorID string, in dto.CreateOrderRequest) (*dto.OrderResponse, error) {
	lines := mergeLines(in.Lines)
	if len(lines) == 0 {
		return nil, domain.ErrInvalidInput
	}
	stockLines, err := uc.toStockLines(lines)
	if err != nil {
		return nil, err
	}

	products, err := uc.resolveProducts(lines)
	if err != nil {
		return nil, err
	}

	// Verificación previa sin bloqueos: responde rápido con faltantes precisos
	// antes de tocar la base. La deducción re-verifica bajo locks igualmente.
	check, err := uc.stockSvc.CheckOrderStock(ctx, stockLines)
	if err != nil {
		return nil, err
	}
	if !check.CanFulfill {
		return nil, &domain.InsufficientStockError{Shortages: check.Shortages}
	}

	reqs, err := uc.stockSvc.AggregateForLines(stockLines)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	order := &entity.Order{
		ID:         uuid.New().String(),
		CustomerID: in.CustomerID,
		Status:     entity.OrderStatusPending,
		Notes:      in.Notes,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	total := decimal.Zero
	for _, line := range lines {
		product := products[line.ProductID]
		unitPrice := product.SellingPrice // precio congelado al crear
		subtotal := unitPrice.Mul(decimal.NewFromInt(int64(line.Quantity)))
		order.Items = append(order.Items, entity.OrderItem{
			ID:        uuid.New().String(),
			OrderID:   order.ID,
			ProductID: line.ProductID,
			Quantity:  line.Quantity,
			UnitPrice: unitPrice,
			Subtotal:  subtotal,
		})
		total = total.Add(subtotal)
	}
	order.TotalAmount = total

	err = uc.txRunner.RunOrder(ctx, func(
		orderRepo repository.OrderRepository,
		_ repository.OrderRevisionRepository,
		counterRepo repository.OrderCounterRepository,
		ingredientRepo repository.IngredientRepository,
		movementRepo repository.StockMovementRepository,
	) error {
		seq, err := counterRepo.Next(now)
		if err != nil {
			return err
		}
		order.OrderNumber = fmt.Sprintf("ORD-%s-%03d", now.Format("20060102"), seq)
		if err := orderRepo.Create(order); err != nil {
			return err
		}
		_, err = uc.stockSvc.DeductInTx(ingredientRepo, movementRepo, order.ID, reqs,
			"consumo de orden "+order.OrderNumber, now)
		return err
	})
	if err != nil {
		return nil, err
	}

	uc.log.Info().
		Str("order_id", order.ID).
		Str("order_number", order.OrderNumber).
		Str("actor_id", actorID).
		Str("total", order.TotalAmount.String()).
		Msg("orden creada")
	return toOrderResponse(order), nil
}

// UpdateOrder edita notas y/o líneas de una orden no terminal. El cambio de
// líneas ocurre en una transacción: devuelve el stock de las líneas actuales,
// valida y descuenta las nuevas; si falta stock, el rollback restaura el
// estado exacto previo a la llamada (incluidos los asientos del libro).
// Registra una revisión update_quantity con snapshots old/new.
func (uc *UseCase) UpdateOrder(ctx context.Context, orderID, actorID string, in dto.UpdateOrderRequest) (*dto.OrderResponse, error) {
	if in.Lines == nil && in.Notes == nil {
		return nil, domain.ErrInvalidInput
	}
	var updated *entity.Order
	err := uc.txRunner.RunOrder(ctx, func(
		orderRepo repository.OrderRepository,
		revisionRepo repository.OrderRevisionRepository,
		_ repository.OrderCounterRepository,
		ingredientRepo repository.IngredientRepository,
		movementRepo repository.StockMovementRepository,
	) error {
		order, err := lockMutableOrder(orderRepo, orderID)
		if err != nil {
			return err
		}
		now := time.Now()
		if in.Notes != nil {
			// Las notas quedan fuera del historial: el vocabulario de
			// revisiones cubre líneas y estado, no texto libre.
			order.Notes = *in.Notes
		}
		if in.Lines != nil {
			if err := uc.replaceLinesLocked(orderRepo, revisionRepo, ingredientRepo, movementRepo,
				order, mergeLines(*in.Lines), actorID, nil, now); err != nil {
				return err
			}
		}
		order.UpdatedAt = now
		if err := orderRepo.Update(order); err != nil {
			return err
		}
		updated = order
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toOrderResponse(updated), nil
}

// AddOrderItem agrega (o acumula) un producto a la orden y delega en la
// edición de líneas. Registra una revisión add_item además del snapshot.
func (uc *UseCase) AddOrderItem(ctx context.Context, orderID, actorID string, in dto.OrderItemRequest) (*dto.OrderResponse, error) {
	if in.ProductID == "" || in.Quantity <= 0 {
		return nil, domain.ErrInvalidInput
	}
	return uc.mutateItems(ctx, orderID, actorID, entity.RevisionAddItem, in,
		func(current []dto.OrderLineInput) ([]dto.OrderLineInput, error) {
			return mergeLines(append(current, dto.OrderLineInput{ProductID: in.ProductID, Quantity: in.Quantity})), nil
		})
}

// RemoveOrderItem quita un producto de la orden. La orden debe conservar al
// menos una línea; para vaciarla está la cancelación.
func (uc *UseCase) RemoveOrderItem(ctx context.Context, orderID, actorID, productID string) (*dto.OrderResponse, error) {
	if productID == "" {
		return nil, domain.ErrInvalidInput
	}
	return uc.mutateItems(ctx, orderID, actorID, entity.RevisionRemoveItem,
		dto.OrderItemRequest{ProductID: productID},
		func(current []dto.OrderLineInput) ([]dto.OrderLineInput, error) {
			next := make([]dto.OrderLineInput, 0, len(current))
			found := false
			for _, line := range current {
				if line.ProductID == productID {
					found = true
					continue
				}
				next = append(next, line)
			}
			if !found {
				return nil, domain.ErrNotFound
			}
			if len(next) == 0 {
				return nil, domain.ErrInvalidInput
			}
			return next, nil
		})
}

func (uc *UseCase) mutateItems(
	ctx context.Context,
	orderID, actorID, revisionType string,
	payload dto.OrderItemRequest,
	mutate func(current []dto.OrderLineInput) ([]dto.OrderLineInput, error),
) (*dto.OrderResponse, error) {
	var updated *entity.Order
	err := uc.txRunner.RunOrder(ctx, func(
		orderRepo repository.OrderRepository,
		revisionRepo repository.OrderRevisionRepository,
		_ repository.OrderCounterRepository,
		ingredientRepo repository.IngredientRepository,
		movementRepo repository.StockMovementRepository,
	) error {
		order, err := lockMutableOrder(orderRepo, orderID)
		if err != nil {
			return err
		}
		current := make([]dto.OrderLineInput, 0, len(order.Items))
		for _, it := range order.Items {
			current = append(current, dto.OrderLineInput{ProductID: it.ProductID, Quantity: it.Quantity})
		}
		next, err := mutate(current)
		if err != nil {
			return err
		}
		now := time.Now()
		raw, _ := json.Marshal(payload)
		itemRevision := &entity.OrderRevision{
			ID:        uuid.New().String(),
			OrderID:   order.ID,
			Type:      revisionType,
			NewValue:  raw,
			ActorID:   actorID,
			CreatedAt: now,
		}
		if err := uc.replaceLinesLocked(orderRepo, revisionRepo, ingredientRepo, movementRepo,
			order, next, actorID, itemRevision, now); err != nil {
			return err
		}
		order.UpdatedAt = now
		if err := orderRepo.Update(order); err != nil {
			return err
		}
		updated = order
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toOrderResponse(updated), nil
}

// replaceLinesLocked núcleo de la edición de líneas; requiere la orden ya
// bloqueada. Devuelve stock viejo (referencia order_edit → ID de la revisión),
// arma las líneas nuevas manteniendo el precio congelado de las existentes y
// tomando el precio actual solo para productos nuevos, descuenta y persiste.
func (uc *UseCase) replaceLinesLocked(
	orderRepo repository.OrderRepository,
	revisionRepo repository.OrderRevisionRepository,
	ingredientRepo repository.IngredientRepository,
	movementRepo repository.StockMovementRepository,
	order *entity.Order,
	newLines []dto.OrderLineInput,
	actorID string,
	itemRevision *entity.OrderRevision,
	now time.Time,
) error {
	if len(newLines) == 0 {
		return domain.ErrInvalidInput
	}
	oldItems := order.Items
	oldTotal := order.TotalAmount
	oldSnapshot := snapshotOf(oldItems, oldTotal)

	revisionID := uuid.New().String()

	oldStockLines := make([]domstock.Line, 0, len(oldItems))
	for _, it := range oldItems {
		oldStockLines = append(oldStockLines, domstock.Line{ProductID: it.ProductID, Quantity: it.Quantity})
	}
	oldReqs, err := uc.stockSvc.AggregateForLines(oldStockLines)
	if err != nil {
		return err
	}
	newStockLines := make([]domstock.Line, 0, len(newLines))
	for _, line := range newLines {
		newStockLines = append(newStockLines, domstock.Line{ProductID: line.ProductID, Quantity: line.Quantity})
	}
	newReqs, err := uc.stockSvc.AggregateForLines(newStockLines)
	if err != nil {
		return err
	}

	// 1) Bloquear la unión de ingredientes viejos y nuevos en un solo pase
	// ordenado: devolver primero y descontar después tomaría dos secuencias
	// ordenadas por separado, cuya concatenación no lo está (riesgo de
	// deadlock entre ediciones concurrentes).
	if err := lockRequirementRows(ingredientRepo, oldReqs, newReqs); err != nil {
		return err
	}

	// 2) Devolver el stock consumido por las líneas actuales.
	if _, err := uc.stockSvc.ReturnInTx(ingredientRepo, movementRepo,
		entity.ReferenceOrderEdit, revisionID, oldReqs,
		"edición de orden "+order.OrderNumber, now); err != nil {
		return err
	}

	// 3) Armar líneas nuevas: precio congelado para productos ya presentes.
	frozen := make(map[string]decimal.Decimal, len(oldItems))
	for _, it := range oldItems {
		frozen[it.ProductID] = it.UnitPrice
	}
	products, err := uc.resolveProducts(newLines)
	if err != nil {
		return err
	}
	items := make([]entity.OrderItem, 0, len(newLines))
	total := decimal.Zero
	for _, line := range newLines {
		unitPrice, ok := frozen[line.ProductID]
		if !ok {
			unitPrice = products[line.ProductID].SellingPrice
		}
		subtotal := unitPrice.Mul(decimal.NewFromInt(int64(line.Quantity)))
		items = append(items, entity.OrderItem{
			ID:        uuid.New().String(),
			OrderID:   order.ID,
			ProductID: line.ProductID,
			Quantity:  line.Quantity,
			UnitPrice: unitPrice,
			Subtotal:  subtotal,
		})
		total = total.Add(subtotal)
	}

	// 4) Verificar y descontar las líneas nuevas. Un faltante aborta la
	// transacción y el rollback restaura el estado previo.
	if _, err := uc.stockSvc.DeductInTx(ingredientRepo, movementRepo, order.ID, newReqs,
		"edición de orden "+order.OrderNumber, now); err != nil {
		return err
	}

	if err := orderRepo.ReplaceItems(order.ID, items); err != nil {
		return err
	}
	order.Items = items
	order.TotalAmount = total

	if itemRevision != nil {
		if err := revisionRepo.Create(itemRevision); err != nil {
			return err
		}
	}
	revision := &entity.OrderRevision{
		ID:        revisionID,
		OrderID:   order.ID,
		Type:      entity.RevisionUpdateQuantity,
		OldValue:  oldSnapshot,
		NewValue:  snapshotOf(items, total),
		ActorID:   actorID,
		CreatedAt: now,
	}
	return revisionRepo.Create(revision)
}

// lockRequirementRows toma los locks de fila de todos los ingredientes de los
// conjuntos dados, deduplicados y en orden ascendente de ID. Los bloqueos
// posteriores dentro de la misma transacción ya no pueden encontrarse con
// otra transacción en orden inverso.
func lockRequirementRows(ingredientRepo repository.IngredientRepository, reqSets ...[]domstock.Requirement) error {
	seen := map[string]struct{}{}
	ids := make([]string, 0)
	for _, reqs := range reqSets {
		for _, req := range reqs {
			if _, ok := seen[req.IngredientID]; ok {
				continue
			}
			seen[req.IngredientID] = struct{}{}
			ids = append(ids, req.IngredientID)
		}
	}
	sort.Strings(ids)
	for _, id := range ids {
		ing, err := ingredientRepo.GetByIDForUpdate(id)
		if err != nil {
			return err
		}
		if ing == nil {
			return fmt.Errorf("ingrediente %s: %w", id, domain.ErrNotFound)
		}
	}
	return nil
}

// UpdateOrderStatus aplica una transición de la tabla de estados. Una
// transición a cancelled devuelve el stock. Toda transición queda registrada
// como revisión update_status.
func (uc *UseCase) UpdateOrderStatus(ctx context.Context, orderID, actorID, newStatus string) (*dto.OrderResponse, error) {
	if !domorder.IsValidStatus(newStatus) {
		return nil, domain.ErrInvalidInput
	}
	var updated *entity.Order
	err := uc.txRunner.RunOrder(ctx, func(
		orderRepo repository.OrderRepository,
		revisionRepo repository.OrderRevisionRepository,
		_ repository.OrderCounterRepository,
		ingredientRepo repository.IngredientRepository,
		movementRepo repository.StockMovementRepository,
	) error {
		order, err := orderRepo.GetByIDForUpdate(orderID)
		if err != nil {
			return err
		}
		if order == nil {
			return domain.ErrNotFound
		}
		if err := domorder.ValidateTransition(order.Status, newStatus); err != nil {
			return err
		}
		now := time.Now()
		if newStatus == entity.OrderStatusCancelled {
			if err := uc.returnOrderStockLocked(ingredientRepo, movementRepo, order, now); err != nil {
				return err
			}
		}
		oldValue, _ := json.Marshal(map[string]string{"status": order.Status})
		newValue, _ := json.Marshal(map[string]string{"status": newStatus})
		revision := &entity.OrderRevision{
			ID:        uuid.New().String(),
			OrderID:   order.ID,
			Type:      entity.RevisionUpdateStatus,
			OldValue:  oldValue,
			NewValue:  newValue,
			ActorID:   actorID,
			CreatedAt: now,
		}
		if err := revisionRepo.Create(revision); err != nil {
			return err
		}
		order.Status = newStatus
		order.UpdatedAt = now
		if err := orderRepo.Update(order); err != nil {
			return err
		}
		updated = order
		return nil
	})
	if err != nil {
		return nil, err
	}
	uc.log.Info().
		Str("order_id", updated.ID).
		Str("status", updated.Status).
		Str("actor_id", actorID).
		Msg("estado de orden actualizado")
	return toOrderResponse(updated), nil
}

// CancelOrder cancela una orden no terminal: devuelve el stock consumido,
// registra la revisión cancel_order y deja la orden en cancelled. Una segunda
// cancelación de la misma orden recibe ErrOrderTerminal (el bloqueo de la fila
// y la guarda del libro impiden el doble crédito de stock).
func (uc *UseCase) CancelOrder(ctx context.Context, orderID, actorID, reason string) (*dto.OrderResponse, error) {
	var updated *entity.Order
	err := uc.txRunner.RunOrder(ctx, func(
		orderRepo repository.OrderRepository,
		revisionRepo repository.OrderRevisionRepository,
		_ repository.OrderCounterRepository,
		ingredientRepo repository.IngredientRepository,
		movementRepo repository.StockMovementRepository,
	) error {
		order, err := lockMutableOrder(orderRepo, orderID)
		if err != nil {
			return err
		}
		now := time.Now()
		if err := uc.returnOrderStockLocked(ingredientRepo, movementRepo, order, now); err != nil {
			return err
		}
		oldValue, _ := json.Marshal(map[string]string{"status": order.Status})
		newValue, _ := json.Marshal(map[string]string{"status": entity.OrderStatusCancelled, "reason": reason})
		revision := &entity.OrderRevision{
			ID:        uuid.New().String(),
			OrderID:   order.ID,
			Type:      entity.RevisionCancelOrder,
			OldValue:  oldValue,
			NewValue:  newValue,
			ActorID:   actorID,
			CreatedAt: now,
		}
		if err := revisionRepo.Create(revision); err != nil {
			return err
		}
		order.Status = entity.OrderStatusCancelled
		order.UpdatedAt = now
		if err := orderRepo.Update(order); err != nil {
			return err
		}
		updated = order
		return nil
	})
	if err != nil {
		return nil, err
	}
	uc.log.Info().
		Str("order_id", updated.ID).
		Str("actor_id", actorID).
		Msg("orden cancelada")
	return toOrderResponse(updated), nil
}

// returnOrderStockLocked devuelve el stock de las líneas actuales de la orden
// (referencia order_cancel, con guarda de idempotencia en el libro).
func (uc *UseCase) returnOrderStockLocked(
	ingredientRepo repository.IngredientRepository,
	movementRepo repository.StockMovementRepository,
	order *entity.Order,
	now time.Time,
) error {
	lines := make([]domstock.Line, 0, len(order.Items))
	for _, it := range order.Items {
		lines = append(lines, domstock.Line{ProductID: it.ProductID, Quantity: it.Quantity})
	}
	reqs, err := uc.stockSvc.AggregateForLines(lines)
	if err != nil {
		return err
	}
	_, err = uc.stockSvc.ReturnInTx(ingredientRepo, movementRepo,
		entity.ReferenceOrderCancel, order.ID, reqs,
		"cancelación de orden "+order.OrderNumber, now)
	return err
}

// GetOrder obtiene una orden con sus líneas.
func (uc *UseCase) GetOrder(ctx context.Context, orderID string) (*dto.OrderResponse, error) {
	order, err := uc.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	return toOrderResponse(order), nil
}

// ListOrders lista órdenes, opcionalmente filtradas por estado.
func (uc *UseCase) ListOrders(ctx context.Context, status string, limit, offset int) ([]*dto.OrderResponse, error) {
	if status != "" && !domorder.IsValidStatus(status) {
		return nil, domain.ErrInvalidInput
	}
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	orders, err := uc.orderRepo.List(status, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.OrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, toOrderResponse(o))
	}
	return out, nil
}

// ListRevisions historial de auditoría de una orden.
func (uc *UseCase) ListRevisions(ctx context.Context, orderID string) ([]dto.OrderRevisionResponse, error) {
	order, err := uc.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	revisions, err := uc.revRepo.ListByOrder(orderID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.OrderRevisionResponse, 0, len(revisions))
	for _, r := range revisions {
		out = append(out, dto.OrderRevisionResponse{
			ID:        r.ID,
			OrderID:   r.OrderID,
			Type:      r.Type,
			OldValue:  r.OldValue,
			NewValue:  r.NewValue,
			ActorID:   r.ActorID,
			CreatedAt: r.CreatedAt,
		})
	}
	return out, nil
}

// lockMutableOrder bloquea la orden y rechaza estados terminales.
func lockMutableOrder(orderRepo repository.OrderRepository, orderID string) (*entity.Order, error) {
	order, err := orderRepo.GetByIDForUpdate(orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	if order.IsTerminal() {
		return nil, domain.ErrOrderTerminal
	}
	return order, nil
}

// resolveProducts valida existencia y disponibilidad de los productos de las líneas.
func (uc *UseCase) resolveProducts(lines []dto.OrderLineInput) (map[string]*entity.Product, error) {
	ids := make([]string, 0, len(lines))
	for _, line := range lines {
		if line.ProductID == "" || line.Quantity <= 0 {
			return nil, domain.ErrInvalidInput
		}
		ids = append(ids, line.ProductID)
	}
	products, err := uc.productRepo.GetByIDs(ids)
	if err != nil {
		return nil, err
	}
	for _, line := range lines {
		product, ok := products[line.ProductID]
		if !ok {
			return nil, domain.ErrNotFound
		}
		if !product.IsAvailable {
			return nil, domain.ErrProductUnavailable
		}
	}
	return products, nil
}

func (uc *UseCase) toStockLines(lines []dto.OrderLineInput) ([]domstock.Line, error) {
	out := make([]domstock.Line, 0, len(lines))
	for _, line := range lines {
		if line.ProductID == "" || line.Quantity <= 0 {
			return nil, domain.ErrInvalidInput
		}
		out = append(out, domstock.Line{ProductID: line.ProductID, Quantity: line.Quantity})
	}
	return out, nil
}

// mergeLines acumula cantidades de líneas repetidas del mismo producto,
// preservando el orden de aparición.
func mergeLines(lines []dto.OrderLineInput) []dto.OrderLineInput {
	index := make(map[string]int)
	out := make([]dto.OrderLineInput, 0, len(lines))
	for _, line := range lines {
		if i, ok := index[line.ProductID]; ok {
			out[i].Quantity += line.Quantity
			continue
		}
		index[line.ProductID] = len(out)
		out = append(out, line)
	}
	return out
}

func toLineResponse(it entity.OrderItem) dto.OrderLineResponse {
	return dto.OrderLineResponse{
		ID:        it.ID,
		ProductID: it.ProductID,
		Quantity:  it.Quantity,
		UnitPrice: it.UnitPrice,
		Subtotal:  it.Subtotal,
	}
}

func toOrderResponse(order *entity.Order) *dto.OrderResponse {
	resp := &dto.OrderResponse{
		ID:          order.ID,
		OrderNumber: order.OrderNumber,
		CustomerID:  order.CustomerID,
		TotalAmount: order.TotalAmount,
		Status:      order.Status,
		Notes:       order.Notes,
		CreatedAt:   order.CreatedAt,
		UpdatedAt:   order.UpdatedAt,
	}
	for _, it := range order.Items {
		resp.Items = append(resp.Items, toLineResponse(it))
	}
	return resp
}
