package chatbot

import (
	"context"
	"fmt"

	"github.com/tu-usuario/panaderia-pos/internal/application/dto"
	"github.com/tu-usuario/panaderia-pos/internal/application/orders"
	"github.com/tu-usuario/panaderia-pos/internal/application/stock"
	"github.com/tu-usuario/panaderia-pos/internal/domain"
	"github.com/tu-usuario/panaderia-pos/internal/domain/repository"
	domstock "github.com/tu-usuario/panaderia-pos/internal/domain/stock"
)

// ActorID actor registrado en las revisiones de órdenes confirmadas por este canal.
const ActorID = "chatbot"

// UseCase fachada del canal de chatbot: menú, disponibilidad y confirmación.
// Sin estado de sesión ni carrito del lado del servidor.
type UseCase struct {
	productRepo repository.ProductRepository
	stockUC     *stock.UseCase
	ordersUC    *orders.UseCase
}

// NewUseCase construye la fachada.
func NewUseCase(productRepo repository.ProductRepository, stockUC *stock.UseCase, ordersUC *orders.UseCase) *UseCase {
	return &UseCase{productRepo: productRepo, stockUC: stockUC, ordersUC: ordersUC}
}

// Menu productos disponibles con su precio actual.
func (uc *UseCase) Menu(ctx context.Context) ([]dto.ChatbotMenuItem, error) {
	products, err := uc.productRepo.List(true, 200, 0)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ChatbotMenuItem, 0, len(products))
	for _, p := range products {
		out = append(out, dto.ChatbotMenuItem{
			ProductID:   p.ID,
			Name:        p.Name,
			Description: p.Description,
			Price:       p.SellingPrice,
		})
	}
	return out, nil
}

// CheckAvailability responde por producto si la cantidad pedida es producible
// con el stock actual, con un mensaje listo para mostrar al cliente.
func (uc *UseCase) CheckAvailability(ctx context.Context, in dto.ChatbotAvailabilityRequest) (*dto.ChatbotAvailabilityResponse, error) {
	if len(in.Lines) == 0 {
		return nil, domain.ErrInvalidInput
	}
	ids := make([]string, 0, len(in.Lines))
	for _, line := range in.Lines {
		if line.ProductID == "" || line.Quantity <= 0 {
			return nil, domain.ErrInvalidInput
		}
		ids = append(ids, line.ProductID)
	}
	products, err := uc.productRepo.GetByIDs(ids)
	if err != nil {
		return nil, err
	}

	resp := &dto.ChatbotAvailabilityResponse{CanFulfill: true}
	for _, line := range in.Lines {
		product, ok := products[line.ProductID]
		if !ok || !product.IsAvailable {
			resp.CanFulfill = false
			resp.Items = append(resp.Items, dto.ChatbotAvailabilityItem{
				ProductID: line.ProductID,
				Requested: line.Quantity,
				Available: false,
				Message:   "producto no disponible",
			})
			continue
		}
		max, err := uc.stockUC.GetMaxOrderableQuantity(ctx, line.ProductID)
		if err != nil {
			return nil, err
		}
		item := dto.ChatbotAvailabilityItem{
			ProductID:   line.ProductID,
			Name:        product.Name,
			Requested:   line.Quantity,
			MaxQuantity: max.MaxQuantity,
			Available:   max.Unlimited || max.MaxQuantity >= int64(line.Quantity),
		}
		if !item.Available {
			resp.CanFulfill = false
			item.Message = fmt.Sprintf("solo podemos preparar %d de %s en este momento", max.MaxQuantity, product.Name)
		}
		resp.Items = append(resp.Items, item)
	}

	// La disponibilidad por producto no ve ingredientes compartidos entre
	// líneas; la verificación agregada manda sobre el veredicto final.
	if resp.CanFulfill {
		lines := make([]domstock.Line, 0, len(in.Lines))
		for _, l := range in.Lines {
			lines = append(lines, domstock.Line{ProductID: l.ProductID, Quantity: l.Quantity})
		}
		check, err := uc.stockUC.CheckOrderStock(ctx, lines)
		if err != nil {
			return nil, err
		}
		resp.CanFulfill = check.CanFulfill
	}
	return resp, nil
}

// ConfirmOrder confirma el carrito del caller como orden real.
func (uc *UseCase) ConfirmOrder(ctx context.Context, in dto.ChatbotConfirmOrderRequest) (*dto.OrderResponse, error) {
	return uc.ordersUC.CreateOrder(ctx, ActorID, dto.CreateOrderRequest{
		CustomerID: in.CustomerID,
		Lines:      in.Lines,
		Notes:      in.Notes,
	})
}
