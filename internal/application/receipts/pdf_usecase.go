package receipts

import (
	"context"
	"fmt"

	"github.com/tu-usuario/panaderia-pos/internal/domain"
	"github.com/tu-usuario/panaderia-pos/internal/domain/entity"
	"github.com/tu-usuario/panaderia-pos/internal/domain/repository"
)

// ShopInfo datos del local impresos en el encabezado del recibo.
type ShopInfo struct {
	Name    string
	Address string
	Phone   string
}

// ReceiptLineForPDF línea de la orden enriquecida con el nombre del producto.
type ReceiptLineForPDF struct {
	entity.OrderItem
	ProductName string
}

// ReceiptPDFGenerator contrato del generador de recibos.
type ReceiptPDFGenerator interface {
	GenerateReceiptPDF(ctx context.Context, order *entity.Order, shop ShopInfo, lines []ReceiptLineForPDF) ([]byte, error)
}

// PDFUseCase genera el recibo (PDF) de una orden de venta.
type PDFUseCase struct {
	orderRepo   repository.OrderRepository
	productRepo repository.ProductRepository
	generator   ReceiptPDFGenerator
	shop        ShopInfo
}

// NewPDFUseCase construye el caso de uso inyectando sus dependencias.
func NewPDFUseCase(
	orderRepo repository.OrderRepository,
	productRepo repository.ProductRepository,
	generator ReceiptPDFGenerator,
	shop ShopInfo,
) *PDFUseCase {
	return &PDFUseCase{
		orderRepo:   orderRepo,
		productRepo: productRepo,
		generator:   generator,
		shop:        shop,
	}
}

// DownloadReceiptPDF recupera la orden con sus líneas, las enriquece con el
// nombre de producto y genera el recibo.
//
// Retorna:
//   - (pdfBytes, filename, nil)  si todo sale bien.
//   - domain.ErrNotFound         si la orden no existe.
//   - domain.ErrInvalidInput     si la orden está cancelada.
func (uc *PDFUseCase) DownloadReceiptPDF(ctx context.Context, orderID string) (pdfBytes []byte, filename string, err error) {
	order, err := uc.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, "", fmt.Errorf("recibo: obtener orden: %w", err)
	}
	if order == nil {
		return nil, "", domain.ErrNotFound
	}
	if order.Status == entity.OrderStatusCancelled {
		return nil, "", fmt.Errorf("%w: la orden está cancelada, no admite recibo", domain.ErrInvalidInput)
	}

	ids := make([]string, 0, len(order.Items))
	for _, it := range order.Items {
		ids = append(ids, it.ProductID)
	}
	products, err := uc.productRepo.GetByIDs(ids)
	if err != nil {
		return nil, "", fmt.Errorf("recibo: obtener productos: %w", err)
	}

	lines := make([]ReceiptLineForPDF, 0, len(order.Items))
	for _, it := range order.Items {
		name := "Producto " + it.ProductID // fallback
		if product, ok := products[it.ProductID]; ok && product != nil {
			name = product.Name
		}
		lines = append(lines, ReceiptLineForPDF{OrderItem: it, ProductName: name})
	}

	pdfBytes, err = uc.generator.GenerateReceiptPDF(ctx, order, uc.shop, lines)
	if err != nil {
		return nil, "", fmt.Errorf("recibo: generación fallida: %w", err)
	}

	filename = fmt.Sprintf("recibo_%s.pdf", order.OrderNumber)
	return pdfBytes, filename, nil
}
