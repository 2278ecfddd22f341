package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/panaderia-pos/internal/application/dto"
	"github.com/tu-usuario/panaderia-pos/internal/application/stock"
	domstock "github.com/tu-usuario/panaderia-pos/internal/domain/stock"
)

// StockHandler verificación de suficiencia de stock (protegido).
type StockHandler struct {
	uc *stock.UseCase
}

// NewStockHandler construye el handler.
func NewStockHandler(uc *stock.UseCase) *StockHandler {
	return &StockHandler{uc: uc}
}

// Check godoc
// @Summary      Verificar suficiencia de stock
// @Description  Lectura pura: expande las líneas por receta y compara contra el stock. No muta nada.
// @Tags         stock
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CheckStockRequest  true  "Líneas (producto, cantidad)"
// @Success      200   {object}  dto.CheckStockResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/stock/check [post]
func (h *StockHandler) Check(c *fiber.Ctx) error {
	var in dto.CheckStockRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	lines := make([]domstock.Line, 0, len(in.Lines))
	for _, l := range in.Lines {
		lines = append(lines, domstock.Line{ProductID: l.ProductID, Quantity: l.Quantity})
	}
	out, err := h.uc.CheckOrderStock(c.Context(), lines)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
