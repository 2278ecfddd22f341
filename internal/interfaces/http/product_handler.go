package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/panaderia-pos/internal/application/catalog"
	"github.com/tu-usuario/panaderia-pos/internal/application/costing"
	"github.com/tu-usuario/panaderia-pos/internal/application/dto"
	"github.com/tu-usuario/panaderia-pos/internal/application/stock"
)

// ProductHandler maneja las peticiones HTTP de productos y recetas (protegido).
type ProductHandler struct {
	uc        *catalog.ProductUseCase
	costingUC *costing.UseCase
	stockUC   *stock.UseCase
}

// NewProductHandler construye el handler.
func NewProductHandler(uc *catalog.ProductUseCase, costingUC *costing.UseCase, stockUC *stock.UseCase) *ProductHandler {
	return &ProductHandler{uc: uc, costingUC: costingUC, stockUC: stockUC}
}

// Create godoc
// @Summary      Crear producto
// @Tags         products
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateProductRequest  true  "Datos del producto"
// @Success      201   {object}  dto.ProductResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/products [post]
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener producto por ID
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del producto"
// @Success      200  {object}  dto.ProductResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{id} [get]
func (h *ProductHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.Get(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar productos
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Param        available  query  bool  false  "Solo productos disponibles"
// @Param        limit      query  int   false  "Límite"   default(50)
// @Param        offset     query  int   false  "Offset"   default(0)
// @Success      200        {array}  dto.ProductResponse
// @Router       /api/products [get]
func (h *ProductHandler) List(c *fiber.Ctx) error {
	onlyAvailable := c.QueryBool("available", false)
	limit := c.QueryInt("limit", 50)
	offset := c.QueryInt("offset", 0)
	if offset < 0 {
		offset = 0
	}
	out, err := h.uc.List(c.Context(), onlyAvailable, limit, offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar producto
// @Description  Un cambio de precio de venta afecta solo órdenes futuras; las líneas existentes conservan su precio congelado.
// @Tags         products
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del producto"
// @Param        body  body  dto.UpdateProductRequest  true  "Datos a actualizar"
// @Success      200   {object}  dto.ProductResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/products/{id} [put]
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.Context(), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Borrar producto
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del producto"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{id} [delete]
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "producto eliminado"})
}

// SetRecipe godoc
// @Summary      Definir receta del producto
// @Description  Reemplaza la receta completa y recalcula el costo del producto.
// @Tags         products
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del producto"
// @Param        body  body  dto.SetRecipeRequest  true  "Entradas de receta"
// @Success      200   {object}  dto.ProductCostResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/products/{id}/recipe [put]
func (h *ProductHandler) SetRecipe(c *fiber.Ctx) error {
	var in dto.SetRecipeRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.SetRecipe(c.Context(), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetRecipe godoc
// @Summary      Receta del producto
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del producto"
// @Success      200  {array}  dto.RecipeEntryResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{id}/recipe [get]
func (h *ProductHandler) GetRecipe(c *fiber.Ctx) error {
	out, err := h.uc.GetRecipe(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetCost godoc
// @Summary      Costo calculado del producto
// @Description  Σ(cantidad de receta × precio de ingrediente), con desglose.
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del producto"
// @Success      200  {object}  dto.ProductCostResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{id}/cost [get]
func (h *ProductHandler) GetCost(c *fiber.Ctx) error {
	out, err := h.costingUC.CalculateProductCost(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetMaxOrderable godoc
// @Summary      Cantidad máxima producible del producto
// @Description  Capacidad con el stock actual; producto sin receta → sin límite.
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del producto"
// @Success      200  {object}  dto.MaxOrderableResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{id}/max-orderable [get]
func (h *ProductHandler) GetMaxOrderable(c *fiber.Ctx) error {
	out, err := h.stockUC.GetMaxOrderableQuantity(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
