package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/panaderia-pos/internal/application/chatbot"
	"github.com/tu-usuario/panaderia-pos/internal/application/dto"
)

// ChatbotHandler canal de chatbot: menú, disponibilidad y confirmación de orden.
type ChatbotHandler struct {
	uc *chatbot.UseCase
}

// NewChatbotHandler construye el handler.
func NewChatbotHandler(uc *chatbot.UseCase) *ChatbotHandler {
	return &ChatbotHandler{uc: uc}
}

// Menu godoc
// @Summary      Menú para el chatbot
// @Tags         chatbot
// @Produce      json
// @Success      200  {array}  dto.ChatbotMenuItem
// @Router       /api/chatbot/menu [get]
func (h *ChatbotHandler) Menu(c *fiber.Ctx) error {
	out, err := h.uc.Menu(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// CheckAvailability godoc
// @Summary      Disponibilidad por producto
// @Description  Responde por producto si la cantidad pedida es producible, con un mensaje listo para el cliente.
// @Tags         chatbot
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ChatbotAvailabilityRequest  true  "Líneas del carrito"
// @Success      200   {object}  dto.ChatbotAvailabilityResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/chatbot/check-availability [post]
func (h *ChatbotHandler) CheckAvailability(c *fiber.Ctx) error {
	var in dto.ChatbotAvailabilityRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.CheckAvailability(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ConfirmOrder godoc
// @Summary      Confirmar orden desde el chatbot
// @Tags         chatbot
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ChatbotConfirmOrderRequest  true  "customer_id, lines, notes"
// @Success      201   {object}  dto.OrderResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/chatbot/confirm-order [post]
func (h *ChatbotHandler) ConfirmOrder(c *fiber.Ctx) error {
	var in dto.ChatbotConfirmOrderRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.ConfirmOrder(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}
