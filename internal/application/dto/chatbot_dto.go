package dto

import "github.com/shopspring/decimal"

// ChatbotMenuItem entrada del menú para el canal de chatbot.
type ChatbotMenuItem struct {
	ProductID   string          `json:"product_id"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Price       decimal.Decimal `json:"price"`
}

// ChatbotAvailabilityRequest consulta de disponibilidad por producto.
type ChatbotAvailabilityRequest struct {
	Lines []OrderLineInput `json:"lines"`
}

// ChatbotAvailabilityItem disponibilidad de un producto solicitado.
type ChatbotAvailabilityItem struct {
	ProductID   string `json:"product_id"`
	Name        string `json:"name"`
	Requested   int    `json:"requested"`
	Available   bool   `json:"available"`
	MaxQuantity int64  `json:"max_quantity"`
	// Message texto listo para mostrar al cliente cuando no alcanza.
	Message string `json:"message,omitempty"`
}

// ChatbotAvailabilityResponse resultado agregado de la consulta.
type ChatbotAvailabilityResponse struct {
	CanFulfill bool                      `json:"can_fulfill"`
	Items      []ChatbotAvailabilityItem `json:"items"`
}

// ChatbotConfirmOrderRequest confirmación de orden desde el chatbot.
// El carrito vive del lado del caller; aquí solo llega su contenido final.
type ChatbotConfirmOrderRequest struct {
	CustomerID string           `json:"customer_id"`
	Lines      []OrderLineInput `json:"lines"`
	Notes      string           `json:"notes"`
}
