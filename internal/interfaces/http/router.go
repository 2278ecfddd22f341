package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/panaderia-pos/internal/application/auth"
	"github.com/tu-usuario/panaderia-pos/internal/application/catalog"
	"github.com/tu-usuario/panaderia-pos/internal/application/chatbot"
	"github.com/tu-usuario/panaderia-pos/internal/application/costing"
	"github.com/tu-usuario/panaderia-pos/internal/application/orders"
	"github.com/tu-usuario/panaderia-pos/internal/application/receipts"
	"github.com/tu-usuario/panaderia-pos/internal/application/stock"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC       *auth.UseCase
	IngredientUC *catalog.IngredientUseCase
	ProductUC    *catalog.ProductUseCase
	CostingUC    *costing.UseCase
	StockUC      *stock.UseCase
	OrderUC      *orders.UseCase
	ReceiptUC    *receipts.PDFUseCase
	ChatbotUC    *chatbot.UseCase
	JWTSecret    string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Chatbot (público: el canal externo no porta token de usuario)
	chatbotGroup := api.Group("/chatbot")
	chatbotHandler := NewChatbotHandler(deps.ChatbotUC)
	chatbotGroup.Get("/menu", chatbotHandler.Menu)
	chatbotGroup.Post("/check-availability", chatbotHandler.CheckAvailability)
	chatbotGroup.Post("/confirm-order", chatbotHandler.ConfirmOrder)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Ingredients (protegido)
	ingredients := protected.Group("/ingredients")
	ingredientHandler := NewIngredientHandler(deps.IngredientUC, deps.StockUC)
	ingredients.Post("/", ingredientHandler.Create)
	ingredients.Get("/", ingredientHandler.List)
	ingredients.Get("/low-stock", ingredientHandler.ListLowStock)
	ingredients.Get("/:id", ingredientHandler.GetByID)
	ingredients.Put("/:id", ingredientHandler.Update)
	ingredients.Delete("/:id", ingredientHandler.Delete)
	ingredients.Post("/:id/adjust-stock", ingredientHandler.AdjustStock)
	ingredients.Get("/:id/movements", ingredientHandler.ListMovements)

	// Products + recetas (protegido)
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC, deps.CostingUC, deps.StockUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)
	products.Put("/:id/recipe", productHandler.SetRecipe)
	products.Get("/:id/recipe", productHandler.GetRecipe)
	products.Get("/:id/cost", productHandler.GetCost)
	products.Get("/:id/max-orderable", productHandler.GetMaxOrderable)

	// Stock (protegido)
	stockGroup := protected.Group("/stock")
	stockHandler := NewStockHandler(deps.StockUC)
	stockGroup.Post("/check", stockHandler.Check)

	// Orders (protegido)
	ordersGroup := protected.Group("/orders")
	orderHandler := NewOrderHandler(deps.OrderUC, deps.ReceiptUC)
	ordersGroup.Post("/", orderHandler.Create)
	ordersGroup.Get("/", orderHandler.List)
	ordersGroup.Get("/:id", orderHandler.GetByID)
	ordersGroup.Put("/:id", orderHandler.Update)
	ordersGroup.Patch("/:id/status", orderHandler.UpdateStatus)
	ordersGroup.Post("/:id/cancel", orderHandler.Cancel)
	ordersGroup.Post("/:id/items", orderHandler.AddItem)
	ordersGroup.Delete("/:id/items/:productId", orderHandler.RemoveItem)
	ordersGroup.Get("/:id/revisions", orderHandler.ListRevisions)
	ordersGroup.Get("/:id/receipt", orderHandler.DownloadReceipt)
}
