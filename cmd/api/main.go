package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/tu-usuario/panaderia-pos/internal/application/auth"
	"github.com/tu-usuario/panaderia-pos/internal/application/catalog"
	"github.com/tu-usuario/panaderia-pos/internal/application/chatbot"
	"github.com/tu-usuario/panaderia-pos/internal/application/costing"
	"github.com/tu-usuario/panaderia-pos/internal/application/orders"
	"github.com/tu-usuario/panaderia-pos/internal/application/receipts"
	"github.com/tu-usuario/panaderia-pos/internal/application/stock"
	infrapdf "github.com/tu-usuario/panaderia-pos/internal/infrastructure/pdf"
	"github.com/tu-usuario/panaderia-pos/internal/infrastructure/postgres"
	httpRouter "github.com/tu-usuario/panaderia-pos/internal/interfaces/http"
	"github.com/tu-usuario/panaderia-pos/pkg/config"
	"github.com/tu-usuario/panaderia-pos/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	ingredientRepo := postgres.NewIngredientRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	recipeRepo := postgres.NewRecipeRepository(pool)
	movementRepo := postgres.NewStockMovementRepository(pool)
	orderRepo := postgres.NewOrderRepository(pool)
	revisionRepo := postgres.NewOrderRevisionRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	stockUC := stock.NewUseCase(txRunner, ingredientRepo, productRepo, recipeRepo, movementRepo)
	costingUC := costing.NewUseCase(productRepo, recipeRepo, ingredientRepo, log)
	ingredientUC := catalog.NewIngredientUseCase(ingredientRepo, recipeRepo, costingUC)
	productUC := catalog.NewProductUseCase(productRepo, recipeRepo, ingredientRepo, costingUC)
	orderUC := orders.NewUseCase(txRunner, stockUC, orderRepo, revisionRepo, productRepo, log)
	chatbotUC := chatbot.NewUseCase(productRepo, stockUC, orderUC)

	// PDF: recibo de venta de la orden
	receiptGenerator := infrapdf.NewMarotoReceiptGenerator()
	receiptUC := receipts.NewPDFUseCase(orderRepo, productRepo, receiptGenerator, receipts.ShopInfo{
		Name:    cfg.Shop.Name,
		Address: cfg.Shop.Address,
		Phone:   cfg.Shop.Phone,
	})

	authUC := auth.NewUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Panadería POS API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:       authUC,
		IngredientUC: ingredientUC,
		ProductUC:    productUC,
		CostingUC:    costingUC,
		StockUC:      stockUC,
		OrderUC:      orderUC,
		ReceiptUC:    receiptUC,
		ChatbotUC:    chatbotUC,
		JWTSecret:    cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
