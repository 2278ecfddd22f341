// seed puebla la base con datos de demostración de la panadería:
// un usuario admin, ingredientes con stock inicial, productos y sus recetas.
//
// Uso: go run ./cmd/seed
package main

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/panaderia-pos/internal/application/auth"
	"github.com/tu-usuario/panaderia-pos/internal/application/catalog"
	"github.com/tu-usuario/panaderia-pos/internal/application/costing"
	"github.com/tu-usuario/panaderia-pos/internal/application/dto"
	"github.com/tu-usuario/panaderia-pos/internal/domain/entity"
	"github.com/tu-usuario/panaderia-pos/internal/infrastructure/postgres"
	"github.com/tu-usuario/panaderia-pos/pkg/config"
	"github.com/tu-usuario/panaderia-pos/pkg/logger"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})

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

	costingUC := costing.NewUseCase(productRepo, recipeRepo, ingredientRepo, log)
	ingredientUC := catalog.NewIngredientUseCase(ingredientRepo, recipeRepo, costingUC)
	productUC := catalog.NewProductUseCase(productRepo, recipeRepo, ingredientRepo, costingUC)
	authUC := auth.NewUseCase(userRepo, auth.JWTConfig{Secret: cfg.JWT.Secret, ExpMinutes: cfg.JWT.Expiration, Issuer: cfg.JWT.Issuer})

	if _, err := authUC.Register(dto.RegisterRequest{
		Email:    "admin@panaderia.local",
		Password: "admin12345",
		Name:     "Administrador",
		Role:     entity.RoleAdmin,
	}); err != nil {
		log.Warn().Err(err).Msg("usuario admin no creado (¿ya existe?)")
	}

	// unidad base: gramos para sólidos, unidades para huevos
	ingredients := []dto.CreateIngredientRequest{
		{Name: "Harina de trigo", Unit: "g", StockQuantity: dec("25000"), MinStockThreshold: dec("5000"), UnitPrice: dec("0.012")},
		{Name: "Azúcar", Unit: "g", StockQuantity: dec("10000"), MinStockThreshold: dec("2000"), UnitPrice: dec("0.015")},
		{Name: "Mantequilla", Unit: "g", StockQuantity: dec("8000"), MinStockThreshold: dec("1500"), UnitPrice: dec("0.09")},
		{Name: "Huevos", Unit: "unidad", StockQuantity: dec("300"), MinStockThreshold: dec("60"), UnitPrice: dec("2.5")},
		{Name: "Chocolate", Unit: "g", StockQuantity: dec("5000"), MinStockThreshold: dec("1000"), UnitPrice: dec("0.11")},
		{Name: "Levadura", Unit: "g", StockQuantity: dec("1500"), MinStockThreshold: dec("300"), UnitPrice: dec("0.05")},
		{Name: "Leche", Unit: "ml", StockQuantity: dec("12000"), MinStockThreshold: dec("3000"), UnitPrice: dec("0.018")},
		{Name: "Queso", Unit: "g", StockQuantity: dec("4000"), MinStockThreshold: dec("800"), UnitPrice: dec("0.13")},
	}
	ingredientIDs := make(map[string]string, len(ingredients))
	for _, in := range ingredients {
		out, err := ingredientUC.Create(ctx, in)
		if err != nil {
			log.Warn().Err(err).Str("name", in.Name).Msg("ingrediente no creado (¿ya existe?)")
			continue
		}
		ingredientIDs[in.Name] = out.ID
		log.Info().Str("name", in.Name).Msg("ingrediente creado")
	}

	type seedProduct struct {
		product dto.CreateProductRequest
		recipe  map[string]string // nombre de ingrediente -> cantidad por unidad
	}
	products := []seedProduct{
		{
			product: dto.CreateProductRequest{Name: "Pan de chocolate", Description: "Pan dulce relleno de chocolate", SellingPrice: dec("12000")},
			recipe:  map[string]string{"Harina de trigo": "120", "Azúcar": "30", "Mantequilla": "25", "Chocolate": "40", "Levadura": "4"},
		},
		{
			product: dto.CreateProductRequest{Name: "Croissant", Description: "Hojaldre de mantequilla", SellingPrice: dec("15000")},
			recipe:  map[string]string{"Harina de trigo": "100", "Mantequilla": "60", "Azúcar": "15", "Levadura": "3", "Leche": "40"},
		},
		{
			product: dto.CreateProductRequest{Name: "Pan de queso", Description: "Pan salado con queso fundido", SellingPrice: dec("13000")},
			recipe:  map[string]string{"Harina de trigo": "110", "Queso": "50", "Mantequilla": "20", "Levadura": "4", "Leche": "30"},
		},
		{
			product: dto.CreateProductRequest{Name: "Torta de huevo", Description: "Porción de torta casera", SellingPrice: dec("10000")},
			recipe:  map[string]string{"Harina de trigo": "80", "Azúcar": "50", "Huevos": "2", "Mantequilla": "30", "Leche": "50"},
		},
		{
			// Sin receta: capacidad sin límite hasta que se defina.
			product: dto.CreateProductRequest{Name: "Café", Description: "Café de la casa", SellingPrice: dec("6000")},
		},
	}
	for _, sp := range products {
		out, err := productUC.Create(ctx, sp.product)
		if err != nil {
			log.Warn().Err(err).Str("name", sp.product.Name).Msg("producto no creado (¿ya existe?)")
			continue
		}
		if len(sp.recipe) > 0 {
			items := make([]dto.RecipeEntryInput, 0, len(sp.recipe))
			for name, qty := range sp.recipe {
				id, ok := ingredientIDs[name]
				if !ok {
					continue
				}
				items = append(items, dto.RecipeEntryInput{IngredientID: id, QuantityNeeded: dec(qty)})
			}
			cost, err := productUC.SetRecipe(ctx, out.ID, dto.SetRecipeRequest{Items: items})
			if err != nil {
				log.Warn().Err(err).Str("name", sp.product.Name).Msg("receta no creada")
				continue
			}
			log.Info().
				Str("name", sp.product.Name).
				Str("cost", cost.CostPrice.String()).
				Msg("producto y receta creados")
			continue
		}
		log.Info().Str("name", sp.product.Name).Msg("producto creado sin receta")
	}

	log.Info().Msg("seed completado")
}
