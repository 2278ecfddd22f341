// migrate aplica los scripts SQL de ./migrations en orden lexicográfico.
//
// Uso: go run ./cmd/migrate [ruta/migrations]
package main

import (
	"context"
	"os"
	"path/filepath"
	"sort"

	"github.com/tu-usuario/panaderia-pos/internal/infrastructure/postgres"
	"github.com/tu-usuario/panaderia-pos/pkg/config"
	"github.com/tu-usuario/panaderia-pos/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})

	dir := "migrations"
	if len(os.Args) > 1 {
		dir = os.Args[1]
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	files, err := filepath.Glob(filepath.Join(dir, "*.sql"))
	if err != nil {
		log.Fatal().Err(err).Msg("listar migraciones")
	}
	if len(files) == 0 {
		log.Fatal().Str("dir", dir).Msg("no hay migraciones para aplicar")
	}
	sort.Strings(files)

	for _, file := range files {
		sqlBytes, err := os.ReadFile(file)
		if err != nil {
			log.Fatal().Err(err).Str("file", file).Msg("leer migración")
		}
		if _, err := pool.Exec(ctx, string(sqlBytes)); err != nil {
			log.Fatal().Err(err).Str("file", file).Msg("aplicar migración")
		}
		log.Info().Str("file", filepath.Base(file)).Msg("migración aplicada")
	}

	log.Info().Int("total", len(files)).Msg("migraciones completadas")
}
