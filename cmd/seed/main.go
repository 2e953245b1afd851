// seed puebla la base configurada con datos de demostración: 5 categorías, 10 productos,
// 5 clientes (reutilizados si ya existen) y ventas aleatorias de los últimos días.
//
// Uso: go run ./cmd/seed [-days 6] [-seed 0]
package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand/v2"
	"os"

	"github.com/jhoicas/product-management/internal/application/sales"
	"github.com/jhoicas/product-management/internal/application/seed"
	"github.com/jhoicas/product-management/internal/infrastructure/store"
	"github.com/jhoicas/product-management/pkg/config"
	"github.com/jhoicas/product-management/pkg/logger"
)

func main() {
	days := flag.Int("days", seed.DefaultDays, "días hacia atrás con ventas (hoy incluido)")
	seedValue := flag.Uint64("seed", 0, "semilla del generador; 0 usa la hora actual")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cargar configuración: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel})

	ctx := context.Background()
	st, err := store.Open(ctx, cfg.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("abrir base de datos")
	}
	defer func() { _ = st.Close() }()

	opts := seed.Options{Days: *days, Location: cfg.App.Location()}
	if *seedValue != 0 {
		opts.Rand = rand.New(rand.NewPCG(*seedValue, 0))
	}
	gen := seed.NewGenerator(st.Repos(), sales.NewCreateSaleUseCase(st, nil), log, opts)

	rep, err := gen.Run(ctx)
	if err != nil {
		log.Error().Err(err).Msg("seed interrumpido")
		_ = st.Close()
		os.Exit(1)
	}
	for _, line := range rep.Summary() {
		fmt.Println(line)
	}
}
