// migrate aplica o revierte las migraciones de PostgreSQL embebidas en el binario.
//
// Uso: go run ./cmd/migrate up|down|version
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/jhoicas/product-management/internal/infrastructure/postgres"
	"github.com/jhoicas/product-management/pkg/config"
	"github.com/jhoicas/product-management/pkg/logger"
)

func main() {
	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, "Uso: migrate up|down|version")
	}
	flag.Parse()
	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cargar configuración: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel})
	if cfg.DB.Driver != config.DriverPostgres {
		log.Fatal().Str("driver", cfg.DB.Driver).Msg("las migraciones solo aplican a PostgreSQL; SQLite sincroniza su esquema al abrir")
	}

	m, err := postgres.NewMigrator(cfg.DB.ConnectionString(), log)
	if err != nil {
		log.Fatal().Err(err).Msg("crear migrador")
	}
	defer func() { _ = m.Close() }()

	switch cmd := flag.Arg(0); cmd {
	case "up":
		err = m.Up()
	case "down":
		err = m.Down()
	case "version":
		var version uint
		var dirty bool
		version, dirty, err = m.Version()
		if err == nil {
			fmt.Printf("versión %d (dirty=%t)\n", version, dirty)
		}
	default:
		flag.Usage()
		_ = m.Close()
		os.Exit(2)
	}
	if err != nil {
		log.Error().Err(err).Msg("migración fallida")
		_ = m.Close()
		os.Exit(1)
	}
}
