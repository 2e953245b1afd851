// Package store abre la persistencia según la configuración: PostgreSQL o SQLite embebido.
package store

import (
	"context"
	"fmt"

	"github.com/jhoicas/product-management/internal/domain/repository"
	"github.com/jhoicas/product-management/internal/infrastructure/postgres"
	"github.com/jhoicas/product-management/internal/infrastructure/sqlite"
	"github.com/jhoicas/product-management/pkg/config"
	"github.com/jhoicas/product-management/pkg/logger"
)

// Store lo que la aplicación necesita de cualquier backend.
type Store interface {
	Repos() repository.Repositories
	Run(ctx context.Context, fn func(repos repository.Repositories) error) error
	Close() error
}

// Open abre el backend de cfg.Driver. En PostgreSQL aplica migraciones si AutoMigrate está activo;
// SQLite siempre sincroniza su esquema al abrir.
func Open(ctx context.Context, cfg config.DBConfig, log *logger.Logger) (Store, error) {
	switch cfg.Driver {
	case config.DriverPostgres:
		if cfg.AutoMigrate {
			if err := migrateUp(cfg, log); err != nil {
				return nil, err
			}
		}
		pool, err := postgres.NewPool(ctx, cfg, log)
		if err != nil {
			return nil, err
		}
		return postgres.NewStore(pool), nil
	case config.DriverSQLite:
		return sqlite.Open(ctx, sqlite.FileDSN(cfg.SQLitePath), log)
	default:
		return nil, fmt.Errorf("store: driver desconocido %q", cfg.Driver)
	}
}

func migrateUp(cfg config.DBConfig, log *logger.Logger) error {
	m, err := postgres.NewMigrator(cfg.ConnectionString(), log)
	if err != nil {
		return err
	}
	defer func() { _ = m.Close() }()
	return m.Up()
}
