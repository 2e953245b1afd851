// Package sqlite implementa los puertos de persistencia sobre SQLite con gorm.
// Es el almacenamiento por defecto cuando no hay un PostgreSQL configurado.
package sqlite

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/jhoicas/product-management/internal/application/sales"
	"github.com/jhoicas/product-management/internal/domain"
	"github.com/jhoicas/product-management/internal/domain/repository"
	"github.com/jhoicas/product-management/pkg/logger"
)

var _ sales.TxRunner = (*Store)(nil)

// Store base embebida: repositorios, transacciones y esquema.
type Store struct {
	db    *gorm.DB
	repos repository.Repositories
}

// FileDSN DSN para un archivo local con claves foráneas activas.
func FileDSN(path string) string {
	return "file:" + path + "?_foreign_keys=on&_busy_timeout=5000"
}

// MemoryDSN base en memoria con nombre único; se comparte entre conexiones del mismo proceso.
func MemoryDSN() string {
	return "file:" + uuid.NewString() + "?mode=memory&cache=shared&_foreign_keys=on"
}

// Open abre la base, limita el pool a una conexión y crea/actualiza el esquema.
func Open(ctx context.Context, dsn string, log *logger.Logger) (*Store, error) {
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         gormlogger.New(gormWriter{log: log}, gormlogger.Config{SlowThreshold: 200 * time.Millisecond, LogLevel: gormlogger.Warn, IgnoreRecordNotFoundError: true}),
		TranslateError: true,
		NowFunc:        func() time.Time { return time.Now().UTC() },
	})
	if err != nil {
		return nil, fmt.Errorf("sqlite: open: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("sqlite: sql.DB: %w", err)
	}
	// SQLite admite un único escritor.
	sqlDB.SetMaxOpenConns(1)

	if err := db.WithContext(ctx).AutoMigrate(allModels()...); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("sqlite: automigrate: %w", err)
	}

	log.Info().Str("driver", "sqlite").Msg("base embebida lista")
	return &Store{db: db, repos: reposFor(db)}, nil
}

// Repos repositorios fuera de transacción.
func (s *Store) Repos() repository.Repositories {
	return s.repos
}

// Run ejecuta fn dentro de una transacción gorm; rollback si fn devuelve error.
func (s *Store) Run(ctx context.Context, fn func(repos repository.Repositories) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(reposFor(tx))
	})
}

// Close cierra la conexión subyacente.
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return fmt.Errorf("sqlite: sql.DB: %w", err)
	}
	return sqlDB.Close()
}

func reposFor(db *gorm.DB) repository.Repositories {
	return repository.Repositories{
		Categories:       &CategoryRepo{db: db},
		Products:         &ProductRepo{db: db},
		Customers:        &CustomerRepo{db: db},
		Sales:            &SaleRepo{db: db},
		SaleItems:        &SaleItemRepo{db: db},
		Analytics:        &AnalyticsRepo{db: db},
		MfgProducts:      &MfgProductRepo{db: db},
		Processes:        &ProcessRepo{db: db},
		ProductionOrders: &ProductionOrderRepo{db: db},
		Inventory:        &InventoryRepo{db: db},
	}
}

// writeError traduce errores de escritura a errores de dominio.
func writeError(op string, err error) error {
	switch {
	case errors.Is(err, gorm.ErrDuplicatedKey), strings.Contains(err.Error(), "UNIQUE constraint failed"):
		return domain.ErrDuplicate
	case errors.Is(err, gorm.ErrForeignKeyViolated), strings.Contains(err.Error(), "FOREIGN KEY constraint failed"):
		return fmt.Errorf("%s: %w", op, domain.ErrConflict)
	default:
		return fmt.Errorf("%s: %w", op, err)
	}
}

// readError devuelve nil para gorm.ErrRecordNotFound.
func readError(op string, err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	return fmt.Errorf("%s: %w", op, err)
}

// gormWriter redirige el logger de gorm a zerolog.
type gormWriter struct {
	log *logger.Logger
}

func (w gormWriter) Printf(format string, args ...any) {
	w.log.Warn().Str("component", "gorm").Msgf(format, args...)
}
