package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/product-management/internal/application/sales"
	"github.com/jhoicas/product-management/internal/domain/repository"
)

var _ sales.TxRunner = (*Store)(nil)

// Store agrupa los repositorios sobre el pool y ejecuta callbacks dentro de una transacción.
type Store struct {
	pool  *pgxpool.Pool
	repos repository.Repositories
}

// NewStore construye el store con el pool.
func NewStore(pool *pgxpool.Pool) *Store {
	return &Store{pool: pool, repos: reposFor(pool)}
}

// Repos repositorios fuera de transacción.
func (s *Store) Repos() repository.Repositories {
	return s.repos
}

// Run inicia una transacción, ejecuta fn con repos atados a la tx y hace Commit o Rollback.
func (s *Store) Run(ctx context.Context, fn func(repos repository.Repositories) error) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(reposFor(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// Close cierra el pool.
func (s *Store) Close() error {
	s.pool.Close()
	return nil
}

func reposFor(q Querier) repository.Repositories {
	return repository.Repositories{
		Categories:       NewCategoryRepository(q),
		Products:         NewProductRepository(q),
		Customers:        NewCustomerRepository(q),
		Sales:            NewSaleRepository(q),
		SaleItems:        NewSaleItemRepository(q),
		Analytics:        NewAnalyticsRepository(q),
		MfgProducts:      NewMfgProductRepository(q),
		Processes:        NewProcessRepository(q),
		ProductionOrders: NewProductionOrderRepository(q),
		Inventory:        NewInventoryRepository(q),
	}
}
