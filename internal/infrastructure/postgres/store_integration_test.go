//go:build integration

package postgres_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/jhoicas/product-management/internal/domain"
	"github.com/jhoicas/product-management/internal/domain/entity"
	"github.com/jhoicas/product-management/internal/domain/repository"
	"github.com/jhoicas/product-management/internal/infrastructure/postgres"
	"github.com/jhoicas/product-management/pkg/config"
	"github.com/jhoicas/product-management/pkg/logger"
)

// newStore levanta un PostgreSQL efímero, aplica las migraciones y devuelve el store.
func newStore(t *testing.T) *postgres.Store {
	t.Helper()
	ctx := context.Background()

	container, err := tcpostgres.Run(ctx,
		"postgres:16-alpine",
		tcpostgres.WithDatabase("sales_test"),
		tcpostgres.WithUsername("postgres"),
		tcpostgres.WithPassword("postgres"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second)),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = container.Terminate(context.Background()) })

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	m, err := postgres.NewMigrator(dsn, logger.Nop())
	require.NoError(t, err)
	require.NoError(t, m.Up())
	version, dirty, err := m.Version()
	require.NoError(t, err)
	assert.Equal(t, uint(2), version)
	assert.False(t, dirty)
	require.NoError(t, m.Close())

	pool, err := postgres.NewPool(ctx, config.DBConfig{DatabaseURL: dsn}, logger.Nop())
	require.NoError(t, err)
	store := postgres.NewStore(pool)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestStore_Postgres(t *testing.T) {
	store := newStore(t)
	repos := store.Repos()
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Microsecond)

	cat := &entity.Category{ID: uuid.NewString(), Name: "家電", CreatedAt: now, UpdatedAt: now}
	require.NoError(t, repos.Categories.Create(ctx, cat))
	assert.ErrorIs(t, repos.Categories.Create(ctx, &entity.Category{ID: uuid.NewString(), Name: "家電", CreatedAt: now, UpdatedAt: now}), domain.ErrDuplicate)

	prod := &entity.Product{ID: uuid.NewString(), Name: "イヤホン", CategoryID: cat.ID, Price: decimal.RequireFromString("12800"), Stock: 5, CreatedAt: now, UpdatedAt: now}
	require.NoError(t, repos.Products.Create(ctx, prod))
	cust := &entity.Customer{ID: uuid.NewString(), Name: "田中", Email: "tanaka@example.com", CreatedAt: now, UpdatedAt: now}
	require.NoError(t, repos.Customers.Create(ctx, cust))

	tokyo, err := time.LoadLocation("Asia/Tokyo")
	require.NoError(t, err)
	saleAt := time.Date(2024, 3, 1, 23, 30, 0, 0, tokyo).UTC()

	var saleID string
	err = store.Run(ctx, func(tx repository.Repositories) error {
		s := &entity.Sale{ID: uuid.NewString(), CustomerID: cust.ID, Status: entity.SaleStatusCompleted, SaleDate: saleAt, CreatedAt: now, UpdatedAt: now}
		if err := tx.Sales.Create(ctx, s); err != nil {
			return err
		}
		item := entity.NewSaleItem(uuid.NewString(), s.ID, prod, 3)
		if err := tx.SaleItems.Create(ctx, &item); err != nil {
			return err
		}
		sum, err := tx.SaleItems.SumBySale(ctx, s.ID)
		if err != nil {
			return err
		}
		saleID = s.ID
		return tx.Sales.UpdateTotal(ctx, s.ID, sum)
	})
	require.NoError(t, err)

	got, err := repos.Sales.GetByID(ctx, saleID)
	require.NoError(t, err)
	assert.True(t, got.TotalAmount.Equal(decimal.RequireFromString("38400")))

	missing, err := repos.Sales.GetByID(ctx, "no-es-uuid")
	require.NoError(t, err)
	assert.Nil(t, missing)

	from := time.Date(2024, 3, 1, 0, 0, 0, 0, tokyo)
	days, err := repos.Analytics.DailyRevenue(ctx, from, from.AddDate(0, 0, 2), tokyo, "")
	require.NoError(t, err)
	require.Len(t, days, 1)
	assert.Equal(t, "2024-03-01", days[0].Day.Format("2006-01-02"))

	low, err := repos.Products.ListLowStock(ctx, 10)
	require.NoError(t, err)
	assert.Len(t, low, 1)

	assert.ErrorIs(t, repos.Products.Delete(ctx, prod.ID), domain.ErrConflict)

	require.NoError(t, repos.Sales.Delete(ctx, saleID))
	n, err := repos.SaleItems.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
}
