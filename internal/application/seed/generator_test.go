package seed_test

import (
	"context"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/product-management/internal/application/sales"
	"github.com/jhoicas/product-management/internal/application/seed"
	"github.com/jhoicas/product-management/internal/domain/repository"
	"github.com/jhoicas/product-management/internal/infrastructure/sqlite"
	"github.com/jhoicas/product-management/pkg/logger"
)

var jst = time.FixedZone("JST", 9*60*60)

func newGenerator(t *testing.T, seedValue uint64) (*seed.Generator, repository.Repositories, time.Time) {
	t.Helper()
	store, err := sqlite.Open(context.Background(), sqlite.MemoryDSN(), logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	now := time.Date(2024, 5, 20, 8, 15, 0, 0, jst)
	gen := seed.NewGenerator(store.Repos(), sales.NewCreateSaleUseCase(store, nil), logger.Nop(), seed.Options{
		Rand:     rand.New(rand.NewPCG(seedValue, 7)),
		Now:      func() time.Time { return now },
		Location: jst,
	})
	return gen, store.Repos(), now
}

func TestRun_CreaCatalogoYVentas(t *testing.T) {
	gen, repos, now := newGenerator(t, 42)
	ctx := context.Background()

	rep, err := gen.Run(ctx)
	require.NoError(t, err)

	assert.Equal(t, 5, rep.CategoriesCreated)
	assert.Equal(t, 10, rep.ProductsCreated)
	assert.Equal(t, 5, rep.CustomersCreated)
	assert.Zero(t, rep.CategoriesReused+rep.ProductsReused+rep.CustomersReused)
	assert.GreaterOrEqual(t, rep.SalesCreated, 18)
	assert.LessOrEqual(t, rep.SalesCreated, 42)
	assert.Equal(t, rep.SalesCreated, rep.TotalSales)
	assert.Equal(t, seed.DefaultDays, rep.Days)

	list, err := repos.Sales.List(ctx, repository.SaleFilter{}, repository.Page{Limit: 100})
	require.NoError(t, err)
	total := decimal.Zero
	oldest := time.Date(2024, 5, 15, 0, 0, 0, 0, jst)
	for _, s := range list {
		assert.False(t, s.SaleDate.After(now), "venta en el futuro: %s", s.SaleDate)
		assert.False(t, s.SaleDate.Before(oldest), "venta fuera de la ventana: %s", s.SaleDate)

		sum, err := repos.SaleItems.SumBySale(ctx, s.ID)
		require.NoError(t, err)
		assert.True(t, sum.Equal(s.TotalAmount))
		total = total.Add(s.TotalAmount)
	}
	assert.True(t, total.Equal(rep.Revenue))
}

func TestRun_ReutilizaCatalogo(t *testing.T) {
	gen, _, _ := newGenerator(t, 1)
	ctx := context.Background()

	first, err := gen.Run(ctx)
	require.NoError(t, err)
	second, err := gen.Run(ctx)
	require.NoError(t, err)

	assert.Zero(t, second.CategoriesCreated)
	assert.Equal(t, 5, second.CategoriesReused)
	assert.Equal(t, 10, second.ProductsReused)
	assert.Equal(t, 5, second.CustomersReused)
	assert.Equal(t, first.SalesCreated+second.SalesCreated, second.TotalSales)
}

func TestReport_Summary(t *testing.T) {
	rep := &seed.Report{SalesCreated: 3, SaleItemsCreated: 7, Revenue: decimal.NewFromInt(1234500), TotalSales: 3, Days: 6}

	lines := rep.Summary()

	require.Len(t, lines, 5)
	assert.Equal(t, "ventas: 3 creadas con 7 líneas, total ¥1,234,500", lines[3])
}
