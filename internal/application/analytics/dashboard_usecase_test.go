package analytics_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/product-management/internal/application/analytics"
	"github.com/jhoicas/product-management/internal/application/dto"
	"github.com/jhoicas/product-management/internal/application/sales"
	"github.com/jhoicas/product-management/internal/application/usecase"
	"github.com/jhoicas/product-management/internal/domain"
	"github.com/jhoicas/product-management/internal/infrastructure/sqlite"
	"github.com/jhoicas/product-management/pkg/logger"
)

var jst = time.FixedZone("JST", 9*60*60)

type fixture struct {
	dashboard *analytics.DashboardUseCase
	customer  string
	sales     []string // reciente primero
}

// newFixture registra tres ventas alrededor de la medianoche JST del 10/03/2024.
func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctx := context.Background()
	store, err := sqlite.Open(ctx, sqlite.MemoryDSN(), logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	repos := store.Repos()

	cat, err := usecase.NewCategoryUseCase(repos.Categories, repos.Products).Create(ctx, dto.CreateCategoryRequest{Name: "文房具"})
	require.NoError(t, err)
	products := usecase.NewProductUseCase(repos.Products, repos.Categories)
	pen, err := products.Create(ctx, dto.CreateProductRequest{Name: "万年筆", CategoryID: cat.ID, Price: decimal.NewFromInt(1000), Stock: 5})
	require.NoError(t, err)
	_, err = products.Create(ctx, dto.CreateProductRequest{Name: "ノート", CategoryID: cat.ID, Price: decimal.NewFromInt(200), Stock: 50})
	require.NoError(t, err)
	cust, err := usecase.NewCustomerUseCase(repos.Customers).Create(ctx, dto.CreateCustomerRequest{Name: "高橋健", Email: "takahashi@example.com"})
	require.NoError(t, err)

	creator := sales.NewCreateSaleUseCase(store, nil)
	f := &fixture{customer: cust.ID}
	add := func(at time.Time, status string, qty int) {
		out, err := creator.Create(ctx, dto.CreateSaleRequest{
			CustomerID: cust.ID,
			Status:     status,
			SaleDate:   &at,
			Items:      []dto.SaleItemInput{{ProductID: pen.ID, Quantity: qty}},
		})
		require.NoError(t, err)
		f.sales = append(f.sales, out.ID)
	}
	add(time.Date(2024, 3, 10, 0, 30, 0, 0, jst), "completed", 2)
	add(time.Date(2024, 3, 9, 23, 30, 0, 0, jst), "pending", 1)
	add(time.Date(2024, 3, 1, 10, 0, 0, 0, jst), "cancelled", 3)

	now := func() time.Time { return time.Date(2024, 3, 10, 12, 0, 0, 0, jst) }
	f.dashboard = analytics.NewDashboardUseCase(repos, analytics.Config{LowStockThreshold: 10, WindowDays: 6, Location: jst}, now)
	return f
}

func TestGetStats_SinFiltro(t *testing.T) {
	f := newFixture(t)

	stats, err := f.dashboard.GetStats(context.Background(), dto.DashboardStatsRequest{})
	require.NoError(t, err)

	assert.Equal(t, 3, stats.TotalSales)
	assert.True(t, stats.TotalRevenue.Equal(decimal.NewFromInt(6000)))
	assert.Equal(t, map[string]int{"completed": 1, "pending": 1, "cancelled": 1}, stats.ByStatus)

	require.Len(t, stats.DailyRevenue, 6)
	assert.Equal(t, "2024-03-05", stats.DailyRevenue[0].Date)
	assert.True(t, stats.DailyRevenue[0].Revenue.IsZero())
	assert.Equal(t, "2024-03-09", stats.DailyRevenue[4].Date)
	assert.True(t, stats.DailyRevenue[4].Revenue.Equal(decimal.NewFromInt(1000)))
	assert.Equal(t, "2024-03-10", stats.DailyRevenue[5].Date)
	assert.Equal(t, 1, stats.DailyRevenue[5].Sales)
	assert.True(t, stats.WindowRevenue.Equal(decimal.NewFromInt(3000)))

	assert.Equal(t, 10, stats.LowStockThreshold)
	assert.Equal(t, 1, stats.LowStockCount)
}

func TestGetStats_Filtros(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	stats, err := f.dashboard.GetStats(ctx, dto.DashboardStatsRequest{Status: "completed"})
	require.NoError(t, err)
	assert.Equal(t, 1, stats.TotalSales)
	assert.Equal(t, 1, stats.ByStatus["pending"])
	assert.True(t, stats.WindowRevenue.Equal(decimal.NewFromInt(2000)))

	stats, err = f.dashboard.GetStats(ctx, dto.DashboardStatsRequest{From: "2024-03-09", To: "2024-03-09"})
	require.NoError(t, err)
	assert.Equal(t, 1, stats.TotalSales)
	assert.True(t, stats.TotalRevenue.Equal(decimal.NewFromInt(1000)))
	assert.Equal(t, "2024-03-09", stats.From)

	_, err = f.dashboard.GetStats(ctx, dto.DashboardStatsRequest{Status: "refunded"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestDailyRevenue_Dias(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	series, err := f.dashboard.DailyRevenue(ctx, 10)
	require.NoError(t, err)
	require.Len(t, series, 10)
	assert.Equal(t, "2024-03-01", series[0].Date)
	assert.True(t, series[0].Revenue.Equal(decimal.NewFromInt(3000)))

	series, err = f.dashboard.DailyRevenue(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, series, 6)

	_, err = f.dashboard.DailyRevenue(ctx, 400)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestLowStock_Umbral(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	out, err := f.dashboard.LowStock(ctx, nil)
	require.NoError(t, err)
	assert.Equal(t, 10, out.Threshold)
	require.Equal(t, 1, out.Count)
	assert.Equal(t, "万年筆", out.Items[0].Name)

	high := 100
	out, err = f.dashboard.LowStock(ctx, &high)
	require.NoError(t, err)
	require.Equal(t, 2, out.Count)
	assert.Equal(t, 5, out.Items[0].Stock)

	zero := 0
	_, err = f.dashboard.LowStock(ctx, &zero)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestPurchaseHistory(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	out, err := f.dashboard.PurchaseHistory(ctx, f.customer)
	require.NoError(t, err)
	assert.Equal(t, "高橋健", out.Customer.Name)
	require.Equal(t, 3, out.Count)
	for i, s := range out.Sales {
		assert.Equal(t, f.sales[i], s.ID)
		assert.Len(t, s.Items, 1)
	}

	_, err = f.dashboard.PurchaseHistory(ctx, "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
