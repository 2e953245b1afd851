package sqlite_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/product-management/internal/domain"
	"github.com/jhoicas/product-management/internal/domain/entity"
	mfg "github.com/jhoicas/product-management/internal/domain/manufacturing"
	"github.com/jhoicas/product-management/internal/domain/repository"
	"github.com/jhoicas/product-management/internal/infrastructure/sqlite"
	"github.com/jhoicas/product-management/pkg/logger"
)

func openStore(t *testing.T) *sqlite.Store {
	t.Helper()
	store, err := sqlite.Open(context.Background(), sqlite.MemoryDSN(), logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

type fixture struct {
	category *entity.Category
	product  *entity.Product
	customer *entity.Customer
}

func seedCatalog(t *testing.T, repos repository.Repositories) fixture {
	t.Helper()
	ctx := context.Background()
	now := time.Now().UTC()

	c := &entity.Category{ID: uuid.NewString(), Name: "家電", CreatedAt: now, UpdatedAt: now}
	require.NoError(t, repos.Categories.Create(ctx, c))
	p := &entity.Product{
		ID: uuid.NewString(), Name: "ワイヤレスイヤホン", CategoryID: c.ID,
		Price: decimal.RequireFromString("12800"), Stock: 50, CreatedAt: now, UpdatedAt: now,
	}
	require.NoError(t, repos.Products.Create(ctx, p))
	cu := &entity.Customer{ID: uuid.NewString(), Name: "田中太郎", Email: "tanaka@example.com", CreatedAt: now, UpdatedAt: now}
	require.NoError(t, repos.Customers.Create(ctx, cu))
	return fixture{category: c, product: p, customer: cu}
}

func createSale(t *testing.T, repos repository.Repositories, f fixture, at time.Time, qty int, status entity.SaleStatus) *entity.Sale {
	t.Helper()
	ctx := context.Background()
	s := &entity.Sale{ID: uuid.NewString(), CustomerID: f.customer.ID, Status: status, SaleDate: at, CreatedAt: at, UpdatedAt: at}
	require.NoError(t, repos.Sales.Create(ctx, s))
	item := entity.NewSaleItem(uuid.NewString(), s.ID, f.product, qty)
	require.NoError(t, repos.SaleItems.Create(ctx, &item))
	s.Items = []entity.SaleItem{item}
	require.NoError(t, repos.Sales.UpdateTotal(ctx, s.ID, s.RecalculateTotal()))
	return s
}

func TestStore_GetInexistenteDevuelveNil(t *testing.T) {
	repos := openStore(t).Repos()
	ctx := context.Background()

	c, err := repos.Categories.GetByID(ctx, "no-existe")
	assert.NoError(t, err)
	assert.Nil(t, c)

	s, err := repos.Sales.GetByID(ctx, uuid.NewString())
	assert.NoError(t, err)
	assert.Nil(t, s)
}

func TestStore_NombreDuplicado(t *testing.T) {
	repos := openStore(t).Repos()
	f := seedCatalog(t, repos)

	err := repos.Categories.Create(context.Background(), &entity.Category{ID: uuid.NewString(), Name: f.category.Name})
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	dup := *f.customer
	dup.ID = uuid.NewString()
	assert.ErrorIs(t, repos.Customers.Create(context.Background(), &dup), domain.ErrDuplicate)
}

func TestStore_BorrarReferenciadoEsConflicto(t *testing.T) {
	repos := openStore(t).Repos()
	f := seedCatalog(t, repos)
	createSale(t, repos, f, time.Now().UTC(), 1, entity.SaleStatusCompleted)
	ctx := context.Background()

	assert.ErrorIs(t, repos.Categories.Delete(ctx, f.category.ID), domain.ErrConflict)
	assert.ErrorIs(t, repos.Products.Delete(ctx, f.product.ID), domain.ErrConflict)
	assert.ErrorIs(t, repos.Customers.Delete(ctx, f.customer.ID), domain.ErrConflict)
}

func TestStore_BorrarVentaEliminaLineas(t *testing.T) {
	repos := openStore(t).Repos()
	f := seedCatalog(t, repos)
	s := createSale(t, repos, f, time.Now().UTC(), 2, entity.SaleStatusPending)
	ctx := context.Background()

	require.NoError(t, repos.Sales.Delete(ctx, s.ID))

	items, err := repos.SaleItems.ListBySale(ctx, s.ID)
	require.NoError(t, err)
	assert.Empty(t, items)
	n, err := repos.SaleItems.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestStore_SumBySaleYTotales(t *testing.T) {
	repos := openStore(t).Repos()
	f := seedCatalog(t, repos)
	ctx := context.Background()
	now := time.Now().UTC()

	s1 := createSale(t, repos, f, now, 2, entity.SaleStatusCompleted)
	createSale(t, repos, f, now, 1, entity.SaleStatusPending)

	sum, err := repos.SaleItems.SumBySale(ctx, s1.ID)
	require.NoError(t, err)
	assert.True(t, sum.Equal(decimal.RequireFromString("25600")))

	got, err := repos.Sales.GetByID(ctx, s1.ID)
	require.NoError(t, err)
	assert.True(t, got.TotalAmount.Equal(sum))

	totals, err := repos.Analytics.SalesTotals(ctx, repository.SaleFilter{})
	require.NoError(t, err)
	assert.Equal(t, 2, totals.Count)
	assert.True(t, totals.Revenue.Equal(decimal.RequireFromString("38400")))

	byStatus, err := repos.Analytics.CountByStatus(ctx, repository.SaleFilter{Status: entity.SaleStatusCompleted})
	require.NoError(t, err)
	assert.Equal(t, 1, byStatus[entity.SaleStatusCompleted])
	assert.Equal(t, 1, byStatus[entity.SaleStatusPending])
}

func TestStore_DailyRevenueAgrupaEnZonaLocal(t *testing.T) {
	tokyo, err := time.LoadLocation("Asia/Tokyo")
	require.NoError(t, err)
	repos := openStore(t).Repos()
	f := seedCatalog(t, repos)

	// 2024-03-01 23:30 JST y 2024-03-02 00:30 JST: en UTC ambas caen el 1 de marzo.
	createSale(t, repos, f, time.Date(2024, 3, 1, 23, 30, 0, 0, tokyo).UTC(), 1, entity.SaleStatusCompleted)
	createSale(t, repos, f, time.Date(2024, 3, 2, 0, 30, 0, 0, tokyo).UTC(), 2, entity.SaleStatusCompleted)

	from := time.Date(2024, 3, 1, 0, 0, 0, 0, tokyo)
	to := from.AddDate(0, 0, 2)
	days, err := repos.Analytics.DailyRevenue(context.Background(), from, to, tokyo, "")
	require.NoError(t, err)

	require.Len(t, days, 2)
	assert.Equal(t, "2024-03-01", days[0].Day.Format("2006-01-02"))
	assert.Equal(t, 1, days[0].Count)
	assert.Equal(t, "2024-03-02", days[1].Day.Format("2006-01-02"))
	assert.True(t, days[1].Revenue.Equal(decimal.RequireFromString("25600")))
}

func TestStore_RunHaceRollback(t *testing.T) {
	store := openStore(t)
	ctx := context.Background()

	err := store.Run(ctx, func(repos repository.Repositories) error {
		require.NoError(t, repos.Categories.Create(ctx, &entity.Category{ID: uuid.NewString(), Name: "食品"}))
		return domain.ErrInvalidInput
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	n, err := store.Repos().Categories.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestStore_ManufacturingListados(t *testing.T) {
	repos := openStore(t).Repos()
	ctx := context.Background()
	now := time.Now().UTC()

	prod := &mfg.Product{ID: uuid.NewString(), Code: "P-001", Name: "ギアボックス", CreatedAt: now, UpdatedAt: now}
	require.NoError(t, repos.MfgProducts.Create(ctx, prod))
	proc := &mfg.Process{ID: uuid.NewString(), Name: "組立", StandardTime: 30, CreatedAt: now}
	require.NoError(t, repos.Processes.Create(ctx, proc))

	for i, day := range []int{3, 10} {
		o := &mfg.ProductionOrder{
			ID: uuid.NewString(), ProductID: prod.ID, ProcessID: proc.ID, Quantity: 10 * (i + 1),
			PlannedDate: time.Date(2024, 5, day, 0, 0, 0, 0, time.UTC), Status: mfg.OrderStatusPlanned,
			CreatedAt: now, UpdatedAt: now,
		}
		require.NoError(t, repos.ProductionOrders.Create(ctx, o))
	}

	orders, err := repos.ProductionOrders.List(ctx, "")
	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Equal(t, 10, orders[0].PlannedDate.Day())
	assert.Equal(t, "P-001", orders[0].ProductCode)
	assert.Equal(t, "組立", orders[0].ProcessName)

	require.NoError(t, repos.ProductionOrders.UpdateStatus(ctx, orders[0].ID, mfg.OrderStatusCompleted))
	done, err := repos.ProductionOrders.List(ctx, mfg.OrderStatusCompleted)
	require.NoError(t, err)
	assert.Len(t, done, 1)

	require.NoError(t, repos.Inventory.Create(ctx, &mfg.Inventory{ID: uuid.NewString(), ProductID: prod.ID, Quantity: 5, Location: "B-2", UpdatedAt: now}))
	require.NoError(t, repos.Inventory.Create(ctx, &mfg.Inventory{ID: uuid.NewString(), ProductID: prod.ID, Quantity: 7, Location: "A-1", UpdatedAt: now}))
	inv, err := repos.Inventory.List(ctx, "")
	require.NoError(t, err)
	require.Len(t, inv, 2)
	assert.Equal(t, "A-1", inv[0].Location)
	assert.Equal(t, "ギアボックス", inv[0].ProductName)

	assert.ErrorIs(t, repos.MfgProducts.Delete(ctx, prod.ID), domain.ErrConflict)
}
