package sales_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/product-management/internal/application/dto"
	"github.com/jhoicas/product-management/internal/application/sales"
	"github.com/jhoicas/product-management/internal/application/usecase"
	"github.com/jhoicas/product-management/internal/domain"
	"github.com/jhoicas/product-management/internal/domain/entity"
	"github.com/jhoicas/product-management/internal/domain/repository"
	"github.com/jhoicas/product-management/internal/infrastructure/sqlite"
	"github.com/jhoicas/product-management/pkg/logger"
)

type fakeReceipts struct {
	lines []sales.ReceiptLine
}

func (f *fakeReceipts) GenerateSaleReceipt(_ context.Context, _ *entity.Sale, _ *entity.Customer, lines []sales.ReceiptLine) ([]byte, error) {
	f.lines = lines
	return []byte("%PDF-fake"), nil
}

type env struct {
	store     *sqlite.Store
	create    *sales.CreateSaleUseCase
	sales     *sales.SaleUseCase
	items     *sales.SaleItemUseCase
	products  *usecase.ProductUseCase
	receipts  *fakeReceipts
	customer  string
	earbuds   *dto.ProductResponse
	charger   *dto.ProductResponse
	fixedTime time.Time
}

func newEnv(t *testing.T) *env {
	t.Helper()
	ctx := context.Background()
	store, err := sqlite.Open(ctx, sqlite.MemoryDSN(), logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	repos := store.Repos()
	fixed := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	e := &env{
		store:     store,
		create:    sales.NewCreateSaleUseCase(store, func() time.Time { return fixed }),
		receipts:  &fakeReceipts{},
		items:     sales.NewSaleItemUseCase(repos, store),
		products:  usecase.NewProductUseCase(repos.Products, repos.Categories),
		fixedTime: fixed,
	}
	e.sales = sales.NewSaleUseCase(repos, store, e.receipts, time.UTC)

	cat, err := usecase.NewCategoryUseCase(repos.Categories, repos.Products).Create(ctx, dto.CreateCategoryRequest{Name: "家電"})
	require.NoError(t, err)
	e.earbuds, err = e.products.Create(ctx, dto.CreateProductRequest{Name: "ワイヤレスイヤホン", CategoryID: cat.ID, Price: decimal.RequireFromString("12800"), Stock: 30})
	require.NoError(t, err)
	e.charger, err = e.products.Create(ctx, dto.CreateProductRequest{Name: "急速充電器", CategoryID: cat.ID, Price: decimal.RequireFromString("3980"), Stock: 5})
	require.NoError(t, err)
	cust, err := usecase.NewCustomerUseCase(repos.Customers).Create(ctx, dto.CreateCustomerRequest{Name: "田中太郎", Email: "tanaka@example.com"})
	require.NoError(t, err)
	e.customer = cust.ID
	return e
}

func (e *env) newSale(t *testing.T) *dto.SaleResponse {
	t.Helper()
	out, err := e.create.Create(context.Background(), dto.CreateSaleRequest{
		CustomerID: e.customer,
		Items: []dto.SaleItemInput{
			{ProductID: e.earbuds.ID, Quantity: 2},
			{ProductID: e.charger.ID, Quantity: 1},
		},
	})
	require.NoError(t, err)
	return out
}

func TestCreateSale_TotalEsSumaDeLineas(t *testing.T) {
	e := newEnv(t)

	out := e.newSale(t)

	assert.Equal(t, string(entity.SaleStatusPending), out.Status)
	assert.True(t, out.SaleDate.Equal(e.fixedTime))
	require.Len(t, out.Items, 2)
	assert.True(t, out.Items[0].UnitPrice.Equal(decimal.RequireFromString("12800")))
	assert.True(t, out.TotalAmount.Equal(decimal.RequireFromString("29580")))

	got, err := e.sales.GetByID(context.Background(), out.ID)
	require.NoError(t, err)
	assert.True(t, got.TotalAmount.Equal(out.TotalAmount))
	assert.Len(t, got.Items, 2)
}

func TestCreateSale_ProductoInexistenteNoDejaNada(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	_, err := e.create.Create(ctx, dto.CreateSaleRequest{
		CustomerID: e.customer,
		Items: []dto.SaleItemInput{
			{ProductID: e.earbuds.ID, Quantity: 1},
			{ProductID: "no-existe", Quantity: 1},
		},
	})

	var verr *domain.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Contains(t, verr.Fields, "items[1].product_id")

	n, err := e.store.Repos().Sales.Count(ctx, repository.SaleFilter{})
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestCreateSale_ValidaEntrada(t *testing.T) {
	e := newEnv(t)

	_, err := e.create.Create(context.Background(), dto.CreateSaleRequest{
		Status: "refunded",
		Items:  []dto.SaleItemInput{{ProductID: "", Quantity: 0}},
	})

	var verr *domain.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Contains(t, verr.Fields, "customer_id")
	assert.Contains(t, verr.Fields, "status")
	assert.Contains(t, verr.Fields, "items[0].product_id")
	assert.Contains(t, verr.Fields, "items[0].quantity")
}

func TestCreateSale_ClienteInexistente(t *testing.T) {
	e := newEnv(t)

	_, err := e.create.Create(context.Background(), dto.CreateSaleRequest{
		CustomerID: "no-existe",
		Items:      []dto.SaleItemInput{{ProductID: e.earbuds.ID, Quantity: 1}},
	})

	var verr *domain.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Contains(t, verr.Fields, "customer_id")
}

func TestSaleItem_CambiosRecalculanTotal(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	sale := e.newSale(t)

	// Cambiar el precio del producto no afecta a las líneas existentes.
	newPrice := decimal.RequireFromString("99999")
	_, err := e.products.Update(ctx, e.earbuds.ID, dto.UpdateProductRequest{Price: &newPrice})
	require.NoError(t, err)

	updated, err := e.items.Update(ctx, sale.Items[0].ID, dto.UpdateSaleItemRequest{Quantity: 3})
	require.NoError(t, err)
	assert.True(t, updated.TotalPrice.Equal(decimal.RequireFromString("38400")))

	got, err := e.sales.GetByID(ctx, sale.ID)
	require.NoError(t, err)
	assert.True(t, got.TotalAmount.Equal(decimal.RequireFromString("42380")))

	added, err := e.items.Create(ctx, dto.CreateSaleItemRequest{SaleID: sale.ID, ProductID: e.earbuds.ID, Quantity: 1})
	require.NoError(t, err)
	assert.True(t, added.UnitPrice.Equal(newPrice))

	require.NoError(t, e.items.Delete(ctx, sale.Items[1].ID))
	got, err = e.sales.GetByID(ctx, sale.ID)
	require.NoError(t, err)
	assert.True(t, got.TotalAmount.Equal(decimal.RequireFromString("138399")))
}

func TestSaleItem_Errores(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	_, err := e.items.Update(ctx, "no-existe", dto.UpdateSaleItemRequest{Quantity: 1})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = e.items.Create(ctx, dto.CreateSaleItemRequest{SaleID: "no-existe", ProductID: e.earbuds.ID, Quantity: 1})
	var verr *domain.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Contains(t, verr.Fields, "sale_id")

	assert.ErrorIs(t, e.items.Delete(ctx, "no-existe"), domain.ErrNotFound)
}

func TestSale_UpdateNoTocaTotal(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	sale := e.newSale(t)

	status := "completed"
	out, err := e.sales.Update(ctx, sale.ID, dto.UpdateSaleRequest{Status: &status})
	require.NoError(t, err)
	assert.Equal(t, "completed", out.Status)
	assert.True(t, out.TotalAmount.Equal(sale.TotalAmount))

	bad := "refunded"
	_, err = e.sales.Update(ctx, sale.ID, dto.UpdateSaleRequest{Status: &bad})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = e.sales.Update(ctx, "no-existe", dto.UpdateSaleRequest{Status: &status})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestSale_ListFiltraPorEstado(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	sale := e.newSale(t)
	e.newSale(t)
	status := "completed"
	_, err := e.sales.Update(ctx, sale.ID, dto.UpdateSaleRequest{Status: &status})
	require.NoError(t, err)

	page := dto.PageRequest{}
	page.DefaultPage()
	out, err := e.sales.List(ctx, dto.SaleFilterRequest{Status: "completed"}, page)
	require.NoError(t, err)
	assert.Equal(t, 1, out.Page.Count)
	require.Len(t, out.Items, 1)
	assert.Equal(t, sale.ID, out.Items[0].ID)

	_, err = e.sales.List(ctx, dto.SaleFilterRequest{From: "2024-13-01"}, page)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestSale_DeleteYReceipt(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	sale := e.newSale(t)

	pdf, name, err := e.sales.Receipt(ctx, sale.ID)
	require.NoError(t, err)
	assert.Equal(t, "%PDF-fake", string(pdf))
	assert.Equal(t, "venta_"+sale.ID+".pdf", name)
	names := make([]string, 0, len(e.receipts.lines))
	for _, l := range e.receipts.lines {
		names = append(names, l.ProductName)
	}
	assert.ElementsMatch(t, []string{"ワイヤレスイヤホン", "急速充電器"}, names)

	require.NoError(t, e.sales.Delete(ctx, sale.ID))
	_, err = e.sales.GetByID(ctx, sale.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.ErrorIs(t, e.sales.Delete(ctx, sale.ID), domain.ErrNotFound)

	_, _, err = e.sales.Receipt(ctx, sale.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
