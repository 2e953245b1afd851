package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/product-management/internal/application/dto"
	"github.com/jhoicas/product-management/internal/application/sales"
	"github.com/jhoicas/product-management/internal/application/usecase"
	"github.com/jhoicas/product-management/internal/domain"
	"github.com/jhoicas/product-management/internal/infrastructure/sqlite"
	"github.com/jhoicas/product-management/pkg/logger"
)

type catalog struct {
	store      *sqlite.Store
	categories *usecase.CategoryUseCase
	products   *usecase.ProductUseCase
	customers  *usecase.CustomerUseCase
}

func newCatalog(t *testing.T) *catalog {
	t.Helper()
	store, err := sqlite.Open(context.Background(), sqlite.MemoryDSN(), logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	repos := store.Repos()
	return &catalog{
		store:      store,
		categories: usecase.NewCategoryUseCase(repos.Categories, repos.Products),
		products:   usecase.NewProductUseCase(repos.Products, repos.Categories),
		customers:  usecase.NewCustomerUseCase(repos.Customers),
	}
}

func TestCategory_NombreUnicoYNotFound(t *testing.T) {
	c := newCatalog(t)
	ctx := context.Background()

	_, err := c.categories.Create(ctx, dto.CreateCategoryRequest{Name: "食品"})
	require.NoError(t, err)
	_, err = c.categories.Create(ctx, dto.CreateCategoryRequest{Name: " 食品 "})
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	_, err = c.categories.Create(ctx, dto.CreateCategoryRequest{Name: "  "})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = c.categories.GetByID(ctx, "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.ErrorIs(t, c.categories.Delete(ctx, "no-existe"), domain.ErrNotFound)
}

func TestCategory_DeleteConProductosEsConflicto(t *testing.T) {
	c := newCatalog(t)
	ctx := context.Background()

	cat, err := c.categories.Create(ctx, dto.CreateCategoryRequest{Name: "書籍"})
	require.NoError(t, err)
	p, err := c.products.Create(ctx, dto.CreateProductRequest{Name: "Go入門", CategoryID: cat.ID, Price: decimal.NewFromInt(2800), Stock: 3})
	require.NoError(t, err)

	assert.ErrorIs(t, c.categories.Delete(ctx, cat.ID), domain.ErrConflict)

	page := dto.PageRequest{}
	list, err := c.categories.ListProducts(ctx, cat.ID, page)
	require.NoError(t, err)
	require.Len(t, list.Items, 1)
	assert.Equal(t, p.ID, list.Items[0].ID)

	require.NoError(t, c.products.Delete(ctx, p.ID))
	require.NoError(t, c.categories.Delete(ctx, cat.ID))
}

func TestProduct_Validaciones(t *testing.T) {
	c := newCatalog(t)
	ctx := context.Background()

	_, err := c.products.Create(ctx, dto.CreateProductRequest{Name: "", CategoryID: "no-existe", Price: decimal.NewFromInt(-1), Stock: -2})
	var verr *domain.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Contains(t, verr.Fields, "name")
	assert.Contains(t, verr.Fields, "price")
	assert.Contains(t, verr.Fields, "stock")
	assert.Equal(t, "la categoría no existe", verr.Fields["category_id"])

	cat, err := c.categories.Create(ctx, dto.CreateCategoryRequest{Name: "雑貨"})
	require.NoError(t, err)
	_, err = c.products.Create(ctx, dto.CreateProductRequest{Name: "マグカップ", CategoryID: cat.ID, Price: decimal.NewFromInt(1200)})
	require.NoError(t, err)
	_, err = c.products.Create(ctx, dto.CreateProductRequest{Name: "マグカップ", CategoryID: cat.ID, Price: decimal.NewFromInt(1300)})
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	_, err = c.products.Update(ctx, "no-existe", dto.UpdateProductRequest{})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestProduct_ListPaginaYFiltra(t *testing.T) {
	c := newCatalog(t)
	ctx := context.Background()

	a, err := c.categories.Create(ctx, dto.CreateCategoryRequest{Name: "A"})
	require.NoError(t, err)
	b, err := c.categories.Create(ctx, dto.CreateCategoryRequest{Name: "B"})
	require.NoError(t, err)
	for _, n := range []string{"c", "a", "b"} {
		_, err := c.products.Create(ctx, dto.CreateProductRequest{Name: n, CategoryID: a.ID, Price: decimal.NewFromInt(100)})
		require.NoError(t, err)
	}
	_, err = c.products.Create(ctx, dto.CreateProductRequest{Name: "z", CategoryID: b.ID, Price: decimal.NewFromInt(100)})
	require.NoError(t, err)

	out, err := c.products.List(ctx, "", dto.PageRequest{Page: 1, PageSize: 2})
	require.NoError(t, err)
	assert.Equal(t, 4, out.Page.Count)
	require.Len(t, out.Items, 2)
	assert.Equal(t, "a", out.Items[0].Name)
	assert.Equal(t, "b", out.Items[1].Name)
	require.NotNil(t, out.Page.Next)
	assert.Nil(t, out.Page.Previous)

	out, err = c.products.List(ctx, b.ID, dto.PageRequest{})
	require.NoError(t, err)
	require.Len(t, out.Items, 1)
	assert.Equal(t, "z", out.Items[0].Name)
}

func TestProduct_DeleteConVentasEsConflicto(t *testing.T) {
	c := newCatalog(t)
	ctx := context.Background()

	cat, err := c.categories.Create(ctx, dto.CreateCategoryRequest{Name: "飲料"})
	require.NoError(t, err)
	p, err := c.products.Create(ctx, dto.CreateProductRequest{Name: "緑茶", CategoryID: cat.ID, Price: decimal.NewFromInt(150), Stock: 100})
	require.NoError(t, err)
	cust, err := c.customers.Create(ctx, dto.CreateCustomerRequest{Name: "佐藤花子", Email: "sato@example.com"})
	require.NoError(t, err)
	_, err = sales.NewCreateSaleUseCase(c.store, nil).Create(ctx, dto.CreateSaleRequest{
		CustomerID: cust.ID,
		Items:      []dto.SaleItemInput{{ProductID: p.ID, Quantity: 2}},
	})
	require.NoError(t, err)

	assert.ErrorIs(t, c.products.Delete(ctx, p.ID), domain.ErrConflict)
	assert.ErrorIs(t, c.customers.Delete(ctx, cust.ID), domain.ErrConflict)
}

func TestCustomer_EmailUnicoYValido(t *testing.T) {
	c := newCatalog(t)
	ctx := context.Background()

	_, err := c.customers.Create(ctx, dto.CreateCustomerRequest{Name: "鈴木一郎", Email: "suzuki@example.com", Phone: "090-1234-5678"})
	require.NoError(t, err)

	_, err = c.customers.Create(ctx, dto.CreateCustomerRequest{Name: "鈴木二郎", Email: "suzuki@example.com"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	_, err = c.customers.Create(ctx, dto.CreateCustomerRequest{Name: "x", Email: "Suzuki <suzuki@example.com>"})
	var verr *domain.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "email inválido", verr.Fields["email"])

	out, err := c.customers.List(ctx, dto.PageRequest{})
	require.NoError(t, err)
	assert.Equal(t, 1, out.Page.Count)
}
