package entity_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/product-management/internal/domain/entity"
)

func TestNewSaleItem_CopiaPrecioYCalculaTotal(t *testing.T) {
	product := &entity.Product{ID: "p1", Price: decimal.RequireFromString("89800")}

	item := entity.NewSaleItem("i1", "s1", product, 3)

	assert.Equal(t, "p1", item.ProductID)
	assert.True(t, item.UnitPrice.Equal(decimal.RequireFromString("89800")))
	assert.True(t, item.TotalPrice.Equal(decimal.RequireFromString("269400")))

	// Cambiar el precio del producto no altera la línea ya creada.
	product.Price = decimal.NewFromInt(1)
	assert.True(t, item.UnitPrice.Equal(decimal.RequireFromString("89800")))
}

func TestSale_RecalculateTotal(t *testing.T) {
	a := &entity.Product{ID: "a", Price: decimal.RequireFromString("1800")}
	b := &entity.Product{ID: "b", Price: decimal.RequireFromString("2800.50")}
	sale := entity.Sale{Items: []entity.SaleItem{
		entity.NewSaleItem("1", "s", a, 2),
		entity.NewSaleItem("2", "s", b, 1),
	}}

	total := sale.RecalculateTotal()

	assert.True(t, total.Equal(decimal.RequireFromString("6400.50")))
	assert.True(t, sale.TotalAmount.Equal(total))
}

func TestParseSaleStatus(t *testing.T) {
	st, ok := entity.ParseSaleStatus(" Completed ")
	assert.True(t, ok)
	assert.Equal(t, entity.SaleStatusCompleted, st)

	_, ok = entity.ParseSaleStatus("refunded")
	assert.False(t, ok)
	assert.Len(t, entity.AllSaleStatuses(), 3)
}

func TestProduct_IsLowStock(t *testing.T) {
	p := entity.Product{Stock: 9}
	assert.True(t, p.IsLowStock(10))
	p.Stock = 10
	assert.False(t, p.IsLowStock(10))
}
