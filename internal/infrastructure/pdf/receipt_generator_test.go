package pdf_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/product-management/internal/application/sales"
	"github.com/jhoicas/product-management/internal/domain/entity"
	"github.com/jhoicas/product-management/internal/infrastructure/pdf"
)

func TestGenerateSaleReceipt_DevuelvePDF(t *testing.T) {
	product := &entity.Product{ID: "p1", Price: decimal.RequireFromString("12800")}
	item := entity.NewSaleItem("i1", "s1", product, 2)
	sale := &entity.Sale{
		ID: "s1", CustomerID: "c1", Status: entity.SaleStatusCompleted,
		SaleDate: time.Date(2024, 3, 1, 3, 0, 0, 0, time.UTC), Items: []entity.SaleItem{item},
	}
	sale.RecalculateTotal()
	customer := &entity.Customer{ID: "c1", Name: "Tanaka Taro", Email: "tanaka@example.com"}

	gen := pdf.NewReceiptGenerator("", time.UTC)
	out, err := gen.GenerateSaleReceipt(context.Background(), sale, customer, []sales.ReceiptLine{
		{SaleItem: item, ProductName: "Wireless Earbuds"},
	})

	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
}

func TestGenerateSaleReceipt_FuenteInexistente(t *testing.T) {
	gen := pdf.NewReceiptGenerator("/no/existe.ttf", nil)
	sale := &entity.Sale{ID: "s1", TotalAmount: decimal.Zero}

	_, err := gen.GenerateSaleReceipt(context.Background(), sale, &entity.Customer{}, nil)
	assert.Error(t, err)
}
