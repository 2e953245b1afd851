package entity

import "github.com/shopspring/decimal"

// SaleItem representa una línea de venta. UnitPrice es una copia del precio del producto
// al momento de la venta; TotalPrice = UnitPrice × Quantity.
type SaleItem struct {
	ID         string
	SaleID     string
	ProductID  string
	Quantity   int
	UnitPrice  decimal.Decimal
	TotalPrice decimal.Decimal
}

// NewSaleItem construye la línea copiando el precio actual del producto.
func NewSaleItem(id, saleID string, product *Product, quantity int) SaleItem {
	item := SaleItem{
		ID:        id,
		SaleID:    saleID,
		ProductID: product.ID,
		Quantity:  quantity,
		UnitPrice: product.Price,
	}
	item.Reprice()
	return item
}

// Reprice recalcula TotalPrice tras cambiar Quantity o UnitPrice.
func (i *SaleItem) Reprice() {
	i.TotalPrice = i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}
