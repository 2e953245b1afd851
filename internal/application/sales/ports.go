// Package sales contiene los casos de uso de ventas: alta transaccional de una venta
// con sus líneas, mantenimiento de cabecera y líneas, y el comprobante PDF.
package sales

import (
	"context"

	"github.com/jhoicas/product-management/internal/domain/entity"
	"github.com/jhoicas/product-management/internal/domain/repository"
)

// TxRunner ejecuta fn dentro de una transacción. Si fn devuelve error se hace rollback
// de todo lo escrito con los repos recibidos; si no, commit.
// Dentro de fn solo deben usarse los repos del argumento.
type TxRunner interface {
	Run(ctx context.Context, fn func(repos repository.Repositories) error) error
}

// ReceiptLine línea de venta con el nombre del producto para el comprobante.
type ReceiptLine struct {
	entity.SaleItem
	ProductName string
}

// ReceiptGenerator genera el comprobante de una venta en PDF.
type ReceiptGenerator interface {
	GenerateSaleReceipt(ctx context.Context, sale *entity.Sale, customer *entity.Customer, lines []ReceiptLine) ([]byte, error)
}
