package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/product-management/internal/domain/entity"
)

// SaleFilter filtros de ventas. From es inclusivo y To exclusivo; campos vacíos no filtran.
type SaleFilter struct {
	From       *time.Time
	To         *time.Time
	Status     entity.SaleStatus
	CustomerID string
}

// SaleRepository persistencia de la cabecera de venta. Items no se cargan aquí.
type SaleRepository interface {
	Create(ctx context.Context, sale *entity.Sale) error
	GetByID(ctx context.Context, id string) (*entity.Sale, error)
	// List ordena por sale_date descendente.
	List(ctx context.Context, filter SaleFilter, page Page) ([]*entity.Sale, error)
	Count(ctx context.Context, filter SaleFilter) (int, error)
	// ListByCustomer devuelve todas las ventas del cliente, sale_date descendente.
	ListByCustomer(ctx context.Context, customerID string) ([]*entity.Sale, error)
	// Update modifica cliente, estado y fecha. No toca total_amount.
	Update(ctx context.Context, sale *entity.Sale) error
	UpdateTotal(ctx context.Context, saleID string, total decimal.Decimal) error
	// Delete elimina la venta y sus líneas.
	Delete(ctx context.Context, id string) error
}

// SaleItemRepository persistencia de líneas de venta.
type SaleItemRepository interface {
	Create(ctx context.Context, item *entity.SaleItem) error
	GetByID(ctx context.Context, id string) (*entity.SaleItem, error)
	ListBySale(ctx context.Context, saleID string) ([]entity.SaleItem, error)
	// ListBySales agrupa las líneas por sale_id.
	ListBySales(ctx context.Context, saleIDs []string) (map[string][]entity.SaleItem, error)
	List(ctx context.Context, page Page) ([]*entity.SaleItem, error)
	Count(ctx context.Context) (int, error)
	Update(ctx context.Context, item *entity.SaleItem) error
	Delete(ctx context.Context, id string) error
	// SumBySale suma total_price de las líneas de una venta (cero si no hay).
	SumBySale(ctx context.Context, saleID string) (decimal.Decimal, error)
}
