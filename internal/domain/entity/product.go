package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del catálogo de ventas.
// Name es único; Price es el precio vigente, que se copia a cada línea de venta.
type Product struct {
	ID          string
	Name        string
	Description string
	CategoryID  string
	Price       decimal.Decimal
	Stock       int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// IsLowStock indica si el stock está por debajo del umbral de reposición.
func (p *Product) IsLowStock(threshold int) bool {
	return p.Stock < threshold
}
