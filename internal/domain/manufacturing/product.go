// Package manufacturing contiene las entidades del componente de fabricación:
// productos por código, procesos, órdenes de producción e inventario por ubicación.
// Es independiente del catálogo de ventas; no comparte tablas ni referencias.
package manufacturing

import "time"

// Product producto fabricado. Code es único.
type Product struct {
	ID          string
	Code        string
	Name        string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Process proceso de fabricación. StandardTime en minutos.
type Process struct {
	ID           string
	Name         string
	Description  string
	StandardTime int
	CreatedAt    time.Time
}
