package repository

import (
	"context"

	"github.com/jhoicas/product-management/internal/domain/manufacturing"
)

// MfgProductRepository productos de fabricación.
type MfgProductRepository interface {
	Create(ctx context.Context, product *manufacturing.Product) error
	GetByID(ctx context.Context, id string) (*manufacturing.Product, error)
	GetByCode(ctx context.Context, code string) (*manufacturing.Product, error)
	// List ordena por código.
	List(ctx context.Context) ([]*manufacturing.Product, error)
	Delete(ctx context.Context, id string) error
}

// ProcessRepository procesos de fabricación.
type ProcessRepository interface {
	Create(ctx context.Context, process *manufacturing.Process) error
	GetByID(ctx context.Context, id string) (*manufacturing.Process, error)
	// List ordena por nombre.
	List(ctx context.Context) ([]*manufacturing.Process, error)
	Delete(ctx context.Context, id string) error
}

// ProductionOrderRepository órdenes de producción.
type ProductionOrderRepository interface {
	Create(ctx context.Context, order *manufacturing.ProductionOrder) error
	GetByID(ctx context.Context, id string) (*manufacturing.ProductionOrder, error)
	// List ordena por planned_date descendente y completa ProductCode/ProductName/ProcessName.
	List(ctx context.Context, status manufacturing.OrderStatus) ([]*manufacturing.ProductionOrder, error)
	UpdateStatus(ctx context.Context, id string, status manufacturing.OrderStatus) error
}

// InventoryRepository registros de inventario por ubicación.
type InventoryRepository interface {
	Create(ctx context.Context, inv *manufacturing.Inventory) error
	// List ordena por ubicación y código de producto; location vacío no filtra.
	List(ctx context.Context, location string) ([]*manufacturing.Inventory, error)
}
