package repository

import (
	"context"

	"github.com/jhoicas/product-management/internal/domain/entity"
)

// ProductFilter filtros opcionales del listado de productos.
type ProductFilter struct {
	CategoryID string
}

// ProductRepository define el puerto de persistencia para Product.
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	GetByName(ctx context.Context, name string) (*entity.Product, error)
	// List ordena por nombre.
	List(ctx context.Context, filter ProductFilter, page Page) ([]*entity.Product, error)
	Count(ctx context.Context, filter ProductFilter) (int, error)
	// ListAll lista todos los productos sin paginar (seed, selectores).
	ListAll(ctx context.Context) ([]*entity.Product, error)
	// ListLowStock devuelve los productos con stock < threshold, de menor a mayor stock.
	ListLowStock(ctx context.Context, threshold int) ([]*entity.Product, error)
	Update(ctx context.Context, product *entity.Product) error
	Delete(ctx context.Context, id string) error
}
