package sales

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/jhoicas/product-management/internal/application/dto"
	"github.com/jhoicas/product-management/internal/domain"
	"github.com/jhoicas/product-management/internal/domain/entity"
	"github.com/jhoicas/product-management/internal/domain/repository"
)

// SaleItemUseCase mantiene líneas sueltas de una venta. Cada cambio recalcula
// el total de la venta en la misma transacción.
type SaleItemUseCase struct {
	repos    repository.Repositories
	txRunner TxRunner
}

// NewSaleItemUseCase construye el caso de uso.
func NewSaleItemUseCase(repos repository.Repositories, txRunner TxRunner) *SaleItemUseCase {
	return &SaleItemUseCase{repos: repos, txRunner: txRunner}
}

// GetByID obtiene una línea.
func (uc *SaleItemUseCase) GetByID(ctx context.Context, id string) (*dto.SaleItemResponse, error) {
	item, err := uc.repos.SaleItems.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("línea: obtener: %w", err)
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	out := dto.ToSaleItemResponse(item)
	return &out, nil
}

// List lista todas las líneas paginadas.
func (uc *SaleItemUseCase) List(ctx context.Context, page dto.PageRequest) (*dto.ListResponse[dto.SaleItemResponse], error) {
	page.DefaultPage()
	total, err := uc.repos.SaleItems.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("línea: contar: %w", err)
	}
	list, err := uc.repos.SaleItems.List(ctx, repository.Page{Limit: page.Limit(), Offset: page.Offset()})
	if err != nil {
		return nil, fmt.Errorf("línea: listar: %w", err)
	}
	items := make([]dto.SaleItemResponse, 0, len(list))
	for _, it := range list {
		items = append(items, dto.ToSaleItemResponse(it))
	}
	return &dto.ListResponse[dto.SaleItemResponse]{Items: items, Page: dto.NewPageResponse(page, total)}, nil
}

// Create agrega una línea con el precio vigente del producto.
func (uc *SaleItemUseCase) Create(ctx context.Context, in dto.CreateSaleItemRequest) (*dto.SaleItemResponse, error) {
	if in.Quantity <= 0 {
		return nil, domain.NewValidationError("quantity", "debe ser mayor que 0")
	}
	var item entity.SaleItem
	err := uc.txRunner.Run(ctx, func(repos repository.Repositories) error {
		sale, err := repos.Sales.GetByID(ctx, in.SaleID)
		if err != nil {
			return fmt.Errorf("línea: obtener venta: %w", err)
		}
		if sale == nil {
			return domain.NewValidationError("sale_id", "la venta no existe")
		}
		product, err := repos.Products.GetByID(ctx, in.ProductID)
		if err != nil {
			return fmt.Errorf("línea: obtener producto: %w", err)
		}
		if product == nil {
			return domain.NewValidationError("product_id", "el producto no existe")
		}
		item = entity.NewSaleItem(uuid.New().String(), sale.ID, product, in.Quantity)
		if err := repos.SaleItems.Create(ctx, &item); err != nil {
			return fmt.Errorf("línea: crear: %w", err)
		}
		return syncTotal(ctx, repos, sale.ID)
	})
	if err != nil {
		return nil, err
	}
	out := dto.ToSaleItemResponse(&item)
	return &out, nil
}

// Update cambia la cantidad y recalcula el total de la línea con su precio copiado.
func (uc *SaleItemUseCase) Update(ctx context.Context, id string, in dto.UpdateSaleItemRequest) (*dto.SaleItemResponse, error) {
	if in.Quantity <= 0 {
		return nil, domain.NewValidationError("quantity", "debe ser mayor que 0")
	}
	var item *entity.SaleItem
	err := uc.txRunner.Run(ctx, func(repos repository.Repositories) error {
		current, err := repos.SaleItems.GetByID(ctx, id)
		if err != nil {
			return fmt.Errorf("línea: obtener: %w", err)
		}
		if current == nil {
			return domain.ErrNotFound
		}
		current.Quantity = in.Quantity
		current.Reprice()
		if err := repos.SaleItems.Update(ctx, current); err != nil {
			return fmt.Errorf("línea: actualizar: %w", err)
		}
		item = current
		return syncTotal(ctx, repos, current.SaleID)
	})
	if err != nil {
		return nil, err
	}
	out := dto.ToSaleItemResponse(item)
	return &out, nil
}

// Delete elimina la línea y recalcula el total de su venta.
func (uc *SaleItemUseCase) Delete(ctx context.Context, id string) error {
	return uc.txRunner.Run(ctx, func(repos repository.Repositories) error {
		current, err := repos.SaleItems.GetByID(ctx, id)
		if err != nil {
			return fmt.Errorf("línea: obtener: %w", err)
		}
		if current == nil {
			return domain.ErrNotFound
		}
		if err := repos.SaleItems.Delete(ctx, id); err != nil {
			return fmt.Errorf("línea: eliminar: %w", err)
		}
		return syncTotal(ctx, repos, current.SaleID)
	})
}

func syncTotal(ctx context.Context, repos repository.Repositories, saleID string) error {
	total, err := repos.SaleItems.SumBySale(ctx, saleID)
	if err != nil {
		return fmt.Errorf("línea: sumar venta: %w", err)
	}
	if err := repos.Sales.UpdateTotal(ctx, saleID, total); err != nil {
		return fmt.Errorf("línea: actualizar total: %w", err)
	}
	return nil
}
