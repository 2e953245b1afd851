package sales

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/product-management/internal/application/dto"
	"github.com/jhoicas/product-management/internal/domain"
	"github.com/jhoicas/product-management/internal/domain/entity"
	"github.com/jhoicas/product-management/internal/domain/repository"
)

// SaleUseCase consulta y mantiene la cabecera de las ventas.
type SaleUseCase struct {
	repos     repository.Repositories
	txRunner  TxRunner
	generator ReceiptGenerator
	loc       *time.Location
	now       func() time.Time
}

// NewSaleUseCase construye el caso de uso. loc es la zona en la que se interpretan
// las fechas de los filtros.
func NewSaleUseCase(repos repository.Repositories, txRunner TxRunner, generator ReceiptGenerator, loc *time.Location) *SaleUseCase {
	if loc == nil {
		loc = time.UTC
	}
	return &SaleUseCase{repos: repos, txRunner: txRunner, generator: generator, loc: loc, now: time.Now}
}

// GetByID devuelve la venta con sus líneas.
func (uc *SaleUseCase) GetByID(ctx context.Context, id string) (*dto.SaleResponse, error) {
	sale, err := uc.load(ctx, id)
	if err != nil {
		return nil, err
	}
	out := dto.ToSaleResponse(sale)
	return &out, nil
}

func (uc *SaleUseCase) load(ctx context.Context, id string) (*entity.Sale, error) {
	sale, err := uc.repos.Sales.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("venta: obtener: %w", err)
	}
	if sale == nil {
		return nil, domain.ErrNotFound
	}
	items, err := uc.repos.SaleItems.ListBySale(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("venta: obtener líneas: %w", err)
	}
	sale.Items = items
	return sale, nil
}

// List lista ventas por fecha descendente. Las líneas no se incluyen.
func (uc *SaleUseCase) List(ctx context.Context, in dto.SaleFilterRequest, page dto.PageRequest) (*dto.ListResponse[dto.SaleResponse], error) {
	filter, err := in.ToFilter(uc.loc)
	if err != nil {
		return nil, err
	}
	page.DefaultPage()
	total, err := uc.repos.Sales.Count(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("venta: contar: %w", err)
	}
	list, err := uc.repos.Sales.List(ctx, filter, repository.Page{Limit: page.Limit(), Offset: page.Offset()})
	if err != nil {
		return nil, fmt.Errorf("venta: listar: %w", err)
	}
	items := make([]dto.SaleResponse, 0, len(list))
	for _, s := range list {
		items = append(items, dto.ToSaleResponse(s))
	}
	return &dto.ListResponse[dto.SaleResponse]{Items: items, Page: dto.NewPageResponse(page, total)}, nil
}

// Update cambia cliente, estado o fecha. El total no se modifica aquí.
func (uc *SaleUseCase) Update(ctx context.Context, id string, in dto.UpdateSaleRequest) (*dto.SaleResponse, error) {
	var sale *entity.Sale
	err := uc.txRunner.Run(ctx, func(repos repository.Repositories) error {
		current, err := repos.Sales.GetByID(ctx, id)
		if err != nil {
			return fmt.Errorf("venta: obtener: %w", err)
		}
		if current == nil {
			return domain.ErrNotFound
		}
		verr := &domain.ValidationError{}
		if in.CustomerID != nil {
			c, err := repos.Customers.GetByID(ctx, *in.CustomerID)
			if err != nil {
				return fmt.Errorf("venta: obtener cliente: %w", err)
			}
			if c == nil {
				verr.Add("customer_id", "el cliente no existe")
			} else {
				current.CustomerID = c.ID
			}
		}
		if in.Status != nil {
			st, ok := entity.ParseSaleStatus(*in.Status)
			if !ok {
				verr.Add("status", "estado desconocido")
			}
			current.Status = st
		}
		if in.SaleDate != nil {
			current.SaleDate = in.SaleDate.UTC()
		}
		if err := verr.OrNil(); err != nil {
			return err
		}
		current.UpdatedAt = uc.now().UTC()
		if err := repos.Sales.Update(ctx, current); err != nil {
			return fmt.Errorf("venta: actualizar: %w", err)
		}
		items, err := repos.SaleItems.ListBySale(ctx, id)
		if err != nil {
			return fmt.Errorf("venta: obtener líneas: %w", err)
		}
		current.Items = items
		sale = current
		return nil
	})
	if err != nil {
		return nil, err
	}
	out := dto.ToSaleResponse(sale)
	return &out, nil
}

// Delete elimina la venta junto con sus líneas.
func (uc *SaleUseCase) Delete(ctx context.Context, id string) error {
	sale, err := uc.repos.Sales.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("venta: obtener: %w", err)
	}
	if sale == nil {
		return domain.ErrNotFound
	}
	if err := uc.repos.Sales.Delete(ctx, id); err != nil {
		return fmt.Errorf("venta: eliminar: %w", err)
	}
	return nil
}

// Receipt genera el comprobante PDF. Devuelve los bytes y el nombre de archivo sugerido.
func (uc *SaleUseCase) Receipt(ctx context.Context, id string) ([]byte, string, error) {
	if uc.generator == nil {
		return nil, "", fmt.Errorf("venta: generador de comprobantes no configurado")
	}
	sale, err := uc.load(ctx, id)
	if err != nil {
		return nil, "", err
	}
	customer, err := uc.repos.Customers.GetByID(ctx, sale.CustomerID)
	if err != nil {
		return nil, "", fmt.Errorf("venta: obtener cliente: %w", err)
	}
	if customer == nil {
		return nil, "", fmt.Errorf("venta: cliente %s: %w", sale.CustomerID, domain.ErrNotFound)
	}

	lines := make([]ReceiptLine, 0, len(sale.Items))
	for _, it := range sale.Items {
		name := "Producto " + it.ProductID
		if p, pErr := uc.repos.Products.GetByID(ctx, it.ProductID); pErr == nil && p != nil {
			name = p.Name
		}
		lines = append(lines, ReceiptLine{SaleItem: it, ProductName: name})
	}

	pdf, err := uc.generator.GenerateSaleReceipt(ctx, sale, customer, lines)
	if err != nil {
		return nil, "", fmt.Errorf("venta: generar comprobante: %w", err)
	}
	return pdf, fmt.Sprintf("venta_%s.pdf", sale.ID), nil
}
