package sales

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/product-management/internal/application/dto"
	"github.com/jhoicas/product-management/internal/domain"
	"github.com/jhoicas/product-management/internal/domain/entity"
	"github.com/jhoicas/product-management/internal/domain/repository"
)

// CreateSaleUseCase crea una venta y sus líneas en una sola transacción.
type CreateSaleUseCase struct {
	txRunner TxRunner
	now      func() time.Time
}

// NewCreateSaleUseCase construye el caso de uso. now nil usa time.Now.
func NewCreateSaleUseCase(txRunner TxRunner, now func() time.Time) *CreateSaleUseCase {
	if now == nil {
		now = time.Now
	}
	return &CreateSaleUseCase{txRunner: txRunner, now: now}
}

// Create valida la entrada y persiste cabecera, líneas y total.
// El total guardado es siempre la suma de las líneas creadas; si algo falla no queda nada.
func (uc *CreateSaleUseCase) Create(ctx context.Context, in dto.CreateSaleRequest) (*dto.SaleResponse, error) {
	verr := &domain.ValidationError{}
	if in.CustomerID == "" {
		verr.Add("customer_id", "es obligatorio")
	}
	status := entity.SaleStatusPending
	if in.Status != "" {
		st, ok := entity.ParseSaleStatus(in.Status)
		if !ok {
			verr.Add("status", "estado desconocido")
		}
		status = st
	}
	if len(in.Items) == 0 {
		verr.Add("items", "la venta debe tener al menos una línea")
	}
	for i, it := range in.Items {
		if it.ProductID == "" {
			verr.Add(fmt.Sprintf("items[%d].product_id", i), "es obligatorio")
		}
		if it.Quantity <= 0 {
			verr.Add(fmt.Sprintf("items[%d].quantity", i), "debe ser mayor que 0")
		}
	}
	if err := verr.OrNil(); err != nil {
		return nil, err
	}

	now := uc.now().UTC()
	saleDate := now
	if in.SaleDate != nil {
		saleDate = in.SaleDate.UTC()
	}

	var sale *entity.Sale
	err := uc.txRunner.Run(ctx, func(repos repository.Repositories) error {
		customer, err := repos.Customers.GetByID(ctx, in.CustomerID)
		if err != nil {
			return fmt.Errorf("venta: obtener cliente: %w", err)
		}
		if customer == nil {
			return domain.NewValidationError("customer_id", "el cliente no existe")
		}

		products := make(map[string]*entity.Product, len(in.Items))
		lookup := &domain.ValidationError{}
		for i, it := range in.Items {
			if _, ok := products[it.ProductID]; ok {
				continue
			}
			p, err := repos.Products.GetByID(ctx, it.ProductID)
			if err != nil {
				return fmt.Errorf("venta: obtener producto: %w", err)
			}
			if p == nil {
				lookup.Add(fmt.Sprintf("items[%d].product_id", i), "el producto no existe")
				continue
			}
			products[it.ProductID] = p
		}
		if err := lookup.OrNil(); err != nil {
			return err
		}

		sale = &entity.Sale{
			ID:          uuid.New().String(),
			CustomerID:  customer.ID,
			Status:      status,
			SaleDate:    saleDate,
			TotalAmount: decimal.Zero,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		if err := repos.Sales.Create(ctx, sale); err != nil {
			return fmt.Errorf("venta: crear cabecera: %w", err)
		}

		sale.Items = make([]entity.SaleItem, 0, len(in.Items))
		for _, it := range in.Items {
			item := entity.NewSaleItem(uuid.New().String(), sale.ID, products[it.ProductID], it.Quantity)
			if err := repos.SaleItems.Create(ctx, &item); err != nil {
				return fmt.Errorf("venta: crear línea: %w", err)
			}
			sale.Items = append(sale.Items, item)
		}

		if err := repos.Sales.UpdateTotal(ctx, sale.ID, sale.RecalculateTotal()); err != nil {
			return fmt.Errorf("venta: actualizar total: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	out := dto.ToSaleResponse(sale)
	return &out, nil
}
