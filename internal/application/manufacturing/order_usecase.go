package manufacturing

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/product-management/internal/application/dto"
	"github.com/jhoicas/product-management/internal/domain"
	mfg "github.com/jhoicas/product-management/internal/domain/manufacturing"
	"github.com/jhoicas/product-management/internal/domain/repository"
)

// ProductionOrderUseCase órdenes de producción.
type ProductionOrderUseCase struct {
	orders    repository.ProductionOrderRepository
	products  repository.MfgProductRepository
	processes repository.ProcessRepository
}

// NewProductionOrderUseCase construye el caso de uso.
func NewProductionOrderUseCase(
	orders repository.ProductionOrderRepository,
	products repository.MfgProductRepository,
	processes repository.ProcessRepository,
) *ProductionOrderUseCase {
	return &ProductionOrderUseCase{orders: orders, products: products, processes: processes}
}

// List devuelve las órdenes (planned_date descendente) junto con los productos y
// procesos disponibles para el formulario de alta. status vacío no filtra.
func (uc *ProductionOrderUseCase) List(ctx context.Context, status string) (*dto.ProductionOrderListResponse, error) {
	var st mfg.OrderStatus
	if strings.TrimSpace(status) != "" {
		parsed, ok := mfg.ParseOrderStatus(status)
		if !ok {
			return nil, domain.NewValidationError("status", "estado desconocido")
		}
		st = parsed
	}
	orders, err := uc.orders.List(ctx, st)
	if err != nil {
		return nil, fmt.Errorf("fabricación: listar órdenes: %w", err)
	}
	products, err := uc.products.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("fabricación: listar productos: %w", err)
	}
	processes, err := uc.processes.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("fabricación: listar procesos: %w", err)
	}
	out := &dto.ProductionOrderListResponse{
		Orders:    make([]dto.ProductionOrderResponse, 0, len(orders)),
		Products:  toProductResponses(products),
		Processes: toProcessResponses(processes),
	}
	for _, o := range orders {
		out.Orders = append(out.Orders, dto.ToProductionOrderResponse(o))
	}
	return out, nil
}

// Create valida referencias, cantidad y fecha; devuelve un ValidationError con
// todos los campos inválidos.
func (uc *ProductionOrderUseCase) Create(ctx context.Context, in dto.CreateProductionOrderRequest) (*dto.ProductionOrderResponse, error) {
	verr := &domain.ValidationError{}

	var product *mfg.Product
	if in.ProductID == "" {
		verr.Add("product_id", "es obligatorio")
	} else {
		p, err := uc.products.GetByID(ctx, in.ProductID)
		if err != nil {
			return nil, fmt.Errorf("fabricación: obtener producto: %w", err)
		}
		if p == nil {
			verr.Add("product_id", "el producto no existe")
		}
		product = p
	}

	var process *mfg.Process
	if in.ProcessID == "" {
		verr.Add("process_id", "es obligatorio")
	} else {
		p, err := uc.processes.GetByID(ctx, in.ProcessID)
		if err != nil {
			return nil, fmt.Errorf("fabricación: obtener proceso: %w", err)
		}
		if p == nil {
			verr.Add("process_id", "el proceso no existe")
		}
		process = p
	}

	if in.Quantity <= 0 {
		verr.Add("quantity", "debe ser mayor que 0")
	}

	var planned time.Time
	if strings.TrimSpace(in.PlannedDate) == "" {
		verr.Add("planned_date", "es obligatorio")
	} else {
		d, err := time.Parse(dto.DateLayout, strings.TrimSpace(in.PlannedDate))
		if err != nil {
			verr.Add("planned_date", "formato de fecha inválido, use YYYY-MM-DD")
		}
		planned = d
	}

	status, ok := mfg.ParseOrderStatus(in.Status)
	if !ok {
		verr.Add("status", "estado desconocido")
	}

	if err := verr.OrNil(); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	o := &mfg.ProductionOrder{
		ID:          uuid.New().String(),
		ProductID:   product.ID,
		ProcessID:   process.ID,
		Quantity:    in.Quantity,
		PlannedDate: planned,
		Status:      status,
		Notes:       in.Notes,
		CreatedAt:   now,
		UpdatedAt:   now,
		ProductCode: product.Code,
		ProductName: product.Name,
		ProcessName: process.Name,
	}
	if err := uc.orders.Create(ctx, o); err != nil {
		return nil, fmt.Errorf("fabricación: crear orden: %w", err)
	}
	out := dto.ToProductionOrderResponse(o)
	return &out, nil
}

// UpdateStatus cambia el estado de una orden.
func (uc *ProductionOrderUseCase) UpdateStatus(ctx context.Context, id string, in dto.UpdateOrderStatusRequest) (*dto.ProductionOrderResponse, error) {
	if strings.TrimSpace(in.Status) == "" {
		return nil, domain.NewValidationError("status", "es obligatorio")
	}
	status, ok := mfg.ParseOrderStatus(in.Status)
	if !ok {
		return nil, domain.NewValidationError("status", "estado desconocido")
	}
	o, err := uc.orders.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("fabricación: obtener orden: %w", err)
	}
	if o == nil {
		return nil, domain.ErrNotFound
	}
	if err := uc.orders.UpdateStatus(ctx, id, status); err != nil {
		return nil, fmt.Errorf("fabricación: actualizar estado: %w", err)
	}
	o.Status = status
	o.UpdatedAt = time.Now().UTC()
	out := dto.ToProductionOrderResponse(o)
	return &out, nil
}
