package dto

import (
	"github.com/jhoicas/product-management/internal/domain/entity"
	"github.com/jhoicas/product-management/internal/domain/manufacturing"
)

// DateLayout formato de fechas (sin hora) en la API.
const DateLayout = "2006-01-02"

// ToCategoryResponse convierte la entidad a DTO.
func ToCategoryResponse(c *entity.Category) CategoryResponse {
	return CategoryResponse{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

// ToProductResponse convierte la entidad a DTO.
func ToProductResponse(p *entity.Product) ProductResponse {
	return ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		CategoryID:  p.CategoryID,
		Price:       p.Price,
		Stock:       p.Stock,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

// ToProductResponses convierte una lista.
func ToProductResponses(list []*entity.Product) []ProductResponse {
	out := make([]ProductResponse, 0, len(list))
	for _, p := range list {
		out = append(out, ToProductResponse(p))
	}
	return out
}

// ToCustomerResponse convierte la entidad a DTO.
func ToCustomerResponse(c *entity.Customer) CustomerResponse {
	return CustomerResponse{
		ID:        c.ID,
		Name:      c.Name,
		Email:     c.Email,
		Phone:     c.Phone,
		Address:   c.Address,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

// ToSaleItemResponse convierte una línea.
func ToSaleItemResponse(i *entity.SaleItem) SaleItemResponse {
	return SaleItemResponse{
		ID:         i.ID,
		SaleID:     i.SaleID,
		ProductID:  i.ProductID,
		Quantity:   i.Quantity,
		UnitPrice:  i.UnitPrice,
		TotalPrice: i.TotalPrice,
	}
}

// ToSaleResponse convierte la venta; incluye Items si la entidad los trae cargados.
func ToSaleResponse(s *entity.Sale) SaleResponse {
	out := SaleResponse{
		ID:          s.ID,
		CustomerID:  s.CustomerID,
		Status:      string(s.Status),
		SaleDate:    s.SaleDate,
		TotalAmount: s.TotalAmount,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
	if len(s.Items) > 0 {
		out.Items = make([]SaleItemResponse, 0, len(s.Items))
		for i := range s.Items {
			out.Items = append(out.Items, ToSaleItemResponse(&s.Items[i]))
		}
	}
	return out
}

// ToMfgProductResponse convierte un producto de fabricación.
func ToMfgProductResponse(p *manufacturing.Product) MfgProductResponse {
	return MfgProductResponse{
		ID:          p.ID,
		Code:        p.Code,
		Name:        p.Name,
		Description: p.Description,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

// ToProcessResponse convierte un proceso.
func ToProcessResponse(p *manufacturing.Process) ProcessResponse {
	return ProcessResponse{
		ID:           p.ID,
		Name:         p.Name,
		Description:  p.Description,
		StandardTime: p.StandardTime,
		CreatedAt:    p.CreatedAt,
	}
}

// ToProductionOrderResponse convierte una orden.
func ToProductionOrderResponse(o *manufacturing.ProductionOrder) ProductionOrderResponse {
	return ProductionOrderResponse{
		ID:          o.ID,
		ProductID:   o.ProductID,
		ProductCode: o.ProductCode,
		ProductName: o.ProductName,
		ProcessID:   o.ProcessID,
		ProcessName: o.ProcessName,
		Quantity:    o.Quantity,
		PlannedDate: o.PlannedDate.Format(DateLayout),
		Status:      string(o.Status),
		Notes:       o.Notes,
		CreatedAt:   o.CreatedAt,
		UpdatedAt:   o.UpdatedAt,
	}
}

// ToInventoryResponse convierte un registro de inventario.
func ToInventoryResponse(i *manufacturing.Inventory) InventoryResponse {
	return InventoryResponse{
		ID:          i.ID,
		ProductID:   i.ProductID,
		ProductCode: i.ProductCode,
		ProductName: i.ProductName,
		Quantity:    i.Quantity,
		Location:    i.Location,
		UpdatedAt:   i.UpdatedAt,
	}
}
