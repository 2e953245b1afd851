package dto

import "time"

// CreateMfgProductRequest producto de fabricación.
type CreateMfgProductRequest struct {
	Code        string `json:"code" validate:"required,max=50"`
	Name        string `json:"name" validate:"required,max=200"`
	Description string `json:"description"`
}

// MfgProductResponse salida de un producto de fabricación.
type MfgProductResponse struct {
	ID          string    `json:"id"`
	Code        string    `json:"code"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CreateProcessRequest proceso de fabricación.
type CreateProcessRequest struct {
	Name         string `json:"name" validate:"required,max=100"`
	Description  string `json:"description"`
	StandardTime int    `json:"standard_time" validate:"min=0"`
}

// ProcessResponse salida de un proceso.
type ProcessResponse struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	StandardTime int       `json:"standard_time"`
	CreatedAt    time.Time `json:"created_at"`
}

// CreateProductionOrderRequest entrada del formulario de orden de producción.
// La validación de referencias y cantidad la hace el caso de uso para devolver mensajes por campo.
type CreateProductionOrderRequest struct {
	ProductID   string `json:"product_id"`
	ProcessID   string `json:"process_id"`
	Quantity    int    `json:"quantity"`
	PlannedDate string `json:"planned_date"` // YYYY-MM-DD
	Status      string `json:"status"`
	Notes       string `json:"notes"`
}

// UpdateOrderStatusRequest cambio de estado de una orden.
type UpdateOrderStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=planned in_progress completed canceled"`
}

// ProductionOrderResponse salida de una orden.
type ProductionOrderResponse struct {
	ID          string    `json:"id"`
	ProductID   string    `json:"product_id"`
	ProductCode string    `json:"product_code,omitempty"`
	ProductName string    `json:"product_name,omitempty"`
	ProcessID   string    `json:"process_id"`
	ProcessName string    `json:"process_name,omitempty"`
	Quantity    int       `json:"quantity"`
	PlannedDate string    `json:"planned_date"`
	Status      string    `json:"status"`
	Notes       string    `json:"notes"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ProductionOrderListResponse listado con los selectores del formulario.
type ProductionOrderListResponse struct {
	Orders    []ProductionOrderResponse `json:"orders"`
	Products  []MfgProductResponse      `json:"products"`
	Processes []ProcessResponse         `json:"processes"`
}

// CreateInventoryRequest alta de inventario en una ubicación.
type CreateInventoryRequest struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
	Location  string `json:"location"`
}

// InventoryResponse salida de un registro de inventario.
type InventoryResponse struct {
	ID          string    `json:"id"`
	ProductID   string    `json:"product_id"`
	ProductCode string    `json:"product_code,omitempty"`
	ProductName string    `json:"product_name,omitempty"`
	Quantity    int       `json:"quantity"`
	Location    string    `json:"location"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// InventoryListResponse listado con el selector de productos.
type InventoryListResponse struct {
	Inventories []InventoryResponse  `json:"inventories"`
	Products    []MfgProductResponse `json:"products"`
}
