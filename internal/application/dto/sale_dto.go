package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// SaleItemInput línea de una venta nueva.
type SaleItemInput struct {
	ProductID string `json:"product_id" validate:"required"`
	Quantity  int    `json:"quantity" validate:"required,gt=0"`
}

// CreateSaleRequest entrada para crear una venta con sus líneas.
// SaleDate vacío usa la hora actual; Status vacío equivale a pending.
type CreateSaleRequest struct {
	CustomerID string          `json:"customer_id" validate:"required"`
	Status     string          `json:"status" validate:"omitempty,oneof=completed pending cancelled"`
	SaleDate   *time.Time      `json:"sale_date"`
	Items      []SaleItemInput `json:"items" validate:"required,min=1,dive"`
}

// UpdateSaleRequest cambia cabecera; el total nunca se recibe.
type UpdateSaleRequest struct {
	CustomerID *string    `json:"customer_id" validate:"omitempty,min=1"`
	Status     *string    `json:"status" validate:"omitempty,oneof=completed pending cancelled"`
	SaleDate   *time.Time `json:"sale_date"`
}

// CreateSaleItemRequest agrega una línea a una venta existente.
type CreateSaleItemRequest struct {
	SaleID    string `json:"sale_id" validate:"required"`
	ProductID string `json:"product_id" validate:"required"`
	Quantity  int    `json:"quantity" validate:"required,gt=0"`
}

// UpdateSaleItemRequest cambia la cantidad de una línea (el precio copiado se conserva).
type UpdateSaleItemRequest struct {
	Quantity int `json:"quantity" validate:"required,gt=0"`
}

// SaleFilterRequest filtros del listado de ventas.
type SaleFilterRequest struct {
	From       string `query:"from"`
	To         string `query:"to"`
	Status     string `query:"status"`
	CustomerID string `query:"customer_id"`
}

// SaleItemResponse salida de una línea.
type SaleItemResponse struct {
	ID         string          `json:"id"`
	SaleID     string          `json:"sale_id"`
	ProductID  string          `json:"product_id"`
	Quantity   int             `json:"quantity"`
	UnitPrice  decimal.Decimal `json:"unit_price"`
	TotalPrice decimal.Decimal `json:"total_price"`
}

// SaleResponse salida de una venta. Items se omite en listados.
type SaleResponse struct {
	ID          string             `json:"id"`
	CustomerID  string             `json:"customer_id"`
	Status      string             `json:"status"`
	SaleDate    time.Time          `json:"sale_date"`
	TotalAmount decimal.Decimal    `json:"total_amount"`
	Items       []SaleItemResponse `json:"items,omitempty"`
	CreatedAt   time.Time          `json:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at"`
}
