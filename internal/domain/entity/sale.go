package entity

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// SaleStatus estado de una venta.
type SaleStatus string

const (
	SaleStatusCompleted SaleStatus = "completed"
	SaleStatusPending   SaleStatus = "pending"
	SaleStatusCancelled SaleStatus = "cancelled"
)

// AllSaleStatuses devuelve los estados en orden estable.
func AllSaleStatuses() []SaleStatus {
	return []SaleStatus{SaleStatusCompleted, SaleStatusPending, SaleStatusCancelled}
}

// Valid indica si el estado es uno de los conocidos.
func (s SaleStatus) Valid() bool {
	switch s {
	case SaleStatusCompleted, SaleStatusPending, SaleStatusCancelled:
		return true
	}
	return false
}

// ParseSaleStatus normaliza y valida un estado recibido como texto.
func ParseSaleStatus(s string) (SaleStatus, bool) {
	st := SaleStatus(strings.ToLower(strings.TrimSpace(s)))
	return st, st.Valid()
}

// Sale representa la cabecera de una venta.
// TotalAmount es derivado: siempre igual a la suma de TotalPrice de sus líneas.
type Sale struct {
	ID          string
	CustomerID  string
	Status      SaleStatus
	SaleDate    time.Time
	TotalAmount decimal.Decimal
	Items       []SaleItem
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// RecalculateTotal fija TotalAmount a partir de Items.
func (s *Sale) RecalculateTotal() decimal.Decimal {
	s.TotalAmount = SumItems(s.Items)
	return s.TotalAmount
}

// SumItems suma TotalPrice de las líneas.
func SumItems(items []SaleItem) decimal.Decimal {
	total := decimal.Zero
	for _, it := range items {
		total = total.Add(it.TotalPrice)
	}
	return total
}
