package manufacturing

import (
	"strings"
	"time"
)

// OrderStatus estado de una orden de producción.
type OrderStatus string

const (
	OrderStatusPlanned    OrderStatus = "planned"
	OrderStatusInProgress OrderStatus = "in_progress"
	OrderStatusCompleted  OrderStatus = "completed"
	OrderStatusCanceled   OrderStatus = "canceled"
)

// Valid indica si el estado es conocido.
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPlanned, OrderStatusInProgress, OrderStatusCompleted, OrderStatusCanceled:
		return true
	}
	return false
}

// ParseOrderStatus valida un estado; vacío equivale a planned.
func ParseOrderStatus(s string) (OrderStatus, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return OrderStatusPlanned, true
	}
	st := OrderStatus(s)
	return st, st.Valid()
}

// ProductionOrder instrucción de fabricar Quantity unidades de un producto con un proceso.
// PlannedDate es una fecha (sin hora), guardada a medianoche UTC.
type ProductionOrder struct {
	ID          string
	ProductID   string
	ProcessID   string
	Quantity    int
	PlannedDate time.Time
	Status      OrderStatus
	Notes       string
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// Datos de lectura que completan los listados.
	ProductCode string
	ProductName string
	ProcessName string
}
