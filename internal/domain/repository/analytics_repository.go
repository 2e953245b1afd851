package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/product-management/internal/domain/entity"
)

// SalesTotals resultado agregado de ventas bajo un filtro.
type SalesTotals struct {
	Count   int
	Revenue decimal.Decimal // suma de total_amount
}

// DailyRevenue ingresos de un día calendario (Day a medianoche en la zona pedida).
type DailyRevenue struct {
	Day     time.Time
	Count   int
	Revenue decimal.Decimal
}

// AnalyticsRepository consultas de solo lectura para el dashboard de ventas.
type AnalyticsRepository interface {
	// SalesTotals cuenta ventas y suma total_amount bajo el filtro.
	SalesTotals(ctx context.Context, filter SaleFilter) (SalesTotals, error)

	// CountByStatus cuenta ventas por estado bajo el filtro (el estado del filtro se ignora).
	CountByStatus(ctx context.Context, filter SaleFilter) (map[entity.SaleStatus]int, error)

	// DailyRevenue agrupa por día calendario en loc las ventas con from <= sale_date < to.
	// Solo devuelve los días con ventas, en orden ascendente.
	DailyRevenue(ctx context.Context, from, to time.Time, loc *time.Location, status entity.SaleStatus) ([]DailyRevenue, error)
}
