package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/product-management/internal/domain/entity"
	"github.com/jhoicas/product-management/internal/domain/repository"
)

var _ repository.AnalyticsRepository = (*AnalyticsRepo)(nil)

// AnalyticsRepo consultas de solo lectura para el dashboard de ventas.
type AnalyticsRepo struct {
	q Querier
}

// NewAnalyticsRepository construye el adaptador de analítica.
func NewAnalyticsRepository(q Querier) *AnalyticsRepo {
	return &AnalyticsRepo{q: q}
}

// SalesTotals cuenta ventas y suma total_amount bajo el filtro.
func (r *AnalyticsRepo) SalesTotals(ctx context.Context, filter repository.SaleFilter) (repository.SalesTotals, error) {
	where, args := saleWhere(filter)
	query := `SELECT COUNT(*), COALESCE(SUM(total_amount), 0) FROM sales` + where

	var out repository.SalesTotals
	if err := r.q.QueryRow(ctx, query, args...).Scan(&out.Count, &out.Revenue); err != nil {
		return repository.SalesTotals{}, fmt.Errorf("analytics.SalesTotals: %w", err)
	}
	return out, nil
}

// CountByStatus cuenta ventas por estado; el estado del filtro se ignora.
func (r *AnalyticsRepo) CountByStatus(ctx context.Context, filter repository.SaleFilter) (map[entity.SaleStatus]int, error) {
	filter.Status = ""
	where, args := saleWhere(filter)
	query := `SELECT status, COUNT(*) FROM sales` + where + ` GROUP BY status`

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("analytics.CountByStatus: %w", err)
	}
	defer rows.Close()

	out := make(map[entity.SaleStatus]int)
	for rows.Next() {
		var status string
		var n int
		if err := rows.Scan(&status, &n); err != nil {
			return nil, fmt.Errorf("analytics.CountByStatus scan: %w", err)
		}
		out[entity.SaleStatus(status)] = n
	}
	return out, rows.Err()
}

// DailyRevenue agrupa por día calendario en loc, con from <= sale_date < to.
// El día se calcula en SQL con AT TIME ZONE para no depender de la zona de la sesión.
func (r *AnalyticsRepo) DailyRevenue(
	ctx context.Context,
	from, to time.Time,
	loc *time.Location,
	status entity.SaleStatus,
) ([]repository.DailyRevenue, error) {
	const query = `
	SELECT
	    to_char((sale_date AT TIME ZONE $3)::date, 'YYYY-MM-DD') AS day,
	    COUNT(*)                                                 AS sales,
	    COALESCE(SUM(total_amount), 0)                           AS revenue
	FROM sales
	WHERE sale_date >= $1
	  AND sale_date <  $2
	  AND ($4 = '' OR status = $4)
	GROUP BY day
	ORDER BY day`

	rows, err := r.q.Query(ctx, query, from, to, loc.String(), string(status))
	if err != nil {
		return nil, fmt.Errorf("analytics.DailyRevenue: %w", err)
	}
	defer rows.Close()

	var results []repository.DailyRevenue
	for rows.Next() {
		var day string
		var row repository.DailyRevenue
		var revenue decimal.Decimal
		if err := rows.Scan(&day, &row.Count, &revenue); err != nil {
			return nil, fmt.Errorf("analytics.DailyRevenue scan: %w", err)
		}
		d, err := time.ParseInLocation("2006-01-02", day, loc)
		if err != nil {
			return nil, fmt.Errorf("analytics.DailyRevenue día %q: %w", day, err)
		}
		row.Day = d
		row.Revenue = revenue
		results = append(results, row)
	}
	return results, rows.Err()
}
