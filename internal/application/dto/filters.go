package dto

import (
	"strings"
	"time"

	"github.com/jhoicas/product-management/internal/domain"
	"github.com/jhoicas/product-management/internal/domain/entity"
	"github.com/jhoicas/product-management/internal/domain/repository"
)

// ParseDateRange interpreta from/to (YYYY-MM-DD, ambos inclusivos) en loc.
// Devuelve el rango semiabierto [inicio de from, inicio del día siguiente a to).
func ParseDateRange(from, to string, loc *time.Location) (*time.Time, *time.Time, error) {
	verr := &domain.ValidationError{}
	var start, end *time.Time
	if s := strings.TrimSpace(from); s != "" {
		d, err := time.ParseInLocation(DateLayout, s, loc)
		if err != nil {
			verr.Add("from", "formato de fecha inválido, use YYYY-MM-DD")
		} else {
			start = &d
		}
	}
	if s := strings.TrimSpace(to); s != "" {
		d, err := time.ParseInLocation(DateLayout, s, loc)
		if err != nil {
			verr.Add("to", "formato de fecha inválido, use YYYY-MM-DD")
		} else {
			next := d.AddDate(0, 0, 1)
			end = &next
		}
	}
	if start != nil && end != nil && !start.Before(*end) {
		verr.Add("from", "debe ser anterior o igual a to")
	}
	if err := verr.OrNil(); err != nil {
		return nil, nil, err
	}
	return start, end, nil
}

func parseStatus(s string, verr *domain.ValidationError) entity.SaleStatus {
	if strings.TrimSpace(s) == "" {
		return ""
	}
	st, ok := entity.ParseSaleStatus(s)
	if !ok {
		verr.Add("status", "estado desconocido")
	}
	return st
}

// ToFilter traduce los parámetros del listado al filtro de repositorio.
func (r SaleFilterRequest) ToFilter(loc *time.Location) (repository.SaleFilter, error) {
	start, end, err := ParseDateRange(r.From, r.To, loc)
	if err != nil {
		return repository.SaleFilter{}, err
	}
	verr := &domain.ValidationError{}
	status := parseStatus(r.Status, verr)
	if err := verr.OrNil(); err != nil {
		return repository.SaleFilter{}, err
	}
	return repository.SaleFilter{
		From:       start,
		To:         end,
		Status:     status,
		CustomerID: strings.TrimSpace(r.CustomerID),
	}, nil
}

// ToFilter traduce los parámetros del dashboard al filtro de repositorio.
func (r DashboardStatsRequest) ToFilter(loc *time.Location) (repository.SaleFilter, error) {
	return SaleFilterRequest{From: r.From, To: r.To, Status: r.Status}.ToFilter(loc)
}
