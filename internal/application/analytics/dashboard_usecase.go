// Package analytics contiene los casos de uso de reportes de ventas: resumen del
// dashboard, serie diaria de ingresos, reposición e historial de compras.
package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/product-management/internal/application/dto"
	"github.com/jhoicas/product-management/internal/domain"
	"github.com/jhoicas/product-management/internal/domain/entity"
	"github.com/jhoicas/product-management/internal/domain/repository"
)

// Config parámetros del dashboard.
type Config struct {
	LowStockThreshold int            // umbral de reposición por defecto
	WindowDays        int            // días de la serie diaria
	Location          *time.Location // zona en la que se cortan los días
}

// DashboardUseCase genera el resumen de ventas.
//
// Fuente de datos: AnalyticsRepository (consultas read-only) más los repos de
// productos, clientes y ventas para reposición e historial.
type DashboardUseCase struct {
	analyticsRepo repository.AnalyticsRepository
	productRepo   repository.ProductRepository
	customerRepo  repository.CustomerRepository
	saleRepo      repository.SaleRepository
	itemRepo      repository.SaleItemRepository
	cfg           Config
	now           func() time.Time
}

// NewDashboardUseCase construye el caso de uso. now nil usa time.Now.
func NewDashboardUseCase(repos repository.Repositories, cfg Config, now func() time.Time) *DashboardUseCase {
	if cfg.Location == nil {
		cfg.Location = time.UTC
	}
	if cfg.WindowDays <= 0 {
		cfg.WindowDays = 6
	}
	if cfg.LowStockThreshold <= 0 {
		cfg.LowStockThreshold = 10
	}
	if now == nil {
		now = time.Now
	}
	return &DashboardUseCase{
		analyticsRepo: repos.Analytics,
		productRepo:   repos.Products,
		customerRepo:  repos.Customers,
		saleRepo:      repos.Sales,
		itemRepo:      repos.SaleItems,
		cfg:           cfg,
		now:           now,
	}
}

// GetStats construye el DashboardStatsDTO.
//
// Cuatro consultas en paralelo:
//  1. SalesTotals(filtro)      → TotalSales + TotalRevenue
//  2. CountByStatus(filtro)    → ByStatus
//  3. DailyRevenue(ventana)    → DailyRevenue + WindowRevenue
//  4. ListLowStock(umbral)     → LowStockCount
func (uc *DashboardUseCase) GetStats(ctx context.Context, in dto.DashboardStatsRequest) (*dto.DashboardStatsDTO, error) {
	filter, err := in.ToFilter(uc.cfg.Location)
	if err != nil {
		return nil, err
	}

	type totalsResult struct {
		totals repository.SalesTotals
		err    error
	}
	type statusResult struct {
		counts map[entity.SaleStatus]int
		err    error
	}
	type seriesResult struct {
		series []dto.DailyRevenueDTO
		sum    decimal.Decimal
		err    error
	}
	type stockResult struct {
		count int
		err   error
	}

	totalsCh := make(chan totalsResult, 1)
	statusCh := make(chan statusResult, 1)
	seriesCh := make(chan seriesResult, 1)
	stockCh := make(chan stockResult, 1)

	go func() {
		t, err := uc.analyticsRepo.SalesTotals(ctx, filter)
		totalsCh <- totalsResult{t, err}
	}()
	go func() {
		c, err := uc.analyticsRepo.CountByStatus(ctx, filter)
		statusCh <- statusResult{c, err}
	}()
	go func() {
		s, sum, err := uc.window(ctx, uc.cfg.WindowDays, filter.Status)
		seriesCh <- seriesResult{s, sum, err}
	}()
	go func() {
		list, err := uc.productRepo.ListLowStock(ctx, uc.cfg.LowStockThreshold)
		stockCh <- stockResult{len(list), err}
	}()

	totals := <-totalsCh
	status := <-statusCh
	series := <-seriesCh
	stock := <-stockCh

	if totals.err != nil {
		return nil, fmt.Errorf("dashboard: totales: %w", totals.err)
	}
	if status.err != nil {
		return nil, fmt.Errorf("dashboard: por estado: %w", status.err)
	}
	if series.err != nil {
		return nil, fmt.Errorf("dashboard: serie diaria: %w", series.err)
	}
	if stock.err != nil {
		return nil, fmt.Errorf("dashboard: reposición: %w", stock.err)
	}

	byStatus := make(map[string]int, 3)
	for _, st := range entity.AllSaleStatuses() {
		byStatus[string(st)] = status.counts[st]
	}

	return &dto.DashboardStatsDTO{
		TotalSales:        totals.totals.Count,
		TotalRevenue:      totals.totals.Revenue,
		ByStatus:          byStatus,
		WindowDays:        uc.cfg.WindowDays,
		DailyRevenue:      series.series,
		WindowRevenue:     series.sum,
		LowStockThreshold: uc.cfg.LowStockThreshold,
		LowStockCount:     stock.count,
		From:              in.From,
		To:                in.To,
	}, nil
}

// DailyRevenue devuelve solo la serie de los últimos days días (hoy incluido).
func (uc *DashboardUseCase) DailyRevenue(ctx context.Context, days int) ([]dto.DailyRevenueDTO, error) {
	if days == 0 {
		days = uc.cfg.WindowDays
	}
	if days < 0 || days > 366 {
		return nil, domain.NewValidationError("days", "debe estar entre 1 y 366")
	}
	series, _, err := uc.window(ctx, days, "")
	if err != nil {
		return nil, fmt.Errorf("dashboard: serie diaria: %w", err)
	}
	return series, nil
}

// window arma la serie diaria rellenando con ceros los días sin ventas.
func (uc *DashboardUseCase) window(ctx context.Context, days int, status entity.SaleStatus) ([]dto.DailyRevenueDTO, decimal.Decimal, error) {
	loc := uc.cfg.Location
	now := uc.now().In(loc)
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc)
	from := today.AddDate(0, 0, -(days - 1))
	to := today.AddDate(0, 0, 1)

	rows, err := uc.analyticsRepo.DailyRevenue(ctx, from, to, loc, status)
	if err != nil {
		return nil, decimal.Zero, err
	}
	byDay := make(map[string]repository.DailyRevenue, len(rows))
	for _, r := range rows {
		byDay[r.Day.In(loc).Format(dto.DateLayout)] = r
	}

	series := make([]dto.DailyRevenueDTO, 0, days)
	sum := decimal.Zero
	for d := from; d.Before(to); d = d.AddDate(0, 0, 1) {
		key := d.Format(dto.DateLayout)
		point := dto.DailyRevenueDTO{Date: key, Revenue: decimal.Zero}
		if r, ok := byDay[key]; ok {
			point.Sales = r.Count
			point.Revenue = r.Revenue
		}
		sum = sum.Add(point.Revenue)
		series = append(series, point)
	}
	return series, sum, nil
}

// LowStock lista los productos con stock < threshold; nil usa el umbral configurado.
func (uc *DashboardUseCase) LowStock(ctx context.Context, requested *int) (*dto.LowStockResponse, error) {
	threshold := uc.cfg.LowStockThreshold
	if requested != nil {
		if *requested <= 0 {
			return nil, domain.NewValidationError("threshold", "debe ser mayor que 0")
		}
		threshold = *requested
	}
	list, err := uc.productRepo.ListLowStock(ctx, threshold)
	if err != nil {
		return nil, fmt.Errorf("dashboard: reposición: %w", err)
	}
	return &dto.LowStockResponse{
		Threshold: threshold,
		Count:     len(list),
		Items:     dto.ToProductResponses(list),
	}, nil
}

// PurchaseHistory devuelve el cliente y todas sus ventas con líneas, más reciente primero.
func (uc *DashboardUseCase) PurchaseHistory(ctx context.Context, customerID string) (*dto.PurchaseHistoryResponse, error) {
	customer, err := uc.customerRepo.GetByID(ctx, customerID)
	if err != nil {
		return nil, fmt.Errorf("historial: obtener cliente: %w", err)
	}
	if customer == nil {
		return nil, domain.ErrNotFound
	}
	sales, err := uc.saleRepo.ListByCustomer(ctx, customerID)
	if err != nil {
		return nil, fmt.Errorf("historial: ventas: %w", err)
	}
	ids := make([]string, 0, len(sales))
	for _, s := range sales {
		ids = append(ids, s.ID)
	}
	items, err := uc.itemRepo.ListBySales(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("historial: líneas: %w", err)
	}
	out := &dto.PurchaseHistoryResponse{
		Customer: dto.ToCustomerResponse(customer),
		Count:    len(sales),
		Sales:    make([]dto.SaleResponse, 0, len(sales)),
	}
	for _, s := range sales {
		s.Items = items[s.ID]
		out.Sales = append(out.Sales, dto.ToSaleResponse(s))
	}
	return out, nil
}
