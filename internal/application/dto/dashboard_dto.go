package dto

import "github.com/shopspring/decimal"

// DashboardStatsRequest filtros de GET /api/sales/dashboard_stats/.
// From y To son fechas YYYY-MM-DD inclusivas en la zona horaria de la aplicación.
type DashboardStatsRequest struct {
	From   string `query:"from"`
	To     string `query:"to"`
	Status string `query:"status"`
}

// DashboardStatsDTO respuesta del resumen de ventas.
type DashboardStatsDTO struct {
	// Totales bajo el filtro solicitado
	TotalSales   int             `json:"total_sales"`
	TotalRevenue decimal.Decimal `json:"total_revenue"`
	ByStatus     map[string]int  `json:"by_status"`

	// Serie diaria de los últimos WindowDays días (más antiguo primero)
	WindowDays    int               `json:"window_days"`
	DailyRevenue  []DailyRevenueDTO `json:"daily_revenue"`
	WindowRevenue decimal.Decimal   `json:"window_revenue"`

	// Reposición
	LowStockThreshold int `json:"low_stock_threshold"`
	LowStockCount     int `json:"low_stock_count"`

	// Metadatos del período
	From string `json:"from,omitempty"`
	To   string `json:"to,omitempty"`
}

// DailyRevenueDTO punto de la serie diaria.
type DailyRevenueDTO struct {
	Date    string          `json:"date"` // YYYY-MM-DD
	Sales   int             `json:"sales"`
	Revenue decimal.Decimal `json:"revenue"`
}
