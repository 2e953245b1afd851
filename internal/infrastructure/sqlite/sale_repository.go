package sqlite

import (
	"context"
	"sort"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/jhoicas/product-management/internal/domain/entity"
	"github.com/jhoicas/product-management/internal/domain/repository"
)

var (
	_ repository.SaleRepository      = (*SaleRepo)(nil)
	_ repository.SaleItemRepository  = (*SaleItemRepo)(nil)
	_ repository.AnalyticsRepository = (*AnalyticsRepo)(nil)
)

// saleScope aplica el filtro de ventas.
func saleScope(f repository.SaleFilter) func(*gorm.DB) *gorm.DB {
	return func(q *gorm.DB) *gorm.DB {
		if f.From != nil {
			q = q.Where("sale_date >= ?", f.From.UTC())
		}
		if f.To != nil {
			q = q.Where("sale_date < ?", f.To.UTC())
		}
		if f.Status != "" {
			q = q.Where("status = ?", string(f.Status))
		}
		if f.CustomerID != "" {
			q = q.Where("customer_id = ?", f.CustomerID)
		}
		return q
	}
}

func toSales(rows []saleModel) []*entity.Sale {
	out := make([]*entity.Sale, 0, len(rows))
	for _, m := range rows {
		out = append(out, m.toEntity())
	}
	return out
}

// ── Ventas ────────────────────────────────────────────────────────────────────

// SaleRepo cabeceras de venta sobre SQLite.
type SaleRepo struct {
	db *gorm.DB
}

func (r *SaleRepo) Create(ctx context.Context, s *entity.Sale) error {
	m := fromSale(s)
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(&m).Error; err != nil {
		return writeError("insert sale", err)
	}
	return nil
}

func (r *SaleRepo) GetByID(ctx context.Context, id string) (*entity.Sale, error) {
	var m saleModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		return nil, readError("get sale", err)
	}
	return m.toEntity(), nil
}

func (r *SaleRepo) List(ctx context.Context, f repository.SaleFilter, page repository.Page) ([]*entity.Sale, error) {
	var rows []saleModel
	err := r.db.WithContext(ctx).Scopes(saleScope(f)).
		Order("sale_date DESC, id").Limit(page.Limit).Offset(page.Offset).
		Find(&rows).Error
	if err != nil {
		return nil, readError("list sales", err)
	}
	return toSales(rows), nil
}

func (r *SaleRepo) Count(ctx context.Context, f repository.SaleFilter) (int, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&saleModel{}).Scopes(saleScope(f)).Count(&n).Error; err != nil {
		return 0, readError("count sales", err)
	}
	return int(n), nil
}

func (r *SaleRepo) ListByCustomer(ctx context.Context, customerID string) ([]*entity.Sale, error) {
	var rows []saleModel
	err := r.db.WithContext(ctx).Where("customer_id = ?", customerID).Order("sale_date DESC, id").Find(&rows).Error
	if err != nil {
		return nil, readError("list sales by customer", err)
	}
	return toSales(rows), nil
}

func (r *SaleRepo) Update(ctx context.Context, s *entity.Sale) error {
	err := r.db.WithContext(ctx).Model(&saleModel{ID: s.ID}).Updates(map[string]any{
		"customer_id": s.CustomerID,
		"status":      string(s.Status),
		"sale_date":   s.SaleDate.UTC(),
		"updated_at":  s.UpdatedAt.UTC(),
	}).Error
	if err != nil {
		return writeError("update sale", err)
	}
	return nil
}

func (r *SaleRepo) UpdateTotal(ctx context.Context, saleID string, total decimal.Decimal) error {
	err := r.db.WithContext(ctx).Model(&saleModel{ID: saleID}).Updates(map[string]any{
		"total_amount": total,
		"updated_at":   time.Now().UTC(),
	}).Error
	if err != nil {
		return writeError("update sale total", err)
	}
	return nil
}

// Delete elimina la venta; las líneas caen por ON DELETE CASCADE.
func (r *SaleRepo) Delete(ctx context.Context, id string) error {
	if err := r.db.WithContext(ctx).Delete(&saleModel{}, "id = ?", id).Error; err != nil {
		return writeError("delete sale", err)
	}
	return nil
}

// ── Líneas ────────────────────────────────────────────────────────────────────

// SaleItemRepo líneas de venta sobre SQLite.
type SaleItemRepo struct {
	db *gorm.DB
}

func (r *SaleItemRepo) Create(ctx context.Context, it *entity.SaleItem) error {
	m := fromSaleItem(it)
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(&m).Error; err != nil {
		return writeError("insert sale item", err)
	}
	return nil
}

func (r *SaleItemRepo) GetByID(ctx context.Context, id string) (*entity.SaleItem, error) {
	var m saleItemModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		return nil, readError("get sale item", err)
	}
	it := m.toEntity()
	return &it, nil
}

func (r *SaleItemRepo) ListBySale(ctx context.Context, saleID string) ([]entity.SaleItem, error) {
	var rows []saleItemModel
	if err := r.db.WithContext(ctx).Where("sale_id = ?", saleID).Order("id").Find(&rows).Error; err != nil {
		return nil, readError("list sale items", err)
	}
	out := make([]entity.SaleItem, 0, len(rows))
	for _, m := range rows {
		out = append(out, m.toEntity())
	}
	return out, nil
}

func (r *SaleItemRepo) ListBySales(ctx context.Context, saleIDs []string) (map[string][]entity.SaleItem, error) {
	out := make(map[string][]entity.SaleItem, len(saleIDs))
	if len(saleIDs) == 0 {
		return out, nil
	}
	var rows []saleItemModel
	if err := r.db.WithContext(ctx).Where("sale_id IN ?", saleIDs).Order("sale_id, id").Find(&rows).Error; err != nil {
		return nil, readError("list sale items by sales", err)
	}
	for _, m := range rows {
		out[m.SaleID] = append(out[m.SaleID], m.toEntity())
	}
	return out, nil
}

func (r *SaleItemRepo) List(ctx context.Context, page repository.Page) ([]*entity.SaleItem, error) {
	var rows []saleItemModel
	if err := r.db.WithContext(ctx).Order("sale_id, id").Limit(page.Limit).Offset(page.Offset).Find(&rows).Error; err != nil {
		return nil, readError("list sale items", err)
	}
	out := make([]*entity.SaleItem, 0, len(rows))
	for _, m := range rows {
		it := m.toEntity()
		out = append(out, &it)
	}
	return out, nil
}

func (r *SaleItemRepo) Count(ctx context.Context) (int, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&saleItemModel{}).Count(&n).Error; err != nil {
		return 0, readError("count sale items", err)
	}
	return int(n), nil
}

func (r *SaleItemRepo) Update(ctx context.Context, it *entity.SaleItem) error {
	err := r.db.WithContext(ctx).Model(&saleItemModel{ID: it.ID}).Updates(map[string]any{
		"quantity":    it.Quantity,
		"unit_price":  it.UnitPrice,
		"total_price": it.TotalPrice,
	}).Error
	if err != nil {
		return writeError("update sale item", err)
	}
	return nil
}

func (r *SaleItemRepo) Delete(ctx context.Context, id string) error {
	if err := r.db.WithContext(ctx).Delete(&saleItemModel{}, "id = ?", id).Error; err != nil {
		return writeError("delete sale item", err)
	}
	return nil
}

// SumBySale suma en Go; los importes están guardados como texto.
func (r *SaleItemRepo) SumBySale(ctx context.Context, saleID string) (decimal.Decimal, error) {
	var prices []decimal.Decimal
	if err := r.db.WithContext(ctx).Model(&saleItemModel{}).Where("sale_id = ?", saleID).Pluck("total_price", &prices).Error; err != nil {
		return decimal.Zero, readError("sum sale items", err)
	}
	return decimal.Sum(decimal.Zero, prices...), nil
}

// ── Analítica ─────────────────────────────────────────────────────────────────

// AnalyticsRepo agregados del dashboard calculados en Go sobre las filas filtradas.
type AnalyticsRepo struct {
	db *gorm.DB
}

type saleAggRow struct {
	Status      string
	SaleDate    time.Time
	TotalAmount decimal.Decimal
}

func (r *AnalyticsRepo) rows(ctx context.Context, f repository.SaleFilter) ([]saleAggRow, error) {
	var rows []saleAggRow
	err := r.db.WithContext(ctx).Model(&saleModel{}).Scopes(saleScope(f)).
		Select("status, sale_date, total_amount").Scan(&rows).Error
	if err != nil {
		return nil, readError("analytics rows", err)
	}
	return rows, nil
}

func (r *AnalyticsRepo) SalesTotals(ctx context.Context, f repository.SaleFilter) (repository.SalesTotals, error) {
	rows, err := r.rows(ctx, f)
	if err != nil {
		return repository.SalesTotals{}, err
	}
	out := repository.SalesTotals{Count: len(rows), Revenue: decimal.Zero}
	for _, row := range rows {
		out.Revenue = out.Revenue.Add(row.TotalAmount)
	}
	return out, nil
}

func (r *AnalyticsRepo) CountByStatus(ctx context.Context, f repository.SaleFilter) (map[entity.SaleStatus]int, error) {
	f.Status = ""
	type statusCount struct {
		Status string
		N      int
	}
	var counts []statusCount
	err := r.db.WithContext(ctx).Model(&saleModel{}).Scopes(saleScope(f)).
		Select("status, COUNT(*) AS n").Group("status").Scan(&counts).Error
	if err != nil {
		return nil, readError("count by status", err)
	}
	out := make(map[entity.SaleStatus]int, len(counts))
	for _, c := range counts {
		out[entity.SaleStatus(c.Status)] = c.N
	}
	return out, nil
}

func (r *AnalyticsRepo) DailyRevenue(
	ctx context.Context,
	from, to time.Time,
	loc *time.Location,
	status entity.SaleStatus,
) ([]repository.DailyRevenue, error) {
	rows, err := r.rows(ctx, repository.SaleFilter{From: &from, To: &to, Status: status})
	if err != nil {
		return nil, err
	}

	byDay := make(map[time.Time]*repository.DailyRevenue)
	for _, row := range rows {
		local := row.SaleDate.In(loc)
		day := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
		agg, ok := byDay[day]
		if !ok {
			agg = &repository.DailyRevenue{Day: day, Revenue: decimal.Zero}
			byDay[day] = agg
		}
		agg.Count++
		agg.Revenue = agg.Revenue.Add(row.TotalAmount)
	}

	out := make([]repository.DailyRevenue, 0, len(byDay))
	for _, agg := range byDay {
		out = append(out, *agg)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Day.Before(out[j].Day) })
	return out, nil
}
