package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/product-management/internal/domain/entity"
	"github.com/jhoicas/product-management/internal/domain/repository"
)

var _ repository.SaleRepository = (*SaleRepo)(nil)

// SaleRepo cabeceras de venta sobre PostgreSQL.
type SaleRepo struct {
	q Querier
}

// NewSaleRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSaleRepository(q Querier) *SaleRepo {
	return &SaleRepo{q: q}
}

const saleColumns = `id, customer_id, status, sale_date, total_amount, created_at, updated_at`

func scanSale(row pgx.Row) (*entity.Sale, error) {
	var s entity.Sale
	var status string
	if err := row.Scan(&s.ID, &s.CustomerID, &status, &s.SaleDate, &s.TotalAmount, &s.CreatedAt, &s.UpdatedAt); err != nil {
		return nil, err
	}
	s.Status = entity.SaleStatus(status)
	return &s, nil
}

func collectSales(rows pgx.Rows) ([]*entity.Sale, error) {
	defer rows.Close()
	var list []*entity.Sale
	for rows.Next() {
		s, err := scanSale(rows)
		if err != nil {
			return nil, fmt.Errorf("scan sale: %w", err)
		}
		list = append(list, s)
	}
	return list, rows.Err()
}

// saleWhere arma el WHERE del filtro. Los placeholders empiezan en $1.
func saleWhere(f repository.SaleFilter) (string, []any) {
	var conds []string
	var args []any
	add := func(cond string, arg any) {
		args = append(args, arg)
		conds = append(conds, fmt.Sprintf(cond, len(args)))
	}
	if f.From != nil {
		add("sale_date >= $%d", *f.From)
	}
	if f.To != nil {
		add("sale_date < $%d", *f.To)
	}
	if f.Status != "" {
		add("status = $%d", string(f.Status))
	}
	if f.CustomerID != "" {
		add("customer_id::text = $%d", f.CustomerID)
	}
	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

// Create persiste la cabecera.
func (r *SaleRepo) Create(ctx context.Context, s *entity.Sale) error {
	_, err := r.q.Exec(ctx,
		`INSERT INTO sales (`+saleColumns+`) VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		s.ID, s.CustomerID, string(s.Status), s.SaleDate, s.TotalAmount, s.CreatedAt, s.UpdatedAt,
	)
	if err != nil {
		return writeError("insert sale", err)
	}
	return nil
}

// GetByID obtiene la cabecera (sin líneas).
func (r *SaleRepo) GetByID(ctx context.Context, id string) (*entity.Sale, error) {
	if !isUUID(id) {
		return nil, nil
	}
	s, err := scanSale(r.q.QueryRow(ctx, `SELECT `+saleColumns+` FROM sales WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get sale: %w", err)
	}
	return s, nil
}

// List lista por sale_date descendente.
func (r *SaleRepo) List(ctx context.Context, filter repository.SaleFilter, page repository.Page) ([]*entity.Sale, error) {
	where, args := saleWhere(filter)
	args = append(args, page.Limit, page.Offset)
	query := fmt.Sprintf(`SELECT %s FROM sales%s ORDER BY sale_date DESC, id LIMIT $%d OFFSET $%d`,
		saleColumns, where, len(args)-1, len(args))
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}
	return collectSales(rows)
}

// Count cuenta ventas bajo el filtro.
func (r *SaleRepo) Count(ctx context.Context, filter repository.SaleFilter) (int, error) {
	where, args := saleWhere(filter)
	var n int
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM sales`+where, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("count sales: %w", err)
	}
	return n, nil
}

// ListByCustomer ventas del cliente, más reciente primero.
func (r *SaleRepo) ListByCustomer(ctx context.Context, customerID string) ([]*entity.Sale, error) {
	if !isUUID(customerID) {
		return nil, nil
	}
	rows, err := r.q.Query(ctx,
		`SELECT `+saleColumns+` FROM sales WHERE customer_id = $1 ORDER BY sale_date DESC, id`,
		customerID,
	)
	if err != nil {
		return nil, fmt.Errorf("list sales by customer: %w", err)
	}
	return collectSales(rows)
}

// Update modifica cliente, estado y fecha.
func (r *SaleRepo) Update(ctx context.Context, s *entity.Sale) error {
	_, err := r.q.Exec(ctx,
		`UPDATE sales SET customer_id = $2, status = $3, sale_date = $4, updated_at = $5 WHERE id = $1`,
		s.ID, s.CustomerID, string(s.Status), s.SaleDate, s.UpdatedAt,
	)
	if err != nil {
		return writeError("update sale", err)
	}
	return nil
}

// UpdateTotal fija total_amount.
func (r *SaleRepo) UpdateTotal(ctx context.Context, saleID string, total decimal.Decimal) error {
	_, err := r.q.Exec(ctx,
		`UPDATE sales SET total_amount = $2, updated_at = now() WHERE id = $1`,
		saleID, total,
	)
	if err != nil {
		return fmt.Errorf("update sale total: %w", err)
	}
	return nil
}

// Delete elimina la venta; las líneas se borran por ON DELETE CASCADE.
func (r *SaleRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM sales WHERE id = $1`, id); err != nil {
		return writeError("delete sale", err)
	}
	return nil
}
