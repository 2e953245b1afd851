package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/product-management/internal/domain/entity"
	"github.com/jhoicas/product-management/internal/domain/repository"
)

var _ repository.SaleItemRepository = (*SaleItemRepo)(nil)

// SaleItemRepo líneas de venta sobre PostgreSQL.
type SaleItemRepo struct {
	q Querier
}

// NewSaleItemRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSaleItemRepository(q Querier) *SaleItemRepo {
	return &SaleItemRepo{q: q}
}

const saleItemColumns = `id, sale_id, product_id, quantity, unit_price, total_price`

func scanSaleItem(row pgx.Row) (entity.SaleItem, error) {
	var it entity.SaleItem
	err := row.Scan(&it.ID, &it.SaleID, &it.ProductID, &it.Quantity, &it.UnitPrice, &it.TotalPrice)
	return it, err
}

// Create persiste una línea.
func (r *SaleItemRepo) Create(ctx context.Context, it *entity.SaleItem) error {
	_, err := r.q.Exec(ctx,
		`INSERT INTO sale_items (`+saleItemColumns+`) VALUES ($1, $2, $3, $4, $5, $6)`,
		it.ID, it.SaleID, it.ProductID, it.Quantity, it.UnitPrice, it.TotalPrice,
	)
	if err != nil {
		return writeError("insert sale item", err)
	}
	return nil
}

// GetByID obtiene una línea.
func (r *SaleItemRepo) GetByID(ctx context.Context, id string) (*entity.SaleItem, error) {
	if !isUUID(id) {
		return nil, nil
	}
	it, err := scanSaleItem(r.q.QueryRow(ctx, `SELECT `+saleItemColumns+` FROM sale_items WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get sale item: %w", err)
	}
	return &it, nil
}

// ListBySale líneas de una venta.
func (r *SaleItemRepo) ListBySale(ctx context.Context, saleID string) ([]entity.SaleItem, error) {
	rows, err := r.q.Query(ctx,
		`SELECT `+saleItemColumns+` FROM sale_items WHERE sale_id = $1 ORDER BY id`, saleID)
	if err != nil {
		return nil, fmt.Errorf("list sale items: %w", err)
	}
	defer rows.Close()
	var items []entity.SaleItem
	for rows.Next() {
		it, err := scanSaleItem(rows)
		if err != nil {
			return nil, fmt.Errorf("scan sale item: %w", err)
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

// ListBySales agrupa por venta las líneas de varias ventas.
func (r *SaleItemRepo) ListBySales(ctx context.Context, saleIDs []string) (map[string][]entity.SaleItem, error) {
	out := make(map[string][]entity.SaleItem, len(saleIDs))
	if len(saleIDs) == 0 {
		return out, nil
	}
	rows, err := r.q.Query(ctx,
		`SELECT `+saleItemColumns+` FROM sale_items WHERE sale_id::text = ANY($1) ORDER BY sale_id, id`, saleIDs)
	if err != nil {
		return nil, fmt.Errorf("list sale items by sales: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		it, err := scanSaleItem(rows)
		if err != nil {
			return nil, fmt.Errorf("scan sale item: %w", err)
		}
		out[it.SaleID] = append(out[it.SaleID], it)
	}
	return out, rows.Err()
}

// List todas las líneas paginadas.
func (r *SaleItemRepo) List(ctx context.Context, page repository.Page) ([]*entity.SaleItem, error) {
	rows, err := r.q.Query(ctx,
		`SELECT `+saleItemColumns+` FROM sale_items ORDER BY sale_id, id LIMIT $1 OFFSET $2`,
		page.Limit, page.Offset)
	if err != nil {
		return nil, fmt.Errorf("list sale items: %w", err)
	}
	defer rows.Close()
	var list []*entity.SaleItem
	for rows.Next() {
		it, err := scanSaleItem(rows)
		if err != nil {
			return nil, fmt.Errorf("scan sale item: %w", err)
		}
		list = append(list, &it)
	}
	return list, rows.Err()
}

// Count total de líneas.
func (r *SaleItemRepo) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM sale_items`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count sale items: %w", err)
	}
	return n, nil
}

// Update cambia cantidad y totales de una línea.
func (r *SaleItemRepo) Update(ctx context.Context, it *entity.SaleItem) error {
	_, err := r.q.Exec(ctx,
		`UPDATE sale_items SET quantity = $2, unit_price = $3, total_price = $4 WHERE id = $1`,
		it.ID, it.Quantity, it.UnitPrice, it.TotalPrice,
	)
	if err != nil {
		return writeError("update sale item", err)
	}
	return nil
}

// Delete elimina una línea.
func (r *SaleItemRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM sale_items WHERE id = $1`, id); err != nil {
		return writeError("delete sale item", err)
	}
	return nil
}

// SumBySale suma total_price de la venta.
func (r *SaleItemRepo) SumBySale(ctx context.Context, saleID string) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.q.QueryRow(ctx,
		`SELECT COALESCE(SUM(total_price), 0) FROM sale_items WHERE sale_id = $1`, saleID,
	).Scan(&total)
	if err != nil {
		return decimal.Zero, fmt.Errorf("sum sale items: %w", err)
	}
	return total, nil
}
