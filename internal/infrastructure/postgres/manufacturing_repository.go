package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	mfg "github.com/jhoicas/product-management/internal/domain/manufacturing"
	"github.com/jhoicas/product-management/internal/domain/repository"
)

var (
	_ repository.MfgProductRepository      = (*MfgProductRepo)(nil)
	_ repository.ProcessRepository         = (*ProcessRepo)(nil)
	_ repository.ProductionOrderRepository = (*ProductionOrderRepo)(nil)
	_ repository.InventoryRepository       = (*InventoryRepo)(nil)
)

// ── Productos ─────────────────────────────────────────────────────────────────

// MfgProductRepo productos de fabricación (tabla mfg_products).
type MfgProductRepo struct {
	q Querier
}

// NewMfgProductRepository construye el adaptador.
func NewMfgProductRepository(q Querier) *MfgProductRepo {
	return &MfgProductRepo{q: q}
}

const mfgProductColumns = `id, code, name, description, created_at, updated_at`

func scanMfgProduct(row pgx.Row) (*mfg.Product, error) {
	var p mfg.Product
	if err := row.Scan(&p.ID, &p.Code, &p.Name, &p.Description, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *MfgProductRepo) Create(ctx context.Context, p *mfg.Product) error {
	_, err := r.q.Exec(ctx,
		`INSERT INTO mfg_products (`+mfgProductColumns+`) VALUES ($1, $2, $3, $4, $5, $6)`,
		p.ID, p.Code, p.Name, p.Description, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		return writeError("insert mfg product", err)
	}
	return nil
}

func (r *MfgProductRepo) getOne(ctx context.Context, where string, arg any) (*mfg.Product, error) {
	p, err := scanMfgProduct(r.q.QueryRow(ctx, `SELECT `+mfgProductColumns+` FROM mfg_products WHERE `+where, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get mfg product: %w", err)
	}
	return p, nil
}

func (r *MfgProductRepo) GetByID(ctx context.Context, id string) (*mfg.Product, error) {
	if !isUUID(id) {
		return nil, nil
	}
	return r.getOne(ctx, "id = $1", id)
}

func (r *MfgProductRepo) GetByCode(ctx context.Context, code string) (*mfg.Product, error) {
	return r.getOne(ctx, "code = $1", code)
}

func (r *MfgProductRepo) List(ctx context.Context) ([]*mfg.Product, error) {
	rows, err := r.q.Query(ctx, `SELECT `+mfgProductColumns+` FROM mfg_products ORDER BY code`)
	if err != nil {
		return nil, fmt.Errorf("list mfg products: %w", err)
	}
	defer rows.Close()
	var list []*mfg.Product
	for rows.Next() {
		p, err := scanMfgProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scan mfg product: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

func (r *MfgProductRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM mfg_products WHERE id = $1`, id); err != nil {
		return writeError("delete mfg product", err)
	}
	return nil
}

// ── Procesos ──────────────────────────────────────────────────────────────────

// ProcessRepo procesos de fabricación (tabla mfg_processes).
type ProcessRepo struct {
	q Querier
}

// NewProcessRepository construye el adaptador.
func NewProcessRepository(q Querier) *ProcessRepo {
	return &ProcessRepo{q: q}
}

const processColumns = `id, name, description, standard_time, created_at`

func scanProcess(row pgx.Row) (*mfg.Process, error) {
	var p mfg.Process
	if err := row.Scan(&p.ID, &p.Name, &p.Description, &p.StandardTime, &p.CreatedAt); err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *ProcessRepo) Create(ctx context.Context, p *mfg.Process) error {
	_, err := r.q.Exec(ctx,
		`INSERT INTO mfg_processes (`+processColumns+`) VALUES ($1, $2, $3, $4, $5)`,
		p.ID, p.Name, p.Description, p.StandardTime, p.CreatedAt,
	)
	if err != nil {
		return writeError("insert process", err)
	}
	return nil
}

func (r *ProcessRepo) GetByID(ctx context.Context, id string) (*mfg.Process, error) {
	if !isUUID(id) {
		return nil, nil
	}
	p, err := scanProcess(r.q.QueryRow(ctx, `SELECT `+processColumns+` FROM mfg_processes WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get process: %w", err)
	}
	return p, nil
}

func (r *ProcessRepo) List(ctx context.Context) ([]*mfg.Process, error) {
	rows, err := r.q.Query(ctx, `SELECT `+processColumns+` FROM mfg_processes ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list processes: %w", err)
	}
	defer rows.Close()
	var list []*mfg.Process
	for rows.Next() {
		p, err := scanProcess(rows)
		if err != nil {
			return nil, fmt.Errorf("scan process: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

func (r *ProcessRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM mfg_processes WHERE id = $1`, id); err != nil {
		return writeError("delete process", err)
	}
	return nil
}

// ── Órdenes de producción ─────────────────────────────────────────────────────

// ProductionOrderRepo órdenes (tabla mfg_production_orders).
type ProductionOrderRepo struct {
	q Querier
}

// NewProductionOrderRepository construye el adaptador.
func NewProductionOrderRepository(q Querier) *ProductionOrderRepo {
	return &ProductionOrderRepo{q: q}
}

const orderSelect = `
	SELECT o.id, o.product_id, o.process_id, o.quantity, o.planned_date, o.status, o.notes,
	       o.created_at, o.updated_at, p.code, p.name, pr.name
	FROM mfg_production_orders o
	JOIN mfg_products  p  ON p.id  = o.product_id
	JOIN mfg_processes pr ON pr.id = o.process_id`

func scanOrder(row pgx.Row) (*mfg.ProductionOrder, error) {
	var o mfg.ProductionOrder
	var status string
	err := row.Scan(&o.ID, &o.ProductID, &o.ProcessID, &o.Quantity, &o.PlannedDate, &status, &o.Notes,
		&o.CreatedAt, &o.UpdatedAt, &o.ProductCode, &o.ProductName, &o.ProcessName)
	if err != nil {
		return nil, err
	}
	o.Status = mfg.OrderStatus(status)
	return &o, nil
}

func (r *ProductionOrderRepo) Create(ctx context.Context, o *mfg.ProductionOrder) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO mfg_production_orders (id, product_id, process_id, quantity, planned_date, status, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		o.ID, o.ProductID, o.ProcessID, o.Quantity, o.PlannedDate, string(o.Status), o.Notes, o.CreatedAt, o.UpdatedAt,
	)
	if err != nil {
		return writeError("insert production order", err)
	}
	return nil
}

func (r *ProductionOrderRepo) GetByID(ctx context.Context, id string) (*mfg.ProductionOrder, error) {
	if !isUUID(id) {
		return nil, nil
	}
	o, err := scanOrder(r.q.QueryRow(ctx, orderSelect+` WHERE o.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get production order: %w", err)
	}
	return o, nil
}

func (r *ProductionOrderRepo) List(ctx context.Context, status mfg.OrderStatus) ([]*mfg.ProductionOrder, error) {
	rows, err := r.q.Query(ctx,
		orderSelect+` WHERE ($1 = '' OR o.status = $1) ORDER BY o.planned_date DESC, o.created_at DESC`,
		string(status),
	)
	if err != nil {
		return nil, fmt.Errorf("list production orders: %w", err)
	}
	defer rows.Close()
	var list []*mfg.ProductionOrder
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("scan production order: %w", err)
		}
		list = append(list, o)
	}
	return list, rows.Err()
}

func (r *ProductionOrderRepo) UpdateStatus(ctx context.Context, id string, status mfg.OrderStatus) error {
	_, err := r.q.Exec(ctx,
		`UPDATE mfg_production_orders SET status = $2, updated_at = now() WHERE id = $1`,
		id, string(status),
	)
	if err != nil {
		return writeError("update production order status", err)
	}
	return nil
}

// ── Inventario ────────────────────────────────────────────────────────────────

// InventoryRepo inventario por ubicación (tabla mfg_inventory).
type InventoryRepo struct {
	q Querier
}

// NewInventoryRepository construye el adaptador.
func NewInventoryRepository(q Querier) *InventoryRepo {
	return &InventoryRepo{q: q}
}

func (r *InventoryRepo) Create(ctx context.Context, inv *mfg.Inventory) error {
	_, err := r.q.Exec(ctx,
		`INSERT INTO mfg_inventory (id, product_id, quantity, location, updated_at) VALUES ($1, $2, $3, $4, $5)`,
		inv.ID, inv.ProductID, inv.Quantity, inv.Location, inv.UpdatedAt,
	)
	if err != nil {
		return writeError("insert inventory", err)
	}
	return nil
}

func (r *InventoryRepo) List(ctx context.Context, location string) ([]*mfg.Inventory, error) {
	rows, err := r.q.Query(ctx, `
		SELECT i.id, i.product_id, i.quantity, i.location, i.updated_at, p.code, p.name
		FROM mfg_inventory i
		JOIN mfg_products p ON p.id = i.product_id
		WHERE ($1 = '' OR i.location = $1)
		ORDER BY i.location, p.code`, location)
	if err != nil {
		return nil, fmt.Errorf("list inventory: %w", err)
	}
	defer rows.Close()
	var list []*mfg.Inventory
	for rows.Next() {
		var inv mfg.Inventory
		if err := rows.Scan(&inv.ID, &inv.ProductID, &inv.Quantity, &inv.Location, &inv.UpdatedAt,
			&inv.ProductCode, &inv.ProductName); err != nil {
			return nil, fmt.Errorf("scan inventory: %w", err)
		}
		list = append(list, &inv)
	}
	return list, rows.Err()
}
