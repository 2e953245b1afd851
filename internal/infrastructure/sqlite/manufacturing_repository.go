package sqlite

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	mfg "github.com/jhoicas/product-management/internal/domain/manufacturing"
	"github.com/jhoicas/product-management/internal/domain/repository"
)

var (
	_ repository.MfgProductRepository      = (*MfgProductRepo)(nil)
	_ repository.ProcessRepository         = (*ProcessRepo)(nil)
	_ repository.ProductionOrderRepository = (*ProductionOrderRepo)(nil)
	_ repository.InventoryRepository       = (*InventoryRepo)(nil)
)

// MfgProductRepo productos de fabricación sobre SQLite.
type MfgProductRepo struct {
	db *gorm.DB
}

func (r *MfgProductRepo) Create(ctx context.Context, p *mfg.Product) error {
	m := mfgProductModel{
		ID: p.ID, Code: p.Code, Name: p.Name, Description: p.Description,
		CreatedAt: p.CreatedAt.UTC(), UpdatedAt: p.UpdatedAt.UTC(),
	}
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return writeError("insert mfg product", err)
	}
	return nil
}

func (r *MfgProductRepo) first(ctx context.Context, query string, arg any) (*mfg.Product, error) {
	var m mfgProductModel
	if err := r.db.WithContext(ctx).Where(query, arg).First(&m).Error; err != nil {
		return nil, readError("get mfg product", err)
	}
	return m.toEntity(), nil
}

func (r *MfgProductRepo) GetByID(ctx context.Context, id string) (*mfg.Product, error) {
	return r.first(ctx, "id = ?", id)
}

func (r *MfgProductRepo) GetByCode(ctx context.Context, code string) (*mfg.Product, error) {
	return r.first(ctx, "code = ?", code)
}

func (r *MfgProductRepo) List(ctx context.Context) ([]*mfg.Product, error) {
	var rows []mfgProductModel
	if err := r.db.WithContext(ctx).Order("code").Find(&rows).Error; err != nil {
		return nil, readError("list mfg products", err)
	}
	out := make([]*mfg.Product, 0, len(rows))
	for _, m := range rows {
		out = append(out, m.toEntity())
	}
	return out, nil
}

func (r *MfgProductRepo) Delete(ctx context.Context, id string) error {
	if err := r.db.WithContext(ctx).Delete(&mfgProductModel{}, "id = ?", id).Error; err != nil {
		return writeError("delete mfg product", err)
	}
	return nil
}

// ProcessRepo procesos sobre SQLite.
type ProcessRepo struct {
	db *gorm.DB
}

func (r *ProcessRepo) Create(ctx context.Context, p *mfg.Process) error {
	m := processModel{
		ID: p.ID, Name: p.Name, Description: p.Description,
		StandardTime: p.StandardTime, CreatedAt: p.CreatedAt.UTC(),
	}
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return writeError("insert process", err)
	}
	return nil
}

func (r *ProcessRepo) GetByID(ctx context.Context, id string) (*mfg.Process, error) {
	var m processModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		return nil, readError("get process", err)
	}
	return m.toEntity(), nil
}

func (r *ProcessRepo) List(ctx context.Context) ([]*mfg.Process, error) {
	var rows []processModel
	if err := r.db.WithContext(ctx).Order("name").Find(&rows).Error; err != nil {
		return nil, readError("list processes", err)
	}
	out := make([]*mfg.Process, 0, len(rows))
	for _, m := range rows {
		out = append(out, m.toEntity())
	}
	return out, nil
}

func (r *ProcessRepo) Delete(ctx context.Context, id string) error {
	if err := r.db.WithContext(ctx).Delete(&processModel{}, "id = ?", id).Error; err != nil {
		return writeError("delete process", err)
	}
	return nil
}

// ProductionOrderRepo órdenes de producción sobre SQLite.
type ProductionOrderRepo struct {
	db *gorm.DB
}

type orderRow struct {
	productionOrderModel
	ProductCode string
	ProductName string
	ProcessName string
}

func (o orderRow) toEntity() *mfg.ProductionOrder {
	return &mfg.ProductionOrder{
		ID: o.ID, ProductID: o.ProductID, ProcessID: o.ProcessID, Quantity: o.Quantity,
		PlannedDate: o.PlannedDate, Status: mfg.OrderStatus(o.Status), Notes: o.Notes,
		CreatedAt: o.CreatedAt, UpdatedAt: o.UpdatedAt,
		ProductCode: o.ProductCode, ProductName: o.ProductName, ProcessName: o.ProcessName,
	}
}

func (r *ProductionOrderRepo) joined(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Table("mfg_production_orders AS o").
		Select("o.*, p.code AS product_code, p.name AS product_name, pr.name AS process_name").
		Joins("JOIN mfg_products p ON p.id = o.product_id").
		Joins("JOIN mfg_processes pr ON pr.id = o.process_id")
}

func (r *ProductionOrderRepo) Create(ctx context.Context, o *mfg.ProductionOrder) error {
	m := productionOrderModel{
		ID: o.ID, ProductID: o.ProductID, ProcessID: o.ProcessID, Quantity: o.Quantity,
		PlannedDate: o.PlannedDate.UTC(), Status: string(o.Status), Notes: o.Notes,
		CreatedAt: o.CreatedAt.UTC(), UpdatedAt: o.UpdatedAt.UTC(),
	}
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(&m).Error; err != nil {
		return writeError("insert production order", err)
	}
	return nil
}

func (r *ProductionOrderRepo) GetByID(ctx context.Context, id string) (*mfg.ProductionOrder, error) {
	var rows []orderRow
	if err := r.joined(ctx).Where("o.id = ?", id).Limit(1).Scan(&rows).Error; err != nil {
		return nil, readError("get production order", err)
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return rows[0].toEntity(), nil
}

func (r *ProductionOrderRepo) List(ctx context.Context, status mfg.OrderStatus) ([]*mfg.ProductionOrder, error) {
	q := r.joined(ctx)
	if status != "" {
		q = q.Where("o.status = ?", string(status))
	}
	var rows []orderRow
	if err := q.Order("o.planned_date DESC, o.created_at DESC").Scan(&rows).Error; err != nil {
		return nil, readError("list production orders", err)
	}
	out := make([]*mfg.ProductionOrder, 0, len(rows))
	for _, o := range rows {
		out = append(out, o.toEntity())
	}
	return out, nil
}

func (r *ProductionOrderRepo) UpdateStatus(ctx context.Context, id string, status mfg.OrderStatus) error {
	err := r.db.WithContext(ctx).Model(&productionOrderModel{ID: id}).Updates(map[string]any{
		"status":     string(status),
		"updated_at": time.Now().UTC(),
	}).Error
	if err != nil {
		return writeError("update production order status", err)
	}
	return nil
}

// InventoryRepo inventario por ubicación sobre SQLite.
type InventoryRepo struct {
	db *gorm.DB
}

type inventoryRow struct {
	inventoryModel
	ProductCode string
	ProductName string
}

func (r *InventoryRepo) Create(ctx context.Context, inv *mfg.Inventory) error {
	m := inventoryModel{
		ID: inv.ID, ProductID: inv.ProductID, Quantity: inv.Quantity,
		Location: inv.Location, UpdatedAt: inv.UpdatedAt.UTC(),
	}
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(&m).Error; err != nil {
		return writeError("insert inventory", err)
	}
	return nil
}

func (r *InventoryRepo) List(ctx context.Context, location string) ([]*mfg.Inventory, error) {
	q := r.db.WithContext(ctx).Table("mfg_inventory AS i").
		Select("i.*, p.code AS product_code, p.name AS product_name").
		Joins("JOIN mfg_products p ON p.id = i.product_id")
	if location != "" {
		q = q.Where("i.location = ?", location)
	}
	var rows []inventoryRow
	if err := q.Order("i.location, p.code").Scan(&rows).Error; err != nil {
		return nil, readError("list inventory", err)
	}
	out := make([]*mfg.Inventory, 0, len(rows))
	for _, row := range rows {
		out = append(out, &mfg.Inventory{
			ID: row.ID, ProductID: row.ProductID, Quantity: row.Quantity, Location: row.Location,
			UpdatedAt: row.UpdatedAt, ProductCode: row.ProductCode, ProductName: row.ProductName,
		})
	}
	return out, nil
}
