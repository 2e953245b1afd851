package sqlite

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/jhoicas/product-management/internal/domain/entity"
	"github.com/jhoicas/product-management/internal/domain/repository"
)

var (
	_ repository.CategoryRepository = (*CategoryRepo)(nil)
	_ repository.ProductRepository  = (*ProductRepo)(nil)
	_ repository.CustomerRepository = (*CustomerRepo)(nil)
)

// ── Categorías ────────────────────────────────────────────────────────────────

// CategoryRepo categorías sobre SQLite.
type CategoryRepo struct {
	db *gorm.DB
}

func (r *CategoryRepo) Create(ctx context.Context, c *entity.Category) error {
	m := fromCategory(c)
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return writeError("insert category", err)
	}
	return nil
}

func (r *CategoryRepo) first(ctx context.Context, query string, arg any) (*entity.Category, error) {
	var m categoryModel
	if err := r.db.WithContext(ctx).Where(query, arg).First(&m).Error; err != nil {
		return nil, readError("get category", err)
	}
	return m.toEntity(), nil
}

func (r *CategoryRepo) GetByID(ctx context.Context, id string) (*entity.Category, error) {
	return r.first(ctx, "id = ?", id)
}

func (r *CategoryRepo) GetByName(ctx context.Context, name string) (*entity.Category, error) {
	return r.first(ctx, "name = ?", name)
}

func (r *CategoryRepo) List(ctx context.Context, page repository.Page) ([]*entity.Category, error) {
	var rows []categoryModel
	if err := r.db.WithContext(ctx).Order("name").Limit(page.Limit).Offset(page.Offset).Find(&rows).Error; err != nil {
		return nil, readError("list categories", err)
	}
	out := make([]*entity.Category, 0, len(rows))
	for _, m := range rows {
		out = append(out, m.toEntity())
	}
	return out, nil
}

func (r *CategoryRepo) Count(ctx context.Context) (int, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&categoryModel{}).Count(&n).Error; err != nil {
		return 0, readError("count categories", err)
	}
	return int(n), nil
}

func (r *CategoryRepo) Update(ctx context.Context, c *entity.Category) error {
	err := r.db.WithContext(ctx).Model(&categoryModel{ID: c.ID}).Updates(map[string]any{
		"name":        c.Name,
		"description": c.Description,
		"updated_at":  c.UpdatedAt.UTC(),
	}).Error
	if err != nil {
		return writeError("update category", err)
	}
	return nil
}

func (r *CategoryRepo) Delete(ctx context.Context, id string) error {
	if err := r.db.WithContext(ctx).Delete(&categoryModel{}, "id = ?", id).Error; err != nil {
		return writeError("delete category", err)
	}
	return nil
}

// ── Productos ─────────────────────────────────────────────────────────────────

// ProductRepo productos del catálogo sobre SQLite.
type ProductRepo struct {
	db *gorm.DB
}

func (r *ProductRepo) Create(ctx context.Context, p *entity.Product) error {
	m := fromProduct(p)
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(&m).Error; err != nil {
		return writeError("insert product", err)
	}
	return nil
}

func (r *ProductRepo) first(ctx context.Context, query string, arg any) (*entity.Product, error) {
	var m productModel
	if err := r.db.WithContext(ctx).Where(query, arg).First(&m).Error; err != nil {
		return nil, readError("get product", err)
	}
	return m.toEntity(), nil
}

func (r *ProductRepo) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	return r.first(ctx, "id = ?", id)
}

func (r *ProductRepo) GetByName(ctx context.Context, name string) (*entity.Product, error) {
	return r.first(ctx, "name = ?", name)
}

func (r *ProductRepo) filtered(ctx context.Context, f repository.ProductFilter) *gorm.DB {
	q := r.db.WithContext(ctx).Model(&productModel{})
	if f.CategoryID != "" {
		q = q.Where("category_id = ?", f.CategoryID)
	}
	return q
}

func (r *ProductRepo) find(q *gorm.DB, op string) ([]*entity.Product, error) {
	var rows []productModel
	if err := q.Find(&rows).Error; err != nil {
		return nil, readError(op, err)
	}
	out := make([]*entity.Product, 0, len(rows))
	for _, m := range rows {
		out = append(out, m.toEntity())
	}
	return out, nil
}

func (r *ProductRepo) List(ctx context.Context, f repository.ProductFilter, page repository.Page) ([]*entity.Product, error) {
	return r.find(r.filtered(ctx, f).Order("name").Limit(page.Limit).Offset(page.Offset), "list products")
}

func (r *ProductRepo) Count(ctx context.Context, f repository.ProductFilter) (int, error) {
	var n int64
	if err := r.filtered(ctx, f).Count(&n).Error; err != nil {
		return 0, readError("count products", err)
	}
	return int(n), nil
}

func (r *ProductRepo) ListAll(ctx context.Context) ([]*entity.Product, error) {
	return r.find(r.db.WithContext(ctx).Order("name"), "list all products")
}

func (r *ProductRepo) ListLowStock(ctx context.Context, threshold int) ([]*entity.Product, error) {
	return r.find(r.db.WithContext(ctx).Where("stock < ?", threshold).Order("stock, name"), "list low stock")
}

func (r *ProductRepo) Update(ctx context.Context, p *entity.Product) error {
	err := r.db.WithContext(ctx).Model(&productModel{ID: p.ID}).Updates(map[string]any{
		"name":        p.Name,
		"description": p.Description,
		"category_id": p.CategoryID,
		"price":       p.Price,
		"stock":       p.Stock,
		"updated_at":  p.UpdatedAt.UTC(),
	}).Error
	if err != nil {
		return writeError("update product", err)
	}
	return nil
}

func (r *ProductRepo) Delete(ctx context.Context, id string) error {
	if err := r.db.WithContext(ctx).Delete(&productModel{}, "id = ?", id).Error; err != nil {
		return writeError("delete product", err)
	}
	return nil
}

// ── Clientes ──────────────────────────────────────────────────────────────────

// CustomerRepo clientes sobre SQLite.
type CustomerRepo struct {
	db *gorm.DB
}

func (r *CustomerRepo) Create(ctx context.Context, c *entity.Customer) error {
	m := fromCustomer(c)
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return writeError("insert customer", err)
	}
	return nil
}

func (r *CustomerRepo) first(ctx context.Context, query string, arg any) (*entity.Customer, error) {
	var m customerModel
	if err := r.db.WithContext(ctx).Where(query, arg).First(&m).Error; err != nil {
		return nil, readError("get customer", err)
	}
	return m.toEntity(), nil
}

func (r *CustomerRepo) GetByID(ctx context.Context, id string) (*entity.Customer, error) {
	return r.first(ctx, "id = ?", id)
}

func (r *CustomerRepo) GetByEmail(ctx context.Context, email string) (*entity.Customer, error) {
	return r.first(ctx, "email = ?", email)
}

func (r *CustomerRepo) find(q *gorm.DB, op string) ([]*entity.Customer, error) {
	var rows []customerModel
	if err := q.Order("name, email").Find(&rows).Error; err != nil {
		return nil, readError(op, err)
	}
	out := make([]*entity.Customer, 0, len(rows))
	for _, m := range rows {
		out = append(out, m.toEntity())
	}
	return out, nil
}

func (r *CustomerRepo) List(ctx context.Context, page repository.Page) ([]*entity.Customer, error) {
	return r.find(r.db.WithContext(ctx).Limit(page.Limit).Offset(page.Offset), "list customers")
}

func (r *CustomerRepo) Count(ctx context.Context) (int, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&customerModel{}).Count(&n).Error; err != nil {
		return 0, readError("count customers", err)
	}
	return int(n), nil
}

func (r *CustomerRepo) ListAll(ctx context.Context) ([]*entity.Customer, error) {
	return r.find(r.db.WithContext(ctx), "list all customers")
}

func (r *CustomerRepo) Update(ctx context.Context, c *entity.Customer) error {
	err := r.db.WithContext(ctx).Model(&customerModel{ID: c.ID}).Updates(map[string]any{
		"name":       c.Name,
		"email":      c.Email,
		"phone":      c.Phone,
		"address":    c.Address,
		"updated_at": c.UpdatedAt.UTC(),
	}).Error
	if err != nil {
		return writeError("update customer", err)
	}
	return nil
}

func (r *CustomerRepo) Delete(ctx context.Context, id string) error {
	if err := r.db.WithContext(ctx).Delete(&customerModel{}, "id = ?", id).Error; err != nil {
		return writeError("delete customer", err)
	}
	return nil
}
