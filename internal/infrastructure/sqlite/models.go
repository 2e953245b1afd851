package sqlite

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/product-management/internal/domain/entity"
	mfg "github.com/jhoicas/product-management/internal/domain/manufacturing"
)

// Modelos gorm. Los importes se guardan como texto para no perder precisión;
// las sumas se hacen en Go con decimal.

type categoryModel struct {
	ID          string `gorm:"primaryKey;type:text"`
	Name        string `gorm:"uniqueIndex;not null;size:100"`
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (categoryModel) TableName() string { return "categories" }

type productModel struct {
	ID          string `gorm:"primaryKey;type:text"`
	Name        string `gorm:"uniqueIndex;not null;size:200"`
	Description string
	CategoryID  string          `gorm:"not null;index"`
	Category    *categoryModel  `gorm:"constraint:OnDelete:RESTRICT"`
	Price       decimal.Decimal `gorm:"type:text;not null"`
	Stock       int             `gorm:"not null;index"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (productModel) TableName() string { return "products" }

type customerModel struct {
	ID        string `gorm:"primaryKey;type:text"`
	Name      string `gorm:"not null;size:100"`
	Email     string `gorm:"uniqueIndex;not null"`
	Phone     string `gorm:"size:20"`
	Address   string
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (customerModel) TableName() string { return "customers" }

type saleModel struct {
	ID          string         `gorm:"primaryKey;type:text"`
	CustomerID  string         `gorm:"not null;index"`
	Customer    *customerModel `gorm:"constraint:OnDelete:RESTRICT"`
	Status      string         `gorm:"not null;size:20;index"`
	SaleDate    time.Time      `gorm:"not null;index"`
	TotalAmount decimal.Decimal `gorm:"type:text;not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (saleModel) TableName() string { return "sales" }

type saleItemModel struct {
	ID         string          `gorm:"primaryKey;type:text"`
	SaleID     string          `gorm:"not null;index"`
	Sale       *saleModel      `gorm:"constraint:OnDelete:CASCADE"`
	ProductID  string          `gorm:"not null;index"`
	Product    *productModel   `gorm:"constraint:OnDelete:RESTRICT"`
	Quantity   int             `gorm:"not null"`
	UnitPrice  decimal.Decimal `gorm:"type:text;not null"`
	TotalPrice decimal.Decimal `gorm:"type:text;not null"`
}

func (saleItemModel) TableName() string { return "sale_items" }

type mfgProductModel struct {
	ID          string `gorm:"primaryKey;type:text"`
	Code        string `gorm:"uniqueIndex;not null;size:50"`
	Name        string `gorm:"not null;size:200"`
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (mfgProductModel) TableName() string { return "mfg_products" }

type processModel struct {
	ID           string `gorm:"primaryKey;type:text"`
	Name         string `gorm:"not null;size:100"`
	Description  string
	StandardTime int `gorm:"not null"`
	CreatedAt    time.Time
}

func (processModel) TableName() string { return "mfg_processes" }

type productionOrderModel struct {
	ID          string           `gorm:"primaryKey;type:text"`
	ProductID   string           `gorm:"not null;index"`
	Product     *mfgProductModel `gorm:"constraint:OnDelete:RESTRICT"`
	ProcessID   string           `gorm:"not null;index"`
	Process     *processModel    `gorm:"constraint:OnDelete:RESTRICT"`
	Quantity    int              `gorm:"not null"`
	PlannedDate time.Time        `gorm:"not null;index"`
	Status      string           `gorm:"not null;size:20"`
	Notes       string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (productionOrderModel) TableName() string { return "mfg_production_orders" }

type inventoryModel struct {
	ID        string           `gorm:"primaryKey;type:text"`
	ProductID string           `gorm:"not null;index"`
	Product   *mfgProductModel `gorm:"constraint:OnDelete:RESTRICT"`
	Quantity  int              `gorm:"not null"`
	Location  string           `gorm:"not null;size:100;index"`
	UpdatedAt time.Time
}

func (inventoryModel) TableName() string { return "mfg_inventory" }

// allModels orden de creación para AutoMigrate (referenciadas primero).
func allModels() []any {
	return []any{
		&categoryModel{}, &productModel{}, &customerModel{}, &saleModel{}, &saleItemModel{},
		&mfgProductModel{}, &processModel{}, &productionOrderModel{}, &inventoryModel{},
	}
}

// ── Conversión ────────────────────────────────────────────────────────────────

func fromCategory(c *entity.Category) categoryModel {
	return categoryModel{ID: c.ID, Name: c.Name, Description: c.Description, CreatedAt: c.CreatedAt.UTC(), UpdatedAt: c.UpdatedAt.UTC()}
}

func (m categoryModel) toEntity() *entity.Category {
	return &entity.Category{ID: m.ID, Name: m.Name, Description: m.Description, CreatedAt: m.CreatedAt, UpdatedAt: m.UpdatedAt}
}

func fromProduct(p *entity.Product) productModel {
	return productModel{
		ID: p.ID, Name: p.Name, Description: p.Description, CategoryID: p.CategoryID,
		Price: p.Price, Stock: p.Stock, CreatedAt: p.CreatedAt.UTC(), UpdatedAt: p.UpdatedAt.UTC(),
	}
}

func (m productModel) toEntity() *entity.Product {
	return &entity.Product{
		ID: m.ID, Name: m.Name, Description: m.Description, CategoryID: m.CategoryID,
		Price: m.Price, Stock: m.Stock, CreatedAt: m.CreatedAt, UpdatedAt: m.UpdatedAt,
	}
}

func fromCustomer(c *entity.Customer) customerModel {
	return customerModel{
		ID: c.ID, Name: c.Name, Email: c.Email, Phone: c.Phone, Address: c.Address,
		CreatedAt: c.CreatedAt.UTC(), UpdatedAt: c.UpdatedAt.UTC(),
	}
}

func (m customerModel) toEntity() *entity.Customer {
	return &entity.Customer{
		ID: m.ID, Name: m.Name, Email: m.Email, Phone: m.Phone, Address: m.Address,
		CreatedAt: m.CreatedAt, UpdatedAt: m.UpdatedAt,
	}
}

func fromSale(s *entity.Sale) saleModel {
	return saleModel{
		ID: s.ID, CustomerID: s.CustomerID, Status: string(s.Status), SaleDate: s.SaleDate.UTC(),
		TotalAmount: s.TotalAmount, CreatedAt: s.CreatedAt.UTC(), UpdatedAt: s.UpdatedAt.UTC(),
	}
}

func (m saleModel) toEntity() *entity.Sale {
	return &entity.Sale{
		ID: m.ID, CustomerID: m.CustomerID, Status: entity.SaleStatus(m.Status), SaleDate: m.SaleDate,
		TotalAmount: m.TotalAmount, CreatedAt: m.CreatedAt, UpdatedAt: m.UpdatedAt,
	}
}

func fromSaleItem(i *entity.SaleItem) saleItemModel {
	return saleItemModel{
		ID: i.ID, SaleID: i.SaleID, ProductID: i.ProductID, Quantity: i.Quantity,
		UnitPrice: i.UnitPrice, TotalPrice: i.TotalPrice,
	}
}

func (m saleItemModel) toEntity() entity.SaleItem {
	return entity.SaleItem{
		ID: m.ID, SaleID: m.SaleID, ProductID: m.ProductID, Quantity: m.Quantity,
		UnitPrice: m.UnitPrice, TotalPrice: m.TotalPrice,
	}
}

func (m mfgProductModel) toEntity() *mfg.Product {
	return &mfg.Product{ID: m.ID, Code: m.Code, Name: m.Name, Description: m.Description, CreatedAt: m.CreatedAt, UpdatedAt: m.UpdatedAt}
}

func (m processModel) toEntity() *mfg.Process {
	return &mfg.Process{ID: m.ID, Name: m.Name, Description: m.Description, StandardTime: m.StandardTime, CreatedAt: m.CreatedAt}
}
