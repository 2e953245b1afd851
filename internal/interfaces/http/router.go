package http

import (
	"os"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	"github.com/jhoicas/product-management/internal/application/analytics"
	"github.com/jhoicas/product-management/internal/application/manufacturing"
	"github.com/jhoicas/product-management/internal/application/sales"
	"github.com/jhoicas/product-management/internal/application/usecase"
	"github.com/jhoicas/product-management/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CategoryUC  *usecase.CategoryUseCase
	ProductUC   *usecase.ProductUseCase
	CustomerUC  *usecase.CustomerUseCase
	CreateSale  *sales.CreateSaleUseCase
	SaleUC      *sales.SaleUseCase
	SaleItemUC  *sales.SaleItemUseCase
	DashboardUC *analytics.DashboardUseCase

	MfgProductUC *manufacturing.ProductUseCase
	ProcessUC    *manufacturing.ProcessUseCase
	OrderUC      *manufacturing.ProductionOrderUseCase
	InventoryUC  *manufacturing.InventoryUseCase

	PageSize int
}

// AppConfig opciones de la aplicación fiber.
type AppConfig struct {
	Name     string
	DocsPath string // swagger.json; se ignora si el archivo no existe
}

// NewApp crea la aplicación fiber con middlewares, /health/, Swagger y las rutas de la API.
func NewApp(cfg AppConfig, deps RouterDeps, log *logger.Logger) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      cfg.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
		ErrorHandler: ErrorHandler,
	})
	app.Use(requestid.New())
	app.Use(RequestLogger(log))
	app.Use(recover.New())

	// Swagger UI: http://localhost:<port>/docs
	if cfg.DocsPath != "" {
		if _, err := os.Stat(cfg.DocsPath); err == nil {
			app.Use(swagger.New(swagger.Config{
				BasePath: "/",
				FilePath: cfg.DocsPath,
				Path:     "docs",
				Title:    cfg.Name,
			}))
		} else {
			log.Warn().Str("path", cfg.DocsPath).Msg("swagger.json no encontrado; /docs desactivado")
		}
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.SendString("OK")
	})

	Router(app, deps)
	return app
}

// Router registra las rutas de la API. Las rutas aceptan la barra final.
func Router(app *fiber.App, deps RouterDeps) {
	pageSize := deps.PageSize
	if pageSize <= 0 {
		pageSize = 10
	}
	api := app.Group("/api")

	// Categorías
	categoryHandler := NewCategoryHandler(deps.CategoryUC, pageSize)
	categories := api.Group("/categories")
	categories.Get("/", categoryHandler.List)
	categories.Post("/", categoryHandler.Create)
	categories.Get("/:id/products", categoryHandler.Products)
	categories.Get("/:id", categoryHandler.GetByID)
	categories.Put("/:id", categoryHandler.Update)
	categories.Patch("/:id", categoryHandler.Update)
	categories.Delete("/:id", categoryHandler.Delete)

	// Productos (low_stock antes de /:id)
	productHandler := NewProductHandler(deps.ProductUC, deps.DashboardUC, pageSize)
	products := api.Group("/products")
	products.Get("/", productHandler.List)
	products.Post("/", productHandler.Create)
	products.Get("/low_stock", productHandler.LowStock)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Patch("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)

	// Clientes
	customerHandler := NewCustomerHandler(deps.CustomerUC, deps.DashboardUC, pageSize)
	customers := api.Group("/customers")
	customers.Get("/", customerHandler.List)
	customers.Post("/", customerHandler.Create)
	customers.Get("/:id/purchase_history", customerHandler.PurchaseHistory)
	customers.Get("/:id", customerHandler.GetByID)
	customers.Put("/:id", customerHandler.Update)
	customers.Patch("/:id", customerHandler.Update)
	customers.Delete("/:id", customerHandler.Delete)

	// Ventas
	saleHandler := NewSaleHandler(deps.CreateSale, deps.SaleUC, deps.DashboardUC, pageSize)
	salesGroup := api.Group("/sales")
	salesGroup.Get("/", saleHandler.List)
	salesGroup.Post("/", saleHandler.Create)
	salesGroup.Get("/dashboard_stats", saleHandler.DashboardStats)
	salesGroup.Get("/daily_revenue", saleHandler.DailyRevenue)
	salesGroup.Get("/:id/receipt", saleHandler.Receipt)
	salesGroup.Get("/:id", saleHandler.GetByID)
	salesGroup.Put("/:id", saleHandler.Update)
	salesGroup.Patch("/:id", saleHandler.Update)
	salesGroup.Delete("/:id", saleHandler.Delete)

	// Líneas de venta
	itemHandler := NewSaleItemHandler(deps.SaleItemUC, pageSize)
	items := api.Group("/sale-items")
	items.Get("/", itemHandler.List)
	items.Post("/", itemHandler.Create)
	items.Get("/:id", itemHandler.GetByID)
	items.Put("/:id", itemHandler.Update)
	items.Patch("/:id", itemHandler.Update)
	items.Delete("/:id", itemHandler.Delete)

	// Fabricación
	mfgHandler := NewManufacturingHandler(deps.MfgProductUC, deps.ProcessUC, deps.OrderUC, deps.InventoryUC)
	mfg := api.Group("/manufacturing")
	mfg.Get("/products", mfgHandler.ListProducts)
	mfg.Post("/products", mfgHandler.CreateProduct)
	mfg.Delete("/products/:id", mfgHandler.DeleteProduct)
	mfg.Get("/processes", mfgHandler.ListProcesses)
	mfg.Post("/processes", mfgHandler.CreateProcess)
	mfg.Delete("/processes/:id", mfgHandler.DeleteProcess)
	mfg.Get("/production-orders", mfgHandler.ListOrders)
	mfg.Post("/production-orders", mfgHandler.CreateOrder)
	mfg.Patch("/production-orders/:id/status", mfgHandler.UpdateOrderStatus)
	mfg.Get("/inventory", mfgHandler.ListInventory)
	mfg.Post("/inventory", mfgHandler.CreateInventory)
}
