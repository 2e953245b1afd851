package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jhoicas/product-management/internal/application/analytics"
	"github.com/jhoicas/product-management/internal/application/manufacturing"
	"github.com/jhoicas/product-management/internal/application/sales"
	"github.com/jhoicas/product-management/internal/application/usecase"
	infrapdf "github.com/jhoicas/product-management/internal/infrastructure/pdf"
	"github.com/jhoicas/product-management/internal/infrastructure/store"
	httpRouter "github.com/jhoicas/product-management/internal/interfaces/http"
	"github.com/jhoicas/product-management/pkg/config"
	"github.com/jhoicas/product-management/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	loc := cfg.App.Location()
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("driver", cfg.DB.Driver).
		Str("timezone", loc.String()).
		Msg("iniciando aplicación")

	ctx := context.Background()
	st, err := store.Open(ctx, cfg.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("abrir base de datos")
	}
	defer func() {
		if err := st.Close(); err != nil {
			log.Error().Err(err).Msg("cerrar base de datos")
		}
	}()
	repos := st.Repos()

	categoryUC := usecase.NewCategoryUseCase(repos.Categories, repos.Products)
	productUC := usecase.NewProductUseCase(repos.Products, repos.Categories)
	customerUC := usecase.NewCustomerUseCase(repos.Customers)

	// Comprobante PDF: sin PDF_FONT_PATH se usa helvetica (sin glifos japoneses)
	receipts := infrapdf.NewReceiptGenerator(cfg.PDF.FontPath, loc)
	createSaleUC := sales.NewCreateSaleUseCase(st, nil)
	saleUC := sales.NewSaleUseCase(repos, st, receipts, loc)
	saleItemUC := sales.NewSaleItemUseCase(repos, st)

	dashboardUC := analytics.NewDashboardUseCase(repos, analytics.Config{
		LowStockThreshold: cfg.Dashboard.LowStockThreshold,
		WindowDays:        cfg.Dashboard.WindowDays,
		Location:          loc,
	}, nil)

	mfgProductUC := manufacturing.NewProductUseCase(repos.MfgProducts)
	processUC := manufacturing.NewProcessUseCase(repos.Processes)
	orderUC := manufacturing.NewProductionOrderUseCase(repos.ProductionOrders, repos.MfgProducts, repos.Processes)
	inventoryUC := manufacturing.NewInventoryUseCase(repos.Inventory, repos.MfgProducts)

	app := httpRouter.NewApp(httpRouter.AppConfig{
		Name:     cfg.App.Name,
		DocsPath: cfg.HTTP.DocsPath,
	}, httpRouter.RouterDeps{
		CategoryUC:   categoryUC,
		ProductUC:    productUC,
		CustomerUC:   customerUC,
		CreateSale:   createSaleUC,
		SaleUC:       saleUC,
		SaleItemUC:   saleItemUC,
		DashboardUC:  dashboardUC,
		MfgProductUC: mfgProductUC,
		ProcessUC:    processUC,
		OrderUC:      orderUC,
		InventoryUC:  inventoryUC,
		PageSize:     cfg.HTTP.PageSize,
	}, log)

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
