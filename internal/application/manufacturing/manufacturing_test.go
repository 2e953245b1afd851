package manufacturing_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/product-management/internal/application/dto"
	"github.com/jhoicas/product-management/internal/application/manufacturing"
	"github.com/jhoicas/product-management/internal/domain"
	"github.com/jhoicas/product-management/internal/infrastructure/sqlite"
	"github.com/jhoicas/product-management/pkg/logger"
)

type plant struct {
	products  *manufacturing.ProductUseCase
	processes *manufacturing.ProcessUseCase
	orders    *manufacturing.ProductionOrderUseCase
	inventory *manufacturing.InventoryUseCase
}

func newPlant(t *testing.T) *plant {
	t.Helper()
	store, err := sqlite.Open(context.Background(), sqlite.MemoryDSN(), logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	r := store.Repos()
	return &plant{
		products:  manufacturing.NewProductUseCase(r.MfgProducts),
		processes: manufacturing.NewProcessUseCase(r.Processes),
		orders:    manufacturing.NewProductionOrderUseCase(r.ProductionOrders, r.MfgProducts, r.Processes),
		inventory: manufacturing.NewInventoryUseCase(r.Inventory, r.MfgProducts),
	}
}

func TestProduct_CodigoUnico(t *testing.T) {
	p := newPlant(t)
	ctx := context.Background()

	_, err := p.products.Create(ctx, dto.CreateMfgProductRequest{Code: "P-001", Name: "ギア"})
	require.NoError(t, err)
	_, err = p.products.Create(ctx, dto.CreateMfgProductRequest{Code: "P-001", Name: "別のギア"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	_, err = p.products.Create(ctx, dto.CreateMfgProductRequest{})
	var verr *domain.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Contains(t, verr.Fields, "code")
	assert.Contains(t, verr.Fields, "name")
}

func TestOrder_CreateReportaTodosLosCampos(t *testing.T) {
	p := newPlant(t)

	_, err := p.orders.Create(context.Background(), dto.CreateProductionOrderRequest{
		ProductID:   "no-existe",
		Quantity:    0,
		PlannedDate: "2024/05/01",
		Status:      "cancelled",
	})

	var verr *domain.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "el producto no existe", verr.Fields["product_id"])
	assert.Equal(t, "es obligatorio", verr.Fields["process_id"])
	assert.Equal(t, "debe ser mayor que 0", verr.Fields["quantity"])
	assert.Contains(t, verr.Fields, "planned_date")
	assert.Contains(t, verr.Fields, "status")
}

func TestOrder_FlujoCompleto(t *testing.T) {
	p := newPlant(t)
	ctx := context.Background()

	prod, err := p.products.Create(ctx, dto.CreateMfgProductRequest{Code: "P-010", Name: "シャフト"})
	require.NoError(t, err)
	proc, err := p.processes.Create(ctx, dto.CreateProcessRequest{Name: "切削", StandardTime: 30})
	require.NoError(t, err)

	older, err := p.orders.Create(ctx, dto.CreateProductionOrderRequest{ProductID: prod.ID, ProcessID: proc.ID, Quantity: 10, PlannedDate: "2024-05-01"})
	require.NoError(t, err)
	assert.Equal(t, "planned", older.Status)
	newer, err := p.orders.Create(ctx, dto.CreateProductionOrderRequest{ProductID: prod.ID, ProcessID: proc.ID, Quantity: 5, PlannedDate: "2024-06-01", Status: "in_progress"})
	require.NoError(t, err)

	list, err := p.orders.List(ctx, "")
	require.NoError(t, err)
	require.Len(t, list.Orders, 2)
	assert.Equal(t, newer.ID, list.Orders[0].ID)
	assert.Equal(t, "P-010", list.Orders[0].ProductCode)
	assert.Equal(t, "切削", list.Orders[0].ProcessName)
	assert.Len(t, list.Products, 1)
	assert.Len(t, list.Processes, 1)

	out, err := p.orders.UpdateStatus(ctx, older.ID, dto.UpdateOrderStatusRequest{Status: "completed"})
	require.NoError(t, err)
	assert.Equal(t, "completed", out.Status)

	list, err = p.orders.List(ctx, "completed")
	require.NoError(t, err)
	require.Len(t, list.Orders, 1)
	assert.Equal(t, older.ID, list.Orders[0].ID)

	_, err = p.orders.List(ctx, "archivada")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, err = p.orders.UpdateStatus(ctx, "no-existe", dto.UpdateOrderStatusRequest{Status: "completed"})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	assert.ErrorIs(t, p.processes.Delete(ctx, proc.ID), domain.ErrConflict)
	assert.ErrorIs(t, p.products.Delete(ctx, prod.ID), domain.ErrConflict)
}

func TestInventory_ListPorUbicacion(t *testing.T) {
	p := newPlant(t)
	ctx := context.Background()

	a, err := p.products.Create(ctx, dto.CreateMfgProductRequest{Code: "B-2", Name: "ボルト"})
	require.NoError(t, err)
	b, err := p.products.Create(ctx, dto.CreateMfgProductRequest{Code: "A-1", Name: "ナット"})
	require.NoError(t, err)
	for _, in := range []dto.CreateInventoryRequest{
		{ProductID: a.ID, Quantity: 100, Location: "倉庫B"},
		{ProductID: a.ID, Quantity: 40, Location: "倉庫A"},
		{ProductID: b.ID, Quantity: 70, Location: "倉庫A"},
	} {
		_, err := p.inventory.Create(ctx, in)
		require.NoError(t, err)
	}

	all, err := p.inventory.List(ctx, "")
	require.NoError(t, err)
	require.Len(t, all.Inventories, 3)
	assert.Equal(t, "A-1", all.Inventories[0].ProductCode)
	assert.Equal(t, "倉庫B", all.Inventories[2].Location)
	assert.Len(t, all.Products, 2)

	onlyA, err := p.inventory.List(ctx, " 倉庫A ")
	require.NoError(t, err)
	assert.Len(t, onlyA.Inventories, 2)

	_, err = p.inventory.Create(ctx, dto.CreateInventoryRequest{ProductID: a.ID, Quantity: -1})
	var verr *domain.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Contains(t, verr.Fields, "quantity")
	assert.Contains(t, verr.Fields, "location")
}
