package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/product-management/internal/application/dto"
	"github.com/jhoicas/product-management/internal/application/manufacturing"
)

// ManufacturingHandler endpoints del componente de fabricación.
type ManufacturingHandler struct {
	products  *manufacturing.ProductUseCase
	processes *manufacturing.ProcessUseCase
	orders    *manufacturing.ProductionOrderUseCase
	inventory *manufacturing.InventoryUseCase
}

// NewManufacturingHandler construye el handler.
func NewManufacturingHandler(
	products *manufacturing.ProductUseCase,
	processes *manufacturing.ProcessUseCase,
	orders *manufacturing.ProductionOrderUseCase,
	inventory *manufacturing.InventoryUseCase,
) *ManufacturingHandler {
	return &ManufacturingHandler{products: products, processes: processes, orders: orders, inventory: inventory}
}

// ListProducts godoc
// @Summary      Listar productos de fabricación
// @Tags         manufacturing
// @Produce      json
// @Success      200  {array}  dto.MfgProductResponse
// @Router       /api/manufacturing/products/ [get]
func (h *ManufacturingHandler) ListProducts(c *fiber.Ctx) error {
	out, err := h.products.List(c.Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// CreateProduct godoc
// @Summary      Crear producto de fabricación
// @Tags         manufacturing
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateMfgProductRequest  true  "Producto"
// @Success      201   {object}  dto.MfgProductResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/manufacturing/products/ [post]
func (h *ManufacturingHandler) CreateProduct(c *fiber.Ctx) error {
	var in dto.CreateMfgProductRequest
	if err := bindBody(c, &in); err != nil {
		return writeError(c, err)
	}
	out, err := h.products.Create(c.Context(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// DeleteProduct godoc
// @Summary      Eliminar producto de fabricación
// @Tags         manufacturing
// @Param        id   path  string  true  "ID"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/manufacturing/products/{id}/ [delete]
func (h *ManufacturingHandler) DeleteProduct(c *fiber.Ctx) error {
	if err := h.products.Delete(c.Context(), c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ListProcesses godoc
// @Summary      Listar procesos
// @Tags         manufacturing
// @Produce      json
// @Success      200  {array}  dto.ProcessResponse
// @Router       /api/manufacturing/processes/ [get]
func (h *ManufacturingHandler) ListProcesses(c *fiber.Ctx) error {
	out, err := h.processes.List(c.Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// CreateProcess godoc
// @Summary      Crear proceso
// @Tags         manufacturing
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateProcessRequest  true  "Proceso"
// @Success      201   {object}  dto.ProcessResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/manufacturing/processes/ [post]
func (h *ManufacturingHandler) CreateProcess(c *fiber.Ctx) error {
	var in dto.CreateProcessRequest
	if err := bindBody(c, &in); err != nil {
		return writeError(c, err)
	}
	out, err := h.processes.Create(c.Context(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// DeleteProcess godoc
// @Summary      Eliminar proceso
// @Tags         manufacturing
// @Param        id   path  string  true  "ID"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/manufacturing/processes/{id}/ [delete]
func (h *ManufacturingHandler) DeleteProcess(c *fiber.Ctx) error {
	if err := h.processes.Delete(c.Context(), c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ListOrders godoc
// @Summary      Listar órdenes de producción
// @Description  Incluye los productos y procesos para el formulario de alta.
// @Tags         manufacturing
// @Produce      json
// @Param        status  query  string  false  "planned | in_progress | completed | canceled"
// @Success      200  {object}  dto.ProductionOrderListResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/manufacturing/production-orders/ [get]
func (h *ManufacturingHandler) ListOrders(c *fiber.Ctx) error {
	out, err := h.orders.List(c.Context(), c.Query("status"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// CreateOrder godoc
// @Summary      Crear orden de producción
// @Tags         manufacturing
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateProductionOrderRequest  true  "Orden"
// @Success      201   {object}  dto.ProductionOrderResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/manufacturing/production-orders/ [post]
func (h *ManufacturingHandler) CreateOrder(c *fiber.Ctx) error {
	var in dto.CreateProductionOrderRequest
	if err := bindBody(c, &in); err != nil {
		return writeError(c, err)
	}
	out, err := h.orders.Create(c.Context(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// UpdateOrderStatus godoc
// @Summary      Cambiar estado de una orden
// @Tags         manufacturing
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la orden"
// @Param        body  body  dto.UpdateOrderStatusRequest  true  "Estado"
// @Success      200   {object}  dto.ProductionOrderResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/manufacturing/production-orders/{id}/status/ [patch]
func (h *ManufacturingHandler) UpdateOrderStatus(c *fiber.Ctx) error {
	var in dto.UpdateOrderStatusRequest
	if err := bindBody(c, &in); err != nil {
		return writeError(c, err)
	}
	out, err := h.orders.UpdateStatus(c.Context(), c.Params("id"), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// ListInventory godoc
// @Summary      Inventario por ubicación
// @Tags         manufacturing
// @Produce      json
// @Param        location  query  string  false  "Ubicación"
// @Success      200  {object}  dto.InventoryListResponse
// @Router       /api/manufacturing/inventory/ [get]
func (h *ManufacturingHandler) ListInventory(c *fiber.Ctx) error {
	out, err := h.inventory.List(c.Context(), c.Query("location"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// CreateInventory godoc
// @Summary      Registrar inventario
// @Tags         manufacturing
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateInventoryRequest  true  "Registro"
// @Success      201   {object}  dto.InventoryResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/manufacturing/inventory/ [post]
func (h *ManufacturingHandler) CreateInventory(c *fiber.Ctx) error {
	var in dto.CreateInventoryRequest
	if err := bindBody(c, &in); err != nil {
		return writeError(c, err)
	}
	out, err := h.inventory.Create(c.Context(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}
