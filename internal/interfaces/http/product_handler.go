package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/product-management/internal/application/analytics"
	"github.com/jhoicas/product-management/internal/application/dto"
	"github.com/jhoicas/product-management/internal/application/usecase"
	"github.com/jhoicas/product-management/internal/domain"
)

// ProductHandler maneja las peticiones HTTP para Product.
type ProductHandler struct {
	uc        *usecase.ProductUseCase
	dashboard *analytics.DashboardUseCase
	pageSize  int
}

// NewProductHandler construye el handler.
func NewProductHandler(uc *usecase.ProductUseCase, dashboard *analytics.DashboardUseCase, pageSize int) *ProductHandler {
	return &ProductHandler{uc: uc, dashboard: dashboard, pageSize: pageSize}
}

// Create godoc
// @Summary      Crear producto
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateProductRequest  true  "Datos del producto"
// @Success      201   {object}  dto.ProductResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/products/ [post]
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateProductRequest
	if err := bindBody(c, &in); err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener producto por ID
// @Tags         products
// @Produce      json
// @Param        id   path  string  true  "ID del producto"
// @Success      200  {object}  dto.ProductResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{id}/ [get]
func (h *ProductHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar productos
// @Tags         products
// @Produce      json
// @Param        category   query  string  false  "Filtrar por categoría"
// @Param        page       query  int     false  "Página"  default(1)
// @Param        page_size  query  int     false  "Tamaño"  default(10)
// @Success      200  {object}  dto.ListResponse[dto.ProductResponse]
// @Router       /api/products/ [get]
func (h *ProductHandler) List(c *fiber.Ctx) error {
	page, err := pageFrom(c, h.pageSize)
	if err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.List(c.Context(), c.Query("category"), page)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar producto
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del producto"
// @Param        body  body  dto.UpdateProductRequest  true  "Datos a actualizar"
// @Success      200   {object}  dto.ProductResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/products/{id}/ [put]
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateProductRequest
	if err := bindBody(c, &in); err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.Update(c.Context(), c.Params("id"), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar producto
// @Description  409 si alguna línea de venta lo referencia.
// @Tags         products
// @Param        id   path  string  true  "ID del producto"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/products/{id}/ [delete]
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// LowStock godoc
// @Summary      Productos con stock bajo
// @Description  stock < threshold; sin threshold se usa LOW_STOCK_THRESHOLD.
// @Tags         products
// @Produce      json
// @Param        threshold  query  int  false  "Umbral"
// @Success      200  {object}  dto.LowStockResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/products/low_stock/ [get]
func (h *ProductHandler) LowStock(c *fiber.Ctx) error {
	var threshold *int
	if raw := c.Query("threshold"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return writeError(c, domain.NewValidationError("threshold", "debe ser un entero"))
		}
		threshold = &n
	}
	out, err := h.dashboard.LowStock(c.Context(), threshold)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
