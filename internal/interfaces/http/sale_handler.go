package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/product-management/internal/application/analytics"
	"github.com/jhoicas/product-management/internal/application/dto"
	"github.com/jhoicas/product-management/internal/application/sales"
)

// SaleHandler maneja ventas, su comprobante PDF y los endpoints de resumen.
type SaleHandler struct {
	create    *sales.CreateSaleUseCase
	uc        *sales.SaleUseCase
	dashboard *analytics.DashboardUseCase
	pageSize  int
}

// NewSaleHandler construye el handler.
func NewSaleHandler(
	create *sales.CreateSaleUseCase,
	uc *sales.SaleUseCase,
	dashboard *analytics.DashboardUseCase,
	pageSize int,
) *SaleHandler {
	return &SaleHandler{create: create, uc: uc, dashboard: dashboard, pageSize: pageSize}
}

// Create godoc
// @Summary      Crear venta
// @Description  Crea la cabecera y sus líneas en una transacción. Cada línea copia el precio vigente del producto.
// @Tags         sales
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateSaleRequest  true  "Venta con líneas"
// @Success      201   {object}  dto.SaleResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/sales/ [post]
func (h *SaleHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateSaleRequest
	if err := bindBody(c, &in); err != nil {
		return writeError(c, err)
	}
	out, err := h.create.Create(c.Context(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar ventas
// @Tags         sales
// @Produce      json
// @Param        from         query  string  false  "Desde (YYYY-MM-DD)"
// @Param        to           query  string  false  "Hasta inclusive (YYYY-MM-DD)"
// @Param        status       query  string  false  "completed | pending | cancelled"
// @Param        customer_id  query  string  false  "Cliente"
// @Param        page         query  int     false  "Página"  default(1)
// @Success      200  {object}  dto.ListResponse[dto.SaleResponse]
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/sales/ [get]
func (h *SaleHandler) List(c *fiber.Ctx) error {
	page, err := pageFrom(c, h.pageSize)
	if err != nil {
		return writeError(c, err)
	}
	var filter dto.SaleFilterRequest
	if err := bindQuery(c, &filter); err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.List(c.Context(), filter, page)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener venta con sus líneas
// @Tags         sales
// @Produce      json
// @Param        id   path  string  true  "ID de la venta"
// @Success      200  {object}  dto.SaleResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/sales/{id}/ [get]
func (h *SaleHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar cabecera de venta
// @Description  Cliente, estado y fecha. El total se deriva de las líneas y no se acepta.
// @Tags         sales
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la venta"
// @Param        body  body  dto.UpdateSaleRequest  true  "Cambios"
// @Success      200   {object}  dto.SaleResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/sales/{id}/ [put]
func (h *SaleHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateSaleRequest
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
// @Summary      Eliminar venta y sus líneas
// @Tags         sales
// @Param        id   path  string  true  "ID de la venta"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/sales/{id}/ [delete]
func (h *SaleHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Receipt godoc
// @Summary      Comprobante PDF de la venta
// @Tags         sales
// @Produce      application/pdf
// @Param        id   path  string  true  "ID de la venta"
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/sales/{id}/receipt/ [get]
func (h *SaleHandler) Receipt(c *fiber.Ctx) error {
	pdf, filename, err := h.uc.Receipt(c.Context(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `inline; filename="`+filename+`"`)
	return c.Send(pdf)
}

// DashboardStats godoc
// @Summary      Resumen de ventas
// @Description  Totales y conteo por estado bajo el filtro, serie diaria de la ventana y productos con stock bajo.
// @Tags         sales
// @Produce      json
// @Param        from    query  string  false  "Desde (YYYY-MM-DD)"
// @Param        to      query  string  false  "Hasta inclusive (YYYY-MM-DD)"
// @Param        status  query  string  false  "Estado"
// @Success      200  {object}  dto.DashboardStatsDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/sales/dashboard_stats/ [get]
func (h *SaleHandler) DashboardStats(c *fiber.Ctx) error {
	var in dto.DashboardStatsRequest
	if err := bindQuery(c, &in); err != nil {
		return writeError(c, err)
	}
	out, err := h.dashboard.GetStats(c.Context(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// DailyRevenue godoc
// @Summary      Ingresos por día
// @Description  Serie continua de los últimos N días (incluye días sin ventas).
// @Tags         sales
// @Produce      json
// @Param        days  query  int  false  "Días"  default(6)
// @Success      200  {array}   dto.DailyRevenueDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/sales/daily_revenue/ [get]
func (h *SaleHandler) DailyRevenue(c *fiber.Ctx) error {
	out, err := h.dashboard.DailyRevenue(c.Context(), c.QueryInt("days", 0))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
