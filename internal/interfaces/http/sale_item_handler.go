package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/product-management/internal/application/dto"
	"github.com/jhoicas/product-management/internal/application/sales"
)

// SaleItemHandler líneas de venta. Cada cambio recalcula el total de la venta.
type SaleItemHandler struct {
	uc       *sales.SaleItemUseCase
	pageSize int
}

// NewSaleItemHandler construye el handler.
func NewSaleItemHandler(uc *sales.SaleItemUseCase, pageSize int) *SaleItemHandler {
	return &SaleItemHandler{uc: uc, pageSize: pageSize}
}

// List godoc
// @Summary      Listar líneas de venta
// @Tags         sale-items
// @Produce      json
// @Success      200  {object}  dto.ListResponse[dto.SaleItemResponse]
// @Router       /api/sale-items/ [get]
func (h *SaleItemHandler) List(c *fiber.Ctx) error {
	page, err := pageFrom(c, h.pageSize)
	if err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.List(c.Context(), page)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Agregar línea a una venta
// @Tags         sale-items
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateSaleItemRequest  true  "Línea"
// @Success      201   {object}  dto.SaleItemResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/sale-items/ [post]
func (h *SaleItemHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateSaleItemRequest
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
// @Summary      Obtener línea
// @Tags         sale-items
// @Produce      json
// @Param        id   path  string  true  "ID de la línea"
// @Success      200  {object}  dto.SaleItemResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/sale-items/{id}/ [get]
func (h *SaleItemHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Cambiar cantidad de una línea
// @Tags         sale-items
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la línea"
// @Param        body  body  dto.UpdateSaleItemRequest  true  "Cantidad"
// @Success      200   {object}  dto.SaleItemResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/sale-items/{id}/ [put]
func (h *SaleItemHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateSaleItemRequest
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
// @Summary      Eliminar línea
// @Tags         sale-items
// @Param        id   path  string  true  "ID de la línea"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/sale-items/{id}/ [delete]
func (h *SaleItemHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
