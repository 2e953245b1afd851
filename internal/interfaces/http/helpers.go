package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/product-management/internal/application/dto"
)

// pageFrom lee page/page_size de la query con los valores por defecto de la app.
func pageFrom(c *fiber.Ctx, pageSize int) (dto.PageRequest, error) {
	var p dto.PageRequest
	if err := bindQuery(c, &p); err != nil {
		return p, err
	}
	if p.PageSize <= 0 {
		p.PageSize = pageSize
	}
	p.DefaultPage()
	return p, nil
}
