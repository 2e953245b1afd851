package dto

// DefaultPageSize tamaño de página por defecto de los listados.
const DefaultPageSize = 10

// PageRequest paginación por número de página (1-based).
type PageRequest struct {
	Page     int `query:"page" validate:"min=0"`
	PageSize int `query:"page_size" validate:"min=0,max=100"`
}

// DefaultPage aplica valores por defecto si Page/PageSize son cero o negativos.
func (p *PageRequest) DefaultPage() {
	if p.Page <= 0 {
		p.Page = 1
	}
	if p.PageSize <= 0 {
		p.PageSize = DefaultPageSize
	}
}

// Limit y Offset traducen la página a la ventana SQL.
func (p PageRequest) Limit() int  { return p.PageSize }
func (p PageRequest) Offset() int { return (p.Page - 1) * p.PageSize }

// PageResponse metadatos de página en respuestas.
type PageResponse struct {
	Count    int  `json:"count"`
	Page     int  `json:"page"`
	PageSize int  `json:"page_size"`
	Next     *int `json:"next"`
	Previous *int `json:"previous"`
}

// NewPageResponse calcula next/previous a partir del total.
func NewPageResponse(p PageRequest, total int) PageResponse {
	out := PageResponse{Count: total, Page: p.Page, PageSize: p.PageSize}
	if p.Page > 1 {
		prev := p.Page - 1
		out.Previous = &prev
	}
	if p.Page*p.PageSize < total {
		next := p.Page + 1
		out.Next = &next
	}
	return out
}

// ListResponse lista paginada genérica.
type ListResponse[T any] struct {
	Items []T          `json:"items"`
	Page  PageResponse `json:"page"`
}

// ErrorResponse cuerpo de error HTTP. Fields solo aparece en errores de validación.
type ErrorResponse struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields,omitempty"`
}
