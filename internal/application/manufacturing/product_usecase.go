// Package manufacturing contiene los casos de uso del componente de fabricación.
package manufacturing

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/product-management/internal/application/dto"
	"github.com/jhoicas/product-management/internal/domain"
	mfg "github.com/jhoicas/product-management/internal/domain/manufacturing"
	"github.com/jhoicas/product-management/internal/domain/repository"
)

// ProductUseCase productos de fabricación.
type ProductUseCase struct {
	repo repository.MfgProductRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.MfgProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

// List lista por código.
func (uc *ProductUseCase) List(ctx context.Context) ([]dto.MfgProductResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("fabricación: listar productos: %w", err)
	}
	return toProductResponses(list), nil
}

func toProductResponses(list []*mfg.Product) []dto.MfgProductResponse {
	out := make([]dto.MfgProductResponse, 0, len(list))
	for _, p := range list {
		out = append(out, dto.ToMfgProductResponse(p))
	}
	return out
}

// Create crea un producto. El código es único.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.CreateMfgProductRequest) (*dto.MfgProductResponse, error) {
	verr := &domain.ValidationError{}
	code := strings.TrimSpace(in.Code)
	name := strings.TrimSpace(in.Name)
	if code == "" {
		verr.Add("code", "es obligatorio")
	}
	if name == "" {
		verr.Add("name", "es obligatorio")
	}
	if err := verr.OrNil(); err != nil {
		return nil, err
	}
	existing, err := uc.repo.GetByCode(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("fabricación: buscar producto: %w", err)
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now().UTC()
	p := &mfg.Product{
		ID:          uuid.New().String(),
		Code:        code,
		Name:        name,
		Description: in.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(ctx, p); err != nil {
		return nil, fmt.Errorf("fabricación: crear producto: %w", err)
	}
	out := dto.ToMfgProductResponse(p)
	return &out, nil
}

// Delete elimina el producto; ErrConflict si lo usan órdenes o inventario.
func (uc *ProductUseCase) Delete(ctx context.Context, id string) error {
	p, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("fabricación: obtener producto: %w", err)
	}
	if p == nil {
		return domain.ErrNotFound
	}
	if err := uc.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("fabricación: eliminar producto: %w", err)
	}
	return nil
}
