package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/product-management/internal/application/dto"
	"github.com/jhoicas/product-management/internal/domain"
	"github.com/jhoicas/product-management/internal/domain/entity"
	"github.com/jhoicas/product-management/internal/domain/repository"
)

// CategoryUseCase casos de uso CRUD para categorías.
type CategoryUseCase struct {
	repo     repository.CategoryRepository
	products repository.ProductRepository
}

// NewCategoryUseCase construye el caso de uso.
func NewCategoryUseCase(repo repository.CategoryRepository, products repository.ProductRepository) *CategoryUseCase {
	return &CategoryUseCase{repo: repo, products: products}
}

// Create crea una categoría. El nombre es único.
func (uc *CategoryUseCase) Create(ctx context.Context, in dto.CreateCategoryRequest) (*dto.CategoryResponse, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, domain.NewValidationError("name", "es obligatorio")
	}
	existing, err := uc.repo.GetByName(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("categoría: buscar por nombre: %w", err)
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now().UTC()
	c := &entity.Category{
		ID:          uuid.New().String(),
		Name:        name,
		Description: in.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(ctx, c); err != nil {
		return nil, fmt.Errorf("categoría: crear: %w", err)
	}
	out := dto.ToCategoryResponse(c)
	return &out, nil
}

// GetByID obtiene una categoría.
func (uc *CategoryUseCase) GetByID(ctx context.Context, id string) (*dto.CategoryResponse, error) {
	c, err := uc.get(ctx, id)
	if err != nil {
		return nil, err
	}
	out := dto.ToCategoryResponse(c)
	return &out, nil
}

func (uc *CategoryUseCase) get(ctx context.Context, id string) (*entity.Category, error) {
	c, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("categoría: obtener: %w", err)
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	return c, nil
}

// Update cambia nombre o descripción.
func (uc *CategoryUseCase) Update(ctx context.Context, id string, in dto.UpdateCategoryRequest) (*dto.CategoryResponse, error) {
	c, err := uc.get(ctx, id)
	if err != nil {
		return nil, err
	}
	if in.Name != nil {
		c.Name = strings.TrimSpace(*in.Name)
		if c.Name == "" {
			return nil, domain.NewValidationError("name", "es obligatorio")
		}
	}
	if in.Description != nil {
		c.Description = *in.Description
	}
	c.UpdatedAt = time.Now().UTC()
	if err := uc.repo.Update(ctx, c); err != nil {
		return nil, fmt.Errorf("categoría: actualizar: %w", err)
	}
	out := dto.ToCategoryResponse(c)
	return &out, nil
}

// List lista categorías por nombre.
func (uc *CategoryUseCase) List(ctx context.Context, page dto.PageRequest) (*dto.ListResponse[dto.CategoryResponse], error) {
	page.DefaultPage()
	total, err := uc.repo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("categoría: contar: %w", err)
	}
	list, err := uc.repo.List(ctx, repository.Page{Limit: page.Limit(), Offset: page.Offset()})
	if err != nil {
		return nil, fmt.Errorf("categoría: listar: %w", err)
	}
	items := make([]dto.CategoryResponse, 0, len(list))
	for _, c := range list {
		items = append(items, dto.ToCategoryResponse(c))
	}
	return &dto.ListResponse[dto.CategoryResponse]{Items: items, Page: dto.NewPageResponse(page, total)}, nil
}

// ListProducts lista los productos de la categoría.
func (uc *CategoryUseCase) ListProducts(ctx context.Context, id string, page dto.PageRequest) (*dto.ListResponse[dto.ProductResponse], error) {
	if _, err := uc.get(ctx, id); err != nil {
		return nil, err
	}
	page.DefaultPage()
	filter := repository.ProductFilter{CategoryID: id}
	total, err := uc.products.Count(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("categoría: contar productos: %w", err)
	}
	list, err := uc.products.List(ctx, filter, repository.Page{Limit: page.Limit(), Offset: page.Offset()})
	if err != nil {
		return nil, fmt.Errorf("categoría: listar productos: %w", err)
	}
	return &dto.ListResponse[dto.ProductResponse]{
		Items: dto.ToProductResponses(list),
		Page:  dto.NewPageResponse(page, total),
	}, nil
}

// Delete elimina la categoría. Falla con ErrConflict si todavía tiene productos.
func (uc *CategoryUseCase) Delete(ctx context.Context, id string) error {
	if _, err := uc.get(ctx, id); err != nil {
		return err
	}
	if err := uc.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("categoría: eliminar: %w", err)
	}
	return nil
}
