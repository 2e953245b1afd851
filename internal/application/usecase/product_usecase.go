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

// ProductUseCase casos de uso CRUD para productos del catálogo.
type ProductUseCase struct {
	repo       repository.ProductRepository
	categories repository.CategoryRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository, categories repository.CategoryRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo, categories: categories}
}

// Create crea un nuevo producto. La categoría debe existir.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	verr := &domain.ValidationError{}
	name := strings.TrimSpace(in.Name)
	if name == "" {
		verr.Add("name", "es obligatorio")
	}
	if in.Price.IsNegative() {
		verr.Add("price", "no puede ser negativo")
	}
	if in.Stock < 0 {
		verr.Add("stock", "no puede ser negativo")
	}
	if err := uc.checkCategory(ctx, in.CategoryID, verr); err != nil {
		return nil, err
	}
	if err := verr.OrNil(); err != nil {
		return nil, err
	}
	existing, err := uc.repo.GetByName(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("producto: buscar por nombre: %w", err)
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now().UTC()
	product := &entity.Product{
		ID:          uuid.New().String(),
		Name:        name,
		Description: in.Description,
		CategoryID:  in.CategoryID,
		Price:       in.Price,
		Stock:       in.Stock,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(ctx, product); err != nil {
		return nil, fmt.Errorf("producto: crear: %w", err)
	}
	out := dto.ToProductResponse(product)
	return &out, nil
}

func (uc *ProductUseCase) checkCategory(ctx context.Context, id string, verr *domain.ValidationError) error {
	if id == "" {
		verr.Add("category_id", "es obligatorio")
		return nil
	}
	c, err := uc.categories.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("producto: obtener categoría: %w", err)
	}
	if c == nil {
		verr.Add("category_id", "la categoría no existe")
	}
	return nil
}

// GetByID obtiene un producto por ID.
func (uc *ProductUseCase) GetByID(ctx context.Context, id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("producto: obtener: %w", err)
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	out := dto.ToProductResponse(product)
	return &out, nil
}

// Update actualiza los campos recibidos. Un cambio de precio no afecta a ventas ya registradas.
func (uc *ProductUseCase) Update(ctx context.Context, id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("producto: obtener: %w", err)
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	verr := &domain.ValidationError{}
	if in.Name != nil {
		product.Name = strings.TrimSpace(*in.Name)
		if product.Name == "" {
			verr.Add("name", "es obligatorio")
		}
	}
	if in.Description != nil {
		product.Description = *in.Description
	}
	if in.CategoryID != nil {
		if err := uc.checkCategory(ctx, *in.CategoryID, verr); err != nil {
			return nil, err
		}
		product.CategoryID = *in.CategoryID
	}
	if in.Price != nil {
		if in.Price.IsNegative() {
			verr.Add("price", "no puede ser negativo")
		}
		product.Price = *in.Price
	}
	if in.Stock != nil {
		if *in.Stock < 0 {
			verr.Add("stock", "no puede ser negativo")
		}
		product.Stock = *in.Stock
	}
	if err := verr.OrNil(); err != nil {
		return nil, err
	}
	product.UpdatedAt = time.Now().UTC()
	if err := uc.repo.Update(ctx, product); err != nil {
		return nil, fmt.Errorf("producto: actualizar: %w", err)
	}
	out := dto.ToProductResponse(product)
	return &out, nil
}

// List lista productos por nombre con paginación; categoryID vacío no filtra.
func (uc *ProductUseCase) List(ctx context.Context, categoryID string, page dto.PageRequest) (*dto.ListResponse[dto.ProductResponse], error) {
	page.DefaultPage()
	filter := repository.ProductFilter{CategoryID: categoryID}
	total, err := uc.repo.Count(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("producto: contar: %w", err)
	}
	list, err := uc.repo.List(ctx, filter, repository.Page{Limit: page.Limit(), Offset: page.Offset()})
	if err != nil {
		return nil, fmt.Errorf("producto: listar: %w", err)
	}
	return &dto.ListResponse[dto.ProductResponse]{
		Items: dto.ToProductResponses(list),
		Page:  dto.NewPageResponse(page, total),
	}, nil
}

// Delete elimina un producto por ID. Falla con ErrConflict si tiene ventas.
func (uc *ProductUseCase) Delete(ctx context.Context, id string) error {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("producto: obtener: %w", err)
	}
	if product == nil {
		return domain.ErrNotFound
	}
	if err := uc.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("producto: eliminar: %w", err)
	}
	return nil
}
