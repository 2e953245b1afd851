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

// InventoryUseCase inventario por ubicación.
type InventoryUseCase struct {
	repo     repository.InventoryRepository
	products repository.MfgProductRepository
}

// NewInventoryUseCase construye el caso de uso.
func NewInventoryUseCase(repo repository.InventoryRepository, products repository.MfgProductRepository) *InventoryUseCase {
	return &InventoryUseCase{repo: repo, products: products}
}

// List lista por ubicación y código de producto, con el selector de productos.
func (uc *InventoryUseCase) List(ctx context.Context, location string) (*dto.InventoryListResponse, error) {
	list, err := uc.repo.List(ctx, strings.TrimSpace(location))
	if err != nil {
		return nil, fmt.Errorf("fabricación: listar inventario: %w", err)
	}
	products, err := uc.products.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("fabricación: listar productos: %w", err)
	}
	out := &dto.InventoryListResponse{
		Inventories: make([]dto.InventoryResponse, 0, len(list)),
		Products:    toProductResponses(products),
	}
	for _, inv := range list {
		out.Inventories = append(out.Inventories, dto.ToInventoryResponse(inv))
	}
	return out, nil
}

// Create registra cantidad de un producto en una ubicación.
func (uc *InventoryUseCase) Create(ctx context.Context, in dto.CreateInventoryRequest) (*dto.InventoryResponse, error) {
	verr := &domain.ValidationError{}
	var product *mfg.Product
	if in.ProductID == "" {
		verr.Add("product_id", "es obligatorio")
	} else {
		p, err := uc.products.GetByID(ctx, in.ProductID)
		if err != nil {
			return nil, fmt.Errorf("fabricación: obtener producto: %w", err)
		}
		if p == nil {
			verr.Add("product_id", "el producto no existe")
		}
		product = p
	}
	location := strings.TrimSpace(in.Location)
	if location == "" {
		verr.Add("location", "es obligatorio")
	}
	if in.Quantity < 0 {
		verr.Add("quantity", "no puede ser negativa")
	}
	if err := verr.OrNil(); err != nil {
		return nil, err
	}
	inv := &mfg.Inventory{
		ID:          uuid.New().String(),
		ProductID:   product.ID,
		Quantity:    in.Quantity,
		Location:    location,
		UpdatedAt:   time.Now().UTC(),
		ProductCode: product.Code,
		ProductName: product.Name,
	}
	if err := uc.repo.Create(ctx, inv); err != nil {
		return nil, fmt.Errorf("fabricación: crear inventario: %w", err)
	}
	out := dto.ToInventoryResponse(inv)
	return &out, nil
}
