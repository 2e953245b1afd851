package usecase

import (
	"context"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/product-management/internal/application/dto"
	"github.com/jhoicas/product-management/internal/domain"
	"github.com/jhoicas/product-management/internal/domain/entity"
	"github.com/jhoicas/product-management/internal/domain/repository"
)

// CustomerUseCase casos de uso CRUD para clientes.
type CustomerUseCase struct {
	repo repository.CustomerRepository
}

// NewCustomerUseCase construye el caso de uso.
func NewCustomerUseCase(repo repository.CustomerRepository) *CustomerUseCase {
	return &CustomerUseCase{repo: repo}
}

func validEmail(s string) bool {
	addr, err := mail.ParseAddress(s)
	return err == nil && addr.Address == s
}

// Create crea un cliente. El email es único.
func (uc *CustomerUseCase) Create(ctx context.Context, in dto.CreateCustomerRequest) (*dto.CustomerResponse, error) {
	verr := &domain.ValidationError{}
	name := strings.TrimSpace(in.Name)
	email := strings.TrimSpace(in.Email)
	if name == "" {
		verr.Add("name", "es obligatorio")
	}
	if !validEmail(email) {
		verr.Add("email", "email inválido")
	}
	if err := verr.OrNil(); err != nil {
		return nil, err
	}
	existing, err := uc.repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("cliente: buscar por email: %w", err)
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now().UTC()
	c := &entity.Customer{
		ID:        uuid.New().String(),
		Name:      name,
		Email:     email,
		Phone:     in.Phone,
		Address:   in.Address,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(ctx, c); err != nil {
		return nil, fmt.Errorf("cliente: crear: %w", err)
	}
	out := dto.ToCustomerResponse(c)
	return &out, nil
}

// GetByID obtiene un cliente por ID.
func (uc *CustomerUseCase) GetByID(ctx context.Context, id string) (*dto.CustomerResponse, error) {
	c, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("cliente: obtener: %w", err)
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	out := dto.ToCustomerResponse(c)
	return &out, nil
}

// Update actualiza los campos recibidos.
func (uc *CustomerUseCase) Update(ctx context.Context, id string, in dto.UpdateCustomerRequest) (*dto.CustomerResponse, error) {
	c, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("cliente: obtener: %w", err)
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	verr := &domain.ValidationError{}
	if in.Name != nil {
		c.Name = strings.TrimSpace(*in.Name)
		if c.Name == "" {
			verr.Add("name", "es obligatorio")
		}
	}
	if in.Email != nil {
		c.Email = strings.TrimSpace(*in.Email)
		if !validEmail(c.Email) {
			verr.Add("email", "email inválido")
		}
	}
	if in.Phone != nil {
		c.Phone = *in.Phone
	}
	if in.Address != nil {
		c.Address = *in.Address
	}
	if err := verr.OrNil(); err != nil {
		return nil, err
	}
	c.UpdatedAt = time.Now().UTC()
	if err := uc.repo.Update(ctx, c); err != nil {
		return nil, fmt.Errorf("cliente: actualizar: %w", err)
	}
	out := dto.ToCustomerResponse(c)
	return &out, nil
}

// List lista clientes por nombre.
func (uc *CustomerUseCase) List(ctx context.Context, page dto.PageRequest) (*dto.ListResponse[dto.CustomerResponse], error) {
	page.DefaultPage()
	total, err := uc.repo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("cliente: contar: %w", err)
	}
	list, err := uc.repo.List(ctx, repository.Page{Limit: page.Limit(), Offset: page.Offset()})
	if err != nil {
		return nil, fmt.Errorf("cliente: listar: %w", err)
	}
	items := make([]dto.CustomerResponse, 0, len(list))
	for _, c := range list {
		items = append(items, dto.ToCustomerResponse(c))
	}
	return &dto.ListResponse[dto.CustomerResponse]{Items: items, Page: dto.NewPageResponse(page, total)}, nil
}

// Delete elimina un cliente. Falla con ErrConflict si tiene ventas.
func (uc *CustomerUseCase) Delete(ctx context.Context, id string) error {
	c, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("cliente: obtener: %w", err)
	}
	if c == nil {
		return domain.ErrNotFound
	}
	if err := uc.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("cliente: eliminar: %w", err)
	}
	return nil
}
