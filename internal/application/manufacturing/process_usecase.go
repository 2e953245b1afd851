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

// ProcessUseCase procesos de fabricación.
type ProcessUseCase struct {
	repo repository.ProcessRepository
}

// NewProcessUseCase construye el caso de uso.
func NewProcessUseCase(repo repository.ProcessRepository) *ProcessUseCase {
	return &ProcessUseCase{repo: repo}
}

// List lista por nombre.
func (uc *ProcessUseCase) List(ctx context.Context) ([]dto.ProcessResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("fabricación: listar procesos: %w", err)
	}
	return toProcessResponses(list), nil
}

func toProcessResponses(list []*mfg.Process) []dto.ProcessResponse {
	out := make([]dto.ProcessResponse, 0, len(list))
	for _, p := range list {
		out = append(out, dto.ToProcessResponse(p))
	}
	return out
}

// Create crea un proceso.
func (uc *ProcessUseCase) Create(ctx context.Context, in dto.CreateProcessRequest) (*dto.ProcessResponse, error) {
	verr := &domain.ValidationError{}
	name := strings.TrimSpace(in.Name)
	if name == "" {
		verr.Add("name", "es obligatorio")
	}
	if in.StandardTime < 0 {
		verr.Add("standard_time", "no puede ser negativo")
	}
	if err := verr.OrNil(); err != nil {
		return nil, err
	}
	p := &mfg.Process{
		ID:           uuid.New().String(),
		Name:         name,
		Description:  in.Description,
		StandardTime: in.StandardTime,
		CreatedAt:    time.Now().UTC(),
	}
	if err := uc.repo.Create(ctx, p); err != nil {
		return nil, fmt.Errorf("fabricación: crear proceso: %w", err)
	}
	out := dto.ToProcessResponse(p)
	return &out, nil
}

// Delete elimina el proceso; ErrConflict si lo usan órdenes.
func (uc *ProcessUseCase) Delete(ctx context.Context, id string) error {
	p, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("fabricación: obtener proceso: %w", err)
	}
	if p == nil {
		return domain.ErrNotFound
	}
	if err := uc.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("fabricación: eliminar proceso: %w", err)
	}
	return nil
}
