package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/shop-admin-api/internal/application/dto"
	"github.com/jhoicas/shop-admin-api/internal/domain"
	"github.com/jhoicas/shop-admin-api/internal/domain/entity"
	"github.com/jhoicas/shop-admin-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

// RegionUseCase casos de uso CRUD para regiones de entrega.
type RegionUseCase struct {
	repo repository.RegionRepository
}

// NewRegionUseCase construye el caso de uso.
func NewRegionUseCase(repo repository.RegionRepository) *RegionUseCase {
	return &RegionUseCase{repo: repo}
}

// Create crea una región con su tarifa de envío.
func (uc *RegionUseCase) Create(ctx context.Context, in dto.CreateRegionRequest) (*dto.RegionResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.DeliveryFee.LessThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	region := &entity.Region{
		ID:          uuid.New().String(),
		Name:        in.Name,
		DeliveryFee: in.DeliveryFee,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(ctx, region); err != nil {
		return nil, err
	}
	return toRegionResponse(region), nil
}

// GetByID obtiene una región por ID.
func (uc *RegionUseCase) GetByID(ctx context.Context, id string) (*dto.RegionResponse, error) {
	region, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if region == nil {
		return nil, nil
	}
	return toRegionResponse(region), nil
}

// Update actualiza nombre o tarifa.
func (uc *RegionUseCase) Update(ctx context.Context, id string, in dto.UpdateRegionRequest) (*dto.RegionResponse, error) {
	region, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if region == nil {
		return nil, nil
	}
	if in.Name != nil {
		if *in.Name == "" {
			return nil, domain.ErrInvalidInput
		}
		region.Name = *in.Name
	}
	if in.DeliveryFee != nil {
		if in.DeliveryFee.LessThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
		region.DeliveryFee = *in.DeliveryFee
	}
	region.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, region); err != nil {
		return nil, err
	}
	return toRegionResponse(region), nil
}

// List lista todas las regiones.
func (uc *RegionUseCase) List(ctx context.Context) ([]dto.RegionResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.RegionResponse, 0, len(list))
	for _, r := range list {
		items = append(items, *toRegionResponse(r))
	}
	return items, nil
}

// Delete elimina una región. Con pedidos o clientes asociados el repositorio
// devuelve ErrConflict (FK).
func (uc *RegionUseCase) Delete(ctx context.Context, id string) error {
	return uc.repo.Delete(ctx, id)
}

func toRegionResponse(r *entity.Region) *dto.RegionResponse {
	if r == nil {
		return nil
	}
	return &dto.RegionResponse{
		ID:          r.ID,
		Name:        r.Name,
		DeliveryFee: r.DeliveryFee,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}
