package warehouse

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/shop-admin-api/internal/application/dto"
	"github.com/jhoicas/shop-admin-api/internal/domain"
	"github.com/jhoicas/shop-admin-api/internal/domain/entity"
	"github.com/jhoicas/shop-admin-api/internal/domain/repository"
	"github.com/jhoicas/shop-admin-api/pkg/config"
	"github.com/shopspring/decimal"
)

// UseCase gestiona el almacén: CRUD de insumos y registro transaccional de
// movimientos IN/OUT con bloqueo de fila (SELECT FOR UPDATE) y Commit/Rollback.
type UseCase struct {
	txRunner TxRunner
	itemRepo repository.StockItemRepository
	movRepo  repository.StockMovementRepository
	policy   string // config.StockPolicyClamp | config.StockPolicyReject
}

// NewUseCase construye el caso de uso del almacén.
func NewUseCase(
	txRunner TxRunner,
	itemRepo repository.StockItemRepository,
	movRepo repository.StockMovementRepository,
	policy string,
) *UseCase {
	if policy == "" {
		policy = config.StockPolicyClamp
	}
	return &UseCase{txRunner: txRunner, itemRepo: itemRepo, movRepo: movRepo, policy: policy}
}

// ApplyMovement registra un movimiento y actualiza la cantidad del insumo en una
// sola transacción. Entradas suman; salidas restan con la política configurada:
// clamp deja la cantidad en cero si la salida excede el stock, reject la rechaza
// con ErrInsufficientStock. El movimiento guarda siempre la magnitud solicitada.
func (uc *UseCase) ApplyMovement(ctx context.Context, in dto.ApplyMovementRequest) (*dto.MovementResponse, error) {
	if in.ItemID == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Type != entity.MovementTypeIN && in.Type != entity.MovementTypeOUT {
		return nil, domain.ErrInvalidInput
	}
	if !in.Amount.GreaterThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	if in.Price != nil && in.Price.LessThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now()
	mov := &entity.StockMovement{
		ID:        uuid.New().String(),
		ItemID:    in.ItemID,
		Type:      in.Type,
		Amount:    in.Amount,
		Price:     in.Price,
		Note:      in.Note,
		CreatedAt: now,
	}

	// Transacción: bloqueo de la fila del insumo, actualización de cantidad y
	// alta del movimiento. Cualquier fallo revierte ambas escrituras.
	err := uc.txRunner.Run(ctx, func(
		itemRepo repository.StockItemRepository,
		movRepo repository.StockMovementRepository,
	) error {
		item, err := itemRepo.GetForUpdate(ctx, in.ItemID)
		if err != nil {
			return err
		}
		if item == nil {
			return domain.ErrNotFound
		}

		switch in.Type {
		case entity.MovementTypeIN:
			item.Current = item.Current.Add(in.Amount)
		case entity.MovementTypeOUT:
			if item.Current.LessThan(in.Amount) && uc.policy == config.StockPolicyReject {
				return domain.ErrInsufficientStock
			}
			item.Current = item.Current.Sub(in.Amount)
			if item.Current.LessThan(decimal.Zero) {
				item.Current = decimal.Zero
			}
		}
		item.UpdatedAt = now
		if err := itemRepo.Update(ctx, item); err != nil {
			return err
		}
		return movRepo.Create(ctx, mov)
	})
	if err != nil {
		return nil, err
	}
	return toMovementResponse(mov), nil
}

// ListMovements devuelve el historial del más reciente al más antiguo.
// itemID vacío lista los movimientos de todos los insumos.
func (uc *UseCase) ListMovements(ctx context.Context, itemID string, limit, offset int) (*dto.MovementListResponse, error) {
	list, err := uc.movRepo.List(ctx, itemID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.MovementResponse, 0, len(list))
	for _, m := range list {
		items = append(items, *toMovementResponse(m))
	}
	return &dto.MovementListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// CreateItem crea un insumo nuevo. Current puede iniciar mayor a cero
// (inventario inicial sin movimiento asociado).
func (uc *UseCase) CreateItem(ctx context.Context, in dto.CreateStockItemRequest) (*dto.StockItemResponse, error) {
	if in.Name == "" || in.Unit == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Current.LessThan(decimal.Zero) || in.MinRequired.LessThan(decimal.Zero) || in.Price.LessThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	item := &entity.StockItem{
		ID:          uuid.New().String(),
		Name:        in.Name,
		Current:     in.Current,
		Unit:        in.Unit,
		MinRequired: in.MinRequired,
		Price:       in.Price,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.itemRepo.Create(ctx, item); err != nil {
		return nil, err
	}
	return toStockItemResponse(item), nil
}

// GetItem obtiene un insumo por ID.
func (uc *UseCase) GetItem(ctx context.Context, id string) (*dto.StockItemResponse, error) {
	item, err := uc.itemRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	return toStockItemResponse(item), nil
}

// UpdateItem edita nombre, unidad, umbral o precio. La cantidad actual
// solo cambia vía movimientos.
func (uc *UseCase) UpdateItem(ctx context.Context, id string, in dto.UpdateStockItemRequest) (*dto.StockItemResponse, error) {
	item, err := uc.itemRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		if *in.Name == "" {
			return nil, domain.ErrInvalidInput
		}
		item.Name = *in.Name
	}
	if in.Unit != nil {
		if *in.Unit == "" {
			return nil, domain.ErrInvalidInput
		}
		item.Unit = *in.Unit
	}
	if in.MinRequired != nil {
		if in.MinRequired.LessThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
		item.MinRequired = *in.MinRequired
	}
	if in.Price != nil {
		if in.Price.LessThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
		item.Price = *in.Price
	}
	item.UpdatedAt = time.Now()
	if err := uc.itemRepo.Update(ctx, item); err != nil {
		return nil, err
	}
	return toStockItemResponse(item), nil
}

// ListItems lista insumos con paginación.
func (uc *UseCase) ListItems(ctx context.Context, limit, offset int) (*dto.StockItemListResponse, error) {
	list, err := uc.itemRepo.List(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.StockItemResponse, 0, len(list))
	for _, it := range list {
		items = append(items, *toStockItemResponse(it))
	}
	return &dto.StockItemListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// ListLowStock lista los insumos en o por debajo de su umbral de reorden.
func (uc *UseCase) ListLowStock(ctx context.Context) ([]dto.StockItemResponse, error) {
	list, err := uc.itemRepo.ListLowStock(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.StockItemResponse, 0, len(list))
	for _, it := range list {
		items = append(items, *toStockItemResponse(it))
	}
	return items, nil
}

// DeleteItem elimina un insumo. Si tiene movimientos el repositorio devuelve
// ErrConflict (FK protege el historial).
func (uc *UseCase) DeleteItem(ctx context.Context, id string) error {
	item, err := uc.itemRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if item == nil {
		return domain.ErrNotFound
	}
	return uc.itemRepo.Delete(ctx, id)
}

func toStockItemResponse(s *entity.StockItem) *dto.StockItemResponse {
	if s == nil {
		return nil
	}
	return &dto.StockItemResponse{
		ID:          s.ID,
		Name:        s.Name,
		Current:     s.Current,
		Unit:        s.Unit,
		MinRequired: s.MinRequired,
		Price:       s.Price,
		LowStock:    s.IsLowStock(),
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}

func toMovementResponse(m *entity.StockMovement) *dto.MovementResponse {
	if m == nil {
		return nil
	}
	return &dto.MovementResponse{
		ID:        m.ID,
		ItemID:    m.ItemID,
		Type:      m.Type,
		Amount:    m.Amount,
		Price:     m.Price,
		Note:      m.Note,
		CreatedAt: m.CreatedAt,
	}
}
