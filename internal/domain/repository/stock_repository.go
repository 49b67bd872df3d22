package repository

import (
	"context"

	"github.com/jhoicas/shop-admin-api/internal/domain/entity"
)

// StockItemRepository define el puerto de persistencia para StockItem (DIP).
type StockItemRepository interface {
	Create(ctx context.Context, item *entity.StockItem) error
	GetByID(ctx context.Context, id string) (*entity.StockItem, error)
	// GetForUpdate bloquea la fila (SELECT FOR UPDATE); usar solo dentro de una transacción.
	GetForUpdate(ctx context.Context, id string) (*entity.StockItem, error)
	Update(ctx context.Context, item *entity.StockItem) error
	List(ctx context.Context, limit, offset int) ([]*entity.StockItem, error)
	ListLowStock(ctx context.Context) ([]*entity.StockItem, error)
	Delete(ctx context.Context, id string) error
}

// StockMovementRepository define el puerto para el historial de movimientos (append-only).
type StockMovementRepository interface {
	Create(ctx context.Context, mov *entity.StockMovement) error
	// List devuelve movimientos ordenados del más reciente al más antiguo.
	// itemID vacío lista todos los insumos.
	List(ctx context.Context, itemID string, limit, offset int) ([]*entity.StockMovement, error)
}
