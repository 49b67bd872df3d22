package repository

import (
	"context"

	"github.com/jhoicas/shop-admin-api/internal/domain/entity"
)

// OrderRepository define el puerto de persistencia para Order y sus líneas.
type OrderRepository interface {
	// Create persiste el pedido y sus items. Debe usarse con repos atados a una
	// transacción cuando forma parte de CreateOrderUseCase.
	Create(ctx context.Context, order *entity.Order) error
	// GetByID devuelve el pedido con sus items cargados.
	GetByID(ctx context.Context, id string) (*entity.Order, error)
	UpdateStatus(ctx context.Context, id, status string) error
	// List filtra por estado si status no está vacío.
	List(ctx context.Context, status string, limit, offset int) ([]*entity.Order, error)
}

// RegionRepository define el puerto de persistencia para Region (DIP).
type RegionRepository interface {
	Create(ctx context.Context, region *entity.Region) error
	GetByID(ctx context.Context, id string) (*entity.Region, error)
	Update(ctx context.Context, region *entity.Region) error
	List(ctx context.Context) ([]*entity.Region, error)
	Delete(ctx context.Context, id string) error
}

// CustomerRepository define el puerto de persistencia para Customer (DIP).
type CustomerRepository interface {
	Create(ctx context.Context, customer *entity.Customer) error
	GetByID(ctx context.Context, id string) (*entity.Customer, error)
	GetByTelegramID(ctx context.Context, telegramID int64) (*entity.Customer, error)
	Update(ctx context.Context, customer *entity.Customer) error
	List(ctx context.Context, limit, offset int) ([]*entity.Customer, error)
}
