package repository

import (
	"context"

	"github.com/jhoicas/shop-admin-api/internal/domain/entity"
)

// AdminRepository define el puerto de persistencia para Admin (DIP).
// Los métodos Get* devuelven (nil, nil) cuando no hay fila.
type AdminRepository interface {
	Create(ctx context.Context, admin *entity.Admin) error
	GetByID(ctx context.Context, id string) (*entity.Admin, error)
	GetByEmail(ctx context.Context, email string) (*entity.Admin, error)
	Update(ctx context.Context, admin *entity.Admin) error
	List(ctx context.Context, limit, offset int) ([]*entity.Admin, error)
	Delete(ctx context.Context, id string) error
}
