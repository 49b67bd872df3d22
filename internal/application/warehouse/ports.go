package warehouse

import (
	"context"

	"github.com/jhoicas/shop-admin-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando repositorios atados a esa tx.
// Garantiza que la actualización del insumo y el alta del movimiento sean atómicas:
// o se persisten ambas o ninguna.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		itemRepo repository.StockItemRepository,
		movRepo repository.StockMovementRepository,
	) error) error
}
