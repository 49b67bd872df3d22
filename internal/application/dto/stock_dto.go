package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateStockItemRequest body para POST /api/warehouse/items.
type CreateStockItemRequest struct {
	Name        string          `json:"name" validate:"required,min=1,max=200"`
	Current     decimal.Decimal `json:"current"`
	Unit        string          `json:"unit" validate:"required"`
	MinRequired decimal.Decimal `json:"min_required"`
	Price       decimal.Decimal `json:"price"`
}

// UpdateStockItemRequest body para PUT /api/warehouse/items/:id (campos opcionales).
// Current no se edita aquí: la cantidad solo cambia vía movimientos.
type UpdateStockItemRequest struct {
	Name        *string          `json:"name,omitempty"`
	Unit        *string          `json:"unit,omitempty"`
	MinRequired *decimal.Decimal `json:"min_required,omitempty"`
	Price       *decimal.Decimal `json:"price,omitempty"`
}

// StockItemResponse salida de un insumo con su indicador de stock bajo.
type StockItemResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Current     decimal.Decimal `json:"current"`
	Unit        string          `json:"unit"`
	MinRequired decimal.Decimal `json:"min_required"`
	Price       decimal.Decimal `json:"price"`
	LowStock    bool            `json:"low_stock"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// StockItemListResponse listado paginado de insumos.
type StockItemListResponse struct {
	Items []StockItemResponse `json:"items"`
	Page  PageResponse        `json:"page"`
}

// ApplyMovementRequest body para POST /api/warehouse/movements.
type ApplyMovementRequest struct {
	ItemID string           `json:"item_id" validate:"required,uuid"`
	Type   string           `json:"type" validate:"required,oneof=IN OUT"`
	Amount decimal.Decimal  `json:"amount"`
	Price  *decimal.Decimal `json:"price,omitempty"`
	Note   string           `json:"note,omitempty"`
}

// MovementResponse salida de un movimiento registrado.
type MovementResponse struct {
	ID        string           `json:"id"`
	ItemID    string           `json:"item_id"`
	Type      string           `json:"type"`
	Amount    decimal.Decimal  `json:"amount"`
	Price     *decimal.Decimal `json:"price,omitempty"`
	Note      string           `json:"note,omitempty"`
	CreatedAt time.Time        `json:"created_at"`
}

// MovementListResponse listado paginado de movimientos (más recientes primero).
type MovementListResponse struct {
	Items []MovementResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}
