package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// StockItem representa un insumo del almacén con su cantidad actual.
// Current nunca baja de cero: las salidas se ajustan o rechazan según la política configurada.
type StockItem struct {
	ID          string
	Name        string
	Current     decimal.Decimal // cantidad disponible
	Unit        string          // kg, dona, l, ...
	MinRequired decimal.Decimal // umbral de reorden
	Price       decimal.Decimal // precio unitario informativo
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// IsLowStock indica si el insumo está en o por debajo de su umbral de reorden.
func (s *StockItem) IsLowStock() bool {
	return s.Current.LessThanOrEqual(s.MinRequired)
}
