package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de movimiento de almacén.
const (
	MovementTypeIN  = "IN"  // entrada
	MovementTypeOUT = "OUT" // salida
)

// StockMovement representa un movimiento histórico del almacén (append-only).
// Amount guarda siempre la magnitud solicitada, incluso cuando la salida
// se ajustó a cero por falta de stock.
type StockMovement struct {
	ID        string
	ItemID    string
	Type      string          // IN, OUT
	Amount    decimal.Decimal // magnitud positiva
	Price     *decimal.Decimal // costo de adquisición, solo entradas
	Note      string
	CreatedAt time.Time
}
