package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Region representa una zona de entrega con su tarifa de envío.
type Region struct {
	ID          string
	Name        string
	DeliveryFee decimal.Decimal
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
