package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto visible en la tienda.
type Product struct {
	ID          string
	CategoryID  string
	Name        string
	Description string
	Price       decimal.Decimal // precio de venta
	ImageURL    string
	Active      bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
