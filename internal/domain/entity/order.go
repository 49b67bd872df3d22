package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados válidos de un pedido.
const (
	OrderStatusNew       = "new"
	OrderStatusConfirmed = "confirmed"
	OrderStatusDelivered = "delivered"
	OrderStatusCancelled = "cancelled"
)

// ValidOrderStatus indica si s es un estado de pedido conocido.
func ValidOrderStatus(s string) bool {
	switch s {
	case OrderStatusNew, OrderStatusConfirmed, OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}

// Order representa un pedido de la tienda. Total = Subtotal + DeliveryFee,
// siempre calculado en el servidor a partir de los precios vigentes.
type Order struct {
	ID          string
	CustomerID  string
	RegionID    string
	Status      string
	Subtotal    decimal.Decimal
	DeliveryFee decimal.Decimal
	Total       decimal.Decimal
	Comment     string
	Items       []OrderItem
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// OrderItem representa una línea del pedido. Name y Price se desnormalizan
// al momento de crear el pedido para que cambios posteriores del catálogo no lo alteren.
type OrderItem struct {
	ID        string
	OrderID   string
	ProductID string
	Name      string
	Price     decimal.Decimal
	Quantity  decimal.Decimal
	LineTotal decimal.Decimal
}
