package entity

import "time"

// Category representa una categoría de productos de la tienda.
type Category struct {
	ID        string
	Name      string
	Position  int // orden de presentación en el catálogo
	CreatedAt time.Time
	UpdatedAt time.Time
}
