package entity

import "time"

// Customer representa un cliente de la tienda (creado desde la mini-app de Telegram).
type Customer struct {
	ID         string
	TelegramID int64 // chat id de Telegram, único
	Name       string
	Phone      string
	RegionID   string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
