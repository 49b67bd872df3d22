package entity

import "time"

// Roles válidos en los tokens de sesión.
const (
	RoleAdmin = "admin"
)

// Admin representa una cuenta del panel de administración.
type Admin struct {
	ID           string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Name         string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
