package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrAdminNotFound      = errors.New("administrador no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrConflict           = errors.New("conflicto con el estado actual")
	ErrInsufficientStock  = errors.New("stock insuficiente")
)

// ErrStaleClaim marca un token válido cuyo administrador ya no existe.
// Envuelve ErrUnauthorized: hacia afuera sigue siendo un 401 genérico, pero
// logs y tests pueden distinguirlo con errors.Is.
var ErrStaleClaim = fmt.Errorf("claim sin registro: %w", ErrUnauthorized)
