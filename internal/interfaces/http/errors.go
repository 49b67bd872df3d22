package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/shop-admin-api/internal/application/dto"
	"github.com/jhoicas/shop-admin-api/internal/domain"
	"github.com/jhoicas/shop-admin-api/pkg/logger"
)

// Estado del reporte de errores internos. Por defecto el detalle queda oculto;
// Router lo habilita fuera de producción vía configureErrorResponses.
var (
	errLog          *logger.Logger
	exposeErrDetail bool
)

// configureErrorResponses define el logger de errores internos y si el detalle
// (err.Error()) se incluye en el cuerpo del 500. En producción nunca se incluye:
// los errores de persistencia pueden llevar DSNs o SQL.
func configureErrorResponses(env string, log *logger.Logger) {
	exposeErrDetail = env != "production"
	errLog = log
}

// respondError traduce errores de dominio a respuestas HTTP en un solo punto.
// Los rechazos de autorización se colapsan en un 401 genérico sin importar la
// variante interna (token ausente, rol, claim huérfano).
func respondError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrUnauthorized):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "no autorizado"})
	case errors.Is(err, domain.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "acceso denegado"})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos"})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "recurso no encontrado"})
	case errors.Is(err, domain.ErrInsufficientStock):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_STOCK", Message: "stock insuficiente"})
	case errors.Is(err, domain.ErrDuplicate), errors.Is(err, domain.ErrEmailAlreadyExists), errors.Is(err, domain.ErrConflict):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "CONFLICT", Message: "conflicto con el estado actual"})
	default:
		// El error completo siempre va al log; al cliente solo fuera de producción.
		if errLog != nil {
			errLog.Error().Err(err).Str("method", c.Method()).Str("path", c.Path()).Msg("error interno")
		}
		msg := "error interno"
		if exposeErrDetail {
			msg = err.Error()
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: msg})
	}
}
