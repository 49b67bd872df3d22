package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/shop-admin-api/internal/application/dto"
	"github.com/jhoicas/shop-admin-api/internal/application/usecase"
)

// RegionHandler maneja las peticiones HTTP para Region (protegido).
type RegionHandler struct {
	uc *usecase.RegionUseCase
}

// NewRegionHandler construye el handler.
func NewRegionHandler(uc *usecase.RegionUseCase) *RegionHandler {
	return &RegionHandler{uc: uc}
}

// Create godoc
// @Summary      Crear región de entrega
// @Tags         regions
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateRegionRequest  true  "name, delivery_fee"
// @Success      201   {object}  dto.RegionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/regions [post]
func (h *RegionHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateRegionRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar regiones
// @Tags         regions
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.RegionResponse
// @Router       /api/regions [get]
func (h *RegionHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar región
// @Tags         regions
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la región"
// @Param        body  body  dto.UpdateRegionRequest  true  "Datos a actualizar"
// @Success      200   {object}  dto.RegionResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/regions/{id} [put]
func (h *RegionHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateRegionRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.Context(), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "región no encontrada"})
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar región
// @Tags         regions
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la región"
// @Success      200  {object}  map[string]string
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/regions/{id} [delete]
func (h *RegionHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "región eliminada"})
}
