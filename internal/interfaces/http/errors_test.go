package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/shop-admin-api/internal/application/dto"
	"github.com/jhoicas/shop-admin-api/pkg/logger"
)

// errorApp monta una ruta que siempre falla con err para observar la traducción.
func errorApp(err error) *fiber.App {
	app := fiber.New()
	app.Get("/boom", func(c *fiber.Ctx) error {
		return respondError(c, err)
	})
	return app
}

func internalBody(t *testing.T, app *fiber.App) dto.ErrorResponse {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/boom", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusInternalServerError, resp.StatusCode)

	var body dto.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body
}

// En producción el 500 no debe filtrar el detalle del error: los fallos de
// persistencia pueden llevar DSNs, SQL o credenciales.
func TestRespondError_ProduccionOcultaDetalle(t *testing.T) {
	configureErrorResponses("production", logger.New("production", "error"))
	t.Cleanup(func() { configureErrorResponses("development", nil) })

	leak := "pq: password authentication failed for user shop_admin"
	body := internalBody(t, errorApp(errors.New(leak)))

	assert.Equal(t, "INTERNAL", body.Code)
	assert.Equal(t, "error interno", body.Message)
	assert.NotContains(t, body.Message, "password")
}

// Fuera de producción el detalle sí se incluye para facilitar el desarrollo.
func TestRespondError_DesarrolloExponeDetalle(t *testing.T) {
	configureErrorResponses("development", nil)

	body := internalBody(t, errorApp(errors.New("scan stock item: columna inexistente")))

	assert.Equal(t, "INTERNAL", body.Code)
	assert.Contains(t, body.Message, "columna inexistente")
}

// Sin configurar (estado por defecto), el detalle queda oculto.
func TestRespondError_PorDefectoOcultaDetalle(t *testing.T) {
	configureErrorResponses("development", nil)
	exposeErrDetail = false
	t.Cleanup(func() { configureErrorResponses("development", nil) })

	body := internalBody(t, errorApp(errors.New("detalle sensible")))
	assert.Equal(t, "error interno", body.Message)
}

// pageParams aplica defaults y topes uniformes para todos los listados.
func TestPageParams_DefaultsYTopes(t *testing.T) {
	app := fiber.New()
	app.Get("/list", func(c *fiber.Ctx) error {
		limit, offset := pageParams(c)
		return c.JSON(fiber.Map{"limit": limit, "offset": offset})
	})

	cases := []struct {
		query         string
		limit, offset int
	}{
		{"", 20, 0},
		{"?limit=0&offset=-5", 20, 0},
		{"?limit=500&offset=40", 100, 40},
		{"?limit=15&offset=30", 15, 30},
	}
	for _, tc := range cases {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/list"+tc.query, nil), -1)
		require.NoError(t, err, tc.query)

		var body map[string]int
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		resp.Body.Close()
		assert.Equal(t, tc.limit, body["limit"], tc.query)
		assert.Equal(t, tc.offset, body["offset"], tc.query)
	}
}
