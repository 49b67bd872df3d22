package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/shop-admin-api/pkg/config"
)

func TestLoad_PoliticaDeStockPorDefecto(t *testing.T) {
	t.Setenv("APP_ENV", "development")
	t.Setenv("STOCK_ON_INSUFFICIENT", "")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, config.StockPolicyClamp, cfg.Stock.OnInsufficient)
}

func TestLoad_PoliticaDeStockInvalida(t *testing.T) {
	t.Setenv("APP_ENV", "development")
	t.Setenv("STOCK_ON_INSUFFICIENT", "ignore")

	_, err := config.Load()
	assert.Error(t, err, "una política desconocida debe rechazarse al arrancar")
}

func TestLoad_PoliticaReject(t *testing.T) {
	t.Setenv("APP_ENV", "development")
	t.Setenv("STOCK_ON_INSUFFICIENT", "reject")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, config.StockPolicyReject, cfg.Stock.OnInsufficient)
}

func TestLoad_JWTSecretObligatorioEnProduccion(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("JWT_SECRET", "")

	_, err := config.Load()
	assert.Error(t, err, "producción sin JWT_SECRET debe fallar")
}

func TestLoad_SecretDeDesarrolloFueraDeProduccion(t *testing.T) {
	t.Setenv("APP_ENV", "development")
	t.Setenv("JWT_SECRET", "")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.NotEmpty(t, cfg.JWT.Secret, "fuera de producción se usa un secret de desarrollo")
}

func TestDBConfig_ConnectionString(t *testing.T) {
	db := config.DBConfig{
		Host: "localhost", Port: 5432,
		User: "postgres", Password: "p@ss:word",
		DBName: "shop_admin", SSLMode: "disable",
	}
	dsn := db.ConnectionString()
	assert.Contains(t, dsn, "postgres://")
	assert.Contains(t, dsn, "p%40ss%3Aword", "la contraseña debe ir URL-encoded")

	db.DatabaseURL = "postgresql://otro/dsn"
	assert.Equal(t, "postgresql://otro/dsn", db.ConnectionString(),
		"DATABASE_URL tiene prioridad sobre los campos sueltos")
}
