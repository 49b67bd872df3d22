package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jhoicas/shop-admin-api/internal/application/auth"
	"github.com/jhoicas/shop-admin-api/internal/application/orders"
	"github.com/jhoicas/shop-admin-api/internal/application/usecase"
	"github.com/jhoicas/shop-admin-api/internal/application/warehouse"
	"github.com/jhoicas/shop-admin-api/internal/infrastructure/postgres"
	"github.com/jhoicas/shop-admin-api/internal/infrastructure/telegram"
	httpRouter "github.com/jhoicas/shop-admin-api/internal/interfaces/http"
	"github.com/jhoicas/shop-admin-api/pkg/config"
	"github.com/jhoicas/shop-admin-api/pkg/logger"
	"github.com/pressly/goose/v3"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(cfg.App.Env, cfg.App.LogLevel)
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	if err := runMigrations(cfg); err != nil {
		log.Fatal().Err(err).Msg("migraciones")
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	adminRepo := postgres.NewAdminRepository(pool)
	categoryRepo := postgres.NewCategoryRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	regionRepo := postgres.NewRegionRepository(pool)
	customerRepo := postgres.NewCustomerRepository(pool)
	orderRepo := postgres.NewOrderRepository(pool)
	itemRepo := postgres.NewStockItemRepository(pool)
	movRepo := postgres.NewStockMovementRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	// Notificador de pedidos: deshabilitado si no hay token de bot.
	var notifier orders.Notifier
	if cfg.Telegram.BotToken != "" {
		tg, err := telegram.New(cfg.Telegram.BotToken, cfg.Telegram.AdminChatID, log)
		if err != nil {
			log.Error().Err(err).Msg("iniciar bot de Telegram, notificaciones deshabilitadas")
		} else {
			notifier = tg
		}
	}

	authUC := auth.NewAuthUseCase(adminRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	categoryUC := usecase.NewCategoryUseCase(categoryRepo)
	productUC := usecase.NewProductUseCase(productRepo, categoryRepo)
	regionUC := usecase.NewRegionUseCase(regionRepo)
	customerUC := usecase.NewCustomerUseCase(customerRepo, regionRepo)
	orderUC := orders.NewOrderUseCase(orderRepo, productRepo, regionRepo, customerRepo, notifier)
	warehouseUC := warehouse.NewUseCase(txRunner, itemRepo, movRepo, cfg.Stock.OnInsufficient)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	if cfg.Metrics.Enabled {
		app.Use(httpRouter.MetricsMiddleware())
		app.Get("/metrics", httpRouter.MetricsHandler())
	}

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Shop Admin API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		CategoryUC:  categoryUC,
		ProductUC:   productUC,
		RegionUC:    regionUC,
		CustomerUC:  customerUC,
		OrderUC:     orderUC,
		WarehouseUC: warehouseUC,
		JWTSecret:   cfg.JWT.Secret,
		AppEnv:      cfg.App.Env,
		Log:         log,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}

// runMigrations aplica las migraciones de ./migrations con goose sobre el
// driver database/sql de pgx antes de abrir el pool de la aplicación.
func runMigrations(cfg *config.Config) error {
	db, err := goose.OpenDBWithDriver("pgx", cfg.DB.ConnectionString())
	if err != nil {
		return err
	}
	defer db.Close()

	return goose.Up(db, "migrations")
}
