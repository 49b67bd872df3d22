package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/shop-admin-api/internal/application/auth"
	"github.com/jhoicas/shop-admin-api/internal/application/orders"
	"github.com/jhoicas/shop-admin-api/internal/application/usecase"
	"github.com/jhoicas/shop-admin-api/internal/application/warehouse"
	"github.com/jhoicas/shop-admin-api/internal/domain/entity"
	"github.com/jhoicas/shop-admin-api/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	CategoryUC  *usecase.CategoryUseCase
	ProductUC   *usecase.ProductUseCase
	RegionUC    *usecase.RegionUseCase
	CustomerUC  *usecase.CustomerUseCase
	OrderUC     *orders.OrderUseCase
	WarehouseUC *warehouse.UseCase
	JWTSecret   string
	AppEnv      string
	Log         *logger.Logger
}

// Router registra las rutas de la API. Todo el panel vive detrás de
// AuthMiddleware + RequireRole("admin"); solo el login es público.
func Router(app *fiber.App, deps RouterDeps) {
	configureErrorResponses(deps.AppEnv, deps.Log)

	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token con rol admin)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret), RequireRole(entity.RoleAdmin))

	protected.Get("/auth/me", authHandler.Me)

	// Categorías (protegido)
	categories := protected.Group("/categories")
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	categories.Post("/", categoryHandler.Create)
	categories.Get("/", categoryHandler.List)
	categories.Put("/:id", categoryHandler.Update)
	categories.Delete("/:id", categoryHandler.Delete)

	// Productos (protegido)
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)

	// Regiones de entrega (protegido)
	regions := protected.Group("/regions")
	regionHandler := NewRegionHandler(deps.RegionUC)
	regions.Post("/", regionHandler.Create)
	regions.Get("/", regionHandler.List)
	regions.Put("/:id", regionHandler.Update)
	regions.Delete("/:id", regionHandler.Delete)

	// Clientes (protegido)
	customers := protected.Group("/customers")
	customerHandler := NewCustomerHandler(deps.CustomerUC)
	customers.Get("/", customerHandler.List)
	customers.Get("/:id", customerHandler.GetByID)
	customers.Put("/:id", customerHandler.Update)

	// Pedidos (protegido)
	ordersGroup := protected.Group("/orders")
	orderHandler := NewOrderHandler(deps.OrderUC)
	ordersGroup.Post("/", orderHandler.Create)
	ordersGroup.Get("/", orderHandler.List)
	ordersGroup.Get("/:id", orderHandler.GetByID)
	ordersGroup.Patch("/:id/status", orderHandler.UpdateStatus)

	// Almacén: insumos y movimientos (protegido)
	wh := protected.Group("/warehouse")
	warehouseHandler := NewWarehouseHandler(deps.WarehouseUC)
	wh.Post("/items", warehouseHandler.CreateItem)
	wh.Get("/items", warehouseHandler.ListItems)
	wh.Get("/items/low-stock", warehouseHandler.ListLowStock)
	wh.Get("/items/:id", warehouseHandler.GetItem)
	wh.Put("/items/:id", warehouseHandler.UpdateItem)
	wh.Delete("/items/:id", warehouseHandler.DeleteItem)
	wh.Post("/movements", warehouseHandler.ApplyMovement)
	wh.Get("/movements", warehouseHandler.ListMovements)
}
