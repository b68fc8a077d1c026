package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Produccion-api/internal/application/auth"
	"github.com/jhoicas/Produccion-api/internal/application/inventory"
	"github.com/jhoicas/Produccion-api/internal/application/production"
	"github.com/jhoicas/Produccion-api/internal/application/report"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	LedgerUC  *inventory.LedgerUseCase
	EngineUC  *production.EngineUseCase
	ReportUC  *report.ReportUseCase
	AuthUC    *auth.AuthUseCase
	JWTSecret string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Materias primas (protegido)
	materials := protected.Group("/materials")
	materialHandler := NewMaterialHandler(deps.LedgerUC)
	materials.Post("/", materialHandler.Create)
	materials.Get("/", materialHandler.List)
	materials.Get("/low-stock", materialHandler.LowStock)
	materials.Get("/:id", materialHandler.Get)
	materials.Post("/:id/stock", materialHandler.AddStock)
	materials.Put("/:id/stock", materialHandler.AdjustStock)
	materials.Patch("/:id/cost", materialHandler.UpdateCost)
	materials.Patch("/:id/name", materialHandler.Rename)
	materials.Delete("/:id", RequireRole("admin", "manager"), materialHandler.Delete)

	// Productos y recetas (protegido)
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.EngineUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.Get)
	products.Patch("/:id/name", productHandler.Rename)
	products.Delete("/:id", RequireRole("admin", "manager"), productHandler.Delete)

	// Motor de producción (protegido)
	prodGroup := protected.Group("/production")
	productionHandler := NewProductionHandler(deps.EngineUC)
	prodGroup.Post("/check", productionHandler.Check)
	prodGroup.Post("/", productionHandler.Produce)
	prodGroup.Get("/logs", productionHandler.Logs)

	// Transacciones (protegido, solo lectura)
	transactions := protected.Group("/transactions")
	transactionHandler := NewTransactionHandler(deps.LedgerUC)
	transactions.Get("/", transactionHandler.List)

	// Reportes (protegido)
	reports := protected.Group("/reports")
	reportHandler := NewReportHandler(deps.ReportUC)
	reports.Get("/inventory.pdf", reportHandler.InventoryPDF)
	reports.Get("/transactions.xlsx", reportHandler.TransactionsXLSX)
}
