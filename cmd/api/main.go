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
	"github.com/jhoicas/Produccion-api/internal/application/auth"
	"github.com/jhoicas/Produccion-api/internal/application/inventory"
	"github.com/jhoicas/Produccion-api/internal/application/production"
	"github.com/jhoicas/Produccion-api/internal/application/report"
	"github.com/jhoicas/Produccion-api/internal/domain/repository"
	"github.com/jhoicas/Produccion-api/internal/infrastructure/excel"
	"github.com/jhoicas/Produccion-api/internal/infrastructure/memory"
	infrapdf "github.com/jhoicas/Produccion-api/internal/infrastructure/pdf"
	"github.com/jhoicas/Produccion-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/Produccion-api/internal/interfaces/http"
	"github.com/jhoicas/Produccion-api/pkg/config"
	"github.com/jhoicas/Produccion-api/pkg/logger"
)

// repos puertos de persistencia resueltos según STORAGE_DRIVER.
type repos struct {
	materials repository.MaterialRepository
	products  repository.ProductRepository
	txs       repository.TransactionRepository
	logs      repository.ProductionLogRepository
	users     repository.UserRepository
	txRunner  inventory.TxRunner
	close     func()
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Service: cfg.App.Name,
		Env:     cfg.App.Env,
		Level:   "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("storage", cfg.Storage.Driver).
		Msg("iniciando aplicación")

	ctx := context.Background()
	r, err := buildRepos(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("inicializar almacenamiento")
	}
	defer r.close()

	ledgerUC := inventory.NewLedgerUseCase(r.txRunner, r.materials, r.txs)
	engineUC := production.NewEngineUseCase(r.txRunner, r.products, r.materials, r.logs)
	reportUC := report.NewReportUseCase(r.materials, r.txs, infrapdf.NewMarotoReportGenerator(), excel.NewExporter())
	authUC := auth.NewAuthUseCase(r.users, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/swagger
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "swagger",
		Title:    "Produccion API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		LedgerUC:  ledgerUC,
		EngineUC:  engineUC,
		ReportUC:  reportUC,
		AuthUC:    authUC,
		JWTSecret: cfg.JWT.Secret,
	})

	httpLog := log.Component("http")
	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			httpLog.Error().Err(err).Msg("servidor HTTP finalizado")
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

// buildRepos arma los repositorios según el driver configurado. El modo memory
// no requiere servicios externos y es el driver por defecto.
func buildRepos(ctx context.Context, cfg *config.Config) (*repos, error) {
	if cfg.Storage.Driver == "postgres" {
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			return nil, err
		}
		return &repos{
			materials: postgres.NewMaterialRepository(pool),
			products:  postgres.NewProductRepository(pool),
			txs:       postgres.NewTransactionRepository(pool),
			logs:      postgres.NewProductionLogRepository(pool),
			users:     postgres.NewUserRepository(pool),
			txRunner:  postgres.NewTxRunner(pool),
			close:     pool.Close,
		}, nil
	}

	store := memory.NewStore()
	return &repos{
		materials: store.Materials(),
		products:  store.Products(),
		txs:       store.Transactions(),
		logs:      store.ProductionLogs(),
		users:     store.Users(),
		txRunner:  memory.NewTxRunner(store),
		close:     func() {},
	}, nil
}
