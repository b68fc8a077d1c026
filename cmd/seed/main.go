// seed puebla la base con el inventario de arranque de la dulcería: diez
// materias primas y un producto de ejemplo con su receta. Pensado para
// STORAGE_DRIVER=postgres (el modo memory arranca vacío y se puebla por API).
//
// Uso: go run ./cmd/seed
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/jhoicas/Produccion-api/internal/application/inventory"
	"github.com/jhoicas/Produccion-api/internal/application/production"
	"github.com/jhoicas/Produccion-api/internal/domain/entity"
	"github.com/jhoicas/Produccion-api/internal/infrastructure/postgres"
	"github.com/jhoicas/Produccion-api/pkg/config"
	"github.com/jhoicas/Produccion-api/pkg/logger"
	"github.com/shopspring/decimal"
)

type seedMaterial struct {
	name     string
	stock    string
	unit     string
	minStock string
	cost     string
}

var materials = []seedMaterial{
	{"Maida (Flour)", "50", "kg", "5", "50"},
	{"Rice Flour", "25", "kg", "3", "80"},
	{"Sugar", "40", "kg", "5", "60"},
	{"Ghee", "8", "kg", "1", "800"},
	{"Cardamom Powder", "0.5", "kg", "0.1", "2500"},
	{"Milk Powder", "15", "kg", "2", "450"},
	{"Cashews", "3", "kg", "0.5", "1200"},
	{"Almonds", "2.5", "kg", "0.4", "1500"},
	{"Pistachios", "1.5", "kg", "0.3", "2000"},
	{"Raisins", "2", "kg", "0.3", "800"},
}

// receta de Laddu (1kg): consumo por unidad producida, en kg por material.
var ladduRecipe = []struct {
	material string
	quantity string
}{
	{"Maida (Flour)", "0.2"},
	{"Rice Flour", "0.3"},
	{"Sugar", "0.4"},
	{"Ghee", "0.08"},
	{"Cardamom Powder", "0.02"},
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "cargar configuración: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(logger.Config{Service: "produccion-seed", Env: cfg.App.Env, Level: "info"}).Component("seed")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	materialRepo := postgres.NewMaterialRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	txRepo := postgres.NewTransactionRepository(pool)
	logRepo := postgres.NewProductionLogRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	ledgerUC := inventory.NewLedgerUseCase(txRunner, materialRepo, txRepo)
	engineUC := production.NewEngineUseCase(txRunner, productRepo, materialRepo, logRepo)

	ids := make(map[string]string, len(materials))
	for _, sm := range materials {
		m, err := ledgerUC.AddMaterial(ctx, inventory.MaterialInput{
			Name:          sm.name,
			Unit:          sm.unit,
			CostPerUnit:   decimal.RequireFromString(sm.cost),
			MinStockLevel: decimal.RequireFromString(sm.minStock),
			CurrentStock:  decimal.RequireFromString(sm.stock),
		})
		if err != nil {
			log.Fatal().Err(err).Str("material", sm.name).Msg("crear material")
		}
		ids[sm.name] = m.ID
		log.Info().Str("material", m.Name).Str("id", m.ID).Msg("material creado")
	}

	recipe := make([]entity.RecipeIngredient, 0, len(ladduRecipe))
	for _, ing := range ladduRecipe {
		recipe = append(recipe, entity.RecipeIngredient{
			MaterialID: ids[ing.material],
			Quantity:   decimal.RequireFromString(ing.quantity),
		})
	}
	p, err := engineUC.AddProduct(ctx, production.ProductInput{
		Name:     "Laddu (1kg)",
		Category: entity.CategorySweets,
		Recipe:   recipe,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("crear producto")
	}
	log.Info().Str("product", p.Name).Str("id", p.ID).Str("production_cost", p.ProductionCost.String()).Msg("producto creado")
	log.Info().Msg("seed completado")
}
