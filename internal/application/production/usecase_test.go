package production_test

import (
	"context"
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Produccion-api/internal/application/inventory"
	"github.com/jhoicas/Produccion-api/internal/application/production"
	"github.com/jhoicas/Produccion-api/internal/domain"
	"github.com/jhoicas/Produccion-api/internal/domain/entity"
	"github.com/jhoicas/Produccion-api/internal/domain/repository"
	"github.com/jhoicas/Produccion-api/internal/infrastructure/memory"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

type fixture struct {
	ledger *inventory.LedgerUseCase
	engine *production.EngineUseCase
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	store := memory.NewStore()
	runner := memory.NewTxRunner(store)
	return &fixture{
		ledger: inventory.NewLedgerUseCase(runner, store.Materials(), store.Transactions()),
		engine: production.NewEngineUseCase(runner, store.Products(), store.Materials(), store.ProductionLogs()),
	}
}

func (f *fixture) addMaterial(t *testing.T, name, stock, cost string) *entity.Material {
	t.Helper()
	m, err := f.ledger.AddMaterial(context.Background(), inventory.MaterialInput{
		Name:          name,
		Unit:          "kg",
		CostPerUnit:   dec(cost),
		MinStockLevel: dec("1"),
		CurrentStock:  dec(stock),
	})
	require.NoError(t, err)
	return m
}

func (f *fixture) addProduct(t *testing.T, name string, recipe []entity.RecipeIngredient) *entity.Product {
	t.Helper()
	p, err := f.engine.AddProduct(context.Background(), production.ProductInput{
		Name:     name,
		Category: entity.CategorySweets,
		Recipe:   recipe,
	})
	require.NoError(t, err)
	return p
}

func ing(materialID, qty string) entity.RecipeIngredient {
	return entity.RecipeIngredient{MaterialID: materialID, Quantity: dec(qty)}
}

// ── CheckAvailability ────────────────────────────────────────────────────────

func TestCheckAvailability_SuficienteYFaltante(t *testing.T) {
	f := newFixture(t)
	harina := f.addMaterial(t, "Harina", "10", "50")
	azucar := f.addMaterial(t, "Azúcar", "3", "60")
	p := f.addProduct(t, "Laddu", []entity.RecipeIngredient{
		ing(harina.ID, "2"),
		ing(azucar.ID, "1"),
	})

	// Para 3 unidades alcanza todo.
	avail, err := f.engine.CheckAvailability(context.Background(), p.ID, dec("3"))
	require.NoError(t, err)
	assert.True(t, avail.CanProduce)
	assert.Empty(t, avail.Shortages)

	// Para 4 unidades falta azúcar: necesita 4, hay 3.
	avail, err = f.engine.CheckAvailability(context.Background(), p.ID, dec("4"))
	require.NoError(t, err)
	assert.False(t, avail.CanProduce)
	require.Len(t, avail.Shortages, 1)
	assert.Equal(t, "Azúcar", avail.Shortages[0].MaterialName)
	assert.True(t, avail.Shortages[0].Required.Equal(dec("4")))
	assert.True(t, avail.Shortages[0].Available.Equal(dec("3")))
}

func TestCheckAvailability_CantidadCeroEquivaleAUno(t *testing.T) {
	f := newFixture(t)
	harina := f.addMaterial(t, "Harina", "2", "50")
	p := f.addProduct(t, "Laddu", []entity.RecipeIngredient{ing(harina.ID, "2")})

	avail, err := f.engine.CheckAvailability(context.Background(), p.ID, decimal.Zero)
	require.NoError(t, err)
	assert.True(t, avail.CanProduce, "cantidad cero se interpreta como 1 unidad")
}

func TestCheckAvailability_ProductoDesconocido(t *testing.T) {
	f := newFixture(t)
	avail, err := f.engine.CheckAvailability(context.Background(), "no-existe", dec("1"))
	require.NoError(t, err)
	assert.False(t, avail.CanProduce)
	assert.Empty(t, avail.Shortages)
}

func TestCheckAvailability_NoMutaNada(t *testing.T) {
	f := newFixture(t)
	harina := f.addMaterial(t, "Harina", "10", "50")
	p := f.addProduct(t, "Laddu", []entity.RecipeIngredient{ing(harina.ID, "2")})

	for i := 0; i < 3; i++ {
		_, err := f.engine.CheckAvailability(context.Background(), p.ID, dec("1"))
		require.NoError(t, err)
	}
	got, err := f.ledger.GetMaterial(harina.ID)
	require.NoError(t, err)
	assert.True(t, got.CurrentStock.Equal(dec("10")), "verificar no descuenta stock")
}

// ── Produce ──────────────────────────────────────────────────────────────────

func TestProduce_DescuentaYRegistra(t *testing.T) {
	f := newFixture(t)
	harina := f.addMaterial(t, "Harina", "10", "50")
	azucar := f.addMaterial(t, "Azúcar", "8", "60")
	p := f.addProduct(t, "Laddu", []entity.RecipeIngredient{
		ing(harina.ID, "2"),
		ing(azucar.ID, "1.5"),
	})

	logEntry, err := f.engine.Produce(context.Background(), p.ID, "user-1", dec("2"), "lote de la mañana")
	require.NoError(t, err)
	require.NotNil(t, logEntry)
	assert.Equal(t, p.ID, logEntry.ProductID)
	assert.True(t, logEntry.QuantityProduced.Equal(dec("2")))
	assert.Equal(t, "user-1", logEntry.UserID)

	gotHarina, err := f.ledger.GetMaterial(harina.ID)
	require.NoError(t, err)
	assert.True(t, gotHarina.CurrentStock.Equal(dec("6")))
	gotAzucar, err := f.ledger.GetMaterial(azucar.ID)
	require.NoError(t, err)
	assert.True(t, gotAzucar.CurrentStock.Equal(dec("5")))

	// Una transacción production por material consumido, con cantidad negativa.
	txs, err := f.ledger.ListTransactions()
	require.NoError(t, err)
	require.Len(t, txs, 2)
	for _, tx := range txs {
		assert.Equal(t, entity.TransactionProduction, tx.Type)
		assert.Equal(t, p.ID, tx.ProductID)
		assert.True(t, tx.Quantity.IsNegative(), "el consumo se registra con signo negativo")
	}

	logs, err := f.engine.ListProductionLogs()
	require.NoError(t, err)
	require.Len(t, logs, 1)
}

func TestProduce_TodoONada(t *testing.T) {
	f := newFixture(t)
	harina := f.addMaterial(t, "Harina", "10", "50")
	azucar := f.addMaterial(t, "Azúcar", "3", "60")
	p := f.addProduct(t, "Laddu", []entity.RecipeIngredient{
		ing(harina.ID, "2"),
		ing(azucar.ID, "1"),
	})

	_, err := f.engine.Produce(context.Background(), p.ID, "user-1", dec("4"), "")
	require.Error(t, err)

	var insufficient *production.InsufficientStockError
	require.ErrorAs(t, err, &insufficient)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	require.Len(t, insufficient.Shortages, 1)
	assert.Equal(t, "Azúcar", insufficient.Shortages[0].MaterialName)
	assert.True(t, insufficient.Shortages[0].Required.Equal(dec("4")))
	assert.True(t, insufficient.Shortages[0].Available.Equal(dec("3")))

	// Nada se movió: ni la harina que sí alcanzaba, ni logs ni transacciones.
	gotHarina, err := f.ledger.GetMaterial(harina.ID)
	require.NoError(t, err)
	assert.True(t, gotHarina.CurrentStock.Equal(dec("10")))

	txs, err := f.ledger.ListTransactions()
	require.NoError(t, err)
	assert.Empty(t, txs)
	logs, err := f.engine.ListProductionLogs()
	require.NoError(t, err)
	assert.Empty(t, logs)
}

func TestProduce_ReferenciaColganteSeOmite(t *testing.T) {
	f := newFixture(t)
	harina := f.addMaterial(t, "Harina", "10", "50")
	azucar := f.addMaterial(t, "Azúcar", "8", "60")
	p := f.addProduct(t, "Laddu", []entity.RecipeIngredient{
		ing(harina.ID, "2"),
		ing(azucar.ID, "1"),
	})

	// Borrar el azúcar deja su línea de receta colgante.
	require.NoError(t, f.ledger.DeleteMaterial(context.Background(), azucar.ID))

	logEntry, err := f.engine.Produce(context.Background(), p.ID, "user-1", dec("1"), "")
	require.NoError(t, err, "la línea colgante se omite, no bloquea la producción")
	require.NotNil(t, logEntry)

	txs, err := f.ledger.ListTransactions()
	require.NoError(t, err)
	assert.Len(t, txs, 1, "solo se consume (y registra) el material existente")
}

func TestProduce_CantidadNegativa(t *testing.T) {
	f := newFixture(t)
	_, err := f.engine.Produce(context.Background(), "cualquiera", "u", dec("-1"), "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestProduce_ProductoDesconocido(t *testing.T) {
	f := newFixture(t)
	_, err := f.engine.Produce(context.Background(), "no-existe", "u", dec("1"), "")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// delayedRunner ejecuta un hook justo antes de delegar en el runner real,
// simulando un mutador que se cuela entre la invocación y la sección crítica.
type delayedRunner struct {
	inner  inventory.TxRunner
	before func()
}

func (r *delayedRunner) Run(ctx context.Context, fn func(
	repository.MaterialRepository,
	repository.ProductRepository,
	repository.TransactionRepository,
	repository.ProductionLogRepository,
) error) error {
	if r.before != nil {
		r.before()
	}
	return r.inner.Run(ctx, fn)
}

func TestProduce_VeElProductoVigenteAlMomentoDelCommit(t *testing.T) {
	store := memory.NewStore()
	runner := memory.NewTxRunner(store)
	ledger := inventory.NewLedgerUseCase(runner, store.Materials(), store.Transactions())
	engine := production.NewEngineUseCase(runner, store.Products(), store.Materials(), store.ProductionLogs())

	harina, err := ledger.AddMaterial(context.Background(), inventory.MaterialInput{
		Name:          "Harina",
		Unit:          "kg",
		CostPerUnit:   dec("50"),
		MinStockLevel: dec("1"),
		CurrentStock:  dec("10"),
	})
	require.NoError(t, err)
	p, err := engine.AddProduct(context.Background(), production.ProductInput{
		Name:     "Laddu",
		Category: entity.CategorySweets,
		Recipe:   []entity.RecipeIngredient{ing(harina.ID, "2")},
	})
	require.NoError(t, err)

	// El producto se renombra después de invocar Produce pero antes de entrar
	// a la sección crítica: el consumo registrado debe reflejar el nombre
	// vigente al momento del commit, no una lectura previa y vieja.
	delayed := &delayedRunner{inner: runner, before: func() {
		require.NoError(t, engine.RenameProduct(context.Background(), p.ID, "Laddu premium"))
	}}
	racy := production.NewEngineUseCase(delayed, store.Products(), store.Materials(), store.ProductionLogs())

	_, err = racy.Produce(context.Background(), p.ID, "u", dec("1"), "")
	require.NoError(t, err)

	txs, err := ledger.ListTransactions()
	require.NoError(t, err)
	require.Len(t, txs, 1)
	assert.Contains(t, txs[0].Notes, "Laddu premium")
}

// ── Productos ────────────────────────────────────────────────────────────────

func TestAddProduct_CacheaCostoDeProduccion(t *testing.T) {
	f := newFixture(t)
	harina := f.addMaterial(t, "Harina", "50", "50")
	ghee := f.addMaterial(t, "Ghee", "8", "800")

	p := f.addProduct(t, "Laddu", []entity.RecipeIngredient{
		ing(harina.ID, "0.2"),  // 10
		ing(ghee.ID, "0.08"),   // 64
		ing("borrado", "0.02"), // desconocido: se omite
	})
	assert.True(t, p.ProductionCost.Equal(dec("74")), "obtenido %s", p.ProductionCost)
}

func TestAddProduct_Validaciones(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	harina := f.addMaterial(t, "Harina", "50", "50")

	cases := []struct {
		nombre string
		in     production.ProductInput
	}{
		{"nombre vacío", production.ProductInput{Name: " ", Category: entity.CategorySweets, Recipe: []entity.RecipeIngredient{ing(harina.ID, "1")}}},
		{"categoría inválida", production.ProductInput{Name: "Laddu", Category: "drinks", Recipe: []entity.RecipeIngredient{ing(harina.ID, "1")}}},
		{"receta vacía", production.ProductInput{Name: "Laddu", Category: entity.CategorySweets}},
		{"ingrediente sin cantidad", production.ProductInput{Name: "Laddu", Category: entity.CategorySweets, Recipe: []entity.RecipeIngredient{ing(harina.ID, "0")}}},
	}
	for _, tc := range cases {
		t.Run(tc.nombre, func(t *testing.T) {
			_, err := f.engine.AddProduct(ctx, tc.in)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

func TestAddProduct_NombreDuplicadoGlobal(t *testing.T) {
	f := newFixture(t)
	harina := f.addMaterial(t, "Harina", "50", "50")
	f.addProduct(t, "Laddu", []entity.RecipeIngredient{ing(harina.ID, "1")})

	// Mismo nombre en otra categoría también es colisión: la unicidad es global.
	_, err := f.engine.AddProduct(context.Background(), production.ProductInput{
		Name:     "laddu",
		Category: entity.CategoryBakery,
		Recipe:   []entity.RecipeIngredient{ing(harina.ID, "1")},
	})
	assert.ErrorIs(t, err, domain.ErrDuplicateName)
}

func TestAddProduct_ConcurrenteMismoNombre(t *testing.T) {
	f := newFixture(t)
	harina := f.addMaterial(t, "Harina", "50", "50")

	// Muchas altas simultáneas del mismo nombre arrancando a la vez: solo una
	// puede ganar, el resto colisiona.
	const n = 32
	start := make(chan struct{})
	errs := make([]error, n)
	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func(i int) {
			defer wg.Done()
			<-start
			_, errs[i] = f.engine.AddProduct(context.Background(), production.ProductInput{
				Name:     "Laddu",
				Category: entity.CategorySweets,
				Recipe:   []entity.RecipeIngredient{ing(harina.ID, "1")},
			})
		}(i)
	}
	close(start)
	wg.Wait()

	wins := 0
	for _, err := range errs {
		if err == nil {
			wins++
			continue
		}
		assert.ErrorIs(t, err, domain.ErrDuplicateName)
	}
	assert.Equal(t, 1, wins, "exactamente un alta debe ganar")

	products, err := f.engine.ListProducts()
	require.NoError(t, err)
	assert.Len(t, products, 1, "nunca debería existir más de un producto 'Laddu'")
}

func TestRenameProduct_Colision(t *testing.T) {
	f := newFixture(t)
	harina := f.addMaterial(t, "Harina", "50", "50")
	a := f.addProduct(t, "Laddu", []entity.RecipeIngredient{ing(harina.ID, "1")})
	f.addProduct(t, "Jalebi", []entity.RecipeIngredient{ing(harina.ID, "1")})

	assert.ErrorIs(t, f.engine.RenameProduct(context.Background(), a.ID, "JALEBI"), domain.ErrDuplicateName)
	require.NoError(t, f.engine.RenameProduct(context.Background(), a.ID, "Laddu especial"))
}

func TestDeleteProduct_ConservaHistorial(t *testing.T) {
	f := newFixture(t)
	harina := f.addMaterial(t, "Harina", "50", "50")
	p := f.addProduct(t, "Laddu", []entity.RecipeIngredient{ing(harina.ID, "1")})

	_, err := f.engine.Produce(context.Background(), p.ID, "u", dec("1"), "")
	require.NoError(t, err)
	require.NoError(t, f.engine.DeleteProduct(context.Background(), p.ID))

	_, err = f.engine.GetProduct(p.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	logs, err := f.engine.ListProductionLogs()
	require.NoError(t, err)
	assert.Len(t, logs, 1, "el historial de producción sobrevive al producto")
}
