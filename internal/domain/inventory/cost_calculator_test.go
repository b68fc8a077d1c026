package inventory_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/jhoicas/Produccion-api/internal/domain/inventory"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// Caso de referencia: 10 unidades a $10 más una compra de 5 a $20 deben
// promediar a $13.33... (40/3 exacto con decimales).
func TestCostCalculator_PromedioPonderado(t *testing.T) {
	got := inventory.CostCalculator(dec("10"), dec("10"), dec("5"), dec("20"))

	// (10*10 + 5*20) / 15 = 200/15 = 13.3333...
	expected := dec("200").Div(dec("15"))
	assert.True(t, got.Equal(expected), "esperado %s, obtenido %s", expected, got)
	assert.Equal(t, "13.33", got.StringFixed(2))
}

func TestCostCalculator_StockCeroTomaPrecioDeCompra(t *testing.T) {
	// Sin stock previo el promedio es el precio de la compra entrante.
	got := inventory.CostCalculator(dec("0"), dec("10"), dec("5"), dec("20"))
	assert.True(t, got.Equal(dec("20")), "obtenido %s", got)
}

func TestCostCalculator_CompraAlMismoPrecioNoCambiaElCosto(t *testing.T) {
	got := inventory.CostCalculator(dec("30"), dec("50"), dec("10"), dec("50"))
	assert.True(t, got.Equal(dec("50")), "obtenido %s", got)
}

func TestCostCalculator_TotalNoPositivoConservaCostoActual(t *testing.T) {
	// Total cero o negativo (stock negativo por ajuste manual): el costo
	// vigente se conserva en lugar de dividir por cero.
	got := inventory.CostCalculator(dec("0"), dec("75"), dec("0"), dec("20"))
	assert.True(t, got.Equal(dec("75")), "obtenido %s", got)

	got = inventory.CostCalculator(dec("-5"), dec("75"), dec("2"), dec("20"))
	assert.True(t, got.Equal(dec("75")), "obtenido %s", got)
}

func TestCostCalculator_CantidadesFraccionarias(t *testing.T) {
	// 0.5 kg a $2500 más 0.25 kg a $3000 = (1250 + 750) / 0.75
	got := inventory.CostCalculator(dec("0.5"), dec("2500"), dec("0.25"), dec("3000"))
	expected := dec("2000").Div(dec("0.75"))
	assert.True(t, got.Equal(expected), "esperado %s, obtenido %s", expected, got)
}
