package inventory_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/jhoicas/Produccion-api/internal/domain/entity"
	"github.com/jhoicas/Produccion-api/internal/domain/inventory"
)

func material(stock, minStock, cost string) *entity.Material {
	return &entity.Material{
		Name:          "Harina",
		CurrentStock:  dec(stock),
		MinStockLevel: dec(minStock),
		CostPerUnit:   dec(cost),
		Unit:          "kg",
	}
}

func TestClassify_Umbrales(t *testing.T) {
	cases := []struct {
		nombre   string
		stock    string
		minStock string
		want     inventory.StockStatus
	}{
		{"bajo el mínimo", "3", "5", inventory.StatusCritical},
		{"exactamente el mínimo (razón 1)", "5", "5", inventory.StatusCritical},
		{"entre mínimo y doble", "8", "5", inventory.StatusWarning},
		{"exactamente el doble (razón 2)", "10", "5", inventory.StatusWarning},
		{"por encima del doble (razón 2.2)", "11", "5", inventory.StatusGood},
		{"stock cero", "0", "5", inventory.StatusCritical},
		{"mínimo fraccionario", "0.5", "0.1", inventory.StatusGood},
	}
	for _, tc := range cases {
		t.Run(tc.nombre, func(t *testing.T) {
			got := inventory.Classify(material(tc.stock, tc.minStock, "10"))
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestLowStockItems_SoloCriticos(t *testing.T) {
	items := []*entity.Material{
		material("3", "5", "10"),  // critical
		material("8", "5", "10"),  // warning, no entra
		material("20", "5", "10"), // good, no entra
		material("5", "5", "10"),  // critical (borde)
	}
	low := inventory.LowStockItems(items)
	assert.Len(t, low, 2)
}

func TestTotalInventoryValue(t *testing.T) {
	items := []*entity.Material{
		material("10", "5", "50"),  // 500
		material("2.5", "1", "80"), // 200
	}
	total := inventory.TotalInventoryValue(items)
	assert.True(t, total.Equal(dec("700")), "obtenido %s", total)

	assert.True(t, inventory.TotalInventoryValue(nil).IsZero())
}
