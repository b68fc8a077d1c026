package inventory

import (
	"github.com/shopspring/decimal"
	"github.com/jhoicas/Produccion-api/internal/domain/entity"
)

// StockStatus nivel de alerta de un material según su stock.
type StockStatus string

const (
	StatusCritical StockStatus = "critical" // stock <= mínimo
	StatusWarning  StockStatus = "warning"  // mínimo < stock <= 2*mínimo
	StatusGood     StockStatus = "good"     // stock > 2*mínimo
)

var two = decimal.NewFromInt(2)

// Classify clasifica un material por la razón stock/mínimo: <=1 critical,
// <=2 warning, >2 good. Se compara sin dividir para no depender de que
// MinStockLevel sea distinto de cero (que lo es por construcción).
func Classify(m *entity.Material) StockStatus {
	switch {
	case m.CurrentStock.LessThanOrEqual(m.MinStockLevel):
		return StatusCritical
	case m.CurrentStock.LessThanOrEqual(m.MinStockLevel.Mul(two)):
		return StatusWarning
	default:
		return StatusGood
	}
}

// IsLowStock reporta si el material está en o bajo su nivel mínimo.
// Coincide exactamente con el conjunto StatusCritical.
func IsLowStock(m *entity.Material) bool {
	return m.CurrentStock.LessThanOrEqual(m.MinStockLevel)
}

// LowStockItems filtra los materiales en o bajo su nivel mínimo.
func LowStockItems(materials []*entity.Material) []*entity.Material {
	out := make([]*entity.Material, 0)
	for _, m := range materials {
		if IsLowStock(m) {
			out = append(out, m)
		}
	}
	return out
}

// TotalInventoryValue suma stock*costo de todos los materiales.
func TotalInventoryValue(materials []*entity.Material) decimal.Decimal {
	total := decimal.Zero
	for _, m := range materials {
		total = total.Add(m.CurrentStock.Mul(m.CostPerUnit))
	}
	return total
}
