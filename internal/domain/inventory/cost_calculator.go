package inventory

import "github.com/shopspring/decimal"

// CostCalculator implementa la lógica de costo promedio ponderado (servicio de dominio).
// NuevoCosto = ((StockActual * CostoActual) + (CantEntrada * PrecioCompra)) / (StockActual + CantEntrada)
func CostCalculator(stockActual, costoActual, cantEntrada, precioCompra decimal.Decimal) decimal.Decimal {
	total := stockActual.Add(cantEntrada)
	if total.LessThanOrEqual(decimal.Zero) {
		return costoActual
	}
	num := stockActual.Mul(costoActual).Add(cantEntrada.Mul(precioCompra))
	return num.Div(total)
}
