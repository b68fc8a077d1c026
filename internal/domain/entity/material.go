package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Material representa una materia prima del taller (harina, azúcar, etc.).
// CostPerUnit es costo promedio ponderado recalculado en cada compra con precio;
// CurrentStock nunca queda negativo: los débitos que lo dejarían bajo cero se rechazan.
type Material struct {
	ID            string
	Name          string // único (sin distinguir mayúsculas) entre todos los materiales
	CurrentStock  decimal.Decimal
	Unit          string // etiqueta libre: "kg", "litros", "unidades"
	MinStockLevel decimal.Decimal // > 0; umbral para alertas de reposición
	CostPerUnit   decimal.Decimal // > 0; promedio ponderado, no precio fijo
	LastUpdated   time.Time       // se refresca en cada mutación de stock o costo
}
