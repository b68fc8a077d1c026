package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Category línea de producción a la que pertenece un producto.
type Category string

const (
	CategorySweets    Category = "sweets"
	CategorySavouries Category = "savouries"
	CategoryBakery    Category = "bakery"
)

// Valid reporta si la categoría es una de las líneas de producción conocidas.
func (c Category) Valid() bool {
	switch c {
	case CategorySweets, CategorySavouries, CategoryBakery:
		return true
	}
	return false
}

// RecipeIngredient par (material, cantidad por unidad producida) de una receta.
type RecipeIngredient struct {
	MaterialID string          `json:"material_id"`
	Quantity   decimal.Decimal `json:"quantity"` // consumo por UNA unidad de producto
}

// Product representa un producto terminado definido por su receta.
// ProductionCost es un campo derivado (cacheado al crear), no autoritativo:
// el costo real sale de los costos promedio vigentes de los materiales.
type Product struct {
	ID             string
	Name           string // único (sin distinguir mayúsculas) entre todos los productos
	Category       Category
	Recipe         []RecipeIngredient
	ProductionCost decimal.Decimal
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
