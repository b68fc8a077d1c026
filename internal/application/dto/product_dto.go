package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// RecipeIngredientDTO línea de receta: material y consumo por unidad producida.
type RecipeIngredientDTO struct {
	MaterialID string          `json:"material_id" validate:"required,uuid"`
	Quantity   decimal.Decimal `json:"quantity" validate:"required"`
}

// CreateProductRequest entrada para dar de alta un producto con su receta.
type CreateProductRequest struct {
	Name     string                `json:"name" validate:"required,min=1,max=200"`
	Category string                `json:"category" validate:"required,oneof=sweets savouries bakery"`
	Recipe   []RecipeIngredientDTO `json:"recipe" validate:"required,min=1,dive"`
}

// RenameProductRequest body para PATCH /api/products/:id/name.
type RenameProductRequest struct {
	Name string `json:"name" validate:"required,min=1,max=200"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID             string                `json:"id"`
	Name           string                `json:"name"`
	Category       string                `json:"category"`
	Recipe         []RecipeIngredientDTO `json:"recipe"`
	ProductionCost decimal.Decimal       `json:"production_cost"` // derivado, no autoritativo
	CreatedAt      time.Time             `json:"created_at"`
	UpdatedAt      time.Time             `json:"updated_at"`
}

// ProductListResponse listado de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Total int               `json:"total"`
}
