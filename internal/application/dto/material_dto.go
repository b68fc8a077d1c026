package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateMaterialRequest entrada para dar de alta una materia prima.
type CreateMaterialRequest struct {
	Name          string          `json:"name" validate:"required,min=1,max=200"`
	Unit          string          `json:"unit" validate:"required,max=50"`
	CostPerUnit   decimal.Decimal `json:"cost_per_unit" validate:"required"`
	MinStockLevel decimal.Decimal `json:"min_stock_level" validate:"required"`
	CurrentStock  decimal.Decimal `json:"current_stock"`
}

// RenameMaterialRequest body para PATCH /api/materials/:id/name.
type RenameMaterialRequest struct {
	Name string `json:"name" validate:"required,min=1,max=200"`
}

// UpdateCostRequest body para PATCH /api/materials/:id/cost.
type UpdateCostRequest struct {
	CostPerUnit decimal.Decimal `json:"cost_per_unit" validate:"required"`
}

// AddStockRequest compra de materia prima: suma stock y, si hay precio,
// recalcula el costo promedio ponderado.
type AddStockRequest struct {
	Quantity      decimal.Decimal  `json:"quantity" validate:"required"`
	PurchasePrice *decimal.Decimal `json:"purchase_price,omitempty"`
	Notes         string           `json:"notes,omitempty"`
}

// AdjustStockRequest ajuste manual: fija el stock en un valor absoluto.
type AdjustStockRequest struct {
	NewStock decimal.Decimal `json:"new_stock" validate:"required"`
	Reason   string          `json:"reason" validate:"required"`
}

// MaterialResponse salida de una materia prima con su estado de stock derivado.
type MaterialResponse struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	CurrentStock  decimal.Decimal `json:"current_stock"`
	Unit          string          `json:"unit"`
	MinStockLevel decimal.Decimal `json:"min_stock_level"`
	CostPerUnit   decimal.Decimal `json:"cost_per_unit"`
	Status        string          `json:"status"` // critical, warning, good
	LastUpdated   time.Time       `json:"last_updated"`
}

// MaterialListResponse listado de materiales.
type MaterialListResponse struct {
	Items []MaterialResponse `json:"items"`
	Total int                `json:"total"`
}
