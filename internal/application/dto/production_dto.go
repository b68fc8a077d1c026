package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CheckAvailabilityRequest body para POST /api/production/check.
// Quantity en cero equivale a 1 (valor por defecto).
type CheckAvailabilityRequest struct {
	ProductID string          `json:"product_id" validate:"required,uuid"`
	Quantity  decimal.Decimal `json:"quantity,omitempty"`
}

// ProduceRequest body para POST /api/production.
type ProduceRequest struct {
	ProductID string          `json:"product_id" validate:"required,uuid"`
	Quantity  decimal.Decimal `json:"quantity,omitempty"` // cero = 1
	Notes     string          `json:"notes,omitempty"`
}

// ShortageDTO faltante de un ingrediente para una producción solicitada.
type ShortageDTO struct {
	MaterialName string          `json:"material_name"`
	Required     decimal.Decimal `json:"required"`
	Available    decimal.Decimal `json:"available"`
}

// AvailabilityResponse resultado de la verificación de stock.
type AvailabilityResponse struct {
	CanProduce bool          `json:"can_produce"`
	Shortages  []ShortageDTO `json:"shortages"`
}

// ProductionLogResponse salida de una entrada del historial de producción.
type ProductionLogResponse struct {
	ID               string          `json:"id"`
	ProductID        string          `json:"product_id"`
	QuantityProduced decimal.Decimal `json:"quantity_produced"`
	Timestamp        time.Time       `json:"timestamp"`
	UserID           string          `json:"user_id"`
	Notes            string          `json:"notes,omitempty"`
}
