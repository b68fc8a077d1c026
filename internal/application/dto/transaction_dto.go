package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionResponse salida de una transacción de stock (solo lectura).
type TransactionResponse struct {
	ID            string           `json:"id"`
	Type          string           `json:"type"` // purchase, production, adjustment
	MaterialID    string           `json:"material_id,omitempty"`
	ProductID     string           `json:"product_id,omitempty"`
	Quantity      decimal.Decimal  `json:"quantity"` // con signo
	PurchasePrice *decimal.Decimal `json:"purchase_price,omitempty"`
	Timestamp     time.Time        `json:"timestamp"`
	Notes         string           `json:"notes,omitempty"`
	UserID        string           `json:"user_id"`
}

// TransactionListResponse listado de transacciones, más reciente primero.
type TransactionListResponse struct {
	Items []TransactionResponse `json:"items"`
	Total int                   `json:"total"`
}
