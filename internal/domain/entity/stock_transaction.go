package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType tipo de evento que afecta el stock.
type TransactionType string

const (
	TransactionPurchase   TransactionType = "purchase"   // compra de materia prima
	TransactionProduction TransactionType = "production" // consumo por producción
	TransactionAdjustment TransactionType = "adjustment" // ajuste manual
)

// StockTransaction registro inmutable de un evento de stock. Una vez escrito
// nunca se edita ni se borra; el log se mantiene en orden más-reciente-primero.
type StockTransaction struct {
	ID            string
	Type          TransactionType
	MaterialID    string
	ProductID     string // solo para type=production
	Quantity      decimal.Decimal // con signo: positivo entra, negativo sale
	PurchasePrice *decimal.Decimal // solo para type=purchase, si se informó precio
	Timestamp     time.Time
	Notes         string
	UserID        string
}
