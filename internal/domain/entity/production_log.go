package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProductionLog una entrada por lote producido (no una por material consumido).
type ProductionLog struct {
	ID               string
	ProductID        string
	QuantityProduced decimal.Decimal
	Timestamp        time.Time
	UserID           string
	Notes            string
}
