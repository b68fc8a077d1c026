package report

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/jhoicas/Produccion-api/internal/domain/entity"
	"github.com/jhoicas/Produccion-api/internal/domain/inventory"
)

// InventoryReportItem línea del reporte de inventario valorizado.
type InventoryReportItem struct {
	Name          string
	Unit          string
	CurrentStock  decimal.Decimal
	MinStockLevel decimal.Decimal
	CostPerUnit   decimal.Decimal
	Value         decimal.Decimal // stock * costo
	Status        inventory.StockStatus
}

// PDFGenerator puerto de generación del PDF del reporte de inventario.
type PDFGenerator interface {
	GenerateInventoryPDF(ctx context.Context, items []InventoryReportItem, totalValue decimal.Decimal, generatedAt time.Time) ([]byte, error)
}

// ExcelExporter puerto de exportación a .xlsx del log de transacciones y los
// niveles de stock actuales.
type ExcelExporter interface {
	ExportTransactions(transactions []*entity.StockTransaction, materials []*entity.Material) ([]byte, error)
}
