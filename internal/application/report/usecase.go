package report

import (
	"context"
	"time"

	"github.com/jhoicas/Produccion-api/internal/domain/inventory"
	"github.com/jhoicas/Produccion-api/internal/domain/repository"
)

// ReportUseCase arma los reportes de solo lectura sobre el ledger: inventario
// valorizado en PDF y exportación de transacciones a Excel.
type ReportUseCase struct {
	materialRepo repository.MaterialRepository
	txRepo       repository.TransactionRepository
	pdf          PDFGenerator
	excel        ExcelExporter
}

// NewReportUseCase construye el caso de uso.
func NewReportUseCase(materialRepo repository.MaterialRepository, txRepo repository.TransactionRepository, pdf PDFGenerator, excel ExcelExporter) *ReportUseCase {
	return &ReportUseCase{materialRepo: materialRepo, txRepo: txRepo, pdf: pdf, excel: excel}
}

// InventoryPDF genera el PDF del inventario valorizado (stock, mínimo, estado,
// costo promedio, valor por línea y valor total).
func (uc *ReportUseCase) InventoryPDF(ctx context.Context) ([]byte, error) {
	materials, err := uc.materialRepo.List()
	if err != nil {
		return nil, err
	}
	items := make([]InventoryReportItem, 0, len(materials))
	for _, m := range materials {
		items = append(items, InventoryReportItem{
			Name:          m.Name,
			Unit:          m.Unit,
			CurrentStock:  m.CurrentStock,
			MinStockLevel: m.MinStockLevel,
			CostPerUnit:   m.CostPerUnit,
			Value:         m.CurrentStock.Mul(m.CostPerUnit),
			Status:        inventory.Classify(m),
		})
	}
	total := inventory.TotalInventoryValue(materials)
	return uc.pdf.GenerateInventoryPDF(ctx, items, total, time.Now())
}

// TransactionsXLSX exporta el log de transacciones (más reciente primero) más
// una hoja con los niveles de stock actuales.
func (uc *ReportUseCase) TransactionsXLSX(ctx context.Context) ([]byte, error) {
	transactions, err := uc.txRepo.List()
	if err != nil {
		return nil, err
	}
	materials, err := uc.materialRepo.List()
	if err != nil {
		return nil, err
	}
	return uc.excel.ExportTransactions(transactions, materials)
}
