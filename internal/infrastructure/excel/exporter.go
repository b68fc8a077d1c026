// Package excel exporta el log de transacciones y los niveles de stock a un
// archivo .xlsx de dos hojas.
package excel

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/Produccion-api/internal/application/report"
	"github.com/jhoicas/Produccion-api/internal/domain/entity"
	"github.com/jhoicas/Produccion-api/internal/domain/inventory"
)

var _ report.ExcelExporter = (*Exporter)(nil)

// Exporter implementa report.ExcelExporter usando excelize.
type Exporter struct{}

// NewExporter construye el exportador.
func NewExporter() *Exporter { return &Exporter{} }

// ExportTransactions genera el .xlsx: hoja "Transacciones" (más reciente
// primero) y hoja "Stock" con los niveles actuales.
func (e *Exporter) ExportTransactions(transactions []*entity.StockTransaction, materials []*entity.Material) ([]byte, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	// Nombres de materiales para la hoja de transacciones
	names := make(map[string]string, len(materials))
	for _, m := range materials {
		names[m.ID] = m.Name
	}

	sheet := f.GetSheetName(f.GetActiveSheetIndex())
	if err := f.SetSheetName(sheet, "Transacciones"); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}
	sheet = "Transacciones"

	header := []interface{}{
		"id", "tipo", "material", "producto_id", "cantidad", "precio_compra", "fecha", "notas", "usuario",
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return nil, fmt.Errorf("write header: %w", err)
	}

	row := 2
	for _, t := range transactions {
		price := ""
		if t.PurchasePrice != nil {
			price = t.PurchasePrice.String()
		}
		excelRow := []interface{}{
			t.ID,
			string(t.Type),
			names[t.MaterialID],
			t.ProductID,
			t.Quantity.String(),
			price,
			t.Timestamp.Format("2006-01-02 15:04:05"),
			t.Notes,
			t.UserID,
		}
		cell, err := excelize.CoordinatesToCellName(1, row)
		if err != nil {
			return nil, fmt.Errorf("cell name: %w", err)
		}
		if err := f.SetSheetRow(sheet, cell, &excelRow); err != nil {
			return nil, fmt.Errorf("write row: %w", err)
		}
		row++
	}

	// Hoja de stock actual
	stockSheet := "Stock"
	if _, err := f.NewSheet(stockSheet); err != nil {
		return nil, fmt.Errorf("new sheet: %w", err)
	}
	stockHeader := []interface{}{
		"material_id", "material", "stock_actual", "unidad", "stock_minimo", "costo_promedio", "estado",
	}
	if err := f.SetSheetRow(stockSheet, "A1", &stockHeader); err != nil {
		return nil, fmt.Errorf("write stock header: %w", err)
	}
	row = 2
	for _, m := range materials {
		excelRow := []interface{}{
			m.ID,
			m.Name,
			m.CurrentStock.String(),
			m.Unit,
			m.MinStockLevel.String(),
			m.CostPerUnit.String(),
			string(inventory.Classify(m)),
		}
		cell, err := excelize.CoordinatesToCellName(1, row)
		if err != nil {
			return nil, fmt.Errorf("cell name: %w", err)
		}
		if err := f.SetSheetRow(stockSheet, cell, &excelRow); err != nil {
			return nil, fmt.Errorf("write stock row: %w", err)
		}
		row++
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write xlsx: %w", err)
	}
	return buf.Bytes(), nil
}
