// Package pdf implementa la generación del reporte de inventario valorizado.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título + fecha de generación                        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Material | Stock | Unidad | Mínimo | Estado |        │
//	│         Costo prom. | Valor                                  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTAL: valor total del inventario                           │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Produccion-api/internal/application/report"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorAlert   = &props.Color{Red: 180, Green: 30, Blue: 30}
)

// ── Generator ─────────────────────────────────────────────────────────────────

var _ report.PDFGenerator = (*MarotoReportGenerator)(nil)

// MarotoReportGenerator implementa report.PDFGenerator usando Maroto v2.
type MarotoReportGenerator struct{}

// NewMarotoReportGenerator construye el generador.
func NewMarotoReportGenerator() *MarotoReportGenerator { return &MarotoReportGenerator{} }

// GenerateInventoryPDF genera el PDF del inventario y devuelve sus bytes.
func (g *MarotoReportGenerator) GenerateInventoryPDF(
	_ context.Context,
	items []report.InventoryReportItem,
	totalValue decimal.Decimal,
	generatedAt time.Time,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Reporte de inventario", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(generatedAt))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(tableHeaderRow())
	for _, item := range items {
		m.AddRows(itemRow(item))
	}
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalRow(totalValue))

	doc, err := m.Generate()
	if err != nil {
		return nil, err
	}
	return doc.GetBytes(), nil
}

func headerRow(generatedAt time.Time) core.Row {
	return row.New(12).Add(
		col.New(8).Add(
			text.New("Reporte de inventario valorizado", props.Text{
				Size: 14, Style: fontstyle.Bold, Color: colorPrimary,
			}),
		),
		col.New(4).Add(
			text.New(generatedAt.Format("2006-01-02 15:04"), props.Text{
				Size: 9, Align: align.Right, Color: colorGray,
			}),
		),
	)
}

func tableHeaderRow() core.Row {
	header := props.Text{Size: 8, Style: fontstyle.Bold, Color: colorPrimary}
	headerRight := props.Text{Size: 8, Style: fontstyle.Bold, Color: colorPrimary, Align: align.Right}
	return row.New(7).Add(
		col.New(3).Add(text.New("Material", header)),
		col.New(2).Add(text.New("Stock", headerRight)),
		col.New(1).Add(text.New("Unidad", header)),
		col.New(1).Add(text.New("Mínimo", headerRight)),
		col.New(1).Add(text.New("Estado", header)),
		col.New(2).Add(text.New("Costo prom.", headerRight)),
		col.New(2).Add(text.New("Valor", headerRight)),
	)
}

func itemRow(item report.InventoryReportItem) core.Row {
	cell := props.Text{Size: 8}
	cellRight := props.Text{Size: 8, Align: align.Right}
	statusProps := props.Text{Size: 8}
	if item.Status == "critical" {
		statusProps.Color = colorAlert
		statusProps.Style = fontstyle.Bold
	}
	return row.New(6).Add(
		col.New(3).Add(text.New(item.Name, cell)),
		col.New(2).Add(text.New(item.CurrentStock.String(), cellRight)),
		col.New(1).Add(text.New(item.Unit, cell)),
		col.New(1).Add(text.New(item.MinStockLevel.String(), cellRight)),
		col.New(1).Add(text.New(string(item.Status), statusProps)),
		col.New(2).Add(text.New(item.CostPerUnit.StringFixed(2), cellRight)),
		col.New(2).Add(text.New(item.Value.StringFixed(2), cellRight)),
	)
}

func totalRow(totalValue decimal.Decimal) core.Row {
	return row.New(8).Add(
		col.New(8).Add(
			text.New("Valor total del inventario", props.Text{Size: 10, Style: fontstyle.Bold}),
		),
		col.New(4).Add(
			text.New(totalValue.StringFixed(2), props.Text{
				Size: 10, Style: fontstyle.Bold, Align: align.Right, Color: colorPrimary,
			}),
		),
	)
}
