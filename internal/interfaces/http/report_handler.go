package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Produccion-api/internal/application/dto"
	"github.com/jhoicas/Produccion-api/internal/application/report"
)

// ReportHandler sirve los reportes descargables de inventario (protegido).
type ReportHandler struct {
	uc *report.ReportUseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *report.ReportUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// InventoryPDF godoc
// @Summary      Reporte de inventario en PDF
// @Description  Inventario valorizado con estado de stock por material.
// @Tags         reports
// @Security     Bearer
// @Produce      application/pdf
// @Success      200  {file}  binary
// @Router       /api/reports/inventory.pdf [get]
func (h *ReportHandler) InventoryPDF(c *fiber.Ctx) error {
	data, err := h.uc.InventoryPDF(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="inventario.pdf"`)
	return c.Send(data)
}

// TransactionsXLSX godoc
// @Summary      Exportar transacciones a Excel
// @Description  Hoja de transacciones (más reciente primero) y hoja de stock actual.
// @Tags         reports
// @Security     Bearer
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success      200  {file}  binary
// @Router       /api/reports/transactions.xlsx [get]
func (h *ReportHandler) TransactionsXLSX(c *fiber.Ctx) error {
	data, err := h.uc.TransactionsXLSX(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="transacciones.xlsx"`)
	return c.Send(data)
}
