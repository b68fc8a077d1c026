package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Produccion-api/internal/application/dto"
	"github.com/jhoicas/Produccion-api/internal/application/inventory"
	"github.com/jhoicas/Produccion-api/internal/domain/entity"
)

// TransactionHandler expone el registro de transacciones de stock (solo lectura).
type TransactionHandler struct {
	uc *inventory.LedgerUseCase
}

// NewTransactionHandler construye el handler.
func NewTransactionHandler(uc *inventory.LedgerUseCase) *TransactionHandler {
	return &TransactionHandler{uc: uc}
}

func toTransactionResponse(t *entity.StockTransaction) dto.TransactionResponse {
	return dto.TransactionResponse{
		ID:            t.ID,
		Type:          string(t.Type),
		MaterialID:    t.MaterialID,
		ProductID:     t.ProductID,
		Quantity:      t.Quantity,
		PurchasePrice: t.PurchasePrice,
		Timestamp:     t.Timestamp,
		Notes:         t.Notes,
		UserID:        t.UserID,
	}
}

// List godoc
// @Summary      Listar transacciones de stock
// @Description  Registro append-only de compras, producciones y ajustes,
//               más reciente primero.
// @Tags         transactions
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.TransactionListResponse
// @Router       /api/transactions [get]
func (h *TransactionHandler) List(c *fiber.Ctx) error {
	transactions, err := h.uc.ListTransactions()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	items := make([]dto.TransactionResponse, 0, len(transactions))
	for _, t := range transactions {
		items = append(items, toTransactionResponse(t))
	}
	return c.JSON(dto.TransactionListResponse{Items: items, Total: len(items)})
}
