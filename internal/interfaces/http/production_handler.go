package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Produccion-api/internal/application/dto"
	"github.com/jhoicas/Produccion-api/internal/application/production"
	"github.com/jhoicas/Produccion-api/internal/domain"
	"github.com/jhoicas/Produccion-api/internal/domain/entity"
)

// ProductionHandler maneja las peticiones HTTP del motor de producción (protegido).
type ProductionHandler struct {
	uc *production.EngineUseCase
}

// NewProductionHandler construye el handler.
func NewProductionHandler(uc *production.EngineUseCase) *ProductionHandler {
	return &ProductionHandler{uc: uc}
}

func toShortageDTOs(shortages []production.Shortage) []dto.ShortageDTO {
	out := make([]dto.ShortageDTO, 0, len(shortages))
	for _, s := range shortages {
		out = append(out, dto.ShortageDTO{MaterialName: s.MaterialName, Required: s.Required, Available: s.Available})
	}
	return out
}

func toProductionLogResponse(l *entity.ProductionLog) dto.ProductionLogResponse {
	return dto.ProductionLogResponse{
		ID:               l.ID,
		ProductID:        l.ProductID,
		QuantityProduced: l.QuantityProduced,
		Timestamp:        l.Timestamp,
		UserID:           l.UserID,
		Notes:            l.Notes,
	}
}

// Check godoc
// @Summary      Verificar disponibilidad de producción
// @Description  Indica si alcanza el stock para producir la cantidad pedida y,
//               si no, qué materiales faltan y cuánto. Solo lectura.
// @Tags         production
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CheckAvailabilityRequest  true  "product_id, quantity (0 = 1)"
// @Success      200   {object}  dto.AvailabilityResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/production/check [post]
func (h *ProductionHandler) Check(c *fiber.Ctx) error {
	var in dto.CheckAvailabilityRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	avail, err := h.uc.CheckAvailability(c.Context(), in.ProductID, in.Quantity)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.AvailabilityResponse{CanProduce: avail.CanProduce, Shortages: toShortageDTOs(avail.Shortages)})
}

// Produce godoc
// @Summary      Ejecutar producción
// @Description  Descuenta todos los ingredientes de la receta de forma atómica.
//               Si falta cualquier material no se descuenta nada y se responde
//               409 con la lista de faltantes.
// @Tags         production
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ProduceRequest  true  "product_id, quantity (0 = 1), notes"
// @Success      201   {object}  dto.ProductionLogResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.AvailabilityResponse
// @Router       /api/production [post]
func (h *ProductionHandler) Produce(c *fiber.Ctx) error {
	var in dto.ProduceRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	log, err := h.uc.Produce(c.Context(), in.ProductID, GetUserID(c), in.Quantity, in.Notes)
	if err != nil {
		var insufficient *production.InsufficientStockError
		switch {
		case errors.As(err, &insufficient):
			return c.Status(fiber.StatusConflict).JSON(dto.AvailabilityResponse{
				CanProduce: false,
				Shortages:  toShortageDTOs(insufficient.Shortages),
			})
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		case errors.Is(err, domain.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto no encontrado"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
		}
	}
	return c.Status(fiber.StatusCreated).JSON(toProductionLogResponse(log))
}

// Logs godoc
// @Summary      Historial de producción
// @Description  Entradas del historial, más reciente primero.
// @Tags         production
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.ProductionLogResponse
// @Router       /api/production/logs [get]
func (h *ProductionHandler) Logs(c *fiber.Ctx) error {
	logs, err := h.uc.ListProductionLogs()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	items := make([]dto.ProductionLogResponse, 0, len(logs))
	for _, l := range logs {
		items = append(items, toProductionLogResponse(l))
	}
	return c.JSON(items)
}
