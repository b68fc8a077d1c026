package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Produccion-api/internal/application/dto"
	"github.com/jhoicas/Produccion-api/internal/application/inventory"
	"github.com/jhoicas/Produccion-api/internal/domain"
	"github.com/jhoicas/Produccion-api/internal/domain/entity"
	stockstatus "github.com/jhoicas/Produccion-api/internal/domain/inventory"
)

// MaterialHandler maneja las peticiones HTTP de materias primas (protegido).
type MaterialHandler struct {
	uc *inventory.LedgerUseCase
}

// NewMaterialHandler construye el handler.
func NewMaterialHandler(uc *inventory.LedgerUseCase) *MaterialHandler {
	return &MaterialHandler{uc: uc}
}

func toMaterialResponse(m *entity.Material) dto.MaterialResponse {
	return dto.MaterialResponse{
		ID:            m.ID,
		Name:          m.Name,
		CurrentStock:  m.CurrentStock,
		Unit:          m.Unit,
		MinStockLevel: m.MinStockLevel,
		CostPerUnit:   m.CostPerUnit,
		Status:        string(stockstatus.Classify(m)),
		LastUpdated:   m.LastUpdated,
	}
}

func materialError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "material no encontrado"})
	case errors.Is(err, domain.ErrDuplicateName):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE_NAME", Message: "ya existe un material con ese nombre"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}

// Create godoc
// @Summary      Crear materia prima
// @Tags         materials
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateMaterialRequest  true  "name, unit, cost_per_unit, min_stock_level, current_stock"
// @Success      201   {object}  dto.MaterialResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/materials [post]
func (h *MaterialHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateMaterialRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	m, err := h.uc.AddMaterial(c.Context(), inventory.MaterialInput{
		Name:          in.Name,
		Unit:          in.Unit,
		CostPerUnit:   in.CostPerUnit,
		MinStockLevel: in.MinStockLevel,
		CurrentStock:  in.CurrentStock,
	})
	if err != nil {
		return materialError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toMaterialResponse(m))
}

// List godoc
// @Summary      Listar materias primas
// @Tags         materials
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.MaterialListResponse
// @Router       /api/materials [get]
func (h *MaterialHandler) List(c *fiber.Ctx) error {
	materials, err := h.uc.ListMaterials()
	if err != nil {
		return materialError(c, err)
	}
	items := make([]dto.MaterialResponse, 0, len(materials))
	for _, m := range materials {
		items = append(items, toMaterialResponse(m))
	}
	return c.JSON(dto.MaterialListResponse{Items: items, Total: len(items)})
}

// Get godoc
// @Summary      Consultar materia prima por id
// @Tags         materials
// @Security     Bearer
// @Produce      json
// @Param        id   path      string  true  "ID del material"
// @Success      200  {object}  dto.MaterialResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/materials/{id} [get]
func (h *MaterialHandler) Get(c *fiber.Ctx) error {
	m, err := h.uc.GetMaterial(c.Params("id"))
	if err != nil {
		return materialError(c, err)
	}
	return c.JSON(toMaterialResponse(m))
}

// LowStock godoc
// @Summary      Materiales con stock bajo
// @Description  Materiales en o por debajo de su nivel mínimo configurado
//               (estado critical).
// @Tags         materials
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.MaterialListResponse
// @Router       /api/materials/low-stock [get]
func (h *MaterialHandler) LowStock(c *fiber.Ctx) error {
	materials, err := h.uc.LowStockMaterials()
	if err != nil {
		return materialError(c, err)
	}
	items := make([]dto.MaterialResponse, 0, len(materials))
	for _, m := range materials {
		items = append(items, toMaterialResponse(m))
	}
	return c.JSON(dto.MaterialListResponse{Items: items, Total: len(items)})
}

// AddStock godoc
// @Summary      Registrar compra de materia prima
// @Description  Suma la cantidad al stock. Si viene purchase_price se recalcula
//               el costo promedio ponderado y se registra una transacción purchase.
// @Tags         materials
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string               true  "ID del material"
// @Param        body  body  dto.AddStockRequest  true  "quantity, purchase_price, notes"
// @Success      200   {object}  dto.MaterialResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/materials/{id}/stock [post]
func (h *MaterialHandler) AddStock(c *fiber.Ctx) error {
	var in dto.AddStockRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	id := c.Params("id")
	if err := h.uc.AddStock(c.Context(), id, GetUserID(c), in.Quantity, in.PurchasePrice, in.Notes); err != nil {
		return materialError(c, err)
	}
	m, err := h.uc.GetMaterial(id)
	if err != nil {
		return materialError(c, err)
	}
	return c.JSON(toMaterialResponse(m))
}

// AdjustStock godoc
// @Summary      Ajuste manual de stock
// @Description  Fija el stock en un valor absoluto y registra una transacción
//               adjustment con la diferencia (con signo). El costo no cambia.
// @Tags         materials
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                  true  "ID del material"
// @Param        body  body  dto.AdjustStockRequest  true  "new_stock, reason"
// @Success      200   {object}  dto.MaterialResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/materials/{id}/stock [put]
func (h *MaterialHandler) AdjustStock(c *fiber.Ctx) error {
	var in dto.AdjustStockRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	id := c.Params("id")
	if err := h.uc.AdjustStock(c.Context(), id, GetUserID(c), in.NewStock, in.Reason); err != nil {
		return materialError(c, err)
	}
	m, err := h.uc.GetMaterial(id)
	if err != nil {
		return materialError(c, err)
	}
	return c.JSON(toMaterialResponse(m))
}

// UpdateCost godoc
// @Summary      Actualizar costo unitario
// @Description  Fija el costo promedio manualmente. No registra transacción.
// @Tags         materials
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                 true  "ID del material"
// @Param        body  body  dto.UpdateCostRequest  true  "cost_per_unit"
// @Success      200   {object}  dto.MaterialResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/materials/{id}/cost [patch]
func (h *MaterialHandler) UpdateCost(c *fiber.Ctx) error {
	var in dto.UpdateCostRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	id := c.Params("id")
	if err := h.uc.UpdateCost(c.Context(), id, in.CostPerUnit); err != nil {
		return materialError(c, err)
	}
	m, err := h.uc.GetMaterial(id)
	if err != nil {
		return materialError(c, err)
	}
	return c.JSON(toMaterialResponse(m))
}

// Rename godoc
// @Summary      Renombrar materia prima
// @Tags         materials
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                     true  "ID del material"
// @Param        body  body  dto.RenameMaterialRequest  true  "name"
// @Success      200   {object}  dto.MaterialResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/materials/{id}/name [patch]
func (h *MaterialHandler) Rename(c *fiber.Ctx) error {
	var in dto.RenameMaterialRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	id := c.Params("id")
	if err := h.uc.RenameMaterial(c.Context(), id, in.Name); err != nil {
		return materialError(c, err)
	}
	m, err := h.uc.GetMaterial(id)
	if err != nil {
		return materialError(c, err)
	}
	return c.JSON(toMaterialResponse(m))
}

// Delete godoc
// @Summary      Eliminar materia prima
// @Description  Las recetas que referencian el material quedan con la línea
//               huérfana; producción la omite al calcular consumos.
// @Tags         materials
// @Security     Bearer
// @Param        id  path  string  true  "ID del material"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/materials/{id} [delete]
func (h *MaterialHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.DeleteMaterial(c.Context(), c.Params("id")); err != nil {
		return materialError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
