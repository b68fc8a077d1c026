package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Produccion-api/internal/application/dto"
	"github.com/jhoicas/Produccion-api/internal/application/production"
	"github.com/jhoicas/Produccion-api/internal/domain"
	"github.com/jhoicas/Produccion-api/internal/domain/entity"
)

// ProductHandler maneja las peticiones HTTP de productos y sus recetas (protegido).
type ProductHandler struct {
	uc *production.EngineUseCase
}

// NewProductHandler construye el handler.
func NewProductHandler(uc *production.EngineUseCase) *ProductHandler {
	return &ProductHandler{uc: uc}
}

func toProductResponse(p *entity.Product) dto.ProductResponse {
	recipe := make([]dto.RecipeIngredientDTO, 0, len(p.Recipe))
	for _, ing := range p.Recipe {
		recipe = append(recipe, dto.RecipeIngredientDTO{MaterialID: ing.MaterialID, Quantity: ing.Quantity})
	}
	return dto.ProductResponse{
		ID:             p.ID,
		Name:           p.Name,
		Category:       string(p.Category),
		Recipe:         recipe,
		ProductionCost: p.ProductionCost,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}

func productError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto no encontrado"})
	case errors.Is(err, domain.ErrDuplicateName):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE_NAME", Message: "ya existe un producto con ese nombre"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}

// Create godoc
// @Summary      Crear producto con receta
// @Tags         products
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateProductRequest  true  "name, category (sweets|savouries|bakery), recipe"
// @Success      201   {object}  dto.ProductResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/products [post]
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	recipe := make([]entity.RecipeIngredient, 0, len(in.Recipe))
	for _, ing := range in.Recipe {
		recipe = append(recipe, entity.RecipeIngredient{MaterialID: ing.MaterialID, Quantity: ing.Quantity})
	}
	p, err := h.uc.AddProduct(c.Context(), production.ProductInput{
		Name:     in.Name,
		Category: entity.Category(in.Category),
		Recipe:   recipe,
	})
	if err != nil {
		return productError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toProductResponse(p))
}

// List godoc
// @Summary      Listar productos
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.ProductListResponse
// @Router       /api/products [get]
func (h *ProductHandler) List(c *fiber.Ctx) error {
	products, err := h.uc.ListProducts()
	if err != nil {
		return productError(c, err)
	}
	items := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		items = append(items, toProductResponse(p))
	}
	return c.JSON(dto.ProductListResponse{Items: items, Total: len(items)})
}

// Get godoc
// @Summary      Consultar producto por id
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Param        id   path      string  true  "ID del producto"
// @Success      200  {object}  dto.ProductResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{id} [get]
func (h *ProductHandler) Get(c *fiber.Ctx) error {
	p, err := h.uc.GetProduct(c.Params("id"))
	if err != nil {
		return productError(c, err)
	}
	return c.JSON(toProductResponse(p))
}

// Rename godoc
// @Summary      Renombrar producto
// @Tags         products
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                    true  "ID del producto"
// @Param        body  body  dto.RenameProductRequest  true  "name"
// @Success      200   {object}  dto.ProductResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/products/{id}/name [patch]
func (h *ProductHandler) Rename(c *fiber.Ctx) error {
	var in dto.RenameProductRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	id := c.Params("id")
	if err := h.uc.RenameProduct(c.Context(), id, in.Name); err != nil {
		return productError(c, err)
	}
	p, err := h.uc.GetProduct(id)
	if err != nil {
		return productError(c, err)
	}
	return c.JSON(toProductResponse(p))
}

// Delete godoc
// @Summary      Eliminar producto
// @Description  El historial de producción y las transacciones asociadas se conservan.
// @Tags         products
// @Security     Bearer
// @Param        id  path  string  true  "ID del producto"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{id} [delete]
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.DeleteProduct(c.Context(), c.Params("id")); err != nil {
		return productError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
