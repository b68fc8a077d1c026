package production

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/jhoicas/Produccion-api/internal/application/inventory"
	"github.com/jhoicas/Produccion-api/internal/domain"
	"github.com/jhoicas/Produccion-api/internal/domain/entity"
	"github.com/jhoicas/Produccion-api/internal/domain/repository"
)

// Shortage faltante de un ingrediente para la cantidad solicitada.
type Shortage struct {
	MaterialName string
	Required     decimal.Decimal
	Available    decimal.Decimal
}

// Availability resultado de la verificación de stock para una producción.
type Availability struct {
	CanProduce bool
	Shortages  []Shortage
}

// InsufficientStockError producción rechazada por faltantes; lleva la lista
// estructurada para que el caller muestre exactamente qué falta.
type InsufficientStockError struct {
	Shortages []Shortage
}

func (e *InsufficientStockError) Error() string {
	parts := make([]string, 0, len(e.Shortages))
	for _, s := range e.Shortages {
		parts = append(parts, fmt.Sprintf("%s (necesita %s, hay %s)", s.MaterialName, s.Required, s.Available))
	}
	return "stock insuficiente: " + strings.Join(parts, ", ")
}

// Unwrap permite errors.Is(err, domain.ErrInsufficientStock).
func (e *InsufficientStockError) Unwrap() error { return domain.ErrInsufficientStock }

// EngineUseCase es el motor de producción: verifica factibilidad contra el
// ledger y, si alcanza, descuenta todos los materiales de la receta bajo una
// regla todo-o-nada. La verificación y el commit corren dentro de un único
// TxRunner.Run, así dos producciones concurrentes no pueden aprobar
// disponibilidad contra el mismo stock.
//
// Política permisiva documentada: las líneas de receta cuyo material ya no
// existe se omiten (no cuentan como faltante ni se descuentan).
type EngineUseCase struct {
	txRunner     inventory.TxRunner
	productRepo  repository.ProductRepository
	materialRepo repository.MaterialRepository
	logRepo      repository.ProductionLogRepository
}

// NewEngineUseCase construye el motor.
func NewEngineUseCase(
	txRunner inventory.TxRunner,
	productRepo repository.ProductRepository,
	materialRepo repository.MaterialRepository,
	logRepo repository.ProductionLogRepository,
) *EngineUseCase {
	return &EngineUseCase{txRunner: txRunner, productRepo: productRepo, materialRepo: materialRepo, logRepo: logRepo}
}

// normalizeQuantity aplica el valor por defecto (1) y valida el signo.
func normalizeQuantity(quantity decimal.Decimal) (decimal.Decimal, error) {
	if quantity.IsZero() {
		return decimal.NewFromInt(1), nil
	}
	if quantity.IsNegative() {
		return decimal.Decimal{}, fmt.Errorf("%w: la cantidad debe ser mayor a 0", domain.ErrInvalidInput)
	}
	return quantity, nil
}

// CheckAvailability calcula, por ingrediente, requerido = cantidadReceta *
// cantidadSolicitada y lo compara con el stock actual. Producto desconocido:
// no se puede producir, lista de faltantes vacía.
func (uc *EngineUseCase) CheckAvailability(ctx context.Context, productID string, quantity decimal.Decimal) (*Availability, error) {
	qty, err := normalizeQuantity(quantity)
	if err != nil {
		return nil, err
	}
	product, err := uc.productRepo.GetByID(productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return &Availability{CanProduce: false, Shortages: []Shortage{}}, nil
	}
	shortages, err := uc.collectShortages(uc.materialRepo, product, qty)
	if err != nil {
		return nil, err
	}
	return &Availability{CanProduce: len(shortages) == 0, Shortages: shortages}, nil
}

// collectShortages evalúa los faltantes de la receta con el repositorio dado
// (suelto para lecturas, atado a la tx dentro de Produce).
func (uc *EngineUseCase) collectShortages(materialRepo repository.MaterialRepository, product *entity.Product, qty decimal.Decimal) ([]Shortage, error) {
	shortages := []Shortage{}
	for _, ing := range product.Recipe {
		material, err := materialRepo.GetByID(ing.MaterialID)
		if err != nil {
			return nil, err
		}
		if material == nil {
			// referencia colgante: se omite
			continue
		}
		required := ing.Quantity.Mul(qty)
		if material.CurrentStock.LessThan(required) {
			shortages = append(shortages, Shortage{
				MaterialName: material.Name,
				Required:     required,
				Available:    material.CurrentStock,
			})
		}
	}
	return shortages, nil
}

// Produce ejecuta una producción todo-o-nada. Si algún ingrediente no alcanza
// devuelve *InsufficientStockError sin mutar nada; si alcanza, descuenta cada
// material, deja una transacción production (cantidad negativa) por material
// consumido y exactamente una entrada en el historial de producción.
func (uc *EngineUseCase) Produce(ctx context.Context, productID, userID string, quantity decimal.Decimal, notes string) (*entity.ProductionLog, error) {
	qty, err := normalizeQuantity(quantity)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	var logEntry *entity.ProductionLog
	err = uc.txRunner.Run(ctx, func(
		materialRepo repository.MaterialRepository,
		productRepo repository.ProductRepository,
		txRepo repository.TransactionRepository,
		logRepo repository.ProductionLogRepository,
	) error {
		// El producto se lee dentro de la sección crítica: un rename o un
		// cambio de receta concurrente no puede colarse entre la lectura y el
		// commit de la producción.
		product, err := productRepo.GetByID(productID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}
		// Verificación completa antes de cualquier mutación, bloqueando las
		// filas leídas: el todo-o-nada y la ausencia de doble consumo salen de
		// que chequeo y descuento ven el mismo stock dentro de la misma
		// sección crítica/transacción.
		type consumption struct {
			material *entity.Material
			consumed decimal.Decimal
		}
		consumptions := make([]consumption, 0, len(product.Recipe))
		var shortages []Shortage
		for _, ing := range product.Recipe {
			material, err := materialRepo.GetForUpdate(ing.MaterialID)
			if err != nil {
				return err
			}
			if material == nil {
				// referencia colgante: se omite
				continue
			}
			required := ing.Quantity.Mul(qty)
			if material.CurrentStock.LessThan(required) {
				shortages = append(shortages, Shortage{
					MaterialName: material.Name,
					Required:     required,
					Available:    material.CurrentStock,
				})
				continue
			}
			consumptions = append(consumptions, consumption{material: material, consumed: required})
		}
		if len(shortages) > 0 {
			return &InsufficientStockError{Shortages: shortages}
		}

		for _, c := range consumptions {
			material, consumed := c.material, c.consumed
			material.CurrentStock = material.CurrentStock.Sub(consumed)
			material.LastUpdated = now
			if err := materialRepo.Update(material); err != nil {
				return err
			}
			if err := txRepo.Create(&entity.StockTransaction{
				ID:         uuid.New().String(),
				Type:       entity.TransactionProduction,
				MaterialID: material.ID,
				ProductID:  product.ID,
				Quantity:   consumed.Neg(),
				Timestamp:  now,
				Notes:      fmt.Sprintf("Consumo para producción de %s", product.Name),
				UserID:     userID,
			}); err != nil {
				return err
			}
		}

		logEntry = &entity.ProductionLog{
			ID:               uuid.New().String(),
			ProductID:        product.ID,
			QuantityProduced: qty,
			Timestamp:        now,
			UserID:           userID,
			Notes:            notes,
		}
		return logRepo.Create(logEntry)
	})
	if err != nil {
		return nil, err
	}
	return logEntry, nil
}

// ProductInput datos para dar de alta un producto.
type ProductInput struct {
	Name     string
	Category entity.Category
	Recipe   []entity.RecipeIngredient
}

// AddProduct valida y crea un producto. El nombre es único entre todos los
// productos (global, no por categoría). ProductionCost se cachea al crear a
// partir de los costos promedio vigentes de los materiales conocidos.
func (uc *EngineUseCase) AddProduct(ctx context.Context, in ProductInput) (*entity.Product, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: el nombre es obligatorio", domain.ErrInvalidInput)
	}
	if !in.Category.Valid() {
		return nil, fmt.Errorf("%w: categoría desconocida %q", domain.ErrInvalidInput, in.Category)
	}
	if len(in.Recipe) == 0 {
		return nil, fmt.Errorf("%w: la receta necesita al menos un ingrediente", domain.ErrInvalidInput)
	}
	for _, ing := range in.Recipe {
		if ing.MaterialID == "" || !ing.Quantity.GreaterThan(decimal.Zero) {
			return nil, fmt.Errorf("%w: cada ingrediente requiere material y cantidad mayor a 0", domain.ErrInvalidInput)
		}
	}

	var product *entity.Product
	err := uc.txRunner.Run(ctx, func(
		materialRepo repository.MaterialRepository,
		productRepo repository.ProductRepository,
		_ repository.TransactionRepository,
		_ repository.ProductionLogRepository,
	) error {
		// Chequeo de duplicado y alta dentro de la misma sección crítica: dos
		// altas concurrentes con el mismo nombre no pueden pasar ambas.
		existing, err := productRepo.GetByName(name)
		if err != nil {
			return err
		}
		if existing != nil {
			return domain.ErrDuplicateName
		}

		cost := decimal.Zero
		for _, ing := range in.Recipe {
			material, err := materialRepo.GetByID(ing.MaterialID)
			if err != nil {
				return err
			}
			if material == nil {
				continue
			}
			cost = cost.Add(ing.Quantity.Mul(material.CostPerUnit))
		}

		now := time.Now()
		product = &entity.Product{
			ID:             uuid.New().String(),
			Name:           name,
			Category:       in.Category,
			Recipe:         in.Recipe,
			ProductionCost: cost,
			CreatedAt:      now,
			UpdatedAt:      now,
		}
		return productRepo.Create(product)
	})
	if err != nil {
		return nil, err
	}
	return product, nil
}

// RenameProduct cambia el nombre validando unicidad (excluyéndose a sí mismo).
func (uc *EngineUseCase) RenameProduct(ctx context.Context, productID, newName string) error {
	name := strings.TrimSpace(newName)
	if name == "" {
		return fmt.Errorf("%w: el nombre es obligatorio", domain.ErrInvalidInput)
	}
	return uc.txRunner.Run(ctx, func(
		_ repository.MaterialRepository,
		productRepo repository.ProductRepository,
		_ repository.TransactionRepository,
		_ repository.ProductionLogRepository,
	) error {
		product, err := productRepo.GetByID(productID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}
		existing, err := productRepo.GetByName(name)
		if err != nil {
			return err
		}
		if existing != nil && existing.ID != productID {
			return domain.ErrDuplicateName
		}
		product.Name = name
		product.UpdatedAt = time.Now()
		return productRepo.Update(product)
	})
}

// DeleteProduct elimina en firme. Las transacciones y el historial de
// producción que lo referencian quedan intactos (log inmutable).
func (uc *EngineUseCase) DeleteProduct(ctx context.Context, productID string) error {
	return uc.txRunner.Run(ctx, func(
		_ repository.MaterialRepository,
		productRepo repository.ProductRepository,
		_ repository.TransactionRepository,
		_ repository.ProductionLogRepository,
	) error {
		product, err := productRepo.GetByID(productID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}
		return productRepo.Delete(productID)
	})
}

// GetProduct obtiene un producto por id.
func (uc *EngineUseCase) GetProduct(id string) (*entity.Product, error) {
	product, err := uc.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	return product, nil
}

// ListProducts lista todos los productos.
func (uc *EngineUseCase) ListProducts() ([]*entity.Product, error) {
	return uc.productRepo.List()
}

// ListProductionLogs devuelve el historial de producción, más reciente primero.
func (uc *EngineUseCase) ListProductionLogs() ([]*entity.ProductionLog, error) {
	return uc.logRepo.List()
}
