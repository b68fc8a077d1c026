package inventory

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/jhoicas/Produccion-api/internal/domain"
	"github.com/jhoicas/Produccion-api/internal/domain/entity"
	domaininv "github.com/jhoicas/Produccion-api/internal/domain/inventory"
	"github.com/jhoicas/Produccion-api/internal/domain/repository"
)

// LedgerUseCase es el libro mayor de materias primas: altas, compras, ajustes,
// renombres y bajas, con su transacción correspondiente en el log inmutable.
// A diferencia del comportamiento de referencia, operar sobre un id inexistente
// devuelve ErrNotFound en vez de no hacer nada en silencio.
type LedgerUseCase struct {
	txRunner     TxRunner
	materialRepo repository.MaterialRepository
	txRepo       repository.TransactionRepository
}

// NewLedgerUseCase construye el caso de uso.
func NewLedgerUseCase(txRunner TxRunner, materialRepo repository.MaterialRepository, txRepo repository.TransactionRepository) *LedgerUseCase {
	return &LedgerUseCase{txRunner: txRunner, materialRepo: materialRepo, txRepo: txRepo}
}

// MaterialInput datos para dar de alta una materia prima.
type MaterialInput struct {
	Name          string
	Unit          string
	CostPerUnit   decimal.Decimal
	MinStockLevel decimal.Decimal
	CurrentStock  decimal.Decimal
}

// AddMaterial valida y crea una materia prima. El nombre es único entre todos
// los materiales sin distinguir mayúsculas.
func (uc *LedgerUseCase) AddMaterial(ctx context.Context, in MaterialInput) (*entity.Material, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: el nombre es obligatorio", domain.ErrInvalidInput)
	}
	if !in.CostPerUnit.GreaterThan(decimal.Zero) {
		return nil, fmt.Errorf("%w: el costo unitario debe ser mayor a 0", domain.ErrInvalidInput)
	}
	if !in.MinStockLevel.GreaterThan(decimal.Zero) {
		return nil, fmt.Errorf("%w: el stock mínimo debe ser mayor a 0", domain.ErrInvalidInput)
	}
	if in.CurrentStock.IsNegative() {
		return nil, fmt.Errorf("%w: el stock inicial no puede ser negativo", domain.ErrInvalidInput)
	}

	var material *entity.Material
	err := uc.txRunner.Run(ctx, func(
		materialRepo repository.MaterialRepository,
		_ repository.ProductRepository,
		_ repository.TransactionRepository,
		_ repository.ProductionLogRepository,
	) error {
		existing, err := materialRepo.GetByName(name)
		if err != nil {
			return err
		}
		if existing != nil {
			return domain.ErrDuplicateName
		}
		material = &entity.Material{
			ID:            uuid.New().String(),
			Name:          name,
			CurrentStock:  in.CurrentStock,
			Unit:          in.Unit,
			MinStockLevel: in.MinStockLevel,
			CostPerUnit:   in.CostPerUnit,
			LastUpdated:   time.Now(),
		}
		return materialRepo.Create(material)
	})
	if err != nil {
		return nil, err
	}
	return material, nil
}

// AddStock registra una compra: suma cantidad al stock y, si se informó un
// precio mayor a 0, recalcula el costo promedio ponderado. Deja exactamente una
// transacción de tipo purchase con la cantidad sin signo.
func (uc *LedgerUseCase) AddStock(ctx context.Context, materialID, userID string, quantity decimal.Decimal, purchasePrice *decimal.Decimal, notes string) error {
	if !quantity.GreaterThan(decimal.Zero) {
		return fmt.Errorf("%w: la cantidad debe ser mayor a 0", domain.ErrInvalidInput)
	}
	now := time.Now()
	return uc.txRunner.Run(ctx, func(
		materialRepo repository.MaterialRepository,
		_ repository.ProductRepository,
		txRepo repository.TransactionRepository,
		_ repository.ProductionLogRepository,
	) error {
		material, err := materialRepo.GetForUpdate(materialID)
		if err != nil {
			return err
		}
		if material == nil {
			return domain.ErrNotFound
		}
		if purchasePrice != nil && purchasePrice.GreaterThan(decimal.Zero) {
			material.CostPerUnit = domaininv.CostCalculator(material.CurrentStock, material.CostPerUnit, quantity, *purchasePrice)
		}
		material.CurrentStock = material.CurrentStock.Add(quantity)
		material.LastUpdated = now
		if err := materialRepo.Update(material); err != nil {
			return err
		}
		return txRepo.Create(&entity.StockTransaction{
			ID:            uuid.New().String(),
			Type:          entity.TransactionPurchase,
			MaterialID:    materialID,
			Quantity:      quantity,
			PurchasePrice: purchasePrice,
			Timestamp:     now,
			Notes:         notes,
			UserID:        userID,
		})
	})
}

// AdjustStock fija el stock en un valor absoluto (no es un incremento) y deja
// una transacción adjustment con la diferencia con signo. No toca el costo.
func (uc *LedgerUseCase) AdjustStock(ctx context.Context, materialID, userID string, newStock decimal.Decimal, reason string) error {
	if newStock.IsNegative() {
		return fmt.Errorf("%w: el stock no puede ser negativo", domain.ErrInvalidInput)
	}
	now := time.Now()
	return uc.txRunner.Run(ctx, func(
		materialRepo repository.MaterialRepository,
		_ repository.ProductRepository,
		txRepo repository.TransactionRepository,
		_ repository.ProductionLogRepository,
	) error {
		material, err := materialRepo.GetForUpdate(materialID)
		if err != nil {
			return err
		}
		if material == nil {
			return domain.ErrNotFound
		}
		difference := newStock.Sub(material.CurrentStock)
		material.CurrentStock = newStock
		material.LastUpdated = now
		if err := materialRepo.Update(material); err != nil {
			return err
		}
		return txRepo.Create(&entity.StockTransaction{
			ID:         uuid.New().String(),
			Type:       entity.TransactionAdjustment,
			MaterialID: materialID,
			Quantity:   difference,
			Timestamp:  now,
			Notes:      reason,
			UserID:     userID,
		})
	})
}

// UpdateCost corrige el costo unitario. Es metadato, no un evento de stock:
// no deja transacción en el log.
func (uc *LedgerUseCase) UpdateCost(ctx context.Context, materialID string, newCost decimal.Decimal) error {
	if !newCost.GreaterThan(decimal.Zero) {
		return fmt.Errorf("%w: el costo debe ser mayor a 0", domain.ErrInvalidInput)
	}
	return uc.txRunner.Run(ctx, func(
		materialRepo repository.MaterialRepository,
		_ repository.ProductRepository,
		_ repository.TransactionRepository,
		_ repository.ProductionLogRepository,
	) error {
		material, err := materialRepo.GetForUpdate(materialID)
		if err != nil {
			return err
		}
		if material == nil {
			return domain.ErrNotFound
		}
		material.CostPerUnit = newCost
		material.LastUpdated = time.Now()
		return materialRepo.Update(material)
	})
}

// RenameMaterial cambia el nombre validando unicidad (excluyéndose a sí mismo).
func (uc *LedgerUseCase) RenameMaterial(ctx context.Context, materialID, newName string) error {
	name := strings.TrimSpace(newName)
	if name == "" {
		return fmt.Errorf("%w: el nombre es obligatorio", domain.ErrInvalidInput)
	}
	return uc.txRunner.Run(ctx, func(
		materialRepo repository.MaterialRepository,
		_ repository.ProductRepository,
		_ repository.TransactionRepository,
		_ repository.ProductionLogRepository,
	) error {
		material, err := materialRepo.GetForUpdate(materialID)
		if err != nil {
			return err
		}
		if material == nil {
			return domain.ErrNotFound
		}
		existing, err := materialRepo.GetByName(name)
		if err != nil {
			return err
		}
		if existing != nil && existing.ID != materialID {
			return domain.ErrDuplicateName
		}
		material.Name = name
		material.LastUpdated = time.Now()
		return materialRepo.Update(material)
	})
}

// DeleteMaterial elimina en firme. No hay cascada: si alguna receta referencia
// este id, la referencia queda colgante y el motor de producción la omite.
func (uc *LedgerUseCase) DeleteMaterial(ctx context.Context, materialID string) error {
	return uc.txRunner.Run(ctx, func(
		materialRepo repository.MaterialRepository,
		_ repository.ProductRepository,
		_ repository.TransactionRepository,
		_ repository.ProductionLogRepository,
	) error {
		material, err := materialRepo.GetForUpdate(materialID)
		if err != nil {
			return err
		}
		if material == nil {
			return domain.ErrNotFound
		}
		return materialRepo.Delete(materialID)
	})
}

// GetMaterial obtiene una materia prima por id.
func (uc *LedgerUseCase) GetMaterial(id string) (*entity.Material, error) {
	material, err := uc.materialRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if material == nil {
		return nil, domain.ErrNotFound
	}
	return material, nil
}

// ListMaterials lista todas las materias primas.
func (uc *LedgerUseCase) ListMaterials() ([]*entity.Material, error) {
	return uc.materialRepo.List()
}

// LowStockMaterials devuelve los materiales en o bajo su nivel mínimo.
func (uc *LedgerUseCase) LowStockMaterials() ([]*entity.Material, error) {
	materials, err := uc.materialRepo.List()
	if err != nil {
		return nil, err
	}
	return domaininv.LowStockItems(materials), nil
}

// ListTransactions devuelve el log de transacciones, más reciente primero.
func (uc *LedgerUseCase) ListTransactions() ([]*entity.StockTransaction, error) {
	return uc.txRepo.List()
}
