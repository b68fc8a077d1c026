package inventory

import (
	"context"

	"github.com/jhoicas/Produccion-api/internal/domain/repository"
)

// TxRunner ejecuta una función de forma atómica, pasando repositorios atados a
// ese ámbito. En PostgreSQL es una transacción (Commit/Rollback); en memoria es
// una sección crítica bajo el mutex del Store. Toda mutación del ledger y del
// motor de producción pasa por aquí: chequeo de duplicados y escritura, o
// verificación y commit de una producción, nunca se intercalan con otro
// mutador.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		materialRepo repository.MaterialRepository,
		productRepo repository.ProductRepository,
		txRepo repository.TransactionRepository,
		logRepo repository.ProductionLogRepository,
	) error) error
}
