package memory

import (
	"context"

	"github.com/jhoicas/Produccion-api/internal/application/inventory"
	"github.com/jhoicas/Produccion-api/internal/domain/repository"
)

var _ inventory.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks como una sección crítica sobre el Store: toma el
// mutex una vez y pasa repos sin locking propio. No hay rollback; los casos de
// uso validan antes de mutar (el todo-o-nada de una producción sale de
// verificar la disponibilidad completa antes del primer descuento).
type TxRunner struct {
	store *Store
}

// NewTxRunner construye el runner sobre el Store.
func NewTxRunner(store *Store) *TxRunner {
	return &TxRunner{store: store}
}

// Run toma el mutex del Store y ejecuta fn con repos atados a esa sección
// crítica: ningún otro mutador se intercala entre verificación y commit.
func (r *TxRunner) Run(ctx context.Context, fn func(
	materialRepo repository.MaterialRepository,
	productRepo repository.ProductRepository,
	txRepo repository.TransactionRepository,
	logRepo repository.ProductionLogRepository,
) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	return fn(
		&MaterialRepo{store: r.store},
		&ProductRepo{store: r.store},
		&TransactionRepo{store: r.store},
		&ProductionLogRepo{store: r.store},
	)
}
