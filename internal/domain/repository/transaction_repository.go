package repository

import "github.com/jhoicas/Produccion-api/internal/domain/entity"

// TransactionRepository puerto del log de transacciones de stock.
// Solo inserción: las transacciones nunca se editan ni se borran.
type TransactionRepository interface {
	Create(t *entity.StockTransaction) error
	// List devuelve las transacciones en orden más-reciente-primero.
	List() ([]*entity.StockTransaction, error)
}
