package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/Produccion-api/internal/domain/entity"
	"github.com/jhoicas/Produccion-api/internal/domain/repository"
)

var _ repository.TransactionRepository = (*TransactionRepo)(nil)

// TransactionRepo implementación del log de transacciones sobre PostgreSQL.
// Solo INSERT y SELECT: el log es inmutable.
type TransactionRepo struct {
	q Querier
}

// NewTransactionRepository construye el adaptador. Pasar pool o tx (Querier).
func NewTransactionRepository(q Querier) *TransactionRepo {
	return &TransactionRepo{q: q}
}

// Create persiste una transacción de stock.
func (r *TransactionRepo) Create(t *entity.StockTransaction) error {
	query := `
		INSERT INTO stock_transactions (id, type, material_id, product_id, quantity, purchase_price, timestamp, notes, user_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	materialID := nullable(t.MaterialID)
	productID := nullable(t.ProductID)
	_, err := r.q.Exec(context.Background(), query,
		t.ID, string(t.Type), materialID, productID, t.Quantity, t.PurchasePrice, t.Timestamp, t.Notes, t.UserID,
	)
	if err != nil {
		return fmt.Errorf("insert stock transaction: %w", err)
	}
	return nil
}

// List devuelve las transacciones en orden más-reciente-primero.
func (r *TransactionRepo) List() ([]*entity.StockTransaction, error) {
	query := `
		SELECT id, type, material_id, product_id, quantity, purchase_price, timestamp, notes, user_id
		FROM stock_transactions ORDER BY timestamp DESC, id DESC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list stock transactions: %w", err)
	}
	defer rows.Close()

	var out []*entity.StockTransaction
	for rows.Next() {
		var t entity.StockTransaction
		var typ string
		var materialID, productID *string
		if err := rows.Scan(&t.ID, &typ, &materialID, &productID, &t.Quantity, &t.PurchasePrice, &t.Timestamp, &t.Notes, &t.UserID); err != nil {
			return nil, fmt.Errorf("scan stock transaction: %w", err)
		}
		t.Type = entity.TransactionType(typ)
		if materialID != nil {
			t.MaterialID = *materialID
		}
		if productID != nil {
			t.ProductID = *productID
		}
		out = append(out, &t)
	}
	return out, rows.Err()
}

// nullable convierte "" en NULL para columnas opcionales.
func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
