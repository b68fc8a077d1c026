package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/Produccion-api/internal/domain/entity"
	"github.com/jhoicas/Produccion-api/internal/domain/repository"
)

var _ repository.ProductionLogRepository = (*ProductionLogRepo)(nil)

// ProductionLogRepo implementación del historial de producción sobre PostgreSQL.
type ProductionLogRepo struct {
	q Querier
}

// NewProductionLogRepository construye el adaptador. Pasar pool o tx (Querier).
func NewProductionLogRepository(q Querier) *ProductionLogRepo {
	return &ProductionLogRepo{q: q}
}

// Create persiste una entrada del historial de producción.
func (r *ProductionLogRepo) Create(l *entity.ProductionLog) error {
	query := `
		INSERT INTO production_logs (id, product_id, quantity_produced, timestamp, user_id, notes)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		l.ID, l.ProductID, l.QuantityProduced, l.Timestamp, l.UserID, l.Notes,
	)
	if err != nil {
		return fmt.Errorf("insert production log: %w", err)
	}
	return nil
}

// List devuelve las entradas en orden más-reciente-primero.
func (r *ProductionLogRepo) List() ([]*entity.ProductionLog, error) {
	query := `
		SELECT id, product_id, quantity_produced, timestamp, user_id, notes
		FROM production_logs ORDER BY timestamp DESC, id DESC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list production logs: %w", err)
	}
	defer rows.Close()

	var out []*entity.ProductionLog
	for rows.Next() {
		var l entity.ProductionLog
		if err := rows.Scan(&l.ID, &l.ProductID, &l.QuantityProduced, &l.Timestamp, &l.UserID, &l.Notes); err != nil {
			return nil, fmt.Errorf("scan production log: %w", err)
		}
		out = append(out, &l)
	}
	return out, rows.Err()
}
