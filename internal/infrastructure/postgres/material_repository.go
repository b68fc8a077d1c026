package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/Produccion-api/internal/domain"
	"github.com/jhoicas/Produccion-api/internal/domain/entity"
	"github.com/jhoicas/Produccion-api/internal/domain/repository"
)

var _ repository.MaterialRepository = (*MaterialRepo)(nil)

const materialColumns = `id, name, current_stock, unit, min_stock_level, cost_per_unit, last_updated`

// MaterialRepo implementación de MaterialRepository sobre PostgreSQL (usable con pool o tx).
type MaterialRepo struct {
	q Querier
}

// NewMaterialRepository construye el adaptador. Pasar pool o tx (Querier).
func NewMaterialRepository(q Querier) *MaterialRepo {
	return &MaterialRepo{q: q}
}

// Create persiste una materia prima. name_key guarda el nombre plegado con
// el mismo case folding Unicode que usa el driver en memoria; la unicidad la
// respalda un índice único sobre esa columna.
func (r *MaterialRepo) Create(m *entity.Material) error {
	query := `
		INSERT INTO materials (` + materialColumns + `, name_key)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		m.ID, m.Name, m.CurrentStock, m.Unit, m.MinStockLevel, m.CostPerUnit, m.LastUpdated,
		entity.NormalizeName(m.Name),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateName
		}
		return fmt.Errorf("insert material: %w", err)
	}
	return nil
}

func (r *MaterialRepo) getWhere(clause string, lock bool, args ...any) (*entity.Material, error) {
	query := `SELECT ` + materialColumns + ` FROM materials WHERE ` + clause
	if lock {
		query += ` FOR UPDATE`
	}
	var m entity.Material
	err := r.q.QueryRow(context.Background(), query, args...).Scan(
		&m.ID, &m.Name, &m.CurrentStock, &m.Unit, &m.MinStockLevel, &m.CostPerUnit, &m.LastUpdated,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get material: %w", err)
	}
	return &m, nil
}

// GetByID obtiene una materia prima por id.
func (r *MaterialRepo) GetByID(id string) (*entity.Material, error) {
	return r.getWhere(`id = $1`, false, id)
}

// GetForUpdate obtiene la materia prima bloqueando la fila (SELECT FOR UPDATE)
// para evitar condiciones de carrera entre verificación y descuento.
func (r *MaterialRepo) GetForUpdate(id string) (*entity.Material, error) {
	return r.getWhere(`id = $1`, true, id)
}

// GetByName busca por nombre plegado, sin distinguir mayúsculas.
func (r *MaterialRepo) GetByName(name string) (*entity.Material, error) {
	return r.getWhere(`name_key = $1`, false, entity.NormalizeName(name))
}

// List lista todas las materias primas ordenadas por nombre.
func (r *MaterialRepo) List() ([]*entity.Material, error) {
	query := `SELECT ` + materialColumns + ` FROM materials ORDER BY name`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list materials: %w", err)
	}
	defer rows.Close()

	var out []*entity.Material
	for rows.Next() {
		var m entity.Material
		if err := rows.Scan(&m.ID, &m.Name, &m.CurrentStock, &m.Unit, &m.MinStockLevel, &m.CostPerUnit, &m.LastUpdated); err != nil {
			return nil, fmt.Errorf("scan material: %w", err)
		}
		out = append(out, &m)
	}
	return out, rows.Err()
}

// Update actualiza una materia prima existente.
func (r *MaterialRepo) Update(m *entity.Material) error {
	query := `
		UPDATE materials
		SET name = $2, name_key = $3, current_stock = $4, unit = $5, min_stock_level = $6, cost_per_unit = $7, last_updated = $8
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		m.ID, m.Name, entity.NormalizeName(m.Name), m.CurrentStock, m.Unit, m.MinStockLevel, m.CostPerUnit, m.LastUpdated,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateName
		}
		return fmt.Errorf("update material: %w", err)
	}
	return nil
}

// Delete elimina en firme. No hay cascada sobre recetas: las referencias quedan colgantes.
func (r *MaterialRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM materials WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete material: %w", err)
	}
	return nil
}
