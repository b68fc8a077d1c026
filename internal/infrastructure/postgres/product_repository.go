package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/Produccion-api/internal/domain"
	"github.com/jhoicas/Produccion-api/internal/domain/entity"
	"github.com/jhoicas/Produccion-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

const productColumns = `id, name, category, recipe, production_cost, created_at, updated_at`

// ProductRepo implementación de ProductRepository sobre PostgreSQL (usable con
// pool o tx). La receta se guarda como JSONB.
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// Create persiste un producto con su receta. name_key guarda el nombre
// plegado con el mismo case folding Unicode que usa el driver en memoria.
func (r *ProductRepo) Create(p *entity.Product) error {
	recipe, err := json.Marshal(p.Recipe)
	if err != nil {
		return fmt.Errorf("marshal recipe: %w", err)
	}
	query := `
		INSERT INTO products (` + productColumns + `, name_key)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err = r.q.Exec(context.Background(), query,
		p.ID, p.Name, string(p.Category), recipe, p.ProductionCost, p.CreatedAt, p.UpdatedAt,
		entity.NormalizeName(p.Name),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateName
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

func (r *ProductRepo) getWhere(clause string, args ...any) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE ` + clause
	var p entity.Product
	var category string
	var recipe []byte
	err := r.q.QueryRow(context.Background(), query, args...).Scan(
		&p.ID, &p.Name, &category, &recipe, &p.ProductionCost, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	p.Category = entity.Category(category)
	if err := json.Unmarshal(recipe, &p.Recipe); err != nil {
		return nil, fmt.Errorf("unmarshal recipe: %w", err)
	}
	return &p, nil
}

// GetByID obtiene un producto por id.
func (r *ProductRepo) GetByID(id string) (*entity.Product, error) {
	return r.getWhere(`id = $1`, id)
}

// GetByName busca por nombre plegado, sin distinguir mayúsculas.
func (r *ProductRepo) GetByName(name string) (*entity.Product, error) {
	return r.getWhere(`name_key = $1`, entity.NormalizeName(name))
}

// List lista todos los productos ordenados por nombre.
func (r *ProductRepo) List() ([]*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products ORDER BY name`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()

	var out []*entity.Product
	for rows.Next() {
		var p entity.Product
		var category string
		var recipe []byte
		if err := rows.Scan(&p.ID, &p.Name, &category, &recipe, &p.ProductionCost, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		p.Category = entity.Category(category)
		if err := json.Unmarshal(recipe, &p.Recipe); err != nil {
			return nil, fmt.Errorf("unmarshal recipe: %w", err)
		}
		out = append(out, &p)
	}
	return out, rows.Err()
}

// Update actualiza un producto existente (incluida la receta).
func (r *ProductRepo) Update(p *entity.Product) error {
	recipe, err := json.Marshal(p.Recipe)
	if err != nil {
		return fmt.Errorf("marshal recipe: %w", err)
	}
	query := `
		UPDATE products
		SET name = $2, name_key = $3, category = $4, recipe = $5, production_cost = $6, updated_at = $7
		WHERE id = $1`
	_, err = r.q.Exec(context.Background(), query,
		p.ID, p.Name, entity.NormalizeName(p.Name), string(p.Category), recipe, p.ProductionCost, p.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateName
		}
		return fmt.Errorf("update product: %w", err)
	}
	return nil
}

// Delete elimina en firme.
func (r *ProductRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	return nil
}
