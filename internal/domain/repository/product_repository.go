package repository

import "github.com/jhoicas/Produccion-api/internal/domain/entity"

// ProductRepository puerto de persistencia para productos y sus recetas.
type ProductRepository interface {
	Create(p *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	GetByName(name string) (*entity.Product, error)
	List() ([]*entity.Product, error)
	Update(p *entity.Product) error
	Delete(id string) error
}
