package repository

import "github.com/jhoicas/Produccion-api/internal/domain/entity"

// MaterialRepository puerto de persistencia para materias primas.
// Los Get devuelven (nil, nil) cuando el material no existe.
type MaterialRepository interface {
	Create(m *entity.Material) error
	GetByID(id string) (*entity.Material, error)
	// GetForUpdate obtiene el material bloqueando su fila cuando el backend lo
	// soporta (SELECT FOR UPDATE); en memoria equivale a GetByID porque la
	// sección crítica cubre todo el TxRunner.Run.
	GetForUpdate(id string) (*entity.Material, error)
	// GetByName busca por nombre normalizado (sin distinguir mayúsculas).
	GetByName(name string) (*entity.Material, error)
	List() ([]*entity.Material, error)
	Update(m *entity.Material) error
	Delete(id string) error
}
