package repository

import "github.com/jhoicas/Produccion-api/internal/domain/entity"

// UserRepository puerto de persistencia de usuarios (solo capa auth).
type UserRepository interface {
	Create(u *entity.User) error
	GetByID(id string) (*entity.User, error)
	FindByEmail(email string) (*entity.User, error)
}
