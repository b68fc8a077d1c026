package entity

import "time"

// Roles de usuario.
const (
	RoleAdmin   = "admin"
	RoleManager = "manager"
	RoleStaff   = "staff"
)

// User usuario del sistema; solo participa en la capa externa (auth HTTP),
// el motor de inventario recibe el UserID como dato.
type User struct {
	ID           string
	Email        string
	PasswordHash string
	Name         string
	Role         string // admin, manager, staff
	Status       string // active, inactive
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
