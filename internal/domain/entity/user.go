package entity

import "time"

// Roles de usuario.
const (
	RoleAdmin   = "admin"
	RoleCashier = "cashier"
)

// User cuenta del sistema (actor de las revisiones de orden).
type User struct {
	ID           string
	Email        string
	PasswordHash string
	Name         string
	Role         string
	Status       string // active, disabled
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
