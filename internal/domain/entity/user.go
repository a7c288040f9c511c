package entity

import "time"

// Roles de usuario.
const (
	RoleAdmin = "admin"
	RoleStaff = "staff"
)

// User usuario de la aplicación. El ledger solo consume su ID como actor opaco.
type User struct {
	ID           string
	Username     string
	PasswordHash string
	FullName     string
	Role         string
	Status       string // active | inactive
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
