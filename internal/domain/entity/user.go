package entity

import "time"

// Roles válidos para User (personal de la clínica).
const (
	RoleAdmin         = "admin"
	RoleVeterinario   = "veterinario"
	RoleRecepcionista = "recepcionista"
)

// User representa un usuario del personal con acceso al sistema.
type User struct {
	ID           string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Name         string
	Role         string // admin, veterinario, recepcionista
	Status       string // active, inactive
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
