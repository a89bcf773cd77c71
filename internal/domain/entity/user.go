package entity

import "time"

// User representa una cuenta de acceso al sistema.
type User struct {
	ID           string
	Username     string // único
	Email        string // único, en minúsculas
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
