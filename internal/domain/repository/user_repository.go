package repository

import (
	"context"

	"github.com/jhoicas/Empleados-api/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para cuentas (DIP).
type UserRepository interface {
	// Create persiste la cuenta y asigna su ID. Devuelve domain.ErrAccountExists
	// si el índice único de username o email lo rechaza.
	Create(ctx context.Context, user *entity.User) error
	// FindByUsernameOrEmail busca una cuenta cuyo username sea username o cuyo email sea email.
	// Devuelve (nil, nil) si no existe.
	FindByUsernameOrEmail(ctx context.Context, username, email string) (*entity.User, error)
	ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error)
}
