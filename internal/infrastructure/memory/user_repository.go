// Package memory implementa los puertos de persistencia en memoria de proceso.
// Se usa con STORE_DRIVER=memory en desarrollo y como doble de pruebas.
package memory

import (
	"context"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/jhoicas/Empleados-api/internal/domain"
	"github.com/jhoicas/Empleados-api/internal/domain/entity"
	"github.com/jhoicas/Empleados-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo cuentas en memoria con unicidad de username y email.
type UserRepo struct {
	mu    sync.RWMutex
	users map[string]entity.User
}

// NewUserRepository construye un repositorio de cuentas vacío.
func NewUserRepository() *UserRepo {
	return &UserRepo{users: make(map[string]entity.User)}
}

// Create persiste la cuenta y asigna su ID.
func (r *UserRepo) Create(_ context.Context, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Username == user.Username || strings.EqualFold(u.Email, user.Email) {
			return domain.ErrAccountExists
		}
	}
	user.ID = uuid.New().String()
	r.users[user.ID] = *user
	return nil
}

// FindByUsernameOrEmail busca por username exacto o email exacto.
func (r *UserRepo) FindByUsernameOrEmail(_ context.Context, username, email string) (*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, u := range r.users {
		if u.Username == username || u.Email == email {
			found := u
			return &found, nil
		}
	}
	return nil, nil
}

// ExistsByUsernameOrEmail indica si alguna cuenta usa el username o el email.
func (r *UserRepo) ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error) {
	u, err := r.FindByUsernameOrEmail(ctx, username, email)
	return u != nil, err
}
