package repository

import (
	"context"
	"time"

	"github.com/jhoicas/Empleados-api/internal/domain/entity"
)

// EmployeeFilter criterios de búsqueda: coincidencia parcial sin distinguir mayúsculas.
// Un campo vacío no filtra; ambos presentes se combinan con AND.
type EmployeeFilter struct {
	Designation string
	Department  string
}

// EmployeePatch actualización parcial: solo se aplican los campos no nil.
type EmployeePatch struct {
	FirstName     *string
	LastName      *string
	Email         *string
	Gender        *string
	Designation   *string
	Salary        *float64
	DateOfJoining *time.Time
	Department    *string
	Photo         *string
	UpdatedAt     time.Time
}

// EmployeeRepository define el puerto de persistencia para Employee (DIP).
// Los listados se ordenan por created_at descendente.
type EmployeeRepository interface {
	// Create persiste el empleado y asigna su ID. Devuelve domain.ErrEmployeeEmailExists
	// si el email ya está registrado.
	Create(ctx context.Context, employee *entity.Employee) error
	GetByID(ctx context.Context, id string) (*entity.Employee, error)
	GetByEmail(ctx context.Context, email string) (*entity.Employee, error)
	List(ctx context.Context) ([]*entity.Employee, error)
	Search(ctx context.Context, filter EmployeeFilter) ([]*entity.Employee, error)
	// Update aplica el patch y devuelve el documento resultante, o (nil, nil) si no existe.
	Update(ctx context.Context, id string, patch EmployeePatch) (*entity.Employee, error)
	// Delete elimina y devuelve el documento borrado, o (nil, nil) si no existe.
	Delete(ctx context.Context, id string) (*entity.Employee, error)
}
