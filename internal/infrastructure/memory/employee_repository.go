package memory

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/text/cases"

	"github.com/jhoicas/Empleados-api/internal/domain"
	"github.com/jhoicas/Empleados-api/internal/domain/entity"
	"github.com/jhoicas/Empleados-api/internal/domain/repository"
)

var _ repository.EmployeeRepository = (*EmployeeRepo)(nil)

type employeeRecord struct {
	employee entity.Employee
	seq      uint64 // desempate de orden para created_at iguales
}

// EmployeeRepo empleados en memoria con unicidad de email.
type EmployeeRepo struct {
	mu      sync.RWMutex
	records map[string]*employeeRecord
	seq     uint64
}

// NewEmployeeRepository construye un repositorio de empleados vacío.
func NewEmployeeRepository() *EmployeeRepo {
	return &EmployeeRepo{records: make(map[string]*employeeRecord)}
}

// Create persiste el empleado y asigna su ID.
func (r *EmployeeRepo) Create(_ context.Context, e *entity.Employee) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.emailTaken(e.Email, "") {
		return domain.ErrEmployeeEmailExists
	}
	e.ID = uuid.New().String()
	r.seq++
	r.records[e.ID] = &employeeRecord{employee: *e, seq: r.seq}
	return nil
}

// GetByID devuelve (nil, nil) si no existe.
func (r *EmployeeRepo) GetByID(_ context.Context, id string) (*entity.Employee, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	rec, ok := r.records[id]
	if !ok {
		return nil, nil
	}
	e := rec.employee
	return &e, nil
}

// GetByEmail devuelve (nil, nil) si no existe.
func (r *EmployeeRepo) GetByEmail(_ context.Context, email string) (*entity.Employee, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, rec := range r.records {
		if rec.employee.Email == email {
			e := rec.employee
			return &e, nil
		}
	}
	return nil, nil
}

// List devuelve todos los empleados, más recientes primero.
func (r *EmployeeRepo) List(_ context.Context) ([]*entity.Employee, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.collect(func(*entity.Employee) bool { return true }), nil
}

// Search filtra por coincidencia parcial sin distinguir mayúsculas.
func (r *EmployeeRepo) Search(_ context.Context, f repository.EmployeeFilter) ([]*entity.Employee, error) {
	fold := cases.Fold()
	designation := fold.String(f.Designation)
	department := fold.String(f.Department)

	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.collect(func(e *entity.Employee) bool {
		if designation != "" && !strings.Contains(fold.String(e.Designation), designation) {
			return false
		}
		if department != "" && !strings.Contains(fold.String(e.Department), department) {
			return false
		}
		return true
	}), nil
}

// Update aplica los campos presentes del patch.
func (r *EmployeeRepo) Update(_ context.Context, id string, p repository.EmployeePatch) (*entity.Employee, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	rec, ok := r.records[id]
	if !ok {
		return nil, nil
	}
	if p.Email != nil && r.emailTaken(*p.Email, id) {
		return nil, domain.ErrEmployeeEmailExists
	}
	e := &rec.employee
	setString(&e.FirstName, p.FirstName)
	setString(&e.LastName, p.LastName)
	setString(&e.Email, p.Email)
	setString(&e.Gender, p.Gender)
	setString(&e.Designation, p.Designation)
	setString(&e.Department, p.Department)
	setString(&e.Photo, p.Photo)
	if p.Salary != nil {
		e.Salary = *p.Salary
	}
	if p.DateOfJoining != nil {
		e.DateOfJoining = *p.DateOfJoining
	}
	if !p.UpdatedAt.IsZero() {
		e.UpdatedAt = p.UpdatedAt
	}
	out := *e
	return &out, nil
}

// Delete elimina y devuelve el empleado borrado.
func (r *EmployeeRepo) Delete(_ context.Context, id string) (*entity.Employee, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	rec, ok := r.records[id]
	if !ok {
		return nil, nil
	}
	delete(r.records, id)
	e := rec.employee
	return &e, nil
}

// emailTaken requiere el lock tomado.
func (r *EmployeeRepo) emailTaken(email, exceptID string) bool {
	for id, rec := range r.records {
		if id != exceptID && rec.employee.Email == email {
			return true
		}
	}
	return false
}

// collect requiere el lock tomado. Ordena por created_at descendente.
func (r *EmployeeRepo) collect(keep func(*entity.Employee) bool) []*entity.Employee {
	recs := make([]*employeeRecord, 0, len(r.records))
	for _, rec := range r.records {
		if keep(&rec.employee) {
			recs = append(recs, rec)
		}
	}
	sort.Slice(recs, func(i, j int) bool {
		a, b := recs[i], recs[j]
		if !a.employee.CreatedAt.Equal(b.employee.CreatedAt) {
			return a.employee.CreatedAt.After(b.employee.CreatedAt)
		}
		return a.seq > b.seq
	})
	out := make([]*entity.Employee, len(recs))
	for i, rec := range recs {
		e := rec.employee
		out[i] = &e
	}
	return out
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}
