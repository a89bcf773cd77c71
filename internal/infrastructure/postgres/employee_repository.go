package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/Empleados-api/internal/domain"
	"github.com/jhoicas/Empleados-api/internal/domain/entity"
	"github.com/jhoicas/Empleados-api/internal/domain/repository"
)

var _ repository.EmployeeRepository = (*EmployeeRepo)(nil)

const employeeColumns = `id, first_name, last_name, email, gender, designation, salary,
	date_of_joining, department, employee_photo, created_at, updated_at`

const newestFirst = ` ORDER BY created_at DESC, seq DESC`

// EmployeeRepo implementación del puerto EmployeeRepository sobre PostgreSQL.
type EmployeeRepo struct {
	pool *pgxpool.Pool
}

// NewEmployeeRepository construye el adaptador de persistencia para empleados.
func NewEmployeeRepository(pool *pgxpool.Pool) *EmployeeRepo {
	return &EmployeeRepo{pool: pool}
}

// Create persiste un nuevo empleado.
func (r *EmployeeRepo) Create(ctx context.Context, e *entity.Employee) error {
	id := uuid.New().String()
	query := `
		INSERT INTO employees (` + employeeColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.pool.Exec(ctx, query,
		id, e.FirstName, e.LastName, e.Email, e.Gender, e.Designation, e.Salary,
		e.DateOfJoining, e.Department, e.Photo, e.CreatedAt, e.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmployeeEmailExists
		}
		return fmt.Errorf("insert employee: %w", err)
	}
	e.ID = id
	return nil
}

// GetByID obtiene un empleado por ID.
func (r *EmployeeRepo) GetByID(ctx context.Context, id string) (*entity.Employee, error) {
	return r.queryOne(ctx, `SELECT `+employeeColumns+` FROM employees WHERE id = $1`, id)
}

// GetByEmail obtiene un empleado por email.
func (r *EmployeeRepo) GetByEmail(ctx context.Context, email string) (*entity.Employee, error) {
	return r.queryOne(ctx, `SELECT `+employeeColumns+` FROM employees WHERE email = $1`, email)
}

// List lista todos los empleados, más recientes primero.
func (r *EmployeeRepo) List(ctx context.Context) ([]*entity.Employee, error) {
	return r.query(ctx, `SELECT `+employeeColumns+` FROM employees`+newestFirst)
}

// Search filtra con ILIKE sobre designation y/o department.
func (r *EmployeeRepo) Search(ctx context.Context, f repository.EmployeeFilter) ([]*entity.Employee, error) {
	var (
		conds []string
		args  []any
	)
	if f.Designation != "" {
		args = append(args, containsPattern(f.Designation))
		conds = append(conds, fmt.Sprintf("designation ILIKE $%d", len(args)))
	}
	if f.Department != "" {
		args = append(args, containsPattern(f.Department))
		conds = append(conds, fmt.Sprintf("department ILIKE $%d", len(args)))
	}
	query := `SELECT ` + employeeColumns + ` FROM employees`
	if len(conds) > 0 {
		query += ` WHERE ` + strings.Join(conds, " AND ")
	}
	return r.query(ctx, query+newestFirst, args...)
}

// Update aplica los campos presentes del patch con UPDATE ... RETURNING.
func (r *EmployeeRepo) Update(ctx context.Context, id string, p repository.EmployeePatch) (*entity.Employee, error) {
	query, args := buildUpdate(id, p)
	e, err := r.queryOne(ctx, query, args...)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domain.ErrEmployeeEmailExists
		}
		return nil, err
	}
	return e, nil
}

// Delete elimina y devuelve el empleado borrado.
func (r *EmployeeRepo) Delete(ctx context.Context, id string) (*entity.Employee, error) {
	return r.queryOne(ctx, `DELETE FROM employees WHERE id = $1 RETURNING `+employeeColumns, id)
}

// buildUpdate arma el UPDATE dinámico; $1 es siempre el ID.
func buildUpdate(id string, p repository.EmployeePatch) (string, []any) {
	args := []any{id}
	var sets []string
	add := func(column string, v any) {
		args = append(args, v)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}
	if p.FirstName != nil {
		add("first_name", *p.FirstName)
	}
	if p.LastName != nil {
		add("last_name", *p.LastName)
	}
	if p.Email != nil {
		add("email", *p.Email)
	}
	if p.Gender != nil {
		add("gender", *p.Gender)
	}
	if p.Designation != nil {
		add("designation", *p.Designation)
	}
	if p.Salary != nil {
		add("salary", *p.Salary)
	}
	if p.DateOfJoining != nil {
		add("date_of_joining", *p.DateOfJoining)
	}
	if p.Department != nil {
		add("department", *p.Department)
	}
	if p.Photo != nil {
		add("employee_photo", *p.Photo)
	}
	if !p.UpdatedAt.IsZero() {
		add("updated_at", p.UpdatedAt)
	}
	if len(sets) == 0 {
		// Sin cambios: devolver el registro actual.
		sets = append(sets, "id = id")
	}
	return `UPDATE employees SET ` + strings.Join(sets, ", ") + ` WHERE id = $1 RETURNING ` + employeeColumns, args
}

func (r *EmployeeRepo) queryOne(ctx context.Context, query string, args ...any) (*entity.Employee, error) {
	e, err := scanEmployee(r.pool.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		if isUniqueViolation(err) {
			return nil, err
		}
		return nil, fmt.Errorf("query employee: %w", err)
	}
	return e, nil
}

func (r *EmployeeRepo) query(ctx context.Context, query string, args ...any) ([]*entity.Employee, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list employees: %w", err)
	}
	defer rows.Close()
	list := make([]*entity.Employee, 0)
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, fmt.Errorf("scan employee: %w", err)
		}
		list = append(list, e)
	}
	return list, rows.Err()
}

func scanEmployee(row pgx.Row) (*entity.Employee, error) {
	var e entity.Employee
	err := row.Scan(
		&e.ID, &e.FirstName, &e.LastName, &e.Email, &e.Gender, &e.Designation, &e.Salary,
		&e.DateOfJoining, &e.Department, &e.Photo, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	e.DateOfJoining = e.DateOfJoining.UTC()
	e.CreatedAt = e.CreatedAt.UTC()
	e.UpdatedAt = e.UpdatedAt.UTC()
	return &e, nil
}
