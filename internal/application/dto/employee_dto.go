package dto

import "time"

// CreateEmployeeRequest entrada para crear un empleado.
// Salary es puntero para distinguir "ausente" de cero.
type CreateEmployeeRequest struct {
	FirstName     string   `json:"first_name"`
	LastName      string   `json:"last_name"`
	Email         string   `json:"email"`
	Gender        string   `json:"gender"`
	Designation   string   `json:"designation"`
	Salary        *float64 `json:"salary"`
	DateOfJoining string   `json:"date_of_joining"`
	Department    string   `json:"department"`
	EmployeePhoto *string  `json:"employee_photo"`
}

// UpdateEmployeeRequest entrada para actualización parcial: nil = no modificar.
type UpdateEmployeeRequest struct {
	FirstName     *string  `json:"first_name"`
	LastName      *string  `json:"last_name"`
	Email         *string  `json:"email"`
	Gender        *string  `json:"gender"`
	Designation   *string  `json:"designation"`
	Salary        *float64 `json:"salary"`
	DateOfJoining *string  `json:"date_of_joining"`
	Department    *string  `json:"department"`
	EmployeePhoto *string  `json:"employee_photo"`
}

// SearchEmployeesRequest criterios de búsqueda; al menos uno es obligatorio.
type SearchEmployeesRequest struct {
	Designation *string `json:"designation"`
	Department  *string `json:"department"`
}

// EmployeeResponse salida de un empleado.
type EmployeeResponse struct {
	ID            string    `json:"id"`
	FirstName     string    `json:"first_name"`
	LastName      string    `json:"last_name"`
	Email         string    `json:"email"`
	Gender        string    `json:"gender"`
	Designation   string    `json:"designation"`
	Salary        float64   `json:"salary"`
	DateOfJoining time.Time `json:"date_of_joining"`
	Department    string    `json:"department"`
	EmployeePhoto string    `json:"employee_photo"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
