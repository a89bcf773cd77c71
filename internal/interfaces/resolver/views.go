package resolver

import (
	"time"

	"github.com/jhoicas/Empleados-api/internal/application/dto"
)

// TimeLayout formato de fechas expuesto por la API (ISO-8601 UTC con milisegundos).
const TimeLayout = "2006-01-02T15:04:05.000Z"

// UserView proyección pública de una cuenta.
type UserView struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

// EmployeeView proyección pública de un empleado.
type EmployeeView struct {
	ID            string  `json:"id"`
	FirstName     string  `json:"first_name"`
	LastName      string  `json:"last_name"`
	Email         string  `json:"email"`
	Gender        string  `json:"gender"`
	Designation   string  `json:"designation"`
	Salary        float64 `json:"salary"`
	DateOfJoining string  `json:"date_of_joining"`
	Department    string  `json:"department"`
	EmployeePhoto string  `json:"employee_photo"`
	CreatedAt     string  `json:"created_at"`
	UpdatedAt     string  `json:"updated_at"`
}

// AuthPayload sobre de signup y login.
type AuthPayload struct {
	Success bool      `json:"success"`
	Message string    `json:"message"`
	User    *UserView `json:"user"`
	Token   *string   `json:"token"`
}

// EmployeeResponse sobre de las operaciones sobre un empleado.
type EmployeeResponse struct {
	Success  bool          `json:"success"`
	Message  string        `json:"message"`
	Employee *EmployeeView `json:"employee"`
}

// EmployeesResponse sobre de los listados.
type EmployeesResponse struct {
	Success   bool           `json:"success"`
	Message   string         `json:"message"`
	Employees []EmployeeView `json:"employees"`
}

// DeleteResponse sobre del borrado.
type DeleteResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func formatTime(t time.Time) string {
	return t.UTC().Format(TimeLayout)
}

func toUserView(u dto.UserResponse) *UserView {
	return &UserView{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		CreatedAt: formatTime(u.CreatedAt),
		UpdatedAt: formatTime(u.UpdatedAt),
	}
}

func toEmployeeView(e dto.EmployeeResponse) EmployeeView {
	return EmployeeView{
		ID:            e.ID,
		FirstName:     e.FirstName,
		LastName:      e.LastName,
		Email:         e.Email,
		Gender:        e.Gender,
		Designation:   e.Designation,
		Salary:        e.Salary,
		DateOfJoining: formatTime(e.DateOfJoining),
		Department:    e.Department,
		EmployeePhoto: e.EmployeePhoto,
		CreatedAt:     formatTime(e.CreatedAt),
		UpdatedAt:     formatTime(e.UpdatedAt),
	}
}

func toEmployeeViews(list []dto.EmployeeResponse) []EmployeeView {
	out := make([]EmployeeView, 0, len(list))
	for _, e := range list {
		out = append(out, toEmployeeView(e))
	}
	return out
}
