// Package resolver expone los casos de uso como operaciones GraphQL. Cada operación
// devuelve siempre un sobre {success, message, ...}: los fallos de dominio, los errores
// de infraestructura y los panics se convierten en success=false.
package resolver

import (
	"context"
	"errors"
	"fmt"

	"github.com/jhoicas/Empleados-api/internal/application/auth"
	"github.com/jhoicas/Empleados-api/internal/application/dto"
	"github.com/jhoicas/Empleados-api/internal/application/usecase"
	"github.com/jhoicas/Empleados-api/internal/application/validation"
	"github.com/jhoicas/Empleados-api/internal/domain"
	"github.com/jhoicas/Empleados-api/pkg/logger"
)

// Mensajes de éxito.
const (
	MsgLoginOK           = "Login successful"
	MsgSignupOK          = "User created successfully"
	MsgEmployeeFound     = "Employee found successfully"
	MsgEmployeeCreated   = "Employee created successfully"
	MsgEmployeeUpdated   = "Employee updated successfully"
	MsgEmployeeDeleted   = "Employee deleted successfully"
	msgRetrievedTemplate = "Successfully retrieved %d employees"
	msgFoundTemplate     = "Found %d employees"
)

// Mensajes de fallo de dominio.
const (
	MsgInvalidCredentials = "Invalid credentials"
	MsgAccountExists      = "Username or email already exists"
	MsgEmployeeNotFound   = "Employee not found"
	MsgEmployeeExists     = "Employee with this email already exists"
	MsgSearchCriteria     = "Please provide either designation or department"
)

// Resolver agrupa los casos de uso expuestos por la API.
type Resolver struct {
	auth      *auth.AuthUseCase
	employees *usecase.EmployeeUseCase
	log       *logger.Logger
}

// New construye el resolver.
func New(authUC *auth.AuthUseCase, employeeUC *usecase.EmployeeUseCase, log *logger.Logger) *Resolver {
	if log == nil {
		log = logger.Nop()
	}
	return &Resolver{auth: authUC, employees: employeeUC, log: log.Component("graphql")}
}

// Login autentica por username o email.
func (r *Resolver) Login(ctx context.Context, in dto.LoginRequest) (out *AuthPayload) {
	defer r.recoverInto("login", func(msg string) { out = &AuthPayload{Message: msg} })
	res, err := r.auth.Login(ctx, in)
	if err != nil {
		return &AuthPayload{Message: r.failureMessage("login", err)}
	}
	return authSuccess(MsgLoginOK, res)
}

// Signup crea una cuenta.
func (r *Resolver) Signup(ctx context.Context, in dto.SignupRequest) (out *AuthPayload) {
	defer r.recoverInto("signup", func(msg string) { out = &AuthPayload{Message: msg} })
	res, err := r.auth.Signup(ctx, in)
	if err != nil {
		return &AuthPayload{Message: r.failureMessage("signup", err)}
	}
	return authSuccess(MsgSignupOK, res)
}

// GetAllEmployees lista todos los empleados.
func (r *Resolver) GetAllEmployees(ctx context.Context) (out *EmployeesResponse) {
	defer r.recoverInto("getAllEmployees", func(msg string) { out = employeesFailure(msg) })
	list, err := r.employees.List(ctx)
	if err != nil {
		return employeesFailure(r.failureMessage("getAllEmployees", err))
	}
	return &EmployeesResponse{
		Success:   true,
		Message:   fmt.Sprintf(msgRetrievedTemplate, len(list)),
		Employees: toEmployeeViews(list),
	}
}

// GetEmployeeByID obtiene un empleado.
func (r *Resolver) GetEmployeeByID(ctx context.Context, eid string) (out *EmployeeResponse) {
	defer r.recoverInto("getEmployeeById", func(msg string) { out = &EmployeeResponse{Message: msg} })
	e, err := r.employees.GetByID(ctx, eid)
	if err != nil {
		return &EmployeeResponse{Message: r.failureMessage("getEmployeeById", err)}
	}
	return employeeSuccess(MsgEmployeeFound, e)
}

// SearchEmployees filtra por designation y/o department.
func (r *Resolver) SearchEmployees(ctx context.Context, in dto.SearchEmployeesRequest) (out *EmployeesResponse) {
	defer r.recoverInto("searchEmployees", func(msg string) { out = employeesFailure(msg) })
	list, err := r.employees.Search(ctx, in)
	if err != nil {
		return employeesFailure(r.failureMessage("searchEmployees", err))
	}
	return &EmployeesResponse{
		Success:   true,
		Message:   fmt.Sprintf(msgFoundTemplate, len(list)),
		Employees: toEmployeeViews(list),
	}
}

// AddEmployee crea un empleado.
func (r *Resolver) AddEmployee(ctx context.Context, in dto.CreateEmployeeRequest) (out *EmployeeResponse) {
	defer r.recoverInto("addEmployee", func(msg string) { out = &EmployeeResponse{Message: msg} })
	e, err := r.employees.Create(ctx, in)
	if err != nil {
		return &EmployeeResponse{Message: r.failureMessage("addEmployee", err)}
	}
	return employeeSuccess(MsgEmployeeCreated, e)
}

// UpdateEmployee actualiza parcialmente un empleado.
func (r *Resolver) UpdateEmployee(ctx context.Context, eid string, in dto.UpdateEmployeeRequest) (out *EmployeeResponse) {
	defer r.recoverInto("updateEmployee", func(msg string) { out = &EmployeeResponse{Message: msg} })
	e, err := r.employees.Update(ctx, eid, in)
	if err != nil {
		return &EmployeeResponse{Message: r.failureMessage("updateEmployee", err)}
	}
	return employeeSuccess(MsgEmployeeUpdated, e)
}

// DeleteEmployee elimina un empleado.
func (r *Resolver) DeleteEmployee(ctx context.Context, eid string) (out *DeleteResponse) {
	defer r.recoverInto("deleteEmployee", func(msg string) { out = &DeleteResponse{Message: msg} })
	if err := r.employees.Delete(ctx, eid); err != nil {
		return &DeleteResponse{Message: r.failureMessage("deleteEmployee", err)}
	}
	return &DeleteResponse{Success: true, Message: MsgEmployeeDeleted}
}

// failureMessage traduce un error al mensaje del sobre. Los errores no previstos se registran.
func (r *Resolver) failureMessage(op string, err error) string {
	var verrs validation.Errors
	switch {
	case errors.As(err, &verrs):
		return verrs.Error()
	case errors.Is(err, domain.ErrInvalidCredentials):
		return MsgInvalidCredentials
	case errors.Is(err, domain.ErrAccountExists):
		return MsgAccountExists
	case errors.Is(err, domain.ErrEmployeeNotFound):
		return MsgEmployeeNotFound
	case errors.Is(err, domain.ErrEmployeeEmailExists):
		return MsgEmployeeExists
	case errors.Is(err, domain.ErrSearchCriteriaNeeded):
		return MsgSearchCriteria
	}
	r.log.Error().Err(err).Str("operation", op).Msg("error no controlado")
	return "Error: " + err.Error()
}

func (r *Resolver) recoverInto(op string, set func(msg string)) {
	if rec := recover(); rec != nil {
		r.log.Error().Str("operation", op).Interface("panic", rec).Msg("panic en resolver")
		set(fmt.Sprintf("Error: %v", rec))
	}
}

func authSuccess(msg string, res *dto.AuthResponse) *AuthPayload {
	token := res.Token
	return &AuthPayload{
		Success: true,
		Message: msg,
		User:    toUserView(res.User),
		Token:   &token,
	}
}

func employeeSuccess(msg string, e *dto.EmployeeResponse) *EmployeeResponse {
	v := toEmployeeView(*e)
	return &EmployeeResponse{Success: true, Message: msg, Employee: &v}
}

func employeesFailure(msg string) *EmployeesResponse {
	return &EmployeesResponse{Message: msg, Employees: []EmployeeView{}}
}
