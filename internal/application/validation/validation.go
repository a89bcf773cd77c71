// Package validation contiene los validadores de entrada de cuentas y empleados.
// La invalidez es un dato: cada validador devuelve la lista ordenada de fallos
// y ejecuta todas las comprobaciones aunque la primera ya haya fallado.
package validation

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/jhoicas/Empleados-api/internal/application/dto"
	"github.com/jhoicas/Empleados-api/internal/domain/entity"
)

// Mensajes expuestos al cliente.
const (
	MsgUsernameRequired        = "Username is required"
	MsgEmailRequired           = "Email is required"
	MsgEmailInvalid            = "Invalid email format"
	MsgPasswordTooShort        = "Password must be at least 6 characters"
	MsgUsernameOrEmailRequired = "Username or email is required"
	MsgPasswordRequired        = "Password is required"
	MsgFirstNameRequired       = "First name is required"
	MsgLastNameRequired        = "Last name is required"
	MsgGenderRequired          = "Gender is required"
	MsgGenderInvalid           = "Gender must be Male, Female, or Other"
	MsgDesignationRequired     = "Designation is required"
	MsgSalaryRequired          = "Salary is required"
	MsgSalaryTooLow            = "Salary must be at least 1000"
	MsgDateOfJoiningRequired   = "Date of joining is required"
	MsgDateOfJoiningInvalid    = "Invalid date of joining"
	MsgDepartmentRequired      = "Department is required"
)

// MinPasswordLength longitud mínima de password al registrarse.
const MinPasswordLength = 6

var emailPattern = regexp.MustCompile(`^\w+([.-]?\w+)*@\w+([.-]?\w+)*(\.\w{2,3})+$`)

// FieldError un fallo de validación sobre un campo concreto.
type FieldError struct {
	Field  string
	Reason string
}

// Errors lista ordenada de fallos. Implementa error para viajar por los casos de uso.
type Errors []FieldError

// Error une los motivos con ", " en el orden en que se detectaron.
func (e Errors) Error() string {
	reasons := make([]string, len(e))
	for i, fe := range e {
		reasons[i] = fe.Reason
	}
	return strings.Join(reasons, ", ")
}

// Has indica si algún fallo corresponde al campo indicado.
func (e Errors) Has(field string) bool {
	for _, fe := range e {
		if fe.Field == field {
			return true
		}
	}
	return false
}

func (e *Errors) add(field, reason string) {
	*e = append(*e, FieldError{Field: field, Reason: reason})
}

// IsValidEmail comprueba el formato local@dominio.
func IsValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// ValidateSignup valida la entrada de registro de cuenta.
func ValidateSignup(in dto.SignupRequest) Errors {
	var errs Errors
	if blank(in.Username) {
		errs.add("username", MsgUsernameRequired)
	}
	if blank(in.Email) {
		errs.add("email", MsgEmailRequired)
	} else if !IsValidEmail(strings.TrimSpace(in.Email)) {
		errs.add("email", MsgEmailInvalid)
	}
	if len(in.Password) < MinPasswordLength {
		errs.add("password", MsgPasswordTooShort)
	}
	return errs
}

// ValidateLogin valida la forma de las credenciales.
func ValidateLogin(in dto.LoginRequest) Errors {
	var errs Errors
	if blank(in.UsernameOrEmail) {
		errs.add("usernameOrEmail", MsgUsernameOrEmailRequired)
	}
	if blank(in.Password) {
		errs.add("password", MsgPasswordRequired)
	}
	return errs
}

// ValidateEmployee valida la entrada completa de creación de empleado.
func ValidateEmployee(in dto.CreateEmployeeRequest) Errors {
	var errs Errors
	if blank(in.FirstName) {
		errs.add("first_name", MsgFirstNameRequired)
	}
	if blank(in.LastName) {
		errs.add("last_name", MsgLastNameRequired)
	}
	if blank(in.Email) {
		errs.add("email", MsgEmailRequired)
	} else if !IsValidEmail(strings.TrimSpace(in.Email)) {
		errs.add("email", MsgEmailInvalid)
	}
	if in.Gender == "" {
		errs.add("gender", MsgGenderRequired)
	} else if !entity.IsValidGender(in.Gender) {
		errs.add("gender", MsgGenderInvalid)
	}
	if blank(in.Designation) {
		errs.add("designation", MsgDesignationRequired)
	}
	if in.Salary == nil {
		errs.add("salary", MsgSalaryRequired)
	} else if *in.Salary < entity.MinSalary {
		errs.add("salary", MsgSalaryTooLow)
	}
	if in.DateOfJoining == "" {
		errs.add("date_of_joining", MsgDateOfJoiningRequired)
	} else if _, err := ParseDate(in.DateOfJoining); err != nil {
		errs.add("date_of_joining", MsgDateOfJoiningInvalid)
	}
	if blank(in.Department) {
		errs.add("department", MsgDepartmentRequired)
	}
	return errs
}

// ValidateEmployeeUpdate valida solo los campos presentes de una actualización parcial,
// en el mismo orden que ValidateEmployee.
func ValidateEmployeeUpdate(in dto.UpdateEmployeeRequest) Errors {
	var errs Errors
	if in.FirstName != nil && blank(*in.FirstName) {
		errs.add("first_name", MsgFirstNameRequired)
	}
	if in.LastName != nil && blank(*in.LastName) {
		errs.add("last_name", MsgLastNameRequired)
	}
	if in.Email != nil {
		if blank(*in.Email) {
			errs.add("email", MsgEmailRequired)
		} else if !IsValidEmail(strings.TrimSpace(*in.Email)) {
			errs.add("email", MsgEmailInvalid)
		}
	}
	if in.Gender != nil && !entity.IsValidGender(*in.Gender) {
		errs.add("gender", MsgGenderInvalid)
	}
	if in.Designation != nil && blank(*in.Designation) {
		errs.add("designation", MsgDesignationRequired)
	}
	if in.Salary != nil && *in.Salary < entity.MinSalary {
		errs.add("salary", MsgSalaryTooLow)
	}
	if in.DateOfJoining != nil {
		if *in.DateOfJoining == "" {
			errs.add("date_of_joining", MsgDateOfJoiningRequired)
		} else if _, err := ParseDate(*in.DateOfJoining); err != nil {
			errs.add("date_of_joining", MsgDateOfJoiningInvalid)
		}
	}
	if in.Department != nil && blank(*in.Department) {
		errs.add("department", MsgDepartmentRequired)
	}
	return errs
}

var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// ParseDate interpreta una fecha de ingreso como date-time RFC 3339 o YYYY-MM-DD, en UTC.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("fecha no reconocida: %q", s)
}
