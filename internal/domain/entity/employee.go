package entity

import "time"

// Géneros válidos para Employee.
const (
	GenderMale   = "Male"
	GenderFemale = "Female"
	GenderOther  = "Other"
)

// MinSalary salario mínimo aceptado para un empleado.
const MinSalary = 1000.0

// Genders lista ordenada de géneros aceptados.
var Genders = []string{GenderMale, GenderFemale, GenderOther}

// IsValidGender indica si g pertenece al conjunto de géneros aceptados.
func IsValidGender(g string) bool {
	for _, v := range Genders {
		if g == v {
			return true
		}
	}
	return false
}

// Employee representa un registro de empleado.
type Employee struct {
	ID            string
	FirstName     string
	LastName      string
	Email         string // único, en minúsculas
	Gender        string // Male, Female, Other
	Designation   string
	Salary        float64 // >= MinSalary
	DateOfJoining time.Time
	Department    string
	Photo         string // URL o vacío
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
