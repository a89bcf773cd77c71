package resolver

import (
	"github.com/jhoicas/Empleados-api/internal/application/dto"
)

// argMap devuelve el objeto de entrada bajo key, o un mapa vacío.
func argMap(args map[string]interface{}, key string) map[string]interface{} {
	if m, ok := args[key].(map[string]interface{}); ok {
		return m
	}
	return map[string]interface{}{}
}

func str(m map[string]interface{}, key string) string {
	if s, ok := m[key].(string); ok {
		return s
	}
	return ""
}

// optString distingue un campo ausente o null (nil) de uno presente.
func optString(m map[string]interface{}, key string) *string {
	s, ok := m[key].(string)
	if !ok {
		return nil
	}
	return &s
}

func optFloat(m map[string]interface{}, key string) *float64 {
	var f float64
	switch v := m[key].(type) {
	case float64:
		f = v
	case float32:
		f = float64(v)
	case int:
		f = float64(v)
	case int64:
		f = float64(v)
	default:
		return nil
	}
	return &f
}

func createRequest(in map[string]interface{}) dto.CreateEmployeeRequest {
	return dto.CreateEmployeeRequest{
		FirstName:     str(in, "first_name"),
		LastName:      str(in, "last_name"),
		Email:         str(in, "email"),
		Gender:        str(in, "gender"),
		Designation:   str(in, "designation"),
		Salary:        optFloat(in, "salary"),
		DateOfJoining: str(in, "date_of_joining"),
		Department:    str(in, "department"),
		EmployeePhoto: optString(in, "employee_photo"),
	}
}

func updateRequest(in map[string]interface{}) dto.UpdateEmployeeRequest {
	return dto.UpdateEmployeeRequest{
		FirstName:     optString(in, "first_name"),
		LastName:      optString(in, "last_name"),
		Email:         optString(in, "email"),
		Gender:        optString(in, "gender"),
		Designation:   optString(in, "designation"),
		Salary:        optFloat(in, "salary"),
		DateOfJoining: optString(in, "date_of_joining"),
		Department:    optString(in, "department"),
		EmployeePhoto: optString(in, "employee_photo"),
	}
}
