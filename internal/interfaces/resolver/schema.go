package resolver

import (
	"github.com/graphql-go/graphql"

	"github.com/jhoicas/Empleados-api/internal/application/dto"
)

func nonNull(t graphql.Output) graphql.Output { return graphql.NewNonNull(t) }

var userType = graphql.NewObject(graphql.ObjectConfig{
	Name: "User",
	Fields: graphql.Fields{
		"id":         &graphql.Field{Type: nonNull(graphql.ID)},
		"username":   &graphql.Field{Type: nonNull(graphql.String)},
		"email":      &graphql.Field{Type: nonNull(graphql.String)},
		"created_at": &graphql.Field{Type: nonNull(graphql.String)},
		"updated_at": &graphql.Field{Type: nonNull(graphql.String)},
	},
})

var employeeType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Employee",
	Fields: graphql.Fields{
		"id":              &graphql.Field{Type: nonNull(graphql.ID)},
		"first_name":      &graphql.Field{Type: nonNull(graphql.String)},
		"last_name":       &graphql.Field{Type: nonNull(graphql.String)},
		"email":           &graphql.Field{Type: nonNull(graphql.String)},
		"gender":          &graphql.Field{Type: nonNull(graphql.String)},
		"designation":     &graphql.Field{Type: nonNull(graphql.String)},
		"salary":          &graphql.Field{Type: nonNull(graphql.Float)},
		"date_of_joining": &graphql.Field{Type: nonNull(graphql.String)},
		"department":      &graphql.Field{Type: nonNull(graphql.String)},
		"employee_photo":  &graphql.Field{Type: graphql.String},
		"created_at":      &graphql.Field{Type: nonNull(graphql.String)},
		"updated_at":      &graphql.Field{Type: nonNull(graphql.String)},
	},
})

func envelopeFields(extra graphql.Fields) graphql.Fields {
	fields := graphql.Fields{
		"success": &graphql.Field{Type: nonNull(graphql.Boolean)},
		"message": &graphql.Field{Type: nonNull(graphql.String)},
	}
	for k, v := range extra {
		fields[k] = v
	}
	return fields
}

var authPayloadType = graphql.NewObject(graphql.ObjectConfig{
	Name: "AuthPayload",
	Fields: envelopeFields(graphql.Fields{
		"user":  &graphql.Field{Type: userType},
		"token": &graphql.Field{Type: graphql.String},
	}),
})

var employeeResponseType = graphql.NewObject(graphql.ObjectConfig{
	Name:   "EmployeeResponse",
	Fields: envelopeFields(graphql.Fields{"employee": &graphql.Field{Type: employeeType}}),
})

var employeesResponseType = graphql.NewObject(graphql.ObjectConfig{
	Name:   "EmployeesResponse",
	Fields: envelopeFields(graphql.Fields{"employees": &graphql.Field{Type: graphql.NewList(employeeType)}}),
})

var deleteResponseType = graphql.NewObject(graphql.ObjectConfig{
	Name:   "DeleteResponse",
	Fields: envelopeFields(nil),
})

// Los campos de entrada son opcionales en el esquema: la validación de la aplicación
// produce los mensajes del sobre en lugar de errores GraphQL.
func inputFields(names ...string) graphql.InputObjectConfigFieldMap {
	fields := graphql.InputObjectConfigFieldMap{}
	for _, n := range names {
		fields[n] = &graphql.InputObjectFieldConfig{Type: graphql.String}
	}
	return fields
}

var signupInput = graphql.NewInputObject(graphql.InputObjectConfig{
	Name:   "SignupInput",
	Fields: inputFields("username", "email", "password"),
})

var loginInput = graphql.NewInputObject(graphql.InputObjectConfig{
	Name:   "LoginInput",
	Fields: inputFields("usernameOrEmail", "password"),
})

func employeeInputFields() graphql.InputObjectConfigFieldMap {
	fields := inputFields("first_name", "last_name", "email", "gender", "designation",
		"date_of_joining", "department", "employee_photo")
	fields["salary"] = &graphql.InputObjectFieldConfig{Type: graphql.Float}
	return fields
}

var employeeInput = graphql.NewInputObject(graphql.InputObjectConfig{
	Name:   "EmployeeInput",
	Fields: employeeInputFields(),
})

var updateEmployeeInput = graphql.NewInputObject(graphql.InputObjectConfig{
	Name:   "UpdateEmployeeInput",
	Fields: employeeInputFields(),
})

var eidArg = &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)}

// NewSchema construye el esquema GraphQL sobre el resolver.
func NewSchema(r *Resolver) (graphql.Schema, error) {
	query := graphql.NewObject(graphql.ObjectConfig{
		Name: "Query",
		Fields: graphql.Fields{
			"login": &graphql.Field{
				Type: nonNull(authPayloadType),
				Args: graphql.FieldConfigArgument{"input": {Type: graphql.NewNonNull(loginInput)}},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					in := argMap(p.Args, "input")
					return r.Login(p.Context, dto.LoginRequest{
						UsernameOrEmail: str(in, "usernameOrEmail"),
						Password:        str(in, "password"),
					}), nil
				},
			},
			"getAllEmployees": &graphql.Field{
				Type: nonNull(employeesResponseType),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return r.GetAllEmployees(p.Context), nil
				},
			},
			"getEmployeeById": &graphql.Field{
				Type: nonNull(employeeResponseType),
				Args: graphql.FieldConfigArgument{"eid": eidArg},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return r.GetEmployeeByID(p.Context, str(p.Args, "eid")), nil
				},
			},
			"searchEmployees": &graphql.Field{
				Type: nonNull(employeesResponseType),
				Args: graphql.FieldConfigArgument{
					"designation": {Type: graphql.String},
					"department":  {Type: graphql.String},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return r.SearchEmployees(p.Context, dto.SearchEmployeesRequest{
						Designation: optString(p.Args, "designation"),
						Department:  optString(p.Args, "department"),
					}), nil
				},
			},
		},
	})

	mutation := graphql.NewObject(graphql.ObjectConfig{
		Name: "Mutation",
		Fields: graphql.Fields{
			"signup": &graphql.Field{
				Type: nonNull(authPayloadType),
				Args: graphql.FieldConfigArgument{"input": {Type: graphql.NewNonNull(signupInput)}},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					in := argMap(p.Args, "input")
					return r.Signup(p.Context, dto.SignupRequest{
						Username: str(in, "username"),
						Email:    str(in, "email"),
						Password: str(in, "password"),
					}), nil
				},
			},
			"addEmployee": &graphql.Field{
				Type: nonNull(employeeResponseType),
				Args: graphql.FieldConfigArgument{"input": {Type: graphql.NewNonNull(employeeInput)}},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return r.AddEmployee(p.Context, createRequest(argMap(p.Args, "input"))), nil
				},
			},
			"updateEmployee": &graphql.Field{
				Type: nonNull(employeeResponseType),
				Args: graphql.FieldConfigArgument{
					"eid":   eidArg,
					"input": {Type: graphql.NewNonNull(updateEmployeeInput)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return r.UpdateEmployee(p.Context, str(p.Args, "eid"), updateRequest(argMap(p.Args, "input"))), nil
				},
			},
			"deleteEmployee": &graphql.Field{
				Type: nonNull(deleteResponseType),
				Args: graphql.FieldConfigArgument{"eid": eidArg},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return r.DeleteEmployee(p.Context, str(p.Args, "eid")), nil
				},
			},
		},
	})

	return graphql.NewSchema(graphql.SchemaConfig{Query: query, Mutation: mutation})
}
