package http

import (
	"encoding/json"

	"github.com/gofiber/fiber/v2"
	"github.com/graphql-go/graphql"

	"github.com/jhoicas/Empleados-api/internal/application/dto"
	"github.com/jhoicas/Empleados-api/pkg/logger"
)

// GraphQLRequest cuerpo estándar de una petición GraphQL sobre HTTP.
type GraphQLRequest struct {
	Query         string                 `json:"query"`
	OperationName string                 `json:"operationName"`
	Variables     map[string]interface{} `json:"variables"`
}

// GraphQLHandler ejecuta operaciones GraphQL.
type GraphQLHandler struct {
	schema graphql.Schema
	log    *logger.Logger
}

// NewGraphQLHandler construye el handler.
func NewGraphQLHandler(schema graphql.Schema, log *logger.Logger) *GraphQLHandler {
	if log == nil {
		log = logger.Nop()
	}
	return &GraphQLHandler{schema: schema, log: log.Component("http")}
}

// Serve acepta POST con cuerpo JSON o GET con query, operationName y variables en la URL.
// Los fallos de negocio viajan dentro de data; solo los errores de transporte usan 400.
func (h *GraphQLHandler) Serve(c *fiber.Ctx) error {
	var in GraphQLRequest
	if c.Method() == fiber.MethodGet {
		in.Query = c.Query("query")
		in.OperationName = c.Query("operationName")
		if raw := c.Query("variables"); raw != "" {
			if err := json.Unmarshal([]byte(raw), &in.Variables); err != nil {
				return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_VARIABLES", Message: "variables inválidas"})
			}
		}
	} else if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Query == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "query es requerido"})
	}

	result := graphql.Do(graphql.Params{
		Schema:         h.schema,
		RequestString:  in.Query,
		VariableValues: in.Variables,
		OperationName:  in.OperationName,
		Context:        c.UserContext(),
	})
	if result.HasErrors() {
		h.log.Debug().Interface("errors", result.Errors).Str("operation", in.OperationName).Msg("errores GraphQL")
	}
	return c.JSON(result)
}
