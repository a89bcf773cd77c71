package http_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Empleados-api/internal/application/auth"
	"github.com/jhoicas/Empleados-api/internal/application/photo"
	"github.com/jhoicas/Empleados-api/internal/application/usecase"
	"github.com/jhoicas/Empleados-api/internal/infrastructure/memory"
	apphttp "github.com/jhoicas/Empleados-api/internal/interfaces/http"
	"github.com/jhoicas/Empleados-api/internal/interfaces/resolver"
	"github.com/jhoicas/Empleados-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

// buildTestApp construye la aplicación completa sobre repositorios en memoria.
func buildTestApp(t *testing.T) *fiber.App {
	t.Helper()
	log := logger.Nop()
	authUC := auth.NewAuthUseCase(memory.NewUserRepository(), auth.JWTConfig{
		Secret: "test-secret-key-for-unit-tests", ExpMinutes: 60, Issuer: "empleados-api-test",
	})
	photos := photo.NewHandler(nil, photo.Config{Namespace: "employees"}, log)
	employeeUC := usecase.NewEmployeeUseCase(memory.NewEmployeeRepository(), photos)
	schema, err := resolver.NewSchema(resolver.New(authUC, employeeUC, log))
	require.NoError(t, err)

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{Schema: schema, AppName: "empleados-api-test", Log: log})
	return app
}

func do(t *testing.T, app *fiber.App, req *http.Request) (int, map[string]interface{}) {
	t.Helper()
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &body), string(raw))
	return resp.StatusCode, body
}

func postGraphQL(t *testing.T, app *fiber.App, payload string) (int, map[string]interface{}) {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/graphql", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	return do(t, app, req)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func TestHealth(t *testing.T) {
	status, body := do(t, buildTestApp(t), httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, "empleados-api-test", body["service"])
}

func TestGraphQL_PostSignup(t *testing.T) {
	app := buildTestApp(t)
	status, body := postGraphQL(t, app, `{
		"query": "mutation S($in: SignupInput!) { signup(input: $in) { success message token } }",
		"variables": {"in": {"username": "ada", "email": "ada@example.com", "password": "secret1"}}
	}`)
	require.Equal(t, fiber.StatusOK, status)
	signup := body["data"].(map[string]interface{})["signup"].(map[string]interface{})
	assert.Equal(t, true, signup["success"])
	assert.Equal(t, "User created successfully", signup["message"])
	assert.NotEmpty(t, signup["token"])
}

func TestGraphQL_FalloDeNegocioEsHTTP200(t *testing.T) {
	app := buildTestApp(t)
	status, body := postGraphQL(t, app, `{"query": "{ getEmployeeById(eid: \"nada\") { success message } }"}`)
	assert.Equal(t, fiber.StatusOK, status, "los fallos de negocio viajan en el sobre")
	out := body["data"].(map[string]interface{})["getEmployeeById"].(map[string]interface{})
	assert.Equal(t, false, out["success"])
	assert.Equal(t, "Employee not found", out["message"])
}

func TestGraphQL_GetConQuery(t *testing.T) {
	app := buildTestApp(t)
	q := url.QueryEscape("{ getAllEmployees { success message } }")
	status, body := do(t, app, httptest.NewRequest(http.MethodGet, "/graphql?query="+q, nil))
	require.Equal(t, fiber.StatusOK, status)
	out := body["data"].(map[string]interface{})["getAllEmployees"].(map[string]interface{})
	assert.Equal(t, "Successfully retrieved 0 employees", out["message"])
}

func TestGraphQL_SinQuery400(t *testing.T) {
	status, body := postGraphQL(t, buildTestApp(t), `{}`)
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "VALIDATION", body["code"])
}

func TestGraphQL_CuerpoInvalido400(t *testing.T) {
	status, body := postGraphQL(t, buildTestApp(t), `{no es json`)
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "INVALID_BODY", body["code"])
}

func TestGraphQL_ErrorDeSintaxisEnErrors(t *testing.T) {
	status, body := postGraphQL(t, buildTestApp(t), `{"query": "{ noExiste }"}`)
	assert.Equal(t, fiber.StatusOK, status)
	assert.NotEmpty(t, body["errors"])
}
