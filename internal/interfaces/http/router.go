package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/graphql-go/graphql"

	"github.com/jhoicas/Empleados-api/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Schema  graphql.Schema
	AppName string
	Log     *logger.Logger
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": deps.AppName})
	})

	gql := NewGraphQLHandler(deps.Schema, deps.Log)
	app.Post("/graphql", gql.Serve)
	app.Get("/graphql", gql.Serve)
}
