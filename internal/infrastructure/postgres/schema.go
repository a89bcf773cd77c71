package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// schemaStatements crea las tablas si no existen. La unicidad de username y email
// la garantizan los índices, no la aplicación.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id            TEXT PRIMARY KEY,
		username      TEXT NOT NULL UNIQUE,
		email         TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		created_at    TIMESTAMPTZ NOT NULL,
		updated_at    TIMESTAMPTZ NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS employees (
		id              TEXT PRIMARY KEY,
		first_name      TEXT NOT NULL,
		last_name       TEXT NOT NULL,
		email           TEXT NOT NULL UNIQUE,
		gender          TEXT NOT NULL CHECK (gender IN ('Male', 'Female', 'Other')),
		designation     TEXT NOT NULL,
		salary          DOUBLE PRECISION NOT NULL CHECK (salary >= 1000),
		date_of_joining TIMESTAMPTZ NOT NULL,
		department      TEXT NOT NULL,
		employee_photo  TEXT NOT NULL DEFAULT '',
		created_at      TIMESTAMPTZ NOT NULL,
		updated_at      TIMESTAMPTZ NOT NULL,
		seq             BIGSERIAL
	)`,
	`CREATE INDEX IF NOT EXISTS employees_created_at_idx ON employees (created_at DESC, seq DESC)`,
}

// EnsureSchema aplica el esquema mínimo de users y employees.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	for _, stmt := range schemaStatements {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("aplicar esquema: %w", err)
		}
	}
	return nil
}
