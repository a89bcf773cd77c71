package main

import (
	"context"
	"fmt"

	"github.com/jhoicas/Empleados-api/internal/domain/repository"
	"github.com/jhoicas/Empleados-api/internal/infrastructure/memory"
	"github.com/jhoicas/Empleados-api/internal/infrastructure/mongodb"
	"github.com/jhoicas/Empleados-api/internal/infrastructure/postgres"
	"github.com/jhoicas/Empleados-api/pkg/config"
	"github.com/jhoicas/Empleados-api/pkg/logger"
)

// stores repositorios del backend elegido y su función de cierre.
type stores struct {
	users     repository.UserRepository
	employees repository.EmployeeRepository
	close     func()
}

// openStores conecta el backend indicado por STORE_DRIVER y prepara índices o esquema.
func openStores(ctx context.Context, cfg *config.Config, log *logger.Logger) (*stores, error) {
	switch cfg.Store.Driver {
	case config.DriverMongo:
		client, db, err := mongodb.Connect(ctx, cfg.Mongo)
		if err != nil {
			return nil, err
		}
		if err := mongodb.EnsureIndexes(ctx, db); err != nil {
			_ = client.Disconnect(context.Background())
			return nil, err
		}
		log.Info().Str("database", cfg.Mongo.Database).Msg("conectado a MongoDB")
		return &stores{
			users:     mongodb.NewUserRepository(db),
			employees: mongodb.NewEmployeeRepository(db),
			close:     func() { _ = client.Disconnect(context.Background()) },
		}, nil

	case config.DriverPostgres:
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			return nil, err
		}
		if err := postgres.EnsureSchema(ctx, pool); err != nil {
			pool.Close()
			return nil, err
		}
		log.Info().Msg("conectado a PostgreSQL")
		return &stores{
			users:     postgres.NewUserRepository(pool),
			employees: postgres.NewEmployeeRepository(pool),
			close:     pool.Close,
		}, nil

	case config.DriverMemory:
		log.Warn().Msg("usando almacenamiento en memoria: los datos se pierden al reiniciar")
		return &stores{
			users:     memory.NewUserRepository(),
			employees: memory.NewEmployeeRepository(),
			close:     func() {},
		}, nil
	}
	return nil, fmt.Errorf("STORE_DRIVER desconocido: %q", cfg.Store.Driver)
}
