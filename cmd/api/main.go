package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/Empleados-api/internal/application/auth"
	"github.com/jhoicas/Empleados-api/internal/application/photo"
	"github.com/jhoicas/Empleados-api/internal/application/ports"
	"github.com/jhoicas/Empleados-api/internal/application/usecase"
	"github.com/jhoicas/Empleados-api/internal/infrastructure/storage"
	httpRouter "github.com/jhoicas/Empleados-api/internal/interfaces/http"
	"github.com/jhoicas/Empleados-api/internal/interfaces/resolver"
	"github.com/jhoicas/Empleados-api/pkg/config"
	"github.com/jhoicas/Empleados-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("store", cfg.Store.Driver).
		Msg("iniciando aplicación")

	ctx, cancelStartup := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancelStartup()
	st, err := openStores(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión al almacenamiento")
	}
	defer st.close()

	// Almacén de fotos opcional: sin bucket las imágenes en línea se guardan tal como llegan.
	var assets ports.AssetStore
	if cfg.Asset.Enabled() {
		s3Store, err := storage.NewS3AssetStore(ctx, cfg.Asset)
		if err == nil {
			err = s3Store.EnsureBucket(ctx)
		}
		if err != nil {
			log.Error().Err(err).Str("bucket", cfg.Asset.Bucket).Msg("almacén de fotos no disponible")
		} else {
			assets = s3Store
			log.Info().Str("bucket", cfg.Asset.Bucket).Msg("almacén de fotos listo")
		}
	}
	cancelStartup()

	photos := photo.NewHandler(assets, photo.Config{
		Namespace:  cfg.Asset.Namespace,
		HostMarker: cfg.Asset.HostMarker,
	}, log)

	authUC := auth.NewAuthUseCase(st.users, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	employeeUC := usecase.NewEmployeeUseCase(st.employees, photos)

	schema, err := resolver.NewSchema(resolver.New(authUC, employeeUC, log))
	if err != nil {
		log.Fatal().Err(err).Msg("construir esquema GraphQL")
	}

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
		BodyLimit:    10 * 1024 * 1024, // fotos en línea
	})
	app.Use(recover.New())

	httpRouter.Router(app, httpRouter.RouterDeps{
		Schema:  schema,
		AppName: cfg.App.Name,
		Log:     log,
	})

	go func() {
		log.Info().Str("addr", cfg.HTTP.Addr()).Msg("GraphQL disponible en /graphql")
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
