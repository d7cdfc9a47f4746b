package http

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/cors"
	"github.com/gofiber/fiber/v3/middleware/helmet"
	"github.com/gofiber/fiber/v3/middleware/logger"
	recoverer "github.com/gofiber/fiber/v3/middleware/recover"
	"go.uber.org/fx"

	"github.com/Alijeyrad/datalux_backend/config"
	"github.com/Alijeyrad/datalux_backend/internal/api/http/middleware"
	"github.com/Alijeyrad/datalux_backend/internal/api/http/router"
	"github.com/Alijeyrad/datalux_backend/pkg/constants"
	"github.com/Alijeyrad/datalux_backend/pkg/observability"
)

// Module provides the HTTP Server to the fx graph.
var Module = fx.Module("http", fx.Provide(NewServer))

type Params struct {
	fx.In

	Lifecycle fx.Lifecycle
	Cfg       *config.Config
	Router    *router.Router
	OTel      *observability.Provider `optional:"true"`
}

func NewServer(p Params) *fiber.App {
	app := newApp(p.Cfg, p.OTel != nil && p.Cfg.Observability.Tracing.Enabled)
	p.Router.Register(app)

	p.Lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			addr := fmt.Sprintf(":%d", p.Cfg.Server.Port)
			go func() {
				if err := app.Listen(addr, fiber.ListenConfig{DisableStartupMessage: true}); err != nil {
					slog.Error("HTTP server error", "error", err)
				}
			}()
			slog.Info("HTTP server listening", "addr", addr)
			return nil
		},
		OnStop: func(ctx context.Context) error {
			slog.Info("HTTP server shutting down")
			return app.ShutdownWithContext(ctx)
		},
	})

	return app
}

func newApp(cfg *config.Config, tracing bool) *fiber.App {
	timeout := time.Duration(cfg.Server.TimeoutSeconds) * time.Second
	app := fiber.New(fiber.Config{
		AppName:      constants.ServiceName,
		ReadTimeout:  timeout,
		WriteTimeout: timeout,
	})

	if tracing {
		app.Use(observability.FiberMiddleware())
	}

	configureGlobalMiddleware(app, cfg)
	return app
}

func configureGlobalMiddleware(app *fiber.App, cfg *config.Config) {
	app.Use(middleware.RequestID())
	app.Use(recoverer.New())

	if cfg.Server.Environment == "production" {
		app.Use(helmet.New())
	}

	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.Server.CORS.AllowOrigins,
		AllowMethods: cfg.Server.CORS.AllowMethods,
		AllowHeaders: cfg.Server.CORS.AllowHeaders,
	}))

	app.Use(logger.New(logger.Config{
		Format: "${ip} - [${time}] [req_id=${locals:requestid}] ${method} ${url} ${status} ${latency}\n",
	}))
}
