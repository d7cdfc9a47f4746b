package router

import (
	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/gofiber/fiber/v3/middleware/healthcheck"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Alijeyrad/datalux_backend/internal/api/http/handler"
	"github.com/Alijeyrad/datalux_backend/pkg/constants"
)

func (r *Router) registerSystemRoutes(app *fiber.App, h *handler.SystemHandler) {
	app.Get("/", h.Root)
	app.Get("/health", h.Health)
	app.Get(constants.DocsPath, h.Docs)

	app.Get(healthcheck.LivenessEndpoint, healthcheck.New())
	app.Get(healthcheck.ReadinessEndpoint, healthcheck.New(healthcheck.Config{
		Probe: r.ready,
	}))

	if r.cfg.Observability.Enabled && r.cfg.Observability.Metrics.Enabled {
		path := r.cfg.Observability.Metrics.Path
		if path == "" {
			path = "/metrics"
		}
		app.Get(path, adaptor.HTTPHandler(promhttp.Handler()))
	}
}
