package router

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/fx"

	"github.com/Alijeyrad/datalux_backend/config"
	"github.com/Alijeyrad/datalux_backend/internal/api/http/handler"
	"github.com/Alijeyrad/datalux_backend/internal/repo"
	"github.com/Alijeyrad/datalux_backend/internal/service/contact"
)

// Module provides the Router to the fx graph.
var Module = fx.Module("router", fx.Provide(NewRouter))

const readinessTimeout = 2 * time.Second

type Params struct {
	fx.In

	Cfg        *config.Config
	DB         *repo.Client
	ContactSvc contact.Service
}

// pinger is satisfied by *repo.Client.
type pinger interface {
	Ping(ctx context.Context) error
}

type Router struct {
	cfg        *config.Config
	db         pinger
	contactSvc contact.Service
}

func NewRouter(p Params) *Router {
	return &Router{cfg: p.Cfg, db: p.DB, contactSvc: p.ContactSvc}
}

func (r *Router) Register(app *fiber.App) {
	// 1. Health, docs & metrics
	r.registerSystemRoutes(app, handler.NewSystemHandler())

	// 2. Public API
	api := app.Group("/api")
	r.registerContactRoutes(api, handler.NewContactHandler(r.contactSvc))
}

func (r *Router) ready(c fiber.Ctx) bool {
	ctx, cancel := context.WithTimeout(c.Context(), readinessTimeout)
	defer cancel()
	return r.db.Ping(ctx) == nil
}
