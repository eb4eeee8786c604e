package router

import (
	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/gofiber/fiber/v3/middleware/healthcheck"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"

	"github.com/telecare/telecare_backend/config"
	"github.com/telecare/telecare_backend/internal/api/http/handler"
	"github.com/telecare/telecare_backend/internal/api/http/middleware"
	"github.com/telecare/telecare_backend/internal/realtime"
	"github.com/telecare/telecare_backend/internal/service/auth"
	"github.com/telecare/telecare_backend/internal/service/chat"
	"github.com/telecare/telecare_backend/internal/service/doctor"
	"github.com/telecare/telecare_backend/internal/service/onboarding"
	pasetotoken "github.com/telecare/telecare_backend/pkg/paseto"
)

// Module provides the Router to the fx graph.
var Module = fx.Module("router", fx.Provide(NewRouter))

type Params struct {
	fx.In

	Cfg           *config.Config
	Redis         *redis.Client
	AuthSvc       auth.Service
	OnboardingSvc onboarding.Service
	ChatSvc       chat.Service
	DoctorSvc     doctor.Service
	Realtime      *realtime.Manager
	PasetoMgr     *pasetotoken.Manager
}

type Router struct {
	p Params
}

func NewRouter(p Params) *Router {
	return &Router{p: p}
}

func (r *Router) Register(app *fiber.App) {
	r.registerSystemRoutes(app)

	authRequired := middleware.AuthRequired(r.p.PasetoMgr, r.p.Redis)
	patientOnly := middleware.RequireRole(pasetotoken.RolePatient)
	doctorOnly := middleware.RequireRole(pasetotoken.RoleDoctor)

	authH := handler.NewAuthHandler(r.p.AuthSvc)
	onboardingH := handler.NewOnboardingHandler(r.p.OnboardingSvc)
	chatH := handler.NewChatHandler(r.p.ChatSvc)
	doctorH := handler.NewDoctorHandler(r.p.DoctorSvc)

	api := app.Group("/api/v1")

	r.registerAuthRoutes(api, authH, authRequired)
	r.registerOnboardingRoutes(api, onboardingH, authRequired, patientOnly)
	r.registerChatRoutes(api, chatH, authRequired, patientOnly, doctorOnly)
	r.registerDoctorRoutes(api, doctorH, authRequired, doctorOnly)
	r.registerRealtimeRoutes(app)
}

func (r *Router) registerSystemRoutes(app *fiber.App) {
	app.Get(healthcheck.LivenessEndpoint, healthcheck.New())
	app.Get(healthcheck.ReadinessEndpoint, healthcheck.New())
	app.Get(healthcheck.StartupEndpoint, healthcheck.New())

	if r.p.Cfg.Observability.Enabled && r.p.Cfg.Observability.Metrics.Enabled {
		path := r.p.Cfg.Observability.Metrics.Path
		if path == "" {
			path = "/metrics"
		}
		app.Get(path, adaptor.HTTPHandler(promhttp.Handler()))
	}
}
