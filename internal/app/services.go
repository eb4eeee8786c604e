package app

import (
	"context"
	"log/slog"

	"github.com/nats-io/nats.go"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"

	"github.com/telecare/telecare_backend/config"
	"github.com/telecare/telecare_backend/internal/realtime"
	"github.com/telecare/telecare_backend/internal/repo"
	"github.com/telecare/telecare_backend/internal/service/auth"
	"github.com/telecare/telecare_backend/internal/service/chat"
	"github.com/telecare/telecare_backend/internal/service/doctor"
	"github.com/telecare/telecare_backend/internal/service/onboarding"
	"github.com/telecare/telecare_backend/internal/service/presence"
	pasetotoken "github.com/telecare/telecare_backend/pkg/paseto"
)

// ServiceModule provides all application service dependencies.
var ServiceModule = fx.Module("services",
	fx.Provide(
		ProvideAuthService,
		ProvideOnboardingService,
		ProvideChatService,
		ProvidePresenceService,
		ProvideDoctorService,
		ProvideRealtimeManager,
	),
)

func ProvideAuthService(
	db *repo.Client,
	rdb *redis.Client,
	nc *nats.Conn,
	paseto *pasetotoken.Manager,
	cfg *config.Config,
) auth.Service {
	return auth.New(db, rdb, nc, paseto, cfg)
}

func ProvideOnboardingService(db *repo.Client, nc *nats.Conn, cfg *config.Config) (onboarding.Service, error) {
	return onboarding.New(db, nc, cfg)
}

func ProvideChatService(db *repo.Client, nc *nats.Conn) chat.Service {
	return chat.New(db, nc)
}

func ProvidePresenceService(db *repo.Client) presence.Service {
	return presence.New(db)
}

func ProvideDoctorService(db *repo.Client, pres presence.Service, cfg *config.Config) (doctor.Service, error) {
	return doctor.New(db, pres, cfg)
}

func ProvideRealtimeManager(
	lc fx.Lifecycle,
	chatSvc chat.Service,
	pres presence.Service,
	paseto *pasetotoken.Manager,
	nc *nats.Conn,
) *realtime.Manager {
	m := realtime.NewManager(chatSvc, pres, paseto, nc, slog.Default())
	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			return m.Start()
		},
		OnStop: func(context.Context) error {
			m.Stop()
			return nil
		},
	})
	return m
}
