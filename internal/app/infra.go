package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.uber.org/fx"

	"github.com/Alijeyrad/datalux_backend/config"
	"github.com/Alijeyrad/datalux_backend/internal/repo"
	"github.com/Alijeyrad/datalux_backend/pkg/database"
	"github.com/Alijeyrad/datalux_backend/pkg/email"
	"github.com/Alijeyrad/datalux_backend/pkg/observability"
	"github.com/Alijeyrad/datalux_backend/pkg/telegram"
)

// InfraModule provides all infrastructure dependencies.
var InfraModule = fx.Module("infra",
	fx.Provide(ProvideRepo),
	fx.Provide(ProvideEmailClient),
	fx.Provide(ProvideTelegramClient),
	fx.Provide(ProvideOTel),
)

func ProvideRepo(lc fx.Lifecycle, cfg *config.Config) (*repo.Client, error) {
	client, err := OpenRepo(cfg)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			slog.Debug("closing main database connection")
			return client.Close()
		},
	})
	return client, nil
}

// OpenRepo connects to the submission database and, when auto_migrate is
// on, brings the schema up to date.
func OpenRepo(cfg *config.Config) (*repo.Client, error) {
	db, err := database.Open(database.FromCentralConfig(cfg.Database))
	if err != nil {
		return nil, err
	}
	client := repo.NewClient(db)

	if cfg.Database.Migrations.AutoMigrate {
		ctx, cancel := context.WithTimeout(context.Background(), migrateTimeout(cfg))
		defer cancel()
		if err := repo.Migrate(ctx, client.Driver()); err != nil {
			client.Close()
			return nil, fmt.Errorf("auto migrate: %w", err)
		}
		slog.Info("database schema up to date")
	}
	return client, nil
}

func migrateTimeout(cfg *config.Config) time.Duration {
	if cfg.Server.TimeoutSeconds <= 0 {
		return 30 * time.Second
	}
	return time.Duration(cfg.Server.TimeoutSeconds) * time.Second
}

func ProvideEmailClient(cfg *config.Config) *email.Client {
	if !cfg.Notify.Mail.Configured() {
		slog.Info("mail notifications disabled: SMTP settings incomplete")
	}
	return email.NewFromCentral(cfg.Notify.Mail)
}

func ProvideTelegramClient(cfg *config.Config) (*telegram.Client, error) {
	if !cfg.Notify.Telegram.Configured() {
		slog.Info("telegram notifications disabled: bot token or chat id missing")
	}
	return telegram.NewFromCentral(cfg.Notify.Telegram)
}

func ProvideOTel(lc fx.Lifecycle, cfg *config.Config) (*observability.Provider, error) {
	if !cfg.Observability.Enabled {
		return nil, nil
	}
	provider, err := observability.InitTelemetry(context.Background(), observability.FromCentralConfig(cfg))
	if err != nil {
		return nil, err
	}
	slog.Info("observability initialized",
		"tracing", cfg.Observability.Tracing.Enabled,
		"metrics", cfg.Observability.Metrics.Enabled,
	)
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			slog.Debug("shutting down observability providers")
			return provider.Shutdown(ctx)
		},
	})
	return provider, nil
}
