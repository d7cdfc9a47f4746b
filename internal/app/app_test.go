package app

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"

	"github.com/Alijeyrad/datalux_backend/config"
	"github.com/Alijeyrad/datalux_backend/internal/notify"
	"github.com/Alijeyrad/datalux_backend/pkg/email"
	"github.com/Alijeyrad/datalux_backend/pkg/observability"
	"github.com/Alijeyrad/datalux_backend/pkg/telegram"
)

func TestProvideNotifiers_Unconfigured(t *testing.T) {
	cfg := &config.Config{}

	var (
		mail *notify.MailNotifier
		chat *notify.ChatNotifier
	)
	app := fxtest.New(t,
		fx.Supply(cfg),
		fx.Provide(ProvideEmailClient, ProvideTelegramClient, ProvideMailNotifier, ProvideChatNotifier),
		fx.Populate(&mail, &chat),
	)
	app.RequireStart().RequireStop()

	require.NotNil(t, mail)
	require.NotNil(t, chat)
	assert.Equal(t, notify.ChannelMail, mail.Name())
	assert.Equal(t, notify.ChannelTelegram, chat.Name())
}

func TestProvideClients_Configured(t *testing.T) {
	cfg := &config.Config{Notify: config.NotifyConfig{
		Mail: config.MailConfig{
			Host: "smtp.example.com", Port: 587,
			Username: "bot@example.com", Password: "secret", To: "ops@example.com",
		},
		Telegram: config.TelegramConfig{BotToken: "123:abc", ChatID: "-100200"},
	}}

	var (
		mail *email.Client
		tg   *telegram.Client
	)
	app := fxtest.New(t,
		fx.Supply(cfg),
		fx.Provide(ProvideEmailClient, ProvideTelegramClient),
		fx.Populate(&mail, &tg),
	)
	app.RequireStart().RequireStop()

	assert.True(t, mail.Enabled())
	assert.Equal(t, "ops@example.com", mail.Recipient())
	assert.True(t, tg.Enabled())
}

func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, nil)))
	t.Cleanup(func() { slog.SetDefault(prev) })
	return &buf
}

func TestProvideClients_LogDisabledChannels(t *testing.T) {
	logs := captureLogs(t)
	cfg := &config.Config{Notify: config.NotifyConfig{
		Mail:     config.MailConfig{Host: "smtp.example.com", Port: 587, Username: "bot@example.com"},
		Telegram: config.TelegramConfig{BotToken: "123:abc"},
	}}

	mail := ProvideEmailClient(cfg)
	tg, err := ProvideTelegramClient(cfg)
	require.NoError(t, err)

	assert.Equal(t, cfg.Notify.Mail.Configured(), mail.Enabled())
	assert.Equal(t, cfg.Notify.Telegram.Configured(), tg.Enabled())
	assert.Contains(t, logs.String(), "mail notifications disabled")
	assert.Contains(t, logs.String(), "telegram notifications disabled")
}

func TestProvideClients_NoDisabledLogWhenConfigured(t *testing.T) {
	logs := captureLogs(t)
	cfg := &config.Config{Notify: config.NotifyConfig{
		Mail: config.MailConfig{
			Host: "smtp.example.com", Port: 587,
			Username: "bot@example.com", Password: "secret", To: "ops@example.com",
		},
		Telegram: config.TelegramConfig{BotToken: "123:abc", ChatID: "-100200"},
	}}

	assert.True(t, ProvideEmailClient(cfg).Enabled())
	tg, err := ProvideTelegramClient(cfg)
	require.NoError(t, err)
	assert.True(t, tg.Enabled())
	assert.NotContains(t, logs.String(), "disabled")
}

func TestProvideOTel_Disabled(t *testing.T) {
	var p *observability.Provider
	app := fxtest.New(t,
		fx.Supply(&config.Config{}),
		fx.Provide(ProvideOTel),
		fx.Populate(&p),
	)
	app.RequireStart().RequireStop()
	assert.Nil(t, p)
}

func TestMigrateTimeout(t *testing.T) {
	cfg := &config.Config{}
	assert.Equal(t, "30s", migrateTimeout(cfg).String())
	cfg.Server.TimeoutSeconds = 5
	assert.Equal(t, "5s", migrateTimeout(cfg).String())
}
