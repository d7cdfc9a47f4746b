package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadConfig_DefaultsWithoutFile(t *testing.T) {
	cfg, err := ReadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, 8000, cfg.Server.Port)
	assert.Equal(t, []string{"*"}, cfg.Server.CORS.AllowOrigins)
	assert.Equal(t, "smtp.gmail.com", cfg.Notify.Mail.Host)
	assert.Equal(t, 587, cfg.Notify.Mail.Port)
	assert.Equal(t, 10, cfg.Notify.Telegram.TimeoutSeconds)
	assert.True(t, cfg.Database.Migrations.AutoMigrate)

	assert.False(t, cfg.Notify.Mail.Configured())
	assert.False(t, cfg.Notify.Telegram.Configured())
}

func TestReadConfig_NotifierEnvironment(t *testing.T) {
	t.Setenv("SMTP_HOST", "mail.example.com")
	t.Setenv("SMTP_PORT", "2525")
	t.Setenv("SMTP_USER", "bot@example.com")
	t.Setenv("SMTP_PASSWORD", "secret")
	t.Setenv("NOTIFICATION_EMAIL", "ops@example.com")
	t.Setenv("TELEGRAM_BOT_TOKEN", "123:abc")
	t.Setenv("TELEGRAM_CHAT_ID", "-100200")

	cfg, err := ReadConfig(t.TempDir())
	require.NoError(t, err)

	mail := cfg.Notify.Mail
	assert.Equal(t, "mail.example.com", mail.Host)
	assert.Equal(t, 2525, mail.Port)
	assert.Equal(t, "bot@example.com", mail.Username)
	assert.Equal(t, "secret", mail.Password)
	assert.Equal(t, "ops@example.com", mail.To)
	assert.True(t, mail.Configured())

	assert.Equal(t, "123:abc", cfg.Notify.Telegram.BotToken)
	assert.Equal(t, "-100200", cfg.Notify.Telegram.ChatID)
	assert.True(t, cfg.Notify.Telegram.Configured())
}

func TestReadConfig_PartialMailIsUnconfigured(t *testing.T) {
	t.Setenv("SMTP_USER", "bot@example.com")
	t.Setenv("NOTIFICATION_EMAIL", "ops@example.com")

	cfg, err := ReadConfig(t.TempDir())
	require.NoError(t, err)
	assert.False(t, cfg.Notify.Mail.Configured())
}

func TestReadConfig_FileAndPrefixedEnv(t *testing.T) {
	dir := t.TempDir()
	yaml := []byte(`
server:
  port: 9000
  environment: development
database:
  host: db.internal
  dbname: contacts
logging:
  format: text
`)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), yaml, 0o644))
	t.Setenv("DATALUX_DATABASE_DBNAME", "override")

	cfg, err := ReadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, 9000, cfg.Server.Port)
	assert.Equal(t, "development", cfg.Server.Environment)
	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.Equal(t, "override", cfg.Database.DBName)
	assert.Equal(t, "text", cfg.Logging.Format)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{name: "valid", mutate: func(*Config) {}},
		{name: "zero server port", mutate: func(c *Config) { c.Server.Port = 0 }, wantErr: true},
		{name: "mail port too large", mutate: func(c *Config) { c.Notify.Mail.Port = 70000 }, wantErr: true},
		{name: "negative telegram timeout", mutate: func(c *Config) { c.Notify.Telegram.TimeoutSeconds = -1 }, wantErr: true},
		{name: "unknown log format", mutate: func(c *Config) { c.Logging.Format = "xml" }, wantErr: true},
		{name: "no database target", mutate: func(c *Config) { c.Database.Host = "" }, wantErr: true},
		{name: "url without host", mutate: func(c *Config) {
			c.Database.Host = ""
			c.Database.URL = "postgres://localhost/datalux"
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{
				Server:   ServerConfig{Port: 8000},
				Database: DatabaseConfig{Host: "localhost"},
				Logging:  LoggingConfig{Format: "json"},
			}
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
