package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/Alijeyrad/datalux_backend/pkg/constants"
)

// envBindings maps config keys to the unprefixed environment variables the
// deployment already provides.
var envBindings = map[string]string{
	"notify.mail.host":          "SMTP_HOST",
	"notify.mail.port":          "SMTP_PORT",
	"notify.mail.username":      "SMTP_USER",
	"notify.mail.password":      "SMTP_PASSWORD",
	"notify.mail.to":            "NOTIFICATION_EMAIL",
	"notify.telegram.bot_token": "TELEGRAM_BOT_TOKEN",
	"notify.telegram.chat_id":   "TELEGRAM_CHAT_ID",
	"database.url":              "DATABASE_URL",
	"server.port":               "PORT",
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8000)
	v.SetDefault("server.timeout_seconds", 30)
	v.SetDefault("server.environment", "production")
	v.SetDefault("server.cors.allow_origins", []string{"*"})
	v.SetDefault("server.cors.allow_methods", []string{"GET", "POST", "HEAD", "PUT", "DELETE", "PATCH", "OPTIONS"})
	v.SetDefault("server.cors.allow_headers", []string{})

	v.SetDefault("database.url", "")
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.password", "")
	v.SetDefault("database.dbname", "datalux")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.pool.max_open_conns", 25)
	v.SetDefault("database.pool.max_idle_conns", 5)
	v.SetDefault("database.pool.conn_max_lifetime_minutes", 5)
	v.SetDefault("database.migrations.auto_migrate", true)

	v.SetDefault("notify.mail.host", "smtp.gmail.com")
	v.SetDefault("notify.mail.port", 587)
	v.SetDefault("notify.mail.username", "")
	v.SetDefault("notify.mail.password", "")
	v.SetDefault("notify.mail.to", "")
	v.SetDefault("notify.mail.timeout_seconds", 30)
	v.SetDefault("notify.telegram.bot_token", "")
	v.SetDefault("notify.telegram.chat_id", "")
	v.SetDefault("notify.telegram.api_url", "https://api.telegram.org")
	v.SetDefault("notify.telegram.timeout_seconds", 10)

	v.SetDefault("observability.enabled", false)
	v.SetDefault("observability.service_name", constants.ServiceName)
	v.SetDefault("observability.service_version", constants.ServiceVersion)
	v.SetDefault("observability.tracing.enabled", false)
	v.SetDefault("observability.tracing.otlp_endpoint", "")
	v.SetDefault("observability.tracing.otlp_insecure", false)
	v.SetDefault("observability.tracing.sampling_rate", 1.0)
	v.SetDefault("observability.metrics.enabled", false)
	v.SetDefault("observability.metrics.path", "/metrics")

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")
	v.SetDefault("logging.output.stdout", true)
	v.SetDefault("logging.output.file.enabled", false)
	v.SetDefault("logging.output.file.path", "logs/app.log")
	v.SetDefault("logging.output.file.max_size_mb", 100)
	v.SetDefault("logging.output.file.max_backups", 5)
	v.SetDefault("logging.output.file.max_age_days", 30)
	v.SetDefault("logging.output.file.compress", true)
	v.SetDefault("logging.output.loki.enabled", false)
	v.SetDefault("logging.output.loki.endpoint", "")
	v.SetDefault("logging.output.loki.username", "")
	v.SetDefault("logging.output.loki.password", "")
}

// ReadConfig loads config.yaml from configPath if present, then applies
// environment overrides. A missing file is not an error.
func ReadConfig(configPath string) (*Config, error) {
	v := viper.New()
	v.SetConfigName(constants.ConfigName)
	v.SetConfigType(constants.ConfigFormat)
	v.AddConfigPath(configPath)

	setDefaults(v)

	// e.g. DATALUX_DATABASE_HOST overrides database.host
	v.SetEnvPrefix(constants.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	for key, env := range envBindings {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("bind env %s: %w", env, err)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode into struct: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &config, nil
}
