package telegram

import (
	"time"

	"github.com/Alijeyrad/datalux_backend/config"
)

const DefaultAPIURL = "https://api.telegram.org"

// Config holds the bot credentials and destination chat.
type Config struct {
	BotToken string
	ChatID   string
	APIURL   string
	Timeout  time.Duration
}

func (c Config) Enabled() bool {
	return c.BotToken != "" && c.ChatID != ""
}

func FromCentralConfig(c config.TelegramConfig) Config {
	cfg := Config{
		BotToken: c.BotToken,
		ChatID:   c.ChatID,
		APIURL:   c.APIURL,
		Timeout:  time.Duration(c.TimeoutSeconds) * time.Second,
	}
	if cfg.APIURL == "" {
		cfg.APIURL = DefaultAPIURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}
	return cfg
}
