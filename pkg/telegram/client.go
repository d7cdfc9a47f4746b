// Package telegram sends operator alerts through the Telegram Bot API.
package telegram

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"github.com/Alijeyrad/datalux_backend/config"
)

var ErrDisabled = errors.New("telegram: bot token or chat id not configured")

// Client posts messages to a single chat. A client built without a token or
// chat id is disabled and refuses to send.
type Client struct {
	cfg Config
	bot *bot.Bot
}

func NewFromCentral(cfg config.TelegramConfig) (*Client, error) {
	return New(FromCentralConfig(cfg))
}

func New(cfg Config) (*Client, error) {
	if !cfg.Enabled() {
		return &Client{cfg: cfg}, nil
	}

	b, err := bot.New(cfg.BotToken,
		bot.WithSkipGetMe(),
		bot.WithServerURL(cfg.APIURL),
		bot.WithHTTPClient(cfg.Timeout, &http.Client{Timeout: cfg.Timeout}),
	)
	if err != nil {
		return nil, fmt.Errorf("telegram: create bot: %w", err)
	}
	return &Client{cfg: cfg, bot: b}, nil
}

func (c *Client) Enabled() bool {
	return c.bot != nil
}

func (c *Client) ChatID() string {
	return c.cfg.ChatID
}

// SendMarkdown posts text with legacy Markdown parsing, bounded by the
// configured timeout.
func (c *Client) SendMarkdown(ctx context.Context, text string) error {
	if !c.Enabled() {
		return ErrDisabled
	}

	ctx, cancel := context.WithTimeout(ctx, c.cfg.Timeout)
	defer cancel()

	_, err := c.bot.SendMessage(ctx, &bot.SendMessageParams{
		ChatID:    c.cfg.ChatID,
		Text:      text,
		ParseMode: models.ParseModeMarkdownV1,
	})
	if err != nil {
		return fmt.Errorf("telegram: send message: %w", err)
	}
	return nil
}
