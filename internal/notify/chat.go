package notify

import (
	"context"
	"log/slog"

	"github.com/Alijeyrad/datalux_backend/pkg/telegram"
)

const ChannelTelegram = "telegram"

type chatSender interface {
	Enabled() bool
	ChatID() string
	SendMarkdown(ctx context.Context, text string) error
}

type ChatNotifier struct {
	client chatSender
}

func NewChatNotifier(client *telegram.Client) *ChatNotifier {
	if client == nil {
		return &ChatNotifier{}
	}
	return &ChatNotifier{client: client}
}

func (n *ChatNotifier) Name() string { return ChannelTelegram }

func (n *ChatNotifier) Notify(ctx context.Context, c Contact) Outcome {
	if n.client == nil || !n.client.Enabled() {
		slog.InfoContext(ctx, "telegram credentials not configured, skipping telegram notification")
		return skipped(ChannelTelegram)
	}

	if err := n.client.SendMarkdown(ctx, chatText(c)); err != nil {
		return failed(ChannelTelegram, err)
	}

	slog.InfoContext(ctx, "telegram notification sent", "chat_id", n.client.ChatID())
	return sent(ChannelTelegram)
}
