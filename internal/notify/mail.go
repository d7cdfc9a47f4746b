package notify

import (
	"context"
	"log/slog"

	"github.com/Alijeyrad/datalux_backend/pkg/email"
)

const ChannelMail = "mail"

type mailSender interface {
	Enabled() bool
	Recipient() string
	Send(ctx context.Context, m email.Message) error
}

type MailNotifier struct {
	client mailSender
}

func NewMailNotifier(client *email.Client) *MailNotifier {
	if client == nil {
		return &MailNotifier{}
	}
	return &MailNotifier{client: client}
}

func (n *MailNotifier) Name() string { return ChannelMail }

func (n *MailNotifier) Notify(ctx context.Context, c Contact) Outcome {
	if n.client == nil || !n.client.Enabled() {
		slog.InfoContext(ctx, "email credentials not configured, skipping email notification")
		return skipped(ChannelMail)
	}

	err := n.client.Send(ctx, email.Message{
		Subject:  mailSubject(c),
		TextBody: mailBody(c),
		// operators answer the visitor directly
		Headers:  map[string]string{"Reply-To": c.Email},
	})
	if err != nil {
		return failed(ChannelMail, err)
	}

	slog.InfoContext(ctx, "email notification sent", "to", n.client.Recipient())
	return sent(ChannelMail)
}
