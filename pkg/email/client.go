package email

import (
	"context"
	"strings"
	"time"

	"gopkg.in/gomail.v2"

	"github.com/Alijeyrad/datalux_backend/config"
)

// sender is the part of *gomail.Dialer the client uses.
type sender interface {
	DialAndSend(m ...*gomail.Message) error
}

type Client struct {
	cfg    Config
	dialer func() sender
}

// NewFromCentral creates a new email client from central config
func NewFromCentral(cfg config.MailConfig) *Client {
	return New(FromCentralConfig(cfg))
}

func New(cfg Config) *Client {
	c := &Client{cfg: cfg}
	c.dialer = c.newDialer
	return c
}

// Enabled reports whether the client has enough configuration to send.
func (c *Client) Enabled() bool {
	return c.cfg.Enabled()
}

// Recipient is the configured notification address.
func (c *Client) Recipient() string {
	return c.cfg.To
}

// Send delivers m, bounded by the SMTP timeout or ctx, whichever is sooner.
func (c *Client) Send(ctx context.Context, m Message) error {
	if !c.cfg.Enabled() {
		return ErrDisabled{}
	}

	if len(m.To) == 0 {
		m.To = []string{c.cfg.To}
	}

	msg, err := buildMessage(c.cfg.From, m)
	if err != nil {
		return err
	}

	d := c.dialer()

	done := make(chan error, 1)
	go func() {
		done <- d.DialAndSend(msg)
	}()

	wait := c.cfg.SMTPTimeout()
	if dl, ok := ctx.Deadline(); ok {
		if left := time.Until(dl); left > 0 && left < wait {
			wait = left
		}
	}

	timer := time.NewTimer(wait)
	defer timer.Stop()

	select {
	case err := <-done:
		if err != nil {
			return ErrSend{Provider: "gomail/smtp", Err: err}
		}
		return nil
	case <-ctx.Done():
		return ErrSend{Provider: "gomail/smtp", Err: ctx.Err()}
	case <-timer.C:
		return ErrSend{Provider: "gomail/smtp", Err: context.DeadlineExceeded}
	}
}

// newDialer uses STARTTLS when the server offers it; gomail switches to
// implicit TLS on port 465.
func (c *Client) newDialer() sender {
	return gomail.NewDialer(c.cfg.SMTPHost, c.cfg.SMTPPort, c.cfg.SMTPUsername, c.cfg.SMTPPassword)
}

func buildMessage(from string, m Message) (*gomail.Message, error) {
	msg := gomail.NewMessage()

	from = strings.TrimSpace(from)
	if from == "" {
		return nil, ErrInvalidMessage{Reason: "from is required"}
	}
	msg.SetHeader("From", from)

	to := cleanAddrs(m.To)
	if len(to) == 0 {
		return nil, ErrInvalidMessage{Reason: "at least one recipient is required"}
	}
	msg.SetHeader("To", to...)

	subj := strings.TrimSpace(m.Subject)
	if subj == "" {
		return nil, ErrInvalidMessage{Reason: "subject is required"}
	}
	msg.SetHeader("Subject", subj)

	for k, v := range m.Headers {
		k = strings.TrimSpace(k)
		v = strings.TrimSpace(v)
		if k == "" || v == "" {
			continue
		}
		msg.SetHeader(k, v)
	}

	if strings.TrimSpace(m.TextBody) == "" {
		return nil, ErrInvalidMessage{Reason: "TextBody is required"}
	}
	msg.SetBody("text/plain", m.TextBody)

	return msg, nil
}

func cleanAddrs(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		out = append(out, s)
	}
	return out
}
