package email

import (
	"time"

	"github.com/Alijeyrad/datalux_backend/config"
)

// Config holds SMTP settings. The SMTP username is also the sender address.
type Config struct {
	From string
	To   string

	SMTPHost           string
	SMTPPort           int
	SMTPUsername       string
	SMTPPassword       string
	SMTPTimeoutSeconds int
}

// DefaultConfig returns defaults matching a STARTTLS submission port.
func DefaultConfig() Config {
	return Config{
		SMTPHost:           "smtp.gmail.com",
		SMTPPort:           587,
		SMTPTimeoutSeconds: 30,
	}
}

// Enabled reports whether every setting needed to deliver mail is present.
func (c Config) Enabled() bool {
	return c.SMTPHost != "" && c.SMTPPort > 0 &&
		c.SMTPUsername != "" && c.SMTPPassword != "" &&
		c.From != "" && c.To != ""
}

// SMTPTimeout returns the SMTP timeout as a duration
func (c Config) SMTPTimeout() time.Duration {
	if c.SMTPTimeoutSeconds <= 0 {
		return 30 * time.Second
	}
	return time.Duration(c.SMTPTimeoutSeconds) * time.Second
}

// FromCentralConfig converts central config.MailConfig to package Config
func FromCentralConfig(c config.MailConfig) Config {
	return Config{
		From:               c.Username,
		To:                 c.To,
		SMTPHost:           c.Host,
		SMTPPort:           c.Port,
		SMTPUsername:       c.Username,
		SMTPPassword:       c.Password,
		SMTPTimeoutSeconds: c.TimeoutSeconds,
	}
}
