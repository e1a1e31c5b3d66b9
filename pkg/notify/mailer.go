// Package notify delivers operator alert emails over SMTP.
package notify

import (
	"context"
	"fmt"

	"github.com/wneessen/go-mail"
	"go.uber.org/zap"
)

// Config holds the SMTP settings for alert delivery.
type Config struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	To       string
}

// Enabled reports whether enough configuration is present to send mail.
func (c Config) Enabled() bool {
	return c.Host != "" && c.Username != "" && c.Password != "" && c.To != ""
}

// MailNotifier sends alert emails. Callers treat delivery as fire-and-forget:
// errors are returned for logging but must not change the caller's outcome.
type MailNotifier struct {
	client *mail.Client
	cfg    Config
	logger *zap.Logger
}

// NewMailNotifier builds an SMTP-backed notifier from the given settings.
func NewMailNotifier(cfg Config, logger *zap.Logger) (*MailNotifier, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	client, err := mail.NewClient(cfg.Host,
		mail.WithPort(cfg.Port),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(cfg.Username),
		mail.WithPassword(cfg.Password),
	)
	if err != nil {
		return nil, fmt.Errorf("build smtp client: %w", err)
	}

	return &MailNotifier{client: client, cfg: cfg, logger: logger}, nil
}

// Alert sends a plain-text alert email with the given subject and message.
func (n *MailNotifier) Alert(ctx context.Context, subject, message string) error {
	msg := mail.NewMsg()
	if err := msg.From(n.cfg.From); err != nil {
		return fmt.Errorf("set sender: %w", err)
	}
	if err := msg.To(n.cfg.To); err != nil {
		return fmt.Errorf("set recipient: %w", err)
	}
	msg.Subject(subject)
	msg.SetBodyString(mail.TypeTextPlain, message)

	if err := n.client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("send alert mail: %w", err)
	}

	n.logger.Info("alert sent", zap.String("subject", subject))
	return nil
}
