// Package notify delivers user-facing messages. Delivery failures are
// surfaced to callers but never abort the jobs that trigger them.
package notify

import (
	"context"
	"fmt"
	"net/smtp"

	"github.com/tasksphere/tasksphere-backend/internal/config"
)

// Notifier sends a message to a single recipient.
type Notifier interface {
	Notify(ctx context.Context, email, subject, body string) error
}

// SMTPNotifier delivers messages over plain SMTP.
type SMTPNotifier struct {
	cfg config.SMTPConfig
	// send is swappable in tests; defaults to smtp.SendMail.
	send func(addr string, a smtp.Auth, from string, to []string, msg []byte) error
}

// NewSMTPNotifier creates a notifier for the configured relay.
func NewSMTPNotifier(cfg config.SMTPConfig) *SMTPNotifier {
	return &SMTPNotifier{cfg: cfg, send: smtp.SendMail}
}

func (n *SMTPNotifier) Notify(ctx context.Context, email, subject, body string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	var auth smtp.Auth
	if n.cfg.Username != "" {
		auth = smtp.PlainAuth("", n.cfg.Username, n.cfg.Password, n.cfg.Host)
	}

	msg := fmt.Appendf(nil, "From: %s\r\nTo: %s\r\nSubject: %s\r\n\r\n%s\r\n",
		n.cfg.From, email, subject, body)

	addr := fmt.Sprintf("%s:%d", n.cfg.Host, n.cfg.Port)
	if err := n.send(addr, auth, n.cfg.From, []string{email}, msg); err != nil {
		return fmt.Errorf("send mail to %s: %w", email, err)
	}
	return nil
}
