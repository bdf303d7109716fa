package mail

import (
	"go.uber.org/zap"
	gomail "gopkg.in/gomail.v2"

	"github.com/spec-kit/pos-service/internal/config"
)

// Mailer delivers best-effort mail. Callers treat delivery as
// fire-and-forget; failures are logged by the notification layer, never
// surfaced to a request.
type Mailer interface {
	Send(to, subject, body string) error
}

// NewMailer returns an SMTP-backed mailer, or a log-only mailer when no
// SMTP host is configured.
func NewMailer(cfg config.MailConfig, logger *zap.Logger) Mailer {
	if cfg.Host == "" {
		logger.Warn("MAIL_HOST not provided; outgoing mail will only be logged")
		return &logMailer{logger: logger}
	}
	return &smtpMailer{
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
		from:   cfg.From,
	}
}

type smtpMailer struct {
	dialer *gomail.Dialer
	from   string
}

func (m *smtpMailer) Send(to, subject, body string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)
	return m.dialer.DialAndSend(msg)
}

type logMailer struct {
	logger *zap.Logger
}

func (m *logMailer) Send(to, subject, body string) error {
	m.logger.Info("mail (log only)",
		zap.String("to", to),
		zap.String("subject", subject),
		zap.String("body", body))
	return nil
}
