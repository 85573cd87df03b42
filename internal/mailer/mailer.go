// Package mailer renders quote and contact emails and hands them to an
// SMTP transport. One delivery attempt per call: no queue, no retry,
// no persistence.
package mailer

import (
	"go.uber.org/zap"
	gomail "gopkg.in/gomail.v2"

	"github.com/bytewave/siteapi/internal/config"
)

// Message is one fully rendered email ready for delivery
type Message struct {
	To          string
	ToName      string
	ReplyTo     string
	ReplyToName string
	Subject     string
	HTML        string
	Text        string
}

// Sender delivers a rendered email. Implemented by SMTPSender; tests
// substitute a stub.
type Sender interface {
	Send(msg Message) error
}

// SMTPSender sends mail through the configured SMTP server
type SMTPSender struct {
	smtp   config.SMTPConfig
	mail   config.MailConfig
	logger *zap.Logger
}

// NewSMTPSender creates an SMTP-backed Sender
func NewSMTPSender(smtp config.SMTPConfig, mail config.MailConfig, logger *zap.Logger) *SMTPSender {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SMTPSender{smtp: smtp, mail: mail, logger: logger}
}

// Send performs a single SMTP delivery attempt. The plaintext body is the
// primary part with the HTML body as alternative.
func (s *SMTPSender) Send(msg Message) error {
	m := gomail.NewMessage()
	m.SetAddressHeader("From", s.mail.FromEmail, s.mail.FromName)
	m.SetAddressHeader("To", msg.To, msg.ToName)
	if msg.ReplyTo != "" {
		m.SetAddressHeader("Reply-To", msg.ReplyTo, msg.ReplyToName)
	}
	m.SetHeader("Subject", msg.Subject)
	m.SetBody("text/plain", msg.Text)
	if msg.HTML != "" {
		m.AddAlternative("text/html", msg.HTML)
	}

	d := gomail.NewDialer(s.smtp.Host, s.smtp.Port, s.smtp.Username, s.smtp.Password)
	if err := d.DialAndSend(m); err != nil {
		// Detail stays in the server log; callers surface a generic message
		s.logger.Error("SMTP delivery failed",
			zap.Error(err),
			zap.String("host", s.smtp.Host),
			zap.String("subject", msg.Subject),
		)
		return err
	}

	s.logger.Info("Email delivered",
		zap.String("to", msg.To),
		zap.String("subject", msg.Subject),
	)
	return nil
}
