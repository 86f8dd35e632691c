package notification

import (
	"context"

	"expertbridge/utils"

	"go.uber.org/zap"
	"gopkg.in/gomail.v2"
)

// SMTPMailer sends HTML mail through a plain SMTP relay.
type SMTPMailer struct {
	dialer *gomail.Dialer
	from   string
}

// NewMailer builds the SMTP mailer, or a logging no-op when no host is
// configured so notification calls stay safe in every environment.
func NewMailer(host string, port int, username, password, from string) Mailer {
	if host == "" {
		utils.GetLogger().Warn("SMTP not configured, email notifications disabled")
		return &DisabledMailer{}
	}
	return &SMTPMailer{
		dialer: gomail.NewDialer(host, port, username, password),
		from:   from,
	}
}

func (m *SMTPMailer) Send(ctx context.Context, to, subject, htmlBody string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", htmlBody)

	done := make(chan error, 1)
	go func() {
		done <- m.dialer.DialAndSend(msg)
	}()

	select {
	case err := <-done:
		if err != nil {
			utils.GetLogger().Warn("Failed to send email",
				zap.String("to", to),
				zap.String("subject", subject),
				zap.Error(err))
			return err
		}
		return nil
	case <-ctx.Done():
		utils.GetLogger().Warn("Email send cancelled", zap.String("to", to), zap.Error(ctx.Err()))
		return ctx.Err()
	}
}

// DisabledMailer drops mail on the floor, loudly enough for development.
type DisabledMailer struct{}

func (m *DisabledMailer) Send(ctx context.Context, to, subject, htmlBody string) error {
	utils.GetLogger().Debug("Email notification skipped (mailer disabled)",
		zap.String("to", to),
		zap.String("subject", subject))
	return nil
}
