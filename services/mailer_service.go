package services

import (
	"fmt"

	"github.com/ratemybandeco/backend/config"
	"gopkg.in/gomail.v2"
)

// Mailer sends the account-confirmation message. Delivery failures are
// returned to the caller, never swallowed.
type Mailer interface {
	SendConfirmation(toEmail, username, confirmLink string) error
}

// SMTPMailer delivers mail through the SMTP relay from the config.
type SMTPMailer struct {
	dialer *gomail.Dialer
	from   string
}

func NewSMTPMailer(cfg *config.Config) *SMTPMailer {
	return &SMTPMailer{
		dialer: gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword),
		from:   cfg.MailFrom,
	}
}

func (m *SMTPMailer) SendConfirmation(toEmail, username, confirmLink string) error {
	body := fmt.Sprintf(`Hello %s,

Thank you for signing up for Rate My Bandeco!

To confirm your email, click the link below:
%s

If you did not sign up, please ignore this message.

Rate My Bandeco team`, username, confirmLink)

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", toEmail)
	msg.SetHeader("Subject", "Confirm your email - Rate My Bandeco")
	msg.SetBody("text/plain", body)

	return m.dialer.DialAndSend(msg)
}
