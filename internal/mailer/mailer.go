package mailer

import (
	"fmt"
	"log/slog"
	"net/smtp"

	"github.com/selimcobanoglu/storehub-backend/internal/config"
)

// Mailer delivers one-time passcodes. Delivery failure is reported to the
// caller but never rolls back the state that triggered the send.
type Mailer interface {
	SendOTP(email, code string) error
}

// New returns the SMTP mailer when a host is configured, otherwise the dev
// mailer that only logs the code.
func New(cfg *config.Config) Mailer {
	if cfg.SMTPHost == "" {
		slog.Info("SMTP not configured, using dev mailer")
		return &DevMailer{}
	}
	return &SMTPMailer{
		addr: cfg.SMTPHost + ":" + cfg.SMTPPort,
		auth: smtp.PlainAuth("", cfg.SMTPUser, cfg.SMTPPass, cfg.SMTPHost),
		from: cfg.SMTPFrom,
	}
}

type SMTPMailer struct {
	addr string
	auth smtp.Auth
	from string
}

func (m *SMTPMailer) SendOTP(email, code string) error {
	msg := []byte("From: " + m.from + "\r\n" +
		"To: " + email + "\r\n" +
		"Subject: Your verification code\r\n" +
		"\r\n" +
		"Your verification code is " + code + ". It expires in 10 minutes.\r\n")

	if err := smtp.SendMail(m.addr, m.auth, m.from, []string{email}, msg); err != nil {
		return fmt.Errorf("failed to send OTP mail: %w", err)
	}
	return nil
}

// DevMailer logs the code instead of sending mail. Local use only.
type DevMailer struct{}

func (m *DevMailer) SendOTP(email, code string) error {
	slog.Info("otp issued", "email", email, "code", code)
	return nil
}
