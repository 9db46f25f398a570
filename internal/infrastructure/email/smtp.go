// Package email sends transactional mail over SMTP.
package email

import (
	"fmt"

	"gopkg.in/gomail.v2"

	"rentora/internal/shared/config"
	"rentora/internal/shared/logger"
)

type Sender struct {
	dialer *gomail.Dialer
	from   string
	name   string
	logger logger.Interface
}

func NewSender(cfg *config.EmailConfig, log logger.Interface) *Sender {
	return &Sender{
		dialer: gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword),
		from:   cfg.FromAddress,
		name:   cfg.FromName,
		logger: log,
	}
}

func (s *Sender) Send(to, subject, htmlBody string) error {
	m := gomail.NewMessage()
	m.SetAddressHeader("From", s.from, s.name)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", htmlBody)

	if err := s.dialer.DialAndSend(m); err != nil {
		s.logger.Errorw("failed to send email", "to", to, "subject", subject, "error", err)
		return fmt.Errorf("failed to send email: %w", err)
	}

	s.logger.Infow("email sent", "to", to, "subject", subject)
	return nil
}

// SendWelcome mails the initial credentials notice to a new company
// admin.
func (s *Sender) SendWelcome(to, companyName string) error {
	subject := fmt.Sprintf("Bienvenido a Rentora, %s", companyName)
	body := fmt.Sprintf(
		"<p>La cuenta de <strong>%s</strong> ya está activa.</p>"+
			"<p>Puede iniciar sesión con este correo y la contraseña definida durante el registro.</p>",
		companyName)
	return s.Send(to, subject, body)
}
