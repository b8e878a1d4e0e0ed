package notify

import (
	"fmt"
	"net/smtp"
	"strings"

	"tourism-booking/pkg/utils"

	"go.uber.org/zap"
)

type sendFunc func(addr string, a smtp.Auth, from string, to []string, msg []byte) error

// Mailer sends plain-text mail over SMTP
type Mailer struct {
	cfg  utils.EmailConfig
	log  *zap.Logger
	send sendFunc
}

func NewMailer(cfg utils.EmailConfig, log *zap.Logger) *Mailer {
	return &Mailer{
		cfg:  cfg,
		log:  log.With(zap.String("component", "mailer")),
		send: smtp.SendMail,
	}
}

// Configured reports whether host and credentials are all set
func (m *Mailer) Configured() bool {
	return m.cfg.Host != "" && m.cfg.User != "" && m.cfg.Password != ""
}

func (m *Mailer) from() string {
	if m.cfg.From != "" {
		return m.cfg.From
	}
	return m.cfg.User
}

func (m *Mailer) Send(msg Message) error {
	if !m.Configured() {
		m.log.Info("SMTP config is missing, skipping email",
			zap.String("to", msg.To),
			zap.String("subject", msg.Subject))
		return nil
	}

	addr := fmt.Sprintf("%s:%d", m.cfg.Host, m.cfg.Port)
	auth := smtp.PlainAuth("", m.cfg.User, m.cfg.Password, m.cfg.Host)

	if err := m.send(addr, auth, m.cfg.User, []string{msg.To}, m.render(msg)); err != nil {
		return fmt.Errorf("send email to %s: %w", msg.To, err)
	}

	m.log.Info("Email sent", zap.String("to", msg.To), zap.String("subject", msg.Subject))
	return nil
}

func headerSafe(s string) string {
	return strings.NewReplacer("\r", " ", "\n", " ").Replace(strings.TrimSpace(s))
}

func (m *Mailer) render(msg Message) []byte {
	var sb strings.Builder
	sb.WriteString("From: " + headerSafe(m.from()) + "\r\n")
	sb.WriteString("To: " + headerSafe(msg.To) + "\r\n")
	sb.WriteString("Subject: " + headerSafe(msg.Subject) + "\r\n")
	sb.WriteString("MIME-Version: 1.0\r\n")
	sb.WriteString("Content-Type: text/plain; charset=utf-8\r\n\r\n")
	sb.WriteString(strings.ReplaceAll(msg.Body, "\n", "\r\n"))
	sb.WriteString("\r\n")
	return []byte(sb.String())
}
