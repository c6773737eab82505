// internal/app/system/mailer/mailer.go

// Package mailer sends transactional email over SMTP.
//
// Sends are best-effort at call sites: handlers log a failure and carry
// on rather than failing the request, so an unreachable relay never
// blocks signup or approval.
package mailer

import (
	"fmt"
	"mime"
	"net/smtp"
	"strings"

	"go.uber.org/zap"
)

// Email is one outbound message. TextBody is required; HTMLBody is
// optional and, when present, is sent as a multipart/alternative part.
type Email struct {
	To       string
	Subject  string
	TextBody string
	HTMLBody string
}

// Config holds SMTP relay settings.
type Config struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string // e.g. "ChurchHub <no-reply@example.com>"

	// Enabled gates all sends. When false, Send logs and returns nil so
	// dev environments work without a relay.
	Enabled bool
}

// Mailer sends email through a single configured relay.
type Mailer struct {
	cfg Config
	log *zap.Logger
}

// New builds a Mailer. Returns an error when enabled without a host or
// sender address.
func New(cfg Config, logger *zap.Logger) (*Mailer, error) {
	if cfg.Enabled {
		if cfg.Host == "" {
			return nil, fmt.Errorf("mailer enabled but smtp host is empty")
		}
		if cfg.From == "" {
			return nil, fmt.Errorf("mailer enabled but from address is empty")
		}
	}
	if cfg.Port == 0 {
		cfg.Port = 587
	}
	return &Mailer{cfg: cfg, log: logger}, nil
}

// Send delivers one message. A nil Mailer is a no-op so tests can pass
// nil without wiring a relay.
func (m *Mailer) Send(email Email) error {
	if m == nil {
		return nil
	}
	if !m.cfg.Enabled {
		m.log.Info("mailer disabled; skipping send",
			zap.String("to", email.To),
			zap.String("subject", email.Subject))
		return nil
	}
	if email.To == "" {
		return fmt.Errorf("email has no recipient")
	}

	addr := fmt.Sprintf("%s:%d", m.cfg.Host, m.cfg.Port)
	var auth smtp.Auth
	if m.cfg.Username != "" {
		auth = smtp.PlainAuth("", m.cfg.Username, m.cfg.Password, m.cfg.Host)
	}

	msg := m.buildMessage(email)
	if err := smtp.SendMail(addr, auth, envelopeFrom(m.cfg.From), []string{email.To}, msg); err != nil {
		return fmt.Errorf("smtp send to %s: %w", email.To, err)
	}

	m.log.Info("email sent",
		zap.String("to", email.To),
		zap.String("subject", email.Subject))
	return nil
}

// buildMessage assembles the RFC 5322 message bytes.
func (m *Mailer) buildMessage(email Email) []byte {
	var b strings.Builder

	b.WriteString("From: " + m.cfg.From + "\r\n")
	b.WriteString("To: " + email.To + "\r\n")
	b.WriteString("Subject: " + mime.QEncoding.Encode("utf-8", email.Subject) + "\r\n")
	b.WriteString("MIME-Version: 1.0\r\n")

	if email.HTMLBody == "" {
		b.WriteString("Content-Type: text/plain; charset=utf-8\r\n")
		b.WriteString("\r\n")
		b.WriteString(email.TextBody)
		return []byte(b.String())
	}

	const boundary = "churchhub-alt-boundary"
	b.WriteString("Content-Type: multipart/alternative; boundary=" + boundary + "\r\n")
	b.WriteString("\r\n")

	b.WriteString("--" + boundary + "\r\n")
	b.WriteString("Content-Type: text/plain; charset=utf-8\r\n\r\n")
	b.WriteString(email.TextBody)
	b.WriteString("\r\n")

	b.WriteString("--" + boundary + "\r\n")
	b.WriteString("Content-Type: text/html; charset=utf-8\r\n\r\n")
	b.WriteString(email.HTMLBody)
	b.WriteString("\r\n")

	b.WriteString("--" + boundary + "--\r\n")
	return []byte(b.String())
}

// envelopeFrom strips an optional display name ("Name <addr>") down to
// the bare address for the SMTP envelope.
func envelopeFrom(from string) string {
	if i := strings.Index(from, "<"); i >= 0 {
		if j := strings.Index(from[i:], ">"); j > 0 {
			return from[i+1 : i+j]
		}
	}
	return from
}
