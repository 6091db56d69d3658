// Package mail implements the outbound email side-channel: an SMTP mailer
// rendering the registration templates, and a sharded dispatcher for
// fire-and-forget welcome messages.
package mail

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"

	"github.com/jstanislawczyk/compcar-car-service-sub000/internal/core/ports"
)

// Config captures SMTP transport settings.
type Config struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string

	// FrontendURL is the base for confirmation links:
	// <FrontendURL>/register/confirmation/<code>
	FrontendURL string
}

// envelope is the minimal message contract handed to the transport.
type envelope struct {
	To      string
	Subject string
	HTML    string
	Text    string
}

// SMTPMailer sends account emails over plain SMTP with optional AUTH.
type SMTPMailer struct {
	cfg Config
	// send is swappable in tests; defaults to smtp.SendMail.
	send func(addr string, a smtp.Auth, from string, to []string, msg []byte) error
}

func NewSMTPMailer(cfg Config) *SMTPMailer {
	return &SMTPMailer{cfg: cfg, send: smtp.SendMail}
}

func (m *SMTPMailer) SendConfirmation(ctx context.Context, to string, mail ports.ConfirmationMail) error {
	return m.deliver(ctx, buildConfirmationMail(m.cfg.FrontendURL, to, mail))
}

func (m *SMTPMailer) SendWelcome(ctx context.Context, to string) error {
	return m.deliver(ctx, buildWelcomeMail(to))
}

func (m *SMTPMailer) deliver(ctx context.Context, env envelope) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	var auth smtp.Auth
	if m.cfg.Username != "" {
		auth = smtp.PlainAuth("", m.cfg.Username, m.cfg.Password, m.cfg.Host)
	}

	addr := fmt.Sprintf("%s:%d", m.cfg.Host, m.cfg.Port)
	if err := m.send(addr, auth, m.cfg.From, []string{env.To}, m.encode(env)); err != nil {
		return fmt.Errorf("smtp send: %w", err)
	}
	return nil
}

// encode renders a multipart/alternative MIME message with text and HTML parts.
func (m *SMTPMailer) encode(env envelope) []byte {
	const boundary = "compcar-mail-boundary"

	var b strings.Builder
	fmt.Fprintf(&b, "From: %s\r\n", m.cfg.From)
	fmt.Fprintf(&b, "To: %s\r\n", env.To)
	fmt.Fprintf(&b, "Subject: %s\r\n", env.Subject)
	b.WriteString("MIME-Version: 1.0\r\n")
	fmt.Fprintf(&b, "Content-Type: multipart/alternative; boundary=%q\r\n", boundary)
	b.WriteString("\r\n")

	fmt.Fprintf(&b, "--%s\r\n", boundary)
	b.WriteString("Content-Type: text/plain; charset=utf-8\r\n\r\n")
	b.WriteString(env.Text)
	b.WriteString("\r\n")

	fmt.Fprintf(&b, "--%s\r\n", boundary)
	b.WriteString("Content-Type: text/html; charset=utf-8\r\n\r\n")
	b.WriteString(env.HTML)
	b.WriteString("\r\n")

	fmt.Fprintf(&b, "--%s--\r\n", boundary)
	return []byte(b.String())
}
