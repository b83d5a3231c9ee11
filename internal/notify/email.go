package notify

import (
	"context"
	"crypto/tls"
	"fmt"
	"net/smtp"

	"ipowatch/internal/config"
)

// EmailChannel sends alert messages over authenticated SMTP.
type EmailChannel struct {
	smtpHost string
	smtpPort int
	username string
	password string
	from     string
	to       string
}

// NewEmailChannel creates an EmailChannel from the mail configuration.
func NewEmailChannel(cfg config.EmailConfig) *EmailChannel {
	return &EmailChannel{
		smtpHost: cfg.SMTPHost,
		smtpPort: cfg.SMTPPort,
		username: cfg.Username,
		password: cfg.Password,
		from:     cfg.From,
		to:       cfg.To,
	}
}

// Name returns the channel name.
func (e *EmailChannel) Name() string { return "email" }

// IsEnabled reports whether the channel has enough configuration to
// attempt delivery.
func (e *EmailChannel) IsEnabled() bool {
	return e.smtpHost != "" && e.from != "" && e.to != ""
}

// Send submits one plain-text message to the relay. Port 465 uses
// implicit TLS; other ports go through smtp.SendMail, which upgrades
// via STARTTLS when the server offers it.
func (e *EmailChannel) Send(ctx context.Context, msg Message) error {
	raw := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\nContent-Type: text/plain; charset=UTF-8\r\n\r\n%s",
		e.from, e.to, msg.Subject, msg.Body)

	addr := fmt.Sprintf("%s:%d", e.smtpHost, e.smtpPort)

	var auth smtp.Auth
	if e.username != "" && e.password != "" {
		auth = smtp.PlainAuth("", e.username, e.password, e.smtpHost)
	}

	if e.smtpPort == 465 {
		if err := e.sendWithTLS(addr, auth, raw); err != nil {
			return &DeliveryError{Channel: e.Name(), Err: err}
		}
		return nil
	}

	if err := smtp.SendMail(addr, auth, e.from, []string{e.to}, []byte(raw)); err != nil {
		return &DeliveryError{Channel: e.Name(), Err: err}
	}
	return nil
}

// sendWithTLS sends over an implicit-TLS connection (port 465).
func (e *EmailChannel) sendWithTLS(addr string, auth smtp.Auth, raw string) error {
	tlsConfig := &tls.Config{ServerName: e.smtpHost}

	conn, err := tls.Dial("tcp", addr, tlsConfig)
	if err != nil {
		return fmt.Errorf("TLS dial failed: %w", err)
	}
	defer conn.Close()

	client, err := smtp.NewClient(conn, e.smtpHost)
	if err != nil {
		return fmt.Errorf("creating SMTP client: %w", err)
	}
	defer client.Close()

	if auth != nil {
		if err := client.Auth(auth); err != nil {
			return fmt.Errorf("SMTP auth failed: %w", err)
		}
	}

	if err := client.Mail(e.from); err != nil {
		return fmt.Errorf("SMTP MAIL command failed: %w", err)
	}
	if err := client.Rcpt(e.to); err != nil {
		return fmt.Errorf("SMTP RCPT command failed: %w", err)
	}

	w, err := client.Data()
	if err != nil {
		return fmt.Errorf("SMTP DATA command failed: %w", err)
	}
	if _, err := w.Write([]byte(raw)); err != nil {
		return fmt.Errorf("writing email body: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("closing email body: %w", err)
	}

	return client.Quit()
}
