package email

import (
	"context"
	"crypto/tls"
	"fmt"
	"mime"
	"net"
	"net/mail"
	"net/smtp"
	"strings"
	"time"

	"go.uber.org/zap"

	"exeat_backend/internals/configs"
)

// Mailer hands one HTML message to a transport.
type Mailer interface {
	Send(ctx context.Context, to, subject, htmlBody string) error
}

// NewMailerFromConfig returns an SMTP mailer, or a logging one when SMTP_HOST is unset.
func NewMailerFromConfig() Mailer {
	if strings.TrimSpace(configs.SMTPHost) == "" {
		return LogMailer{}
	}
	return NewSMTPMailer(configs.SMTPHost, configs.SMTPPort, configs.SMTPUser, configs.SMTPPass, configs.MailFromName)
}

/* =========================================================
   SMTP
========================================================= */

type SMTPMailer struct {
	host     string
	port     string
	username string
	password string
	fromName string
	timeout  time.Duration
}

func NewSMTPMailer(host, port, user, pass, fromName string) *SMTPMailer {
	return &SMTPMailer{
		host:     host,
		port:     port,
		username: user,
		password: pass,
		fromName: fromName,
		timeout:  15 * time.Second,
	}
}

func (m *SMTPMailer) Send(ctx context.Context, to, subject, htmlBody string) error {
	from := mail.Address{Name: m.fromName, Address: m.username}
	msg := []byte(
		fmt.Sprintf("From: %s\r\n", from.String()) +
			fmt.Sprintf("To: %s\r\n", to) +
			fmt.Sprintf("Subject: %s\r\n", mime.QEncoding.Encode("utf-8", subject)) +
			"MIME-Version: 1.0\r\n" +
			"Content-Type: text/html; charset=\"utf-8\"\r\n" +
			"\r\n" +
			htmlBody,
	)

	client, err := m.dial(ctx)
	if err != nil {
		return err
	}
	defer client.Close()

	if m.username != "" {
		auth := smtp.PlainAuth("", m.username, m.password, m.host)
		if err := client.Auth(auth); err != nil {
			return fmt.Errorf("smtp auth: %w", err)
		}
	}
	if err := client.Mail(m.username); err != nil {
		return err
	}
	if err := client.Rcpt(to); err != nil {
		return err
	}
	w, err := client.Data()
	if err != nil {
		return err
	}
	if _, err := w.Write(msg); err != nil {
		return err
	}
	if err := w.Close(); err != nil {
		return err
	}
	return client.Quit()
}

// dial uses implicit TLS on 465 and STARTTLS on any other port.
func (m *SMTPMailer) dial(ctx context.Context) (*smtp.Client, error) {
	addr := net.JoinHostPort(m.host, m.port)
	tlsConfig := &tls.Config{ServerName: m.host}

	dialer := &net.Dialer{Timeout: m.timeout}
	conn, err := dialer.DialContext(ctx, "tcp", addr)
	if err != nil {
		return nil, err
	}
	deadline := time.Now().Add(m.timeout)
	if d, ok := ctx.Deadline(); ok && d.Before(deadline) {
		deadline = d
	}
	_ = conn.SetDeadline(deadline)

	if m.port == "465" {
		conn = tls.Client(conn, tlsConfig)
	}
	client, err := smtp.NewClient(conn, m.host)
	if err != nil {
		conn.Close()
		return nil, err
	}
	if m.port != "465" {
		if ok, _ := client.Extension("STARTTLS"); ok {
			if err := client.StartTLS(tlsConfig); err != nil {
				client.Close()
				return nil, fmt.Errorf("starttls: %w", err)
			}
		}
	}
	return client, nil
}

/* =========================================================
   LOG ONLY (no SMTP configured)
========================================================= */

type LogMailer struct{}

func (LogMailer) Send(ctx context.Context, to, subject, htmlBody string) error {
	configs.Log().Info("email (not sent, SMTP disabled)",
		zap.String("to", to),
		zap.String("subject", subject),
		zap.Int("body_bytes", len(htmlBody)),
	)
	return nil
}
