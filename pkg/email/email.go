package email

import (
	"bytes"
	"context"
	"crypto/tls"
	"fmt"
	"html/template"
	"net"
	"net/smtp"
	"time"

	"go-portfolio-backend/config"
)

// Subjects match the original portfolio notification copy
const (
	confirmationSubject = "Gracias por tu mensaje"
	notificationSubject = "Nuevo mensaje desde el portfolio"
)

// Service sends the contact form emails via SMTP. A single instance is
// constructed at startup and shared across requests; each send opens its
// own connection, so no per-call state is retained.
type Service struct {
	host               string
	port               string
	username           string
	password           string
	fromEmail          string
	toEmail            string
	timeout            time.Duration
	insecureSkipVerify bool
}

// confirmationData holds the data for the acknowledgement email
type confirmationData struct {
	Name string
}

// notificationData holds the data for the owner alert email
type notificationData struct {
	Name    string
	Email   string
	Message string
}

// NewService creates a new email service from SMTP configuration
func NewService(cfg *config.Config) *Service {
	from := cfg.SMTPFromEmail
	if from == "" {
		// Gmail uses the login email as from address
		from = cfg.SMTPUsername
	}
	return &Service{
		host:               cfg.SMTPHost,
		port:               cfg.SMTPPort,
		username:           cfg.SMTPUsername,
		password:           cfg.SMTPPassword,
		fromEmail:          from,
		toEmail:            cfg.ContactEmailTo,
		timeout:            time.Duration(cfg.SMTPTimeoutSeconds) * time.Second,
		insecureSkipVerify: cfg.SMTPInsecureSkipVerify,
	}
}

// SendConfirmation sends the acknowledgement email to the submitter
func (s *Service) SendConfirmation(ctx context.Context, name, to string) error {
	body, err := render(confirmationTmpl, confirmationData{Name: name})
	if err != nil {
		return err
	}
	return s.send(ctx, to, confirmationSubject, "", body)
}

// SendNotification sends the alert email to the site owner. Reply-To is set
// to the submitter so the owner can answer directly.
func (s *Service) SendNotification(ctx context.Context, name, email, message string) error {
	body, err := render(notificationTmpl, notificationData{Name: name, Email: email, Message: message})
	if err != nil {
		return err
	}
	return s.send(ctx, s.toEmail, notificationSubject, email, body)
}

// IsConfigured checks if the email service has valid SMTP configuration
func (s *Service) IsConfigured() bool {
	return s.host != "" && s.username != "" && s.password != "" && s.toEmail != ""
}

// render executes an email template into an HTML string
func render(tmpl *template.Template, data interface{}) (string, error) {
	var body bytes.Buffer
	if err := tmpl.Execute(&body, data); err != nil {
		return "", fmt.Errorf("failed to execute email template: %w", err)
	}
	return body.String(), nil
}

// send delivers a single HTML message. The connection is bounded by the
// configured timeout; any dial, handshake or protocol error is returned
// to the caller, which decides whether it is fatal.
func (s *Service) send(ctx context.Context, to, subject, replyTo, body string) error {
	if !s.IsConfigured() {
		return fmt.Errorf("email service is not configured")
	}

	msg := s.buildMessage(to, subject, replyTo, body)

	addr := net.JoinHostPort(s.host, s.port)
	dialer := net.Dialer{Timeout: s.timeout}
	conn, err := dialer.DialContext(ctx, "tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to connect to SMTP server: %w", err)
	}
	_ = conn.SetDeadline(time.Now().Add(s.timeout))

	client, err := smtp.NewClient(conn, s.host)
	if err != nil {
		conn.Close()
		return fmt.Errorf("failed to create SMTP client: %w", err)
	}
	defer client.Close()

	if ok, _ := client.Extension("STARTTLS"); ok {
		tlsConfig := &tls.Config{
			ServerName: s.host,
			// Allows self-signed certs on non-production relays
			InsecureSkipVerify: s.insecureSkipVerify,
		}
		if err := client.StartTLS(tlsConfig); err != nil {
			return fmt.Errorf("smtp starttls failed: %w", err)
		}
	}

	if ok, _ := client.Extension("AUTH"); ok {
		auth := smtp.PlainAuth("", s.username, s.password, s.host)
		if err := client.Auth(auth); err != nil {
			return fmt.Errorf("smtp auth failed: %w", err)
		}
	}

	if err := client.Mail(s.fromEmail); err != nil {
		return fmt.Errorf("smtp mail from failed: %w", err)
	}
	if err := client.Rcpt(to); err != nil {
		return fmt.Errorf("smtp rcpt to failed: %w", err)
	}

	w, err := client.Data()
	if err != nil {
		return fmt.Errorf("smtp data failed: %w", err)
	}
	if _, err := w.Write(msg); err != nil {
		return fmt.Errorf("failed to write email body: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("failed to finish email body: %w", err)
	}

	return client.Quit()
}

// buildMessage constructs the MIME message
func (s *Service) buildMessage(to, subject, replyTo, body string) []byte {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "From: %s\r\n", s.fromEmail)
	fmt.Fprintf(&buf, "To: %s\r\n", to)
	if replyTo != "" {
		fmt.Fprintf(&buf, "Reply-To: %s\r\n", replyTo)
	}
	fmt.Fprintf(&buf, "Subject: %s\r\n", subject)
	buf.WriteString("MIME-Version: 1.0\r\n")
	buf.WriteString("Content-Type: text/html; charset=UTF-8\r\n")
	buf.WriteString("\r\n")
	buf.WriteString(body)
	return buf.Bytes()
}
