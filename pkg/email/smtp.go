package email

import (
	"bytes"
	"context"
	"fmt"
	"html"
	"html/template"
	"mime"
	"net/mail"
	"net/smtp"
	"strings"
	"sync"
	"time"

	"portfolio-backend/config"

	"github.com/microcosm-cc/bluemonday"
)

// SubjectPrefix is prepended to every relayed subject.
const SubjectPrefix = "[Portfólio] "

type sendFunc func(addr string, a smtp.Auth, from string, to []string, msg []byte) error

// SMTPMailer relays contact messages to the operator mailbox via SMTP
type SMTPMailer struct {
	host      string
	port      string
	username  string
	password  string
	fromEmail string
	fromName  string
	toEmail   string
	send      sendFunc
	now       func() time.Time
}

// NewSMTPMailer creates a mailer from the SMTP settings in cfg
func NewSMTPMailer(cfg *config.Config) *SMTPMailer {
	from := cfg.SMTPFromEmail
	if from == "" {
		from = cfg.SMTPUsername
	}
	return &SMTPMailer{
		host:      cfg.SMTPHost,
		port:      cfg.SMTPPort,
		username:  cfg.SMTPUsername,
		password:  cfg.SMTPPassword,
		fromEmail: from,
		fromName:  cfg.SMTPFromName,
		toEmail:   cfg.ContactEmailTo,
		send:      smtp.SendMail,
		now:       time.Now,
	}
}

// contactEmailTemplate is the HTML template for contact form emails
var contactEmailTemplate = template.Must(template.New("contact").Parse(`<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>Nova mensagem do portfólio</title>
</head>
<body>
    <h2>Nova mensagem do portfólio</h2>
    <p><strong>Nome:</strong> {{.SenderName}}</p>
    <p><strong>Email:</strong> {{.SenderEmail}}</p>
    <p><strong>Assunto:</strong> {{.Subject}}</p>
    <hr />
    <p>{{.Body}}</p>
</body>
</html>`))

var (
	bodyPolicyOnce sync.Once
	bodyPolicy     *bluemonday.Policy
)

// messagePolicy only lets the line breaks produced by messageHTML through.
func messagePolicy() *bluemonday.Policy {
	bodyPolicyOnce.Do(func() {
		policy := bluemonday.StrictPolicy()
		policy.AllowElements("br")
		bodyPolicy = policy
	})
	return bodyPolicy
}

// messageHTML escapes the message and turns newlines into <br /> tags.
func messageHTML(message string) template.HTML {
	normalized := strings.ReplaceAll(message, "\r\n", "\n")
	escaped := strings.ReplaceAll(html.EscapeString(normalized), "\n", "<br />")
	return template.HTML(messagePolicy().Sanitize(escaped))
}

// Send relays one contact message to the configured recipient.
func (s *SMTPMailer) Send(ctx context.Context, data ContactEmail) error {
	if !s.IsConfigured() {
		return ErrNotConfigured
	}

	msg, err := s.buildMessage(data)
	if err != nil {
		return err
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	// smtp.SendMail has no context support; stop waiting when ctx ends.
	done := make(chan error, 1)
	go func() {
		auth := smtp.PlainAuth("", s.username, s.password, s.host)
		addr := fmt.Sprintf("%s:%s", s.host, s.port)
		done <- s.send(addr, auth, s.fromEmail, []string{s.toEmail}, msg)
	}()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case err := <-done:
		if err != nil {
			return fmt.Errorf("failed to send email: %w", err)
		}
		return nil
	}
}

func (s *SMTPMailer) buildMessage(data ContactEmail) ([]byte, error) {
	var body bytes.Buffer
	err := contactEmailTemplate.Execute(&body, struct {
		SenderName  string
		SenderEmail string
		Subject     string
		Body        template.HTML
	}{
		SenderName:  data.SenderName,
		SenderEmail: data.SenderEmail,
		Subject:     data.Subject,
		Body:        messageHTML(data.Message),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to execute email template: %w", err)
	}

	from := mail.Address{Name: s.fromName, Address: s.fromEmail}
	subject := mime.QEncoding.Encode("UTF-8", headerValue(SubjectPrefix+data.Subject))

	var msg bytes.Buffer
	fmt.Fprintf(&msg, "From: %s\r\n", from.String())
	fmt.Fprintf(&msg, "To: %s\r\n", headerValue(s.toEmail))
	fmt.Fprintf(&msg, "Reply-To: %s\r\n", headerValue(data.SenderEmail))
	fmt.Fprintf(&msg, "Subject: %s\r\n", subject)
	fmt.Fprintf(&msg, "Date: %s\r\n", s.now().Format(time.RFC1123Z))
	msg.WriteString("MIME-Version: 1.0\r\n")
	msg.WriteString("Content-Type: text/html; charset=UTF-8\r\n")
	msg.WriteString("\r\n")
	msg.Write(body.Bytes())

	return msg.Bytes(), nil
}

// IsConfigured checks if the mailer has valid SMTP configuration
func (s *SMTPMailer) IsConfigured() bool {
	return s.host != "" && s.username != "" && s.password != "" && s.toEmail != ""
}
