package email

import (
	"context"
	"errors"
	"mime"
	"net/smtp"
	"strings"
	"testing"
	"time"

	"portfolio-backend/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	return &config.Config{
		DeliveryMode:   config.DeliverySMTP,
		SMTPHost:       "smtp.example.com",
		SMTPPort:       "587",
		SMTPUsername:   "login@example.com",
		SMTPPassword:   "secret",
		SMTPFromEmail:  "noreply@example.com",
		SMTPFromName:   "Portfolio",
		ContactEmailTo: "owner@example.com",
	}
}

type capturedMail struct {
	addr string
	from string
	to   []string
	msg  string
}

func newCapturingMailer(t *testing.T, sendErr error) (*SMTPMailer, *capturedMail) {
	t.Helper()
	captured := &capturedMail{}
	m := NewSMTPMailer(testConfig())
	m.now = func() time.Time { return time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC) }
	m.send = func(addr string, _ smtp.Auth, from string, to []string, msg []byte) error {
		captured.addr = addr
		captured.from = from
		captured.to = to
		captured.msg = string(msg)
		return sendErr
	}
	return m, captured
}

func TestSMTPMailerSend(t *testing.T) {
	m, captured := newCapturingMailer(t, nil)

	err := m.Send(context.Background(), ContactEmail{
		SenderName:  "Jo <b>",
		SenderEmail: "jo@x.com",
		Subject:     "Hello there",
		Message:     "line one\nline two <script>alert(1)</script>",
	})
	require.NoError(t, err)

	assert.Equal(t, "smtp.example.com:587", captured.addr)
	assert.Equal(t, "noreply@example.com", captured.from)
	assert.Equal(t, []string{"owner@example.com"}, captured.to)

	headers, body, found := strings.Cut(captured.msg, "\r\n\r\n")
	require.True(t, found)
	assert.Contains(t, headers, "Reply-To: jo@x.com\r\n")
	assert.Contains(t, headers, "To: owner@example.com\r\n")
	assert.Contains(t, headers, "Content-Type: text/html; charset=UTF-8")

	var subject string
	for _, line := range strings.Split(headers, "\r\n") {
		if value, ok := strings.CutPrefix(line, "Subject: "); ok {
			subject = value
		}
	}
	decoded, err := new(mime.WordDecoder).DecodeHeader(subject)
	require.NoError(t, err)
	assert.Equal(t, "[Portfólio] Hello there", decoded)

	assert.Contains(t, body, "line one<br")
	assert.Contains(t, body, "line two")
	assert.NotContains(t, body, "<script>")
	assert.NotContains(t, body, "<b>")
}

func TestSMTPMailerStripsHeaderInjection(t *testing.T) {
	m, captured := newCapturingMailer(t, nil)

	err := m.Send(context.Background(), ContactEmail{
		SenderName:  "Jo",
		SenderEmail: "jo@x.com\r\nBcc: victim@example.com",
		Subject:     "Hello\r\nBcc: victim@example.com",
		Message:     "This is a test message.",
	})
	require.NoError(t, err)

	headers, _, _ := strings.Cut(captured.msg, "\r\n\r\n")
	for _, line := range strings.Split(headers, "\r\n") {
		assert.False(t, strings.HasPrefix(line, "Bcc:"), "unexpected header line %q", line)
	}
}

func TestSMTPMailerSendError(t *testing.T) {
	m, _ := newCapturingMailer(t, errors.New("connection refused"))

	err := m.Send(context.Background(), ContactEmail{SenderEmail: "jo@x.com"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection refused")
}

func TestSMTPMailerNotConfigured(t *testing.T) {
	cfg := testConfig()
	cfg.SMTPPassword = ""
	m := NewSMTPMailer(cfg)

	assert.False(t, m.IsConfigured())
	assert.ErrorIs(t, m.Send(context.Background(), ContactEmail{}), ErrNotConfigured)
}

func TestSMTPMailerFallsBackToLoginSender(t *testing.T) {
	cfg := testConfig()
	cfg.SMTPFromEmail = ""
	m := NewSMTPMailer(cfg)
	assert.Equal(t, "login@example.com", m.fromEmail)
}

func TestSimulatedMailer(t *testing.T) {
	t.Run("waits for the delay", func(t *testing.T) {
		m := NewSimulatedMailer(20 * time.Millisecond)
		start := time.Now()
		require.NoError(t, m.Send(context.Background(), ContactEmail{}))
		assert.GreaterOrEqual(t, time.Since(start), 20*time.Millisecond)
	})

	t.Run("stops when the context ends", func(t *testing.T) {
		m := NewSimulatedMailer(time.Hour)
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		assert.ErrorIs(t, m.Send(ctx, ContactEmail{}), context.Canceled)
	})
}

func TestNewMailer(t *testing.T) {
	cfg := testConfig()

	m, err := NewMailer(cfg)
	require.NoError(t, err)
	assert.IsType(t, &SMTPMailer{}, m)

	cfg.DeliveryMode = config.DeliverySimulated
	m, err = NewMailer(cfg)
	require.NoError(t, err)
	assert.IsType(t, &SimulatedMailer{}, m)

	cfg.DeliveryMode = "fax"
	_, err = NewMailer(cfg)
	assert.Error(t, err)
}
