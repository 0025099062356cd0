package email

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"portfolio-backend/config"
)

// ErrNotConfigured is returned when SMTP credentials are missing.
var ErrNotConfigured = errors.New("email: smtp service is not configured")

// ContactEmail holds the data for contact form emails
type ContactEmail struct {
	SenderName  string
	SenderEmail string
	Subject     string
	Message     string
}

// Mailer performs the contact side effect.
type Mailer interface {
	Send(ctx context.Context, data ContactEmail) error
}

// NewMailer builds the mailer for the configured delivery mode.
func NewMailer(cfg *config.Config) (Mailer, error) {
	switch cfg.DeliveryMode {
	case config.DeliverySMTP:
		return NewSMTPMailer(cfg), nil
	case config.DeliverySimulated:
		return NewSimulatedMailer(cfg.SimulatedDelay), nil
	default:
		return nil, fmt.Errorf("email: unknown delivery mode %q", cfg.DeliveryMode)
	}
}

// SimulatedMailer waits for a fixed delay and dispatches nothing.
type SimulatedMailer struct {
	delay time.Duration
}

func NewSimulatedMailer(delay time.Duration) *SimulatedMailer {
	return &SimulatedMailer{delay: delay}
}

func (s *SimulatedMailer) Send(ctx context.Context, _ ContactEmail) error {
	if s.delay <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(s.delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// headerValue strips line breaks so user input cannot add headers.
func headerValue(s string) string {
	return strings.NewReplacer("\r", "", "\n", " ").Replace(s)
}
