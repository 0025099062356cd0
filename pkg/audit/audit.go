package audit

import (
	"context"
	"encoding/json"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// EventType represents the type of contact pipeline event
type EventType string

const (
	EventContactSubmitted        EventType = "contact_submitted"
	EventContactValidationFailed EventType = "contact_validation_failed"
	EventContactDeliveryFailed   EventType = "contact_delivery_failed"
	EventRateLimitTriggered      EventType = "rate_limit_triggered"
)

// Event is one entry of the submission audit trail
type Event struct {
	Timestamp time.Time              `json:"timestamp"`
	Event     EventType              `json:"event"`
	Email     string                 `json:"email,omitempty"` // masked before logging
	IP        string                 `json:"ip,omitempty"`
	UserAgent string                 `json:"user_agent,omitempty"`
	RequestID string                 `json:"request_id,omitempty"`
	Details   map[string]interface{} `json:"details,omitempty"`
}

// Logger writes audit events as structured zap entries. A nil *Logger
// discards everything.
type Logger struct {
	zapLogger   *zap.Logger
	serviceName string
	environment string
}

// New builds a production zap logger writing JSON to stdout
func New(serviceName, environment string) (*Logger, error) {
	config := zap.NewProductionConfig()
	config.EncoderConfig.TimeKey = "timestamp"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.EncoderConfig.MessageKey = "message"
	config.OutputPaths = []string{"stdout"}
	config.ErrorOutputPaths = []string{"stderr"}

	zl, err := config.Build(zap.AddCaller())
	if err != nil {
		return nil, err
	}
	return NewWithZap(zl, serviceName, environment), nil
}

// NewWithZap wraps an existing zap logger
func NewWithZap(zl *zap.Logger, serviceName, environment string) *Logger {
	return &Logger{
		zapLogger:   zl,
		serviceName: serviceName,
		environment: environment,
	}
}

// Log records one event
func (l *Logger) Log(_ context.Context, event Event) {
	if l == nil {
		return
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now().UTC()
	}

	level := zapcore.InfoLevel
	switch event.Event {
	case EventContactValidationFailed, EventRateLimitTriggered:
		level = zapcore.WarnLevel
	case EventContactDeliveryFailed:
		level = zapcore.ErrorLevel
	}

	fields := []zap.Field{
		zap.String("service", l.serviceName),
		zap.String("env", l.environment),
		zap.String("event", string(event.Event)),
		zap.Time("event_time", event.Timestamp),
	}
	if event.Email != "" {
		fields = append(fields, zap.String("email", MaskEmail(event.Email)))
	}
	if event.IP != "" {
		fields = append(fields, zap.String("ip", event.IP))
	}
	if event.UserAgent != "" {
		fields = append(fields, zap.String("user_agent", event.UserAgent))
	}
	if event.RequestID != "" {
		fields = append(fields, zap.String("request_id", event.RequestID))
	}
	if len(event.Details) > 0 {
		detailsJSON, _ := json.Marshal(event.Details)
		fields = append(fields, zap.String("details", string(detailsJSON)))
	}

	l.zapLogger.Log(level, string(event.Event), fields...)
}

// Sync flushes any buffered log entries
func (l *Logger) Sync() error {
	if l == nil {
		return nil
	}
	return l.zapLogger.Sync()
}

// MaskEmail masks an email for logging (e.g., "j***@example.com")
func MaskEmail(email string) string {
	if len(email) < 3 {
		return "***"
	}
	atIndex := -1
	for i, c := range email {
		if c == '@' {
			atIndex = i
			break
		}
	}
	if atIndex < 0 {
		return string(email[0]) + "***"
	}
	if atIndex <= 1 {
		return "***" + email[atIndex:]
	}
	return string(email[0]) + "***" + email[atIndex:]
}
