package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Delivery modes for the contact side effect.
const (
	DeliverySMTP      = "smtp"
	DeliverySimulated = "simulated"
)

type Config struct {
	Port        string
	GinMode     string
	LogLevel    string
	FrontendURL string
	// Extra exact origins allowed by CORS, besides FrontendURL
	AllowedOrigins []string
	// Preview deployments served as https://<prefix>-*.vercel.app
	CORSPreviewPrefix string
	// Contact delivery
	DeliveryMode   string
	SimulatedDelay time.Duration
	ContactEmailTo string
	// SMTP Configuration
	SMTPHost      string
	SMTPPort      string
	SMTPUsername  string
	SMTPPassword  string
	SMTPFromEmail string // Verified sender; falls back to SMTPUsername
	SMTPFromName  string
	// Redis/Upstash Configuration
	UpstashRedisURL      string
	UpstashRedisPassword string
	// Rate Limiting Configuration
	RateLimitWindowSeconds int
	RateLimitContactLimit  int // 0 disables the contact limiter
	// Observability
	MetricsEnabled bool
}

func LoadConfig() (*Config, error) {
	// Load .env file when present (local development only)
	_ = godotenv.Load()

	cfg := &Config{
		Port:              getEnv("PORT", "8080"),
		GinMode:           getEnv("GIN_MODE", "debug"),
		LogLevel:          getEnv("LOG_LEVEL", "info"),
		FrontendURL:       strings.TrimRight(getEnv("FRONTEND_URL", "http://localhost:3000"), "/"),
		AllowedOrigins:    getEnvList("ALLOWED_ORIGINS"),
		CORSPreviewPrefix: getEnv("CORS_PREVIEW_PREFIX", "davi-reis-portfolio"),
		// Contact delivery
		DeliveryMode:   strings.ToLower(getEnv("CONTACT_DELIVERY_MODE", DeliverySMTP)),
		SimulatedDelay: getEnvDuration("CONTACT_SIMULATED_DELAY", time.Second),
		ContactEmailTo: getEnv("CONTACT_EMAIL_TO", "davideoliveira.lr@gmail.com"),
		// SMTP Configuration
		SMTPHost:      getEnv("SMTP_HOST", "smtp-relay.brevo.com"),
		SMTPPort:      getEnv("SMTP_PORT", "587"),
		SMTPUsername:  getEnv("SMTP_USERNAME", ""),
		SMTPPassword:  getEnv("SMTP_PASSWORD", ""),
		SMTPFromEmail: getEnv("SMTP_FROM_EMAIL", ""),
		SMTPFromName:  getEnv("SMTP_FROM_NAME", "Portfólio Davi"),
		// Redis/Upstash Configuration
		UpstashRedisURL:      getEnv("UPSTASH_REDIS_URL", ""),
		UpstashRedisPassword: getEnv("UPSTASH_REDIS_PASSWORD", ""),
		// Rate Limiting Configuration
		RateLimitWindowSeconds: getEnvInt("RATE_LIMIT_WINDOW_SECONDS", 60),
		RateLimitContactLimit:  getEnvInt("RATE_LIMIT_CONTACT_LIMIT", 10),
		// Observability
		MetricsEnabled: getEnvBool("METRICS_ENABLED", true),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if cfg.DeliveryMode == DeliverySMTP && (cfg.SMTPUsername == "" || cfg.SMTPPassword == "") {
		log.Println("WARNING: SMTP credentials missing. Contact submissions will fail until configured.")
	}

	if cfg.UpstashRedisURL == "" {
		log.Println("WARNING: UPSTASH_REDIS_URL not configured. Rate limiting will use in-memory fallback.")
	}

	return cfg, nil
}

// Validate rejects settings the service cannot run with.
func (c *Config) Validate() error {
	switch c.DeliveryMode {
	case DeliverySMTP, DeliverySimulated:
	default:
		return fmt.Errorf("config: CONTACT_DELIVERY_MODE must be %q or %q, got %q",
			DeliverySMTP, DeliverySimulated, c.DeliveryMode)
	}
	if c.SimulatedDelay < 0 {
		return fmt.Errorf("config: CONTACT_SIMULATED_DELAY must not be negative")
	}
	if c.RateLimitContactLimit < 0 {
		return fmt.Errorf("config: RATE_LIMIT_CONTACT_LIMIT must not be negative")
	}
	if c.RateLimitWindowSeconds <= 0 {
		return fmt.Errorf("config: RATE_LIMIT_WINDOW_SECONDS must be positive")
	}
	return nil
}

// IsProduction reports whether gin runs in release mode.
func (c *Config) IsProduction() bool {
	return c.GinMode == "release"
}

// Environment is the label attached to audit events.
func (c *Config) Environment() string {
	if c.IsProduction() {
		return "production"
	}
	return "development"
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// getEnvInt returns an integer environment variable or fallback if not set/invalid
func getEnvInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}

// getEnvBool returns a boolean environment variable or fallback if not set/invalid
func getEnvBool(key string, fallback bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return fallback
}

// getEnvDuration accepts Go durations ("1500ms") or plain milliseconds ("1500")
func getEnvDuration(key string, fallback time.Duration) time.Duration {
	value, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}
	if d, err := time.ParseDuration(value); err == nil {
		return d
	}
	if ms, err := strconv.Atoi(value); err == nil {
		return time.Duration(ms) * time.Millisecond
	}
	return fallback
}

// getEnvList splits a comma separated variable, dropping empty items
func getEnvList(key string) []string {
	var out []string
	for _, item := range strings.Split(getEnv(key, ""), ",") {
		if item = strings.TrimRight(strings.TrimSpace(item), "/"); item != "" {
			out = append(out, item)
		}
	}
	return out
}
