package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("CONTACT_DELIVERY_MODE", "smtp")
	t.Setenv("SMTP_PORT", "587")
	t.Setenv("RATE_LIMIT_WINDOW_SECONDS", "60")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, DeliverySMTP, cfg.DeliveryMode)
	assert.Equal(t, "587", cfg.SMTPPort)
	assert.Equal(t, 60, cfg.RateLimitWindowSeconds)
}

func TestLoadConfigSimulatedDelay(t *testing.T) {
	t.Setenv("CONTACT_DELIVERY_MODE", "Simulated")
	t.Setenv("CONTACT_SIMULATED_DELAY", "250ms")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, DeliverySimulated, cfg.DeliveryMode)
	assert.Equal(t, 250*time.Millisecond, cfg.SimulatedDelay)

	t.Setenv("CONTACT_SIMULATED_DELAY", "1500")
	cfg, err = LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, 1500*time.Millisecond, cfg.SimulatedDelay)
}

func TestLoadConfigRejectsUnknownDeliveryMode(t *testing.T) {
	t.Setenv("CONTACT_DELIVERY_MODE", "carrier-pigeon")

	_, err := LoadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "CONTACT_DELIVERY_MODE")
}

func TestGetEnvList(t *testing.T) {
	t.Setenv("ALLOWED_ORIGINS", " https://a.example/ ,,https://b.example")
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, getEnvList("ALLOWED_ORIGINS"))
}

func TestEnvironment(t *testing.T) {
	assert.Equal(t, "production", (&Config{GinMode: "release"}).Environment())
	assert.Equal(t, "development", (&Config{GinMode: "debug"}).Environment())
}
