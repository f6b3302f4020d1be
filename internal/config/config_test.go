package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("ORDERS_API_URL", "http://orders.internal")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, []string{"*"}, cfg.Server.AllowedOrigins)
	assert.Equal(t, "info", cfg.Logger.Level)
	assert.Equal(t, "json", cfg.Logger.Format)
	assert.False(t, cfg.History.DemoMode)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("ORDERS_API_URL", "http://orders.internal")
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "console")
	t.Setenv("DEMO_HISTORY", "true")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://admin.example.com, https://staging.example.com")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Logger.Level)
	assert.True(t, cfg.History.DemoMode)
	assert.Equal(t,
		[]string{"https://admin.example.com", "https://staging.example.com"},
		cfg.Server.AllowedOrigins)
}

func TestLoad_RequiresOrdersAPIURL(t *testing.T) {
	t.Setenv("ORDERS_API_URL", "")

	_, err := Load()
	assert.ErrorContains(t, err, "orders API URL is required")
}

func TestValidate(t *testing.T) {
	base := func() *Config {
		return &Config{
			Server:    ServerConfig{Host: "0.0.0.0", Port: 8080},
			OrdersAPI: OrdersAPIConfig{BaseURL: "http://orders.internal"},
			Logger:    LoggerConfig{Level: "info", Format: "json"},
		}
	}

	cfg := base()
	assert.NoError(t, cfg.Validate())

	cfg = base()
	cfg.Server.Port = 0
	assert.ErrorContains(t, cfg.Validate(), "invalid server port")

	cfg = base()
	cfg.Logger.Level = "verbose"
	assert.ErrorContains(t, cfg.Validate(), "invalid log level")

	cfg = base()
	cfg.Logger.Format = "xml"
	assert.ErrorContains(t, cfg.Validate(), "invalid log format")
}

func TestServerConfig_Address(t *testing.T) {
	cfg := ServerConfig{Host: "127.0.0.1", Port: 8081}
	assert.Equal(t, "127.0.0.1:8081", cfg.Address())
}
