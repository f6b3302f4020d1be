package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all application configuration.
type Config struct {
	Server    ServerConfig
	OrdersAPI OrdersAPIConfig
	Logger    LoggerConfig
	Company   CompanyConfig
	History   HistoryConfig
}

// ServerConfig holds server-related configuration.
type ServerConfig struct {
	Host           string
	Port           int
	AllowedOrigins []string
}

// OrdersAPIConfig holds the external Orders API connection settings.
type OrdersAPIConfig struct {
	BaseURL string
	// ServiceToken is used for upstream calls when the incoming request
	// carries no bearer token of its own (background work, health checks).
	ServiceToken string
}

// LoggerConfig holds logger-related configuration.
type LoggerConfig struct {
	Level  string
	Format string // "json" or "console"
}

// CompanyConfig is the static company block printed on invoices.
type CompanyConfig struct {
	Name    string
	Address string
	Phone   string
	Email   string
	Terms   string
}

// HistoryConfig selects the status-history source.
type HistoryConfig struct {
	// DemoMode synthesizes history locally instead of using the Orders
	// API. For offline and demo environments only.
	DemoMode bool
}

// Load loads configuration from the environment, reading an optional .env
// file first.
func Load() (*Config, error) {
	// missing .env is fine, real environments set variables directly
	_ = godotenv.Load()

	cfg := &Config{
		Server: ServerConfig{
			Host:           getEnv("SERVER_HOST", "0.0.0.0"),
			Port:           getEnvAsInt("SERVER_PORT", 8080),
			AllowedOrigins: getEnvAsSlice("CORS_ALLOWED_ORIGINS", []string{"*"}),
		},
		OrdersAPI: OrdersAPIConfig{
			BaseURL:      getEnv("ORDERS_API_URL", ""),
			ServiceToken: getEnv("ORDERS_API_TOKEN", ""),
		},
		Logger: LoggerConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
		Company: CompanyConfig{
			Name:    getEnv("COMPANY_NAME", "Order Desk"),
			Address: getEnv("COMPANY_ADDRESS", ""),
			Phone:   getEnv("COMPANY_PHONE", ""),
			Email:   getEnv("COMPANY_EMAIL", ""),
			Terms:   getEnv("COMPANY_TERMS", "Sold goods are only returnable within 3 days with the invoice."),
		},
		History: HistoryConfig{
			DemoMode: getEnvAsBool("DEMO_HISTORY", false),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}

	if c.OrdersAPI.BaseURL == "" {
		return fmt.Errorf("orders API URL is required")
	}

	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}

	if !validLogLevels[c.Logger.Level] {
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", c.Logger.Level)
	}

	if c.Logger.Format != "json" && c.Logger.Format != "console" {
		return fmt.Errorf("invalid log format: %s (must be json or console)", c.Logger.Format)
	}

	return nil
}

// Address returns the server address.
func (c *ServerConfig) Address() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// getEnv retrieves an environment variable or returns a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsInt retrieves an environment variable as an integer or returns a
// default value.
func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvAsBool retrieves an environment variable as a boolean or returns a
// default value.
func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

// getEnvAsSlice retrieves a comma-separated environment variable.
func getEnvAsSlice(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	if len(out) == 0 {
		return defaultValue
	}
	return out
}
