package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all configuration for the billing server
type Config struct {
	Server     ServerConfig
	Sheets     SheetsConfig
	Letterhead LetterheadConfig
	Monitoring MonitoringConfig
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host           string
	Port           int
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
	IdleTimeout    time.Duration
	AllowedOrigins []string
}

// SheetsConfig holds the outbound spreadsheet export configuration
type SheetsConfig struct {
	// URL is the Apps-Script style append endpoint. Empty disables the
	// export action (it then fails with a user-visible error, never a crash).
	URL     string
	Secret  string
	Timeout time.Duration
}

// LetterheadConfig holds the static identity printed on bill documents
type LetterheadConfig struct {
	BusinessName string
	ContactLine  string
	LogoURL      string
}

// MonitoringConfig holds observability configuration
type MonitoringConfig struct {
	MetricsPath string
	LogLevel    string
}

// LoadConfig loads configuration from environment variables
func LoadConfig() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Host:           getEnv("SERVER_HOST", "0.0.0.0"),
			Port:           getEnvAsInt("SERVER_PORT", 8080),
			ReadTimeout:    getEnvAsDuration("SERVER_READ_TIMEOUT", "15s"),
			WriteTimeout:   getEnvAsDuration("SERVER_WRITE_TIMEOUT", "15s"),
			IdleTimeout:    getEnvAsDuration("SERVER_IDLE_TIMEOUT", "60s"),
			AllowedOrigins: getEnvAsSlice("CORS_ALLOWED_ORIGINS", []string{"http://localhost:3000"}),
		},
		Sheets: SheetsConfig{
			URL:     getEnv("SHEETS_EXPORT_URL", ""),
			Secret:  getEnv("SHEETS_EXPORT_SECRET", ""),
			Timeout: getEnvAsDuration("SHEETS_EXPORT_TIMEOUT", "30s"),
		},
		Letterhead: LetterheadConfig{
			BusinessName: getEnv("LETTERHEAD_NAME", "BillMitra"),
			ContactLine:  getEnv("LETTERHEAD_CONTACT", "Phone: +91-946-130-8118"),
			LogoURL:      getEnv("LETTERHEAD_LOGO_URL", ""),
		},
		Monitoring: MonitoringConfig{
			MetricsPath: getEnv("METRICS_PATH", "/metrics"),
			LogLevel:    getEnv("LOG_LEVEL", "info"),
		},
	}

	return cfg, nil
}

// Helper functions for environment variable parsing

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvAsDuration(key string, defaultValue string) time.Duration {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		valueStr = defaultValue
	}
	value, err := time.ParseDuration(valueStr)
	if err != nil {
		duration, _ := time.ParseDuration(defaultValue)
		return duration
	}
	return value
}

func getEnvAsSlice(key string, defaultValue []string) []string {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	parts := strings.Split(valueStr, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}
