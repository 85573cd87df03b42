package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	Port        string
	Environment string
	LogLevel    string
	SMTP        SMTPConfig
	Mail        MailConfig
	Relay       RelayConfig
	Client      ClientConfig
}

// SMTPConfig configures the outbound SMTP transport. Credentials come
// from the environment only - never from source.
type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
}

// MailConfig holds the fixed sender and business recipient identities
type MailConfig struct {
	FromEmail     string // sender address; defaults to SMTP_USERNAME
	FromName      string
	BusinessEmail string // fixed recipient for all quote/contact emails
	BusinessName  string
}

// RelayConfig configures the relay HTTP endpoints
type RelayConfig struct {
	// APIToken, when set, requires Authorization: Bearer <token> on POST
	// endpoints. Empty keeps the endpoints open (the original site's
	// posture; flagged as a weakness, so the lock is available).
	APIToken string
}

// ClientConfig is used by the CLI tools that submit through the client library
type ClientConfig struct {
	BaseURL string // e.g. http://localhost:8080
	// TreatNotFoundAsSuccess enables "demo mode": a 404 from the relay
	// counts as a successful submission. Off unless DEMO_MODE_404_OK=true.
	TreatNotFoundAsSuccess bool
}

func Load() (*Config, error) {
	viper.SetConfigType("env")
	viper.SetConfigName(".env")
	viper.AddConfigPath(".")
	viper.AddConfigPath("..")
	viper.AddConfigPath("../..")

	// Set defaults
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("ENVIRONMENT", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("SMTP_PORT", "587")

	// Read from environment variables
	viper.AutomaticEnv()

	// Try to read .env file (optional)
	if err := viper.ReadInConfig(); err != nil {
		// It's okay if .env doesn't exist, we'll use env vars
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	smtpPort, err := strconv.Atoi(getEnvOrViper("SMTP_PORT", "587"))
	if err != nil {
		return nil, fmt.Errorf("SMTP_PORT must be numeric: %w", err)
	}

	cfg := &Config{
		Port:        getEnvOrViper("PORT", "8080"),
		Environment: getEnvOrViper("ENVIRONMENT", "development"),
		LogLevel:    getEnvOrViper("LOG_LEVEL", "info"),
		SMTP: SMTPConfig{
			Host:     strings.TrimSpace(getEnvOrViper("SMTP_HOST", "")),
			Port:     smtpPort,
			Username: strings.TrimSpace(getEnvOrViper("SMTP_USERNAME", "")),
			Password: getEnvOrViper("SMTP_PASSWORD", ""),
		},
		Mail: MailConfig{
			FromEmail:     strings.TrimSpace(getEnvOrViper("FROM_EMAIL", "")),
			FromName:      getEnvOrViper("FROM_NAME", "Quote System"),
			BusinessEmail: strings.TrimSpace(getEnvOrViper("BUSINESS_EMAIL", "")),
			BusinessName:  getEnvOrViper("BUSINESS_NAME", "Business Quotes"),
		},
		Relay: RelayConfig{
			APIToken: strings.TrimSpace(getEnvOrViper("RELAY_API_TOKEN", "")),
		},
		Client: ClientConfig{
			BaseURL:                strings.TrimSpace(getEnvOrViper("RELAY_BASE_URL", "http://localhost:8080")),
			TreatNotFoundAsSuccess: getEnvOrViper("DEMO_MODE_404_OK", "false") == "true",
		},
	}

	if cfg.Mail.FromEmail == "" {
		cfg.Mail.FromEmail = cfg.SMTP.Username
	}

	// Validate required fields
	if cfg.SMTP.Host == "" {
		return nil, fmt.Errorf("SMTP_HOST is required")
	}
	if cfg.SMTP.Username == "" {
		return nil, fmt.Errorf("SMTP_USERNAME is required")
	}
	if cfg.SMTP.Password == "" {
		return nil, fmt.Errorf("SMTP_PASSWORD is required")
	}
	if cfg.Mail.BusinessEmail == "" {
		return nil, fmt.Errorf("BUSINESS_EMAIL is required")
	}

	return cfg, nil
}

func getEnvOrViper(key, defaultValue string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	if viper.IsSet(key) {
		return viper.GetString(key)
	}
	return defaultValue
}
