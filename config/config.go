// Package config provides application configuration management.
// It loads configuration from environment variables with sensible defaults.
package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration.
type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	Advice    AdviceConfig
	Seed      SeedConfig
	Email     EmailConfig
	Messaging MessagingConfig
	RateLimit RateLimitConfig
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Host         string
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	Environment  string
}

// DatabaseConfig holds the optional ledger database configuration.
// An empty URL keeps the ledger purely in memory.
type DatabaseConfig struct {
	Driver          string // "postgres" or "sqlite"
	URL             string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// Enabled reports whether a database is configured.
func (c DatabaseConfig) Enabled() bool {
	return c.URL != ""
}

// RedisConfig holds Redis configuration. An empty URL selects the
// in-memory submission gate.
type RedisConfig struct {
	URL      string
	Password string
	DB       int
}

// Enabled reports whether Redis is configured.
func (c RedisConfig) Enabled() bool {
	return c.URL != ""
}

// AdviceConfig holds the hosted LLM configuration.
type AdviceConfig struct {
	APIKey        string
	Model         string
	SubmissionTTL time.Duration
}

// SeedConfig holds the initial ledger source. An empty path selects the
// built-in sample data.
type SeedConfig struct {
	Path  string
	Theme string
}

// EmailConfig holds celebration email configuration.
type EmailConfig struct {
	ResendAPIKey string
	FromName     string
	FromEmail    string
	Recipient    string
	BaseURL      string // Optional, overrides the Resend API endpoint
}

// Enabled reports whether celebration emails can be sent.
func (c EmailConfig) Enabled() bool {
	return c.ResendAPIKey != "" && c.Recipient != ""
}

// MessagingConfig holds the optional AMQP configuration.
type MessagingConfig struct {
	AMQPURL  string
	Exchange string
}

// Enabled reports whether ledger events are published to a broker.
func (c MessagingConfig) Enabled() bool {
	return c.AMQPURL != ""
}

// RateLimitConfig holds the advice endpoint rate limit.
type RateLimitConfig struct {
	Enabled     bool
	MaxRequests int
	Window      time.Duration
}

// Load loads configuration from environment variables.
func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Host:         getEnv("SERVER_HOST", "0.0.0.0"),
			Port:         getEnvAsInt("SERVER_PORT", 8080),
			ReadTimeout:  getEnvAsDuration("SERVER_READ_TIMEOUT", 15*time.Second),
			WriteTimeout: getEnvAsDuration("SERVER_WRITE_TIMEOUT", 30*time.Second),
			Environment:  getEnv("ENV", "development"),
		},
		Database: DatabaseConfig{
			Driver:          getEnv("DB_DRIVER", "postgres"),
			URL:             getEnv("DATABASE_URL", ""),
			MaxOpenConns:    getEnvAsInt("DB_MAX_OPEN_CONNS", 10),
			MaxIdleConns:    getEnvAsInt("DB_MAX_IDLE_CONNS", 2),
			ConnMaxLifetime: getEnvAsDuration("DB_CONN_MAX_LIFETIME", 5*time.Minute),
		},
		Redis: RedisConfig{
			URL:      getEnv("REDIS_URL", ""),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvAsInt("REDIS_DB", 0),
		},
		Advice: AdviceConfig{
			APIKey:        firstNonEmpty(getEnv("GEMINI_API_KEY", ""), getEnv("API_KEY", "")),
			Model:         getEnv("ADVICE_MODEL", "gemini-2.5-flash"),
			SubmissionTTL: getEnvAsDuration("ADVICE_SUBMISSION_TTL", 30*time.Second),
		},
		Seed: SeedConfig{
			Path:  getEnv("SEED_FILE", ""),
			Theme: getEnv("THEME", "Clean Girl"),
		},
		Email: EmailConfig{
			ResendAPIKey: getEnv("RESEND_API_KEY", ""),
			FromName:     getEnv("RESEND_FROM_NAME", "GlowUp Wallet"),
			FromEmail:    getEnv("RESEND_FROM_EMAIL", "onboarding@resend.dev"),
			Recipient:    getEnv("CELEBRATION_EMAIL_TO", ""),
			BaseURL:      getEnv("RESEND_BASE_URL", ""),
		},
		Messaging: MessagingConfig{
			AMQPURL:  getEnv("AMQP_URL", ""),
			Exchange: getEnv("AMQP_EXCHANGE", "glowup.events"),
		},
		RateLimit: RateLimitConfig{
			Enabled:     getEnvAsBool("ADVICE_RATE_LIMIT_ENABLED", true),
			MaxRequests: getEnvAsInt("ADVICE_RATE_LIMIT", 20),
			Window:      getEnvAsDuration("ADVICE_RATE_WINDOW", 1*time.Minute),
		},
	}
}

// Helper functions for environment variable parsing

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
