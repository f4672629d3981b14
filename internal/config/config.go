package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all runtime configuration, loaded once at process start and
// passed explicitly to the components that need it.
type Config struct {
	Environment string
	Host        string
	Port        string
	LogLevel    slog.Level

	DatabaseURL string
	RedisURL    string

	// Comma-separated CORS allow-list, e.g. "https://school.example.com,http://localhost:5173".
	AllowedOrigins []string

	Email EmailConfig
	Auth  AuthConfig

	// Kafka brokers for domain events; events are disabled when empty.
	KafkaBrokers []string
}

// EmailConfig carries SMTP transport settings for the report mailer.
type EmailConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
}

// AuthConfig carries JWT signing settings.
type AuthConfig struct {
	Secret string
	Issuer string
}

// LoadConfig reads configuration from the environment. A .env file is loaded
// first when present so local development matches deployment.
func LoadConfig() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Environment: getEnv("ENVIRONMENT", "development"),
		Host:        getEnv("HOST", "0.0.0.0"),
		Port:        getEnv("PORT", "4000"),
		LogLevel:    parseLogLevel(getEnv("LOG_LEVEL", "info")),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		RedisURL:    os.Getenv("REDIS_URL"),
		Email: EmailConfig{
			Host:     getEnv("EMAIL_HOST", "smtp.gmail.com"),
			Port:     getEnvInt("EMAIL_PORT", 465),
			User:     os.Getenv("EMAIL_USER"),
			Password: os.Getenv("EMAIL_PASS"),
			From:     os.Getenv("EMAIL_FROM"),
		},
		Auth: AuthConfig{
			Secret: getEnv("JWT_SECRET", ""),
			Issuer: getEnv("JWT_ISSUER", "school-service"),
		},
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required")
	}
	if cfg.Auth.Secret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}

	cfg.AllowedOrigins = splitList(os.Getenv("FRONTEND_URL"))
	cfg.KafkaBrokers = splitList(os.Getenv("KAFKA_BROKERS"))

	return cfg, nil
}

// EmailConfigured reports whether SMTP credentials are present.
func (c *Config) EmailConfigured() bool {
	return c.Email.User != "" && c.Email.Password != ""
}

// FromAddress returns the configured sender, falling back to the SMTP user.
func (e EmailConfig) FromAddress() string {
	if e.From != "" {
		return e.From
	}
	return e.User
}

func splitList(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimRight(strings.TrimSpace(p), "/")
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

func parseLogLevel(raw string) slog.Level {
	switch strings.ToLower(raw) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	var n int
	if _, err := fmt.Sscanf(val, "%d", &n); err != nil {
		return fallback
	}
	return n
}
