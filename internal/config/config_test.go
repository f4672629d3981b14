package config

import (
	"log/slog"
	"testing"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/school")
	t.Setenv("JWT_SECRET", "test-secret")
	for _, key := range []string{"ENVIRONMENT", "PORT", "LOG_LEVEL", "JWT_ISSUER", "EMAIL_USER", "EMAIL_PASS"} {
		t.Setenv(key, "")
	}

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if cfg.Port != "4000" {
		t.Errorf("Port = %q, want 4000", cfg.Port)
	}
	if cfg.Environment != "development" {
		t.Errorf("Environment = %q, want development", cfg.Environment)
	}
	if cfg.LogLevel != slog.LevelInfo {
		t.Errorf("LogLevel = %v, want info", cfg.LogLevel)
	}
	if cfg.Auth.Issuer != "school-service" {
		t.Errorf("Issuer = %q", cfg.Auth.Issuer)
	}
	if cfg.EmailConfigured() {
		t.Error("email should not be configured without credentials")
	}
}

func TestLoadConfigRequiresDatabaseURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("JWT_SECRET", "test-secret")

	if _, err := LoadConfig(); err == nil {
		t.Error("expected an error without DATABASE_URL")
	}
}

func TestLoadConfigRequiresJWTSecret(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/school")
	t.Setenv("JWT_SECRET", "")

	if _, err := LoadConfig(); err == nil {
		t.Error("expected an error without JWT_SECRET")
	}
}

func TestAllowedOriginsParsing(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/school")
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("FRONTEND_URL", "https://school.example.com/, http://localhost:5173")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	want := []string{"https://school.example.com", "http://localhost:5173"}
	if len(cfg.AllowedOrigins) != len(want) {
		t.Fatalf("AllowedOrigins = %v, want %v", cfg.AllowedOrigins, want)
	}
	for i := range want {
		if cfg.AllowedOrigins[i] != want[i] {
			t.Errorf("AllowedOrigins[%d] = %q, want %q", i, cfg.AllowedOrigins[i], want[i])
		}
	}
}

func TestFromAddressFallsBackToUser(t *testing.T) {
	e := EmailConfig{User: "relay@example.com"}
	if got := e.FromAddress(); got != "relay@example.com" {
		t.Errorf("FromAddress = %q", got)
	}

	e.From = "School Office <office@example.com>"
	if got := e.FromAddress(); got != "School Office <office@example.com>" {
		t.Errorf("FromAddress = %q", got)
	}
}

func TestParseLogLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug": slog.LevelDebug,
		"warn":  slog.LevelWarn,
		"error": slog.LevelError,
		"":      slog.LevelInfo,
		"bogus": slog.LevelInfo,
	}
	for raw, want := range tests {
		if got := parseLogLevel(raw); got != want {
			t.Errorf("parseLogLevel(%q) = %v, want %v", raw, got, want)
		}
	}
}
