package config

import (
	"strings"
	"testing"
	"time"

	"github.com/goalzone-ng/goalzone-api/internal/platform/logging"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("load with defaults: %v", err)
	}

	if cfg.AppEnv != EnvDev {
		t.Fatalf("expected dev env, got %s", cfg.AppEnv)
	}
	if cfg.HTTPAddr != ":8080" {
		t.Fatalf("expected default addr :8080, got %s", cfg.HTTPAddr)
	}
	if cfg.LogLevel != logging.LevelInfo {
		t.Fatalf("expected info level, got %s", cfg.LogLevel)
	}
	if cfg.CacheTTL != 60*time.Second {
		t.Fatalf("expected 60s cache TTL, got %s", cfg.CacheTTL)
	}
	if cfg.StandingsWorkers != 4 {
		t.Fatalf("expected 4 standings workers, got %d", cfg.StandingsWorkers)
	}
	if len(cfg.CORSAllowedOrigins) != 1 || cfg.CORSAllowedOrigins[0] != "*" {
		t.Fatalf("expected wildcard CORS default, got %v", cfg.CORSAllowedOrigins)
	}
	if cfg.MailConfigured() {
		t.Fatalf("mail must not be configured by default")
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("APP_ENV", "prod")
	t.Setenv("APP_HTTP_ADDR", ":9090")
	t.Setenv("APP_LOG_LEVEL", "debug")
	t.Setenv("CACHE_TTL", "5m")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://goalzone.ng, https://admin.goalzone.ng")
	t.Setenv("SMTP_HOST", "smtp.example.com")
	t.Setenv("CONTACT_MAIL_FROM", "noreply@goalzone.ng")
	t.Setenv("CONTACT_MAIL_TO", "editors@goalzone.ng")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if cfg.AppEnv != EnvProd {
		t.Fatalf("expected prod env, got %s", cfg.AppEnv)
	}
	if cfg.HTTPAddr != ":9090" {
		t.Fatalf("expected :9090, got %s", cfg.HTTPAddr)
	}
	if cfg.LogLevel != logging.LevelDebug {
		t.Fatalf("expected debug level, got %s", cfg.LogLevel)
	}
	if cfg.CacheTTL != 5*time.Minute {
		t.Fatalf("expected 5m cache TTL, got %s", cfg.CacheTTL)
	}
	if len(cfg.CORSAllowedOrigins) != 2 || cfg.CORSAllowedOrigins[1] != "https://admin.goalzone.ng" {
		t.Fatalf("expected trimmed origin list, got %v", cfg.CORSAllowedOrigins)
	}
	if !cfg.MailConfigured() {
		t.Fatalf("expected mail to be configured")
	}
}

func TestLoad_InvalidValues(t *testing.T) {
	cases := []struct {
		name    string
		key     string
		value   string
		wantMsg string
	}{
		{name: "bad app env", key: "APP_ENV", value: "production", wantMsg: "invalid APP_ENV"},
		{name: "bad duration", key: "APP_READ_TIMEOUT", value: "soon", wantMsg: "parse APP_READ_TIMEOUT"},
		{name: "bad bool", key: "CACHE_ENABLED", value: "yep", wantMsg: "parse CACHE_ENABLED"},
		{name: "zero workers", key: "STANDINGS_WORKERS", value: "0", wantMsg: "STANDINGS_WORKERS must be >= 1"},
		{name: "bad smtp port", key: "SMTP_PORT", value: "70000", wantMsg: "SMTP_PORT must be between"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv(tc.key, tc.value)
			_, err := Load()
			if err == nil {
				t.Fatalf("expected error for %s=%s", tc.key, tc.value)
			}
			if !strings.Contains(err.Error(), tc.wantMsg) {
				t.Fatalf("error %q does not mention %q", err, tc.wantMsg)
			}
		})
	}
}

func TestLoad_ConditionalRequirements(t *testing.T) {
	t.Run("uptrace requires dsn", func(t *testing.T) {
		t.Setenv("UPTRACE_ENABLED", "true")
		if _, err := Load(); err == nil {
			t.Fatalf("expected error when UPTRACE_DSN is missing")
		}
	})

	t.Run("pyroscope requires server address", func(t *testing.T) {
		t.Setenv("PYROSCOPE_ENABLED", "true")
		if _, err := Load(); err == nil {
			t.Fatalf("expected error when PYROSCOPE_SERVER_ADDRESS is missing")
		}
	})
}
