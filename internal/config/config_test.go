package config

import (
	"strings"
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if cfg.Server.Port != "8080" {
		t.Errorf("expected default port 8080, got %q", cfg.Server.Port)
	}
	if cfg.Server.Env != "development" {
		t.Errorf("expected default env development, got %q", cfg.Server.Env)
	}
	if cfg.Database.Namespace != "aisle" {
		t.Errorf("expected default namespace aisle, got %q", cfg.Database.Namespace)
	}
	if cfg.JWT.Issuer != "aisle.juneandco.dev" {
		t.Errorf("expected default issuer, got %q", cfg.JWT.Issuer)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "9999")
	t.Setenv("SERVER_READ_TIMEOUT", "30s")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example.com,https://b.example.com")
	t.Setenv("JWT_EXPIRATION_MINS", "120")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if cfg.Server.Port != "9999" {
		t.Errorf("expected port 9999, got %q", cfg.Server.Port)
	}
	if cfg.Server.ReadTimeout != 30*time.Second {
		t.Errorf("expected 30s read timeout, got %v", cfg.Server.ReadTimeout)
	}
	if len(cfg.Server.AllowedOrigins) != 2 {
		t.Errorf("expected 2 origins, got %v", cfg.Server.AllowedOrigins)
	}
	if cfg.JWT.ExpirationMins != 120 {
		t.Errorf("expected 120 min expiration, got %d", cfg.JWT.ExpirationMins)
	}
}

func TestValidate_DefaultsAreValid(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("expected default config to validate, got %v", err)
	}
}

func TestValidate_ReportsAllFailures(t *testing.T) {
	cfg, _ := Load()
	cfg.Server.Port = ""
	cfg.Server.Env = "staging"
	cfg.Database.Host = ""
	cfg.JWT.ExpirationMins = 0

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected validation errors")
	}

	msg := err.Error()
	for _, want := range []string{"SERVER_PORT", "SERVER_ENV", "DB_HOST", "JWT_EXPIRATION_MINS"} {
		if !strings.Contains(msg, want) {
			t.Errorf("expected error to mention %s, got %q", want, msg)
		}
	}
}
