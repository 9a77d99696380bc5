package config

import "testing"

func TestLoad_Defaults(t *testing.T) {
	cfg := Load()

	if cfg.Port != "3001" {
		t.Fatalf("unexpected port: %q", cfg.Port)
	}
	if cfg.Env != "development" {
		t.Fatalf("unexpected env: %q", cfg.Env)
	}
	if cfg.LogLevel != "info" {
		t.Fatalf("unexpected log level: %q", cfg.LogLevel)
	}
	if cfg.BackendURL != "http://localhost:3001" {
		t.Fatalf("unexpected backend url: %q", cfg.BackendURL)
	}
	if cfg.TokenPath != ".session-token" {
		t.Fatalf("unexpected token path: %q", cfg.TokenPath)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("ENV", "production")
	t.Setenv("BACKEND_URL", "http://api.internal:9000")

	cfg := Load()

	if cfg.Port != "8080" || cfg.Env != "production" || cfg.BackendURL != "http://api.internal:9000" {
		t.Fatalf("overrides not applied: %+v", cfg)
	}
}
