package config

import "testing"

func TestGetEnv(t *testing.T) {
	t.Setenv("CFG_VALUE", "custom")
	if got := getEnv("CFG_VALUE", "default"); got != "custom" {
		t.Fatalf("getEnv returned %q, want custom", got)
	}

	// Empty environment value should fall back to default
	t.Setenv("CFG_EMPTY", "")
	if got := getEnv("CFG_EMPTY", "fallback"); got != "fallback" {
		t.Fatalf("getEnv returned %q, want fallback", got)
	}
}

func TestGetEnvInt(t *testing.T) {
	t.Setenv("CFG_INT", "8")
	if got := getEnvInt("CFG_INT", 4); got != 8 {
		t.Fatalf("getEnvInt returned %d, want 8", got)
	}

	// Non-numeric and non-positive values fall back to default
	t.Setenv("CFG_INT", "not-a-number")
	if got := getEnvInt("CFG_INT", 4); got != 4 {
		t.Fatalf("getEnvInt returned %d, want 4", got)
	}
	t.Setenv("CFG_INT", "0")
	if got := getEnvInt("CFG_INT", 4); got != 4 {
		t.Fatalf("getEnvInt returned %d, want 4", got)
	}
}

func TestLoad(t *testing.T) {
	// Ensure defaults when env vars are empty.
	t.Setenv("PORT", "")
	t.Setenv("DATABASE_URL", "")
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("SEED", "")
	t.Setenv("INGEST_WORKERS", "")
	t.Setenv("NOTIFY_WEBHOOK_URL", "")
	t.Setenv("OPENAI_API_KEY", "")
	t.Setenv("OPENAI_INSIGHTS_MODEL", "")

	cfg := Load()
	if cfg.Port != "8080" || cfg.DatabaseURL == "" || cfg.LogLevel != "info" {
		t.Fatalf("defaults not applied: %+v", cfg)
	}
	if cfg.Seed {
		t.Fatalf("expected Seed default false")
	}
	if cfg.IngestWorkers != 4 {
		t.Fatalf("expected default worker count 4, got %d", cfg.IngestWorkers)
	}

	// Custom values override defaults
	t.Setenv("PORT", "9090")
	t.Setenv("DATABASE_URL", "postgres://example")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("SEED", "true")
	t.Setenv("INGEST_WORKERS", "16")
	t.Setenv("NOTIFY_WEBHOOK_URL", "https://hooks.example.com/alerts")
	t.Setenv("OPENAI_API_KEY", "key")
	t.Setenv("OPENAI_INSIGHTS_MODEL", "model")

	cfg = Load()
	if cfg.Port != "9090" || cfg.DatabaseURL != "postgres://example" || cfg.LogLevel != "debug" || !cfg.Seed {
		t.Fatalf("env overrides not applied: %+v", cfg)
	}
	if cfg.IngestWorkers != 16 {
		t.Fatalf("worker override missing: %d", cfg.IngestWorkers)
	}
	if cfg.NotifyWebhookURL != "https://hooks.example.com/alerts" {
		t.Fatalf("webhook override missing: %q", cfg.NotifyWebhookURL)
	}
	if cfg.OpenAIAPIKey != "key" || cfg.OpenAIInsightsModel != "model" {
		t.Fatalf("openai env overrides missing: %+v", cfg)
	}
}
