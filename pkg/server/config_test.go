package server

import (
	"testing"
	"time"
)

func TestNewConfigDefaults(t *testing.T) {
	cfg := NewConfig()

	if cfg.Port != 8080 {
		t.Errorf("Port = %d, want 8080", cfg.Port)
	}
	if cfg.RateLimit != 100 || cfg.RateLimitBurst != 200 {
		t.Errorf("rate limit = %v/%d, want 100/200", cfg.RateLimit, cfg.RateLimitBurst)
	}
	if cfg.DatasetSource != "" {
		t.Errorf("DatasetSource = %q, want empty (embedded)", cfg.DatasetSource)
	}
	if cfg.ShutdownTimeout != 30*time.Second {
		t.Errorf("ShutdownTimeout = %v, want 30s", cfg.ShutdownTimeout)
	}
}

func TestNewConfigEnvOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("TROPHE_DATASET", "/data/abbrev.txt")
	t.Setenv("SHUTDOWN_TIMEOUT_SECONDS", "5")

	cfg := NewConfig()

	if cfg.Port != 9090 {
		t.Errorf("Port = %d, want 9090", cfg.Port)
	}
	if cfg.DatasetSource != "/data/abbrev.txt" {
		t.Errorf("DatasetSource = %q, want /data/abbrev.txt", cfg.DatasetSource)
	}
	if cfg.ShutdownTimeout != 5*time.Second {
		t.Errorf("ShutdownTimeout = %v, want 5s", cfg.ShutdownTimeout)
	}
}

func TestNewConfigIgnoresInvalidEnv(t *testing.T) {
	t.Setenv("PORT", "not-a-port")
	t.Setenv("SHUTDOWN_TIMEOUT_SECONDS", "-3")

	cfg := NewConfig()

	if cfg.Port != 8080 {
		t.Errorf("Port = %d, want default 8080", cfg.Port)
	}
	if cfg.ShutdownTimeout != 30*time.Second {
		t.Errorf("ShutdownTimeout = %v, want default 30s", cfg.ShutdownTimeout)
	}
}
