package config

import (
	"os"
	"testing"
	"time"
)

// unsetenv clears keys for the duration of the test. t.Setenv registers
// the restore; the explicit unset makes LookupEnv miss.
func unsetenv(t *testing.T, keys ...string) {
	t.Helper()
	for _, key := range keys {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	unsetenv(t, "ENV", "API_BASE_URL", "HTTP_TIMEOUT_SECONDS", "TOKEN_PATH", "DISABLE_PROGRESS_API", "DEV_SERVER_PORT", "JWT_SECRET")

	cfg := LoadConfig()

	if cfg.APIBaseURL != "http://localhost:8080" {
		t.Fatalf("unexpected base URL %q", cfg.APIBaseURL)
	}
	if cfg.HTTPTimeout != 15*time.Second {
		t.Fatalf("unexpected timeout %v", cfg.HTTPTimeout)
	}
	if cfg.TokenPath == "" {
		t.Fatal("expected a default token path")
	}
	if cfg.DisableProgressAPI {
		t.Fatal("progress API must be enabled by default")
	}
	if cfg.DevServer.Port != 8080 {
		t.Fatalf("unexpected dev server port %d", cfg.DevServer.Port)
	}
}

func TestLoadConfigFromEnvironment(t *testing.T) {
	t.Setenv("API_BASE_URL", "https://lms.example.com")
	t.Setenv("HTTP_TIMEOUT_SECONDS", "30")
	t.Setenv("TOKEN_PATH", "/tmp/lms-token")
	t.Setenv("DISABLE_PROGRESS_API", "true")
	t.Setenv("DEV_SERVER_PORT", "9090")

	cfg := LoadConfig()

	if cfg.APIBaseURL != "https://lms.example.com" {
		t.Fatalf("unexpected base URL %q", cfg.APIBaseURL)
	}
	if cfg.HTTPTimeout != 30*time.Second {
		t.Fatalf("unexpected timeout %v", cfg.HTTPTimeout)
	}
	if cfg.TokenPath != "/tmp/lms-token" {
		t.Fatalf("unexpected token path %q", cfg.TokenPath)
	}
	if !cfg.DisableProgressAPI {
		t.Fatal("expected progress API to be disabled")
	}
	if cfg.DevServer.Port != 9090 {
		t.Fatalf("unexpected dev server port %d", cfg.DevServer.Port)
	}
}
