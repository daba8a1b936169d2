package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeFile(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestLoadDefaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Backend.URL != "http://localhost:5000" {
		t.Errorf("backend url = %q", cfg.Backend.URL)
	}
	if cfg.Backend.Timeout != 10*time.Second {
		t.Errorf("timeout = %s", cfg.Backend.Timeout)
	}
	if cfg.Backend.MaxRetries != 3 {
		t.Errorf("max retries = %d", cfg.Backend.MaxRetries)
	}
	if cfg.Log.Level != "info" || cfg.Log.Format != "text" {
		t.Errorf("log = %+v", cfg.Log)
	}
	if cfg.Watch.Interval != 30*time.Second {
		t.Errorf("watch interval = %s", cfg.Watch.Interval)
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	path := writeFile(t, dir, "pantry.yaml", `
backend:
  url: http://recipes.local:8000
  max_retries: 1
log:
  format: json
watch:
  interval: 5s
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Backend.URL != "http://recipes.local:8000" || cfg.Backend.MaxRetries != 1 {
		t.Errorf("backend = %+v", cfg.Backend)
	}
	if cfg.Backend.Timeout != 10*time.Second {
		t.Errorf("timeout default lost: %s", cfg.Backend.Timeout)
	}
	if cfg.Log.Format != "json" {
		t.Errorf("format = %q", cfg.Log.Format)
	}
	if cfg.Watch.Interval != 5*time.Second {
		t.Errorf("interval = %s", cfg.Watch.Interval)
	}
}

func TestEnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	path := writeFile(t, dir, "pantry.yaml", "backend:\n  url: http://from-file:1\n")
	t.Setenv("PANTRY_BACKEND_URL", "http://from-env:2")
	t.Setenv("PANTRY_BACKEND_TIMEOUT", "3s")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Backend.URL != "http://from-env:2" {
		t.Errorf("url = %q, want env value", cfg.Backend.URL)
	}
	if cfg.Backend.Timeout != 3*time.Second {
		t.Errorf("timeout = %s, want 3s", cfg.Backend.Timeout)
	}
}

func TestDotEnv(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	writeFile(t, dir, ".env", "PANTRY_LOG_LEVEL=debug\n")
	t.Setenv("PANTRY_LOG_LEVEL", "")
	os.Unsetenv("PANTRY_LOG_LEVEL")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("level = %q, want debug from .env", cfg.Log.Level)
	}
}

func TestLoadMissingFile(t *testing.T) {
	t.Chdir(t.TempDir())
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("expected error for missing config file")
	}
}

func TestLoadInvalid(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"bad url", "backend:\n  url: not a url\n"},
		{"bad format", "log:\n  format: xml\n"},
		{"zero interval", "watch:\n  interval: 0s\n"},
		{"malformed yaml", "backend: [\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			t.Chdir(dir)
			path := writeFile(t, dir, "pantry.yaml", tt.body)
			if _, err := Load(path); err == nil {
				t.Errorf("expected error for %s", tt.name)
			}
		})
	}
}
