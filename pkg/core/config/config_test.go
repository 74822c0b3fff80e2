package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDuration_UnmarshalText(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected time.Duration
		wantErr  bool
	}{
		{"seconds", "30s", 30 * time.Second, false},
		{"minutes", "5m", 5 * time.Minute, false},
		{"complex", "1h30m", 90 * time.Minute, false},
		{"invalid", "invalid", 0, true},
		{"empty", "", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Duration
			err := d.UnmarshalText([]byte(tt.input))

			if (err != nil) != tt.wantErr {
				t.Errorf("UnmarshalText() error = %v, wantErr %v", err, tt.wantErr)
				return
			}

			if !tt.wantErr && d.Std() != tt.expected {
				t.Errorf("UnmarshalText() = %v, want %v", d.Std(), tt.expected)
			}
		})
	}
}

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Log.Level != "info" {
		t.Errorf("default log level = %q; want info", cfg.Log.Level)
	}
	if cfg.Server.Transport != "stdio" {
		t.Errorf("default transport = %q; want stdio", cfg.Server.Transport)
	}
	if !cfg.Catalog.EnableAbbreviations {
		t.Error("abbreviations should be enabled by default")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config is invalid: %v", err)
	}
}

func TestLoad_TOML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "racfls.toml")

	content := `
[log]
level = "debug"
format = "text"

[server]
transport = "websocket"
listen = "127.0.0.1:9999"
read_timeout = "60s"

[catalog]
enable_abbreviations = false
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write temp config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.Log.Level != "debug" {
		t.Errorf("log level = %q; want debug", cfg.Log.Level)
	}
	if cfg.Server.Transport != "websocket" {
		t.Errorf("transport = %q; want websocket", cfg.Server.Transport)
	}
	if cfg.Server.Listen != "127.0.0.1:9999" {
		t.Errorf("listen = %q; want 127.0.0.1:9999", cfg.Server.Listen)
	}
	if cfg.Server.ReadTimeout.Std() != 60*time.Second {
		t.Errorf("read timeout = %v; want 60s", cfg.Server.ReadTimeout.Std())
	}
	if cfg.Catalog.EnableAbbreviations {
		t.Error("abbreviations should be disabled by file")
	}
}

func TestLoad_YAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "racfls.yaml")

	content := `
log:
  level: warn
server:
  transport: stdio
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write temp config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.Log.Level != "warn" {
		t.Errorf("log level = %q; want warn", cfg.Log.Level)
	}
	// Unset values keep defaults
	if cfg.Log.Format != "json" {
		t.Errorf("log format = %q; want default json", cfg.Log.Format)
	}
}

func TestLoad_EmptyPathUsesDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") error: %v", err)
	}
	if cfg.Server.Transport != "stdio" {
		t.Errorf("transport = %q; want stdio", cfg.Server.Transport)
	}
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("RACFLS_LOG_LEVEL", "trace")
	t.Setenv("RACFLS_TRANSPORT", "websocket")
	t.Setenv("RACFLS_LISTEN", "localhost:4444")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") error: %v", err)
	}

	if cfg.Log.Level != "trace" {
		t.Errorf("log level = %q; want trace", cfg.Log.Level)
	}
	if cfg.Server.Transport != "websocket" {
		t.Errorf("transport = %q; want websocket", cfg.Server.Transport)
	}
	if cfg.Server.Listen != "localhost:4444" {
		t.Errorf("listen = %q; want localhost:4444", cfg.Server.Listen)
	}
}

func TestValidate_BadTransport(t *testing.T) {
	cfg := Default()
	cfg.Server.Transport = "carrier-pigeon"

	if err := cfg.Validate(); err == nil {
		t.Error("expected validation error for unknown transport")
	}
}

func TestLoad_UnsupportedExtension(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "racfls.ini")
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatalf("write temp config: %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Error("expected error for unsupported config format")
	}
}
