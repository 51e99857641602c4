package config

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadFile_Defaults(t *testing.T) {
	cfg, err := LoadFile(writeConfig(t, "log:\n  level: debug\n"))
	if err != nil {
		t.Fatalf("LoadFile() unexpected error = %v", err)
	}

	if cfg.Server.Port != 8080 {
		t.Errorf("Server.Port = %d, want 8080", cfg.Server.Port)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("Log.Level = %q, want debug", cfg.Log.Level)
	}
	if cfg.Providers.Mapbox.Timeout != 12*time.Second {
		t.Errorf("Mapbox.Timeout = %v, want 12s", cfg.Providers.Mapbox.Timeout)
	}
	if cfg.Providers.Unsplash.Timeout != 10*time.Second {
		t.Errorf("Unsplash.Timeout = %v, want 10s", cfg.Providers.Unsplash.Timeout)
	}
	if cfg.Discovery.MinCount != 50 || cfg.Discovery.SearchConcurrency != 1 {
		t.Errorf("Discovery = %+v", cfg.Discovery)
	}
	if cfg.Cache.Enabled() {
		t.Error("cache enabled without a redis address")
	}
}

func TestLoadFile_FileValues(t *testing.T) {
	path := writeConfig(t, `
server:
  port: 9090
  ginMode: debug
  allowedOrigins: ["https://app.example.com"]
providers:
  mapbox:
    token: pk.file
    reverseTimeout: 3s
discovery:
  minCount: 20
  photoConcurrency: 4
cache:
  redis:
    addr: localhost:6379
  resultTTL: 5m
`)

	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile() unexpected error = %v", err)
	}

	if cfg.GetServerAddr() != ":9090" {
		t.Errorf("GetServerAddr() = %q, want :9090", cfg.GetServerAddr())
	}
	if len(cfg.Server.AllowedOrigins) != 1 || cfg.Server.AllowedOrigins[0] != "https://app.example.com" {
		t.Errorf("AllowedOrigins = %v", cfg.Server.AllowedOrigins)
	}
	if cfg.Providers.Mapbox.Token != "pk.file" {
		t.Errorf("Mapbox.Token = %q", cfg.Providers.Mapbox.Token)
	}
	if cfg.Providers.Mapbox.ReverseTimeout != 3*time.Second {
		t.Errorf("Mapbox.ReverseTimeout = %v, want 3s", cfg.Providers.Mapbox.ReverseTimeout)
	}
	if cfg.Discovery.MinCount != 20 || cfg.Discovery.PhotoConcurrency != 4 {
		t.Errorf("Discovery = %+v", cfg.Discovery)
	}
	if !cfg.Cache.Enabled() || cfg.Cache.ResultTTL != 5*time.Minute {
		t.Errorf("Cache = %+v", cfg.Cache)
	}
}

func TestLoadFile_Environment(t *testing.T) {
	t.Setenv("MAPBOX_TOKEN", "pk.env")
	t.Setenv("UNSPLASH_ACCESS_KEY", "unsplash-env")
	t.Setenv("INSTA_SPOTS_DISCOVERY_MINCOUNT", "30")

	cfg, err := LoadFile(writeConfig(t, "providers:\n  mapbox:\n    token: pk.file\n"))
	if err != nil {
		t.Fatalf("LoadFile() unexpected error = %v", err)
	}

	if cfg.Providers.Mapbox.Token != "pk.env" {
		t.Errorf("Mapbox.Token = %q, want pk.env", cfg.Providers.Mapbox.Token)
	}
	if cfg.Providers.Unsplash.AccessKey != "unsplash-env" {
		t.Errorf("Unsplash.AccessKey = %q, want unsplash-env", cfg.Providers.Unsplash.AccessKey)
	}
	if cfg.Discovery.MinCount != 30 {
		t.Errorf("Discovery.MinCount = %d, want 30", cfg.Discovery.MinCount)
	}
}

func TestLoadFile_Errors(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		wantErr string
	}{
		{"missing explicit file", filepath.Join(t.TempDir(), "missing.yaml"), "failed to read config file"},
		{"invalid concurrency", writeConfig(t, "discovery:\n  searchConcurrency: 0\n"), "searchConcurrency"},
		{"invalid port", writeConfig(t, "server:\n  port: 70000\n"), "invalid server port"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadFile(tt.path)
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("LoadFile() error = %v, want containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestNewLoggerTo(t *testing.T) {
	tests := []struct {
		name      string
		cfg       LogConfig
		wantDebug bool
		wantJSON  bool
	}{
		{"json debug", LogConfig{Level: "debug", Format: "json"}, true, true},
		{"text info", LogConfig{Level: "info", Format: "text"}, false, false},
		{"unknown level", LogConfig{Level: "loud"}, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := (&Config{Log: tt.cfg}).NewLoggerTo(&buf)

			logger.Debug("debug message")
			logger.Info("info message")

			out := buf.String()
			if got := strings.Contains(out, "debug message"); got != tt.wantDebug {
				t.Errorf("debug logged = %v, want %v", got, tt.wantDebug)
			}
			if got := strings.HasPrefix(out, "{"); got != tt.wantJSON {
				t.Errorf("json output = %v, want %v: %s", got, tt.wantJSON, out)
			}
		})
	}
}
