package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

// validEnv sets the minimum required env vars for a valid config.
func validEnv(t *testing.T) {
	t.Helper()
	t.Setenv("DATABASE_DSN", "postgres://u:p@localhost:5432/testdb")
}

func writeYAML(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write yaml: %v", err)
	}
	return path
}

// validConfig returns a Config that passes Validate.
func validConfig() *Config {
	return &Config{
		Server:   ServerConfig{Host: "0.0.0.0", Port: 8080},
		Database: DatabaseConfig{DSN: "postgres://localhost/db", MaxConns: 25, MinConns: 5},
		Log:      LogConfig{Level: "info", Format: "json"},
		Metrics:  MetricsConfig{Enabled: true, Path: "/metrics"},
		Topics:   TopicsConfig{DropHour: 9},
		Fallback: FallbackConfig{Enabled: true},
	}
}

const validYAML = `
server:
  host: "127.0.0.1"
  port: 9090
  read_timeout: "5s"
  write_timeout: "15s"
  idle_timeout: "30s"
  shutdown_timeout: "5s"

database:
  dsn: "postgres://u:p@localhost:5432/testdb"
  max_conns: 10
  min_conns: 2
  connect_timeout: "2s"

log:
  level: "debug"
  format: "text"

metrics:
  enabled: true
  path: "/internal/metrics"

topics:
  drop_hour: 7

fallback:
  seed: 42
  expose_header: true
`

func TestLoad_ValidYAML(t *testing.T) {
	dir := t.TempDir()
	path := writeYAML(t, dir, validYAML)
	t.Setenv("CONFIG_PATH", path)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Server.Host != "127.0.0.1" {
		t.Errorf("server.host = %q, want %q", cfg.Server.Host, "127.0.0.1")
	}
	if cfg.Server.Port != 9090 {
		t.Errorf("server.port = %d, want %d", cfg.Server.Port, 9090)
	}
	if cfg.Server.ReadTimeout != 5*time.Second {
		t.Errorf("server.read_timeout = %v, want %v", cfg.Server.ReadTimeout, 5*time.Second)
	}
	if got := cfg.Server.Addr(); got != "127.0.0.1:9090" {
		t.Errorf("server.Addr() = %q, want %q", got, "127.0.0.1:9090")
	}

	if cfg.Database.MaxConns != 10 {
		t.Errorf("database.max_conns = %d, want 10", cfg.Database.MaxConns)
	}
	if cfg.Database.ConnectTimeout != 2*time.Second {
		t.Errorf("database.connect_timeout = %v, want 2s", cfg.Database.ConnectTimeout)
	}
	// Not set in YAML, so the env-default applies.
	if cfg.Database.MaxConnLifetime != time.Hour {
		t.Errorf("database.max_conn_lifetime = %v, want 1h", cfg.Database.MaxConnLifetime)
	}

	if cfg.Log.Level != "debug" || cfg.Log.Format != "text" {
		t.Errorf("log = %+v, want debug/text", cfg.Log)
	}
	if cfg.Metrics.Path != "/internal/metrics" {
		t.Errorf("metrics.path = %q", cfg.Metrics.Path)
	}
	if cfg.Topics.DropHour != 7 {
		t.Errorf("topics.drop_hour = %d, want 7", cfg.Topics.DropHour)
	}
	if !cfg.Fallback.Enabled {
		t.Error("fallback.enabled should keep its default (true)")
	}
	if cfg.Fallback.Seed != 42 {
		t.Errorf("fallback.seed = %d, want 42", cfg.Fallback.Seed)
	}
	if !cfg.Fallback.ExposeHeader {
		t.Error("fallback.expose_header should be true")
	}
}

func TestLoad_ENVOverridesYAML(t *testing.T) {
	dir := t.TempDir()
	path := writeYAML(t, dir, validYAML)
	t.Setenv("CONFIG_PATH", path)
	t.Setenv("SERVER_PORT", "3000")
	t.Setenv("FALLBACK_ENABLED", "false")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Server.Port != 3000 {
		t.Errorf("server.port = %d, want 3000 (ENV override)", cfg.Server.Port)
	}
	if cfg.Fallback.Enabled {
		t.Error("fallback.enabled should be false (ENV override)")
	}
}

func TestLoad_NoFile_ENVOnly(t *testing.T) {
	validEnv(t)
	t.Setenv("CONFIG_PATH", "")

	origDir, _ := os.Getwd()
	t.Cleanup(func() { _ = os.Chdir(origDir) })
	_ = os.Chdir(t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Server.Port != 8080 {
		t.Errorf("server.port = %d, want 8080 (default)", cfg.Server.Port)
	}
	if cfg.Topics.DropHour != 9 {
		t.Errorf("topics.drop_hour = %d, want 9 (default)", cfg.Topics.DropHour)
	}
	if !cfg.Fallback.Enabled {
		t.Error("fallback.enabled should default to true")
	}
	if cfg.Fallback.ExposeHeader {
		t.Error("fallback.expose_header should default to false")
	}
	if !cfg.Metrics.Enabled || cfg.Metrics.Path != "/metrics" {
		t.Errorf("metrics = %+v, want enabled at /metrics", cfg.Metrics)
	}
}

func TestLoad_NoFile_MissingDSN(t *testing.T) {
	t.Setenv("CONFIG_PATH", "")
	t.Setenv("DATABASE_DSN", "")

	origDir, _ := os.Getwd()
	t.Cleanup(func() { _ = os.Chdir(origDir) })
	_ = os.Chdir(t.TempDir())

	if _, err := Load(); err == nil {
		t.Fatal("expected error when DATABASE_DSN is missing")
	}
}

func TestLoad_ExplicitPathNotFound(t *testing.T) {
	t.Setenv("CONFIG_PATH", "/nonexistent/config.yaml")

	_, err := Load()
	if err == nil {
		t.Fatal("expected error for missing explicit config path")
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	dir := t.TempDir()
	path := writeYAML(t, dir, `{{{invalid yaml`)
	t.Setenv("CONFIG_PATH", path)

	_, err := Load()
	if err == nil {
		t.Fatal("expected error for invalid YAML")
	}
}

func TestValidate_Valid(t *testing.T) {
	t.Parallel()
	if err := validConfig().Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidate_Rejects(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		mutate func(c *Config)
	}{
		{"port zero", func(c *Config) { c.Server.Port = 0 }},
		{"dsn empty", func(c *Config) { c.Database.DSN = "" }},
		{"dsn blank", func(c *Config) { c.Database.DSN = "   " }},
		{"port too large", func(c *Config) { c.Server.Port = 70000 }},
		{"min conns above max", func(c *Config) { c.Database.MinConns = 30 }},
		{"max conns zero", func(c *Config) { c.Database.MaxConns = 0; c.Database.MinConns = 0 }},
		{"unknown log level", func(c *Config) { c.Log.Level = "verbose" }},
		{"unknown log format", func(c *Config) { c.Log.Format = "xml" }},
		{"drop hour negative", func(c *Config) { c.Topics.DropHour = -1 }},
		{"drop hour 24", func(c *Config) { c.Topics.DropHour = 24 }},
		{"metrics path relative", func(c *Config) { c.Metrics.Path = "metrics" }},
		{"metrics path root", func(c *Config) { c.Metrics.Path = "/" }},
		{"metrics path collides", func(c *Config) { c.Metrics.Path = "/ratings/metrics" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := validConfig()
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Fatal("expected validation error")
			}
		})
	}
}

func TestValidate_MetricsDisabledSkipsPathCheck(t *testing.T) {
	t.Parallel()

	cfg := validConfig()
	cfg.Metrics.Enabled = false
	cfg.Metrics.Path = ""

	if err := cfg.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidate_DropHourBoundaries(t *testing.T) {
	t.Parallel()

	for _, h := range []int{0, 23} {
		cfg := validConfig()
		cfg.Topics.DropHour = h
		if err := cfg.Validate(); err != nil {
			t.Errorf("drop hour %d: unexpected error: %v", h, err)
		}
	}
}
