package config

import (
	"fmt"
	"strings"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in 1..65535 (got %d)", c.Server.Port)
	}

	if strings.TrimSpace(c.Database.DSN) == "" {
		return fmt.Errorf("database.dsn is required")
	}

	if c.Database.MinConns < 0 || c.Database.MaxConns < 1 || c.Database.MinConns > c.Database.MaxConns {
		return fmt.Errorf("database: need 0 <= min_conns <= max_conns and max_conns >= 1 (got %d/%d)",
			c.Database.MinConns, c.Database.MaxConns)
	}

	if err := c.Log.validate(); err != nil {
		return fmt.Errorf("log: %w", err)
	}

	if err := c.Metrics.validate(); err != nil {
		return fmt.Errorf("metrics: %w", err)
	}

	if c.Topics.DropHour < 0 || c.Topics.DropHour > 23 {
		return fmt.Errorf("topics.drop_hour must be in 0..23 (got %d)", c.Topics.DropHour)
	}

	return nil
}

func (l *LogConfig) validate() error {
	switch strings.ToLower(strings.TrimSpace(l.Level)) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown level %q", l.Level)
	}

	switch strings.ToLower(strings.TrimSpace(l.Format)) {
	case "json", "text":
	default:
		return fmt.Errorf("unknown format %q", l.Format)
	}

	return nil
}

// reservedPrefixes are path prefixes served by the API router.
var reservedPrefixes = []string{"/topics", "/ratings", "/live", "/ready", "/health"}

func (m *MetricsConfig) validate() error {
	if !m.Enabled {
		return nil
	}
	if !strings.HasPrefix(m.Path, "/") || m.Path == "/" {
		return fmt.Errorf("path must start with / and not be the root (got %q)", m.Path)
	}
	for _, p := range reservedPrefixes {
		if m.Path == p || strings.HasPrefix(m.Path, p+"/") {
			return fmt.Errorf("path %q collides with API route %s", m.Path, p)
		}
	}
	return nil
}
