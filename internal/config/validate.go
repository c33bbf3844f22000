package config

import (
	"fmt"
	"strings"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	switch strings.ToLower(strings.TrimSpace(c.App.Env)) {
	case EnvDevelopment, EnvTest, EnvProduction:
	default:
		return fmt.Errorf("app.env must be one of %s, %s, %s (got %q)", EnvDevelopment, EnvTest, EnvProduction, c.App.Env)
	}

	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in 1..65535 (got %d)", c.Server.Port)
	}

	if strings.TrimSpace(c.CORS.AllowedOrigins) == "" {
		return fmt.Errorf("cors.allowed_origins must not be empty")
	}

	if err := c.Data.validate(); err != nil {
		return fmt.Errorf("data: %w", err)
	}

	return nil
}

func (d *DataConfig) validate() error {
	if strings.TrimSpace(d.Path) == "" {
		return fmt.Errorf("path is required")
	}
	if d.CacheTTLMillis < 0 {
		return fmt.Errorf("cache_ttl_ms must be >= 0 (got %d)", d.CacheTTLMillis)
	}
	return nil
}
