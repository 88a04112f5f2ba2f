package config

import (
	"fmt"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in 1..65535 (got %d)", c.Server.Port)
	}

	if c.Server.RateLimitPerMinute < 0 {
		return fmt.Errorf("server.rate_limit_per_minute must be >= 0 (got %d)", c.Server.RateLimitPerMinute)
	}

	if c.Database.MaxConns < 1 {
		return fmt.Errorf("database.max_conns must be >= 1 (got %d)", c.Database.MaxConns)
	}
	if c.Database.MinConns > c.Database.MaxConns {
		return fmt.Errorf("database.min_conns (%d) must not exceed max_conns (%d)",
			c.Database.MinConns, c.Database.MaxConns)
	}

	if err := c.Gemini.validate(); err != nil {
		return fmt.Errorf("gemini: %w", err)
	}

	return nil
}

func (g *GeminiConfig) validate() error {
	if g.Model == "" {
		return fmt.Errorf("model must not be empty")
	}
	if g.Temperature < 0 || g.Temperature > 2 {
		return fmt.Errorf("temperature must be in 0..2 (got %v)", g.Temperature)
	}
	if g.MaxOutputTokens < 1 {
		return fmt.Errorf("max_output_tokens must be >= 1 (got %d)", g.MaxOutputTokens)
	}
	if g.Timeout <= 0 {
		return fmt.Errorf("timeout must be > 0 (got %v)", g.Timeout)
	}
	return nil
}
