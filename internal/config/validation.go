package config

import (
	"fmt"
	"slices"
	"strings"
)

func validate(c *Config) error {
	if c.Timeout <= 0 {
		return fmt.Errorf("timeout must be > 0")
	}
	if c.Timeout > MaxTimeout {
		return fmt.Errorf("timeout must be at most %s", MaxTimeout)
	}
	if c.Wait < 0 {
		return fmt.Errorf("wait must not be negative")
	}
	if c.Wait >= c.Timeout {
		return fmt.Errorf("wait (%s) must be shorter than timeout (%s)", c.Wait, c.Timeout)
	}
	if !slices.Contains(Engines, c.Engine) {
		return fmt.Errorf("unknown engine %q (must be one of %s)", c.Engine, strings.Join(Engines, ", "))
	}
	if c.RateLimitRPS <= 0 {
		return fmt.Errorf("rate limit must be > 0")
	}
	if c.RateLimitBurst <= 0 {
		return fmt.Errorf("rate limit burst must be > 0")
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log level %q", c.LogLevel)
	}
	return nil
}
