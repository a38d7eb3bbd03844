package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"

	"github.com/KirkDiggler/dying-condition/internal/domain/conditions"
	"github.com/KirkDiggler/dying-condition/internal/logging"
)

// Config holds all configuration for the application
type Config struct {
	Redis   RedisConfig
	Logging logging.Config
	Rules   RulesConfig
	Markers conditions.MarkerConfig
	Metrics MetricsConfig
}

// RedisConfig holds Redis-specific configuration
type RedisConfig struct {
	// URL is optional: without it the in-memory stores are used
	URL     string `env:"REDIS_URL"`
	Channel string `env:"DYING_UPDATES_CHANNEL" envDefault:"character:updates"`
}

// RulesConfig holds the tunable parts of the dying rules
type RulesConfig struct {
	MaxDying             int  `env:"MAX_DYING" envDefault:"5"`
	RequireZeroHitPoints bool `env:"DEATH_SAVE_REQUIRE_ZERO_HP" envDefault:"false"`
}

// MetricsConfig holds the Prometheus endpoint configuration
type MetricsConfig struct {
	Addr string `env:"METRICS_ADDR" envDefault:":2112"`
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks values env parsing cannot
func (c *Config) Validate() error {
	if c.Rules.MaxDying < 1 {
		return fmt.Errorf("MAX_DYING must be at least 1, got %d", c.Rules.MaxDying)
	}
	if err := c.Markers.Validate(); err != nil {
		return fmt.Errorf("invalid marker configuration: %w", err)
	}
	return nil
}
