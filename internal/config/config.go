package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
)

// Config holds all runtime settings for the console API, parsed from the
// environment. Once loaded it is read-only and handed to components via
// constructors.
type Config struct {
	Port        string `env:"PORT" envDefault:"8080"`
	Environment string `env:"ENVIRONMENT" envDefault:"development"`

	// SessionBackend selects the durable session slot: "file" or "redis".
	SessionBackend string `env:"SESSION_BACKEND" envDefault:"file"`
	SessionFile    string `env:"SESSION_FILE" envDefault:"./data/session.json"`
	SessionKey     string `env:"SESSION_KEY" envDefault:"greenwheels:console:session"`

	RedisAddress  string `env:"REDIS_ADDRESS" envDefault:"localhost:6379"`
	RedisPassword string `env:"REDIS_PASSWORD"`

	// RabbitMQURL enables session lifecycle events when set; empty means
	// events are dropped.
	RabbitMQURL       string `env:"RABBITMQ_URL"`
	SessionEventQueue string `env:"SESSION_EVENT_QUEUE" envDefault:"session-events"`

	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:"," envDefault:"*"`

	// LoginRateLimit caps login attempts per client IP per minute.
	LoginRateLimit int `env:"LOGIN_RATE_LIMIT" envDefault:"10"`
}

// Load parses environment variables into a Config.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: parse environment: %w", err)
	}
	switch cfg.SessionBackend {
	case "file", "redis":
	default:
		return nil, fmt.Errorf("config: unknown SESSION_BACKEND %q", cfg.SessionBackend)
	}
	return cfg, nil
}

// IsProduction reports whether the server runs in production mode.
func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.Environment, "production")
}
