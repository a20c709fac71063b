// Package config provides environment configuration management.
package config

import (
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds all environment configuration for the application.
type Config struct {
	Port          string        `env:"PORT"           envDefault:"8080"`
	LogLevel      string        `env:"LOG_LEVEL"      envDefault:"info"`
	SnapshotDir   string        `env:"SNAPSHOT_DIR"   envDefault:"./data"`
	DatabaseURL   string        `env:"DATABASE_URL"`
	RedisAddr     string        `env:"REDIS_ADDR"`
	BlacklistKey  string        `env:"BLACKLIST_KEY"  envDefault:"booking:blacklist"`
	Blacklist     []string      `env:"BLACKLIST"      envSeparator:","`
	AMQPURL       string        `env:"AMQP_URL"`
	NotifyQueue   string        `env:"NOTIFY_QUEUE"   envDefault:"booking.notifications"`
	NotifyTimeout time.Duration `env:"NOTIFY_TIMEOUT" envDefault:"5s"`
}

// LoadConfig parses environment variables into Config struct.
func LoadConfig() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}
