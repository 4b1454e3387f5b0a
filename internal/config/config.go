// Package config loads process configuration from the environment, with an
// optional .env file for local development.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const (
	BusBackendMemory = "memory"
	BusBackendRedis  = "redis"
)

type Config struct {
	Environment    string `env:"APP_ENV" envDefault:"development"`
	ServerAddress  string `env:"SERVER_ADDRESS" envDefault:":8080"`
	DatabaseURL    string `env:"DATABASE_URL,required"`
	MigrationsPath string `env:"MIGRATIONS_PATH" envDefault:"./migrations"`

	// BusBackend selects the event fan-out: "memory" for a single process,
	// "redis" when multiple API instances share the player fleet.
	BusBackend    string `env:"BUS_BACKEND" envDefault:"memory"`
	RedisAddress  string `env:"REDIS_ADDRESS"`
	RedisUsername string `env:"REDIS_USERNAME"`
	RedisPassword string `env:"REDIS_PASSWORD"`

	// MQTTBrokerURL, when set, mirrors every screen event to the broker for
	// players that sit behind NAT and cannot hold an SSE stream open.
	MQTTBrokerURL string `env:"MQTT_BROKER_URL"`
	MQTTClientID  string `env:"MQTT_CLIENT_ID" envDefault:"lumacast-server"`
}

// Load reads the environment into a Config. A missing .env file is fine;
// malformed or missing required variables are not.
func Load() (Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse environment: %w", err)
	}

	if cfg.BusBackend != BusBackendMemory && cfg.BusBackend != BusBackendRedis {
		return Config{}, fmt.Errorf("BUS_BACKEND must be %q or %q, got %q",
			BusBackendMemory, BusBackendRedis, cfg.BusBackend)
	}
	if cfg.BusBackend == BusBackendRedis && cfg.RedisAddress == "" {
		return Config{}, fmt.Errorf("REDIS_ADDRESS is required when BUS_BACKEND=redis")
	}
	return cfg, nil
}
