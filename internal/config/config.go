package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config holds all service configuration loaded from environment variables.
type Config struct {
	Port     string `env:"PORT" env-default:"3000"`
	MongoURI string `env:"MONGO_URI" env-required:"true"`
	MongoDB  string `env:"MONGO_DB" env-default:"exerciseTrackerDB"`

	// Redis is optional: an empty addr runs the service without the
	// user-document cache.
	RedisAddr     string `env:"REDIS_ADDR" env-default:""`
	RedisPassword string `env:"REDIS_PASSWORD" env-default:""`
	RedisDB       int    `env:"REDIS_DB" env-default:"0"`

	CacheTTL time.Duration `env:"CACHE_TTL" env-default:"60s"`
}

func Load() (Config, error) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return Config{}, fmt.Errorf("read env: %w", err)
	}
	return cfg, nil
}
