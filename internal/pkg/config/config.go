package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,      default=8080"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	// APIURL is the inventory API base URL. Required: the process must not
	// start without knowing where its upstream lives.
	APIURL string `env:"API_URL, required"`

	// SessionCacheTTL bounds how long a who-am-I answer may be served from
	// Redis before the upstream is probed again.
	SessionCacheTTL time.Duration `env:"SESSION_CACHE_TTL, default=30s"`

	Redis RedisConfig
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// IsProduction gates production-only behaviour such as the Secure flag on
// the credential cookie.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
