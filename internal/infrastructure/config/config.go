package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port      string        `env:"PORT,      default=8080"`
	Env       string        `env:"ENV,       default=development"`
	JWTSecret string        `env:"JWT_SECRET"`
	TokenTTL  time.Duration `env:"TOKEN_TTL, default=24h"`
	LogLevel  string        `env:"LOG_LEVEL, default=info"`

	SQLite SQLiteConfig
	Cache  CacheConfig
	Redis  RedisConfig
}

type SQLiteConfig struct {
	Path string `env:"SQLITE_PATH, default=micropost.db"`
}

// CacheConfig tunes the list-posts response cache. Backend "memory" is the
// in-process LRU store; "redis" shares entries across instances.
type CacheConfig struct {
	Backend  string        `env:"CACHE_BACKEND,  default=memory"`
	Capacity int           `env:"CACHE_CAPACITY, default=1000"`
	TTL      time.Duration `env:"CACHE_TTL,      default=5m"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
