package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port      string `env:"PORT,      default=8080"`
	Env       string `env:"ENV,       default=development"`
	JWTSecret string `env:"JWT_SECRET"`
	LogLevel  string `env:"LOG_LEVEL, default=info"`

	Backend BackendConfig
	Mongo   MongoConfig
	Redis   RedisConfig
}

// BackendConfig points at the cargo REST backend the dashboard fronts.
type BackendConfig struct {
	BaseURL string `env:"BACKEND_BASE_URL, default=http://localhost:7010/api/v1"`
	// Timeout is the single global upper bound on every upstream call.
	Timeout time.Duration `env:"BACKEND_TIMEOUT, default=600s"`
	// CacheMaxAge is the freshness window for cached upstream reads.
	CacheMaxAge time.Duration `env:"BACKEND_CACHE_MAX_AGE, default=30s"`
	// Username and Password are the service credentials the gateway logs in
	// to the backend with.
	Username string `env:"BACKEND_USERNAME"`
	Password string `env:"BACKEND_PASSWORD"`
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=cargo_dashboard"`
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
