// Package config defines configuration parsing and helpers.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v10"
)

// Config holds all application configuration parsed from environment
// variables. It is constructed once at startup and injected explicitly;
// nothing reads the environment mid-call.
type Config struct {
	AppEnv string `env:"APP_ENV" envDefault:"dev"`
	Port   int    `env:"PORT" envDefault:"8080"`

	DBURL     string `env:"DB_URL" envDefault:""`
	RedisAddr string `env:"REDIS_ADDR" envDefault:""`
	RedisDB   int    `env:"REDIS_DB" envDefault:"0"`

	OpenRouterAPIKey  string        `env:"OPENROUTER_API_KEY"`
	OpenRouterBaseURL string        `env:"OPENROUTER_BASE_URL" envDefault:"https://openrouter.ai/api/v1"`
	OpenRouterModel   string        `env:"OPENROUTER_MODEL" envDefault:"openrouter/auto"`
	LLMTimeout        time.Duration `env:"LLM_TIMEOUT" envDefault:"30s"`

	CacheTTL time.Duration `env:"CACHE_TTL" envDefault:"1h"`

	CORSAllowOrigins      string        `env:"CORS_ALLOW_ORIGINS" envDefault:"*"`
	RateLimitPerMin       int           `env:"RATE_LIMIT_PER_MIN" envDefault:"30"`
	ServerShutdownTimeout time.Duration `env:"SERVER_SHUTDOWN_TIMEOUT" envDefault:"30s"`
	HTTPReadTimeout       time.Duration `env:"HTTP_READ_TIMEOUT" envDefault:"15s"`
	HTTPWriteTimeout      time.Duration `env:"HTTP_WRITE_TIMEOUT" envDefault:"60s"`
	HTTPIdleTimeout       time.Duration `env:"HTTP_IDLE_TIMEOUT" envDefault:"60s"`
	RequestTimeout        time.Duration `env:"REQUEST_TIMEOUT" envDefault:"45s"`

	OTLPEndpoint    string `env:"OTEL_EXPORTER_OTLP_ENDPOINT" envDefault:""`
	OTELServiceName string `env:"OTEL_SERVICE_NAME" envDefault:"mentorlaunch"`
}

// Load parses environment variables into a Config.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("op=config.Load: %w", err)
	}
	return cfg, nil
}

// IsDev reports whether the app is running in development mode.
func (c Config) IsDev() bool { return strings.ToLower(c.AppEnv) == "dev" }

// IsProd reports whether the app is running in production mode.
func (c Config) IsProd() bool { return strings.ToLower(c.AppEnv) == "prod" }

// PersistenceEnabled reports whether a Postgres DSN is configured.
func (c Config) PersistenceEnabled() bool { return c.DBURL != "" }

// CacheEnabled reports whether a Redis address is configured.
func (c Config) CacheEnabled() bool { return c.RedisAddr != "" }
