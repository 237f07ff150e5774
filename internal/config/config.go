package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	JWT       JWTConfig
	Redis     RedisConfig
	RateLimit RateLimitConfig
	CORS      CORSConfig
	Outbox    OutboxConfig
}

type ServerConfig struct {
	Port              int
	RequestTimeout    time.Duration
	ReadHeaderTimeout time.Duration
	ShutdownTimeout   time.Duration
}

type DatabaseConfig struct {
	URL      string
	MaxConns int
}

type JWTConfig struct {
	Secret   string
	TokenTTL time.Duration
}

type RedisConfig struct {
	URL string
}

type RateLimitConfig struct {
	RequestsPerSecond float64
	Burst             int
}

type CORSConfig struct {
	FrontendOrigin string
}

type OutboxConfig struct {
	Enabled      bool
	BatchSize    int
	PollInterval time.Duration
}

// Load reads configuration from the environment. DATABASE_URL and
// JWT_SECRET are required; the process must not serve traffic without them.
func Load() (*Config, error) {
	v := viper.New()
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	v.SetDefault("PORT", 3001)
	v.SetDefault("REQUEST_TIMEOUT", "15s")
	v.SetDefault("READ_HEADER_TIMEOUT", "20s")
	v.SetDefault("SHUTDOWN_TIMEOUT", "10s")
	v.SetDefault("DB_MAX_CONNS", 100)
	v.SetDefault("TOKEN_TTL", "168h")
	v.SetDefault("RATE_LIMIT_RPS", 50.0)
	v.SetDefault("RATE_LIMIT_BURST", 100)
	v.SetDefault("OUTBOX_BATCH_SIZE", 50)
	v.SetDefault("OUTBOX_POLL_INTERVAL", "5s")

	cfg := &Config{
		Server: ServerConfig{
			Port:              v.GetInt("PORT"),
			RequestTimeout:    v.GetDuration("REQUEST_TIMEOUT"),
			ReadHeaderTimeout: v.GetDuration("READ_HEADER_TIMEOUT"),
			ShutdownTimeout:   v.GetDuration("SHUTDOWN_TIMEOUT"),
		},
		Database: DatabaseConfig{
			URL:      v.GetString("DATABASE_URL"),
			MaxConns: v.GetInt("DB_MAX_CONNS"),
		},
		JWT: JWTConfig{
			Secret:   v.GetString("JWT_SECRET"),
			TokenTTL: v.GetDuration("TOKEN_TTL"),
		},
		Redis: RedisConfig{
			URL: v.GetString("REDIS_URL"),
		},
		RateLimit: RateLimitConfig{
			RequestsPerSecond: v.GetFloat64("RATE_LIMIT_RPS"),
			Burst:             v.GetInt("RATE_LIMIT_BURST"),
		},
		CORS: CORSConfig{
			FrontendOrigin: v.GetString("FRONTEND_URL"),
		},
		Outbox: OutboxConfig{
			Enabled:      v.GetString("REDIS_URL") != "",
			BatchSize:    v.GetInt("OUTBOX_BATCH_SIZE"),
			PollInterval: v.GetDuration("OUTBOX_POLL_INTERVAL"),
		},
	}

	if cfg.Database.URL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required")
	}
	if cfg.JWT.Secret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}

	return cfg, nil
}
