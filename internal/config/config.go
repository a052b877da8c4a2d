package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Environment string
	DatabaseURL string // empty selects the in-memory stores
	JWTSecret   string
	TokenTTL    time.Duration

	GRPCPort string
	WebPort  string
	RESTPort string

	SeedDemo       bool
	RateLimitRPS   float64
	RateLimitBurst int
}

// Load reads the environment, after merging an optional .env file.
func Load() (*Config, error) {
	_ = godotenv.Load()
	return FromEnv(os.Getenv)
}

func FromEnv(getenv func(string) string) (*Config, error) {
	env := func(key, fallback string) string {
		if v := getenv(key); v != "" {
			return v
		}
		return fallback
	}

	cfg := &Config{
		Environment: env("ENV", "development"),
		DatabaseURL: getenv("DATABASE_URL"),
		JWTSecret:   getenv("JWT_SECRET"),
		GRPCPort:    env("PORT", "50051"),
		WebPort:     env("WEB_PORT", "8080"),
		RESTPort:    env("REST_PORT", "5000"),
	}

	var err error
	if cfg.TokenTTL, err = time.ParseDuration(env("TOKEN_TTL", "24h")); err != nil {
		return nil, fmt.Errorf("TOKEN_TTL: %w", err)
	}
	if cfg.SeedDemo, err = strconv.ParseBool(env("SEED_DEMO", "false")); err != nil {
		return nil, fmt.Errorf("SEED_DEMO: %w", err)
	}
	if cfg.RateLimitRPS, err = strconv.ParseFloat(env("RATE_LIMIT_RPS", "5"), 64); err != nil {
		return nil, fmt.Errorf("RATE_LIMIT_RPS: %w", err)
	}
	if cfg.RateLimitBurst, err = strconv.Atoi(env("RATE_LIMIT_BURST", "10")); err != nil {
		return nil, fmt.Errorf("RATE_LIMIT_BURST: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET is required")
	}
	if c.TokenTTL <= 0 {
		return fmt.Errorf("TOKEN_TTL must be positive")
	}
	for name, port := range map[string]string{"PORT": c.GRPCPort, "WEB_PORT": c.WebPort, "REST_PORT": c.RESTPort} {
		n, err := strconv.Atoi(port)
		if err != nil || n <= 0 || n > 65535 {
			return fmt.Errorf("%s must be between 1 and 65535", name)
		}
	}
	if c.GRPCPort == c.WebPort || c.GRPCPort == c.RESTPort || c.WebPort == c.RESTPort {
		return fmt.Errorf("PORT, WEB_PORT and REST_PORT must differ")
	}
	if c.RateLimitRPS <= 0 || c.RateLimitBurst <= 0 {
		return fmt.Errorf("rate limit must be positive")
	}
	switch c.Environment {
	case "development", "production":
	default:
		return fmt.Errorf("ENV must be development or production, got %q", c.Environment)
	}
	return nil
}
