package config_test

import (
	"strings"
	"testing"
	"time"

	"teacher-booking-api/internal/config"
)

func envOf(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func TestDefaults(t *testing.T) {
	cfg, err := config.FromEnv(envOf(map[string]string{"JWT_SECRET": "s"}))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Environment != "development" {
		t.Errorf("env: %s", cfg.Environment)
	}
	if cfg.DatabaseURL != "" {
		t.Errorf("expected in-memory default, got %q", cfg.DatabaseURL)
	}
	if cfg.TokenTTL != 24*time.Hour {
		t.Errorf("ttl: %v", cfg.TokenTTL)
	}
	if cfg.GRPCPort != "50051" || cfg.WebPort != "8080" || cfg.RESTPort != "5000" {
		t.Errorf("ports: %s %s %s", cfg.GRPCPort, cfg.WebPort, cfg.RESTPort)
	}
	if cfg.SeedDemo {
		t.Error("seeding should be off by default")
	}
	if cfg.RateLimitRPS != 5 || cfg.RateLimitBurst != 10 {
		t.Errorf("rate limit: %v/%d", cfg.RateLimitRPS, cfg.RateLimitBurst)
	}
}

func TestOverrides(t *testing.T) {
	cfg, err := config.FromEnv(envOf(map[string]string{
		"JWT_SECRET":   "s",
		"ENV":          "production",
		"DATABASE_URL": "postgres://localhost/booking",
		"TOKEN_TTL":    "90m",
		"SEED_DEMO":    "true",
		"PORT":         "9000",
	}))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Environment != "production" || cfg.TokenTTL != 90*time.Minute || !cfg.SeedDemo || cfg.GRPCPort != "9000" {
		t.Errorf("unexpected config %+v", cfg)
	}
}

func TestInvalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		want string
	}{
		{"missing secret", map[string]string{}, "JWT_SECRET"},
		{"bad ttl", map[string]string{"JWT_SECRET": "s", "TOKEN_TTL": "soon"}, "TOKEN_TTL"},
		{"negative ttl", map[string]string{"JWT_SECRET": "s", "TOKEN_TTL": "-1h"}, "TOKEN_TTL"},
		{"bad seed flag", map[string]string{"JWT_SECRET": "s", "SEED_DEMO": "maybe"}, "SEED_DEMO"},
		{"bad port", map[string]string{"JWT_SECRET": "s", "PORT": "70000"}, "PORT"},
		{"port clash", map[string]string{"JWT_SECRET": "s", "WEB_PORT": "5000"}, "must differ"},
		{"zero burst", map[string]string{"JWT_SECRET": "s", "RATE_LIMIT_BURST": "0"}, "rate limit"},
		{"unknown env", map[string]string{"JWT_SECRET": "s", "ENV": "staging"}, "ENV"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := config.FromEnv(envOf(tt.env))
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q does not mention %q", err, tt.want)
			}
		})
	}
}
