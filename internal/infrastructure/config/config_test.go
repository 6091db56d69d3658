package config

import (
	"context"
	"testing"
	"time"

	"github.com/sethvargo/go-envconfig"
)

func TestLoadDefaults(t *testing.T) {
	var cfg Config
	err := envconfig.ProcessWith(context.Background(), &envconfig.Config{
		Target:   &cfg,
		Lookuper: envconfig.MapLookuper(map[string]string{}),
	})
	if err != nil {
		t.Fatalf("ProcessWith: %v", err)
	}

	if cfg.Port != "8080" {
		t.Errorf("Port = %q", cfg.Port)
	}
	if cfg.JWTTTL != time.Hour {
		t.Errorf("JWTTTL = %v", cfg.JWTTTL)
	}
	if cfg.ConfirmationTTL != 60*time.Minute {
		t.Errorf("ConfirmationTTL = %v", cfg.ConfirmationTTL)
	}
	if cfg.Mongo.Database != "compcar" {
		t.Errorf("Mongo.Database = %q", cfg.Mongo.Database)
	}
	if cfg.SMTP.Port != 587 {
		t.Errorf("SMTP.Port = %d", cfg.SMTP.Port)
	}
}

func TestLoadOverrides(t *testing.T) {
	var cfg Config
	err := envconfig.ProcessWith(context.Background(), &envconfig.Config{
		Target: &cfg,
		Lookuper: envconfig.MapLookuper(map[string]string{
			"PORT":             "9090",
			"JWT_SECRET":       "super-secret",
			"CONFIRMATION_TTL": "15m",
			"REDIS_ADDR":       "redis.internal:6380",
		}),
	})
	if err != nil {
		t.Fatalf("ProcessWith: %v", err)
	}

	if cfg.Port != "9090" {
		t.Errorf("Port = %q", cfg.Port)
	}
	if cfg.JWTSecret != "super-secret" {
		t.Errorf("JWTSecret = %q", cfg.JWTSecret)
	}
	if cfg.ConfirmationTTL != 15*time.Minute {
		t.Errorf("ConfirmationTTL = %v", cfg.ConfirmationTTL)
	}
	if cfg.Redis.Addr != "redis.internal:6380" {
		t.Errorf("Redis.Addr = %q", cfg.Redis.Addr)
	}
}
