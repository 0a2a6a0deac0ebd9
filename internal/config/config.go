// Package config reads server settings from the environment, with a .env
// file loaded first when present.
package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Port         string
	ClientOrigin string
	DataDir      string

	// RateLimitRPS enables per-IP throttling of the auth endpoints when
	// set above zero. Zero leaves them unthrottled.
	RateLimitRPS   float64
	RateLimitBurst int
}

func Load() *Config {
	_ = godotenv.Load()
	return &Config{
		Port:           env("PORT", "3001"),
		ClientOrigin:   env("CLIENT_URL", "*"),
		DataDir:        env("DATA_DIR", "data"),
		RateLimitRPS:   envFloat("RATE_LIMIT_RPS", 0),
		RateLimitBurst: envInt("RATE_LIMIT_BURST", 10),
	}
}

func env(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envFloat(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
