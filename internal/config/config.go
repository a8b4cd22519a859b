package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds runtime configuration parsed from environment variables.
type Config struct {
	HTTPAddr        string
	ShopDomain      string
	StorefrontToken string
	APIVersion      string
	DataDir         string
	AllowedOrigins  []string
	ShutdownTimeout time.Duration
}

// FromEnv builds Config with defaults, overridden by environment variables.
// ShopDomain and StorefrontToken have no sane defaults and are required.
func FromEnv() (Config, error) {
	cfg := Config{
		HTTPAddr:        envOrDefault("HTTP_ADDR", ":8080"),
		ShopDomain:      os.Getenv("SHOP_DOMAIN"),
		StorefrontToken: envFirst("STOREFRONT_ACCESS_TOKEN", "STOREFRONT_TOKEN"),
		APIVersion:      envOrDefault("API_VERSION", "2024-07"),
		DataDir:         envOrDefault("DATA_DIR", "./data"),
		ShutdownTimeout: envDuration("SHUTDOWN_TIMEOUT_SECONDS", 10*time.Second),
	}
	for _, origin := range strings.Split(os.Getenv("ALLOWED_ORIGINS"), ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			cfg.AllowedOrigins = append(cfg.AllowedOrigins, origin)
		}
	}

	if cfg.ShopDomain == "" {
		return Config{}, fmt.Errorf("SHOP_DOMAIN is required")
	}
	if cfg.StorefrontToken == "" {
		return Config{}, fmt.Errorf("STOREFRONT_ACCESS_TOKEN is required")
	}
	return cfg, nil
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// envFirst returns the first non-empty value among the given keys. The token
// is accepted under both of its historical names.
func envFirst(keys ...string) string {
	for _, key := range keys {
		if v := os.Getenv(key); v != "" {
			return v
		}
	}
	return ""
}

func envDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		seconds, err := strconv.Atoi(v)
		if err == nil {
			return time.Duration(seconds) * time.Second
		}
	}
	return def
}
