// Package config loads application settings from the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	// Organization scopes catalog lookups and quote numbers. Empty means
	// a single-tenant install.
	Organization     string
	CatalogCacheSize int
	SessionCacheSize int
	Seed             bool
	Currency         string
}

// Load reads .env (if present) and then the process environment. PocketBase
// keeps its own command line flags, so none are parsed here. Malformed
// numeric or boolean values are an error.
func Load() (*Config, error) {
	_ = godotenv.Load()

	catalogSize, err := intEnv("SHADEQUOTE_CATALOG_CACHE_SIZE", 512)
	if err != nil {
		return nil, err
	}
	sessionSize, err := intEnv("SHADEQUOTE_SESSION_CACHE_SIZE", 256)
	if err != nil {
		return nil, err
	}
	seed, err := boolEnv("SHADEQUOTE_SEED", true)
	if err != nil {
		return nil, err
	}

	return &Config{
		Organization:     strings.TrimSpace(os.Getenv("SHADEQUOTE_ORGANIZATION")),
		CatalogCacheSize: catalogSize,
		SessionCacheSize: sessionSize,
		Seed:             seed,
		Currency:         firstNonEmpty(strings.TrimSpace(os.Getenv("SHADEQUOTE_CURRENCY")), "₹"),
	}, nil
}

var errNotPositive = errors.New("must be a positive integer")

func intEnv(key string, fallback int) (int, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	if v <= 0 {
		return 0, fmt.Errorf("%s=%d: %w", key, v, errNotPositive)
	}
	return v, nil
}

func boolEnv(key string, fallback bool) (bool, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("%s: %w", key, err)
	}
	return v, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
