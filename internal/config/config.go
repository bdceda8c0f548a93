// Package config loads the service configuration from environment
// variables, with an optional .env file for local development.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

// Config holds everything the service needs at startup.
type Config struct {
	Port           string
	DatabaseDSN    string
	JWTSecret      string
	TokenTTL       time.Duration
	BcryptCost     int
	AllowedOrigins []string
	GinMode        string
}

// Load reads configuration from the environment. A .env file in the working
// directory is applied first when present.
//
// JWT_SECRET has no fallback on purpose: a service signing tokens with a
// baked-in default is indistinguishable from one with no signature at all.
func Load() (*Config, error) {
	_ = godotenv.Load()

	ttl, err := time.ParseDuration(env("TOKEN_TTL", "168h"))
	if err != nil {
		return nil, fmt.Errorf("invalid TOKEN_TTL: %w", err)
	}

	cost, err := strconv.Atoi(env("BCRYPT_COST", "10"))
	if err != nil {
		return nil, fmt.Errorf("invalid BCRYPT_COST: %w", err)
	}

	cfg := &Config{
		Port:           env("PORT", "5000"),
		DatabaseDSN:    os.Getenv("DATABASE_DSN"),
		JWTSecret:      os.Getenv("JWT_SECRET"),
		TokenTTL:       ttl,
		BcryptCost:     cost,
		AllowedOrigins: splitOrigins(env("CORS_ALLOWED_ORIGINS", "http://localhost:5173")),
		GinMode:        env("GIN_MODE", "debug"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the settings that have no safe default.
func (c *Config) Validate() error {
	var missing []string
	if c.JWTSecret == "" {
		missing = append(missing, "JWT_SECRET")
	}
	if c.DatabaseDSN == "" {
		missing = append(missing, "DATABASE_DSN")
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required configuration: %s", strings.Join(missing, ", "))
	}
	if c.BcryptCost < bcrypt.MinCost || c.BcryptCost > bcrypt.MaxCost {
		return fmt.Errorf("BCRYPT_COST %d out of range [%d, %d]", c.BcryptCost, bcrypt.MinCost, bcrypt.MaxCost)
	}
	if c.TokenTTL <= 0 {
		return fmt.Errorf("TOKEN_TTL must be positive, got %s", c.TokenTTL)
	}
	return nil
}

func env(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func splitOrigins(raw string) []string {
	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			origins = append(origins, p)
		}
	}
	return origins
}
