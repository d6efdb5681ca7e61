package config

import (
	"errors"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/Annany2002/schema-builder/internal/logger"
	"github.com/joho/godotenv"
)

var (
	customLog = logger.NewLogger()
)

// Config holds application configuration values
type Config struct {
	ServerPort         string
	AppEnv             string
	SeedFile           string
	CORSAllowedOrigins []string
	RateLimitRequests  int
	RateLimitWindow    time.Duration
}

// LoadConfig loads configuration from environment variables.
// It uses a .env file for local development if present (ignores it for production).
func LoadConfig() (*Config, error) {
	customLog.Println("Loading configuration from environment variables...")

	appEnv := getEnv("APP_ENV", "development")
	if appEnv != "production" {
		if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
			customLog.Warnf("Warning: Error loading .env file: %v", err)
		}
	}

	port := strings.TrimPrefix(getEnv("SERVER_PORT", "8080"), ":")
	if port == "" {
		return nil, errors.New("SERVER_PORT must not be empty")
	}

	cfg := &Config{
		ServerPort:         port,
		AppEnv:             appEnv,
		SeedFile:           getEnv("SEED_FILE", ""),
		CORSAllowedOrigins: splitList(getEnv("CORS_ALLOWED_ORIGINS", "*")),
		RateLimitRequests:  getPositiveInt("RATE_LIMIT_REQUESTS", 120),
		RateLimitWindow:    time.Second * time.Duration(getPositiveInt("RATE_LIMIT_WINDOW_SECONDS", 60)),
	}

	customLog.Printf("Configuration loaded successfully. Port: %s, Env: %s, Rate limit: %d/%v",
		cfg.ServerPort, cfg.AppEnv, cfg.RateLimitRequests, cfg.RateLimitWindow)
	return cfg, nil
}

// getEnv reads an environment variable or returns a default value.
func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// getPositiveInt parses a positive integer variable, warning and falling back on bad input.
func getPositiveInt(key string, fallback int) int {
	raw, exists := os.LookupEnv(key)
	if !exists || raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		customLog.Warnf("Invalid %s '%s'. Using default %d. Error: %v", key, raw, fallback, err)
		return fallback
	}
	return n
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
