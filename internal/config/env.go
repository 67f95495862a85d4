package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"golang.org/x/text/language"
)

// loads configuration from environment variables
func LoadEnvironmentVariables() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		_ = err // not an error - production environments may not have .env file
	}

	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable is required")
	}

	defaultLocale, err := language.Parse(getEnv("DEFAULT_LOCALE", "pt-BR"))
	if err != nil {
		return nil, fmt.Errorf("invalid DEFAULT_LOCALE: %w", err)
	}

	exposeDeveloperMessages, err := strconv.ParseBool(getEnv("EXPOSE_DEVELOPER_MESSAGES", "true"))
	if err != nil {
		return nil, fmt.Errorf("invalid EXPOSE_DEVELOPER_MESSAGES: %w", err)
	}

	return &Config{
		DatabaseURL:             databaseURL,
		Port:                    getEnv("PORT", "8080"),
		Environment:             getEnv("ENVIRONMENT", "development"),
		LogLevel:                os.Getenv("LOG_LEVEL"),
		DefaultLocale:           defaultLocale,
		RedisURL:                os.Getenv("REDIS_URL"),
		RateLimit:               getEnv("RATE_LIMIT", "300-M"),
		JWTSecret:               os.Getenv("JWT_SECRET"),
		CORSAllowedOrigins:      splitList(os.Getenv("CORS_ALLOWED_ORIGINS")),
		ExposeDeveloperMessages: exposeDeveloperMessages,
	}, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}

	return fallback
}

// comma separated list, blanks dropped
func splitList(s string) []string {
	var out []string

	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}

	return out
}
