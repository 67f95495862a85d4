package config

import "golang.org/x/text/language"

type Config struct {
	DatabaseURL             string
	Port                    string
	Environment             string
	LogLevel                string
	DefaultLocale           language.Tag
	RedisURL                string // optional; rate limiting uses memory when empty
	RateLimit               string // limiter format, e.g. "100-M"
	JWTSecret               string // optional; write routes are open when empty
	CORSAllowedOrigins      []string
	ExposeDeveloperMessages bool
}
