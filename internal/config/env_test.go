package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func clearEnv(t *testing.T) {
	t.Helper()

	for _, key := range []string{
		"DATABASE_URL", "PORT", "ENVIRONMENT", "LOG_LEVEL", "DEFAULT_LOCALE", "REDIS_URL",
		"RATE_LIMIT", "JWT_SECRET", "CORS_ALLOWED_ORIGINS", "EXPOSE_DEVELOPER_MESSAGES",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadEnvironmentVariables_Defaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("DATABASE_URL", "postgres://localhost/moneyapi")

	cfg, err := LoadEnvironmentVariables()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, language.BrazilianPortuguese, cfg.DefaultLocale)
	assert.Equal(t, "300-M", cfg.RateLimit)
	assert.True(t, cfg.ExposeDeveloperMessages)
	assert.Empty(t, cfg.CORSAllowedOrigins)
	assert.Empty(t, cfg.RedisURL)
}

func TestLoadEnvironmentVariables_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("DATABASE_URL", "postgres://localhost/moneyapi")
	t.Setenv("DEFAULT_LOCALE", "en")
	t.Setenv("EXPOSE_DEVELOPER_MESSAGES", "false")
	t.Setenv("CORS_ALLOWED_ORIGINS", " https://a.example , ,https://b.example")
	t.Setenv("RATE_LIMIT", "10-S")

	cfg, err := LoadEnvironmentVariables()
	require.NoError(t, err)

	assert.Equal(t, language.English, cfg.DefaultLocale)
	assert.False(t, cfg.ExposeDeveloperMessages)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSAllowedOrigins)
	assert.Equal(t, "10-S", cfg.RateLimit)
}

func TestLoadEnvironmentVariables_Errors(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		wantErr string
	}{
		{"missing database", map[string]string{}, "DATABASE_URL"},
		{"bad locale", map[string]string{"DATABASE_URL": "postgres://x", "DEFAULT_LOCALE": "not a locale"}, "DEFAULT_LOCALE"},
		{"bad flag", map[string]string{"DATABASE_URL": "postgres://x", "EXPOSE_DEVELOPER_MESSAGES": "maybe"}, "EXPOSE_DEVELOPER_MESSAGES"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			_, err := LoadEnvironmentVariables()

			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
