package logger

import (
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

var (
	// default logger instance
	defaultLogger = newLogger(os.Getenv("ENVIRONMENT"), os.Getenv("LOG_LEVEL"))
)

// reconfigures the default logger once configuration has been loaded
func Init(environment, level string) {
	defaultLogger = newLogger(environment, level)
	slog.SetDefault(defaultLogger)
}

func newLogger(environment, level string) *slog.Logger {
	var handler slog.Handler

	if environment == "production" {
		// production: JSON output for structured logging
		opts := &slog.HandlerOptions{Level: parseLevel(level, slog.LevelInfo)}
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		// development: human-readable text output
		opts := &slog.HandlerOptions{Level: parseLevel(level, slog.LevelDebug)}
		handler = slog.NewTextHandler(os.Stderr, opts)
	}

	return slog.New(handler)
}

func parseLevel(level string, fallback slog.Level) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return fallback
	}
}

// logs one line per request with status and latency
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		status := c.Writer.Status()
		args := []any{
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", status,
			"latency", time.Since(start),
			"client_ip", c.ClientIP(),
		}

		switch {
		case status >= 500:
			defaultLogger.Error("request completed", args...)
		case status >= 400:
			defaultLogger.Warn("request completed", args...)
		default:
			defaultLogger.Info("request completed", args...)
		}
	}
}

// logs a debug message
func Debug(msg string, args ...any) {
	defaultLogger.Debug(msg, args...)
}

// logs an info message
func Info(msg string, args ...any) {
	defaultLogger.Info(msg, args...)
}

// logs a warning message
func Warn(msg string, args ...any) {
	defaultLogger.Warn(msg, args...)
}

// logs an error message
func Error(msg string, args ...any) {
	defaultLogger.Error(msg, args...)
}

// logs an error with context
func ErrorErr(err error, msg string, args ...any) {
	args = append(args, "error", err)
	defaultLogger.Error(msg, args...)
}

// logs a fatal error and exits
func Fatal(msg string, args ...any) {
	defaultLogger.Error(msg, args...)
	os.Exit(1)
}
