package main

import (
	"time"

	"codeberg.org/moneyapi/server/api/rest/categories"
	"codeberg.org/moneyapi/server/api/rest/entries"
	"codeberg.org/moneyapi/server/api/rest/health"
	"codeberg.org/moneyapi/server/api/rest/persons"
	"codeberg.org/moneyapi/server/internal/auth"
	"codeberg.org/moneyapi/server/internal/errors"
	"codeberg.org/moneyapi/server/internal/i18n"
	"codeberg.org/moneyapi/server/internal/logger"
	"codeberg.org/moneyapi/server/internal/ratelimit"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// sets up all API routes and middleware
func RegisterRoutes(router *gin.Engine, server *Server) error {
	rateLimit, err := ratelimit.Middleware(server.rateStore, server.config.RateLimit)
	if err != nil {
		return err
	}

	router.Use(
		logger.Middleware(),
		gin.Recovery(),
		CORSMiddleware(server.config.CORSAllowedOrigins),
		server.messages.Middleware(),
		errors.Handler(server.messages, errors.Options{
			Locale:                  i18n.Locale,
			ExposeDeveloperMessages: server.config.ExposeDeveloperMessages,
		}),
	)

	router.GET("/health", health.Handler(server.db))

	v1 := router.Group("/api/v1")
	v1.Use(rateLimit)

	{
		v1.GET("/ping", health.PingHandler)

		requireAuth := auth.Middleware(server.config.JWTSecret)

		persons.RegisterRoutes(v1, server.personRepo, requireAuth)
		categories.RegisterRoutes(v1, server.categoryRepo, requireAuth)
		entries.RegisterRoutes(v1, server.entryRepo, server.entryService, requireAuth)
	}

	return nil
}

// allows browser clients from the configured origins; all origins when none are set
func CORSMiddleware(origins []string) gin.HandlerFunc {
	cfg := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept-Language", "Authorization"},
		ExposeHeaders:    []string{"Content-Language", "Location", "X-RateLimit-Limit", "X-RateLimit-Remaining", "X-RateLimit-Reset"},
		AllowCredentials: len(origins) > 0,
		MaxAge:           12 * time.Hour,
	}

	if len(origins) == 0 {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}

	return cors.New(cfg)
}
