package main

import (
	"context"
	"fmt"
	"time"

	"codeberg.org/moneyapi/server/internal/config"
	"codeberg.org/moneyapi/server/internal/i18n"
	"codeberg.org/moneyapi/server/internal/ratelimit"
	"codeberg.org/moneyapi/server/moneyapi/categories"
	"codeberg.org/moneyapi/server/moneyapi/entries"
	"codeberg.org/moneyapi/server/moneyapi/persons"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/jackc/pgx/v5/pgxpool"
)

// creates and configures a new server instance with all dependencies
func NewServer(cfg *config.Config) (*Server, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	poolConfig, err := pgxpool.ParseConfig(cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse database config: %w", err)
	}

	poolConfig.MaxConns = 10
	poolConfig.MinConns = 1
	poolConfig.MaxConnLifetime = 30 * time.Minute
	poolConfig.MaxConnIdleTime = 5 * time.Minute
	poolConfig.HealthCheckPeriod = 1 * time.Minute

	db, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create database pool: %w", err)
	}

	if err := db.Ping(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	// field errors are localized by the same validator gin binds with
	engine, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		db.Close()
		return nil, fmt.Errorf("unexpected validator engine %T", binding.Validator.Engine())
	}

	messages, err := i18n.New(engine, cfg.DefaultLocale)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to load messages: %w", err)
	}

	rateStore, err := ratelimit.NewStore(ctx, cfg.RedisURL)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize rate limit store: %w", err)
	}

	personRepo := persons.NewRepository(db)
	categoryRepo := categories.NewRepository(db)
	entryRepo := entries.NewRepository(db)

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	server := &Server{
		db:           db,
		config:       cfg,
		personRepo:   personRepo,
		categoryRepo: categoryRepo,
		entryRepo:    entryRepo,
		entryService: entries.NewService(entryRepo, personRepo),
		messages:     messages,
		rateStore:    rateStore,
		router:       gin.New(),
	}

	if err := RegisterRoutes(server.router, server); err != nil {
		server.Close()
		return nil, err
	}

	return server, nil
}

// releases the database pool and the rate limit store
func (s *Server) Close() {
	s.rateStore.Close() //nolint:errcheck,gosec // best-effort cleanup on shutdown
	s.db.Close()
}
