package main

import (
	"codeberg.org/moneyapi/server/internal/config"
	"codeberg.org/moneyapi/server/internal/i18n"
	"codeberg.org/moneyapi/server/internal/ratelimit"
	"codeberg.org/moneyapi/server/moneyapi/categories"
	"codeberg.org/moneyapi/server/moneyapi/entries"
	"codeberg.org/moneyapi/server/moneyapi/persons"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

// holds all dependencies and state for the API server
type Server struct {
	db           *pgxpool.Pool
	config       *config.Config
	personRepo   *persons.Repository
	categoryRepo *categories.Repository
	entryRepo    *entries.Repository
	entryService *entries.Service
	messages     *i18n.Bundle
	rateStore    *ratelimit.Store
	router       *gin.Engine
}
