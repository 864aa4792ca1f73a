package main

import (
	"os"
	"strings"

	"github.com/timshannon/bolthold"

	"streamvault/internal/cache"
	"streamvault/internal/config"
	"streamvault/internal/handlers"
	"streamvault/internal/services"
	"streamvault/internal/store"
	"streamvault/pkg/logger"
)

var (
	Logger           logger.Logger
	Config           *config.Config
	DB               *bolthold.Store
	memoryCache      *cache.LRUCache
	handler          *handlers.Handler
	serviceContainer *services.Container
)

func InitializeLogger() {
	Logger = logger.New()

	logLevel := strings.ToLower(os.Getenv("LOG_LEVEL"))
	if logLevel == "" {
		logLevel = "info"
	}

	switch logLevel {
	case "debug", "info", "warn", "warning", "error":
		// Valid log levels
	default:
		Logger.Warnf("[App] warning: unknown log level '%s', defaulting to info", os.Getenv("LOG_LEVEL"))
	}
}

func InitializeConfig() {
	var err error
	Config, err = config.Load()
	if err != nil {
		Logger.Fatalf("failed to load configuration: %v", err)
	}
}

func InitializeDatabase() {
	var err error
	DB, err = store.Open(Config.DatabasePath)
	if err != nil {
		Logger.Fatalf("failed to initialize database: %v", err)
	}

	Logger.Infof("[App] BoltHold database initialized at %s", Config.DatabasePath)
}

func InitializeServices() {
	memoryCache = cache.New(Config.CacheSize, Config.CacheTTL)

	serviceContainer = services.New(Config.TMDBAPIKey, Config.Language, DB, memoryCache, Logger)

	// The genre directory must be loaded before any catalog request is
	// served; genre names cannot be resolved without it.
	if err := serviceContainer.Genres.LoadAll(); err != nil {
		Logger.Fatalf("failed to load genre directory: %v", err)
	}

	handler = handlers.New(serviceContainer, Config)

	Logger.Infof("[App] services initialized successfully")
}
