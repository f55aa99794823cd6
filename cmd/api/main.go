// ABOUTME: Main entry point for the Scripture API server
// ABOUTME: Wires together all components and starts the HTTP server

package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"scripture-app-api/api"
	"scripture-app-api/api/handlers"
	"scripture-app-api/core/bibles"
	"scripture-app-api/core/interfaces"
	"scripture-app-api/core/language"
	"scripture-app-api/core/scripture"
	"scripture-app-api/core/video"
	"scripture-app-api/infrastructure/cache/memory"
	"scripture-app-api/infrastructure/cache/redis"
	"scripture-app-api/infrastructure/cache/sqlite"
	stdhttp "scripture-app-api/infrastructure/http/standard"
	"scripture-app-api/infrastructure/languages/static"
	logruslogger "scripture-app-api/infrastructure/logger/logrus"
	"scripture-app-api/pkg/config"
	"scripture-app-api/pkg/featureflags"
)

func main() {
	// Load configuration
	cfg, err := config.LoadFromEnv()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	// Create logger
	logger := logruslogger.NewLogrusLogger(cfg.LogLevel)
	logger.Info("Starting Scripture API", map[string]interface{}{
		"port":       cfg.Server.Port,
		"cache_type": cfg.Cache.Type,
		"api_url":    cfg.API.BaseURL,
	})

	// Create cache
	cache := newCache(cfg, logger)

	// Create HTTP client with upstream rate limiting
	httpClient := stdhttp.NewStandardHTTPClient(time.Duration(cfg.API.TimeoutSeconds) * time.Second)
	if cfg.API.RateLimitPerSecond > 0 {
		httpClient.WithRateLimit(cfg.API.RateLimitPerSecond, cfg.API.RateLimitBurst)
	}

	// Create dependencies container
	deps := interfaces.Dependencies{
		Cache:      cache,
		HTTPClient: httpClient,
		Logger:     logger,
	}

	// Create the configured language list
	languageStore, err := static.NewStoreFromEnv()
	if err != nil {
		log.Fatalf("Invalid language configuration: %v", err)
	}

	// Create services
	bibleService := bibles.NewService(deps, bibles.Config{
		BaseURL:  cfg.API.BaseURL,
		Key:      cfg.API.Key,
		CacheTTL: time.Duration(cfg.API.CacheTTLSeconds) * time.Second,
	})
	languageService := language.NewService(deps, languageStore)
	scriptureService := scripture.NewService(deps, bibleService, languageService)

	flags := featureflags.NewEnvManager("")
	flagCtx := context.Background()

	// Create router with middleware
	routerCfg := api.RouterConfig{}
	if flags.IsEnabled(flagCtx, featureflags.RequestLogging) {
		routerCfg.Logger = logger
	}
	if flags.IsEnabled(flagCtx, featureflags.RateLimit) {
		routerCfg.RateLimit = 100 // 100 requests per minute per IP
		routerCfg.RateWindow = time.Minute
	}
	router := api.NewRouter(routerCfg)

	// Create and register handlers. A nil hydrator leaves video entries
	// without playlists.
	var videoHydrator handlers.VideoHydrator
	if flags.IsEnabled(flagCtx, featureflags.VideoHydration) {
		videoHydrator = video.NewService(deps)
	}
	scriptureHandler := handlers.NewScriptureHandler(scriptureService, videoHydrator)
	scriptureHandler.RegisterRoutes(router)

	optionsHandler := handlers.NewOptionsHandler(bibleService, languageStore)
	optionsHandler.RegisterRoutes(router)

	// Create HTTP server
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		logger.Info("HTTP server starting", map[string]interface{}{
			"address": srv.Addr,
		})
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("HTTP server error", map[string]interface{}{
				"error": err.Error(),
			})
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...", nil)

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", map[string]interface{}{
			"error": err.Error(),
		})
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	logger.Info("Server stopped", nil)
}

// newCache builds the configured cache backend, falling back to memory
// when the backend cannot be reached.
func newCache(cfg *config.Config, logger interfaces.Logger) interfaces.Cache {
	memoryCache := func() interfaces.Cache {
		ttl := time.Duration(cfg.Cache.Memory.DefaultExpiration) * time.Second
		return memory.NewMemoryCache(ttl, 10*time.Minute)
	}

	switch cfg.Cache.Type {
	case "redis":
		redisCache, err := redis.NewRedisCache(cfg.Cache.Redis)
		if err != nil {
			logger.Error("Failed to create Redis cache, falling back to memory", map[string]interface{}{
				"error": err.Error(),
			})
			return memoryCache()
		}
		logger.Info("Using Redis cache", map[string]interface{}{
			"address": cfg.Cache.Redis.Address,
		})
		return redisCache
	case "sqlite":
		sqliteCache, err := sqlite.NewSQLiteCache(cfg.Cache.SQLite.Path)
		if err != nil {
			logger.Error("Failed to create SQLite cache, falling back to memory", map[string]interface{}{
				"error": err.Error(),
			})
			return memoryCache()
		}
		logger.Info("Using SQLite cache", map[string]interface{}{
			"path": cfg.Cache.SQLite.Path,
		})
		return sqliteCache
	default:
		logger.Info("Using memory cache", nil)
		return memoryCache()
	}
}
