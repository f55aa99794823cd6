// ABOUTME: Chi router construction with CORS and shared middleware
// ABOUTME: Handlers register their own routes on the returned router

package api

import (
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"scripture-app-api/api/middleware"
	"scripture-app-api/core/interfaces"
)

// RouterConfig holds configuration for the router
type RouterConfig struct {
	Logger     interfaces.Logger
	RateLimit  int           // requests per window, 0 disables
	RateWindow time.Duration // rate limit window
}

// NewRouter creates the router with CORS, logging, and rate limiting.
// Route registration is left to the handlers.
func NewRouter(cfg RouterConfig) chi.Router {
	router := chi.NewRouter()

	// CORS first so even rate-limited responses carry the headers
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Accept-Language", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link", "X-Request-ID"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	if cfg.Logger != nil {
		router.Use(middleware.RequestLoggingMiddleware(cfg.Logger))
	}

	if cfg.RateLimit > 0 && cfg.RateWindow > 0 {
		limiter := middleware.NewRateLimiter(cfg.RateLimit, cfg.RateWindow)
		router.Use(middleware.RateLimitMiddleware(limiter))
	}

	return router
}
