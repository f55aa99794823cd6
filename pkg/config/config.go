// ABOUTME: Configuration management for the application with environment variable support
// ABOUTME: Defines configuration structures for server, cache, upstream API, and languages

package config

import (
	"errors"
	"os"
	"strconv"
)

// Config holds all application configuration
type Config struct {
	// Server contains HTTP server configuration
	Server ServerConfig

	// Cache contains cache configuration
	Cache CacheConfig

	// API contains upstream Bible API configuration
	API APIConfig

	// LogLevel controls logging verbosity (debug/info/warn/error)
	LogLevel string
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	// Port is the HTTP server port
	Port string
}

// CacheConfig holds cache backend configuration
type CacheConfig struct {
	// Type specifies the cache backend (redis/sqlite/memory)
	Type string

	// Redis contains Redis-specific configuration
	Redis RedisConfig

	// SQLite contains SQLite-specific configuration
	SQLite SQLiteConfig

	// Memory contains in-memory cache configuration
	Memory MemoryConfig
}

// RedisConfig holds Redis-specific configuration
type RedisConfig struct {
	// Address is the Redis server address
	Address string

	// Password is the Redis authentication password
	Password string

	// DB is the Redis database number
	DB int
}

// SQLiteConfig holds SQLite cache configuration
type SQLiteConfig struct {
	// Path is the cache database file path
	Path string
}

// MemoryConfig holds in-memory cache configuration
type MemoryConfig struct {
	// DefaultExpiration is the default TTL for cache entries in seconds
	DefaultExpiration int
}

// APIConfig holds upstream Bible API configuration
type APIConfig struct {
	// BaseURL is the upstream API root, e.g. https://4.dbt.io/api/
	BaseURL string

	// Key is the upstream API key appended to every request
	Key string

	// TimeoutSeconds is the per-request HTTP timeout
	TimeoutSeconds int

	// CacheTTLSeconds is how long upstream responses stay cached
	CacheTTLSeconds int

	// RateLimitPerSecond caps outbound requests to the upstream API.
	// Zero disables rate limiting.
	RateLimitPerSecond float64

	// RateLimitBurst is the limiter burst size
	RateLimitBurst int
}

// LoadFromEnv loads configuration from environment variables
func LoadFromEnv() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port: getEnvOrDefault("PORT", "8000"),
		},
		Cache: CacheConfig{
			Type: getEnvOrDefault("CACHE_TYPE", "memory"),
			Redis: RedisConfig{
				Address:  getEnvOrDefault("REDIS_ADDRESS", "localhost:6379"),
				Password: getEnvOrDefault("REDIS_PASSWORD", ""),
				DB:       getEnvAsIntOrDefault("REDIS_DB", 0),
			},
			SQLite: SQLiteConfig{
				Path: getEnvOrDefault("SQLITE_CACHE_PATH", "cache.db"),
			},
			Memory: MemoryConfig{
				DefaultExpiration: getEnvAsIntOrDefault("MEMORY_CACHE_EXPIRATION", 3600),
			},
		},
		API: APIConfig{
			BaseURL:            getEnvOrDefault("BIBLE_API_URL", "https://4.dbt.io/api/"),
			Key:                getEnvOrDefault("BIBLE_API_KEY", ""),
			TimeoutSeconds:     getEnvAsIntOrDefault("BIBLE_API_TIMEOUT", 30),
			CacheTTLSeconds:    getEnvAsIntOrDefault("BIBLE_API_CACHE_TTL", 3600),
			RateLimitPerSecond: getEnvAsFloatOrDefault("BIBLE_API_RATE_LIMIT", 10),
			RateLimitBurst:     getEnvAsIntOrDefault("BIBLE_API_RATE_BURST", 5),
		},
		LogLevel: getEnvOrDefault("LOG_LEVEL", "info"),
	}

	return cfg, nil
}

// getEnvOrDefault returns the environment variable value or a default
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsIntOrDefault returns the environment variable as int or a default
func getEnvAsIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvAsFloatOrDefault returns the environment variable as float64 or a default
func getEnvAsFloatOrDefault(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return errors.New("port cannot be empty")
	}

	if c.Cache.Type != "redis" && c.Cache.Type != "sqlite" && c.Cache.Type != "memory" {
		return errors.New("cache type must be 'redis', 'sqlite', or 'memory'")
	}

	if c.Cache.Type == "redis" && c.Cache.Redis.Address == "" {
		return errors.New("redis address cannot be empty when using redis cache")
	}

	if c.Cache.Type == "sqlite" && c.Cache.SQLite.Path == "" {
		return errors.New("sqlite cache path cannot be empty when using sqlite cache")
	}

	if c.API.BaseURL == "" {
		return errors.New("bible api url cannot be empty")
	}

	if c.API.Key == "" {
		return errors.New("bible api key cannot be empty")
	}

	if c.API.TimeoutSeconds < 1 {
		return errors.New("bible api timeout must be at least 1 second")
	}

	return nil
}
