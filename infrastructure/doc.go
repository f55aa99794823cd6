// Package infrastructure contains implementations of the core interfaces
// backed by concrete technologies: go-cache, Redis and SQLite for caching,
// net/http for outbound requests, logrus for logging.
package infrastructure
