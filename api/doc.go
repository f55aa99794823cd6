// ABOUTME: HTTP adapter over the scripture resolution services
// ABOUTME: Chi router, CORS, request logging and per-IP rate limiting

// Package api exposes the scripture services over HTTP. It stays thin:
// handlers translate query parameters into service calls and domain
// errors into status codes, nothing more.
package api
