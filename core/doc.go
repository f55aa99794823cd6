// Package core contains the business logic for the Scripture API.
// It is designed to be framework-agnostic and can be used independently
// of any web framework or infrastructure concerns.
//
// The core package is organized into several sub-packages:
//
// - domain: Pure domain models (Reference, Bible, Book, Fileset, ContentBundle, etc.)
// - books: Canonical book resolution and testament inference
// - filesets: Media fileset selection against a bible's holdings
// - language: Site language resolution from explicit codes and Accept-Language
// - bibles: Client for the upstream Bible content API
// - scripture: Orchestrator resolving a reference into a content bundle
// - video: HLS playlist parsing and video content hydration
// - errors: Custom error types for better error handling
// - interfaces: Contracts for external dependencies (cache, HTTP, logger)
//
// # Design Principles
//
// The core package follows clean architecture principles:
// - No external framework dependencies
// - All external dependencies are injected via interfaces
// - Business logic is testable in isolation
// - Domain models are free from persistence concerns
//
// # Usage Example
//
//	import (
//	    "scripture-app-api/core/scripture"
//	    "scripture-app-api/core/interfaces"
//	)
//
//	// Create dependencies
//	deps := interfaces.Dependencies{
//	    Cache:      myCache,      // implements interfaces.Cache
//	    HTTPClient: myHTTPClient, // implements interfaces.HTTPClient
//	    Logger:     myLogger,     // implements interfaces.Logger
//	}
//
//	// Create services and resolve a reference
//	svc := scripture.NewService(deps, bibleAPI, languageResolver)
//	bundle, err := svc.ByReference(ctx, "John 3:16-17", scripture.Options{})
//
package core
