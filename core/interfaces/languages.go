package interfaces

import (
	"context"

	"scripture-app-api/core/domain"
)

// LanguageStore provides read-only access to the configured language list.
// Implementations are expected to be cheap to call repeatedly; the language
// resolver reads the full list on every resolution.
type LanguageStore interface {
	// Languages returns the configured languages in configuration order.
	// An unreadable store should return an error, not panic; callers treat
	// an error the same as an empty list.
	Languages(ctx context.Context) ([]domain.Language, error)
}
