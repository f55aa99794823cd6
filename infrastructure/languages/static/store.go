// ABOUTME: Static language store backed by an env-provided JSON list
// ABOUTME: Falls back to a compiled-in English-only list when unconfigured

package static

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"scripture-app-api/core/domain"
)

// EnvVar is the environment variable holding the language list as JSON.
const EnvVar = "LANGUAGES_JSON"

// defaultLanguages serves deployments that never configure a list.
var defaultLanguages = []domain.Language{
	{
		Value:      "en",
		ItemText:   "English",
		Bibles:     "ENGESV",
		MediaTypes: "text,audio,video",
		Default:    true,
	},
}

// Store implements interfaces.LanguageStore from a fixed in-process list.
type Store struct {
	languages []domain.Language
}

// NewStore returns a store over the given list. An empty list falls back
// to the compiled-in default.
func NewStore(languages []domain.Language) *Store {
	if len(languages) == 0 {
		languages = defaultLanguages
	}
	return &Store{languages: languages}
}

// NewStoreFromEnv builds a store from the LANGUAGES_JSON environment
// variable. Unset means the default list; malformed JSON is an error.
func NewStoreFromEnv() (*Store, error) {
	raw := os.Getenv(EnvVar)
	if raw == "" {
		return NewStore(nil), nil
	}

	var languages []domain.Language
	if err := json.Unmarshal([]byte(raw), &languages); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", EnvVar, err)
	}

	return NewStore(languages), nil
}

// Languages returns a copy of the configured list in configuration order.
func (s *Store) Languages(ctx context.Context) ([]domain.Language, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	out := make([]domain.Language, len(s.languages))
	copy(out, s.languages)
	return out, nil
}
