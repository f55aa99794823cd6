// ABOUTME: Language resolver determines the active language for a resolution call
// ABOUTME: Explicit code wins, then Accept-Language negotiation, then configured default

package language

import (
	"context"
	"strings"

	"golang.org/x/text/language"

	"scripture-app-api/core/domain"
	"scripture-app-api/core/interfaces"
)

// Fallback is the hard-coded language used when nothing is configured.
var Fallback = domain.Language{
	Value:      "en",
	ItemText:   "English",
	Bibles:     "ENGESV",
	MediaTypes: "text,audio,video",
	Default:    true,
}

// Service resolves the active language from explicit input, browser
// negotiation, or the configured default.
type Service struct {
	deps  interfaces.Dependencies
	store interfaces.LanguageStore
}

// NewService creates a new language resolver.
func NewService(deps interfaces.Dependencies, store interfaces.LanguageStore) *Service {
	return &Service{
		deps:  deps,
		store: store,
	}
}

// Resolve determines the active language. Resolution order:
//  1. explicitCode, matched against the configured list by Value.
//  2. acceptLanguage, an Accept-Language style weighted tag list; each tag
//     is reduced to its ISO-639 base and matched against Value or the raw
//     tag, case-insensitively, in descending priority order.
//  3. The configured default: the entry flagged Default, else the first
//     entry, else the compiled-in Fallback.
//
// Resolve never fails: an unreadable store behaves as an empty list.
func (s *Service) Resolve(ctx context.Context, explicitCode, acceptLanguage string) domain.Language {
	languages := s.languages(ctx)

	if explicitCode != "" {
		for _, l := range languages {
			if strings.EqualFold(l.Value, explicitCode) {
				return l
			}
		}
	}

	if acceptLanguage != "" {
		if l, ok := negotiate(acceptLanguage, languages); ok {
			return l
		}
	}

	return defaultOf(languages)
}

// Default returns the configured default language without negotiation.
func (s *Service) Default(ctx context.Context) domain.Language {
	return defaultOf(s.languages(ctx))
}

func (s *Service) languages(ctx context.Context) []domain.Language {
	if s.store == nil {
		return nil
	}
	languages, err := s.store.Languages(ctx)
	if err != nil {
		if s.deps.Logger != nil {
			s.deps.Logger.Warn("Language store unreadable, using fallback", map[string]interface{}{
				"error": err.Error(),
			})
		}
		return nil
	}
	return languages
}

// negotiate walks the weighted tag list in priority order and returns the
// first configured language matching a tag's ISO-639 base or the raw tag.
func negotiate(acceptLanguage string, languages []domain.Language) (domain.Language, bool) {
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil {
		return domain.Language{}, false
	}

	for _, tag := range tags {
		raw := tag.String()
		base, _ := tag.Base()
		code := base.String()

		for _, l := range languages {
			if strings.EqualFold(l.Value, code) || strings.EqualFold(l.Value, raw) {
				return l, true
			}
		}
	}

	return domain.Language{}, false
}

func defaultOf(languages []domain.Language) domain.Language {
	for _, l := range languages {
		if l.Default {
			return l
		}
	}
	if len(languages) > 0 {
		return languages[0]
	}
	return Fallback
}
