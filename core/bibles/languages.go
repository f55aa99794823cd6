// ABOUTME: Language endpoints of the upstream API
// ABOUTME: Thin typed wrappers over the languages listing and search

package bibles

import (
	"context"
	"net/url"

	apperrors "scripture-app-api/core/errors"
)

// APILanguage is one upstream language record.
type APILanguage struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	ISO    string `json:"iso"`
	Bibles int    `json:"bibles"`
}

type languageListEnvelope struct {
	Data []APILanguage `json:"data"`
}

// Languages lists the languages known upstream.
func (s *Service) Languages(ctx context.Context, q Query) ([]APILanguage, error) {
	var env languageListEnvelope
	if err := s.getJSON(ctx, "languages", q, &env); err != nil {
		return nil, err
	}
	return env.Data, nil
}

// SearchLanguages looks up upstream languages by name.
func (s *Service) SearchLanguages(ctx context.Context, term string) ([]APILanguage, error) {
	if term == "" {
		return nil, &apperrors.ValidationError{Field: "term", Message: "search term cannot be empty"}
	}

	var env languageListEnvelope
	endpoint := "languages/search/" + url.PathEscape(term)
	if err := s.getJSON(ctx, endpoint, Query{}, &env); err != nil {
		return nil, err
	}
	return env.Data, nil
}
