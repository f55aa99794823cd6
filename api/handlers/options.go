// ABOUTME: Option-list endpoints backing language and bible pickers
// ABOUTME: Projects configured languages and upstream bibles into value/label pairs

package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"scripture-app-api/core/bibles"
	"scripture-app-api/core/domain"
	apperrors "scripture-app-api/core/errors"
	"scripture-app-api/core/interfaces"
)

// BibleCatalog defines the methods needed from the bible API client
type BibleCatalog interface {
	ForLanguage(ctx context.Context, code string) ([]domain.Bible, error)
	Search(ctx context.Context, name string) ([]domain.Bible, error)
}

// OptionsHandler serves the picker lists
type OptionsHandler struct {
	catalog   BibleCatalog
	languages interfaces.LanguageStore
}

// NewOptionsHandler creates a new options handler
func NewOptionsHandler(catalog BibleCatalog, languages interfaces.LanguageStore) *OptionsHandler {
	return &OptionsHandler{
		catalog:   catalog,
		languages: languages,
	}
}

// RegisterRoutes registers the option-list routes on the router
func (h *OptionsHandler) RegisterRoutes(r chi.Router) {
	r.Get("/languages", h.GetLanguages)
	r.Get("/bibles", h.GetBibles)
	r.Get("/bibles/search", h.SearchBibles)
}

// GetLanguages handles GET /languages
func (h *OptionsHandler) GetLanguages(w http.ResponseWriter, r *http.Request) {
	languages, err := h.languages.Languages(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	options := make([]domain.Option, 0, len(languages))
	for _, l := range languages {
		options = append(options, domain.Option{
			Value:    l.Value,
			ItemText: l.ItemText,
		})
	}

	writeJSON(w, http.StatusOK, options)
}

// GetBibles handles GET /bibles?language=
func (h *OptionsHandler) GetBibles(w http.ResponseWriter, r *http.Request) {
	code := r.URL.Query().Get("language")
	if code == "" {
		writeError(w, &apperrors.ValidationError{Field: "language", Message: "language cannot be empty"})
		return
	}

	records, err := h.catalog.ForLanguage(r.Context(), code)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, bibles.AsOptions(records))
}

// SearchBibles handles GET /bibles/search?name=
func (h *OptionsHandler) SearchBibles(w http.ResponseWriter, r *http.Request) {
	records, err := h.catalog.Search(r.Context(), r.URL.Query().Get("name"))
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, bibles.AsOptions(records))
}
