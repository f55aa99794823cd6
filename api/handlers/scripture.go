// ABOUTME: Scripture resolution endpoint
// ABOUTME: Translates query parameters into an orchestrator call and hydrates video

package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"scripture-app-api/core/domain"
	"scripture-app-api/core/scripture"
)

// ScriptureService defines the methods needed from the scripture orchestrator
type ScriptureService interface {
	ByReference(ctx context.Context, reference string, opts scripture.Options) (*domain.ContentBundle, error)
}

// VideoHydrator defines the methods needed from the video hydration service
type VideoHydrator interface {
	HydrateContent(ctx context.Context, bundle *domain.ContentBundle)
}

// ScriptureHandler handles scripture resolution requests
type ScriptureHandler struct {
	scripture ScriptureService
	video     VideoHydrator
}

// NewScriptureHandler creates a new scripture handler
func NewScriptureHandler(scriptureService ScriptureService, videoHydrator VideoHydrator) *ScriptureHandler {
	return &ScriptureHandler{
		scripture: scriptureService,
		video:     videoHydrator,
	}
}

// RegisterRoutes registers the scripture routes on the router
func (h *ScriptureHandler) RegisterRoutes(r chi.Router) {
	r.Get("/scripture", h.GetScripture)
}

// GetScripture handles GET /scripture?reference=&language=&bible=&media_type=
func (h *ScriptureHandler) GetScripture(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	bundle, err := h.scripture.ByReference(r.Context(), q.Get("reference"), scripture.Options{
		Language:       q.Get("language"),
		AcceptLanguage: r.Header.Get("Accept-Language"),
		Bible:          q.Get("bible"),
		MediaType:      q.Get("media_type"),
	})
	if err != nil {
		writeError(w, err)
		return
	}

	if h.video != nil {
		h.video.HydrateContent(r.Context(), bundle)
	}

	writeJSON(w, http.StatusOK, bundle)
}
