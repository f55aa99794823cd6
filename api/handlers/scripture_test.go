package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scripture-app-api/core/domain"
	apperrors "scripture-app-api/core/errors"
	"scripture-app-api/core/scripture"
)

func scriptureRouter(svc ScriptureService, video VideoHydrator) chi.Router {
	r := chi.NewRouter()
	NewScriptureHandler(svc, video).RegisterRoutes(r)
	return r
}

func TestGetScripture_PassesQueryToService(t *testing.T) {
	var gotReference string
	var gotOpts scripture.Options

	svc := &mockScriptureService{
		byReference: func(ctx context.Context, reference string, opts scripture.Options) (*domain.ContentBundle, error) {
			gotReference = reference
			gotOpts = opts
			return &domain.ContentBundle{Media: map[string]domain.MediaContent{}}, nil
		},
	}

	req := httptest.NewRequest("GET", "/scripture?reference=John+3:16&language=es&bible=SPNBDA&media_type=text", nil)
	req.Header.Set("Accept-Language", "es-MX, en;q=0.5")
	rec := httptest.NewRecorder()
	scriptureRouter(svc, nil).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "John 3:16", gotReference)
	assert.Equal(t, "es", gotOpts.Language)
	assert.Equal(t, "SPNBDA", gotOpts.Bible)
	assert.Equal(t, "text", gotOpts.MediaType)
	assert.Equal(t, "es-MX, en;q=0.5", gotOpts.AcceptLanguage)
}

func TestGetScripture_ReturnsBundleJSON(t *testing.T) {
	svc := &mockScriptureService{
		byReference: func(ctx context.Context, reference string, opts scripture.Options) (*domain.ContentBundle, error) {
			return &domain.ContentBundle{
				Reference: domain.Reference{Book: "John", Chapter: 3, VerseStart: 16},
				Media: map[string]domain.MediaContent{
					"text": {Label: "Text", Content: []map[string]interface{}{{"verse_text": "For God so loved"}}},
				},
				Bible: domain.Bible{ID: "ENGESV", Name: "English Standard Version"},
				Book:  domain.Book{BookID: "JHN", Name: "John", Testament: "NT"},
			}, nil
		},
	}

	rec := httptest.NewRecorder()
	scriptureRouter(svc, nil).ServeHTTP(rec, httptest.NewRequest("GET", "/scripture?reference=John+3:16", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	bible := body["bible"].(map[string]interface{})
	assert.Equal(t, "ENGESV", bible["abbr"])

	media := body["media"].(map[string]interface{})
	assert.Contains(t, media, "text")
}

func TestGetScripture_HydratesVideo(t *testing.T) {
	hydrated := false
	video := &mockVideoHydrator{
		hydrateContent: func(ctx context.Context, bundle *domain.ContentBundle) {
			hydrated = true
		},
	}

	rec := httptest.NewRecorder()
	scriptureRouter(&mockScriptureService{}, video).ServeHTTP(rec, httptest.NewRequest("GET", "/scripture?reference=John+3", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, hydrated, "handler should hydrate video before responding")
}

func TestGetScripture_ValidationErrorIs400(t *testing.T) {
	svc := &mockScriptureService{
		byReference: func(ctx context.Context, reference string, opts scripture.Options) (*domain.ContentBundle, error) {
			return nil, &apperrors.ValidationError{Field: "reference", Message: "reference cannot be empty"}
		},
	}

	rec := httptest.NewRecorder()
	scriptureRouter(svc, nil).ServeHTTP(rec, httptest.NewRequest("GET", "/scripture", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "reference cannot be empty")
}

func TestGetScripture_BookNotFoundIs404(t *testing.T) {
	svc := &mockScriptureService{
		byReference: func(ctx context.Context, reference string, opts scripture.Options) (*domain.ContentBundle, error) {
			return nil, &apperrors.BookNotFoundError{Bible: "English Standard Version", Book: "Atlantis"}
		},
	}

	rec := httptest.NewRecorder()
	scriptureRouter(svc, nil).ServeHTTP(rec, httptest.NewRequest("GET", "/scripture?reference=Atlantis+1", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "does not contain Atlantis")
}

func TestGetScripture_UpstreamErrorIs502(t *testing.T) {
	svc := &mockScriptureService{
		byReference: func(ctx context.Context, reference string, opts scripture.Options) (*domain.ContentBundle, error) {
			return nil, &apperrors.UpstreamAPIError{StatusCode: 500, Message: "boom", Endpoint: "bibles"}
		},
	}

	rec := httptest.NewRecorder()
	scriptureRouter(svc, nil).ServeHTTP(rec, httptest.NewRequest("GET", "/scripture?reference=John+3", nil))

	assert.Equal(t, http.StatusBadGateway, rec.Code)
}

func TestGetScripture_UnknownErrorIs500(t *testing.T) {
	svc := &mockScriptureService{
		byReference: func(ctx context.Context, reference string, opts scripture.Options) (*domain.ContentBundle, error) {
			return nil, errors.New("something broke")
		},
	}

	rec := httptest.NewRecorder()
	scriptureRouter(svc, nil).ServeHTTP(rec, httptest.NewRequest("GET", "/scripture?reference=John+3", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
