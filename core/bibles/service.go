// ABOUTME: Bible API client wraps the upstream content REST API
// ABOUTME: Handles request caching, pagination, multi-ID lookups and verse content

package bibles

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/url"
	"sort"
	"strconv"
	"time"

	"scripture-app-api/core/domain"
	apperrors "scripture-app-api/core/errors"
	"scripture-app-api/core/interfaces"
)

const defaultCacheTTL = 1 * time.Hour

// Config holds the upstream API connection settings.
type Config struct {
	// BaseURL is the API root, e.g. "https://4.dbt.io/api".
	BaseURL string

	// Key is the API key appended to every request.
	Key string

	// CacheTTL bounds how long responses are cached. Zero means the
	// default of one hour.
	CacheTTL time.Duration
}

// Query carries optional per-request parameters.
type Query struct {
	// Params are extra query string parameters.
	Params map[string]string

	// SkipCache bypasses the response cache for this request.
	SkipCache bool
}

// Service is the upstream Bible API client.
type Service struct {
	deps interfaces.Dependencies
	cfg  Config
}

// NewService creates a new Bible API client.
func NewService(deps interfaces.Dependencies, cfg Config) *Service {
	if cfg.CacheTTL == 0 {
		cfg.CacheTTL = defaultCacheTTL
	}
	return &Service{
		deps: deps,
		cfg:  cfg,
	}
}

// Response envelopes for the upstream API.
type bibleEnvelope struct {
	Data domain.Bible `json:"data"`
}

type listEnvelope struct {
	Data []domain.Bible `json:"data"`
	Meta struct {
		Pagination struct {
			CurrentPage int `json:"current_page"`
			TotalPages  int `json:"total_pages"`
		} `json:"pagination"`
	} `json:"meta"`
}

type contentEnvelope struct {
	Data []map[string]interface{} `json:"data"`
}

// Page is one page of a paginated bible listing.
type Page struct {
	Bibles      []domain.Bible
	CurrentPage int
	TotalPages  int
}

// Find fetches a single bible by abbreviation, with its full book list
// and fileset groups.
func (s *Service) Find(ctx context.Context, id string) (*domain.Bible, error) {
	if id == "" {
		return nil, &apperrors.ValidationError{Field: "id", Message: "bible id cannot be empty"}
	}

	var env bibleEnvelope
	endpoint := "bibles/" + url.PathEscape(id)
	if err := s.getJSON(ctx, endpoint, Query{}, &env); err != nil {
		return nil, err
	}

	if env.Data.ID == "" {
		return nil, &apperrors.NotFoundError{Resource: "bible", ID: id}
	}

	return &env.Data, nil
}

// FindMany fetches multiple bibles by abbreviation, best-effort: per-id
// failures are logged and skipped, successes collected in input order.
func (s *Service) FindMany(ctx context.Context, ids []string) []domain.Bible {
	found := make([]domain.Bible, 0, len(ids))
	for _, id := range ids {
		bible, err := s.Find(ctx, id)
		if err != nil {
			if s.deps.Logger != nil {
				s.deps.Logger.Warn("Skipping bible that failed to resolve", map[string]interface{}{
					"bible": id,
					"error": err.Error(),
				})
			}
			continue
		}
		found = append(found, *bible)
	}
	return found
}

// All fetches one page of the bible listing.
func (s *Service) All(ctx context.Context, q Query) (*Page, error) {
	var env listEnvelope
	if err := s.getJSON(ctx, "bibles", q, &env); err != nil {
		return nil, err
	}

	return &Page{
		Bibles:      env.Data,
		CurrentPage: env.Meta.Pagination.CurrentPage,
		TotalPages:  env.Meta.Pagination.TotalPages,
	}, nil
}

// AllPages follows the page parameter until the upstream pagination
// metadata is exhausted and returns the concatenated listing.
func (s *Service) AllPages(ctx context.Context, q Query) ([]domain.Bible, error) {
	var all []domain.Bible

	for page := 1; ; page++ {
		pq := Query{SkipCache: q.SkipCache, Params: map[string]string{}}
		for k, v := range q.Params {
			pq.Params[k] = v
		}
		pq.Params["page"] = strconv.Itoa(page)

		result, err := s.All(ctx, pq)
		if err != nil {
			return nil, err
		}
		all = append(all, result.Bibles...)

		if page >= result.TotalPages {
			break
		}
	}

	return all, nil
}

// Search looks up bibles by name.
func (s *Service) Search(ctx context.Context, name string) ([]domain.Bible, error) {
	if name == "" {
		return nil, &apperrors.ValidationError{Field: "name", Message: "search term cannot be empty"}
	}

	var env listEnvelope
	endpoint := "bibles/search/" + url.PathEscape(name)
	if err := s.getJSON(ctx, endpoint, Query{}, &env); err != nil {
		return nil, err
	}
	return env.Data, nil
}

// ForLanguage lists every bible available for a language code. The
// filter runs server-side.
func (s *Service) ForLanguage(ctx context.Context, code string) ([]domain.Bible, error) {
	return s.AllPages(ctx, Query{Params: map[string]string{"language_code": code}})
}

// ForLanguages lists bibles across several language codes, best-effort:
// a failing language is logged and skipped.
func (s *Service) ForLanguages(ctx context.Context, codes []string) []domain.Bible {
	var all []domain.Bible
	for _, code := range codes {
		bibles, err := s.ForLanguage(ctx, code)
		if err != nil {
			if s.deps.Logger != nil {
				s.deps.Logger.Warn("Skipping language that failed to list", map[string]interface{}{
					"language": code,
					"error":    err.Error(),
				})
			}
			continue
		}
		all = append(all, bibles...)
	}
	return all
}

// DefaultForLanguage returns the first bible available for a language,
// fetched in full. Two round trips by design: the listing discovers the
// default, the follow-up Find gets complete book and fileset data that
// the listing omits.
func (s *Service) DefaultForLanguage(ctx context.Context, code string) (*domain.Bible, error) {
	bibles, err := s.ForLanguage(ctx, code)
	if err != nil {
		return nil, err
	}
	if len(bibles) == 0 {
		return nil, &apperrors.NotFoundError{Resource: "bible", ID: code}
	}
	return s.Find(ctx, bibles[0].ID)
}

// Content fetches the verse content of a fileset for the referenced
// passage. Cross-chapter ranges are clamped to the start chapter: the
// upstream fileset endpoint serves a single chapter, so the remainder of
// the start chapter is fetched by omitting verse_end.
func (s *Service) Content(ctx context.Context, fs domain.Fileset, book domain.Book, ref domain.Reference) ([]map[string]interface{}, error) {
	chapter := ref.Chapter
	if chapter == 0 {
		chapter = 1
	}

	params := map[string]string{}
	if ref.VerseStart > 0 {
		params["verse_start"] = strconv.Itoa(ref.VerseStart)
		if ref.ChapterEnd == 0 && ref.VerseEnd >= ref.VerseStart {
			params["verse_end"] = strconv.Itoa(ref.VerseEnd)
		}
	}

	endpoint := fmt.Sprintf("bibles/filesets/%s/%s/%d", url.PathEscape(fs.ID), url.PathEscape(book.BookID), chapter)

	var env contentEnvelope
	if err := s.getJSON(ctx, endpoint, Query{Params: params}, &env); err != nil {
		return nil, err
	}
	return env.Data, nil
}

// getJSON performs a cached GET against the upstream API and decodes the
// JSON body into out. The cache key is the endpoint plus the sorted query
// string, excluding credentials.
func (s *Service) getJSON(ctx context.Context, endpoint string, q Query, out interface{}) error {
	cacheKey := cacheKeyFor(endpoint, q.Params)

	if !q.SkipCache && s.deps.Cache != nil {
		if data, err := s.deps.Cache.Get(ctx, cacheKey); err == nil && data != nil {
			if err := json.Unmarshal(data, out); err == nil {
				return nil
			}
			// A corrupt entry is dropped and refetched.
			_ = s.deps.Cache.Delete(ctx, cacheKey)
		}
	}

	body, err := s.fetch(ctx, endpoint, q.Params)
	if err != nil {
		return err
	}

	if err := json.Unmarshal(body, out); err != nil {
		return &apperrors.UpstreamAPIError{
			StatusCode: 200,
			Message:    "malformed JSON response",
			Endpoint:   endpoint,
		}
	}

	if !q.SkipCache && s.deps.Cache != nil {
		_ = s.deps.Cache.Set(ctx, cacheKey, body, s.cfg.CacheTTL)
	}

	return nil
}

func (s *Service) fetch(ctx context.Context, endpoint string, params map[string]string) ([]byte, error) {
	if s.deps.HTTPClient == nil {
		return nil, &apperrors.UpstreamAPIError{Message: "HTTP client not configured", Endpoint: endpoint}
	}

	values := url.Values{}
	for k, v := range params {
		values.Set(k, v)
	}
	values.Set("v", "4")
	if s.cfg.Key != "" {
		values.Set("key", s.cfg.Key)
	}

	requestURL := s.cfg.BaseURL + "/" + endpoint + "?" + values.Encode()

	resp, err := s.deps.HTTPClient.Get(ctx, requestURL)
	if err != nil {
		return nil, apperrors.WrapError(err, "upstream request failed")
	}
	defer resp.Body().Close()

	body, err := io.ReadAll(resp.Body())
	if err != nil {
		return nil, apperrors.WrapError(err, "reading upstream response")
	}

	if resp.StatusCode() < 200 || resp.StatusCode() > 299 {
		return nil, &apperrors.UpstreamAPIError{
			StatusCode: resp.StatusCode(),
			Message:    upstreamMessage(body),
			Endpoint:   endpoint,
		}
	}

	// A 2xx body can still carry an application-level error field.
	var probe struct {
		Error interface{} `json:"error"`
	}
	if err := json.Unmarshal(body, &probe); err != nil {
		return nil, &apperrors.UpstreamAPIError{
			StatusCode: resp.StatusCode(),
			Message:    "malformed JSON response",
			Endpoint:   endpoint,
		}
	}
	if probe.Error != nil {
		return nil, &apperrors.UpstreamAPIError{
			StatusCode: resp.StatusCode(),
			Message:    errorMessage(probe.Error),
			Endpoint:   endpoint,
		}
	}

	return body, nil
}

// cacheKeyFor builds a deterministic cache key from the endpoint and its
// parameters, sorted so map iteration order never fragments the cache.
func cacheKeyFor(endpoint string, params map[string]string) string {
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	values := url.Values{}
	for _, k := range keys {
		values.Set(k, params[k])
	}

	if len(values) == 0 {
		return "dbp:" + endpoint
	}
	return "dbp:" + endpoint + "?" + values.Encode()
}

// upstreamMessage extracts a human-readable message from an error body,
// falling back to the raw body when it isn't JSON.
func upstreamMessage(body []byte) string {
	var probe struct {
		Error   interface{} `json:"error"`
		Message string      `json:"message"`
	}
	if err := json.Unmarshal(body, &probe); err == nil {
		if probe.Error != nil {
			return errorMessage(probe.Error)
		}
		if probe.Message != "" {
			return probe.Message
		}
	}
	if len(body) > 200 {
		body = body[:200]
	}
	return string(body)
}

func errorMessage(v interface{}) string {
	switch e := v.(type) {
	case string:
		return e
	case map[string]interface{}:
		if msg, ok := e["message"].(string); ok {
			return msg
		}
	}
	return fmt.Sprintf("%v", v)
}
