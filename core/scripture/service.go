// ABOUTME: Scripture orchestrator resolves a reference into a per-media content bundle
// ABOUTME: Composes language, bible, book and fileset resolution with content fetches

package scripture

import (
	"context"
	"sync"

	"scripture-app-api/core/books"
	"scripture-app-api/core/domain"
	apperrors "scripture-app-api/core/errors"
	"scripture-app-api/core/filesets"
	"scripture-app-api/core/interfaces"
)

// maxConcurrentFetches bounds the per-media-type content fan-out.
const maxConcurrentFetches = 4

// BibleAPI defines the methods the orchestrator needs from the Bible API
// client.
type BibleAPI interface {
	Find(ctx context.Context, id string) (*domain.Bible, error)
	DefaultForLanguage(ctx context.Context, code string) (*domain.Bible, error)
	Content(ctx context.Context, fs domain.Fileset, book domain.Book, ref domain.Reference) ([]map[string]interface{}, error)
}

// LanguageResolver defines the methods the orchestrator needs from the
// language resolver.
type LanguageResolver interface {
	Resolve(ctx context.Context, explicitCode, acceptLanguage string) domain.Language
}

// Options carries the optional overrides of a resolution call.
type Options struct {
	// Language is an explicit language code override.
	Language string

	// AcceptLanguage is the caller's negotiated locale preference list.
	AcceptLanguage string

	// Bible is an explicit bible abbreviation override.
	Bible string

	// MediaType restricts the bundle to a single media type key.
	MediaType string
}

// Service orchestrates reference resolution into content bundles.
type Service struct {
	deps      interfaces.Dependencies
	bibles    BibleAPI
	languages LanguageResolver
}

// NewService creates a new scripture orchestrator.
func NewService(deps interfaces.Dependencies, bibleAPI BibleAPI, languageResolver LanguageResolver) *Service {
	return &Service{
		deps:      deps,
		bibles:    bibleAPI,
		languages: languageResolver,
	}
}

// ByReference resolves a scripture reference string into a content
// bundle across the requested media types.
//
// Book resolution is the one hard failure point: without a valid book no
// fileset or content lookup is possible. Every per-media-type failure is
// soft; the media key is simply omitted.
func (s *Service) ByReference(ctx context.Context, reference string, opts Options) (*domain.ContentBundle, error) {
	if reference == "" {
		return nil, &apperrors.ValidationError{Field: "reference", Message: "reference cannot be empty"}
	}

	ref := domain.ParseReference(reference)
	lang := s.languages.Resolve(ctx, opts.Language, opts.AcceptLanguage)

	bible, err := s.resolveBible(ctx, lang, opts.Bible)
	if err != nil {
		return nil, err
	}

	book, ok := books.Find(ref.Book, bible.Books)
	if !ok {
		return nil, &apperrors.BookNotFoundError{Bible: bible.Name, Book: ref.Book}
	}

	bundle := &domain.ContentBundle{
		Reference: ref,
		Media:     map[string]domain.MediaContent{},
		Language:  lang,
		Bible:     *bible,
		Book:      book,
	}

	keys := lang.MediaTypeKeys()
	if opts.MediaType != "" {
		keys = []string{opts.MediaType}
	}

	s.fetchMedia(ctx, bundle, keys, ref, *bible, book)

	return bundle, nil
}

// resolveBible picks the bible for a call: the explicit override when it
// resolves, else the language's configured default, else the first bible
// available for the language.
func (s *Service) resolveBible(ctx context.Context, lang domain.Language, explicit string) (*domain.Bible, error) {
	if explicit != "" {
		bible, err := s.bibles.Find(ctx, explicit)
		if err == nil {
			return bible, nil
		}
		s.logSoftFailure("Explicit bible not found, using language default", map[string]interface{}{
			"bible": explicit,
			"error": err.Error(),
		})
	}

	if lang.Bibles != "" {
		bible, err := s.bibles.Find(ctx, lang.Bibles)
		if err == nil {
			return bible, nil
		}
		s.logSoftFailure("Configured default bible not found, using first available", map[string]interface{}{
			"bible":    lang.Bibles,
			"language": lang.Value,
			"error":    err.Error(),
		})
	}

	return s.bibles.DefaultForLanguage(ctx, lang.Value)
}

// fetchMedia resolves a fileset and fetches content for each media key,
// concurrently. Assembly is deterministic: entries land under their key
// regardless of completion order, and media without a matching fileset or
// with a failed fetch is omitted.
func (s *Service) fetchMedia(ctx context.Context, bundle *domain.ContentBundle, keys []string, ref domain.Reference, bible domain.Bible, book domain.Book) {
	type mediaResult struct {
		key     string
		content domain.MediaContent
	}

	resultsChan := make(chan mediaResult, len(keys))
	semaphore := make(chan struct{}, maxConcurrentFetches)
	var wg sync.WaitGroup

	for _, key := range keys {
		mediaType, ok := domain.MediaTypeByKey(key)
		if !ok {
			s.logSoftFailure("Skipping unknown media type", map[string]interface{}{
				"media_type": key,
			})
			continue
		}

		fs, ok := filesets.Pluck(bible, book, mediaType.FilesetTypes)
		if !ok {
			// Not an error: some bibles lack some media.
			continue
		}

		wg.Add(1)
		go func(key, label string, fs domain.Fileset) {
			defer wg.Done()

			semaphore <- struct{}{}
			defer func() { <-semaphore }()

			content, err := s.bibles.Content(ctx, fs, book, ref)
			if err != nil {
				s.logSoftFailure("Omitting media type that failed to fetch", map[string]interface{}{
					"media_type": key,
					"fileset":    fs.ID,
					"error":      err.Error(),
				})
				return
			}

			resultsChan <- mediaResult{
				key: key,
				content: domain.MediaContent{
					Label:   label,
					Content: content,
					Fileset: fs,
				},
			}
		}(key, mediaType.Label, fs)
	}

	go func() {
		wg.Wait()
		close(resultsChan)
	}()

	for result := range resultsChan {
		bundle.Media[result.key] = result.content
	}
}

func (s *Service) logSoftFailure(msg string, fields map[string]interface{}) {
	if s.deps.Logger != nil {
		s.deps.Logger.Warn(msg, fields)
	}
}
