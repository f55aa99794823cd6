// ABOUTME: Video hydrator attaches parsed HLS playlists to video content entries
// ABOUTME: Per-entry fetch failures degrade to "no playlist", never to an error

package video

import (
	"context"
	"io"
	"strconv"
	"strings"
	"sync"

	"scripture-app-api/core/domain"
	"scripture-app-api/core/interfaces"
)

// maxConcurrentFetches bounds the per-entry playlist fan-out.
const maxConcurrentFetches = 4

// Service hydrates video content entries with parsed HLS renditions.
type Service struct {
	deps interfaces.Dependencies
}

// NewService creates a new video hydration service.
func NewService(deps interfaces.Dependencies) *Service {
	return &Service{deps: deps}
}

// HydrateContent fetches and parses the HLS master playlist for every
// video entry carrying a path, attaching the renditions under the
// "playlist" key. No-op when the bundle has no video media. Entries whose
// fetch fails are left untouched; callers treat a missing playlist as
// "video unavailable", not an error.
func (s *Service) HydrateContent(ctx context.Context, bundle *domain.ContentBundle) {
	if bundle == nil {
		return
	}
	media, ok := bundle.Media["video"]
	if !ok {
		return
	}

	semaphore := make(chan struct{}, maxConcurrentFetches)
	var wg sync.WaitGroup

	for _, entry := range media.Content {
		path, ok := entry["path"].(string)
		if !ok || path == "" {
			continue
		}

		wg.Add(1)
		go func(entry map[string]interface{}, path string) {
			defer wg.Done()

			semaphore <- struct{}{}
			defer func() { <-semaphore }()

			renditions, err := s.fetchPlaylist(ctx, path)
			if err != nil {
				if s.deps.Logger != nil {
					s.deps.Logger.Debug("Leaving video entry without playlist", map[string]interface{}{
						"path":  path,
						"error": err.Error(),
					})
				}
				return
			}
			entry["playlist"] = renditions
		}(entry, path)
	}

	wg.Wait()
}

func (s *Service) fetchPlaylist(ctx context.Context, path string) ([]domain.Rendition, error) {
	resp, err := s.deps.HTTPClient.Get(ctx, path)
	if err != nil {
		return nil, err
	}
	defer resp.Body().Close()

	if resp.StatusCode() != 200 {
		return nil, &statusError{code: resp.StatusCode()}
	}

	body, err := io.ReadAll(resp.Body())
	if err != nil {
		return nil, err
	}

	return ParseM3U8(string(body), BasePath(path)), nil
}

type statusError struct {
	code int
}

func (e *statusError) Error() string {
	return "playlist returned status " + strconv.Itoa(e.code)
}

// BestRendition picks the rendition whose width best fits the viewport:
// candidates wider than 1.5x the viewport are excluded, the rest compete
// on absolute width distance, and ties keep the earliest playlist entry.
func BestRendition(renditions []domain.Rendition, viewportWidth int) (domain.Rendition, bool) {
	best := -1
	bestDiff := 0

	for i, r := range renditions {
		width, ok := renditionWidth(r)
		if !ok {
			continue
		}
		if width*2 > viewportWidth*3 {
			continue
		}

		diff := width - viewportWidth
		if diff < 0 {
			diff = -diff
		}
		if best == -1 || diff < bestDiff {
			best = i
			bestDiff = diff
		}
	}

	if best == -1 {
		return domain.Rendition{}, false
	}
	return renditions[best], true
}

func renditionWidth(r domain.Rendition) (int, bool) {
	w, _, ok := strings.Cut(r.Resolution, "x")
	if !ok {
		return 0, false
	}
	width, err := strconv.Atoi(w)
	if err != nil || width <= 0 {
		return 0, false
	}
	return width, true
}
