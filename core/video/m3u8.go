// ABOUTME: HLS master playlist parser producing selectable renditions
// ABOUTME: Rewrites relative segment-playlist names to absolute URLs

package video

import (
	"bufio"
	"strconv"
	"strings"

	"scripture-app-api/core/domain"
)

const streamInfPrefix = "#EXT-X-STREAM-INF:"

// ParseM3U8 parses an HLS master playlist body into renditions, in
// playlist order. A "#EXT-X-STREAM-INF:" line opens a rendition; the next
// non-comment, non-blank line is its segment-playlist name, resolved
// against base. Malformed or empty playlists yield an empty slice.
func ParseM3U8(body, base string) []domain.Rendition {
	renditions := []domain.Rendition{}

	var pending map[string]string
	scanner := bufio.NewScanner(strings.NewReader(body))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		if strings.HasPrefix(line, streamInfPrefix) {
			pending = parseAttributes(line[len(streamInfPrefix):])
			continue
		}
		if pending == nil || line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		bandwidth, _ := strconv.Atoi(pending["BANDWIDTH"])
		renditions = append(renditions, domain.Rendition{
			Bandwidth:  bandwidth,
			Resolution: pending["RESOLUTION"],
			Codecs:     strings.Trim(pending["CODECS"], `"`),
			URL:        resolveURL(base, line),
			Attributes: pending,
		})
		pending = nil
	}

	return renditions
}

// BasePath strips the final "playlist.m3u8"-and-beyond suffix from a
// playlist path, leaving the directory prefix relative names resolve
// against.
func BasePath(path string) string {
	if idx := strings.Index(path, "playlist.m3u8"); idx >= 0 {
		return path[:idx]
	}
	if idx := strings.LastIndex(path, "/"); idx >= 0 {
		return path[:idx+1]
	}
	return path
}

func resolveURL(base, name string) string {
	if strings.HasPrefix(name, "http://") || strings.HasPrefix(name, "https://") {
		return name
	}
	return base + name
}

// parseAttributes splits a comma-separated KEY=VALUE attribute list,
// honoring quoted values that contain commas. Values are kept verbatim,
// quotes included.
func parseAttributes(s string) map[string]string {
	attrs := make(map[string]string)

	var field strings.Builder
	inQuotes := false
	flush := func() {
		part := field.String()
		field.Reset()
		key, value, ok := strings.Cut(part, "=")
		if !ok {
			return
		}
		attrs[strings.ToUpper(strings.TrimSpace(key))] = value
	}

	for _, r := range s {
		switch {
		case r == '"':
			inQuotes = !inQuotes
			field.WriteRune(r)
		case r == ',' && !inQuotes:
			flush()
		default:
			field.WriteRune(r)
		}
	}
	if field.Len() > 0 {
		flush()
	}

	return attrs
}
