// ABOUTME: Fileset selector picks the best-matching fileset for a book and media type
// ABOUTME: Tries fileset types in preference order, honoring testament scoping

package filesets

import (
	"strings"

	"scripture-app-api/core/domain"
)

// typeGroups maps fileset types to the upstream group they live in.
// An explicit table rather than a substring check on the type name.
var typeGroups = map[string]string{
	"video_stream": domain.FilesetGroupVideo,
}

// GroupForType returns the fileset group a type is partitioned under.
// Types without an explicit entry live in the production group.
func GroupForType(filesetType string) string {
	if g, ok := typeGroups[filesetType]; ok {
		return g
	}
	return domain.FilesetGroupProduction
}

// Pluck selects the first fileset matching one of the requested types, in
// order, that covers the book's testament. A fileset covers a book when
// its size is "C" (complete canon) or contains the book's testament code.
//
// The ordered fallback across types is deliberate: callers list fileset
// types from most to least complete (e.g. text_format before text_plain)
// and degrade gracefully when a bible lacks the richer tier.
func Pluck(bible domain.Bible, book domain.Book, types []string) (domain.Fileset, bool) {
	for _, t := range types {
		group := GroupForType(t)
		for _, fs := range bible.Filesets[group] {
			if fs.Type != t {
				continue
			}
			if !covers(fs, book) {
				continue
			}
			fs.Group = group
			return fs, true
		}
	}
	return domain.Fileset{}, false
}

func covers(fs domain.Fileset, book domain.Book) bool {
	if fs.Size == domain.FilesetSizeComplete {
		return true
	}
	return book.Testament != "" && strings.Contains(fs.Size, book.Testament)
}
