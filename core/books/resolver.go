// ABOUTME: Book resolver locates a book within a bible's book list
// ABOUTME: Matches by canonical code, full name, then short name; infers testaments

package books

import (
	"strings"

	"scripture-app-api/core/domain"
)

// Find locates a book in a bible's book list by ID, full name, or short
// name, case-insensitively, in that order. The first match wins; there is
// no fuzzy scoring. The returned book always carries a testament, inferred
// from canonical order when the upstream data omits it.
func Find(nameOrCode string, list []domain.Book) (domain.Book, bool) {
	if nameOrCode == "" {
		return domain.Book{}, false
	}

	for _, b := range list {
		if strings.EqualFold(b.BookID, nameOrCode) {
			return withTestament(b), true
		}
	}
	for _, b := range list {
		if strings.EqualFold(b.Name, nameOrCode) {
			return withTestament(b), true
		}
	}
	for _, b := range list {
		if b.NameShort != "" && strings.EqualFold(b.NameShort, nameOrCode) {
			return withTestament(b), true
		}
	}

	return domain.Book{}, false
}

// GuessTestament classifies a book ID as "OT" or "NT" by canonical order:
// the first 39 canonical IDs are Old Testament, the remainder New.
// Unknown IDs classify as "NT", matching upstream behavior for
// extra-canonical material.
func GuessTestament(bookID string) string {
	idx, ok := canonIndex[strings.ToUpper(bookID)]
	if ok && idx < oldTestamentCount {
		return domain.TestamentOld
	}
	return domain.TestamentNew
}

// IsCanonical reports whether the ID belongs to the 66-book canon.
func IsCanonical(bookID string) bool {
	_, ok := canonIndex[strings.ToUpper(bookID)]
	return ok
}

// Normalize converts a book name to its canonical ID within the given
// bible. On no match the input is returned unchanged; callers that need a
// hard answer compare the result against IsCanonical.
func Normalize(name string, bible domain.Bible) string {
	if b, ok := Find(name, bible.Books); ok {
		return b.BookID
	}
	return name
}

func withTestament(b domain.Book) domain.Book {
	if b.Testament == "" {
		b.Testament = GuessTestament(b.BookID)
	}
	return b
}
