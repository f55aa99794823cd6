// ABOUTME: Reference domain model represents parsed scripture reference coordinates
// ABOUTME: Provides parsing from display strings and formatting back to display form

package domain

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Reference holds the coordinates parsed from a scripture reference string.
// A zero value for any numeric field means "not specified": a bare book name
// has Chapter 0, a whole-chapter reference has VerseStart 0.
//
// ChapterEnd is only set for cross-chapter ranges ("John 3:16-4:2"), where
// VerseEnd belongs to ChapterEnd rather than Chapter.
type Reference struct {
	// Book is the book name or code exactly as written; normalization is
	// the book resolver's job.
	Book string `json:"book"`

	// Chapter is the (start) chapter number, 0 if absent.
	Chapter int `json:"chapter"`

	// ChapterEnd is the end chapter for cross-chapter ranges, 0 otherwise.
	ChapterEnd int `json:"chapter_end,omitempty"`

	// VerseStart is the first verse, 0 if the whole chapter is referenced.
	VerseStart int `json:"verse_start"`

	// VerseEnd is the last verse, equal to VerseStart for single-verse
	// references and 0 when VerseStart is 0.
	VerseEnd int `json:"verse_end"`
}

// referencePattern matches "Book C", "Book C:V", "Book C:V-V2" and
// "Book C:V-C2:V2". The book group is non-greedy so numbered books
// ("1 John 2:3") keep their leading digit.
var referencePattern = regexp.MustCompile(`^(.*?)\s+(\d+)(?::(\d+)(?:\s*-\s*(?:(\d+):)?(\d+))?)?$`)

// ParseReference parses a free-form scripture reference string.
// Unparseable chapter/verse tokens never produce an error: the whole input
// becomes the book name and resolution fails later as "book not found".
func ParseReference(reference string) Reference {
	reference = strings.TrimSpace(reference)

	m := referencePattern.FindStringSubmatch(reference)
	if m == nil {
		// Bare book name, or malformed chapter/verse tokens.
		return Reference{Book: reference}
	}

	ref := Reference{Book: strings.TrimSpace(m[1])}
	ref.Chapter, _ = strconv.Atoi(m[2])

	if m[3] != "" {
		ref.VerseStart, _ = strconv.Atoi(m[3])
		ref.VerseEnd = ref.VerseStart
	}

	if m[5] != "" {
		ref.VerseEnd, _ = strconv.Atoi(m[5])
	}

	if m[4] != "" {
		ref.ChapterEnd, _ = strconv.Atoi(m[4])
		if ref.ChapterEnd == ref.Chapter {
			ref.ChapterEnd = 0
		}
	}

	// Same-chapter ranges must not run backwards; treat "3:18-16" as the
	// single verse 18 rather than guessing the intent.
	if ref.ChapterEnd == 0 && ref.VerseEnd < ref.VerseStart {
		ref.VerseEnd = ref.VerseStart
	}

	return ref
}

// String formats the reference back into display form, the inverse of
// ParseReference for well-formed input.
func (r Reference) String() string {
	if r.Chapter == 0 {
		return r.Book
	}

	s := fmt.Sprintf("%s %d", r.Book, r.Chapter)
	if r.VerseStart == 0 {
		return s
	}

	s = fmt.Sprintf("%s:%d", s, r.VerseStart)
	switch {
	case r.ChapterEnd != 0:
		s = fmt.Sprintf("%s-%d:%d", s, r.ChapterEnd, r.VerseEnd)
	case r.VerseEnd != r.VerseStart:
		s = fmt.Sprintf("%s-%d", s, r.VerseEnd)
	}

	return s
}

// IsRange reports whether the reference spans more than a single verse.
func (r Reference) IsRange() bool {
	return r.ChapterEnd != 0 || (r.VerseEnd != 0 && r.VerseEnd != r.VerseStart)
}
