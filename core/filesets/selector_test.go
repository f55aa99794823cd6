package filesets

import (
	"strings"
	"testing"

	"scripture-app-api/core/domain"
)

func testBible() domain.Bible {
	return domain.Bible{
		ID: "ENGESV",
		Filesets: map[string][]domain.Fileset{
			domain.FilesetGroupProduction: {
				{ID: "ENGESVN2DA", Type: "audio_drama", Size: "NT"},
				{ID: "ENGESVO1DA", Type: "audio", Size: "OT"},
				{ID: "ENGESV", Type: "text_plain", Size: "C"},
			},
			domain.FilesetGroupVideo: {
				{ID: "ENGESVP2DV", Type: "video_stream", Size: "NTP"},
			},
		},
	}
}

func TestGroupForType(t *testing.T) {
	if got := GroupForType("video_stream"); got != domain.FilesetGroupVideo {
		t.Errorf("GroupForType(video_stream) = %v, want %v", got, domain.FilesetGroupVideo)
	}
	if got := GroupForType("text_plain"); got != domain.FilesetGroupProduction {
		t.Errorf("GroupForType(text_plain) = %v, want %v", got, domain.FilesetGroupProduction)
	}
	if got := GroupForType("audio_drama"); got != domain.FilesetGroupProduction {
		t.Errorf("GroupForType(audio_drama) = %v, want %v", got, domain.FilesetGroupProduction)
	}
}

func TestPluck_CompleteCanonMatchesEitherTestament(t *testing.T) {
	bible := testBible()

	otBook := domain.Book{BookID: "GEN", Testament: "OT"}
	fs, ok := Pluck(bible, otBook, []string{"text_plain"})
	if !ok || fs.ID != "ENGESV" {
		t.Errorf("Pluck text for OT book = %+v, %v; want ENGESV", fs, ok)
	}

	ntBook := domain.Book{BookID: "JHN", Testament: "NT"}
	fs, ok = Pluck(bible, ntBook, []string{"text_plain"})
	if !ok || fs.ID != "ENGESV" {
		t.Errorf("Pluck text for NT book = %+v, %v; want ENGESV", fs, ok)
	}
}

func TestPluck_TestamentScoped(t *testing.T) {
	bible := testBible()
	book := domain.Book{BookID: "JHN", Testament: "NT"}

	fs, ok := Pluck(bible, book, []string{"audio_drama", "audio"})

	if !ok || fs.ID != "ENGESVN2DA" {
		t.Errorf("Pluck = %+v, %v; want ENGESVN2DA", fs, ok)
	}
}

func TestPluck_NoMatchWrongTestament(t *testing.T) {
	// An NT-only audio fileset must never be selected for an OT book,
	// even though a fileset of the right type exists.
	bible := domain.Bible{
		Filesets: map[string][]domain.Fileset{
			domain.FilesetGroupProduction: {
				{ID: "XXXN2DA", Type: "audio_drama", Size: "NT"},
			},
		},
	}
	book := domain.Book{BookID: "GEN", Testament: "OT"}

	_, ok := Pluck(bible, book, []string{"audio_drama"})

	if ok {
		t.Error("Pluck should not return a fileset scoped to the wrong testament")
	}
}

func TestPluck_OrderedFallback(t *testing.T) {
	// No text_format available: selection degrades to text_plain.
	bible := testBible()
	book := domain.Book{BookID: "JHN", Testament: "NT"}

	fs, ok := Pluck(bible, book, []string{"text_format", "text_plain"})

	if !ok || fs.Type != "text_plain" {
		t.Errorf("Pluck = %+v, %v; want fallback to text_plain", fs, ok)
	}
}

func TestPluck_FirstTypeWins(t *testing.T) {
	bible := domain.Bible{
		Filesets: map[string][]domain.Fileset{
			domain.FilesetGroupProduction: {
				{ID: "PLAIN", Type: "text_plain", Size: "C"},
				{ID: "FORMAT", Type: "text_format", Size: "C"},
			},
		},
	}
	book := domain.Book{BookID: "JHN", Testament: "NT"}

	fs, ok := Pluck(bible, book, []string{"text_format", "text_plain"})

	if !ok || fs.ID != "FORMAT" {
		t.Errorf("Pluck = %+v, %v; want the preferred type even if listed later", fs, ok)
	}
}

func TestPluck_VideoGroup(t *testing.T) {
	bible := testBible()
	book := domain.Book{BookID: "JHN", Testament: "NT"}

	fs, ok := Pluck(bible, book, []string{"video_stream"})

	if !ok || fs.ID != "ENGESVP2DV" {
		t.Errorf("Pluck video = %+v, %v; want ENGESVP2DV", fs, ok)
	}
	if fs.Group != domain.FilesetGroupVideo {
		t.Errorf("Group = %v, want %v", fs.Group, domain.FilesetGroupVideo)
	}
}

func TestPluck_SizeContainsTestament(t *testing.T) {
	// Size "NTP" (partial NT) still covers NT books.
	bible := testBible()
	book := domain.Book{BookID: "MRK", Testament: "NT"}

	_, ok := Pluck(bible, book, []string{"video_stream"})

	if !ok {
		t.Error("size containing the testament code should match")
	}
}

func TestPluck_Exhausted(t *testing.T) {
	bible := testBible()
	book := domain.Book{BookID: "JHN", Testament: "NT"}

	_, ok := Pluck(bible, book, []string{"braille"})

	if ok {
		t.Error("Pluck should report not-found when no type matches")
	}
}

func TestPluck_NeverViolatesSizeInvariant(t *testing.T) {
	bible := testBible()
	books := []domain.Book{
		{BookID: "GEN", Testament: "OT"},
		{BookID: "JHN", Testament: "NT"},
	}
	typeLists := [][]string{
		{"text_format", "text_plain"},
		{"audio_drama", "audio"},
		{"video_stream"},
	}

	for _, book := range books {
		for _, types := range typeLists {
			fs, ok := Pluck(bible, book, types)
			if !ok {
				continue
			}
			if fs.Size != domain.FilesetSizeComplete && !strings.Contains(fs.Size, book.Testament) {
				t.Errorf("Pluck returned %+v for %s book, violating size invariant", fs, book.Testament)
			}
		}
	}
}
