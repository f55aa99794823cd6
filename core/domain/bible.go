// ABOUTME: Bible domain model represents an upstream bible with its books and filesets
// ABOUTME: Value objects are fetched per request and never mutated after decoding

package domain

// Testament codes used to scope filesets.
const (
	TestamentOld = "OT"
	TestamentNew = "NT"
)

// Fileset group keys as the upstream API partitions them.
const (
	FilesetGroupProduction = "dbp-prod"
	FilesetGroupVideo      = "dbp-vid"
)

// FilesetSizeComplete marks a fileset covering the whole canon.
const FilesetSizeComplete = "C"

// Bible represents one upstream bible edition with its book list and
// fileset groups. Immutable once decoded.
type Bible struct {
	// ID is the bible abbreviation, e.g. "ENGESV".
	ID string `json:"abbr"`

	// Name is the human-readable edition name.
	Name string `json:"name"`

	// Language is the language name reported by the upstream API.
	Language string `json:"language"`

	// LanguageISO is the ISO-639 code of the language.
	LanguageISO string `json:"iso"`

	// Books lists the books this edition contains.
	Books []Book `json:"books"`

	// Filesets maps an upstream group key ("dbp-prod", "dbp-vid") to the
	// filesets available in that group.
	Filesets map[string][]Fileset `json:"filesets"`
}

// Book represents one book within a bible's book list.
type Book struct {
	// BookID is the canonical 3-letter code, e.g. "JHN".
	BookID string `json:"book_id"`

	// Name is the localized full book name.
	Name string `json:"name"`

	// NameShort is the localized short name, if the upstream provides one.
	NameShort string `json:"name_short,omitempty"`

	// Testament is "OT" or "NT". May be empty in upstream data; the book
	// resolver fills it in from canonical order.
	Testament string `json:"testament,omitempty"`
}

// Fileset is a typed, versioned container of content for a bible,
// scoped to a testament or the whole canon. Selected, never constructed,
// by this codebase.
type Fileset struct {
	// ID identifies the fileset upstream, e.g. "ENGESVN2DA".
	ID string `json:"id"`

	// Type is the content type, e.g. "text_plain", "audio_drama", "video_stream".
	Type string `json:"type"`

	// Size is "C" for the complete canon, otherwise a testament-scoped
	// code that contains the testament it covers (e.g. "NT", "NTP").
	Size string `json:"size"`

	// Group is the fileset group key this fileset was found under.
	Group string `json:"group,omitempty"`
}

// Option is a value/label pair projected from records for select lists.
type Option struct {
	Value    string `json:"value"`
	ItemText string `json:"itemText"`
}
