// ABOUTME: Language domain model represents one configured site language
// ABOUTME: Carries the default bible and enabled media types for that language

package domain

import "strings"

// Language is one entry of the configured language list.
type Language struct {
	// Value is the ISO-ish language code the entry is matched on, e.g. "en".
	Value string `json:"value"`

	// ItemText is the display label, e.g. "English".
	ItemText string `json:"itemText"`

	// Bibles is the default bible abbreviation for this language.
	Bibles string `json:"bibles"`

	// MediaTypes is a comma-separated list of enabled media type keys.
	MediaTypes string `json:"media_types"`

	// Default marks the fallback entry when no language can be negotiated.
	Default bool `json:"is_default"`
}

// MediaTypeKeys splits the comma-separated media type list, trimming
// whitespace and dropping empty entries.
func (l Language) MediaTypeKeys() []string {
	parts := strings.Split(l.MediaTypes, ",")
	keys := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			keys = append(keys, p)
		}
	}
	return keys
}
