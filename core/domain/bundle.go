// ABOUTME: ContentBundle is the orchestrator output: per-media content plus resolved metadata
// ABOUTME: Media entries mirror upstream payloads as loosely-typed verse/video records

package domain

// MediaContent is the content resolved for one media type.
type MediaContent struct {
	// Label is the media type's display label.
	Label string `json:"label"`

	// Content holds the upstream data entries for the fetched passage.
	// The shape varies per fileset type (text verses, audio files, video
	// entries), so entries stay loosely typed.
	Content []map[string]interface{} `json:"content"`

	// Fileset is the fileset the content was fetched from.
	Fileset Fileset `json:"fileset"`
}

// ContentBundle is the normalized result of resolving a scripture
// reference across the requested media types.
type ContentBundle struct {
	// Reference is the parsed reference the bundle answers.
	Reference Reference `json:"reference"`

	// Media maps a media type key to its resolved content. Media types
	// with no matching fileset or failed fetches are absent, not nil.
	Media map[string]MediaContent `json:"media"`

	// Language is the resolved language configuration.
	Language Language `json:"language"`

	// Bible is the resolved bible.
	Bible Bible `json:"bible"`

	// Book is the resolved book within that bible.
	Book Book `json:"book"`
}
