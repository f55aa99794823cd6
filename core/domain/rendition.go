// ABOUTME: Rendition represents one selectable variant from an HLS master playlist
// ABOUTME: Derived per video entry at hydration time, never persisted

package domain

// Rendition is one adaptive-bitrate variant parsed from an HLS master
// playlist.
type Rendition struct {
	// Bandwidth is the declared peak bandwidth in bits per second.
	Bandwidth int `json:"bandwidth"`

	// Resolution is the declared "WxH" string, empty if not declared.
	Resolution string `json:"resolution"`

	// Codecs is the declared codec list with surrounding quotes stripped.
	Codecs string `json:"codecs"`

	// URL is the segment playlist URL resolved to absolute form.
	URL string `json:"url"`

	// Attributes holds every #EXT-X-STREAM-INF attribute verbatim.
	Attributes map[string]string `json:"attributes,omitempty"`
}
