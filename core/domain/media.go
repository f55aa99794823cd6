// ABOUTME: MediaType registry maps media keys to ordered fileset type preferences
// ABOUTME: Static, immutable data loaded once; order of FilesetTypes drives selection

package domain

// MediaType describes one kind of deliverable content and the ordered
// fileset types that can satisfy it. The fileset selector tries
// FilesetTypes in order and takes the first match, so the list encodes a
// preference across content-completeness tiers.
type MediaType struct {
	Key          string
	Label        string
	Group        string
	FilesetTypes []string
}

// mediaTypes is the static registry in presentation order.
var mediaTypes = []MediaType{
	{
		Key:          "text",
		Label:        "Text",
		Group:        FilesetGroupProduction,
		FilesetTypes: []string{"text_format", "text_plain"},
	},
	{
		Key:          "audio",
		Label:        "Audio",
		Group:        FilesetGroupProduction,
		FilesetTypes: []string{"audio_drama", "audio"},
	},
	{
		Key:          "video",
		Label:        "Video",
		Group:        FilesetGroupVideo,
		FilesetTypes: []string{"video_stream"},
	},
}

// MediaTypes returns the registry in order. Callers must not modify the
// returned slice.
func MediaTypes() []MediaType {
	return mediaTypes
}

// MediaTypeByKey looks up a media type by its key.
func MediaTypeByKey(key string) (MediaType, bool) {
	for _, mt := range mediaTypes {
		if mt.Key == key {
			return mt, true
		}
	}
	return MediaType{}, false
}
