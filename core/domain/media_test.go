package domain

import "testing"

func TestMediaTypes_Order(t *testing.T) {
	types := MediaTypes()

	if len(types) != 3 {
		t.Fatalf("MediaTypes returned %d entries, want 3", len(types))
	}

	wantKeys := []string{"text", "audio", "video"}
	for i, key := range wantKeys {
		if types[i].Key != key {
			t.Errorf("MediaTypes()[%d].Key = %v, want %v", i, types[i].Key, key)
		}
	}
}

func TestMediaTypes_FilesetTypeOrder(t *testing.T) {
	text, ok := MediaTypeByKey("text")
	if !ok {
		t.Fatal("text media type not registered")
	}

	// text_format must be preferred over text_plain
	if len(text.FilesetTypes) != 2 || text.FilesetTypes[0] != "text_format" || text.FilesetTypes[1] != "text_plain" {
		t.Errorf("text fileset types = %v, want [text_format text_plain]", text.FilesetTypes)
	}
}

func TestMediaTypeByKey_Unknown(t *testing.T) {
	_, ok := MediaTypeByKey("braille")

	if ok {
		t.Error("MediaTypeByKey should return false for unregistered key")
	}
}

func TestMediaType_VideoGroup(t *testing.T) {
	video, ok := MediaTypeByKey("video")
	if !ok {
		t.Fatal("video media type not registered")
	}

	if video.Group != FilesetGroupVideo {
		t.Errorf("video group = %v, want %v", video.Group, FilesetGroupVideo)
	}
}

func TestLanguage_MediaTypeKeys(t *testing.T) {
	lang := Language{MediaTypes: "text, audio ,video"}

	keys := lang.MediaTypeKeys()

	if len(keys) != 3 || keys[0] != "text" || keys[1] != "audio" || keys[2] != "video" {
		t.Errorf("MediaTypeKeys = %v, want [text audio video]", keys)
	}
}

func TestLanguage_MediaTypeKeys_Empty(t *testing.T) {
	lang := Language{MediaTypes: ""}

	if keys := lang.MediaTypeKeys(); len(keys) != 0 {
		t.Errorf("MediaTypeKeys for empty list = %v, want none", keys)
	}
}
