package manifest

import (
	"testing"

	"mediamanifest/internal/models"
)

func TestMarshal(t *testing.T) {
	items := models.Manifest{
		{ID: "1", Title: "Rock & Roll <live>", Type: "video", Src: "media/a.mp4", Thumb: "media/thumbs/1.webp", Tags: []string{}},
	}

	got, err := Marshal(items)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}

	want := `[
  {
    "id": "1",
    "title": "Rock & Roll <live>",
    "type": "video",
    "src": "media/a.mp4",
    "thumb": "media/thumbs/1.webp",
    "description": "",
    "tags": []
  }
]`

	if string(got) != want {
		t.Errorf("Marshal() =\n%s\nwant\n%s", got, want)
	}
}

func TestMarshal_Nil(t *testing.T) {
	got, err := Marshal(nil)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}

	if string(got) != "[]" {
		t.Errorf("Marshal(nil) = %q, want []", got)
	}
}
