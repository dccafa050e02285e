package descriptor

import (
	"encoding/json"
	"errors"
	"reflect"
	"testing"
)

func TestDecode_JSONObject(t *testing.T) {
	fields, format := Decode("7.json", []byte(`{"id": 0, "title": "Zero", "tags": ["x", "y"]}`))

	if format != FormatJSON {
		t.Fatalf("format = %s, want %s", format, FormatJSON)
	}

	if id, ok := fields["id"].(json.Number); !ok || id.String() != "0" {
		t.Errorf("id = %#v, want json.Number 0", fields["id"])
	}

	if fields["title"] != "Zero" {
		t.Errorf("title = %v, want Zero", fields["title"])
	}
}

func TestDecode_FallsBackToKeyValue(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
		want    Fields
	}{
		{
			name:    "Broken JSON",
			file:    "3.json",
			content: "{\"id\": 3,\ntitle: Broken\n",
			want:    Fields{`{"id"`: `3,`, "title": "Broken"},
		},
		{
			name:    "JSON array",
			file:    "list.json",
			content: `["a", "b"]`,
			want:    Fields{},
		},
		{
			name:    "JSON with trailing data",
			file:    "trail.json",
			content: "{}\ntitle: After",
			want:    Fields{"title": "After"},
		},
		{
			name:    "Plain text",
			file:    "notes.txt",
			content: "title: Plain\ntags: one, two",
			want:    Fields{"title": "Plain", "tags": []string{"one", "two"}},
		},
		{
			name:    "Markdown without front matter",
			file:    "item.md",
			content: "# Heading\nname: From body",
			want:    Fields{"name": "From body"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, format := Decode(tt.file, []byte(tt.content))
			if format != FormatKeyValue {
				t.Errorf("format = %s, want %s", format, FormatKeyValue)
			}

			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Decode() = %#v, want %#v", got, tt.want)
			}
		})
	}
}

func TestDecode_FrontMatter(t *testing.T) {
	content := "---\nid: 12\ntitle: Harbour lights\ntags: [night, harbour]\n---\n\nLong form notes.\n"

	fields, format := Decode("12.md", []byte(content))
	if format != FormatFrontMatter {
		t.Fatalf("format = %s, want %s", format, FormatFrontMatter)
	}

	if fields["title"] != "Harbour lights" {
		t.Errorf("title = %v, want Harbour lights", fields["title"])
	}

	tags, ok := fields["tags"].([]any)
	if !ok || len(tags) != 2 {
		t.Errorf("tags = %#v, want two-element list", fields["tags"])
	}
}

func TestDecode_FrontMatterWithBodyFields(t *testing.T) {
	content := "---\ntitle: FM\n---\ntitle: Body\nsrc: clip.png\ntags: a,b\n"

	fields, format := Decode("clip.md", []byte(content))
	if format != FormatFrontMatter {
		t.Fatalf("format = %s, want %s", format, FormatFrontMatter)
	}

	want := Fields{
		"title": "FM",
		"src":   "clip.png",
		"tags":  []string{"a", "b"},
	}

	if !reflect.DeepEqual(fields, want) {
		t.Errorf("fields = %#v, want %#v", fields, want)
	}
}

func TestDecode_YAMLAndTOML(t *testing.T) {
	yamlFields, format := Decode("a.yaml", []byte("title: From YAML\nsrc: a.png\n"))
	if format != FormatYAML || yamlFields["title"] != "From YAML" {
		t.Errorf("yaml decode = %v (%s)", yamlFields, format)
	}

	tomlFields, format := Decode("b.toml", []byte("title = \"From TOML\"\nid = 5\n"))
	if format != FormatTOML || tomlFields["title"] != "From TOML" {
		t.Errorf("toml decode = %v (%s)", tomlFields, format)
	}
}

func TestDecode_TextIsNotTriedAsYAML(t *testing.T) {
	_, format := Decode("a.txt", []byte("title: plain"))
	if format != FormatKeyValue {
		t.Errorf("format = %s, want %s", format, FormatKeyValue)
	}
}

func TestDecodeStructured_NotMapping(t *testing.T) {
	_, _, err := DecodeStructured("n.json", []byte("null"))
	if !errors.Is(err, ErrNotMapping) {
		t.Errorf("err = %v, want ErrNotMapping", err)
	}
}
