package normalizer

import "testing"

func TestFixPath(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "Empty stays empty", input: "", want: ""},
		{name: "Relative gets root", input: "clips/a.mp4", want: "media/clips/a.mp4"},
		{name: "Leading slash stripped", input: "/clips/a.mp4", want: "media/clips/a.mp4"},
		{name: "Many leading slashes stripped", input: "///a.png", want: "media/a.png"},
		{name: "Already rooted", input: "media/a.png", want: "media/a.png"},
		{name: "Absolute and rooted", input: "/media/a.png", want: "media/a.png"},
		{name: "Whitespace trimmed", input: "  /b.webm \n", want: "media/b.webm"},
		{name: "Whitespace only is not empty", input: "   ", want: "media/"},
		{name: "Root without slash is not rooted", input: "media", want: "media/media"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FixPath(tt.input); got != tt.want {
				t.Errorf("FixPath(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNewPathNormalizer_Root(t *testing.T) {
	cases := map[string]string{
		"":          "media/",
		"/":         "media/",
		"assets":    "assets/",
		"/assets//": "assets/",
		"a/b":       "a/b/",
	}

	for in, want := range cases {
		if got := NewPathNormalizer(in).Root(); got != want {
			t.Errorf("NewPathNormalizer(%q).Root() = %q, want %q", in, got, want)
		}
	}
}
