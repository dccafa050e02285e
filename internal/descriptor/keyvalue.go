// Package descriptor decodes per-item metadata descriptor files into loose field maps.
package descriptor

import (
	"strings"
	"unicode"
)

// Fields is the untyped field map decoded from one descriptor file.
// Values are strings, numbers, bools, lists or nested maps depending on the decoder.
type Fields map[string]any

// ParseKeyValue turns loose "key: value" text into a field map.
// Lines without a colon are ignored and later keys overwrite earlier ones.
// Values of "tag" or "tags" keys (any case) become comma-separated lists.
func ParseKeyValue(text string) Fields {
	out := Fields{}

	for _, line := range strings.Split(text, "\n") {
		key, value, found := strings.Cut(line, ":")
		if !found {
			continue
		}

		key = trim(key)
		value = trim(value)

		if isTagKey(key) {
			out[key] = SplitList(value)

			continue
		}

		out[key] = value
	}

	return out
}

// SplitList splits a comma-separated value, trimming pieces and dropping empty ones.
func SplitList(value string) []string {
	parts := []string{}

	for _, part := range strings.Split(value, ",") {
		if p := trim(part); p != "" {
			parts = append(parts, p)
		}
	}

	return parts
}

func isTagKey(key string) bool {
	return strings.EqualFold(key, "tag") || strings.EqualFold(key, "tags")
}

// trim strips surrounding whitespace and byte-order marks, so a descriptor
// saved with a BOM keeps its first key.
func trim(s string) string {
	return strings.TrimFunc(s, func(r rune) bool {
		return unicode.IsSpace(r) || r == '\uFEFF'
	})
}
