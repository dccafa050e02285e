// Package models defines data structures for descriptors and the gallery manifest.
package models

// Media types emitted in the manifest.
const (
	TypeImage = "image"
	TypeVideo = "video"
)

// Item represents one normalized media entry in the manifest.
type Item struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Type        string   `json:"type"`
	Src         string   `json:"src"`
	Thumb       string   `json:"thumb"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
}

// IsKnownType reports whether t is one of the media types the gallery renders.
func IsKnownType(t string) bool {
	return t == TypeImage || t == TypeVideo
}
