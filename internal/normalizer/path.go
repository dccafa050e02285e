package normalizer

import "strings"

// DefaultAssetRoot is the path segment every media reference is rewritten under.
const DefaultAssetRoot = "media/"

// PathNormalizer rewrites source and thumbnail references into relative paths under an asset root.
type PathNormalizer struct {
	root string
}

// NewPathNormalizer creates a path normalizer for the given asset root.
// An empty root falls back to DefaultAssetRoot.
func NewPathNormalizer(root string) *PathNormalizer {
	root = strings.Trim(strings.TrimSpace(root), "/")
	if root == "" {
		return &PathNormalizer{root: DefaultAssetRoot}
	}

	return &PathNormalizer{root: root + "/"}
}

// Root returns the asset root segment including its trailing slash.
func (p *PathNormalizer) Root() string {
	return p.root
}

// Fix trims the reference, strips leading slashes and prefixes the asset root
// when missing. An empty reference stays empty.
func (p *PathNormalizer) Fix(raw string) string {
	if raw == "" {
		return ""
	}

	fixed := strings.TrimLeft(strings.TrimSpace(raw), "/")
	if !strings.HasPrefix(fixed, p.root) {
		fixed = p.root + fixed
	}

	return fixed
}

// FixPath normalizes a reference under DefaultAssetRoot.
func FixPath(raw string) string {
	return NewPathNormalizer(DefaultAssetRoot).Fix(raw)
}
