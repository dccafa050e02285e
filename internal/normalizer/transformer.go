package normalizer

import (
	"path/filepath"
	"regexp"
	"strings"

	"mediamanifest/internal/descriptor"
	"mediamanifest/internal/models"
)

// Default thumbnail location used when a descriptor names none.
const (
	DefaultThumbRoot = "thumbs"
	DefaultThumbExt  = ".webp"
)

// Assets holds the path conventions applied while normalizing records.
type Assets struct {
	Root      string
	ThumbRoot string
	ThumbExt  string
}

// DefaultAssets returns the gallery's standard layout: media/thumbs/<id>.webp.
func DefaultAssets() Assets {
	return Assets{
		Root:      DefaultAssetRoot,
		ThumbRoot: DefaultThumbRoot,
		ThumbExt:  DefaultThumbExt,
	}
}

// Transformer converts a decoded descriptor into a manifest item.
type Transformer struct {
	paths        *PathNormalizer
	thumbRoot    string
	thumbExt     string
	imagePattern *regexp.Regexp
	videoPattern *regexp.Regexp
}

// NewTransformer creates a new transformer for the given asset layout.
func NewTransformer(assets Assets) *Transformer {
	thumbRoot := strings.Trim(assets.ThumbRoot, "/")
	if thumbRoot == "" {
		thumbRoot = DefaultThumbRoot
	}

	thumbExt := assets.ThumbExt
	if thumbExt == "" {
		thumbExt = DefaultThumbExt
	}

	if !strings.HasPrefix(thumbExt, ".") {
		thumbExt = "." + thumbExt
	}

	return &Transformer{
		paths:        NewPathNormalizer(assets.Root),
		thumbRoot:    thumbRoot,
		thumbExt:     thumbExt,
		imagePattern: regexp.MustCompile(`(?i)\.(jpe?g|png|gif|webp|avif)$`),
		videoPattern: regexp.MustCompile(`(?i)\.(mp4|webm|mov|mkv)$`),
	}
}

// Transform builds the item for one descriptor. It never fails: every field
// falls back to a default when the descriptor omits it.
func (t *Transformer) Transform(fields descriptor.Fields, filename string) models.Item {
	if fields == nil {
		fields = descriptor.Fields{}
	}

	id := t.itemID(fields, filename)
	srcRaw := lookupString(fields, "src", "")
	thumbRaw := lookupString(fields, "thumb", t.thumbRoot+"/"+id+t.thumbExt)

	tags := []string{}
	if v, ok := lookup(fields, "tags"); ok {
		tags = stringList(v)
	}

	return models.Item{
		ID:          id,
		Title:       lookupString(fields, "title", "Item "+id),
		Type:        t.itemType(fields, srcRaw),
		Src:         t.paths.Fix(srcRaw),
		Thumb:       t.paths.Fix(thumbRaw),
		Description: lookupString(fields, "description", ""),
		Tags:        tags,
	}
}

// itemID prefers the explicit id, where a numeric zero still counts, and
// otherwise uses the descriptor file name without its extension.
func (t *Transformer) itemID(fields descriptor.Fields, filename string) string {
	if v, ok := fields["id"]; ok && (truthy(v) || isZeroNumber(v)) {
		return stringify(v)
	}

	return FileStem(filename)
}

// itemType uses the explicit type verbatim, else infers it from the source
// extension.
// NOTE: references matching neither pattern default to video, including
// images with unlisted extensions such as .svg or .bmp.
func (t *Transformer) itemType(fields descriptor.Fields, srcRaw string) string {
	if explicit, ok := lookup(fields, "type"); ok {
		return stringify(explicit)
	}

	switch {
	case t.imagePattern.MatchString(srcRaw):
		return models.TypeImage
	case t.videoPattern.MatchString(srcRaw):
		return models.TypeVideo
	default:
		return models.TypeVideo
	}
}

// FileStem returns the base name of filename without its extension.
// Dot files such as ".json" keep their full name.
func FileStem(filename string) string {
	base := filepath.Base(filename)

	stem := strings.TrimSuffix(base, filepath.Ext(base))
	if stem == "" {
		return base
	}

	return stem
}
