package descriptor

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"path/filepath"
	"slices"
	"strings"

	"github.com/adrg/frontmatter"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Format names the decoder that produced a field map.
type Format string

// Supported descriptor formats.
const (
	FormatJSON        Format = "json"
	FormatFrontMatter Format = "frontmatter"
	FormatYAML        Format = "yaml"
	FormatTOML        Format = "toml"
	FormatKeyValue    Format = "keyvalue"
)

// Decoding errors.
var (
	ErrNotMapping   = errors.New("document is not a mapping")
	ErrTrailingData = errors.New("unexpected data after document")
	ErrEmptyMapping = errors.New("document has no fields")
)

type structuredDecoder struct {
	format  Format
	applies func(ext string) bool
	decode  func(content []byte) (Fields, error)
}

var structuredDecoders = []structuredDecoder{
	{format: FormatJSON, applies: anyExt, decode: decodeJSON},
	{format: FormatFrontMatter, applies: extIn(".md", ".markdown"), decode: decodeFrontMatter},
	{format: FormatYAML, applies: extIn(".yaml", ".yml"), decode: decodeYAML},
	{format: FormatTOML, applies: extIn(".toml"), decode: decodeTOML},
}

// Decode parses descriptor content. Every file is tried as a JSON object first,
// then with the structured decoder matching its extension, and finally with
// the key-value parser, which never fails.
func Decode(name string, content []byte) (Fields, Format) {
	fields, format, err := DecodeStructured(name, content)
	if err == nil {
		return fields, format
	}

	return ParseKeyValue(string(content)), FormatKeyValue
}

// DecodeStructured runs only the structured decoders and returns the last error
// when none of them yields a mapping.
func DecodeStructured(name string, content []byte) (Fields, Format, error) {
	ext := strings.ToLower(filepath.Ext(name))

	var lastErr error

	for _, d := range structuredDecoders {
		if !d.applies(ext) {
			continue
		}

		fields, err := d.decode(content)
		if err == nil {
			return fields, d.format, nil
		}

		lastErr = err
	}

	return nil, "", lastErr
}

func decodeJSON(content []byte) (Fields, error) {
	dec := json.NewDecoder(bytes.NewReader(content))
	dec.UseNumber()

	var doc any
	if err := dec.Decode(&doc); err != nil {
		return nil, err
	}

	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, ErrTrailingData
	}

	m, ok := doc.(map[string]any)
	if !ok {
		return nil, ErrNotMapping
	}

	return Fields(m), nil
}

func decodeFrontMatter(content []byte) (Fields, error) {
	var m map[string]any

	body, err := frontmatter.MustParse(bytes.NewReader(content), &m)
	if err != nil {
		return nil, err
	}

	if len(m) == 0 {
		return nil, ErrEmptyMapping
	}

	// key: value lines in the body still count; the front matter wins on conflicts.
	for key, value := range ParseKeyValue(string(body)) {
		if _, ok := m[key]; !ok {
			m[key] = value
		}
	}

	return Fields(m), nil
}

func decodeYAML(content []byte) (Fields, error) {
	var m map[string]any
	if err := yaml.Unmarshal(content, &m); err != nil {
		return nil, err
	}

	if m == nil {
		return nil, ErrNotMapping
	}

	return Fields(m), nil
}

func decodeTOML(content []byte) (Fields, error) {
	var m map[string]any
	if err := toml.Unmarshal(content, &m); err != nil {
		return nil, err
	}

	if len(m) == 0 {
		return nil, ErrEmptyMapping
	}

	return Fields(m), nil
}

func anyExt(string) bool { return true }

func extIn(exts ...string) func(string) bool {
	return func(ext string) bool {
		return slices.Contains(exts, ext)
	}
}
