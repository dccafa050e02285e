package manifest

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"mediamanifest/internal/models"
)

// Marshal renders items as a two-space indented JSON array.
// HTML characters are left unescaped and there is no trailing newline.
func Marshal(items models.Manifest) ([]byte, error) {
	if items == nil {
		items = models.Manifest{}
	}

	var buf bytes.Buffer

	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")

	if err := enc.Encode(items); err != nil {
		return nil, fmt.Errorf("failed to marshal manifest: %w", err)
	}

	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// EnsureDir creates the directory that will hold the manifest file.
func EnsureDir(outputPath string) error {
	if err := os.MkdirAll(filepath.Dir(outputPath), 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	return nil
}

// Write marshals items and replaces the file at outputPath.
func Write(outputPath string, items models.Manifest) error {
	data, err := Marshal(items)
	if err != nil {
		return err
	}

	if err := os.WriteFile(outputPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write manifest: %w", err)
	}

	return nil
}
