// Package manifest assembles descriptor files into the ordered gallery manifest.
package manifest

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"mediamanifest/internal/descriptor"
	"mediamanifest/internal/logger"
	"mediamanifest/internal/models"
	"mediamanifest/internal/normalizer"
)

// DefaultPatterns selects JSON, plain-text and markdown descriptors.
var DefaultPatterns = []string{"*.json", "*.txt", "*.md"}

// Assembly errors.
var (
	ErrMissingOutputPath = errors.New("output path is required")
	ErrUnreadableFile    = errors.New("descriptor file is unreadable")
	ErrEmptyFile         = errors.New("descriptor file is empty")
)

// Options configures an Assembler. Every location is explicit so runs can be
// pointed at any directory.
type Options struct {
	// MetaDir is scanned for descriptor files. A missing directory yields an empty manifest.
	MetaDir string
	// OutputPath is the manifest file written by Run.
	OutputPath string
	// Patterns are globs matched against lowercased file names.
	Patterns []string
	// Processor decodes and normalizes each file. Its strict flag also makes
	// unreadable and empty files fatal.
	Processor *normalizer.Processor
	Logger    *logger.Logger
}

// SkippedFile records a descriptor left out of the manifest in tolerant mode.
type SkippedFile struct {
	Name   string
	Reason string
}

// Result summarizes one run.
type Result struct {
	OutputPath string
	Items      models.Manifest
	Skipped    []SkippedFile
	Formats    map[descriptor.Format]int
}

// Assembler regenerates the manifest from a descriptor directory.
type Assembler struct {
	opts Options
	log  *logger.Logger
}

// NewAssembler creates an assembler, filling in default patterns, processor and logger.
func NewAssembler(opts Options) *Assembler {
	if len(opts.Patterns) == 0 {
		opts.Patterns = DefaultPatterns
	}

	if opts.Processor == nil {
		opts.Processor = normalizer.NewProcessor(normalizer.DefaultAssets(), false)
	}

	log := opts.Logger
	if log == nil {
		log = logger.Discard()
	}

	return &Assembler{opts: opts, log: log}
}

// Run creates the output directory, collects every descriptor and writes the
// sorted manifest. Only setup, strict-mode and write failures are returned.
func (a *Assembler) Run(ctx context.Context) (*Result, error) {
	if a.opts.OutputPath == "" {
		return nil, ErrMissingOutputPath
	}

	if err := EnsureDir(a.opts.OutputPath); err != nil {
		return nil, err
	}

	result, err := a.Collect(ctx)
	if err != nil {
		return nil, err
	}

	if err := Write(a.opts.OutputPath, result.Items); err != nil {
		return nil, err
	}

	result.OutputPath = a.opts.OutputPath

	a.log.Info("manifest written",
		"path", result.OutputPath,
		"items", result.Items.Len(),
		"skipped", len(result.Skipped))

	return result, nil
}

// Collect reads, normalizes and sorts every descriptor without writing anything.
func (a *Assembler) Collect(ctx context.Context) (*Result, error) {
	result := &Result{
		Items:   models.Manifest{},
		Formats: map[descriptor.Format]int{},
	}

	for _, name := range a.descriptorNames() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		fileLog := a.log.With("file", name)

		item, format, err := a.processFile(name)
		if err != nil {
			if a.opts.Processor.Strict() {
				fileLog.Error("descriptor rejected", "reason", err)

				return nil, fmt.Errorf("%s: %w", name, err)
			}

			fileLog.Debug("skipping descriptor", "reason", err)
			result.Skipped = append(result.Skipped, SkippedFile{Name: name, Reason: err.Error()})

			continue
		}

		fileLog.Debug("processed descriptor", "id", item.ID, "format", string(format))
		result.Formats[format]++
		result.Items = append(result.Items, item)
	}

	SortItems(result.Items)

	return result, nil
}

// descriptorNames lists matching files in directory order. A missing or
// unreadable directory is treated as empty.
func (a *Assembler) descriptorNames() []string {
	entries, err := os.ReadDir(a.opts.MetaDir)
	if err != nil {
		a.log.Debug("metadata directory not readable, treating as empty", "dir", a.opts.MetaDir, "error", err)

		return nil
	}

	var names []string

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		if a.matches(entry.Name()) {
			names = append(names, entry.Name())
		}
	}

	return names
}

func (a *Assembler) matches(name string) bool {
	lower := strings.ToLower(name)

	for _, pattern := range a.opts.Patterns {
		if ok, err := doublestar.Match(strings.ToLower(pattern), lower); err == nil && ok {
			return true
		}
	}

	return false
}

func (a *Assembler) processFile(name string) (models.Item, descriptor.Format, error) {
	content, err := os.ReadFile(filepath.Join(a.opts.MetaDir, name))
	if err != nil {
		return models.Item{}, "", fmt.Errorf("%w: %w", ErrUnreadableFile, err)
	}

	if len(content) == 0 {
		return models.Item{}, "", ErrEmptyFile
	}

	return a.opts.Processor.Process(name, content)
}
