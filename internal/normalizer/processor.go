// Package normalizer turns decoded descriptors into canonical manifest items.
package normalizer

import (
	"fmt"

	"mediamanifest/internal/descriptor"
	"mediamanifest/internal/models"
)

// Processor decodes, normalizes and optionally validates one descriptor file.
type Processor struct {
	validator   *Validator
	transformer *Transformer
	strict      bool
}

// NewProcessor creates a new processor instance. In strict mode, descriptors
// that decode to nothing and items the gallery cannot render are rejected.
func NewProcessor(assets Assets, strict bool) *Processor {
	return &Processor{
		validator:   NewValidator(),
		transformer: NewTransformer(assets),
		strict:      strict,
	}
}

// Strict reports whether the processor validates items.
func (p *Processor) Strict() bool {
	return p.strict
}

// Process transforms raw descriptor content into a manifest item.
func (p *Processor) Process(name string, content []byte) (models.Item, descriptor.Format, error) {
	// 1. Decode, structured formats first
	fields, format := descriptor.Decode(name, content)

	if p.strict {
		if err := p.validator.ValidateFields(fields); err != nil {
			return models.Item{}, format, fmt.Errorf("validation failed: %w", err)
		}
	}

	// 2. Transform the fields
	item := p.transformer.Transform(fields, name)

	if p.strict {
		if err := p.validator.Validate(item); err != nil {
			return models.Item{}, format, fmt.Errorf("validation failed: %w", err)
		}
	}

	return item, format, nil
}
