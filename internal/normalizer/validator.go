package normalizer

import (
	"errors"
	"fmt"

	"mediamanifest/internal/descriptor"
	"mediamanifest/internal/models"
)

// Validation errors.
var (
	ErrEmptyDescriptor = errors.New("descriptor contains no fields")
	ErrMissingID       = errors.New("item has an empty id")
	ErrInvalidType     = errors.New("item type must be image or video")
	ErrMissingSource   = errors.New("item has no source path")
)

// Validator checks decoded descriptors and normalized items in strict mode.
type Validator struct{}

// NewValidator creates a new validator instance.
func NewValidator() *Validator {
	return &Validator{}
}

// ValidateFields rejects descriptors that decoded to nothing at all.
func (v *Validator) ValidateFields(fields descriptor.Fields) error {
	if len(fields) == 0 {
		return ErrEmptyDescriptor
	}

	return nil
}

// Validate checks that an item can be rendered by the gallery.
func (v *Validator) Validate(item models.Item) error {
	if item.ID == "" {
		return ErrMissingID
	}

	if !models.IsKnownType(item.Type) {
		return fmt.Errorf("%w: got %q", ErrInvalidType, item.Type)
	}

	if item.Src == "" {
		return ErrMissingSource
	}

	return nil
}
