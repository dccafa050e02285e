package models

// Manifest is the ordered list of items written for the gallery page.
type Manifest []Item

// Len returns the number of items.
func (m Manifest) Len() int {
	return len(m)
}
