package manifest

import (
	"cmp"
	"errors"
	"math"
	"slices"
	"strconv"
	"strings"

	"mediamanifest/internal/models"
)

// SortItems orders items by id in place. Two numeric ids compare by value,
// anything else compares byte-wise, so "2" sorts before "10" and "Zebra"
// before "apple". The sort is stable.
func SortItems(items []models.Item) {
	slices.SortStableFunc(items, func(a, b models.Item) int {
		return CompareIDs(a.ID, b.ID)
	})
}

// CompareIDs compares two ids the way SortItems orders them.
func CompareIDs(a, b string) int {
	na, okA := numericID(a)
	nb, okB := numericID(b)

	if okA && okB {
		return cmp.Compare(na, nb)
	}

	return strings.Compare(a, b)
}

// numericID parses an id as a number. Surrounding whitespace is ignored,
// a blank id counts as zero, and 0x/0o/0b prefixes select the base.
func numericID(id string) (float64, bool) {
	s := strings.TrimSpace(id)
	if s == "" {
		return 0, true
	}

	if base := prefixBase(s); base != 0 {
		n, err := strconv.ParseUint(s[2:], base, 64)

		return float64(n), err == nil
	}

	switch s {
	case "Infinity", "+Infinity":
		return math.Inf(1), true
	case "-Infinity":
		return math.Inf(-1), true
	}

	// ParseFloat also accepts spellings like "inf", "NaN" and "1_000" that are
	// not ids anyone means as numbers.
	lower := strings.ToLower(s)
	if strings.Contains(lower, "inf") || strings.Contains(lower, "nan") || strings.Contains(s, "_") {
		return 0, false
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, false
	}

	return f, true
}

func prefixBase(s string) int {
	if len(s) < 3 || s[0] != '0' {
		return 0
	}

	switch s[1] {
	case 'x', 'X':
		return 16
	case 'o', 'O':
		return 8
	case 'b', 'B':
		return 2
	}

	return 0
}
