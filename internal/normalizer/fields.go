package normalizer

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"mediamanifest/internal/descriptor"
)

// Field aliases, looked up in order. The first present, non-empty value wins.
var fieldAliases = map[string][]string{
	"id":          {"id"},
	"title":       {"title", "name"},
	"src":         {"src", "file", "url"},
	"thumb":       {"thumb", "thumbnail"},
	"tags":        {"tags", "tag"},
	"type":        {"type"},
	"description": {"description", "desc"},
}

// lookup returns the first truthy value among the aliases of field.
func lookup(fields descriptor.Fields, field string) (any, bool) {
	for _, key := range fieldAliases[field] {
		if v, ok := fields[key]; ok && truthy(v) {
			return v, true
		}
	}

	return nil, false
}

// lookupString is lookup followed by stringify, with def for absent fields.
func lookupString(fields descriptor.Fields, field, def string) string {
	if v, ok := lookup(fields, field); ok {
		return stringify(v)
	}

	return def
}

// truthy treats empty strings, false, nil and numeric zero as absent.
// Lists and maps count as present even when empty.
func truthy(v any) bool {
	switch x := v.(type) {
	case nil:
		return false
	case string:
		return x != ""
	case bool:
		return x
	}

	if f, ok := number(v); ok {
		return f != 0 && !math.IsNaN(f)
	}

	return true
}

// isZeroNumber reports whether v is a number equal to zero.
func isZeroNumber(v any) bool {
	f, ok := number(v)

	return ok && f == 0
}

func number(v any) (float64, bool) {
	switch x := v.(type) {
	case json.Number:
		// Out-of-range literals come back as ±Inf or zero with ErrRange.
		f, err := x.Float64()

		return f, err == nil || errors.Is(err, strconv.ErrRange)
	case int:
		return float64(x), true
	case int8:
		return float64(x), true
	case int16:
		return float64(x), true
	case int32:
		return float64(x), true
	case int64:
		return float64(x), true
	case uint:
		return float64(x), true
	case uint8:
		return float64(x), true
	case uint16:
		return float64(x), true
	case uint32:
		return float64(x), true
	case uint64:
		return float64(x), true
	case float32:
		return float64(x), true
	case float64:
		return x, true
	}

	return 0, false
}

// stringify renders a decoded value as manifest text.
// Numbers use their shortest decimal form and lists are comma-joined.
func stringify(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case bool:
		return strconv.FormatBool(x)
	case []string:
		return strings.Join(x, ",")
	case []any:
		parts := make([]string, len(x))
		for i, el := range x {
			parts[i] = stringify(el)
		}

		return strings.Join(parts, ",")
	case map[string]any:
		data, err := json.Marshal(x)
		if err != nil {
			return fmt.Sprint(x)
		}

		return string(data)
	}

	if f, ok := number(v); ok {
		return formatNumber(f)
	}

	return fmt.Sprint(v)
}

func formatNumber(f float64) string {
	switch {
	case f == 0:
		return "0"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	}

	abs := math.Abs(f)
	if abs >= 1e-6 && abs < 1e21 {
		return strconv.FormatFloat(f, 'f', -1, 64)
	}

	return strconv.FormatFloat(f, 'g', -1, 64)
}

// stringList converts a tag value into an ordered list.
// Lists are kept as given, other values are split on commas.
func stringList(v any) []string {
	switch x := v.(type) {
	case []string:
		return append([]string{}, x...)
	case []any:
		out := make([]string, len(x))
		for i, el := range x {
			out[i] = stringify(el)
		}

		return out
	}

	return descriptor.SplitList(stringify(v))
}
