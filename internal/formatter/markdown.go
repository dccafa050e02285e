// Package formatter renders manifests as aligned markdown tables.
package formatter

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"mediamanifest/internal/models"
)

// minColumnWidth keeps separator cells at least "---".
const minColumnWidth = 3

var previewHeader = []string{"id", "type", "title", "src", "tags"}

// RenderTable renders items as a markdown table, one row per item, in the
// order given.
func RenderTable(items []models.Item) string {
	table := make([][]string, 0, len(items)+1)
	table = append(table, previewHeader)

	for _, item := range items {
		table = append(table, []string{
			item.ID,
			item.Type,
			item.Title,
			item.Src,
			strings.Join(item.Tags, ", "),
		})
	}

	return strings.Join(FormatTable(table), "\n")
}

// FormatTable pads every cell to its column's display width and inserts a
// separator row after the header. Wide runes such as CJK count as two columns.
func FormatTable(table [][]string) []string {
	if len(table) == 0 {
		return nil
	}

	colCount := 0
	for _, row := range table {
		if len(row) > colCount {
			colCount = len(row)
		}
	}

	// 1. Calculate max widths (using display width)
	colWidths := make([]int, colCount)

	for _, row := range table {
		for i, cell := range row {
			if width := runewidth.StringWidth(escapeCell(cell)); width > colWidths[i] {
				colWidths[i] = width
			}
		}
	}

	for i := range colWidths {
		if colWidths[i] < minColumnWidth {
			colWidths[i] = minColumnWidth
		}
	}

	// 2. Reconstruct lines
	result := make([]string, 0, len(table)+1)

	for i, row := range table {
		result = append(result, formatRow(row, colWidths))

		if i == 0 {
			result = append(result, separatorRow(colWidths))
		}
	}

	return result
}

func formatRow(row []string, colWidths []int) string {
	var sb strings.Builder

	sb.WriteString("|")

	for j, width := range colWidths {
		sb.WriteString(" ")

		content := ""
		if j < len(row) {
			content = escapeCell(row[j])
		}

		sb.WriteString(content)

		// Pad with spaces based on display width
		if padding := width - runewidth.StringWidth(content); padding > 0 {
			sb.WriteString(strings.Repeat(" ", padding))
		}

		sb.WriteString(" |")
	}

	return sb.String()
}

func separatorRow(colWidths []int) string {
	var sb strings.Builder

	sb.WriteString("|")

	for _, width := range colWidths {
		sb.WriteString(" ")
		sb.WriteString(strings.Repeat("-", width))
		sb.WriteString(" |")
	}

	return sb.String()
}

// escapeCell keeps a value on one line and stops pipes from splitting the cell.
func escapeCell(s string) string {
	s = strings.Join(strings.Fields(s), " ")

	return strings.ReplaceAll(s, "|", `\|`)
}
