// Package tablefmt renders pipe-delimited text tables with display-width
// aligned columns.
package tablefmt

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Render returns a table with a header row, a dash separator, and one line
// per data row. Column widths are computed from display width, so wide
// runes align correctly.
func Render(headers []string, rows [][]string) string {
	colCount := len(headers)
	for _, row := range rows {
		if len(row) > colCount {
			colCount = len(row)
		}
	}

	if colCount == 0 {
		return ""
	}

	colWidths := make([]int, colCount)

	measure := func(row []string) {
		for i := 0; i < len(row) && i < colCount; i++ {
			width := runewidth.StringWidth(row[i])
			if width > colWidths[i] {
				colWidths[i] = width
			}
		}
	}

	measure(headers)
	for _, row := range rows {
		measure(row)
	}

	// Minimum width keeps the separator row legible.
	for i := range colWidths {
		if colWidths[i] < 3 {
			colWidths[i] = 3
		}
	}

	var sb strings.Builder

	writeRow := func(row []string) {
		sb.WriteString("|")

		for j := 0; j < colCount; j++ {
			sb.WriteString(" ")

			content := ""
			if j < len(row) {
				content = row[j]
			}

			sb.WriteString(content)

			padding := colWidths[j] - runewidth.StringWidth(content)
			if padding > 0 {
				sb.WriteString(strings.Repeat(" ", padding))
			}

			sb.WriteString(" |")
		}

		sb.WriteString("\n")
	}

	writeRow(headers)

	sb.WriteString("|")
	for j := 0; j < colCount; j++ {
		sb.WriteString(" ")
		sb.WriteString(strings.Repeat("-", colWidths[j]))
		sb.WriteString(" |")
	}
	sb.WriteString("\n")

	for _, row := range rows {
		writeRow(row)
	}

	return sb.String()
}
