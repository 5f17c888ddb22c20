// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/classdoc

package classdoc

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

const tableColumnSeparator = "|"

// tableFormatter aligns pipe-delimited markdown tables.
type tableFormatter struct {
	pretty bool
}

// normalizeColumns pads every column of rows to its widest cell.
//
// A row may hold several physical lines separated by "\n"; each physical line
// is aligned against the same columns. The column count comes from the first
// physical line of the first row. Without pretty printing rows are returned as is.
func (f tableFormatter) normalizeColumns(rows []string) []string {
	if !f.pretty || len(rows) == 0 {
		return rows
	}

	firstLine, _, _ := strings.Cut(rows[0], "\n")
	columns := strings.Count(firstLine, tableColumnSeparator)
	if columns == 0 {
		return rows
	}

	widths := make([]int, columns)
	for _, row := range rows {
		for _, line := range strings.Split(row, "\n") {
			cells, _ := splitTableLine(line)
			for col, cell := range cells {
				if width := runewidth.StringWidth(cell); width > widths[col%columns] {
					widths[col%columns] = width
				}
			}
		}
	}

	out := make([]string, len(rows))
	for i, row := range rows {
		lines := strings.Split(row, "\n")
		for j, line := range lines {
			lines[j] = padTableLine(line, widths)
		}

		out[i] = strings.Join(lines, "\n")
	}

	return out
}

// splitTableLine returns text preceding every separator and the text after the last one.
func splitTableLine(line string) ([]string, string) {
	parts := strings.Split(line, tableColumnSeparator)
	return parts[:len(parts)-1], parts[len(parts)-1]
}

// padTableLine rebuilds one physical table line with padded cells.
func padTableLine(line string, widths []int) string {
	cells, rest := splitTableLine(line)
	if len(cells) == 0 {
		return line
	}

	var out strings.Builder
	out.Grow(len(line) + len(widths)*2)
	for col, cell := range cells {
		out.WriteString(cell)
		if pad := widths[col%len(widths)] - runewidth.StringWidth(cell); pad > 0 {
			out.WriteString(strings.Repeat(" ", pad))
		}

		out.WriteString(tableColumnSeparator)
	}

	out.WriteString(rest)
	return out.String()
}
