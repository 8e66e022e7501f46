package table

// render.go — shared grid renderer used by the importers.
//
// Unlike Format, which re-emits an existing pipe table, RenderGrid builds a
// table from raw cell data: pipes inside cells are escaped and every column
// gets at least the minimum legal separator width.

import "strings"

const minColWidth = 3 // narrowest legal separator (---)

// RenderGrid converts a [][]string into an aligned markdown table. The first
// row is the header; short rows are padded with empty cells. Every cell is
// padded to the width of the column's widest cell and the separator row
// carries the given alignment in every column. The result ends with a
// trailing newline.
func RenderGrid(rows [][]string, align Alignment) string {
	if len(rows) == 0 {
		return ""
	}

	maxCols := 0
	for _, row := range rows {
		if len(row) > maxCols {
			maxCols = len(row)
		}
	}
	if maxCols == 0 {
		return ""
	}

	widths := make([]int, maxCols)
	for i := range widths {
		widths[i] = minColWidth
	}
	for _, row := range rows {
		for i, raw := range row {
			if w := len(escapePipes(raw)); w > widths[i] {
				widths[i] = w
			}
		}
	}

	cell := func(row []string, col int) string {
		if col < len(row) {
			return escapePipes(row[col])
		}
		return ""
	}

	var sb strings.Builder
	writeRow := func(row []string) {
		sb.WriteString("|")
		for i := 0; i < maxCols; i++ {
			sb.WriteString(" " + padCenter(cell(row, i), widths[i]) + " |")
		}
		sb.WriteByte('\n')
	}

	writeRow(rows[0])

	sb.WriteString("|")
	for i := 0; i < maxCols; i++ {
		sb.WriteString(" " + marker(align, widths[i]) + " |")
	}
	sb.WriteByte('\n')

	for _, row := range rows[1:] {
		writeRow(row)
	}
	return sb.String()
}

// escapePipes replaces | characters in a cell value so they do not break the
// table syntax.
func escapePipes(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}
