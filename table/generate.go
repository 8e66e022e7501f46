package table

// generate.go — blank-table generator. Inputs arrive as free-form strings
// from the tool layer; malformed values are normalized to defaults, never
// rejected.

import (
	"strconv"
	"strings"
)

// defaultCount is used when a row or column count is missing, non-numeric,
// or non-positive.
const defaultCount = 2

// Literal separator markers emitted by the generator. The generator applies
// one alignment to every column; per-column alignment is the formatter's
// domain.
const (
	markerLeft   = ":---"
	markerRight  = "---:"
	markerCenter = ":---:"
)

// Generate builds a blank markdown table. rows counts the header, so the
// output has rows+1 lines: a header row, a separator row, and rows-1 blank
// data rows, each with cols cells and a trailing newline. The alignment
// keyword is matched case-insensitively against left, right, and center;
// anything else means center.
func Generate(rows, cols, alignment string) string {
	nRows := parseCount(rows)
	nCols := parseCount(cols)
	align := ParseAlignment(alignment, Center)

	m := markerCenter
	switch align {
	case Left:
		m = markerLeft
	case Right:
		m = markerRight
	}

	blankRow := "|" + strings.Repeat(" |", nCols) + "\n"

	var sb strings.Builder
	sb.WriteString(blankRow)
	sb.WriteString("|")
	for i := 0; i < nCols; i++ {
		sb.WriteString(" " + m + " |")
	}
	sb.WriteByte('\n')
	for i := 1; i < nRows; i++ {
		sb.WriteString(blankRow)
	}
	return sb.String()
}

func parseCount(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 1 {
		return defaultCount
	}
	return n
}
