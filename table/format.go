package table

// format.go — markdown table formatter: parse a pipe-delimited table,
// validate column consistency, infer per-column alignment from the separator
// row, and re-emit the table with every column padded to a uniform width.
//
// Alignment shapes only the separator row. Header and data cells are always
// center-padded, whatever the column's alignment markers say.

import (
	"io"
	"log"
	"os"
	"strings"
)

// diag receives structural diagnostics. The only failure mode is a table
// whose rows disagree on column count; formatting itself never fails.
var diag = log.New(os.Stderr, "mdtable: ", 0)

// SetDiagnostics redirects diagnostic output. Pass io.Discard to silence it.
func SetDiagnostics(w io.Writer) { diag.SetOutput(w) }

// Format re-renders a markdown table so every cell in a column is padded to
// the width of the column's widest cell (the separator row's own text
// counts). The separator row is rebuilt from the inferred alignment rather
// than copied. Rows are joined with newlines and no trailing newline is
// appended.
//
// Inputs with fewer than two lines have nothing to format and come back
// unchanged. Structurally invalid input (rows with differing cell counts)
// also comes back unchanged, with a diagnostic logged; callers that care can
// compare the result against the input.
func Format(markdown string) string {
	lines := strings.Split(strings.TrimSpace(markdown), "\n")
	if len(lines) < 2 {
		return markdown
	}

	rows := make([][]string, len(lines))
	for i, line := range lines {
		rows[i] = splitRow(line)
	}

	cols := len(rows[0])
	for _, row := range rows {
		if len(row) != cols {
			diag.Printf("format: inconsistent column counts (%d vs %d), leaving table untouched", len(row), cols)
			return markdown
		}
	}

	aligns := make([]Alignment, cols)
	for i, cell := range rows[1] {
		aligns[i] = classifySeparator(cell)
	}

	widths := make([]int, cols)
	for _, row := range rows {
		for i, cell := range row {
			if len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	out := make([]string, len(rows))
	for r, row := range rows {
		cells := make([]string, cols)
		if r == 1 {
			for i := range cells {
				cells[i] = marker(aligns[i], widths[i])
			}
		} else {
			for i, cell := range row {
				cells[i] = padCenter(cell, widths[i])
			}
		}
		out[r] = "| " + strings.Join(cells, " | ") + " |"
	}
	return strings.Join(out, "\n")
}

// splitRow splits one table line into trimmed cells. The empty leading and
// trailing cells produced by framing pipes are dropped, so "|a|b|" and "a|b"
// normalize to the same cell list.
func splitRow(line string) []string {
	cells := strings.Split(strings.TrimSpace(line), "|")
	if len(cells) > 0 && cells[0] == "" {
		cells = cells[1:]
	}
	if n := len(cells); n > 0 && cells[n-1] == "" {
		cells = cells[:n-1]
	}
	for i, c := range cells {
		cells[i] = strings.TrimSpace(c)
	}
	return cells
}

// padCenter pads s to width with spaces, favoring the right side when the
// padding is odd.
func padCenter(s string, width int) string {
	pad := width - len(s)
	if pad <= 0 {
		return s
	}
	left := pad / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", pad-left)
}
