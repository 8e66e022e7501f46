package importer

// Plain-text and markdown sources: find pipe-table blocks and run each
// through the formatter. Surrounding prose is dropped — the importer's
// output is tables, not a document conversion.

import (
	"strings"

	"github.com/Cortexa-LLC/mcp/src/mdtable/table"
)

func importText(text string) (string, error) {
	blocks := extractTableBlocks(text)
	if len(blocks) == 0 {
		return "", errNoTables
	}
	out := make([]string, len(blocks))
	for i, b := range blocks {
		out[i] = table.Format(b)
	}
	return strings.Join(out, "\n\n"), nil
}

// extractTableBlocks groups consecutive pipe-bearing lines into candidate
// table blocks. A block needs at least two lines (header + separator) to
// count.
func extractTableBlocks(text string) []string {
	var blocks []string
	var curr []string

	flush := func() {
		if len(curr) >= 2 {
			blocks = append(blocks, strings.Join(curr, "\n"))
		}
		curr = nil
	}

	for _, line := range strings.Split(text, "\n") {
		if strings.Contains(line, "|") {
			curr = append(curr, strings.TrimSpace(line))
		} else {
			flush()
		}
	}
	flush()

	return blocks
}
