package importer

// XLSX/XLS → markdown tables using the excelize library. Each non-empty
// sheet becomes a level-2 heading followed by its cell grid.

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/Cortexa-LLC/mcp/src/mdtable/table"
)

const sheetHeading = "## " // markdown heading level for each sheet name

func (im *Importer) importXLSX(path string) (string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return "", fmt.Errorf("open xlsx %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	var sb strings.Builder
	for _, sheet := range f.GetSheetList() {
		rows, err := f.GetRows(sheet)
		if err != nil {
			return "", fmt.Errorf("read sheet %q in %s: %w", sheet, path, err)
		}
		if len(rows) == 0 {
			continue
		}
		sb.WriteString(sheetHeading + sheet + "\n\n")
		sb.WriteString(table.RenderGrid(rows, im.align))
		sb.WriteByte('\n')
	}

	if sb.Len() == 0 {
		return "", errNoTables
	}
	return sb.String(), nil
}
