package importer

// CSV/TSV → markdown table. The first record is treated as the header row.

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"github.com/Cortexa-LLC/mcp/src/mdtable/table"
)

func (im *Importer) importCSV(data []byte, comma rune) (string, error) {
	r := csv.NewReader(bytes.NewReader(data))
	r.Comma = comma
	r.FieldsPerRecord = -1 // ragged rows are padded by the renderer
	records, err := r.ReadAll()
	if err != nil {
		return "", fmt.Errorf("parse csv: %w", err)
	}
	if len(records) == 0 {
		return "", errNoTables
	}
	return table.RenderGrid(records, im.align), nil
}
