package importer

// DOCX table extraction. DOCX files are ZIP archives of OOXML; tables live
// in word/document.xml as w:tbl elements. The stream parser tracks only
// table/row/cell context — paragraphs, runs, and everything else in the
// document are skipped.

import (
	"archive/zip"
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	"github.com/Cortexa-LLC/mcp/src/mdtable/table"
)

func (im *Importer) importDOCX(path string) (string, error) {
	zr, err := zip.OpenReader(path)
	if err != nil {
		return "", fmt.Errorf("open docx: %w", err)
	}
	defer zr.Close()

	var docFile *zip.File
	for _, f := range zr.File {
		if f.Name == "word/document.xml" {
			docFile = f
			break
		}
	}
	if docFile == nil {
		return "", fmt.Errorf("word/document.xml not found in %s", path)
	}

	rc, err := docFile.Open()
	if err != nil {
		return "", fmt.Errorf("open document.xml: %w", err)
	}
	defer rc.Close()

	grids, err := extractDocxTables(rc)
	if err != nil {
		return "", err
	}
	if len(grids) == 0 {
		return "", errNoTables
	}

	parts := make([]string, len(grids))
	for i, g := range grids {
		parts[i] = table.RenderGrid(g, im.align)
	}
	return strings.Join(parts, "\n"), nil
}

// docxTableParser accumulates cell grids from w:tbl elements. Nested tables
// (depth > 1) are flattened into the enclosing cell's text.
type docxTableParser struct {
	tables   [][][]string
	depth    int
	rows     [][]string
	currRow  []string
	inCell   bool
	cellText strings.Builder
}

func extractDocxTables(r io.Reader) ([][][]string, error) {
	dec := xml.NewDecoder(r)
	p := &docxTableParser{}

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("parse xml: %w", err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "tbl":
				p.depth++
				if p.depth == 1 {
					p.rows = nil
				}
			case "tr":
				if p.depth == 1 {
					p.currRow = nil
				}
			case "tc":
				if p.depth == 1 {
					p.inCell = true
					p.cellText.Reset()
				}
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "tc":
				if p.depth == 1 && p.inCell {
					p.currRow = append(p.currRow, strings.TrimSpace(p.cellText.String()))
					p.inCell = false
				}
			case "tr":
				if p.depth == 1 && p.currRow != nil {
					p.rows = append(p.rows, p.currRow)
					p.currRow = nil
				}
			case "tbl":
				if p.depth == 1 && len(p.rows) > 0 {
					p.tables = append(p.tables, p.rows)
					p.rows = nil
				}
				p.depth--
			}
		case xml.CharData:
			if p.inCell {
				p.cellText.Write(t)
			}
		}
	}

	return p.tables, nil
}
