package importer

// PDF table import: extract the embedded text layer page by page, then pick
// out pipe-table blocks. Scanned (image-only) PDFs have no text layer and
// yield nothing.

import (
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
)

func importPDF(path string) (string, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("open pdf %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	fonts := make(map[string]*pdf.Font)
	var pages []string

	for i := 1; i <= r.NumPage(); i++ {
		p := r.Page(i)
		if p.V.IsNull() {
			continue
		}

		for _, name := range p.Fonts() {
			if _, ok := fonts[name]; !ok {
				f2 := p.Font(name)
				fonts[name] = &f2
			}
		}

		text, pageErr := p.GetPlainText(fonts)
		if pageErr != nil {
			return "", fmt.Errorf("read pdf page %d: %w", i, pageErr)
		}
		pages = append(pages, text)
	}

	return importText(strings.Join(pages, "\n"))
}
