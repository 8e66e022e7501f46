package importer

// HTML sources go through html-to-markdown with the table plugin so <table>
// elements become pipe tables, then the result is mined for table blocks.

import "fmt"

func (im *Importer) importHTML(html string) (string, error) {
	markdown, err := im.htmlConverter.ConvertString(html)
	if err != nil {
		return "", fmt.Errorf("convert html: %w", err)
	}
	return importText(markdown)
}
