package importer

// Importer extracts tables from documents and emits them as aligned markdown
// tables. Each source format contributes a grid of cells (or, for text-like
// sources, pipe-table blocks); rendering and alignment are owned by the
// table package.

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"sort"
	"strings"

	md "github.com/JohannesKaufmann/html-to-markdown"
	"github.com/JohannesKaufmann/html-to-markdown/plugin"

	"github.com/Cortexa-LLC/mcp/src/mdtable/config"
	"github.com/Cortexa-LLC/mcp/src/mdtable/table"
)

// errNoTables is returned when a source parses cleanly but contains no
// table content.
var errNoTables = errors.New("no tables found")

// TableImporter is the surface the tool layer needs; tests inject a mock.
type TableImporter interface {
	FromFile(ctx context.Context, path string) (string, error)
	FromURI(ctx context.Context, uri string) (string, error)
	Info(ctx context.Context) string
}

// tableExts are the file extensions the importer can extract tables from.
var tableExts = map[string]bool{
	".csv":  true,
	".tsv":  true,
	".xlsx": true,
	".xls":  true,
	".html": true,
	".htm":  true,
	".docx": true,
	".pdf":  true,
	".md":   true,
	".txt":  true,
}

// Importer extracts tables from local files and URLs.
type Importer struct {
	htmlConverter *md.Converter
	cfg           *config.Config
	align         table.Alignment
}

// New creates an Importer using environment-driven config.
func New() *Importer {
	conv := md.NewConverter("", true, nil)
	conv.Use(plugin.Table())
	cfg := config.Load()
	return &Importer{
		htmlConverter: conv,
		cfg:           cfg,
		align:         table.ParseAlignment(cfg.DefaultAlignment, table.Center),
	}
}

// CanImport reports whether the file extension is supported.
func (im *Importer) CanImport(path string) bool {
	return tableExts[strings.ToLower(filepath.Ext(path))]
}

// SupportedFormats returns supported extensions without the leading dot.
func (im *Importer) SupportedFormats() []string {
	out := make([]string, 0, len(tableExts))
	for ext := range tableExts {
		out = append(out, strings.TrimPrefix(ext, "."))
	}
	return out
}

// FromFile extracts tables from a local file.
func (im *Importer) FromFile(_ context.Context, path string) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", fmt.Errorf("file not found: %s", path)
	}
	if info.Size() > im.cfg.MaxFileSizeBytes {
		return "", fmt.Errorf("file too large: %d bytes (max %d)", info.Size(), im.cfg.MaxFileSizeBytes)
	}

	ext := strings.ToLower(filepath.Ext(path))
	if !tableExts[ext] {
		return "", fmt.Errorf("unsupported format: %s", path)
	}

	switch ext {
	case ".xlsx", ".xls":
		return im.importXLSX(path)
	case ".docx":
		return im.importDOCX(path)
	case ".pdf":
		return importPDF(path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read file: %w", err)
	}

	switch ext {
	case ".csv":
		return im.importCSV(data, ',')
	case ".tsv":
		return im.importCSV(data, '\t')
	case ".html", ".htm":
		return im.importHTML(string(data))
	default: // .md, .txt
		return importText(string(data))
	}
}

// FromURI extracts tables from a file://, http://, or https:// URI. A bare
// local path is accepted as a convenience.
func (im *Importer) FromURI(ctx context.Context, uri string) (string, error) {
	u, err := url.Parse(uri)
	if err != nil {
		return "", fmt.Errorf("invalid URI: %s", uri)
	}

	switch u.Scheme {
	case "":
		return im.FromFile(ctx, uri)
	case "file":
		return im.FromFile(ctx, u.Path)
	case "http", "https":
		return im.fromURL(uri)
	default:
		return "", fmt.Errorf("unsupported URI scheme: %q (expected file, http, or https)", u.Scheme)
	}
}

// fromURL fetches an HTTP/HTTPS URL and extracts tables from the response
// body based on its Content-Type.
func (im *Importer) fromURL(url string) (string, error) {
	resp, err := http.Get(url) //nolint:noctx
	if err != nil {
		return "", fmt.Errorf("fetch %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return "", fmt.Errorf("HTTP %d fetching %s", resp.StatusCode, url)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}

	ct := resp.Header.Get("Content-Type")
	switch {
	case strings.Contains(ct, "text/csv"):
		return im.importCSV(body, ',')
	case strings.Contains(ct, "text/html"), ct == "":
		return im.importHTML(string(body))
	default:
		// Plain text / markdown served over HTTP.
		return importText(string(body))
	}
}

// Info returns a markdown summary of supported formats and configuration.
func (im *Importer) Info(_ context.Context) string {
	fmts := im.SupportedFormats()
	sort.Strings(fmts)

	return fmt.Sprintf(`# mdtable Import Info

## Supported Formats
%s

## Configuration
- Max file size: %d MB
- Default alignment: %s`,
		"- "+strings.Join(fmts, "\n- "),
		im.cfg.MaxFileSizeMB(),
		im.cfg.DefaultAlignment,
	)
}
