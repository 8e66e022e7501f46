package main

import (
	"context"
	"fmt"
	"log"
	"strconv"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/Cortexa-LLC/mcp/src/mdtable/config"
	"github.com/Cortexa-LLC/mcp/src/mdtable/importer"
	"github.com/Cortexa-LLC/mcp/src/mdtable/table"
)

// Server identity constants.
const (
	serverName    = "mdtable"
	serverVersion = "0.1.0"
)

// MCP tool parameter key constants — shared between schema definitions and
// argument extraction so a typo in one place is caught by the other.
const (
	argRows      = "rows"
	argCols      = "cols"
	argAlignment = "alignment"
	argMarkdown  = "markdown"
	argURI       = "uri"
)

func main() {
	s := server.NewMCPServer(serverName, serverVersion)
	registerTools(s, importer.New(), config.Load())

	if err := server.ServeStdio(s); err != nil {
		log.Fatalf("server error: %v\n", err)
	}
}

// registerTools binds MCP tool definitions to their handlers.
// It accepts the TableImporter interface so tests can inject a mock.
func registerTools(s *server.MCPServer, imp importer.TableImporter, cfg *config.Config) {
	// generate_table — build a blank markdown table
	s.AddTool(
		mcp.NewTool("generate_table",
			mcp.WithDescription("Generate a blank markdown table. "+
				"rows counts the header row, cols is the number of columns; both default to 2. "+
				"alignment applies to every column and is one of left, right, center."),
			mcp.WithNumber(argRows, mcp.Description("Number of rows including the header (default 2)")),
			mcp.WithNumber(argCols, mcp.Description("Number of columns (default 2)")),
			mcp.WithString(argAlignment, mcp.Description("Column alignment: left, right, or center")),
		),
		func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			align := argAsString(req, argAlignment)
			if align == "" {
				align = cfg.DefaultAlignment
			}
			out := table.Generate(argAsString(req, argRows), argAsString(req, argCols), align)
			return mcp.NewToolResultText(out), nil
		},
	)

	// format_table — pad an existing table to uniform column widths
	s.AddTool(
		mcp.NewTool("format_table",
			mcp.WithDescription("Reformat a markdown table so every column is padded to a uniform width. "+
				"Per-column alignment markers in the separator row are preserved. "+
				"Structurally invalid tables are returned unchanged."),
			mcp.WithString(argMarkdown,
				mcp.Required(),
				mcp.Description("The markdown table to reformat"),
			),
		),
		func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			markdown, ok := req.Params.Arguments[argMarkdown].(string)
			if !ok || markdown == "" {
				return mcp.NewToolResultError(argMarkdown + " is required"), nil
			}
			return mcp.NewToolResultText(table.Format(markdown)), nil
		},
	)

	// import_table — extract tables from a file path or URL
	s.AddTool(
		mcp.NewTool("import_table",
			mcp.WithDescription("Extract tables from a file or URL and return them as aligned markdown tables. "+
				"Pass an absolute file path (e.g. /path/to/data.csv) or an http:// / https:// URL. "+
				"Supported formats: CSV, TSV, XLSX, XLS, HTML, HTM, DOCX, PDF, MD, TXT."),
			mcp.WithString(argURI,
				mcp.Required(),
				mcp.Description("Absolute file path or file/http/https URL"),
			),
		),
		func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			uri, ok := req.Params.Arguments[argURI].(string)
			if !ok || uri == "" {
				return mcp.NewToolResultError(argURI + " is required"), nil
			}
			out, err := imp.FromURI(ctx, uri)
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}
			return mcp.NewToolResultText(out), nil
		},
	)

	// get_table_info — list formats and configuration
	s.AddTool(
		mcp.NewTool("get_table_info",
			mcp.WithDescription("Return supported import formats and active configuration."),
		),
		func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return mcp.NewToolResultText(imp.Info(ctx)), nil
		},
	)
}

// argAsString stringifies a loosely-typed tool argument. JSON numbers arrive
// as float64; a missing argument becomes the empty string. Normalization of
// nonsense values is the generator's job, not the transport's.
func argAsString(req mcp.CallToolRequest, key string) string {
	v, ok := req.Params.Arguments[key]
	if !ok || v == nil {
		return ""
	}
	switch t := v.(type) {
	case string:
		return t
	case float64:
		if t == float64(int64(t)) {
			return strconv.FormatInt(int64(t), 10)
		}
		return fmt.Sprintf("%v", t)
	default:
		return fmt.Sprintf("%v", t)
	}
}
