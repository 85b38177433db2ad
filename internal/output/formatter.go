// Package output renders books, statistics and reports as tables, JSON or YAML.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
	"gopkg.in/yaml.v3"

	"github.com/mesh-intelligence/shelf/internal/logging"
	"github.com/mesh-intelligence/shelf/pkg/types"
)

// Format types for output.
type Format string

const (
	// FormatTable renders aligned tables for people.
	FormatTable Format = "table"
	// FormatJSON renders indented JSON.
	FormatJSON Format = "json"
	// FormatYAML renders YAML.
	FormatYAML Format = "yaml"
)

// Formatter writes data in one output format.
type Formatter interface {
	Format(w io.Writer, data any) error
}

// NewFormatter creates the formatter for format. Unknown formats get a table.
func NewFormatter(format Format) Formatter {
	switch format {
	case FormatJSON:
		return &JSONFormatter{Indent: "  "}
	case FormatYAML:
		return &YAMLFormatter{}
	default:
		return &TableFormatter{}
	}
}

// ParseFormat validates a format name. The empty string is accepted and
// means auto-detect.
func ParseFormat(s string) (Format, error) {
	format := Format(strings.ToLower(strings.TrimSpace(s)))
	switch format {
	case FormatTable, FormatJSON, FormatYAML, "":
		return format, nil
	default:
		return "", fmt.Errorf("%w: %q (valid: table, json, yaml)", types.ErrInvalidFormat, s)
	}
}

// DetectFormat returns explicit when set, a table when w is a terminal, and
// JSON for pipes and redirects.
func DetectFormat(explicit Format, w io.Writer) Format {
	if explicit != "" {
		return explicit
	}
	if logging.IsTerminal(w) {
		return FormatTable
	}
	return FormatJSON
}

// JSONFormatter outputs JSON.
type JSONFormatter struct {
	Indent string
}

// Format implements Formatter.
func (f *JSONFormatter) Format(w io.Writer, data any) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if f.Indent != "" {
		enc.SetIndent("", f.Indent)
	}
	return enc.Encode(data)
}

// YAMLFormatter outputs YAML.
type YAMLFormatter struct{}

// Format implements Formatter.
func (f *YAMLFormatter) Format(w io.Writer, data any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(data); err != nil {
		return err
	}
	return enc.Close()
}

// TableFormatter outputs aligned tables.
type TableFormatter struct{}

// Format implements Formatter. Books, book slices, stats and reports are
// converted to tables; anything else falls back to JSON.
func (f *TableFormatter) Format(w io.Writer, data any) error {
	switch v := data.(type) {
	case Data:
		return renderTable(w, v)
	case []types.Book:
		return renderTable(w, BooksTable(v))
	case types.Catalog:
		return renderTable(w, BooksTable(v))
	case types.Book:
		return renderTable(w, BooksTable([]types.Book{v}))
	case types.Stats:
		return renderTable(w, StatsTable(v))
	case *types.Report:
		return renderReport(w, v)
	default:
		return (&JSONFormatter{Indent: "  "}).Format(w, data)
	}
}

func renderTable(w io.Writer, data Data) error {
	config := tablewriter.Config{}
	if len(data.ColumnAlignment) > 0 {
		align := make([]tw.Align, len(data.ColumnAlignment))
		for i, a := range data.ColumnAlignment {
			switch a {
			case AlignLeft:
				align[i] = tw.AlignLeft
			case AlignRight:
				align[i] = tw.AlignRight
			default:
				align[i] = tw.Skip
			}
		}
		config.Header.Alignment = tw.CellAlignment{PerColumn: align}
		config.Row.Alignment = tw.CellAlignment{PerColumn: align}
	}

	table := tablewriter.NewTable(w, tablewriter.WithConfig(config))
	if len(data.Headers) > 0 {
		headers := make([]any, len(data.Headers))
		for i, h := range data.Headers {
			headers[i] = h
		}
		table.Header(headers...)
	}
	for _, row := range data.Rows {
		cells := make([]any, len(row))
		for i, c := range row {
			cells[i] = c
		}
		if err := table.Append(cells...); err != nil {
			return err
		}
	}
	return table.Render()
}

func renderReport(w io.Writer, r *types.Report) error {
	sections := []struct {
		name string
		data Data
	}{
		{"summary", StatsTable(r.Stats)},
		{"genres", GroupTable("genre", r.Genres)},
		{"decades", GroupTable("decade", r.Decades)},
		{"top authors", GroupTable("author", r.Authors)},
	}
	for i, s := range sections {
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintln(w, Heading(s.name))
		if err := renderTable(w, s.data); err != nil {
			return err
		}
	}
	return nil
}
