// Package output provides formatters for command output: the CSV report
// contract plus tab-separated, JSON, YAML, and human-readable table
// renderings of the same rows.
package output

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/mattn/go-isatty"
	"github.com/olekukonko/tablewriter"
)

// Format types for output.
type Format string

const (
	// FormatCSV represents comma-separated output, the report contract.
	FormatCSV Format = "csv"
	// FormatTSV represents tab-separated output.
	FormatTSV Format = "tsv"
	// FormatJSON represents JSON output.
	FormatJSON Format = "json"
	// FormatYAML represents YAML output.
	FormatYAML Format = "yaml"
	// FormatTable represents human-readable table output.
	FormatTable Format = "table"
)

// Data is tabular data plus the raw value it was derived from. Delimited
// and table formatters render Headers/Rows; JSON and YAML marshal Raw.
type Data struct {
	Headers []string
	Rows    [][]string
	Raw     any
}

// Formatter renders Data to a writer in one format.
type Formatter interface {
	Format(w io.Writer, data Data) error
}

// NewFormatter creates the appropriate formatter for the format.
func NewFormatter(format Format) Formatter {
	switch format {
	case FormatTSV:
		return &DelimitedFormatter{Comma: '\t'}
	case FormatJSON:
		return &JSONFormatter{Indent: "  "}
	case FormatYAML:
		return &YAMLFormatter{}
	case FormatTable:
		return &TableFormatter{}
	default:
		return &DelimitedFormatter{Comma: ','}
	}
}

// ParseFormat converts a string to a Format with validation. The empty
// string parses to FormatCSV, the report default.
func ParseFormat(s string) (Format, error) {
	format := Format(strings.ToLower(s))
	switch format {
	case "":
		return FormatCSV, nil
	case FormatCSV, FormatTSV, FormatJSON, FormatYAML, FormatTable:
		return format, nil
	default:
		return "", fmt.Errorf("invalid format %q: must be one of: csv, tsv, json, yaml, table", s)
	}
}

// DetectFormat auto-detects a format for stdout display. Terminals get a
// table; pipes and redirects get CSV.
func DetectFormat(explicitFormat string) Format {
	if explicitFormat != "" {
		return Format(strings.ToLower(explicitFormat))
	}
	if isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		return FormatTable
	}
	return FormatCSV
}

// DelimitedFormatter outputs header + rows with a configurable separator.
type DelimitedFormatter struct {
	Comma rune
}

// Format implements the Formatter interface for delimited output.
func (f *DelimitedFormatter) Format(w io.Writer, data Data) error {
	writer := csv.NewWriter(w)
	if f.Comma != 0 {
		writer.Comma = f.Comma
	}
	if len(data.Headers) > 0 {
		if err := writer.Write(data.Headers); err != nil {
			return err
		}
	}
	for _, row := range data.Rows {
		if err := writer.Write(row); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

// JSONFormatter outputs JSON format.
type JSONFormatter struct {
	Indent string
}

// Format implements the Formatter interface for JSON output.
func (f *JSONFormatter) Format(w io.Writer, data Data) error {
	encoder := json.NewEncoder(w)
	if f.Indent != "" {
		encoder.SetIndent("", f.Indent)
	}
	return encoder.Encode(data.Raw)
}

// YAMLFormatter outputs YAML format.
type YAMLFormatter struct{}

// Format implements the Formatter interface for YAML output.
func (f *YAMLFormatter) Format(w io.Writer, data Data) error {
	yamlData, err := yaml.MarshalWithOptions(data.Raw,
		yaml.Indent(2),
		yaml.IndentSequence(false),
	)
	if err != nil {
		return err
	}
	_, err = w.Write(yamlData)
	return err
}

// TableFormatter outputs human-readable table format.
type TableFormatter struct{}

// Format implements the Formatter interface for table output.
func (f *TableFormatter) Format(w io.Writer, data Data) error {
	table := tablewriter.NewTable(w)

	if len(data.Headers) > 0 {
		headers := make([]any, len(data.Headers))
		for i, h := range data.Headers {
			headers[i] = h
		}
		table.Header(headers...)
	}

	for _, row := range data.Rows {
		rowData := make([]any, len(row))
		for i, cell := range row {
			rowData[i] = cell
		}
		if err := table.Append(rowData...); err != nil {
			return err
		}
	}

	return table.Render()
}
