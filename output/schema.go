package output

import (
	"encoding/json"
	"io"

	"github.com/olekukonko/tablewriter"

	"github.com/spatialq/spatialq/reader"
)

// SchemaTableFormatter renders dataset schemas as an aligned table
type SchemaTableFormatter struct {
	writer io.Writer
}

// NewSchemaTableFormatter creates a new schema table formatter
func NewSchemaTableFormatter(w io.Writer) *SchemaTableFormatter {
	return &SchemaTableFormatter{writer: w}
}

// SetOutput sets the output writer
func (s *SchemaTableFormatter) SetOutput(w io.Writer) {
	s.writer = w
}

// Format writes the schema columns as a table
func (s *SchemaTableFormatter) Format(infos []reader.SchemaInfo) error {
	table := tablewriter.NewWriter(s.writer)
	table.SetHeader([]string{"Column", "Type", "Physical", "Logical", "Repetition"})

	for _, info := range infos {
		table.Append([]string{
			info.Name,
			info.Type,
			info.PhysicalType,
			info.LogicalType,
			repetition(info),
		})
	}

	table.Render()
	return nil
}

// SchemaJSONFormatter renders dataset schemas as JSON
type SchemaJSONFormatter struct {
	writer io.Writer
}

// NewSchemaJSONFormatter creates a new schema JSON formatter
func NewSchemaJSONFormatter(w io.Writer) *SchemaJSONFormatter {
	return &SchemaJSONFormatter{writer: w}
}

// SetOutput sets the output writer
func (s *SchemaJSONFormatter) SetOutput(w io.Writer) {
	s.writer = w
}

// Format writes the schema columns as an indented JSON array
func (s *SchemaJSONFormatter) Format(infos []reader.SchemaInfo) error {
	encoder := json.NewEncoder(s.writer)
	encoder.SetIndent("", "  ")
	return encoder.Encode(infos)
}

// repetition summarizes the repetition level of a column.
func repetition(info reader.SchemaInfo) string {
	switch {
	case info.Repeated:
		return "REPEATED"
	case info.Optional:
		return "OPTIONAL"
	case info.Required:
		return "REQUIRED"
	default:
		return "UNKNOWN"
	}
}
