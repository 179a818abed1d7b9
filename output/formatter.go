// Package output provides formatters for rendering logical plans and
// dataset schemas.
//
// Currently supported formats:
//   - text: indented plan tree (EXPLAIN style)
//   - json: plan tree as nested JSON objects
//   - table: schema columns as an aligned table
package output

import (
	"io"

	"github.com/spatialq/spatialq/plan"
)

// PlanFormatter defines the interface for plan output formatters.
//
// Implementers must provide Format to render a plan tree and SetOutput
// to change the output destination.
type PlanFormatter interface {
	// Format writes the plan in the formatter's specific format
	Format(p plan.LogicalPlan) error

	// SetOutput changes the output writer
	SetOutput(w io.Writer)
}

// TextFormatter renders plans as an indented tree
type TextFormatter struct {
	writer io.Writer
}

// NewTextFormatter creates a new tree-text formatter
func NewTextFormatter(w io.Writer) *TextFormatter {
	return &TextFormatter{writer: w}
}

// SetOutput sets the output writer
func (t *TextFormatter) SetOutput(w io.Writer) {
	t.writer = w
}

// Format writes the plan as an indented tree, one node per line
func (t *TextFormatter) Format(p plan.LogicalPlan) error {
	_, err := io.WriteString(t.writer, plan.Format(p))
	return err
}
