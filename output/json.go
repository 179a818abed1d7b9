package output

import (
	"encoding/json"
	"io"

	"github.com/spatialq/spatialq/plan"
)

// JSONFormatter outputs plans as nested JSON objects
type JSONFormatter struct {
	writer io.Writer
}

// NewJSONFormatter creates a new JSON plan formatter
func NewJSONFormatter(w io.Writer) *JSONFormatter {
	return &JSONFormatter{writer: w}
}

// SetOutput sets the output writer
func (j *JSONFormatter) SetOutput(w io.Writer) {
	j.writer = w
}

// planNode is the JSON shape of a single plan node.
type planNode struct {
	Operator string        `json:"operator"`
	Schema   []plan.Column `json:"schema,omitempty"`
	Children []planNode    `json:"children,omitempty"`
}

// Format writes the plan as an indented JSON tree
func (j *JSONFormatter) Format(p plan.LogicalPlan) error {
	encoder := json.NewEncoder(j.writer)
	encoder.SetIndent("", "  ")
	return encoder.Encode(toPlanNode(p))
}

func toPlanNode(p plan.LogicalPlan) planNode {
	node := planNode{Operator: p.String()}
	if schema := p.Schema(); schema != nil {
		node.Schema = schema.Columns
	}
	for _, child := range p.Children() {
		node.Children = append(node.Children, toPlanNode(child))
	}
	return node
}
