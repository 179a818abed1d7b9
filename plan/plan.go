// Package plan defines logical query plan nodes and the builder that
// turns a parsed SQL AST into a plan tree.
//
// A logical plan is an abstract, not-yet-optimized representation of a
// query as a tree of relational and spatial operators. Plans are built
// once, are immutable afterwards, and are handed to whatever analysis
// or execution layer sits downstream.
package plan

import (
	"fmt"
	"strings"

	"github.com/spatialq/spatialq/sql"
)

// LogicalPlan represents a node in a logical query plan.
type LogicalPlan interface {
	// Children returns the child plans in left-to-right order.
	Children() []LogicalPlan
	// Schema returns the resolved output schema, or nil when no
	// catalog was available to resolve it.
	Schema() *Schema
	// String returns a one-line description used in plan rendering.
	String() string
}

// Schema describes the output columns of a plan node.
type Schema struct {
	Columns []Column
}

// Column describes a single output column.
type Column struct {
	Name     string `json:"name"`
	Type     string `json:"type"`
	Optional bool   `json:"optional"`
}

// JoinType tags the kind of join a Join or SpatialJoin node performs.
type JoinType int

const (
	InnerJoin JoinType = iota
	LeftJoin
	RightJoin
	FullJoin
	CrossJoin
	KNNJoin
)

// String returns the SQL spelling of the join type.
func (t JoinType) String() string {
	switch t {
	case InnerJoin:
		return "INNER"
	case LeftJoin:
		return "LEFT"
	case RightJoin:
		return "RIGHT"
	case FullJoin:
		return "FULL"
	case CrossJoin:
		return "CROSS"
	case KNNJoin:
		return "KNN"
	default:
		return fmt.Sprintf("JoinType(%d)", int(t))
	}
}

// Relation is a leaf node reading a named dataset (a parquet file or
// glob pattern).
type Relation struct {
	Name   string
	Alias  string
	schema *Schema
}

// NewRelation creates a relation node. schema may be nil when the
// relation could not be resolved against a catalog.
func NewRelation(name, alias string, schema *Schema) *Relation {
	return &Relation{Name: name, Alias: alias, schema: schema}
}

func (r *Relation) Children() []LogicalPlan { return nil }
func (r *Relation) Schema() *Schema         { return r.schema }

func (r *Relation) String() string {
	if r.Alias != "" {
		return fmt.Sprintf("Relation(%s AS %s)", r.Name, r.Alias)
	}
	return fmt.Sprintf("Relation(%s)", r.Name)
}

// SubqueryAlias wraps a derived table: a FROM/JOIN subquery or a CTE
// reference.
type SubqueryAlias struct {
	Name  string
	Input LogicalPlan
}

func (s *SubqueryAlias) Children() []LogicalPlan { return []LogicalPlan{s.Input} }
func (s *SubqueryAlias) Schema() *Schema         { return s.Input.Schema() }

func (s *SubqueryAlias) String() string {
	if s.Name == "" {
		return "SubqueryAlias"
	}
	return fmt.Sprintf("SubqueryAlias(%s)", s.Name)
}

// Join is a standard relational join with an ON condition or USING
// column list.
type Join struct {
	Type      JoinType
	Left      LogicalPlan
	Right     LogicalPlan
	Condition sql.Expression // ON condition (nil for CROSS or USING joins)
	Using     []string       // USING column list (nil otherwise)
}

func (j *Join) Children() []LogicalPlan { return []LogicalPlan{j.Left, j.Right} }
func (j *Join) Schema() *Schema         { return mergeSchemas(j.Left.Schema(), j.Right.Schema()) }

func (j *Join) String() string {
	switch {
	case j.Condition != nil:
		return fmt.Sprintf("Join(%s, %s)", j.Type, sql.RenderExpression(j.Condition))
	case len(j.Using) > 0:
		return fmt.Sprintf("Join(%s, USING(%s))", j.Type, strings.Join(j.Using, ", "))
	default:
		return fmt.Sprintf("Join(%s)", j.Type)
	}
}

// Filter drops input rows that do not satisfy the condition.
type Filter struct {
	Input     LogicalPlan
	Condition sql.Expression
}

func (f *Filter) Children() []LogicalPlan { return []LogicalPlan{f.Input} }
func (f *Filter) Schema() *Schema         { return f.Input.Schema() }

func (f *Filter) String() string {
	return fmt.Sprintf("Filter(%s)", sql.RenderExpression(f.Condition))
}

// Aggregate groups input rows by the given columns.
type Aggregate struct {
	Input   LogicalPlan
	GroupBy []string
}

func (a *Aggregate) Children() []LogicalPlan { return []LogicalPlan{a.Input} }

// Schema is unresolved for aggregates; output columns depend on the
// projection above, which the analysis layer owns.
func (a *Aggregate) Schema() *Schema { return nil }

func (a *Aggregate) String() string {
	return fmt.Sprintf("Aggregate(groupBy=[%s])", strings.Join(a.GroupBy, ", "))
}

// Projection evaluates the SELECT list over its input.
type Projection struct {
	Input LogicalPlan
	Items []sql.SelectItem
}

func (p *Projection) Children() []LogicalPlan { return []LogicalPlan{p.Input} }

func (p *Projection) Schema() *Schema {
	// SELECT * passes the input schema through untouched; anything
	// else is left to the analysis layer.
	if len(p.Items) == 1 {
		if col, ok := p.Items[0].Expr.(*sql.ColumnRef); ok && col.Column == "*" {
			return p.Input.Schema()
		}
	}
	return nil
}

func (p *Projection) String() string {
	items := make([]string, len(p.Items))
	for i, item := range p.Items {
		items[i] = sql.RenderSelectItem(item)
	}
	return fmt.Sprintf("Projection(%s)", strings.Join(items, ", "))
}

// Distinct removes duplicate rows.
type Distinct struct {
	Input LogicalPlan
}

func (d *Distinct) Children() []LogicalPlan { return []LogicalPlan{d.Input} }
func (d *Distinct) Schema() *Schema         { return d.Input.Schema() }
func (d *Distinct) String() string          { return "Distinct" }

// Sort orders input rows.
type Sort struct {
	Input LogicalPlan
	Items []sql.OrderByItem
}

func (s *Sort) Children() []LogicalPlan { return []LogicalPlan{s.Input} }
func (s *Sort) Schema() *Schema         { return s.Input.Schema() }

func (s *Sort) String() string {
	items := make([]string, len(s.Items))
	for i, item := range s.Items {
		direction := "ASC"
		if item.Desc {
			direction = "DESC"
		}
		items[i] = item.Column + " " + direction
	}
	return fmt.Sprintf("Sort(%s)", strings.Join(items, ", "))
}

// Limit caps the number of output rows, optionally after skipping a
// prefix.
type Limit struct {
	Input  LogicalPlan
	Count  *int64
	Offset *int64
}

func (l *Limit) Children() []LogicalPlan { return []LogicalPlan{l.Input} }
func (l *Limit) Schema() *Schema         { return l.Input.Schema() }

func (l *Limit) String() string {
	switch {
	case l.Count != nil && l.Offset != nil:
		return fmt.Sprintf("Limit(%d, offset=%d)", *l.Count, *l.Offset)
	case l.Count != nil:
		return fmt.Sprintf("Limit(%d)", *l.Count)
	case l.Offset != nil:
		return fmt.Sprintf("Limit(offset=%d)", *l.Offset)
	default:
		return "Limit"
	}
}

func mergeSchemas(left, right *Schema) *Schema {
	if left == nil || right == nil {
		return nil
	}
	merged := &Schema{Columns: make([]Column, 0, len(left.Columns)+len(right.Columns))}
	merged.Columns = append(merged.Columns, left.Columns...)
	merged.Columns = append(merged.Columns, right.Columns...)
	return merged
}

// Format renders a plan tree in EXPLAIN style, one node per line with
// box-drawing connectors.
func Format(p LogicalPlan) string {
	var sb strings.Builder
	sb.WriteString(p.String())
	sb.WriteString("\n")
	formatChildren(&sb, p, "")
	return sb.String()
}

func formatChildren(sb *strings.Builder, p LogicalPlan, prefix string) {
	children := p.Children()
	for i, child := range children {
		last := i == len(children)-1
		connector, childPrefix := "├── ", "│   "
		if last {
			connector, childPrefix = "└── ", "    "
		}
		sb.WriteString(prefix)
		sb.WriteString(connector)
		sb.WriteString(child.String())
		sb.WriteString("\n")
		formatChildren(sb, child, prefix+childPrefix)
	}
}
