// Package sql provides SQL query parsing for spatial query planning.
//
// It implements a SQL-like query language with support for SELECT lists,
// WHERE clauses, joins (including spatial KNN joins), aggregation, sorting
// and common table expressions. The package includes a lexer for
// tokenization and a recursive-descent parser producing an AST that the
// plan package turns into a logical query plan.
//
// Example usage:
//
//	query, err := sql.Parse("select * from points.parquet where id > 30")
//	if err != nil {
//	    log.Fatal(err)
//	}
package sql

import (
	"fmt"
	"strings"
)

// Query represents a parsed SQL query
type Query struct {
	CTEs       []CTE  // WITH clause CTEs
	TableName  string // Single file path or glob pattern
	Subquery   *Query // Subquery in FROM clause (alternative to TableName)
	TableAlias string // Optional alias for table/subquery
	Joins      []Join // JOIN clauses
	SelectList []SelectItem
	Filter     Expression
	GroupBy    []string      // Column names to group by
	Having     Expression    // Post-aggregation filter
	OrderBy    []OrderByItem // Sort specification
	Limit      *int64        // Row limit
	Offset     *int64        // Row offset
	Distinct   bool          // DISTINCT modifier
}

// JoinType represents the type of join operation
type JoinType int

const (
	JoinInner JoinType = iota // INNER JOIN (default)
	JoinLeft                  // LEFT JOIN / LEFT OUTER JOIN
	JoinRight                 // RIGHT JOIN / RIGHT OUTER JOIN
	JoinFull                  // FULL JOIN / FULL OUTER JOIN
	JoinCross                 // CROSS JOIN
	JoinKNN                   // KNN JOIN (spatial k-nearest-neighbor join)
)

// String returns the SQL spelling of the join type.
func (t JoinType) String() string {
	switch t {
	case JoinInner:
		return "INNER"
	case JoinLeft:
		return "LEFT"
	case JoinRight:
		return "RIGHT"
	case JoinFull:
		return "FULL"
	case JoinCross:
		return "CROSS"
	case JoinKNN:
		return "KNN"
	default:
		return fmt.Sprintf("JoinType(%d)", int(t))
	}
}

// Join represents a JOIN clause
type Join struct {
	Type      JoinType          // Type of join (INNER, LEFT, RIGHT, FULL, CROSS, KNN)
	TableName string            // Table/file to join
	Subquery  *Query            // Subquery to join (alternative to TableName)
	Alias     string            // Optional alias for joined table/subquery
	Condition Expression        // ON clause condition (nil for CROSS and KNN joins)
	Using     []string          // USING (col, ...) equi-join columns (nil otherwise)
	Spatial   *SpatialPredicate // Spatial criterion (KNN joins only)
}

// SpatialPredicate is the parsed form of the spatial join criterion:
//
//	USING POINT(cx, cy) knnPred (POINT(qx, qy), k)
//
// Center is the point following USING, Query the point inside knnPred,
// and K the neighbor-count literal. K is kept as the raw parsed literal;
// the plan builder validates that it is a positive integer.
type SpatialPredicate struct {
	Center PointExpr
	Query  PointExpr
	K      *LiteralExpr
}

// PointExpr represents a POINT(x, y) constructor. Each coordinate is a
// column reference or a numeric literal.
type PointExpr struct {
	X SelectExpression
	Y SelectExpression
}

// String renders the point in SQL form.
func (p PointExpr) String() string {
	return fmt.Sprintf("POINT(%s, %s)", renderSelectExpr(p.X), renderSelectExpr(p.Y))
}

// CTE represents a Common Table Expression (WITH clause)
type CTE struct {
	Name  string // CTE name
	Query *Query // Subquery defining the CTE
}

// OrderByItem represents a column to sort by
type OrderByItem struct {
	Column string // Column name or alias
	Desc   bool   // DESC vs ASC (default)
}

// SelectItem represents a column or expression in the SELECT list
type SelectItem struct {
	Expr  SelectExpression // Column, function, or expression
	Alias string           // Optional alias (AS name)
}

// SelectExpression is an expression that can appear in a SELECT list
// or as a function argument. It is a closed set of node types; the
// plan builder switches over it exhaustively.
type SelectExpression interface {
	selectExprNode()
}

// ColumnRef references a column (or * for all columns)
type ColumnRef struct {
	Column string // Column name or "*"
}

// FunctionCall represents a function invocation
type FunctionCall struct {
	Name string
	Args []SelectExpression
}

// LiteralExpr represents a literal value (number, string, bool)
type LiteralExpr struct {
	Value interface{}
}

// AggregateExpr represents an aggregate function (COUNT, SUM, AVG, MIN, MAX)
type AggregateExpr struct {
	Function string           // COUNT, SUM, AVG, MIN, MAX
	Arg      SelectExpression // Argument expression (nil for COUNT(*))
	Distinct bool             // DISTINCT modifier
}

// CaseExpr represents a CASE expression
type CaseExpr struct {
	WhenClauses []WhenClause     // WHEN conditions and their results
	ElseExpr    SelectExpression // ELSE result (optional)
}

// WhenClause represents a single WHEN condition and result
type WhenClause struct {
	Condition Expression       // WHEN condition
	Result    SelectExpression // THEN result
}

// ScalarSubqueryExpr represents a scalar subquery in SELECT
type ScalarSubqueryExpr struct {
	Query *Query
}

func (*ColumnRef) selectExprNode()          {}
func (*FunctionCall) selectExprNode()       {}
func (*LiteralExpr) selectExprNode()        {}
func (*AggregateExpr) selectExprNode()      {}
func (*CaseExpr) selectExprNode()           {}
func (*ScalarSubqueryExpr) selectExprNode() {}

// Expression represents a boolean expression in WHERE, HAVING, ON or
// CASE WHEN position. Like SelectExpression it is a closed set of node
// types switched over exhaustively downstream.
type Expression interface {
	exprNode()
}

// BinaryExpr represents a binary expression (AND/OR)
type BinaryExpr struct {
	Left     Expression
	Operator TokenType // TokenAnd or TokenOr
	Right    Expression
}

// ComparisonExpr represents a comparison expression (column op literal)
type ComparisonExpr struct {
	Column   string
	Operator TokenType
	Value    interface{}
}

// ColumnComparisonExpr represents a column-to-column comparison (col1 op col2)
type ColumnComparisonExpr struct {
	LeftColumn  string
	Operator    TokenType
	RightColumn string
}

// InExpr represents an IN expression (col IN (val1, val2, ...))
type InExpr struct {
	Column string
	Values []interface{}
	Negate bool // NOT IN
}

// LikeExpr represents a LIKE expression (col LIKE 'pattern')
type LikeExpr struct {
	Column  string
	Pattern string
	Negate  bool // NOT LIKE
}

// BetweenExpr represents a BETWEEN expression (col BETWEEN lower AND upper)
type BetweenExpr struct {
	Column string
	Lower  interface{}
	Upper  interface{}
	Negate bool // NOT BETWEEN
}

// IsNullExpr represents an IS NULL expression (col IS NULL / col IS NOT NULL)
type IsNullExpr struct {
	Column string
	Negate bool // IS NOT NULL
}

// ExistsExpr represents an EXISTS expression
type ExistsExpr struct {
	Subquery *Query
	Negate   bool // NOT EXISTS
}

// InSubqueryExpr represents an IN expression with a subquery
type InSubqueryExpr struct {
	Column   string
	Subquery *Query
	Negate   bool // NOT IN
}

func (*BinaryExpr) exprNode()           {}
func (*ComparisonExpr) exprNode()       {}
func (*ColumnComparisonExpr) exprNode() {}
func (*InExpr) exprNode()               {}
func (*LikeExpr) exprNode()             {}
func (*BetweenExpr) exprNode()          {}
func (*IsNullExpr) exprNode()           {}
func (*ExistsExpr) exprNode()           {}
func (*InSubqueryExpr) exprNode()       {}

// RenderExpression returns a SQL-ish rendering of a boolean expression,
// used when printing plan trees.
func RenderExpression(e Expression) string {
	switch expr := e.(type) {
	case *BinaryExpr:
		op := "AND"
		if expr.Operator == TokenOr {
			op = "OR"
		}
		return fmt.Sprintf("(%s %s %s)", RenderExpression(expr.Left), op, RenderExpression(expr.Right))
	case *ComparisonExpr:
		return fmt.Sprintf("%s %s %s", expr.Column, expr.Operator, renderValue(expr.Value))
	case *ColumnComparisonExpr:
		return fmt.Sprintf("%s %s %s", expr.LeftColumn, expr.Operator, expr.RightColumn)
	case *InExpr:
		values := make([]string, len(expr.Values))
		for i, v := range expr.Values {
			values[i] = renderValue(v)
		}
		return fmt.Sprintf("%s %sIN (%s)", expr.Column, negation(expr.Negate), strings.Join(values, ", "))
	case *LikeExpr:
		return fmt.Sprintf("%s %sLIKE '%s'", expr.Column, negation(expr.Negate), expr.Pattern)
	case *BetweenExpr:
		return fmt.Sprintf("%s %sBETWEEN %s AND %s", expr.Column, negation(expr.Negate),
			renderValue(expr.Lower), renderValue(expr.Upper))
	case *IsNullExpr:
		if expr.Negate {
			return expr.Column + " IS NOT NULL"
		}
		return expr.Column + " IS NULL"
	case *ExistsExpr:
		return negation(expr.Negate) + "EXISTS (<subquery>)"
	case *InSubqueryExpr:
		return fmt.Sprintf("%s %sIN (<subquery>)", expr.Column, negation(expr.Negate))
	default:
		return fmt.Sprintf("%v", e)
	}
}

// renderSelectExpr returns a SQL-ish rendering of a select expression.
func renderSelectExpr(e SelectExpression) string {
	switch expr := e.(type) {
	case *ColumnRef:
		return expr.Column
	case *LiteralExpr:
		return renderValue(expr.Value)
	case *FunctionCall:
		args := make([]string, len(expr.Args))
		for i, a := range expr.Args {
			args[i] = renderSelectExpr(a)
		}
		return fmt.Sprintf("%s(%s)", expr.Name, strings.Join(args, ", "))
	case *AggregateExpr:
		if expr.Arg == nil {
			return expr.Function + "(*)"
		}
		return fmt.Sprintf("%s(%s)", expr.Function, renderSelectExpr(expr.Arg))
	case *CaseExpr:
		return "CASE ... END"
	case *ScalarSubqueryExpr:
		return "(<subquery>)"
	default:
		return fmt.Sprintf("%v", e)
	}
}

// RenderSelectItem renders a SELECT list item, including its alias.
func RenderSelectItem(item SelectItem) string {
	s := renderSelectExpr(item.Expr)
	if item.Alias != "" {
		s += " AS " + item.Alias
	}
	return s
}

func renderValue(v interface{}) string {
	if s, ok := v.(string); ok {
		return "'" + s + "'"
	}
	return fmt.Sprintf("%v", v)
}

func negation(negate bool) string {
	if negate {
		return "NOT "
	}
	return ""
}
