package plan

import (
	"fmt"

	"github.com/spatialq/spatialq/sql"
)

// Catalog resolves relation names to schemas. A nil Catalog is valid:
// relations are then left unresolved and Schema() returns nil for them.
type Catalog interface {
	// Relation returns the schema of the named dataset.
	Relation(name string) (*Schema, error)
}

// Builder turns parsed queries into logical plan trees. A Builder
// holds no per-query state and is safe for concurrent use.
type Builder struct {
	catalog Catalog
}

// NewBuilder creates a plan builder. catalog may be nil.
func NewBuilder(catalog Catalog) *Builder {
	return &Builder{catalog: catalog}
}

// Build constructs the logical plan for a parsed query. The same query
// always yields a structurally equal plan; building has no side
// effects beyond the returned tree.
func (b *Builder) Build(q *sql.Query) (LogicalPlan, error) {
	return b.buildQuery(q, nil)
}

// buildQuery builds a (sub)query. outer holds CTE plans visible from
// enclosing scopes, keyed by CTE name.
func (b *Builder) buildQuery(q *sql.Query, outer map[string]LogicalPlan) (LogicalPlan, error) {
	ctes := make(map[string]LogicalPlan, len(outer)+len(q.CTEs))
	for name, p := range outer {
		ctes[name] = p
	}
	for _, cte := range q.CTEs {
		ctePlan, err := b.buildQuery(cte.Query, ctes)
		if err != nil {
			return nil, fmt.Errorf("failed to build CTE %q: %w", cte.Name, err)
		}
		ctes[cte.Name] = ctePlan
	}

	// FROM source plus joins, left-deep in source order.
	current, err := b.buildSource(q.TableName, q.Subquery, q.TableAlias, ctes)
	if err != nil {
		return nil, err
	}

	for i := range q.Joins {
		join := &q.Joins[i]
		right, err := b.buildSource(join.TableName, join.Subquery, join.Alias, ctes)
		if err != nil {
			return nil, err
		}
		current, err = b.buildJoin(current, right, join)
		if err != nil {
			return nil, err
		}
	}

	// WHERE
	if q.Filter != nil {
		current = &Filter{Input: current, Condition: q.Filter}
	}

	// GROUP BY (also implied by a bare aggregate select list)
	if len(q.GroupBy) > 0 || hasAggregates(q.SelectList) {
		current = &Aggregate{Input: current, GroupBy: q.GroupBy}
	}

	// HAVING
	if q.Having != nil {
		current = &Filter{Input: current, Condition: q.Having}
	}

	// SELECT list. A bare SELECT * adds nothing and is elided.
	if !isStarOnly(q.SelectList) {
		current = &Projection{Input: current, Items: q.SelectList}
	}

	// DISTINCT
	if q.Distinct {
		current = &Distinct{Input: current}
	}

	// ORDER BY
	if len(q.OrderBy) > 0 {
		current = &Sort{Input: current, Items: q.OrderBy}
	}

	// LIMIT / OFFSET
	if q.Limit != nil || q.Offset != nil {
		current = &Limit{Input: current, Count: q.Limit, Offset: q.Offset}
	}

	return current, nil
}

// buildSource builds the plan for a FROM or JOIN source: a base
// relation, a CTE reference, or a derived table.
func (b *Builder) buildSource(tableName string, subquery *sql.Query, alias string, ctes map[string]LogicalPlan) (LogicalPlan, error) {
	if subquery != nil {
		input, err := b.buildQuery(subquery, ctes)
		if err != nil {
			return nil, fmt.Errorf("failed to build subquery: %w", err)
		}
		return &SubqueryAlias{Name: alias, Input: input}, nil
	}

	if ctePlan, ok := ctes[tableName]; ok {
		name := tableName
		if alias != "" {
			name = alias
		}
		return &SubqueryAlias{Name: name, Input: ctePlan}, nil
	}

	var schema *Schema
	if b.catalog != nil {
		var err error
		schema, err = b.catalog.Relation(tableName)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve relation %q: %w", tableName, err)
		}
	}
	return NewRelation(tableName, alias, schema), nil
}

// buildJoin builds the plan node for one JOIN clause. KNN joins are
// intercepted and produce a SpatialJoin; every other join type is
// delegated to the standard join construction untouched.
func (b *Builder) buildJoin(left, right LogicalPlan, join *sql.Join) (LogicalPlan, error) {
	if join.Type == sql.JoinKNN {
		return b.buildSpatialJoin(left, right, join)
	}
	return b.buildStandardJoin(left, right, join)
}

// buildStandardJoin builds a relational Join node.
func (b *Builder) buildStandardJoin(left, right LogicalPlan, join *sql.Join) (LogicalPlan, error) {
	joinType, err := convertJoinType(join.Type)
	if err != nil {
		return nil, err
	}
	return &Join{
		Type:      joinType,
		Left:      left,
		Right:     right,
		Condition: join.Condition,
		Using:     join.Using,
	}, nil
}

// convertJoinType maps AST join types to plan join types. KNN is
// handled before this point.
func convertJoinType(t sql.JoinType) (JoinType, error) {
	switch t {
	case sql.JoinInner:
		return InnerJoin, nil
	case sql.JoinLeft:
		return LeftJoin, nil
	case sql.JoinRight:
		return RightJoin, nil
	case sql.JoinFull:
		return FullJoin, nil
	case sql.JoinCross:
		return CrossJoin, nil
	default:
		return 0, fmt.Errorf("unsupported join type %v", t)
	}
}

// isStarOnly reports whether the SELECT list is a bare, unaliased *.
func isStarOnly(items []sql.SelectItem) bool {
	if len(items) != 1 || items[0].Alias != "" {
		return false
	}
	col, ok := items[0].Expr.(*sql.ColumnRef)
	return ok && col.Column == "*"
}

// hasAggregates reports whether any SELECT item is an aggregate call.
func hasAggregates(items []sql.SelectItem) bool {
	for _, item := range items {
		if _, ok := item.Expr.(*sql.AggregateExpr); ok {
			return true
		}
	}
	return false
}
