package plan

import (
	"fmt"

	"github.com/spatialq/spatialq/sql"
)

// buildSpatialJoin builds the SpatialJoin node for a KNN JOIN clause.
func (b *Builder) buildSpatialJoin(left, right LogicalPlan, join *sql.Join) (LogicalPlan, error) {
	if join.Spatial == nil {
		// Unreachable from the parser; guards against hand-built ASTs.
		return nil, malformedPredicatef("KNN join has no spatial criterion")
	}
	predicate, err := buildSpatialPredicate(join.Spatial)
	if err != nil {
		return nil, err
	}
	return &SpatialJoin{
		Type:      KNNJoin,
		Left:      left,
		Right:     right,
		Predicate: predicate,
	}, nil
}

// buildSpatialPredicate validates a parsed spatial criterion and
// constructs the PredKnn value: k must be a positive integer literal
// and both points must resolve to two numeric coordinates each.
func buildSpatialPredicate(sp *sql.SpatialPredicate) (*PredKnn, error) {
	k, err := neighborCount(sp.K)
	if err != nil {
		return nil, err
	}

	center, err := buildPointRef(sp.Center, "center")
	if err != nil {
		return nil, err
	}

	query, err := buildPointRef(sp.Query, "query")
	if err != nil {
		return nil, err
	}

	return &PredKnn{
		Center: center,
		Query:  query,
		K:      k,
	}, nil
}

// neighborCount extracts and validates the k literal.
func neighborCount(k *sql.LiteralExpr) (int64, error) {
	if k == nil {
		return 0, malformedPredicatef("missing neighbor count")
	}
	value, ok := k.Value.(int64)
	if !ok {
		return 0, malformedPredicatef("neighbor count must be an integer literal, got %v", k.Value)
	}
	if value <= 0 {
		return 0, malformedPredicatef("neighbor count must be positive, got %d", value)
	}
	return value, nil
}

// buildPointRef validates a POINT(x, y) expression. which names the
// point in error messages ("center" or "query").
func buildPointRef(point sql.PointExpr, which string) (PointRef, error) {
	x, err := buildCoordinate(point.X, which, "x")
	if err != nil {
		return PointRef{}, err
	}
	y, err := buildCoordinate(point.Y, which, "y")
	if err != nil {
		return PointRef{}, err
	}
	return PointRef{X: x, Y: y}, nil
}

// buildCoordinate validates a single coordinate: a column reference or
// a numeric literal.
func buildCoordinate(expr sql.SelectExpression, which, axis string) (Coordinate, error) {
	switch e := expr.(type) {
	case *sql.ColumnRef:
		return Coordinate{Column: e.Column}, nil
	case *sql.LiteralExpr:
		var value float64
		switch v := e.Value.(type) {
		case int64:
			value = float64(v)
		case float64:
			value = v
		default:
			return Coordinate{}, malformedPredicatef(
				"%s point %s coordinate must be numeric, got %T", which, axis, e.Value)
		}
		return Coordinate{Literal: &value}, nil
	case nil:
		return Coordinate{}, malformedPredicatef("%s point is missing its %s coordinate", which, axis)
	default:
		return Coordinate{}, malformedPredicatef(
			"%s point %s coordinate must be a column reference or numeric literal, got %s",
			which, axis, fmt.Sprintf("%T", expr))
	}
}
