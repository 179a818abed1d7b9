package plan

import "fmt"

// PredKnn is the spatial join predicate: for every left-side row, keep
// the K right-side rows whose query point lies nearest to the center
// point. Both points come from the parsed query and are immutable once
// the predicate is built.
type PredKnn struct {
	Center PointRef // point following USING, evaluated against the left side
	Query  PointRef // point inside knnPred, evaluated against the right side
	K      int64    // number of neighbors, always > 0
}

// String renders the predicate the way it was written in SQL.
func (p *PredKnn) String() string {
	return fmt.Sprintf("PredKnn(%s, %s, %d)", p.Center, p.Query, p.K)
}

// PointRef is a validated point: each coordinate is either a column
// name or a numeric constant.
type PointRef struct {
	X Coordinate
	Y Coordinate
}

// String renders the point in SQL form.
func (p PointRef) String() string {
	return fmt.Sprintf("POINT(%s, %s)", p.X, p.Y)
}

// Coordinate is one axis of a point: a column reference or a numeric
// literal, never both.
type Coordinate struct {
	Column  string   // column name ("" for literals)
	Literal *float64 // numeric value (nil for column references)
}

// String renders the coordinate.
func (c Coordinate) String() string {
	if c.Literal != nil {
		return trimFloat(*c.Literal)
	}
	return c.Column
}

// trimFloat renders a float without a trailing ".0" when it is integral.
func trimFloat(f float64) string {
	if f == float64(int64(f)) {
		return fmt.Sprintf("%d", int64(f))
	}
	return fmt.Sprintf("%g", f)
}

// SpatialJoin joins two relations on a spatial predicate instead of a
// boolean condition. The only join type tag currently produced is
// KNNJoin.
type SpatialJoin struct {
	Type      JoinType
	Left      LogicalPlan
	Right     LogicalPlan
	Predicate *PredKnn
}

func (j *SpatialJoin) Children() []LogicalPlan { return []LogicalPlan{j.Left, j.Right} }
func (j *SpatialJoin) Schema() *Schema         { return mergeSchemas(j.Left.Schema(), j.Right.Schema()) }

func (j *SpatialJoin) String() string {
	return fmt.Sprintf("SpatialJoin(%s, %s)", j.Type, j.Predicate)
}
