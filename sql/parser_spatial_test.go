package sql

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_KnnJoin(t *testing.T) {
	q, err := Parse("select * from table1 knn join table2 using POINT (x2, y2) knnPred (POINT (x1, y1), 5)")
	require.NoError(t, err)

	assert.Equal(t, "table1", q.TableName)
	require.Len(t, q.Joins, 1)

	join := q.Joins[0]
	assert.Equal(t, JoinKNN, join.Type)
	assert.Equal(t, "table2", join.TableName)
	assert.Nil(t, join.Condition)
	assert.Empty(t, join.Using)
	require.NotNil(t, join.Spatial)

	center := join.Spatial.Center
	assert.Equal(t, &ColumnRef{Column: "x2"}, center.X)
	assert.Equal(t, &ColumnRef{Column: "y2"}, center.Y)

	query := join.Spatial.Query
	assert.Equal(t, &ColumnRef{Column: "x1"}, query.X)
	assert.Equal(t, &ColumnRef{Column: "y1"}, query.Y)

	require.NotNil(t, join.Spatial.K)
	assert.Equal(t, int64(5), join.Spatial.K.Value)
}

func TestParse_KnnJoinCaseInsensitive(t *testing.T) {
	queries := []string{
		"select * from a KNN JOIN b USING point(x, y) KNNPRED (point(u, v), 3)",
		"select * from a Knn Join b Using Point(x, y) KnnPred (Point(u, v), 3)",
		"select * from a knn join b using point(x, y) knnpred (point(u, v), 3)",
	}

	for _, query := range queries {
		q, err := Parse(query)
		require.NoError(t, err, query)
		require.Len(t, q.Joins, 1)
		assert.Equal(t, JoinKNN, q.Joins[0].Type)
		assert.NotNil(t, q.Joins[0].Spatial)
	}
}

func TestParse_KnnJoinLiteralCoordinates(t *testing.T) {
	q, err := Parse("select * from a knn join b using point(lon, lat) knnpred (point(2.5, -1.0), 10)")
	require.NoError(t, err)

	spatial := q.Joins[0].Spatial
	require.NotNil(t, spatial)

	x, ok := spatial.Query.X.(*LiteralExpr)
	require.True(t, ok)
	assert.Equal(t, 2.5, x.Value)

	y, ok := spatial.Query.Y.(*LiteralExpr)
	require.True(t, ok)
	assert.Equal(t, -1.0, y.Value)
}

// A zero or negative k is grammatically a number, so it parses. The
// plan builder rejects it.
func TestParse_KnnJoinAcceptsNonPositiveK(t *testing.T) {
	for _, k := range []string{"0", "-3", "2.5"} {
		q, err := Parse("select * from a knn join b using point(x, y) knnpred (point(u, v), " + k + ")")
		require.NoError(t, err, "k=%s", k)
		assert.NotNil(t, q.Joins[0].Spatial.K)
	}
}

func TestParse_KnnJoinFollowedByClauses(t *testing.T) {
	q, err := Parse("select * from a knn join b using point(x, y) knnpred (point(u, v), 4) where id > 7 limit 2")
	require.NoError(t, err)

	require.Len(t, q.Joins, 1)
	assert.Equal(t, JoinKNN, q.Joins[0].Type)
	assert.NotNil(t, q.Filter)
	require.NotNil(t, q.Limit)
	assert.Equal(t, int64(2), *q.Limit)
}

func TestParse_KnnJoinMixedWithStandardJoins(t *testing.T) {
	q, err := Parse("select * from a inner join b on id = id knn join c using point(x, y) knnpred (point(u, v), 3)")
	require.NoError(t, err)

	require.Len(t, q.Joins, 2)
	assert.Equal(t, JoinInner, q.Joins[0].Type)
	assert.Equal(t, JoinKNN, q.Joins[1].Type)
	assert.Equal(t, "c", q.Joins[1].TableName)
}

func TestParse_KnnJoinSyntaxErrors(t *testing.T) {
	tests := []struct {
		name     string
		query    string
		expected string
	}{
		{
			name:     "missing closing paren at end of input",
			query:    "select * from a knn join b using point(x, y) knnpred (point(u, v), 3",
			expected: ")",
		},
		{
			name:     "ON instead of spatial criterion",
			query:    "select * from a knn join b on x = y",
			expected: "USING",
		},
		{
			name:     "USING column list instead of point",
			query:    "select * from a knn join b using (id)",
			expected: "POINT",
		},
		{
			name:     "missing knnPred",
			query:    "select * from a knn join b using point(x, y) (point(u, v), 3)",
			expected: "knnPred",
		},
		{
			name:     "missing criterion entirely",
			query:    "select * from a knn join b",
			expected: "USING",
		},
		{
			name:     "non-numeric neighbor count",
			query:    "select * from a knn join b using point(x, y) knnpred (point(u, v), k)",
			expected: "neighbor count",
		},
		{
			name:     "point with one coordinate",
			query:    "select * from a knn join b using point(x) knnpred (point(u, v), 3)",
			expected: ",",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.query)
			require.Error(t, err)

			var synErr *SyntaxError
			require.True(t, errors.As(err, &synErr), "error should carry a *SyntaxError: %v", err)
			assert.Contains(t, synErr.Expected, tt.expected)
		})
	}
}

// An unterminated KNN criterion reports the error at end of input, one
// column past the last character.
func TestParse_KnnJoinErrorAtEOF(t *testing.T) {
	query := "select * from a knn join b using point(x, y) knnpred (point(u, v), 3"
	_, err := Parse(query)
	require.Error(t, err)

	var synErr *SyntaxError
	require.True(t, errors.As(err, &synErr))
	assert.Equal(t, TokenEOF, synErr.Got.Type)
	assert.Equal(t, 1, synErr.Line)
	assert.Equal(t, len(query)+1, synErr.Column)
}

// "knn" only acts as a join keyword when directly followed by JOIN;
// elsewhere it remains a usable identifier.
func TestParse_KnnNotFollowedByJoin(t *testing.T) {
	q, err := Parse("select * from table1 knn where id > 1")
	require.NoError(t, err)

	assert.Equal(t, "table1", q.TableName)
	assert.Equal(t, "knn", q.TableAlias)
	assert.Empty(t, q.Joins)
}

func TestParse_KnnJoinRepeatable(t *testing.T) {
	const query = "select * from table1 knn join table2 using POINT (x2, y2) knnPred (POINT (x1, y1), 5)"

	first, err := Parse(query)
	require.NoError(t, err)
	second, err := Parse(query)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}
