package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spatialq/spatialq/plan"
	"github.com/spatialq/spatialq/sql"
)

func planFor(t *testing.T, query string) plan.LogicalPlan {
	t.Helper()
	q, err := sql.Parse(query)
	require.NoError(t, err)
	p, err := plan.NewBuilder(nil).Build(q)
	require.NoError(t, err)
	return p
}

func TestTextFormatter(t *testing.T) {
	var buf bytes.Buffer
	formatter := NewTextFormatter(&buf)

	p := planFor(t, "select * from table1 knn join table2 using POINT (x2, y2) knnPred (POINT (x1, y1), 5)")
	require.NoError(t, formatter.Format(p))

	out := buf.String()
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "SpatialJoin(KNN, PredKnn(POINT(x2, y2), POINT(x1, y1), 5))", lines[0])
	assert.Equal(t, "├── Relation(table1)", lines[1])
	assert.Equal(t, "└── Relation(table2)", lines[2])
}

func TestTextFormatter_SetOutput(t *testing.T) {
	var first, second bytes.Buffer
	formatter := NewTextFormatter(&first)
	formatter.SetOutput(&second)

	require.NoError(t, formatter.Format(planFor(t, "select * from t")))
	assert.Empty(t, first.String())
	assert.Equal(t, "Relation(t)\n", second.String())
}

func TestJSONFormatter(t *testing.T) {
	var buf bytes.Buffer
	formatter := NewJSONFormatter(&buf)

	p := planFor(t, "select name from t where id > 1")
	require.NoError(t, formatter.Format(p))

	var node struct {
		Operator string `json:"operator"`
		Children []struct {
			Operator string `json:"operator"`
			Children []struct {
				Operator string `json:"operator"`
			} `json:"children"`
		} `json:"children"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &node))

	assert.Equal(t, "Projection(name)", node.Operator)
	require.Len(t, node.Children, 1)
	assert.Equal(t, "Filter(id > 1)", node.Children[0].Operator)
	require.Len(t, node.Children[0].Children, 1)
	assert.Equal(t, "Relation(t)", node.Children[0].Children[0].Operator)
}

func TestJSONFormatter_SpatialJoinChildren(t *testing.T) {
	var buf bytes.Buffer
	formatter := NewJSONFormatter(&buf)

	p := planFor(t, "select * from a knn join b using point(x, y) knnpred (point(u, v), 3)")
	require.NoError(t, formatter.Format(p))

	var node struct {
		Operator string `json:"operator"`
		Children []struct {
			Operator string `json:"operator"`
		} `json:"children"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &node))

	assert.Contains(t, node.Operator, "SpatialJoin(KNN")
	require.Len(t, node.Children, 2)
	assert.Equal(t, "Relation(a)", node.Children[0].Operator)
	assert.Equal(t, "Relation(b)", node.Children[1].Operator)
}

// Both plan formatters satisfy the PlanFormatter interface.
func TestPlanFormatterInterface(t *testing.T) {
	var _ PlanFormatter = NewTextFormatter(nil)
	var _ PlanFormatter = NewJSONFormatter(nil)
}
