package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/parquet-go/parquet-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spatialq/spatialq/output"
	"github.com/spatialq/spatialq/plan"
	"github.com/spatialq/spatialq/reader"
	"github.com/spatialq/spatialq/sql"
)

// siteRow is the fixture row shape used across CLI tests.
type siteRow struct {
	ID int64   `parquet:"id"`
	X  float64 `parquet:"x"`
	Y  float64 `parquet:"y"`
}

func createTestParquetFile(t *testing.T, dir, filename string, rows []siteRow) string {
	t.Helper()
	path := filepath.Join(dir, filename)

	f, err := os.Create(path)
	require.NoError(t, err)

	writer := parquet.NewGenericWriter[siteRow](f)
	_, err = writer.Write(rows)
	require.NoError(t, err)
	require.NoError(t, writer.Close())
	require.NoError(t, f.Close())

	return path
}

// captureStdout runs fn with os.Stdout redirected to a pipe and
// returns what it wrote.
func captureStdout(t *testing.T, fn func() error) string {
	t.Helper()

	oldStdout := os.Stdout
	r, w, err := os.Pipe()
	require.NoError(t, err)
	os.Stdout = w

	fnErr := fn()

	require.NoError(t, w.Close())
	os.Stdout = oldStdout

	var buf bytes.Buffer
	_, err = buf.ReadFrom(r)
	require.NoError(t, err)
	require.NoError(t, fnErr)

	return buf.String()
}

func TestPrintSchema_Table(t *testing.T) {
	path := createTestParquetFile(t, t.TempDir(), "sites.parquet", []siteRow{
		{ID: 1, X: 1.0, Y: 2.0},
	})

	out := captureStdout(t, func() error {
		return printSchema(path, "text")
	})

	assert.Contains(t, out, "COLUMN")
	assert.Contains(t, out, "id")
	assert.Contains(t, out, "INT64")
	assert.Contains(t, out, "DOUBLE")
}

func TestPrintSchema_JSON(t *testing.T) {
	path := createTestParquetFile(t, t.TempDir(), "sites.parquet", []siteRow{
		{ID: 1, X: 1.0, Y: 2.0},
	})

	out := captureStdout(t, func() error {
		return printSchema(path, "json")
	})

	assert.Contains(t, out, `"name"`)
	assert.Contains(t, out, `"physical_type"`)
}

func TestPrintSchema_UnsupportedFormat(t *testing.T) {
	path := createTestParquetFile(t, t.TempDir(), "sites.parquet", []siteRow{
		{ID: 1, X: 1.0, Y: 2.0},
	})

	err := printSchema(path, "csv")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported format")
}

// End-to-end pipeline the command runs: parse, build against the
// parquet catalog, format.
func TestPipeline_KnnJoinWithCatalog(t *testing.T) {
	tmpDir := t.TempDir()
	left := createTestParquetFile(t, tmpDir, "left.parquet", []siteRow{
		{ID: 1, X: 0.5, Y: 0.5},
	})
	right := createTestParquetFile(t, tmpDir, "right.parquet", []siteRow{
		{ID: 2, X: 3.0, Y: 4.0},
	})

	queryText := "select * from '" + left + "' knn join '" + right + "' using POINT(x, y) knnPred (POINT(x, y), 5)"
	query, err := sql.Parse(queryText)
	require.NoError(t, err)

	logicalPlan, err := plan.NewBuilder(reader.NewCatalog()).Build(query)
	require.NoError(t, err)

	join, ok := logicalPlan.(*plan.SpatialJoin)
	require.True(t, ok)
	require.NotNil(t, join.Schema())
	assert.Len(t, join.Schema().Columns, 6)

	var buf bytes.Buffer
	require.NoError(t, output.NewTextFormatter(&buf).Format(logicalPlan))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "SpatialJoin(KNN, PredKnn(POINT(x, y), POINT(x, y), 5))")
}

func TestPipeline_ParseErrorSurfaceable(t *testing.T) {
	_, err := sql.Parse("select * from a knn join b using point(x, y) knnpred (point(u, v), 3")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "syntax error at line 1")
}
