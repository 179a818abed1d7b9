package reader

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/parquet-go/parquet-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// pointRow is the fixture row shape used across reader tests.
type pointRow struct {
	ID   int64   `parquet:"id"`
	Name string  `parquet:"name"`
	X    float64 `parquet:"x"`
	Y    float64 `parquet:"y"`
	Tag  *string `parquet:"tag,optional"`
}

// writeFixture writes rows to a parquet file under dir and returns its path.
func writeFixture(t *testing.T, dir, name string, rows []pointRow) string {
	t.Helper()

	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	require.NoError(t, err)

	writer := parquet.NewGenericWriter[pointRow](f)
	_, err = writer.Write(rows)
	require.NoError(t, err)
	require.NoError(t, writer.Close())
	require.NoError(t, f.Close())

	return path
}

func defaultRows() []pointRow {
	tag := "poi"
	return []pointRow{
		{ID: 1, Name: "alpha", X: 1.5, Y: -2.0, Tag: &tag},
		{ID: 2, Name: "beta", X: 0.0, Y: 4.25},
	}
}

func TestExtractSchemaInfo(t *testing.T) {
	path := writeFixture(t, t.TempDir(), "points.parquet", defaultRows())

	infos, err := ExtractSchemaInfo(path)
	require.NoError(t, err)
	require.Len(t, infos, 5)

	byName := make(map[string]SchemaInfo, len(infos))
	for _, info := range infos {
		byName[info.Name] = info
	}

	id := byName["id"]
	assert.Equal(t, "INT64", id.Type)
	assert.Equal(t, "INT64", id.PhysicalType)
	assert.True(t, id.Required)

	name := byName["name"]
	assert.Equal(t, "STRING", name.Type)
	assert.Equal(t, "BYTE_ARRAY", name.PhysicalType)

	x := byName["x"]
	assert.Equal(t, "FLOAT64", x.Type)
	assert.Equal(t, "DOUBLE", x.PhysicalType)

	tag := byName["tag"]
	assert.True(t, tag.Optional)
	assert.False(t, tag.Required)
}

func TestExtractSchemaInfo_MissingFile(t *testing.T) {
	_, err := ExtractSchemaInfo(filepath.Join(t.TempDir(), "absent.parquet"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to open")
}

func TestExtractSchemaInfo_NotParquet(t *testing.T) {
	path := filepath.Join(t.TempDir(), "junk.parquet")
	require.NoError(t, os.WriteFile(path, []byte("not a parquet file"), 0o644))

	_, err := ExtractSchemaInfo(path)
	assert.Error(t, err)
}

func TestReader_SchemaAndClose(t *testing.T) {
	path := writeFixture(t, t.TempDir(), "points.parquet", defaultRows())

	r, err := NewReader(path)
	require.NoError(t, err)

	schema := r.Schema()
	require.NotNil(t, schema)
	assert.Len(t, schema.Fields(), 5)

	assert.NoError(t, r.Close())
}

func TestResolvePattern(t *testing.T) {
	dir := t.TempDir()
	first := writeFixture(t, dir, "a.parquet", defaultRows())
	second := writeFixture(t, dir, "b.parquet", defaultRows())

	t.Run("plain path passes through", func(t *testing.T) {
		paths, err := ResolvePattern("no/such/file.parquet")
		require.NoError(t, err)
		assert.Equal(t, []string{"no/such/file.parquet"}, paths)
	})

	t.Run("glob expands matches", func(t *testing.T) {
		paths, err := ResolvePattern(filepath.Join(dir, "*.parquet"))
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{first, second}, paths)
	})

	t.Run("glob with no matches errors", func(t *testing.T) {
		_, err := ResolvePattern(filepath.Join(dir, "*.csv"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no files match")
	})
}
