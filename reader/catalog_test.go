package reader

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalog_Relation(t *testing.T) {
	path := writeFixture(t, t.TempDir(), "points.parquet", defaultRows())

	schema, err := NewCatalog().Relation(path)
	require.NoError(t, err)
	require.NotNil(t, schema)
	require.Len(t, schema.Columns, 5)

	byName := make(map[string]int, len(schema.Columns))
	for i, col := range schema.Columns {
		byName[col.Name] = i
	}
	require.Contains(t, byName, "id")
	require.Contains(t, byName, "tag")

	id := schema.Columns[byName["id"]]
	assert.Equal(t, "INT64", id.Type)
	assert.False(t, id.Optional)

	tag := schema.Columns[byName["tag"]]
	assert.True(t, tag.Optional)
}

func TestCatalog_RelationGlob(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, dir, "part1.parquet", defaultRows())
	writeFixture(t, dir, "part2.parquet", defaultRows())

	schema, err := NewCatalog().Relation(filepath.Join(dir, "part*.parquet"))
	require.NoError(t, err)
	assert.Len(t, schema.Columns, 5)
}

func TestCatalog_RelationMissing(t *testing.T) {
	_, err := NewCatalog().Relation(filepath.Join(t.TempDir(), "absent.parquet"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read schema")
}
