package reader

import (
	"fmt"

	"github.com/spatialq/spatialq/plan"
)

// Catalog resolves relation names against parquet files on disk. It
// implements plan.Catalog. A Catalog is stateless and safe for
// concurrent use.
type Catalog struct{}

// NewCatalog creates a parquet-backed catalog.
func NewCatalog() *Catalog {
	return &Catalog{}
}

// Relation returns the schema of the named dataset. For glob patterns
// the schema of the first matching file is used; files matched by one
// pattern are expected to share a schema.
func (c *Catalog) Relation(name string) (*plan.Schema, error) {
	paths, err := ResolvePattern(name)
	if err != nil {
		return nil, err
	}

	infos, err := ExtractSchemaInfo(paths[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read schema of %q: %w", paths[0], err)
	}

	schema := &plan.Schema{Columns: make([]plan.Column, 0, len(infos))}
	for _, info := range infos {
		schema.Columns = append(schema.Columns, plan.Column{
			Name:     info.Name,
			Type:     info.Type,
			Optional: info.Optional,
		})
	}
	return schema, nil
}
