package reader

import (
	"fmt"

	"github.com/parquet-go/parquet-go"
)

// SchemaInfo represents metadata about a single column in a Parquet file.
type SchemaInfo struct {
	Name         string `json:"name"`
	Type         string `json:"type"`
	PhysicalType string `json:"physical_type"`
	LogicalType  string `json:"logical_type"`
	Required     bool   `json:"required"`
	Optional     bool   `json:"optional"`
	Repeated     bool   `json:"repeated"`
}

// ExtractSchemaInfo extracts schema information from a Parquet file.
//
// Returns a slice of SchemaInfo containing metadata about each column
// including name, type information, and whether the field is
// required/optional/repeated.
//
// For nested types, field names use dot notation (e.g., "address.street").
func ExtractSchemaInfo(path string) ([]SchemaInfo, error) {
	reader, err := NewReader(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open parquet file: %w", err)
	}
	defer func() { _ = reader.Close() }()

	schema := reader.Schema()
	fields := schema.Fields()

	var schemaInfos []SchemaInfo
	for _, field := range fields {
		schemaInfos = append(schemaInfos, extractFieldInfo(field, "", false)...)
	}

	return schemaInfos, nil
}

// extractFieldInfo recursively extracts schema information from a
// field, tracking whether any parent field is repeated. The prefix
// parameter builds dot-notation names for nested fields.
func extractFieldInfo(field parquet.Field, prefix string, parentRepeated bool) []SchemaInfo {
	var infos []SchemaInfo

	fieldName := field.Name()
	if prefix != "" {
		fieldName = prefix + "." + fieldName
	}

	isRepeated := parentRepeated || field.Repeated()

	// Groups contribute only their leaf fields.
	childFields := field.Fields()
	if len(childFields) > 0 {
		for _, child := range childFields {
			infos = append(infos, extractFieldInfo(child, fieldName, isRepeated)...)
		}
		return infos
	}

	infos = append(infos, SchemaInfo{
		Name:         fieldName,
		Type:         friendlyType(field),
		PhysicalType: physicalType(field),
		LogicalType:  logicalType(field),
		Required:     field.Required(),
		Optional:     field.Optional(),
		Repeated:     isRepeated,
	})

	return infos
}

// physicalType returns the physical type name of a Parquet field.
func physicalType(field parquet.Field) string {
	if field.Type() == nil {
		return "GROUP"
	}

	switch field.Type().Kind() {
	case parquet.Boolean:
		return "BOOLEAN"
	case parquet.Int32:
		return "INT32"
	case parquet.Int64:
		return "INT64"
	case parquet.Int96:
		return "INT96"
	case parquet.Float:
		return "FLOAT"
	case parquet.Double:
		return "DOUBLE"
	case parquet.ByteArray:
		return "BYTE_ARRAY"
	case parquet.FixedLenByteArray:
		return "FIXED_LEN_BYTE_ARRAY"
	default:
		return "UNKNOWN"
	}
}

// logicalType returns the logical type name of a Parquet field.
func logicalType(field parquet.Field) string {
	if field.Type() == nil {
		return ""
	}

	lt := field.Type().LogicalType()
	if lt == nil {
		return ""
	}
	return lt.String()
}

// friendlyType converts Parquet's physical and logical types into
// simpler, more recognizable type names for end users.
func friendlyType(field parquet.Field) string {
	if field.Type() == nil {
		return "GROUP"
	}

	// Check logical type first for more specific typing
	if lt := field.Type().LogicalType(); lt != nil {
		switch lt.String() {
		case "STRING", "UTF8":
			return "STRING"
		case "ENUM":
			return "ENUM"
		case "UUID":
			return "UUID"
		case "INT":
			switch field.Type().Kind() {
			case parquet.Int32:
				return "INT32"
			case parquet.Int64:
				return "INT64"
			}
		case "DATE":
			return "DATE"
		case "TIME":
			return "TIME"
		case "TIMESTAMP":
			return "TIMESTAMP"
		case "DECIMAL":
			return "DECIMAL"
		case "JSON":
			return "JSON"
		case "BSON":
			return "BSON"
		}
	}

	// Fall back to physical type
	switch field.Type().Kind() {
	case parquet.Boolean:
		return "BOOLEAN"
	case parquet.Int32:
		return "INT32"
	case parquet.Int64:
		return "INT64"
	case parquet.Int96:
		return "INT96"
	case parquet.Float:
		return "FLOAT32"
	case parquet.Double:
		return "FLOAT64"
	case parquet.ByteArray:
		return "BYTE_ARRAY"
	case parquet.FixedLenByteArray:
		return "FIXED_LEN_BYTE_ARRAY"
	default:
		return "UNKNOWN"
	}
}
