package validation

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const optionSchema = `{
	"$schema": "http://json-schema.org/draft-07/schema#",
	"type": "object",
	"required": ["options"],
	"properties": {
		"options": {
			"type": "array",
			"items": {
				"type": "object",
				"required": ["id", "weight"],
				"properties": {
					"id": {"type": "integer", "minimum": 1},
					"weight": {"type": "number", "exclusiveMinimum": 0},
					"kind": {"type": "string", "enum": ["percentage", "flat"]}
				}
			}
		}
	}
}`

func writeSchema(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.schema.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestSchemaValidator_ValidateBytes(t *testing.T) {
	v := NewSchemaValidator()
	schemaPath := writeSchema(t, optionSchema)

	tests := []struct {
		name     string
		data     string
		errorMsg string
	}{
		{name: "valid document", data: `{"options": [{"id": 1, "weight": 2.5, "kind": "flat"}]}`},
		{name: "empty options", data: `{"options": []}`},
		{name: "missing required field", data: `{"options": [{"id": 1}]}`, errorMsg: "required"},
		{name: "zero weight", data: `{"options": [{"id": 1, "weight": 0}]}`, errorMsg: "/options/0/weight"},
		{name: "unknown kind", data: `{"options": [{"id": 1, "weight": 1, "kind": "mixed"}]}`, errorMsg: "enum"},
		{name: "invalid JSON", data: `{"options": [}`, errorMsg: "parse JSON"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateBytes([]byte(tt.data), schemaPath)
			if tt.errorMsg == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errorMsg)
		})
	}
}

func TestSchemaValidator_ValidateValue(t *testing.T) {
	v := NewSchemaValidator()
	schemaPath := writeSchema(t, optionSchema)

	valid := map[string]interface{}{
		"options": []interface{}{
			map[string]interface{}{"id": 3, "weight": 1},
		},
	}
	assert.NoError(t, v.ValidateValue(valid, schemaPath))

	invalid := map[string]interface{}{
		"options": []interface{}{
			map[string]interface{}{"id": 0, "weight": 1},
		},
	}
	err := v.ValidateValue(invalid, schemaPath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "minimum")
}

func TestSchemaValidator_MissingSchema(t *testing.T) {
	v := NewSchemaValidator()

	err := v.ValidateBytes([]byte(`{}`), "nonexistent.schema.json")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load schema")
}

func TestSchemaValidator_CachesCompiledSchemas(t *testing.T) {
	v := NewSchemaValidator().(*validator)
	schemaPath := writeSchema(t, optionSchema)
	data := []byte(`{"options": []}`)

	require.NoError(t, v.ValidateBytes(data, schemaPath))
	require.NoError(t, v.ValidateBytes(data, schemaPath))

	assert.Len(t, v.schemas, 1)
}

func TestResolveSchemaPath_FindsModuleRelativePath(t *testing.T) {
	path, err := resolveSchemaPath("configs/schemas/catalog.schema.json")

	require.NoError(t, err)
	assert.FileExists(t, path)
}
