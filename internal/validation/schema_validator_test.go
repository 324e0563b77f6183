package validation

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const personSchema = `{
	"$schema": "http://json-schema.org/draft-07/schema#",
	"type": "object",
	"properties": {
		"name": {"type": "string", "minLength": 1},
		"age": {"type": "integer", "minimum": 0}
	},
	"required": ["name"]
}`

func TestSchemaValidator_ValidateBytes(t *testing.T) {
	v := NewSchemaValidator()
	require.NoError(t, v.Register("person.schema.json", []byte(personSchema)))

	tests := []struct {
		name      string
		data      string
		wantError bool
		errorMsg  string
	}{
		{name: "valid data", data: `{"name": "Ada", "age": 30}`},
		{name: "optional field omitted", data: `{"name": "Jane"}`},
		{name: "missing required field", data: `{"age": 25}`, wantError: true, errorMsg: "required"},
		{name: "wrong type", data: `{"name": "John", "age": "thirty"}`, wantError: true, errorMsg: "/age"},
		{name: "negative age", data: `{"name": "John", "age": -1}`, wantError: true, errorMsg: "minimum"},
		{name: "malformed json", data: `{"name": `, wantError: true, errorMsg: "failed to parse JSON data"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateBytes([]byte(tt.data), "person.schema.json")
			if !tt.wantError {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errorMsg)
		})
	}
}

func TestSchemaValidator_ValidateFile(t *testing.T) {
	v := NewSchemaValidator()
	require.NoError(t, v.Register("person.schema.json", []byte(personSchema)))

	path := filepath.Join(t.TempDir(), "person.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"name": "Grace"}`), 0o644))

	assert.NoError(t, v.ValidateFile(path, "person.schema.json"))
	assert.Error(t, v.ValidateFile(filepath.Join(t.TempDir(), "missing.json"), "person.schema.json"))
}

func TestSchemaValidator_UnknownSchema(t *testing.T) {
	v := NewSchemaValidator()
	err := v.ValidateBytes([]byte(`{}`), "nope.schema.json")
	assert.ErrorIs(t, err, ErrSchemaNotRegistered)
}

func TestSchemaValidator_RegisterTwice(t *testing.T) {
	v := NewSchemaValidator()
	require.NoError(t, v.Register("person.schema.json", []byte(personSchema)))
	assert.NoError(t, v.Register("person.schema.json", []byte(personSchema)))
}

func TestSchemaValidator_InvalidSchema(t *testing.T) {
	v := NewSchemaValidator()
	assert.Error(t, v.Register("broken.schema.json", []byte(`{"type": 12`)))
}
