package testutil

import (
	"encoding/json"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v4"
)

func TestNewSimpleDocuments(t *testing.T) {
	oas2 := NewSimpleOAS2Document(map[string]any{"A": map[string]any{"type": "string"}})
	assert.Equal(t, "2.0", oas2["swagger"])
	assert.Contains(t, oas2["definitions"], "A")

	oas3 := NewSimpleOAS3Document(nil)
	assert.Equal(t, "3.0.3", oas3["openapi"])
	assert.Contains(t, oas3, "components")
}

func TestNewDiscriminatedSchemas(t *testing.T) {
	schemas := NewDiscriminatedSchemas("anyOf")
	pet, ok := schemas["Pet"].(map[string]any)
	require.True(t, ok)
	assert.Len(t, pet["anyOf"], 2)
	assert.Contains(t, schemas["Cat"], "required")
	assert.NotContains(t, schemas["Dog"], "required")
}

func TestWriteTempYAML(t *testing.T) {
	path := WriteTempYAML(t, NewSimpleOAS3Document(nil))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var got map[string]any
	require.NoError(t, yaml.Unmarshal(data, &got))
	assert.Equal(t, "3.0.3", got["openapi"])
}

func TestWriteTempJSON(t *testing.T) {
	path := WriteTempJSON(t, NewSimpleOAS2Document(nil))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var got map[string]any
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, "2.0", got["swagger"])
}

func TestWriteTempFile(t *testing.T) {
	path := WriteTempFile(t, "rules.yaml", "rules: []\n")
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "rules: []\n", string(data))
}
