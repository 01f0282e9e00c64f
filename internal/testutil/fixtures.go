// Package testutil provides test utilities and fixtures for unit tests.
package testutil

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"go.yaml.in/yaml/v4"
)

// NewSimpleOAS2Document creates a minimal OAS 2.0 document whose
// definitions section holds schemas.
func NewSimpleOAS2Document(schemas map[string]any) map[string]any {
	return map[string]any{
		"swagger":     "2.0",
		"info":        map[string]any{"title": "Test API", "version": "1.0.0"},
		"paths":       map[string]any{},
		"definitions": schemas,
	}
}

// NewSimpleOAS3Document creates a minimal OAS 3.0 document whose
// components.schemas section holds schemas.
func NewSimpleOAS3Document(schemas map[string]any) map[string]any {
	return map[string]any{
		"openapi":    "3.0.3",
		"info":       map[string]any{"title": "Test API", "version": "1.0.0"},
		"paths":      map[string]any{},
		"components": map[string]any{"schemas": schemas},
	}
}

// NewDiscriminatedSchemas returns a union "Pet" over "Cat" and "Dog" keyed
// by "petType". Cat declares and requires petType; Dog declares it without
// requiring it.
func NewDiscriminatedSchemas(keyword string) map[string]any {
	member := func(required bool) map[string]any {
		s := map[string]any{
			"type": "object",
			"properties": map[string]any{
				"petType": map[string]any{"type": "string"},
			},
		}
		if required {
			s["required"] = []string{"petType"}
		}
		return s
	}
	return map[string]any{
		"Pet": map[string]any{
			keyword: []any{
				map[string]any{"$ref": "#/components/schemas/Cat"},
				map[string]any{"$ref": "#/components/schemas/Dog"},
			},
			"discriminator": map[string]any{"propertyName": "petType"},
		},
		"Cat": member(true),
		"Dog": member(false),
	}
}

// WriteTempYAML marshals a document to YAML and writes it to a temporary file.
// Returns the path to the temporary file.
// The file is automatically cleaned up when the test completes (via t.TempDir).
func WriteTempYAML(t *testing.T, doc any) string {
	t.Helper()

	data, err := yaml.Marshal(doc)
	if err != nil {
		t.Fatalf("Failed to marshal document to YAML: %v", err)
	}
	return WriteTempFile(t, "test.yaml", string(data))
}

// WriteTempJSON marshals a document to JSON and writes it to a temporary file.
// Returns the path to the temporary file.
func WriteTempJSON(t *testing.T, doc any) string {
	t.Helper()

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		t.Fatalf("Failed to marshal document to JSON: %v", err)
	}
	return WriteTempFile(t, "test.json", string(data))
}

// WriteTempFile writes content to name in a fresh temporary directory and
// returns the path.
func WriteTempFile(t *testing.T, name, content string) string {
	t.Helper()

	tmpFile := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(tmpFile, []byte(content), 0o600); err != nil {
		t.Fatalf("Failed to write temporary file: %v", err)
	}
	return tmpFile
}
