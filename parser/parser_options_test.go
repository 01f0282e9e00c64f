package parser

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestParseWithOptions_FilePath tests the functional options API with file path
func TestParseWithOptions_FilePath(t *testing.T) {
	result, err := ParseWithOptions(WithFilePath("../testdata/petstore-3.0.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "3.0.3", result.Version)
	assert.Equal(t, "../testdata/petstore-3.0.yaml", result.SourcePath)
}

// TestParseWithOptions_Reader tests the functional options API with io.Reader
func TestParseWithOptions_Reader(t *testing.T) {
	file, err := os.Open("../testdata/petstore-3.0.yaml")
	require.NoError(t, err)
	defer func() { _ = file.Close() }()

	result, err := ParseWithOptions(WithReader(file))
	require.NoError(t, err)
	assert.Equal(t, "ParseReader.yaml", result.SourcePath)
	assert.Len(t, result.Schemas, 4)
}

// TestParseWithOptions_Bytes tests the functional options API with byte slice
func TestParseWithOptions_Bytes(t *testing.T) {
	data, err := os.ReadFile("../testdata/petstore-2.0.json")
	require.NoError(t, err)

	result, err := ParseWithOptions(WithBytes(data))
	require.NoError(t, err)
	assert.Equal(t, "ParseBytes.json", result.SourcePath)
	assert.Equal(t, DocumentOAS2, result.Kind)
}

func TestParseWithOptions_SourceName(t *testing.T) {
	result, err := ParseWithOptions(
		WithBytes([]byte("type: string\n")),
		WithSourceName("inline-schema"),
	)
	require.NoError(t, err)
	assert.Equal(t, "inline-schema", result.SourcePath)
}

func TestParseWithOptions_InvalidOptions(t *testing.T) {
	tests := []struct {
		name     string
		opts     []Option
		contains string
	}{
		{
			name:     "no input source",
			opts:     nil,
			contains: "must specify an input source",
		},
		{
			name:     "multiple input sources",
			opts:     []Option{WithFilePath("a.yaml"), WithBytes([]byte("x: 1"))},
			contains: "must specify exactly one input source",
		},
		{
			name:     "nil reader",
			opts:     []Option{WithReader(nil)},
			contains: "reader cannot be nil",
		},
		{
			name:     "nil bytes",
			opts:     []Option{WithBytes(nil)},
			contains: "bytes cannot be nil",
		},
		{
			name:     "empty source name",
			opts:     []Option{WithBytes([]byte("x: 1")), WithSourceName("")},
			contains: "source name cannot be empty",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ParseWithOptions(tt.opts...)
			require.Error(t, err)
			assert.Nil(t, result)
			assert.Contains(t, err.Error(), tt.contains)
		})
	}
}
