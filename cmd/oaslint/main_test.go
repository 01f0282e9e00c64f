package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/erraggy/oaslint/cmd/oaslint/commands"
)

func captureOutput(t *testing.T) (stdout, stderr *bytes.Buffer) {
	t.Helper()
	stdout, stderr = &bytes.Buffer{}, &bytes.Buffer{}
	oldOut, oldErr := commands.Stdout, commands.Stderr
	commands.Stdout, commands.Stderr = stdout, stderr
	t.Cleanup(func() {
		commands.Stdout, commands.Stderr = oldOut, oldErr
	})
	return stdout, stderr
}

func TestSuggestCommand(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		// Typos within edit distance 2
		{"valiate", "validate"},
		{"validat", "validate"},
		{"vlidate", "validate"},
		{"rule", "rules"},
		{"rulez", "rules"},
		{"mpc", "mcp"},
		{"versio", "version"},
		{"hep", "help"},

		// Too far - no suggestion (distance > 2)
		{"xyz", ""},
		{"foobar", ""},
		{"validatation", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, suggestCommand(tt.input))
		})
	}
}

func TestEditDistance(t *testing.T) {
	assert.Equal(t, 0, editDistance("mcp", "mcp"))
	assert.Equal(t, 3, editDistance("", "mcp"))
	assert.Equal(t, 1, editDistance("rule", "rules"))
	assert.Equal(t, 2, editDistance("mpc", "mcp"))
}

func TestRun(t *testing.T) {
	t.Run("no args", func(t *testing.T) {
		_, stderr := captureOutput(t)
		assert.Equal(t, 1, run(nil))
		assert.Contains(t, stderr.String(), "Usage:")
	})

	t.Run("version", func(t *testing.T) {
		stdout, _ := captureOutput(t)
		assert.Equal(t, 0, run([]string{"version"}))
		assert.Contains(t, stdout.String(), "oaslint v")
	})

	t.Run("help", func(t *testing.T) {
		_, stderr := captureOutput(t)
		assert.Equal(t, 0, run([]string{"help"}))
		assert.Contains(t, stderr.String(), "Commands:")
	})

	t.Run("unknown command suggests", func(t *testing.T) {
		_, stderr := captureOutput(t)
		assert.Equal(t, 1, run([]string{"valiate"}))
		assert.Contains(t, stderr.String(), "Unknown command: valiate")
		assert.Contains(t, stderr.String(), "Did you mean: oaslint validate")
	})

	t.Run("validation failure exits 1 without error line", func(t *testing.T) {
		_, stderr := captureOutput(t)
		assert.Equal(t, 1, run([]string{"validate", "-q", "../../testdata/invalid-3.0.yaml"}))
		assert.NotContains(t, stderr.String(), "Error:")
	})

	t.Run("valid document exits 0", func(t *testing.T) {
		captureOutput(t)
		assert.Equal(t, 0, run([]string{"validate", "-q", "../../testdata/petstore-3.0.yaml"}))
	})

	t.Run("load error is printed", func(t *testing.T) {
		_, stderr := captureOutput(t)
		assert.Equal(t, 1, run([]string{"validate", "../../testdata/missing.yaml"}))
		assert.Contains(t, stderr.String(), "Error:")
	})

	t.Run("rules", func(t *testing.T) {
		stdout, _ := captureOutput(t)
		assert.Equal(t, 0, run([]string{"rules"}))
		assert.Contains(t, stdout.String(), "TypeMismatch")
	})
}
