package parser

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNopLogger(t *testing.T) {
	l := NopLogger{}
	// Should not panic
	l.Debug("test message", "key", "value")
	l.Info("test message", "key", "value")
	l.Warn("test message", "key", "value")
	l.Error("test message", "key", "value")

	_, ok := l.With("key", "value").(NopLogger)
	assert.True(t, ok, "With should return NopLogger")
}

func TestSlogAdapter(t *testing.T) {
	var buf bytes.Buffer
	handler := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	l := NewSlogAdapter(slog.New(handler))

	l.Debug("debug message", "ref", "#/components/schemas/Pet")
	l.With("component", "parser").Warn("warn message")

	out := buf.String()
	assert.Contains(t, out, "level=DEBUG")
	assert.Contains(t, out, "ref=#/components/schemas/Pet")
	assert.Contains(t, out, "level=WARN")
	assert.Contains(t, out, "component=parser")
}

func TestNewSlogAdapter_NilUsesDefault(t *testing.T) {
	l := NewSlogAdapter(nil)
	require.NotNil(t, l)
	assert.NotNil(t, l.logger)
}

func TestOrNop(t *testing.T) {
	assert.Equal(t, NopLogger{}, OrNop(nil))

	l := NewSlogAdapter(nil)
	assert.Same(t, l, OrNop(l))
}

func TestParse_LogsReferenceResolution(t *testing.T) {
	var buf bytes.Buffer
	handler := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})

	_, err := ParseWithOptions(
		WithFilePath("../testdata/petstore-3.0.yaml"),
		WithLogger(NewSlogAdapter(slog.New(handler))),
	)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "resolving reference")
	assert.Contains(t, buf.String(), "parsed document")
}
